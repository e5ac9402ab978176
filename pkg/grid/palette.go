package grid

import (
	"image/color"
	"math"
)

// Palette parameters for colored mode. The hue sweeps mostly across
// columns with a small row drift so neighbouring squares differ and rows
// never repeat exactly; saturation and value stay moderate so the labels
// remain readable.
const (
	hueColStep = 0.1
	hueRowStep = 0.03
	saturation = 0.6
	value      = 0.85
)

// luminanceThreshold splits light cell fills (black text) from dark ones
// (white text).
const luminanceThreshold = 0.6

// CellColor returns the fill color of the major square at (row, col).
// In BlackWhite mode every cell is white. In Color mode the color is a
// deterministic HSV sweep, so repeated runs produce identical output.
func CellColor(cfg Config, row, col int) color.NRGBA {
	if cfg.ColorMode == BlackWhite {
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	h := math.Mod(float64(col)*hueColStep+float64(row)*hueRowStep, 1.0)
	r, g, b := hsvToRGB(h, saturation, value)
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

// LabelColor returns black or white, whichever contrasts better with the
// cell fill at (row, col). BlackWhite mode is always black.
func LabelColor(cfg Config, row, col int) color.Color {
	if cfg.ColorMode == BlackWhite {
		return color.Black
	}
	if Luminance(CellColor(cfg, row, col)) > luminanceThreshold {
		return color.Black
	}
	return color.White
}

// Luminance computes the Rec.601 luma approximation of c in 0..1.
func Luminance(c color.NRGBA) float64 {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255
	return 0.299*r + 0.587*g + 0.114*b
}

// hsvToRGB converts HSV (all components 0..1) to 8-bit RGB.
func hsvToRGB(h, s, v float64) (r, g, b uint8) {
	i := int(h*6) % 6
	f := h*6 - math.Floor(h*6)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var rf, gf, bf float64
	switch i {
	case 0:
		rf, gf, bf = v, t, p
	case 1:
		rf, gf, bf = q, v, p
	case 2:
		rf, gf, bf = p, v, t
	case 3:
		rf, gf, bf = p, q, v
	case 4:
		rf, gf, bf = t, p, v
	default:
		rf, gf, bf = v, p, q
	}
	return uint8(math.Round(rf * 255)), uint8(math.Round(gf * 255)), uint8(math.Round(bf * 255))
}
