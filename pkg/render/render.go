package render

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/lynnewu/BlenderAids/pkg/grid"
)

// Stroke widths in points. At the 72 DPI used for raster output one point
// is one pixel, so these match the pixel widths of the PNG grid lines.
const (
	minorLineWidth = 0.5
	majorLineWidth = 2.0
)

// minorLineAlpha keeps the fine grid present but not overpowering.
const minorLineAlpha = 0x4d // 30%

// styleFunc builds the text style for one label at the given size.
type styleFunc func(size vg.Length, c color.Color) draw.TextStyle

// Draw renders the full grid onto dc: white background, major square
// fills (Color mode only), minor lines, major lines, labels. The canvas
// is assumed to span exactly g.EffectiveSize points in both axes with
// the origin at the lower left.
func Draw(dc draw.Canvas, g grid.EffectiveGrid, cfg grid.Config) {
	drawAll(dc, g, cfg, labelStyle)
}

// DrawEmbedded is Draw for backends that embed the label font and name
// it from the face descriptor (PDF). Labels use the flattened bold face
// so the registered font name matches the one used at draw time.
func DrawEmbedded(dc draw.Canvas, g grid.EffectiveGrid, cfg grid.Config) {
	drawAll(dc, g, cfg, flatLabelStyle)
}

func drawAll(dc draw.Canvas, g grid.EffectiveGrid, cfg grid.Config, style styleFunc) {
	side := vg.Length(g.EffectiveSize)

	// Explicit white background so vector outputs match the raster pass
	// instead of staying transparent.
	fillRect(dc, color.White, 0, 0, side, side)

	alpha := opacityByte(cfg.Opacity)
	if cfg.ColorMode == grid.Color {
		step := vg.Length(g.MajorStep())
		for row := 0; row < g.MajorCount; row++ {
			for col := 0; col < g.MajorCount; col++ {
				c := grid.CellColor(cfg, row, col)
				c.A = alpha
				x0 := vg.Length(col) * step
				y0 := vg.Length(row) * step
				fillRect(dc, c, x0, y0, x0+step, y0+step)
			}
		}
	}

	// Fine grid first, light; bold major grid on top.
	strokeGrid(dc, g.MinorLines(), draw.LineStyle{
		Color: color.NRGBA{A: minorLineAlpha},
		Width: vg.Points(minorLineWidth),
	}, side)
	strokeGrid(dc, g.MajorLines(), draw.LineStyle{
		Color: color.Black,
		Width: vg.Points(majorLineWidth),
	}, side)

	drawLabels(dc, g, cfg, alpha, style)
}

func drawLabels(dc draw.Canvas, g grid.EffectiveGrid, cfg grid.Config, alpha uint8, style styleFunc) {
	fontSize := vg.Length(cfg.LabelScale * g.MajorStep())
	if fontSize <= 0 {
		return
	}
	xAlign, yAlign := textAlign(cfg.LabelAlignment)

	for _, l := range grid.Labels(g, cfg) {
		sty := style(fontSize, withAlpha(l.Color, alpha))
		sty.XAlign = xAlign
		sty.YAlign = yAlign
		dc.FillText(sty, vg.Point{X: vg.Length(l.X), Y: vg.Length(l.Y)}, l.Text)
	}
}

// strokeGrid draws one horizontal and one vertical full-width line per
// coordinate in positions.
func strokeGrid(dc draw.Canvas, positions []float64, sty draw.LineStyle, side vg.Length) {
	for _, p := range positions {
		at := vg.Length(p)
		dc.StrokeLine2(sty, 0, at, side, at)
		dc.StrokeLine2(sty, at, 0, at, side)
	}
}

func fillRect(dc draw.Canvas, c color.Color, x0, y0, x1, y1 vg.Length) {
	dc.FillPolygon(c, []vg.Point{
		{X: x0, Y: y0},
		{X: x1, Y: y0},
		{X: x1, Y: y1},
		{X: x0, Y: y1},
	})
}

// textAlign maps a label anchor to vg text alignment: the anchor point is
// the cell-relative position computed by grid.Labels, so a Left anchor
// lets text run right from it, an Upper anchor hangs text below it.
func textAlign(a grid.Alignment) (draw.XAlignment, draw.YAlignment) {
	var x draw.XAlignment
	switch a {
	case grid.UpperLeft, grid.MiddleLeft, grid.LowerLeft:
		x = draw.XLeft
	case grid.UpperRight, grid.MiddleRight, grid.LowerRight:
		x = draw.XRight
	default:
		x = draw.XCenter
	}

	var y draw.YAlignment
	switch a {
	case grid.UpperLeft, grid.UpperCenter, grid.UpperRight:
		y = draw.YTop
	case grid.LowerLeft, grid.LowerCenter, grid.LowerRight:
		y = draw.YBottom
	default:
		y = draw.YCenter
	}
	return x, y
}

func opacityByte(opacity float64) uint8 {
	return uint8(math.Round(opacity * 0xff))
}

func withAlpha(c color.Color, a uint8) color.NRGBA {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: a}
}
