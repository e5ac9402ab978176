package render

import (
	"image/color"
	"testing"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/lynnewu/BlenderAids/pkg/grid"
)

func TestTextAlign(t *testing.T) {
	tests := []struct {
		align grid.Alignment
		x     draw.XAlignment
		y     draw.YAlignment
	}{
		{grid.UpperLeft, draw.XLeft, draw.YTop},
		{grid.UpperCenter, draw.XCenter, draw.YTop},
		{grid.UpperRight, draw.XRight, draw.YTop},
		{grid.MiddleLeft, draw.XLeft, draw.YCenter},
		{grid.MiddleCenter, draw.XCenter, draw.YCenter},
		{grid.MiddleRight, draw.XRight, draw.YCenter},
		{grid.LowerLeft, draw.XLeft, draw.YBottom},
		{grid.LowerCenter, draw.XCenter, draw.YBottom},
		{grid.LowerRight, draw.XRight, draw.YBottom},
	}

	for _, tt := range tests {
		t.Run(tt.align.String(), func(t *testing.T) {
			x, y := textAlign(tt.align)
			if x != tt.x || y != tt.y {
				t.Errorf("textAlign() = (%v, %v), want (%v, %v)", x, y, tt.x, tt.y)
			}
		})
	}
}

func TestLabelStyleWeights(t *testing.T) {
	sty := labelStyle(vg.Points(12), color.Black)
	if sty.Font.Weight != xfont.WeightBold {
		t.Errorf("labelStyle weight = %v, want %v", sty.Font.Weight, xfont.WeightBold)
	}

	// The embedding variant keeps the descriptor plain; a bold descriptor
	// makes the PDF backend request a font name it never registered.
	flat := flatLabelStyle(vg.Points(12), color.Black)
	if flat.Font.Weight != xfont.WeightNormal {
		t.Errorf("flatLabelStyle weight = %v, want %v", flat.Font.Weight, xfont.WeightNormal)
	}
}

func TestFlatFontsResolve(t *testing.T) {
	fnt := flatLabelStyle(vg.Points(12), color.Black).Font
	face := flatFonts().Lookup(fnt, fnt.Size)
	if face.Face == nil {
		t.Fatal("flatFonts() has no face for the plain Liberation Sans descriptor")
	}
}

func TestOpacityByte(t *testing.T) {
	tests := []struct {
		opacity float64
		want    uint8
	}{
		{0, 0},
		{1, 255},
		{0.5, 128},
	}

	for _, tt := range tests {
		if got := opacityByte(tt.opacity); got != tt.want {
			t.Errorf("opacityByte(%v) = %d, want %d", tt.opacity, got, tt.want)
		}
	}
}

func TestWithAlpha(t *testing.T) {
	got := withAlpha(color.Black, 128)
	want := color.NRGBA{A: 128}
	if got != want {
		t.Errorf("withAlpha(black, 128) = %v, want %v", got, want)
	}

	got = withAlpha(color.White, 255)
	want = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	if got != want {
		t.Errorf("withAlpha(white, 255) = %v, want %v", got, want)
	}
}
