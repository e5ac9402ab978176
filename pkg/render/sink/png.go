package sink

import (
	"bytes"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/lynnewu/BlenderAids/pkg/errors"
	"github.com/lynnewu/BlenderAids/pkg/grid"
	"github.com/lynnewu/BlenderAids/pkg/render"
)

// pngDPI pins the raster resolution so that one point equals one pixel;
// the output image is then exactly EffectiveSize×EffectiveSize pixels
// with every grid line on a whole-pixel boundary.
const pngDPI = 72

// RenderPNG rasterizes the grid and encodes it as PNG.
func RenderPNG(g grid.EffectiveGrid, cfg grid.Config) ([]byte, error) {
	side := vg.Length(g.EffectiveSize)
	c := vgimg.NewWith(vgimg.UseWH(side, side), vgimg.UseDPI(pngDPI))
	render.Draw(draw.New(c), g, cfg)

	var buf bytes.Buffer
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}
