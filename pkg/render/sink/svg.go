package sink

import (
	"bytes"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/lynnewu/BlenderAids/pkg/errors"
	"github.com/lynnewu/BlenderAids/pkg/grid"
	"github.com/lynnewu/BlenderAids/pkg/render"
)

// RenderSVG renders the grid as true vector SVG. The canvas uses the same
// snapped size as the raster pass so both outputs align 1:1.
func RenderSVG(g grid.EffectiveGrid, cfg grid.Config) ([]byte, error) {
	side := vg.Length(g.EffectiveSize)
	c := vgsvg.New(side, side)
	render.Draw(draw.New(c), g, cfg)

	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode svg")
	}
	return buf.Bytes(), nil
}
