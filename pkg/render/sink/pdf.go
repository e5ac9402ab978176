package sink

import (
	"bytes"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgpdf"

	"github.com/lynnewu/BlenderAids/pkg/errors"
	"github.com/lynnewu/BlenderAids/pkg/grid"
	"github.com/lynnewu/BlenderAids/pkg/render"
)

// RenderPDF renders the grid as vector PDF using the same snapped size
// and coordinate space as the other formats.
func RenderPDF(g grid.EffectiveGrid, cfg grid.Config) ([]byte, error) {
	side := vg.Length(g.EffectiveSize)
	c := vgpdf.New(side, side)
	// Embed the label font so output is legible on systems without
	// Liberation Sans installed.
	c.EmbedFonts(true)
	render.DrawEmbedded(draw.New(c), g, cfg)

	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode pdf")
	}
	return buf.Bytes(), nil
}
