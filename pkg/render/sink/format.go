package sink

import (
	"strings"

	"github.com/lynnewu/BlenderAids/pkg/errors"
	"github.com/lynnewu/BlenderAids/pkg/grid"
)

// Format is one of the supported output formats.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
	FormatPDF Format = "pdf"
)

// Ext returns the file extension for the format, including the dot.
func (f Format) Ext() string { return "." + string(f) }

// ParseFormats converts user-supplied format tokens into Formats. Tokens
// may themselves be comma-separated. Matching is case-insensitive; an
// unknown token yields an INVALID_FORMAT error. Order and duplicates are
// preserved so each requested output maps to exactly one file.
func ParseFormats(tokens []string) ([]Format, error) {
	var out []Format
	for _, tok := range tokens {
		for _, part := range strings.Split(tok, ",") {
			switch f := Format(strings.ToLower(strings.TrimSpace(part))); f {
			case FormatPNG, FormatSVG, FormatPDF:
				out = append(out, f)
			default:
				return nil, errors.New(errors.ErrCodeInvalidFormat,
					"invalid format %q (must be one of: png, svg, pdf)", part)
			}
		}
	}
	if len(out) == 0 {
		out = []Format{FormatPNG}
	}
	return out, nil
}

// Render dispatches to the format-specific renderer.
func Render(f Format, g grid.EffectiveGrid, cfg grid.Config) ([]byte, error) {
	switch f {
	case FormatPNG:
		return RenderPNG(g, cfg)
	case FormatSVG:
		return RenderSVG(g, cfg)
	case FormatPDF:
		return RenderPDF(g, cfg)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format %q", f)
	}
}
