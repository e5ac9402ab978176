// Package output derives output file names for generated grid images.
//
// Two concerns live here: building a descriptive default base name from
// the configuration, and turning a base name plus extension into a path
// that does not collide with existing files. Names never contain a dot
// other than the extension, which keeps them safe on Windows.
package output

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lynnewu/BlenderAids/pkg/grid"
)

// DefaultBase builds a descriptive base filename (without extension) that
// encodes the configuration, e.g.
//
//	grid_3600_major10_minor12_color_upperleft_scale0.2_opacity1.0
func DefaultBase(cfg grid.Config) string {
	mode := "color"
	if cfg.ColorMode == grid.BlackWhite {
		mode = "bw"
	}
	return fmt.Sprintf("grid_%d_major%d_minor%d_%s_%s_scale%s_opacity%s",
		cfg.TargetSize, cfg.MajorCount, cfg.MinorCount,
		mode,
		strings.ToLower(cfg.LabelAlignment.String()),
		formatNum(cfg.LabelScale),
		formatNum(cfg.Opacity))
}

// formatNum renders v in its shortest decimal form but keeps a trailing
// ".0" on whole numbers, so the default opacity reads opacity1.0 rather
// than opacity1.
func formatNum(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// UniquePath returns base plus a zero-padded 3-digit serial and ext,
// choosing the first serial whose file does not exist yet. The serial is
// always present, starting at -000, so repeated runs line up as
// base-000.png, base-001.png and never overwrite each other.
//
// ext must include the leading dot.
func UniquePath(base, ext string) string {
	for i := 0; ; i++ {
		candidate := fmt.Sprintf("%s-%03d%s", base, i, ext)
		// Any stat failure counts as free; a truly unwritable path will
		// surface as a WRITE_FAILED error at write time instead.
		if _, err := os.Stat(candidate); err != nil {
			return candidate
		}
	}
}
