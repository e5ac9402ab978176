package grid

import (
	"github.com/lynnewu/BlenderAids/pkg/errors"
)

// ColorMode selects between colored major squares and a plain white
// background suitable for print.
type ColorMode int

const (
	// Color fills each major square with a deterministic palette color.
	Color ColorMode = iota
	// BlackWhite leaves all squares white; lines and labels are black.
	BlackWhite
)

// Default configuration values, matching the documented CLI defaults.
const (
	DefaultMajorCount = 10
	DefaultMinorCount = 12
	DefaultTargetSize = 3600
	DefaultLabelScale = 0.20
	DefaultOpacity    = 1.0
)

// Config holds the parameters for one grid generation run.
// It is constructed once per run and treated as immutable after Validate.
type Config struct {
	MajorCount     int       // major squares per axis
	MinorCount     int       // minor subdivisions per major square
	TargetSize     int       // requested image size in pixels (square)
	ColorMode      ColorMode // colored squares or black/white
	Opacity        float64   // 0..1 alpha for fills and labels
	LabelAlignment Alignment // label anchor within each major square
	LabelScale     float64   // label height as a fraction of major square height
}

// DefaultConfig returns a Config populated with the documented defaults:
// 10 major squares, 12 minor subdivisions, 3600px, colored, labels
// upper-left at 20% of the cell height, fully opaque.
func DefaultConfig() Config {
	return Config{
		MajorCount:     DefaultMajorCount,
		MinorCount:     DefaultMinorCount,
		TargetSize:     DefaultTargetSize,
		ColorMode:      Color,
		Opacity:        DefaultOpacity,
		LabelAlignment: UpperLeft,
		LabelScale:     DefaultLabelScale,
	}
}

// Validate checks the configuration for degenerate or out-of-range values.
// It returns a configuration error describing the first problem found.
func (c Config) Validate() error {
	if c.MajorCount <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "major count must be positive, got %d", c.MajorCount)
	}
	if c.MinorCount <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "minor count must be positive, got %d", c.MinorCount)
	}
	if c.TargetSize <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "size must be positive, got %d", c.TargetSize)
	}
	if c.Opacity < 0 || c.Opacity > 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "opacity must be within [0,1], got %g", c.Opacity)
	}
	if c.LabelScale <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "label scale must be positive, got %g", c.LabelScale)
	}
	if !c.LabelAlignment.valid() {
		return errors.New(errors.ErrCodeInvalidAlignment, "unknown label alignment")
	}
	return nil
}

// EffectiveGrid is the planned geometry for one render pass. The size is
// snapped down to an exact multiple of MajorCount*MinorCount so every grid
// line lands on a whole pixel, and the same snapped size is reused for
// vector formats so all outputs share one coordinate space.
type EffectiveGrid struct {
	EffectiveSize int // snapped canvas side length in pixels
	MajorCount    int
	MinorCount    int
}

// Plan computes the effective grid geometry for cfg.
//
// The effective size is the largest multiple of MajorCount*MinorCount not
// exceeding TargetSize. If that multiple is zero the grid is degenerate
// and a DEGENERATE_GRID error is returned.
func Plan(cfg Config) (EffectiveGrid, error) {
	n := cfg.MajorCount * cfg.MinorCount
	size := (cfg.TargetSize / n) * n
	if size <= 0 {
		return EffectiveGrid{}, errors.New(errors.ErrCodeDegenerateGrid,
			"size %d is smaller than one subdivision unit (%d×%d=%d)",
			cfg.TargetSize, cfg.MajorCount, cfg.MinorCount, n)
	}
	return EffectiveGrid{
		EffectiveSize: size,
		MajorCount:    cfg.MajorCount,
		MinorCount:    cfg.MinorCount,
	}, nil
}

// Snapped reports whether planning reduced the requested size.
func (g EffectiveGrid) Snapped(cfg Config) bool {
	return g.EffectiveSize != cfg.TargetSize
}

// MajorStep returns the side length of one major square in pixels.
// Exact by construction: EffectiveSize is a multiple of MajorCount.
func (g EffectiveGrid) MajorStep() float64 {
	return float64(g.EffectiveSize) / float64(g.MajorCount)
}

// MinorStep returns the side length of one minor cell in pixels.
func (g EffectiveGrid) MinorStep() float64 {
	return float64(g.EffectiveSize) / float64(g.MajorCount*g.MinorCount)
}

// CellSize is the minor cell side; it equals EffectiveSize divided by the
// total subdivision count and carries no cumulative rounding drift.
func (g EffectiveGrid) CellSize() float64 { return g.MinorStep() }

// MajorLines returns the coordinates of the major grid lines along one
// axis, including both borders (MajorCount+1 values).
func (g EffectiveGrid) MajorLines() []float64 {
	return lines(g.MajorCount, g.MajorStep())
}

// MinorLines returns the coordinates of all minor grid lines along one
// axis, including both borders and the positions shared with major lines.
func (g EffectiveGrid) MinorLines() []float64 {
	return lines(g.MajorCount*g.MinorCount, g.MinorStep())
}

func lines(n int, step float64) []float64 {
	out := make([]float64, n+1)
	for i := range out {
		out[i] = float64(i) * step
	}
	return out
}
