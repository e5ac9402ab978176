package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/lynnewu/BlenderAids/pkg/errors"
	"github.com/lynnewu/BlenderAids/pkg/grid"
	"github.com/lynnewu/BlenderAids/pkg/output"
	"github.com/lynnewu/BlenderAids/pkg/render/sink"
)

// runGenerate plans the grid once and renders each requested format
// sequentially. The run aborts on the first unrecoverable error; files
// already written stay in place, no retry is attempted.
func runGenerate(ctx context.Context, cfg grid.Config, formats []sink.Format, outBase string) error {
	logger := loggerFromContext(ctx)
	p := newProgress(logger)

	g, err := grid.Plan(cfg)
	if err != nil {
		return err
	}
	if g.Snapped(cfg) {
		logger.Infof("size %d not divisible by %d; snapping to %d",
			cfg.TargetSize, cfg.MajorCount*cfg.MinorCount, g.EffectiveSize)
	}
	logger.Debugf("planned grid: %d major, %d minor, cell %g px", g.MajorCount, g.MinorCount, g.CellSize())

	if outBase == "" {
		outBase = output.DefaultBase(cfg)
		logger.Debugf("using descriptive base name %s", outBase)
	}

	written := make([]string, 0, len(formats))
	for _, f := range formats {
		data, err := sink.Render(f, g, cfg)
		if err != nil {
			return err
		}
		path := output.UniquePath(outBase, f.Ext())
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s", path)
		}
		logger.Infof("Generated %s (%d×%d, %s)", path, g.EffectiveSize, g.EffectiveSize, f)
		written = append(written, path)
	}

	p.done(fmt.Sprintf("Wrote %d file(s)", len(written)))
	printSuccess("grid %d×%d, %d px", cfg.MajorCount, cfg.MajorCount, g.EffectiveSize)
	for _, path := range written {
		printFile(path)
	}
	return nil
}
