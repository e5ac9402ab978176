package cli

import (
	"context"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/lynnewu/BlenderAids/pkg/buildinfo"
	"github.com/lynnewu/BlenderAids/pkg/grid"
	"github.com/lynnewu/BlenderAids/pkg/render/sink"
)

// rootFlags holds the raw command-line flags before they are resolved
// into a validated grid.Config.
type rootFlags struct {
	major      int      // major squares per axis
	minor      int      // minor subdivisions per major square
	size       int      // target image size in pixels
	color      bool     // colored major squares
	noColor    bool     // white background (overrides --color)
	alignment  string   // label anchor position token
	labelScale float64  // label height as a fraction of major square height
	opacity    float64  // 0..1 alpha for fills and labels
	formats    []string // output formats
	out        string   // output base filename, descriptive name if empty
}

// Execute runs the makegrid CLI and returns an error if generation fails.
// This is the main entry point for the application.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// newRootCmd builds the root command with the full flag contract.
func newRootCmd() *cobra.Command {
	var verbose bool
	flags := rootFlags{}

	root := &cobra.Command{
		Use:          "makegrid",
		Short:        "Generate pixel-perfect ruler/UV grid images (PNG/SVG/PDF)",
		Long: `Makegrid renders a square ruler/UV test grid with labeled major squares
and a fine minor subdivision grid, suitable for texture calibration in
Blender and for print. The raster size is snapped down to an exact
multiple of major*minor so every grid line lands on a whole pixel.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, formats, err := resolveConfig(flags)
			if err != nil {
				return err
			}
			return runGenerate(cmd.Context(), cfg, formats, flags.out)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.Flags().IntVar(&flags.major, "major", grid.DefaultMajorCount, "major squares per axis")
	root.Flags().IntVar(&flags.minor, "minor", grid.DefaultMinorCount, "minor subdivisions per major square")
	root.Flags().IntVar(&flags.size, "size", grid.DefaultTargetSize, "image size in pixels (square)")
	root.Flags().BoolVar(&flags.color, "color", true, "enable colored major squares")
	root.Flags().BoolVar(&flags.noColor, "no-color", false, "disable colors (white background)")
	root.Flags().StringVar(&flags.alignment, "label-alignment", grid.UpperLeft.String(),
		"label anchor position: "+strings.Join(grid.AlignmentNames(), ", "))
	root.Flags().Float64Var(&flags.labelScale, "label-scale", grid.DefaultLabelScale,
		"label height as a fraction of major square height")
	root.Flags().Float64Var(&flags.opacity, "opacity", grid.DefaultOpacity, "opacity (0..1) for fills and labels")
	root.Flags().StringSliceVar(&flags.formats, "format", nil, "output format(s): png (default), svg, pdf")
	root.Flags().StringVarP(&flags.out, "out", "o", "",
		"output base filename (without extension); a descriptive name is used if omitted")

	return root
}

// resolveConfig turns raw flags into a validated configuration and format
// list. All configuration errors surface here, before any file is written.
func resolveConfig(flags rootFlags) (grid.Config, []sink.Format, error) {
	alignment, err := grid.ParseAlignment(flags.alignment)
	if err != nil {
		return grid.Config{}, nil, err
	}

	mode := grid.Color
	if flags.noColor {
		mode = grid.BlackWhite
	}

	cfg := grid.Config{
		MajorCount:     flags.major,
		MinorCount:     flags.minor,
		TargetSize:     flags.size,
		ColorMode:      mode,
		Opacity:        flags.opacity,
		LabelAlignment: alignment,
		LabelScale:     flags.labelScale,
	}
	if err := cfg.Validate(); err != nil {
		return grid.Config{}, nil, err
	}

	formats, err := sink.ParseFormats(flags.formats)
	if err != nil {
		return grid.Config{}, nil, err
	}
	return cfg, formats, nil
}
