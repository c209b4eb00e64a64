package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/rackroom/pkg/render"
)

// svgOpts holds the command-line flags for the svg command.
type svgOpts struct {
	output   string  // output file path (derived from input if empty)
	tilePx   float64 // pixels per tile
	noLabels bool    // suppress id labels on footprints
}

// newSVGCmd creates the svg command for rendering a plan to an SVG file.
func newSVGCmd() *cobra.Command {
	opts := svgOpts{tilePx: 24}

	cmd := &cobra.Command{
		Use:   "svg [file]",
		Short: "Render a plan to SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSVG(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (defaults to the plan name with .svg)")
	cmd.Flags().Float64Var(&opts.tilePx, "tile-px", opts.tilePx, "pixels per tile")
	cmd.Flags().BoolVar(&opts.noLabels, "no-labels", false, "suppress footprint labels")

	return cmd
}

func runSVG(cmd *cobra.Command, path string, opts *svgOpts) error {
	logger := loggerFromContext(cmd.Context())
	p := newProgress(logger)

	room, ladders, err := loadPlan(path)
	if err != nil {
		return err
	}

	renderOpts := []render.SVGOption{
		render.WithTilePixels(opts.tilePx),
		render.WithLadders(ladders),
	}
	if opts.noLabels {
		renderOpts = append(renderOpts, render.WithoutLabels())
	}
	data := render.RenderSVG(room, renderOpts...)

	out := opts.output
	if out == "" {
		out = strings.TrimSuffix(path, ".json") + ".svg"
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return err
	}

	p.done("Rendered " + out)
	printFile(out)
	return nil
}
