package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jwinther/homeplan/pkg/errors"
	"github.com/jwinther/homeplan/pkg/pipeline"
	"github.com/jwinther/homeplan/pkg/render/floorplan"
	"github.com/jwinther/homeplan/pkg/requirements"
)

// renderCommand creates the render command for re-rendering a saved plan
// document.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [plan.json]",
		Short: "Re-render a saved plan document",
		Long: `Re-render a saved plan document.

The render command takes a plan document (produced by 'generate -f json')
and renders it to other formats without regenerating the layout. The
document contains all positioning information, so this step is purely
about output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, dot, graph (comma-separated)")
	cmd.Flags().Float64Var(&opts.Scale, "scale", 0, "millimeter-to-pixel scale for SVG output")
	cmd.Flags().BoolVar(&opts.NoLabels, "no-labels", false, "omit room labels in SVG output")
	cmd.Flags().BoolVar(&opts.Grid, "grid", false, "draw a one-meter grid in SVG output")

	return cmd
}

// runRender loads the plan document and renders the requested formats.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string) error {
	logger := loggerFromContext(ctx)
	data, err := os.ReadFile(input)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "reading plan %s", input)
	}
	p, req, err := floorplan.ParsePlanJSON(data)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "parsing plan %s", input)
	}
	if len(p.Rooms) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "plan %s contains no rooms", input)
	}

	var reqValue requirements.HouseRequirements
	if req != nil {
		reqValue = *req
	}

	opts.SetRenderDefaults()
	opts.Logger = logger

	prog := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, "Rendering plan...")
	spinner.Start()

	artifacts, err := pipeline.RenderFromPlan(ctx, p, reqValue, opts)
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Rendered %d formats", len(artifacts)))

	printSuccess("Rendered %d room plan", len(p.Rooms))

	return writeArtifacts(artifactWriteParams{
		artifacts: artifacts,
		formats:   opts.Formats,
		base:      output,
		fallback:  strings.TrimSuffix(input, ".json"),
	})
}
