package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jwinther/homeplan/pkg/pipeline"
)

// generateCommand creates the generate command: the full parse → generate →
// render pipeline in one step.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		configPath string
		noCache    bool
		preview    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "generate [description...]",
		Short: "Generate a floor plan from a house description",
		Long: `Generate a floor plan from a house description.

The description is parsed into structured requirements, a room inventory is
built and dimensioned, and the rooms are packed into a rectangular layout.
The result is written as one or more artifacts:

  svg    floor plan drawing
  json   plan document (positions, dimensions, requirements)
  dot    room adjacency graph in Graphviz DOT format
  graph  adjacency graph rendered to SVG via Graphviz

Results are cached locally for faster subsequent runs; use --refresh to
force regeneration and --no-cache to disable caching entirely.`,
		Example: `  homeplan generate "2500 sqft Ranch, 4 bedrooms, 3 bathrooms, 2 car garage"
  homeplan generate -f svg,json -o plans/myhouse "3000 sq ft Colonial with office"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Description = strings.Join(args, " ")
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runGenerate(cmd.Context(), opts, generateParams{
				output:     output,
				configPath: configPath,
				noCache:    noCache,
				preview:    preview,
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, dot, graph (comma-separated)")
	cmd.Flags().StringVar(&configPath, "config", "", "config file with catalog and packing overrides")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "bypass the plan cache and regenerate")
	cmd.Flags().Float64Var(&opts.Scale, "scale", 0, "millimeter-to-pixel scale for SVG output")
	cmd.Flags().BoolVar(&opts.NoLabels, "no-labels", false, "omit room labels in SVG output")
	cmd.Flags().BoolVar(&opts.Grid, "grid", false, "draw a one-meter grid in SVG output")
	cmd.Flags().BoolVar(&preview, "preview", false, "browse the room list interactively before writing")

	return cmd
}

type generateParams struct {
	output     string
	configPath string
	noCache    bool
	preview    bool
}

// runGenerate executes the pipeline and writes the artifacts.
func (c *CLI) runGenerate(ctx context.Context, opts pipeline.Options, params generateParams) error {
	logger := loggerFromContext(ctx)
	runner, err := c.newRunner(ctx, params.configPath, params.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()
	opts.Logger = logger

	prog := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, "Generating floor plan...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Generation failed")
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Generated %d rooms", result.Stats.RoomCount))

	printSuccess("Generated %s plan for %.0f sqft",
		result.Plan.Style, result.Requirements.TotalArea)
	printStats(result.Stats.RoomCount, result.Plan.Footprint, result.CacheInfo.GenerateHit)

	if params.preview {
		model := NewRoomListModel(result.Plan)
		if _, err := tea.NewProgram(model).Run(); err != nil {
			printWarning("preview unavailable: %v", err)
		}
	} else {
		printRoomTable(result.Plan)
	}

	return writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		base:      params.output,
		fallback:  "plan",
	})
}
