// Package cli implements the homeplan command-line interface.
//
// This package provides commands for parsing house descriptions into
// structured requirements, generating floor plans, re-rendering saved plan
// documents, serving the HTTP API and managing the artifact cache. The CLI
// is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - parse: Extract structured requirements from a house description
//   - generate: Generate a floor plan and render output artifacts
//   - render: Re-render a saved plan document to other formats
//   - serve: Run the HTTP API server
//   - cache: Manage the artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jwinther/homeplan/pkg/buildinfo"
	"github.com/jwinther/homeplan/pkg/cache"
	"github.com/jwinther/homeplan/pkg/config"
	"github.com/jwinther/homeplan/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "homeplan"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "homeplan",
		Short:        "Homeplan generates house floor plans from plain descriptions",
		Long:         `Homeplan is a CLI tool that turns a plain-language house description into a packed 2D floor plan, rendered as SVG, JSON or a Graphviz adjacency graph.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		// The logger rides the command context so every command can reach
		// it via loggerFromContext.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.parseCommand())
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use, honoring the optional
// config file for catalog and packing overrides. The runner logs through
// the context logger.
func (c *CLI) newRunner(ctx context.Context, configPath string, noCache bool) (*pipeline.Runner, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	store, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, nil, cfg.Generator(), loggerFromContext(ctx)), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/homeplan/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	var formats []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			formats = append(formats, f)
		}
	}
	return formats
}
