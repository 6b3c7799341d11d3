// Package pipeline provides the core plan generation pipeline for homeplan.
//
// This package implements the complete parse → generate → render pipeline
// shared by the CLI and the HTTP API. Centralizing it keeps caching and
// defaulting behavior identical across entry points.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: Extract house requirements from a natural-language description
//  2. Generate: Build the room inventory, dimension it and pack the layout
//  3. Render: Produce output artifacts (SVG, JSON, DOT, adjacency graph)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, nil, logger)
//	opts := pipeline.Options{
//	    Description: "2500 sqft Ranch, 4 bedrooms, 3 bathrooms, 2 car garage",
//	    Formats:     []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jwinther/homeplan/pkg/cache"
	"github.com/jwinther/homeplan/pkg/errors"
	"github.com/jwinther/homeplan/pkg/plan"
	"github.com/jwinther/homeplan/pkg/render/floorplan"
	"github.com/jwinther/homeplan/pkg/requirements"
)

// Format constants for output formats.
const (
	FormatSVG   = "svg"   // floor plan drawing
	FormatJSON  = "json"  // plan document
	FormatDOT   = "dot"   // adjacency graph source
	FormatGraph = "graph" // adjacency graph rendered to SVG via Graphviz
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:   true,
	FormatJSON:  true,
	FormatDOT:   true,
	FormatGraph: true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, json, dot, graph)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Options contains all configuration for one pipeline run. The struct
// supports JSON serialization for API requests.
type Options struct {
	// Parse options. Requirements, when set, bypasses the parser;
	// otherwise Description is parsed.
	Description  string                          `json:"description,omitempty"`
	Requirements *requirements.HouseRequirements `json:"requirements,omitempty"`

	// Refresh bypasses the plan cache and regenerates.
	Refresh bool `json:"refresh,omitempty"`

	// Render options.
	Formats  []string `json:"formats,omitempty"`
	Scale    float64  `json:"scale,omitempty"`
	NoLabels bool     `json:"no_labels,omitempty"`
	Grid     bool     `json:"grid,omitempty"`

	// Runtime options (not serialized).
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Requirements is the parsed (or passed-through) requirements record.
	Requirements requirements.HouseRequirements

	// Plan is the generated floor plan.
	Plan plan.Plan

	// PlanHash is the content hash of the plan document.
	PlanHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	RoomCount    int
	ParseTime    time.Duration
	GenerateTime time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	GenerateHit bool // whether the plan came from cache
	RenderHit   bool // whether all artifacts came from cache
}

// ValidateAndSetDefaults checks required fields and applies defaults for
// the full pipeline. Idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForParse(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForParse checks required fields for the parse stage.
func (o *Options) ValidateForParse() error {
	if o.Description == "" && o.Requirements == nil {
		return errors.New(errors.ErrCodeInvalidInput, "description or requirements is required")
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = floorplan.DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	return ValidateFormats(o.Formats)
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Scale:  o.Scale,
		Labels: !o.NoLabels,
		Grid:   o.Grid,
	}
}

// SVGOptions converts the render options to floor plan SVG options.
func (o *Options) SVGOptions() []floorplan.SVGOption {
	opts := []floorplan.SVGOption{floorplan.WithScale(o.Scale)}
	if o.NoLabels {
		opts = append(opts, floorplan.WithoutLabels())
	}
	if o.Grid {
		opts = append(opts, floorplan.WithGrid())
	}
	return opts
}
