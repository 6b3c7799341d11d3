package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jwinther/homeplan/pkg/cache"
	"github.com/jwinther/homeplan/pkg/observability"
	"github.com/jwinther/homeplan/pkg/plan"
	"github.com/jwinther/homeplan/pkg/requirements"
)

// Runner encapsulates pipeline execution with caching. Both CLI and API
// use it to avoid duplicating caching logic.
//
// The Runner is stateless except for its collaborators. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache     cache.Cache
	Keyer     cache.Keyer
	Generator *plan.Generator
	Logger    *log.Logger
}

// NewRunner creates a runner. Nil collaborators get defaults: a NullCache
// (caching disabled), the default keyer, the default generator and the
// default logger.
func NewRunner(c cache.Cache, keyer cache.Keyer, gen *plan.Generator, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if gen == nil {
		gen = plan.NewGenerator()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Generator: gen, Logger: logger}
}

// Execute runs the complete parse → generate → render pipeline with
// caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{Artifacts: make(map[string][]byte)}

	// Stage 1: Parse
	parseStart := time.Now()
	observability.Pipeline().OnParseStart(ctx, opts.Description)
	req := r.Requirements(opts)
	result.Requirements = req
	result.Stats.ParseTime = time.Since(parseStart)
	observability.Pipeline().OnParseComplete(ctx, opts.Description, result.Stats.ParseTime)

	r.Logger.Info("parsed requirements",
		"style", req.Style,
		"bedrooms", req.Bedrooms,
		"bathrooms", req.Bathrooms,
		"sqft", req.TotalArea)

	// Stage 2: Generate
	genStart := time.Now()
	observability.Pipeline().OnGenerateStart(ctx, req.Style)
	p, genHit, err := r.GenerateWithCacheInfo(ctx, req, opts)
	result.Stats.GenerateTime = time.Since(genStart)
	observability.Pipeline().OnGenerateComplete(ctx, req.Style, len(p.Rooms), result.Stats.GenerateTime, err)
	if err != nil {
		return nil, err
	}
	result.Plan = p
	result.Stats.RoomCount = len(p.Rooms)
	result.CacheInfo.GenerateHit = genHit

	if data, err := json.Marshal(p); err == nil {
		result.PlanHash = cache.Hash(data)
	}

	r.Logger.Info("generated plan",
		"rooms", len(p.Rooms),
		"footprint_mm", p.Footprint,
		"duration", result.Stats.GenerateTime)

	// Stage 3: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, p, req, result.PlanHash, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Requirements resolves the requirements record for a run: the explicit
// record when provided, otherwise the parsed description.
func (r *Runner) Requirements(opts Options) requirements.HouseRequirements {
	if opts.Requirements != nil {
		return opts.Requirements.Normalize()
	}
	return requirements.Parse(opts.Description)
}

// GenerateWithCacheInfo generates a plan with caching and returns cache
// hit info.
func (r *Runner) GenerateWithCacheInfo(ctx context.Context, req requirements.HouseRequirements, opts Options) (plan.Plan, bool, error) {
	cacheKey := r.Keyer.PlanKey(req, r.planKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached plan.Plan
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.Cache().OnCacheHit(ctx, "plan")
				return cached, true, nil
			}
			// corrupt entry, fall through and regenerate
		}
	}
	observability.Cache().OnCacheMiss(ctx, "plan")

	p := r.Generator.Generate(req)

	if data, err := json.Marshal(p); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLPlan)
		observability.Cache().OnCacheSet(ctx, "plan", len(data))
	}

	return p, false, nil
}

// Generate is a convenience wrapper that discards the cache hit info.
func (r *Runner) Generate(ctx context.Context, req requirements.HouseRequirements, opts Options) (plan.Plan, error) {
	p, _, err := r.GenerateWithCacheInfo(ctx, req, opts)
	return p, err
}

// RenderWithCacheInfo renders artifacts with caching and returns cache hit
// info. planHash keys the artifact cache; pass the hash of the plan's JSON
// document.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, p plan.Plan, req requirements.HouseRequirements, planHash string, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// Try to get all formats from cache.
	allCached := true
	artifacts := make(map[string][]byte)
	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(planHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			artifacts[format] = data
		} else {
			allCached = false
			break
		}
	}
	if allCached && len(artifacts) == len(opts.Formats) {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return artifacts, true, nil
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	rendered, err := RenderFromPlan(ctx, p, req, opts)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(planHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return rendered, false, nil
}

// Render is a convenience wrapper that discards the cache hit info.
func (r *Runner) Render(ctx context.Context, p plan.Plan, req requirements.HouseRequirements, planHash string, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, p, req, planHash, opts)
	return artifacts, err
}

// planKeyOpts captures the generator settings that invalidate cached
// plans: the packer constants and a fingerprint of the catalog policies.
func (r *Runner) planKeyOpts() cache.PlanKeyOpts {
	packer := r.Generator.Packer()
	opts := cache.PlanKeyOpts{
		Gap:            packer.Gap,
		Margin:         packer.Margin,
		RowWidthFactor: packer.RowWidthFactor,
	}
	if data, err := json.Marshal(r.Generator.Catalog().Policies()); err == nil {
		opts.CatalogFingerprint = cache.Hash(data)
	}
	return opts
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
