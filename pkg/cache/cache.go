// Package cache provides pluggable caching for the plan generation pipeline.
//
// Generation itself is cheap, but rendered artifacts (Graphviz SVGs in
// particular) are worth keeping between CLI invocations. Two backends are
// provided: [FileCache] for on-disk persistence and [NullCache] to disable
// caching entirely.
//
// Keys are derived from the inputs that determine the output: the house
// requirements plus the engine settings for plans, and the plan hash plus
// render options for artifacts. [Keyer] centralizes that derivation so all
// callers agree on what invalidates what.
package cache

import (
	"context"
	"time"

	"github.com/jwinther/homeplan/pkg/requirements"
)

// Cache is a byte-oriented key-value store with optional expiration.
type Cache interface {
	// Get returns the cached value and whether the key was present. A miss
	// is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// PlanKeyOpts captures the engine settings that affect a generated plan.
// Two generations with equal requirements and equal opts produce equal
// plans, so they may share a cache entry.
type PlanKeyOpts struct {
	Gap            int
	Margin         int
	RowWidthFactor float64

	// CatalogFingerprint distinguishes catalogs with overridden policies.
	// Empty means the default catalog.
	CatalogFingerprint string
}

// ArtifactKeyOpts captures the render settings that affect an output
// artifact derived from a plan.
type ArtifactKeyOpts struct {
	Format string
	Scale  float64
	Labels bool
	Grid   bool
}

// Keyer derives cache keys from generation inputs.
type Keyer interface {
	// PlanKey returns the key for a generated plan.
	PlanKey(req requirements.HouseRequirements, opts PlanKeyOpts) string

	// ArtifactKey returns the key for a rendered artifact of the plan
	// identified by planHash.
	ArtifactKey(planHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes the inputs into namespaced sha256 keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return &DefaultKeyer{} }

// PlanKey generates a key of the form "plan:<sha256>".
func (k *DefaultKeyer) PlanKey(req requirements.HouseRequirements, opts PlanKeyOpts) string {
	return hashKey("plan", req, opts)
}

// ArtifactKey generates a key of the form "artifact:<sha256>".
func (k *DefaultKeyer) ArtifactKey(planHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", planHash, opts)
}

var _ Keyer = (*DefaultKeyer)(nil)
