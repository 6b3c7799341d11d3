package cache

import "github.com/jwinther/homeplan/pkg/requirements"

// ScopedKeyer prefixes all keys from an inner keyer, isolating cache
// namespaces when one backend is shared (per-user API sessions, test runs).
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner with a key prefix. A nil inner falls back to
// the default keyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// PlanKey generates a prefixed plan key.
func (k *ScopedKeyer) PlanKey(req requirements.HouseRequirements, opts PlanKeyOpts) string {
	return k.prefix + k.inner.PlanKey(req, opts)
}

// ArtifactKey generates a prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(planHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(planHash, opts)
}

var _ Keyer = (*ScopedKeyer)(nil)
