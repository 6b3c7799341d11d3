package plan

// Catalog is the immutable room category catalog: the per-category policy
// table (nominal area, aspect ratio, window count) consulted by the
// inventory builder and the dimension calculator.
//
// A Catalog is never mutated after construction, so a single instance may
// be shared across concurrent generations without locking. Overrides are
// applied at construction time via [CatalogOption] values.
type Catalog struct {
	policies map[Category]Policy
}

// CatalogOption customizes a Catalog during construction.
type CatalogOption func(map[Category]Policy)

// WithArea overrides the nominal area (sqft) for a category. Overrides for
// categories outside the closed set are ignored.
func WithArea(c Category, sqft float64) CatalogOption {
	return func(m map[Category]Policy) {
		if p, ok := m[c]; ok {
			p.NominalArea = sqft
			m[c] = p
		}
	}
}

// WithAspectRatio overrides the aspect ratio (length/width) for a category.
func WithAspectRatio(c Category, ratio float64) CatalogOption {
	return func(m map[Category]Policy) {
		if p, ok := m[c]; ok {
			p.AspectRatio = ratio
			m[c] = p
		}
	}
}

// NewCatalog builds a catalog from the default policy table with the given
// overrides applied.
func NewCatalog(opts ...CatalogOption) Catalog {
	m := make(map[Category]Policy, len(defaultPolicies))
	for c, p := range defaultPolicies {
		m[c] = p
	}
	for _, opt := range opts {
		opt(m)
	}
	return Catalog{policies: m}
}

// DefaultCatalog returns the built-in catalog without overrides.
func DefaultCatalog() Catalog {
	return NewCatalog()
}

// Lookup returns the policy for a category. The second return value is
// false for categories outside the closed set; callers requesting unknown
// special-room tags are expected to skip them silently rather than fail.
func (c Catalog) Lookup(cat Category) (Policy, bool) {
	p, ok := c.policies[cat]
	return p, ok
}

// Has reports whether the category is part of the catalog.
func (c Catalog) Has(cat Category) bool {
	_, ok := c.policies[cat]
	return ok
}

// Area returns the nominal area (sqft) for a category, or zero for
// unknown categories.
func (c Catalog) Area(cat Category) float64 {
	return c.policies[cat].NominalArea
}

// AspectRatio returns the aspect ratio for a category. Unknown categories
// fall back to [DefaultAspectRatio].
func (c Catalog) AspectRatio(cat Category) float64 {
	if p, ok := c.policies[cat]; ok && p.AspectRatio > 0 {
		return p.AspectRatio
	}
	return DefaultAspectRatio
}

// Windows returns the default window count for a category, or zero for
// unknown categories.
func (c Catalog) Windows(cat Category) int {
	return c.policies[cat].Windows
}

// Policies returns a copy of the full policy table.
func (c Catalog) Policies() map[Category]Policy {
	out := make(map[Category]Policy, len(c.policies))
	for cat, p := range c.policies {
		out[cat] = p
	}
	return out
}

// Categories returns the number of categories in the catalog.
func (c Catalog) Categories() int {
	return len(c.policies)
}
