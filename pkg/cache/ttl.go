package cache

import "time"

// Cache TTLs per entry kind. Plans are pure functions of their inputs so
// the TTL only bounds disk growth, not staleness.
const (
	TTLPlan     = 7 * 24 * time.Hour
	TTLArtifact = 24 * time.Hour
)
