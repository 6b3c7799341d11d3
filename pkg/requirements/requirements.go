// Package requirements defines the structured house-requirements record that
// drives floor-plan generation, along with a small natural-language parser
// that extracts a record from a free-form house description.
//
// The generation engine in pkg/plan consumes a [HouseRequirements] value and
// nothing else; the parser here is a convenience producer. Callers that
// already have structured data can build the record directly and skip parsing.
package requirements

// HouseRequirements is the structured representation of what the house
// should contain. Zero or negative counts are tolerated everywhere
// downstream; use [HouseRequirements.Normalize] to clamp them explicitly.
type HouseRequirements struct {
	// TotalArea is the requested total floor area in square feet.
	TotalArea float64 `json:"total_area" bson:"total_area"`

	// Style is an architectural style tag (e.g. "Ranch", "Colonial").
	// It is informational and does not affect the generated layout.
	Style string `json:"style" bson:"style"`

	// Bedrooms is the total bedroom count, including the master bedroom.
	Bedrooms int `json:"bedrooms" bson:"bedrooms"`

	// Bathrooms is the bathroom count. A fractional part of 0.5 or more
	// signals a half bath (powder room), e.g. 2.5 = two full plus one half.
	Bathrooms float64 `json:"bathrooms" bson:"bathrooms"`

	// GarageCars is the garage capacity in cars. Zero means no garage.
	GarageCars int `json:"garage_cars" bson:"garage_cars"`

	// HasAttic and HasBasement are informational flags; single-story
	// layouts ignore them.
	HasAttic    bool `json:"has_attic,omitempty" bson:"has_attic,omitempty"`
	HasBasement bool `json:"has_basement,omitempty" bson:"has_basement,omitempty"`

	// SpecialRooms lists extra room tags (e.g. "gameroom", "office").
	// Tags not present in the room catalog are skipped silently.
	SpecialRooms []string `json:"special_rooms,omitempty" bson:"special_rooms,omitempty"`

	// BathroomTypes lists bathroom type tags (e.g. "jack_and_jill").
	BathroomTypes []string `json:"bathroom_types,omitempty" bson:"bathroom_types,omitempty"`

	// Stories is the story count. Layout generation is single-story; the
	// value is carried through for downstream consumers.
	Stories int `json:"stories" bson:"stories"`
}

// Default values used when extraction is inconclusive.
const (
	DefaultTotalArea  = 2000.0
	DefaultStyle      = "Ranch"
	DefaultBedrooms   = 3
	DefaultBathrooms  = 2.0
	DefaultGarageCars = 2
	DefaultStories    = 1
)

// Defaults returns a requirements record populated with the default values.
func Defaults() HouseRequirements {
	return HouseRequirements{
		TotalArea:  DefaultTotalArea,
		Style:      DefaultStyle,
		Bedrooms:   DefaultBedrooms,
		Bathrooms:  DefaultBathrooms,
		GarageCars: DefaultGarageCars,
		Stories:    DefaultStories,
	}
}

// Normalize clamps malformed values so that downstream arithmetic stays
// total: negative counts and areas become zero, and the story count is
// raised to at least one. It returns the receiver for chaining.
func (r HouseRequirements) Normalize() HouseRequirements {
	if r.TotalArea < 0 {
		r.TotalArea = 0
	}
	if r.Bedrooms < 0 {
		r.Bedrooms = 0
	}
	if r.Bathrooms < 0 {
		r.Bathrooms = 0
	}
	if r.GarageCars < 0 {
		r.GarageCars = 0
	}
	if r.Stories < 1 {
		r.Stories = 1
	}
	return r
}

// HasBathroomType reports whether the given bathroom type tag was requested.
func (r HouseRequirements) HasBathroomType(tag string) bool {
	for _, t := range r.BathroomTypes {
		if t == tag {
			return true
		}
	}
	return false
}
