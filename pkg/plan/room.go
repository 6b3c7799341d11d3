package plan

// Room is a single room in the generated floor plan.
//
// Lifecycle: created without geometry by the inventory builder, given
// Width/Length by the dimension calculator, given X/Y (and final scaled
// dimensions) by the packer, then immutable. Downstream consumers such as
// 3D modelers read the final value and must not mutate it.
type Room struct {
	// Name is the unique display name ("Master Bedroom", "Bedroom 2").
	Name string `json:"name" bson:"name"`

	// Category is the room's category tag from the closed enumeration.
	Category Category `json:"category" bson:"category"`

	// TargetArea is the nominal area in square feet, set at creation and
	// never rescaled; packing scale is applied to the dimensions only.
	TargetArea float64 `json:"target_area" bson:"target_area"`

	// Width and Length are the room dimensions in millimeters. Length runs
	// along the packing row (x axis), width across it (y axis).
	Width  int `json:"width" bson:"width"`
	Length int `json:"length" bson:"length"`

	// X and Y anchor the room's top-left corner in millimeters, assigned
	// by the packer. Both are always >= 0 after packing.
	X int `json:"x" bson:"x"`
	Y int `json:"y" bson:"y"`

	// Windows is the window count from the category policy.
	Windows int `json:"windows" bson:"windows"`

	// Adjacent lists the names of rooms placed next to this one in the
	// packed layout. Informational only: it is not a door or circulation
	// graph, and nothing downstream depends on it.
	Adjacent []string `json:"adjacent,omitempty" bson:"adjacent,omitempty"`
}

// Footprint is the overall bounding region of the packed plan in
// millimeters, inclusive of the outer margin.
type Footprint struct {
	Length int `json:"length" bson:"length"`
	Width  int `json:"width" bson:"width"`
}

// Plan is the result of one generation run: the final room sequence in
// emission order plus the overall footprint.
type Plan struct {
	Style     string    `json:"style" bson:"style"`
	TotalArea float64   `json:"total_area" bson:"total_area"`
	Rooms     []Room    `json:"rooms" bson:"rooms"`
	Footprint Footprint `json:"footprint" bson:"footprint"`
}

// RoomArea returns the sum of the nominal room areas in square feet.
func (p Plan) RoomArea() float64 {
	var sum float64
	for _, r := range p.Rooms {
		sum += r.TargetArea
	}
	return sum
}
