package plan

// Category identifies a room category. The set of categories is closed:
// every Category used by the engine appears in the default policy table,
// and lookups against unknown categories report failure instead of
// guessing. This replaces scattered string comparisons with a single
// per-category policy table.
type Category string

// The closed set of room categories.
const (
	CategoryMasterBedroom       Category = "master_bedroom"
	CategoryBedroom             Category = "bedroom"
	CategoryBathroom            Category = "bathroom"
	CategoryJackAndJillBathroom Category = "jack_and_jill_bathroom"
	CategoryMasterBathroom      Category = "master_bathroom"
	CategoryHalfBathroom        Category = "half_bathroom"
	CategoryKitchen             Category = "kitchen"
	CategoryDiningRoom          Category = "dining_room"
	CategoryLivingRoom          Category = "living_room"
	CategoryGarage              Category = "garage"
	CategoryGameroom            Category = "gameroom"
	CategoryDen                 Category = "den"
	CategoryOffice              Category = "office"
	CategoryStudy               Category = "study"
	CategoryLibrary             Category = "library"
	CategoryMediaRoom           Category = "media_room"
	CategoryHomeTheater         Category = "home_theater"
	CategoryGym                 Category = "gym"
	CategoryMudroom             Category = "mudroom"
	CategoryLaundry             Category = "laundry"
	CategoryPantry              Category = "pantry"
	CategoryHallway             Category = "hallway"
	CategoryFoyer               Category = "foyer"
)

// Policy describes the layout rules for one room category.
type Policy struct {
	// NominalArea is the catalog area in square feet. For garages this is
	// the per-car unit area.
	NominalArea float64

	// AspectRatio is length divided by width. Garages are deeper than
	// wide, hallways long and narrow, large living spaces close to square.
	AspectRatio float64

	// Windows is the default window count for rooms of this category.
	Windows int
}

// DefaultAspectRatio applies to every category without an explicit ratio.
const DefaultAspectRatio = 1.3

// defaultPolicies is the built-in per-category policy table. It is copied
// into each Catalog on construction and never mutated.
var defaultPolicies = map[Category]Policy{
	CategoryMasterBedroom:       {NominalArea: 300, AspectRatio: 1.2, Windows: 2},
	CategoryBedroom:             {NominalArea: 150, AspectRatio: DefaultAspectRatio, Windows: 1},
	CategoryBathroom:            {NominalArea: 40, AspectRatio: DefaultAspectRatio, Windows: 1},
	CategoryJackAndJillBathroom: {NominalArea: 80, AspectRatio: DefaultAspectRatio, Windows: 1},
	CategoryMasterBathroom:      {NominalArea: 100, AspectRatio: DefaultAspectRatio, Windows: 1},
	CategoryHalfBathroom:        {NominalArea: 25, AspectRatio: DefaultAspectRatio, Windows: 0},
	CategoryKitchen:             {NominalArea: 200, AspectRatio: DefaultAspectRatio, Windows: 2},
	CategoryDiningRoom:          {NominalArea: 150, AspectRatio: DefaultAspectRatio, Windows: 1},
	CategoryLivingRoom:          {NominalArea: 300, AspectRatio: 1.2, Windows: 3},
	CategoryGarage:              {NominalArea: 250, AspectRatio: 1.5, Windows: 0},
	CategoryGameroom:            {NominalArea: 250, AspectRatio: DefaultAspectRatio, Windows: 1},
	CategoryDen:                 {NominalArea: 150, AspectRatio: DefaultAspectRatio, Windows: 1},
	CategoryOffice:              {NominalArea: 120, AspectRatio: DefaultAspectRatio, Windows: 1},
	CategoryStudy:               {NominalArea: 120, AspectRatio: DefaultAspectRatio, Windows: 1},
	CategoryLibrary:             {NominalArea: 150, AspectRatio: DefaultAspectRatio, Windows: 1},
	CategoryMediaRoom:           {NominalArea: 200, AspectRatio: DefaultAspectRatio, Windows: 1},
	CategoryHomeTheater:         {NominalArea: 300, AspectRatio: DefaultAspectRatio, Windows: 1},
	CategoryGym:                 {NominalArea: 200, AspectRatio: DefaultAspectRatio, Windows: 1},
	CategoryMudroom:             {NominalArea: 50, AspectRatio: 3.0, Windows: 1},
	CategoryLaundry:             {NominalArea: 50, AspectRatio: DefaultAspectRatio, Windows: 1},
	CategoryPantry:              {NominalArea: 30, AspectRatio: DefaultAspectRatio, Windows: 1},
	CategoryHallway:             {NominalArea: 50, AspectRatio: 3.0, Windows: 0},
	CategoryFoyer:               {NominalArea: 80, AspectRatio: DefaultAspectRatio, Windows: 0},
}
