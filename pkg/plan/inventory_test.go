package plan

import (
	"strings"
	"testing"

	"github.com/jwinther/homeplan/pkg/requirements"
)

func countCategory(rooms []Room, cat Category) int {
	n := 0
	for _, r := range rooms {
		if r.Category == cat {
			n++
		}
	}
	return n
}

func findRoom(rooms []Room, name string) (Room, bool) {
	for _, r := range rooms {
		if r.Name == name {
			return r, true
		}
	}
	return Room{}, false
}

func TestBuildInventoryBedrooms(t *testing.T) {
	tests := []struct {
		name         string
		bedrooms     int
		wantMaster   int
		wantBedrooms int
	}{
		{"single bedroom", 1, 1, 0},
		{"three bedrooms", 3, 1, 2},
		{"five bedrooms", 5, 1, 4},
		{"zero bedrooms still has master", 0, 1, 0},
		{"negative clamps to zero", -2, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := requirements.Defaults()
			req.Bedrooms = tt.bedrooms
			rooms := BuildInventory(DefaultCatalog(), req)

			if got := countCategory(rooms, CategoryMasterBedroom); got != tt.wantMaster {
				t.Errorf("master bedrooms = %d, want %d", got, tt.wantMaster)
			}
			if got := countCategory(rooms, CategoryBedroom); got != tt.wantBedrooms {
				t.Errorf("additional bedrooms = %d, want %d", got, tt.wantBedrooms)
			}
		})
	}
}

func TestBuildInventoryBedroomNumbering(t *testing.T) {
	req := requirements.Defaults()
	req.Bedrooms = 4
	rooms := BuildInventory(DefaultCatalog(), req)

	for _, name := range []string{"Bedroom 2", "Bedroom 3", "Bedroom 4"} {
		if _, ok := findRoom(rooms, name); !ok {
			t.Errorf("missing room %q", name)
		}
	}
	if _, ok := findRoom(rooms, "Bedroom 1"); ok {
		t.Error("unexpected room \"Bedroom 1\"; numbering starts at 2")
	}
}

func TestBuildInventoryBathrooms(t *testing.T) {
	tests := []struct {
		name        string
		bathrooms   float64
		types       []string
		wantMaster  int
		wantJNJ     int
		wantNumbers int
		wantPowder  int
	}{
		{
			name:        "four full with jack and jill",
			bathrooms:   4.0,
			types:       []string{"jack_and_jill"},
			wantMaster:  1,
			wantJNJ:     1,
			wantNumbers: 2,
			wantPowder:  0,
		},
		{
			name:        "two and a half",
			bathrooms:   2.5,
			wantMaster:  1,
			wantJNJ:     0,
			wantNumbers: 1,
			wantPowder:  1,
		},
		{
			name:        "one full only",
			bathrooms:   1.0,
			wantMaster:  1,
			wantJNJ:     0,
			wantNumbers: 0,
			wantPowder:  0,
		},
		{
			name:        "jack and jill needs a free full slot",
			bathrooms:   1.0,
			types:       []string{"jack_and_jill"},
			wantMaster:  1,
			wantJNJ:     0,
			wantNumbers: 0,
			wantPowder:  0,
		},
		{
			name:        "half below threshold is dropped",
			bathrooms:   2.4,
			wantMaster:  1,
			wantJNJ:     0,
			wantNumbers: 1,
			wantPowder:  0,
		},
		{
			// The master bathroom is emitted unconditionally, so a request
			// below one full bath still realizes 1.5 baths. The arithmetic
			// is preserved as specified, not corrected.
			name:        "half bath only diverges upward",
			bathrooms:   0.5,
			wantMaster:  1,
			wantJNJ:     0,
			wantNumbers: 0,
			wantPowder:  1,
		},
		{
			// Jack and Jill consumes the last full slot; the powder room is
			// still emitted from the fractional part.
			name:        "jack and jill plus half",
			bathrooms:   2.5,
			types:       []string{"jack_and_jill"},
			wantMaster:  1,
			wantJNJ:     1,
			wantNumbers: 0,
			wantPowder:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := requirements.Defaults()
			req.Bathrooms = tt.bathrooms
			req.BathroomTypes = tt.types
			rooms := BuildInventory(DefaultCatalog(), req)

			if got := countCategory(rooms, CategoryMasterBathroom); got != tt.wantMaster {
				t.Errorf("master bathrooms = %d, want %d", got, tt.wantMaster)
			}
			if got := countCategory(rooms, CategoryJackAndJillBathroom); got != tt.wantJNJ {
				t.Errorf("jack and jill bathrooms = %d, want %d", got, tt.wantJNJ)
			}
			if got := countCategory(rooms, CategoryBathroom); got != tt.wantNumbers {
				t.Errorf("numbered bathrooms = %d, want %d", got, tt.wantNumbers)
			}
			if got := countCategory(rooms, CategoryHalfBathroom); got != tt.wantPowder {
				t.Errorf("powder rooms = %d, want %d", got, tt.wantPowder)
			}
		})
	}
}

func TestBuildInventoryEssentialRooms(t *testing.T) {
	rooms := BuildInventory(DefaultCatalog(), requirements.Defaults())

	for _, cat := range []Category{CategoryKitchen, CategoryDiningRoom, CategoryLivingRoom, CategoryFoyer} {
		if got := countCategory(rooms, cat); got != 1 {
			t.Errorf("%s count = %d, want 1", cat, got)
		}
	}

	kitchen, _ := findRoom(rooms, "Kitchen")
	if kitchen.Windows != 2 {
		t.Errorf("kitchen windows = %d, want 2", kitchen.Windows)
	}
	living, _ := findRoom(rooms, "Living Room")
	if living.Windows != 3 {
		t.Errorf("living room windows = %d, want 3", living.Windows)
	}
}

func TestBuildInventoryGarage(t *testing.T) {
	tests := []struct {
		name     string
		cars     int
		wantRoom bool
		wantArea float64
		wantName string
	}{
		{"three car garage", 3, true, 750, "3 Car Garage"},
		{"single car garage", 1, true, 250, "1 Car Garage"},
		{"no garage", 0, false, 0, ""},
		{"negative clamps to none", -1, false, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := requirements.Defaults()
			req.GarageCars = tt.cars
			rooms := BuildInventory(DefaultCatalog(), req)

			got := countCategory(rooms, CategoryGarage)
			if !tt.wantRoom {
				if got != 0 {
					t.Fatalf("garage count = %d, want 0", got)
				}
				return
			}
			if got != 1 {
				t.Fatalf("garage count = %d, want 1", got)
			}
			garage, ok := findRoom(rooms, tt.wantName)
			if !ok {
				t.Fatalf("missing room %q", tt.wantName)
			}
			if garage.TargetArea != tt.wantArea {
				t.Errorf("garage area = %v, want %v", garage.TargetArea, tt.wantArea)
			}
			if garage.Windows != 0 {
				t.Errorf("garage windows = %d, want 0", garage.Windows)
			}
		})
	}
}

func TestBuildInventorySpecialRooms(t *testing.T) {
	req := requirements.Defaults()
	req.SpecialRooms = []string{"gameroom", "media_room", "wine_cellar", "office"}
	rooms := BuildInventory(DefaultCatalog(), req)

	// Unknown tags are skipped silently.
	for _, r := range rooms {
		if strings.Contains(r.Name, "Wine") {
			t.Errorf("unknown tag produced room %q", r.Name)
		}
	}

	media, ok := findRoom(rooms, "Media Room")
	if !ok {
		t.Fatal("missing room \"Media Room\"")
	}
	if media.Category != CategoryMediaRoom {
		t.Errorf("media room category = %s, want %s", media.Category, CategoryMediaRoom)
	}
	if media.Windows != 1 {
		t.Errorf("media room windows = %d, want 1", media.Windows)
	}

	if _, ok := findRoom(rooms, "Gameroom"); !ok {
		t.Error("missing room \"Gameroom\"")
	}
	if _, ok := findRoom(rooms, "Office"); !ok {
		t.Error("missing room \"Office\"")
	}
}

func TestBuildInventoryHallway(t *testing.T) {
	tests := []struct {
		name     string
		bedrooms int
		want     int
	}{
		{"two bedrooms no hallway", 2, 0},
		{"three bedrooms adds hallway", 3, 1},
		{"five bedrooms still one hallway", 5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := requirements.Defaults()
			req.Bedrooms = tt.bedrooms
			rooms := BuildInventory(DefaultCatalog(), req)
			if got := countCategory(rooms, CategoryHallway); got != tt.want {
				t.Errorf("hallway count = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{"gameroom", "Gameroom"},
		{"media_room", "Media Room"},
		{"home_theater", "Home Theater"},
		{"gym", "Gym"},
	}

	for _, tt := range tests {
		if got := displayName(tt.tag); got != tt.want {
			t.Errorf("displayName(%q) = %q, want %q", tt.tag, got, tt.want)
		}
	}
}
