package plan

import (
	"math"
	"testing"

	"github.com/jwinther/homeplan/pkg/requirements"
)

func TestDimensions(t *testing.T) {
	tests := []struct {
		name       string
		sqft       float64
		aspect     float64
		wantWidth  int
		wantLength int
	}{
		{
			// width = floor(sqrt(300*92903.04/1.2)), length = floor(area/width)
			name:       "master bedroom 300 sqft",
			sqft:       300,
			aspect:     1.2,
			wantWidth:  4819,
			wantLength: 5783,
		},
		{
			name:       "zero area degenerates to zero extent",
			sqft:       0,
			aspect:     1.3,
			wantWidth:  0,
			wantLength: 0,
		},
		{
			name:       "negative area degenerates to zero extent",
			sqft:       -10,
			aspect:     1.3,
			wantWidth:  0,
			wantLength: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, l := dimensions(tt.sqft, tt.aspect)
			if w != tt.wantWidth || l != tt.wantLength {
				t.Errorf("dimensions(%v, %v) = %d x %d, want %d x %d",
					tt.sqft, tt.aspect, w, l, tt.wantWidth, tt.wantLength)
			}
		})
	}
}

func TestDimensionsApproximateArea(t *testing.T) {
	// width*length must approximate the target area with rounding error
	// bounded by one width unit.
	for _, sqft := range []float64{25, 40, 80, 150, 300, 750} {
		for _, aspect := range []float64{1.2, 1.3, 1.5, 3.0} {
			w, l := dimensions(sqft, aspect)
			areaMM2 := sqft * MM2PerSqFt
			diff := math.Abs(areaMM2 - float64(w)*float64(l))
			if diff > float64(w) {
				t.Errorf("dimensions(%v, %v): |%v - %d*%d| = %v exceeds one width unit",
					sqft, aspect, areaMM2, w, l, diff)
			}
		}
	}
}

func TestDimensionRoomsAspectPolicy(t *testing.T) {
	catalog := DefaultCatalog()
	req := requirements.Defaults()
	req.GarageCars = 2
	req.SpecialRooms = []string{"mudroom"}

	rooms := BuildInventory(catalog, req)
	DimensionRooms(catalog, rooms)

	tests := []struct {
		roomName string
		aspect   float64
	}{
		{"2 Car Garage", 1.5},
		{"Hallway", 3.0},
		{"Mudroom", 3.0},
		{"Master Bedroom", 1.2},
		{"Living Room", 1.2},
		{"Kitchen", 1.3},
	}

	for _, tt := range tests {
		t.Run(tt.roomName, func(t *testing.T) {
			room, ok := findRoom(rooms, tt.roomName)
			if !ok {
				t.Fatalf("missing room %q", tt.roomName)
			}
			wantW, wantL := dimensions(room.TargetArea, tt.aspect)
			if room.Width != wantW || room.Length != wantL {
				t.Errorf("%s = %d x %d, want %d x %d (aspect %v)",
					tt.roomName, room.Width, room.Length, wantW, wantL, tt.aspect)
			}
		})
	}
}

func TestDimensionRoomsZeroArea(t *testing.T) {
	rooms := []Room{{Name: "Closet", Category: CategoryPantry, TargetArea: 0}}
	DimensionRooms(DefaultCatalog(), rooms)

	if rooms[0].Width != 0 || rooms[0].Length != 0 {
		t.Errorf("zero-area room = %d x %d, want 0 x 0", rooms[0].Width, rooms[0].Length)
	}
}
