package plan

import "math"

// MM2PerSqFt converts square feet to square millimeters.
const MM2PerSqFt = 92903.04

// DimensionRooms assigns width and length to every room in place, derived
// from the room's target area and the catalog aspect-ratio policy.
//
// With aspect = length/width, solving width * (aspect * width) = area gives
//
//	width  = floor(sqrt(area / aspect))
//	length = floor(area / width)
//
// so width*length approximates the target area with rounding error bounded
// by at most one width unit. A zero target area yields a 0x0 room, which
// the packer tolerates.
func DimensionRooms(catalog Catalog, rooms []Room) {
	for i := range rooms {
		w, l := dimensions(rooms[i].TargetArea, catalog.AspectRatio(rooms[i].Category))
		rooms[i].Width = w
		rooms[i].Length = l
	}
}

func dimensions(sqft, aspect float64) (width, length int) {
	if sqft <= 0 || aspect <= 0 {
		return 0, 0
	}
	areaMM2 := sqft * MM2PerSqFt
	width = int(math.Sqrt(areaMM2 / aspect))
	if width == 0 {
		return 0, 0
	}
	length = int(areaMM2 / float64(width))
	return width, length
}
