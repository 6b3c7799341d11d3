package plan

import (
	"fmt"
	"math"
	"strings"

	"github.com/jwinther/homeplan/pkg/requirements"
)

// BuildInventory turns a requirements record and a catalog into the ordered
// room sequence for the plan. No geometry is assigned here; every room
// leaves with zero dimensions and position.
//
// Emission order is fixed (bedrooms, bathrooms, kitchen and dining, living
// room, garage, special rooms, circulation) and only affects the default
// numbering in room names; the packer re-sorts by area before placement.
func BuildInventory(catalog Catalog, req requirements.HouseRequirements) []Room {
	req = req.Normalize()

	var rooms []Room
	rooms = appendBedrooms(rooms, catalog, req)
	rooms = appendBathrooms(rooms, catalog, req)
	rooms = appendKitchen(rooms, catalog)
	rooms = appendLivingAreas(rooms, catalog)
	rooms = appendGarage(rooms, catalog, req)
	rooms = appendSpecialRooms(rooms, catalog, req)
	rooms = appendCirculation(rooms, catalog, req)
	return rooms
}

func newRoom(catalog Catalog, name string, cat Category) Room {
	return Room{
		Name:       name,
		Category:   cat,
		TargetArea: catalog.Area(cat),
		Windows:    catalog.Windows(cat),
	}
}

// appendBedrooms emits exactly one master bedroom plus bedroom_count-1
// additional bedrooms numbered from 2.
func appendBedrooms(rooms []Room, catalog Catalog, req requirements.HouseRequirements) []Room {
	rooms = append(rooms, newRoom(catalog, "Master Bedroom", CategoryMasterBedroom))

	for i := 0; i < req.Bedrooms-1; i++ {
		rooms = append(rooms, newRoom(catalog, fmt.Sprintf("Bedroom %d", i+2), CategoryBedroom))
	}
	return rooms
}

// appendBathrooms emits the bathroom sequence. The arithmetic intentionally
// mirrors the requested count rather than correcting it: the master
// bathroom is always emitted and decrements the full count (possibly below
// zero), a jack-and-jill bathroom consumes another full slot when requested
// and available, and a fractional part of 0.5 or more adds one powder room.
// With e.g. bathrooms=1.5 plus jack-and-jill this means the realized count
// can diverge from the request; that divergence is part of the contract.
func appendBathrooms(rooms []Room, catalog Catalog, req requirements.HouseRequirements) []Room {
	full := int(req.Bathrooms)
	half := 0
	if math.Mod(req.Bathrooms, 1) >= 0.5 {
		half = 1
	}

	rooms = append(rooms, newRoom(catalog, "Master Bathroom", CategoryMasterBathroom))
	full--

	if req.HasBathroomType("jack_and_jill") && full > 0 {
		rooms = append(rooms, newRoom(catalog, "Jack and Jill Bathroom", CategoryJackAndJillBathroom))
		full--
	}

	for i := 0; i < full; i++ {
		rooms = append(rooms, newRoom(catalog, fmt.Sprintf("Bathroom %d", i+2), CategoryBathroom))
	}

	for i := 0; i < half; i++ {
		rooms = append(rooms, newRoom(catalog, "Powder Room", CategoryHalfBathroom))
	}
	return rooms
}

func appendKitchen(rooms []Room, catalog Catalog) []Room {
	rooms = append(rooms, newRoom(catalog, "Kitchen", CategoryKitchen))
	rooms = append(rooms, newRoom(catalog, "Dining Room", CategoryDiningRoom))
	return rooms
}

func appendLivingAreas(rooms []Room, catalog Catalog) []Room {
	return append(rooms, newRoom(catalog, "Living Room", CategoryLivingRoom))
}

// appendGarage emits a single garage sized by capacity. The catalog area
// for the garage category is a per-car unit.
func appendGarage(rooms []Room, catalog Catalog, req requirements.HouseRequirements) []Room {
	if req.GarageCars <= 0 {
		return rooms
	}
	garage := newRoom(catalog, fmt.Sprintf("%d Car Garage", req.GarageCars), CategoryGarage)
	garage.TargetArea = catalog.Area(CategoryGarage) * float64(req.GarageCars)
	return append(rooms, garage)
}

// appendSpecialRooms emits one room per requested special-room tag found in
// the catalog. Unknown tags are skipped silently; that is the documented
// lookup-failure policy, not an error. Special rooms always get one window
// regardless of the category default.
func appendSpecialRooms(rooms []Room, catalog Catalog, req requirements.HouseRequirements) []Room {
	for _, tag := range req.SpecialRooms {
		cat := Category(tag)
		if !catalog.Has(cat) {
			continue
		}
		room := newRoom(catalog, displayName(tag), cat)
		room.Windows = 1
		rooms = append(rooms, room)
	}
	return rooms
}

// appendCirculation emits the foyer, plus a hallway for houses with three
// or more bedrooms.
func appendCirculation(rooms []Room, catalog Catalog, req requirements.HouseRequirements) []Room {
	rooms = append(rooms, newRoom(catalog, "Foyer", CategoryFoyer))
	if req.Bedrooms >= 3 {
		rooms = append(rooms, newRoom(catalog, "Hallway", CategoryHallway))
	}
	return rooms
}

// displayName converts a tag like "media_room" to "Media Room".
func displayName(tag string) string {
	words := strings.Split(tag, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
