package plan

import (
	"math"
	"sort"
)

// Packing defaults in millimeters.
const (
	// DefaultGap is the spacing between rooms, reserving space for walls.
	DefaultGap = 200

	// DefaultMargin is the outer margin added to the footprint.
	DefaultMargin = 1000

	// DefaultRowWidthFactor widens the heuristic row bound relative to the
	// side of a square with the requested total area.
	DefaultRowWidthFactor = 1.3
)

// DefaultFootprint is returned for an empty room sequence.
var DefaultFootprint = Footprint{Length: 10000, Width: 8000}

// Packer scales and arranges dimensioned rooms into a gapped, row-based
// layout. The zero value is not useful; construct with [NewPacker] and
// adjust fields before first use if needed. A Packer is stateless across
// calls and safe for concurrent use.
type Packer struct {
	Gap              int
	Margin           int
	RowWidthFactor   float64
	DefaultFootprint Footprint
}

// NewPacker returns a packer with the default gap, margin and row bound.
func NewPacker() Packer {
	return Packer{
		Gap:              DefaultGap,
		Margin:           DefaultMargin,
		RowWidthFactor:   DefaultRowWidthFactor,
		DefaultFootprint: DefaultFootprint,
	}
}

// Pack assigns positions to every room in place and returns the overall
// footprint. totalArea is the requested total house area in square feet.
//
// Packing proceeds in three steps:
//
//  1. If the requested total exceeds the sum of the nominal room areas,
//     every room's dimensions are multiplied by sqrt(total/sum). The scale
//     is isotropic, preserving each room's aspect ratio, and accounts for
//     walls and circulation space. When the nominal sum already meets or
//     exceeds the request no scaling occurs and the realized footprint may
//     exceed the nominal target; that is expected, not an error.
//
//  2. Rooms are stable-sorted descending by nominal target area (ties keep
//     emission order) and placed left to right with first-fit-decreasing
//     shelf packing: when a room would cross the row bound, placement
//     continues at the left edge of a new row below the tallest room of
//     the current one, separated by the gap.
//
//  3. The footprint is the maximum placed extent plus the margin on each
//     axis. For an empty room sequence the fixed default is returned.
//
// The row bound floor(sqrt(totalArea mm²) * RowWidthFactor) and the final
// bounding box are independent formulas; for skewed aspect-ratio mixes the
// reported footprint can disagree with the nominal requested area. That
// mismatch is documented behavior and deliberately not reconciled.
//
// Rooms placed in the same row never overlap along x, and rows are
// separated vertically by at least the gap. Zero-extent rooms pack like
// any other room and cannot cause overlap or non-termination.
func (p Packer) Pack(rooms []Room, totalArea float64) Footprint {
	if len(rooms) == 0 {
		return p.DefaultFootprint
	}

	p.scale(rooms, totalArea)

	sorted := make([]*Room, len(rooms))
	for i := range rooms {
		sorted[i] = &rooms[i]
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TargetArea > sorted[j].TargetArea
	})

	maxRowWidth := int(math.Sqrt(totalArea*MM2PerSqFt) * p.RowWidthFactor)

	var cursorX, cursorY, rowHeight int
	var prev *Room
	for _, room := range sorted {
		if cursorX+room.Length > maxRowWidth && cursorX > 0 {
			cursorX = 0
			cursorY += rowHeight + p.Gap
			rowHeight = 0
			prev = nil
		}

		room.X = cursorX
		room.Y = cursorY

		if prev != nil {
			prev.Adjacent = append(prev.Adjacent, room.Name)
			room.Adjacent = append(room.Adjacent, prev.Name)
		}
		prev = room

		cursorX += room.Length + p.Gap
		if room.Width > rowHeight {
			rowHeight = room.Width
		}
	}

	return p.footprint(rooms)
}

// scale grows every room isotropically when the requested total area
// exceeds the nominal sum. Dimensions truncate toward zero after scaling,
// matching the floor semantics of the dimension calculator.
func (p Packer) scale(rooms []Room, totalArea float64) {
	var sum float64
	for i := range rooms {
		sum += rooms[i].TargetArea
	}
	if sum <= 0 || totalArea <= sum {
		return
	}

	factor := math.Sqrt(totalArea / sum)
	for i := range rooms {
		rooms[i].Width = int(float64(rooms[i].Width) * factor)
		rooms[i].Length = int(float64(rooms[i].Length) * factor)
	}
}

func (p Packer) footprint(rooms []Room) Footprint {
	var maxX, maxY int
	for i := range rooms {
		if x := rooms[i].X + rooms[i].Length; x > maxX {
			maxX = x
		}
		if y := rooms[i].Y + rooms[i].Width; y > maxY {
			maxY = y
		}
	}
	return Footprint{Length: maxX + p.Margin, Width: maxY + p.Margin}
}
