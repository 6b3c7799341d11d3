// Package plan implements the floor-plan generation engine.
//
// The engine converts a structured house-requirements record into a concrete
// 2D floor plan: a list of rooms with computed physical dimensions and
// non-overlapping positions. Generation runs as a single deterministic
// pipeline with three stages:
//
//  1. Inventory: synthesize the ordered room list from the requirements and
//     the room category catalog (no geometry yet).
//  2. Dimension: assign width and length to each room from its target area
//     and the per-category aspect-ratio policy.
//  3. Pack: scale the rooms to the requested total area and arrange them
//     into gapped rows, producing positions and the overall footprint.
//
// All geometry is in millimeters; target areas are in square feet. The
// packing heuristic is first-fit-decreasing shelf packing: it guarantees
// that rooms never overlap, but makes no attempt at globally optimal space
// utilization or a fully rectangular outline.
//
// # Usage
//
//	gen := plan.NewGenerator()
//	p := gen.Generate(requirements.Parse("3000 sqft Ranch, 4 bed, 2.5 bath"))
//	for _, room := range p.Rooms {
//	    fmt.Println(room.Name, room.Width, room.Length, room.X, room.Y)
//	}
//	fmt.Println(p.Footprint.Length, p.Footprint.Width)
//
// Generation is a pure function of its input: no I/O, no randomness, no
// time dependence. A Generator holds only immutable configuration and may
// be shared freely across goroutines.
package plan
