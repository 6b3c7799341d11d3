// Package render provides output rendering for generated floor plans.
//
// # Overview
//
// This package groups the renderers that transform packed floor plans into
// output artifacts:
//
//   - Floor plan drawings and documents (in [floorplan] subpackage)
//
// # Floor Plan Rendering
//
// The [floorplan] subpackage renders a packed plan three ways: a scaled SVG
// drawing of the footprint and rooms, a JSON plan document that can be
// re-rendered later, and a room adjacency graph in Graphviz DOT format
// (optionally rendered to SVG via Graphviz).
//
//	svg := floorplan.RenderSVG(p, floorplan.WithGrid())
//	doc, err := floorplan.RenderJSON(p, floorplan.WithJSONIndent())
//	dot := floorplan.ToDOT(p)
//	graph, err := floorplan.RenderDOTSVG(ctx, dot)
//
// [floorplan]: github.com/jwinther/homeplan/pkg/render/floorplan
package render
