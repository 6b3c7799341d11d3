// Package floorplan renders generated floor plans to diagnostic output
// formats: SVG drawings, JSON documents and Graphviz DOT adjacency graphs.
//
// None of the formats carry a compatibility guarantee; they exist for
// inspection and for handing the room list to downstream tooling.
package floorplan

import (
	"bytes"
	"fmt"

	"github.com/jwinther/homeplan/pkg/plan"
)

// DefaultScale converts millimeters to SVG user units (0.05 = 1px per 2cm).
const DefaultScale = 0.05

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	scale      float64
	showLabels bool
	showGrid   bool
}

// WithScale overrides the millimeter-to-pixel scale factor.
func WithScale(s float64) SVGOption { return func(r *svgRenderer) { r.scale = s } }

// WithoutLabels suppresses room name and size labels.
func WithoutLabels() SVGOption { return func(r *svgRenderer) { r.showLabels = false } }

// WithGrid draws a one-meter background grid.
func WithGrid() SVGOption { return func(r *svgRenderer) { r.showGrid = true } }

// categoryFill groups categories into fill colors so related rooms read as
// one zone at a glance.
func categoryFill(c plan.Category) string {
	switch c {
	case plan.CategoryMasterBedroom, plan.CategoryBedroom:
		return "#dbeafe"
	case plan.CategoryBathroom, plan.CategoryMasterBathroom,
		plan.CategoryJackAndJillBathroom, plan.CategoryHalfBathroom:
		return "#cffafe"
	case plan.CategoryKitchen, plan.CategoryDiningRoom, plan.CategoryPantry:
		return "#fef3c7"
	case plan.CategoryGarage:
		return "#e5e7eb"
	case plan.CategoryHallway, plan.CategoryFoyer:
		return "#f5f5f4"
	default:
		return "#dcfce7"
	}
}

// RenderSVG draws the packed floor plan as a standalone SVG document. Each
// room becomes a rectangle positioned at its packed coordinates; the frame
// is the plan footprint including margin. Zero-extent rooms are skipped.
func RenderSVG(p plan.Plan, opts ...SVGOption) []byte {
	r := svgRenderer{scale: DefaultScale, showLabels: true}
	for _, opt := range opts {
		opt(&r)
	}

	frameW := float64(p.Footprint.Length) * r.scale
	frameH := float64(p.Footprint.Width) * r.scale

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		frameW, frameH, frameW, frameH)
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="#fafaf9" stroke="#78716c" stroke-width="2"/>`+"\n",
		frameW, frameH)

	if r.showGrid {
		renderGrid(&buf, frameW, frameH, 1000*r.scale)
	}

	// Half the packing margin offsets the rooms into the frame.
	offset := float64(plan.DefaultMargin) / 2 * r.scale

	for _, room := range p.Rooms {
		if room.Width <= 0 || room.Length <= 0 {
			continue
		}
		x := float64(room.X)*r.scale + offset
		y := float64(room.Y)*r.scale + offset
		w := float64(room.Length) * r.scale
		h := float64(room.Width) * r.scale

		fmt.Fprintf(&buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="#44403c" stroke-width="1.5"/>`+"\n",
			x, y, w, h, categoryFill(room.Category))

		if r.showLabels {
			renderLabel(&buf, room, x, y, w, h)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderLabel(buf *bytes.Buffer, room plan.Room, x, y, w, h float64) {
	fontSize := h / 6
	if s := w / float64(len(room.Name)+1); s < fontSize {
		fontSize = s
	}
	if fontSize < 4 {
		return // too small to read, skip the label entirely
	}

	cx, cy := x+w/2, y+h/2
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="%.1f" text-anchor="middle" fill="#1c1917">%s</text>`+"\n",
		cx, cy, fontSize, escapeText(room.Name))
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="%.1f" text-anchor="middle" fill="#57534e">%.1fm x %.1fm</text>`+"\n",
		cx, cy+fontSize*1.2, fontSize*0.8,
		float64(room.Length)/1000, float64(room.Width)/1000)
}

func renderGrid(buf *bytes.Buffer, w, h, step float64) {
	for x := step; x < w; x += step {
		fmt.Fprintf(buf, `  <line x1="%.1f" y1="0" x2="%.1f" y2="%.1f" stroke="#e7e5e4" stroke-width="0.5"/>`+"\n", x, x, h)
	}
	for y := step; y < h; y += step {
		fmt.Fprintf(buf, `  <line x1="0" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#e7e5e4" stroke-width="0.5"/>`+"\n", y, w, y)
	}
}

func escapeText(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
