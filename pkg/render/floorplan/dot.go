package floorplan

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/jwinther/homeplan/pkg/plan"
)

// ToDOT converts the plan's room adjacency into Graphviz DOT format. Rooms
// become nodes labeled with name and target area; each recorded neighbor
// pair becomes one undirected edge. The result can be rendered with
// [RenderDOTSVG].
func ToDOT(p plan.Plan) string {
	var buf bytes.Buffer
	buf.WriteString("graph plan {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for _, r := range p.Rooms {
		fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=%q];\n",
			r.Name, fmt.Sprintf("%s\n%.0f sqft", r.Name, r.TargetArea), categoryFill(r.Category))
	}

	buf.WriteString("\n")
	type edgeKey struct{ a, b string }
	seen := make(map[edgeKey]struct{})
	for _, r := range p.Rooms {
		for _, other := range r.Adjacent {
			a, b := r.Name, other
			if a > b {
				a, b = b, a
			}
			key := edgeKey{a, b}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			fmt.Fprintf(&buf, "  %q -- %q;\n", a, b)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderDOTSVG renders a DOT graph to SVG using Graphviz.
func RenderDOTSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites Graphviz's point-based svg element to a plain
// zero-origin viewBox so the output embeds cleanly next to [RenderSVG]
// drawings.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
