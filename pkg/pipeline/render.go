package pipeline

import (
	"context"

	"github.com/jwinther/homeplan/pkg/errors"
	"github.com/jwinther/homeplan/pkg/plan"
	"github.com/jwinther/homeplan/pkg/render/floorplan"
	"github.com/jwinther/homeplan/pkg/requirements"
)

// RenderFromPlan renders all requested formats from an existing plan,
// bypassing the cache. Formats must already be validated.
func RenderFromPlan(ctx context.Context, p plan.Plan, req requirements.HouseRequirements, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		switch format {
		case FormatSVG:
			artifacts[format] = floorplan.RenderSVG(p, opts.SVGOptions()...)

		case FormatJSON:
			data, err := floorplan.RenderJSON(p,
				floorplan.WithJSONRequirements(req),
				floorplan.WithJSONIndent())
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInternal, err, "rendering json")
			}
			artifacts[format] = data

		case FormatDOT:
			artifacts[format] = []byte(floorplan.ToDOT(p))

		case FormatGraph:
			svg, err := floorplan.RenderDOTSVG(ctx, floorplan.ToDOT(p))
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInternal, err, "rendering adjacency graph")
			}
			artifacts[format] = svg

		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q", format)
		}
	}

	return artifacts, nil
}
