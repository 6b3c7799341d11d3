package floorplan

import (
	"encoding/json"

	"github.com/jwinther/homeplan/pkg/plan"
	"github.com/jwinther/homeplan/pkg/requirements"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	req    *requirements.HouseRequirements
	pretty bool
}

// WithJSONRequirements embeds the originating house requirements in the
// document, enabling round-trip regeneration of the same plan.
func WithJSONRequirements(req requirements.HouseRequirements) JSONOption {
	return func(r *jsonRenderer) { r.req = &req }
}

// WithJSONIndent pretty-prints the document.
func WithJSONIndent() JSONOption { return func(r *jsonRenderer) { r.pretty = true } }

type jsonOutput struct {
	Style        string                          `json:"style,omitempty"`
	TotalArea    float64                         `json:"total_area"`
	RoomArea     float64                         `json:"room_area"`
	Footprint    jsonFootprint                   `json:"footprint"`
	Rooms        []jsonRoom                      `json:"rooms"`
	Requirements *requirements.HouseRequirements `json:"requirements,omitempty"`
}

type jsonFootprint struct {
	LengthMM int `json:"length_mm"`
	WidthMM  int `json:"width_mm"`
}

type jsonRoom struct {
	Name       string   `json:"name"`
	Category   string   `json:"category"`
	TargetArea float64  `json:"target_area"`
	WidthMM    int      `json:"width_mm"`
	LengthMM   int      `json:"length_mm"`
	X          int      `json:"x"`
	Y          int      `json:"y"`
	Windows    int      `json:"windows"`
	Adjacent   []string `json:"adjacent,omitempty"`
}

// RenderJSON exports the plan as a JSON document: the footprint, the packed
// room list with positions in millimeters and, optionally, the originating
// requirements. It does not modify p and is safe to call concurrently.
func RenderJSON(p plan.Plan, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Style:        p.Style,
		TotalArea:    p.TotalArea,
		RoomArea:     p.RoomArea(),
		Footprint:    jsonFootprint{LengthMM: p.Footprint.Length, WidthMM: p.Footprint.Width},
		Rooms:        buildJSONRooms(p.Rooms),
		Requirements: r.req,
	}

	if r.pretty {
		return json.MarshalIndent(out, "", "  ")
	}
	return json.Marshal(out)
}

// ParsePlanJSON reads a document produced by [RenderJSON] back into a plan.
// The embedded requirements are returned when present, nil otherwise.
func ParsePlanJSON(data []byte) (plan.Plan, *requirements.HouseRequirements, error) {
	var doc jsonOutput
	if err := json.Unmarshal(data, &doc); err != nil {
		return plan.Plan{}, nil, err
	}

	p := plan.Plan{
		Style:     doc.Style,
		TotalArea: doc.TotalArea,
		Footprint: plan.Footprint{Length: doc.Footprint.LengthMM, Width: doc.Footprint.WidthMM},
		Rooms:     make([]plan.Room, 0, len(doc.Rooms)),
	}
	for _, jr := range doc.Rooms {
		p.Rooms = append(p.Rooms, plan.Room{
			Name:       jr.Name,
			Category:   plan.Category(jr.Category),
			TargetArea: jr.TargetArea,
			Width:      jr.WidthMM,
			Length:     jr.LengthMM,
			X:          jr.X,
			Y:          jr.Y,
			Windows:    jr.Windows,
			Adjacent:   jr.Adjacent,
		})
	}
	return p, doc.Requirements, nil
}

func buildJSONRooms(rooms []plan.Room) []jsonRoom {
	out := make([]jsonRoom, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, jsonRoom{
			Name:       room.Name,
			Category:   string(room.Category),
			TargetArea: room.TargetArea,
			WidthMM:    room.Width,
			LengthMM:   room.Length,
			X:          room.X,
			Y:          room.Y,
			Windows:    room.Windows,
			Adjacent:   room.Adjacent,
		})
	}
	return out
}
