package floorplan

import (
	"encoding/json"
	"testing"

	"github.com/jwinther/homeplan/pkg/requirements"
)

func TestRenderJSON(t *testing.T) {
	req := requirements.Parse("2500 sqft Ranch, 3 bedrooms, 2 bathrooms, 2 car garage")
	p := testPlan()

	data, err := RenderJSON(p, WithJSONRequirements(req), WithJSONIndent())
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if out.Style != "Ranch" {
		t.Errorf("style = %q, want Ranch", out.Style)
	}
	if out.TotalArea != 2500 {
		t.Errorf("total_area = %v, want 2500", out.TotalArea)
	}
	if len(out.Rooms) != len(p.Rooms) {
		t.Fatalf("rooms = %d, want %d", len(out.Rooms), len(p.Rooms))
	}
	if out.Footprint.LengthMM != p.Footprint.Length || out.Footprint.WidthMM != p.Footprint.Width {
		t.Errorf("footprint = %+v, want %+v", out.Footprint, p.Footprint)
	}
	if out.Requirements == nil || out.Requirements.Bedrooms != 3 {
		t.Errorf("requirements not embedded: %+v", out.Requirements)
	}

	for i, jr := range out.Rooms {
		src := p.Rooms[i]
		if jr.Name != src.Name || jr.X != src.X || jr.Y != src.Y ||
			jr.WidthMM != src.Width || jr.LengthMM != src.Length {
			t.Errorf("room %d = %+v, want %+v", i, jr, src)
		}
	}
}

func TestRenderJSONOmitsRequirementsByDefault(t *testing.T) {
	data, err := RenderJSON(testPlan())
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := raw["requirements"]; ok {
		t.Error("requirements present without WithJSONRequirements")
	}
}
