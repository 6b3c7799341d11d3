package pipeline

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/jwinther/homeplan/pkg/cache"
	"github.com/jwinther/homeplan/pkg/errors"
	"github.com/jwinther/homeplan/pkg/requirements"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format string
		ok     bool
	}{
		{"svg", true},
		{"json", true},
		{"dot", true},
		{"graph", true},
		{"png", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			err := ValidateFormat(tt.format)
			if tt.ok && err != nil {
				t.Errorf("ValidateFormat(%q) = %v, want nil", tt.format, err)
			}
			if !tt.ok && !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("ValidateFormat(%q) = %v, want invalid-format", tt.format, err)
			}
		})
	}
}

func TestOptionsValidation(t *testing.T) {
	var empty Options
	if err := empty.ValidateAndSetDefaults(); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("empty options = %v, want invalid-input", err)
	}

	opts := Options{Description: "2000 sqft Ranch"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("default formats = %v, want [svg]", opts.Formats)
	}
	if opts.Scale == 0 {
		t.Error("default scale not applied")
	}

	bad := Options{Description: "house", Formats: []string{"pdf"}}
	if err := bad.ValidateAndSetDefaults(); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("bad format = %v, want invalid-format", err)
	}
}

func TestExecuteDescription(t *testing.T) {
	runner := NewRunner(nil, nil, nil, nil)
	defer runner.Close()

	result, err := runner.Execute(context.Background(), Options{
		Description: "2500 sqft Colonial, 4 bedrooms, 3 bathrooms, 2 car garage",
		Formats:     []string{FormatSVG, FormatJSON, FormatDOT},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.Requirements.Bedrooms != 4 || result.Requirements.Style != "Colonial" {
		t.Errorf("requirements = %+v", result.Requirements)
	}
	if result.Stats.RoomCount != len(result.Plan.Rooms) || result.Stats.RoomCount == 0 {
		t.Errorf("room count = %d, rooms = %d", result.Stats.RoomCount, len(result.Plan.Rooms))
	}
	if result.PlanHash == "" {
		t.Error("missing plan hash")
	}

	svg, ok := result.Artifacts[FormatSVG]
	if !ok || !bytes.HasPrefix(svg, []byte("<svg")) {
		t.Errorf("svg artifact = %.30s", svg)
	}
	if _, ok := result.Artifacts[FormatJSON]; !ok {
		t.Error("missing json artifact")
	}
	dot, ok := result.Artifacts[FormatDOT]
	if !ok || !strings.HasPrefix(string(dot), "graph plan {") {
		t.Errorf("dot artifact = %.30s", dot)
	}
}

func TestExecuteExplicitRequirements(t *testing.T) {
	req := requirements.Defaults()
	req.Bedrooms = 5

	runner := NewRunner(nil, nil, nil, nil)
	result, err := runner.Execute(context.Background(), Options{Requirements: &req})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.Requirements.Bedrooms != 5 {
		t.Errorf("bedrooms = %d, want 5", result.Requirements.Bedrooms)
	}
}

func TestExecuteCaching(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	runner := NewRunner(fc, nil, nil, nil)
	defer runner.Close()

	opts := Options{Description: "1800 sqft Modern, 3 bedrooms"}

	first, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	if first.CacheInfo.GenerateHit || first.CacheInfo.RenderHit {
		t.Errorf("first run hit cache: %+v", first.CacheInfo)
	}

	second, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !second.CacheInfo.GenerateHit || !second.CacheInfo.RenderHit {
		t.Errorf("second run missed cache: %+v", second.CacheInfo)
	}
	if second.PlanHash != first.PlanHash {
		t.Error("cached plan differs from generated plan")
	}
	if !bytes.Equal(second.Artifacts[FormatSVG], first.Artifacts[FormatSVG]) {
		t.Error("cached artifact differs from rendered artifact")
	}

	// Refresh bypasses the plan cache.
	opts.Refresh = true
	third, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("third Execute: %v", err)
	}
	if third.CacheInfo.GenerateHit {
		t.Error("refresh run hit the plan cache")
	}
	if third.PlanHash != first.PlanHash {
		t.Error("regenerated plan differs; generation is not deterministic")
	}
}

func TestRenderFromPlanUnknownFormat(t *testing.T) {
	runner := NewRunner(nil, nil, nil, nil)
	req := requirements.Defaults()
	p := runner.Generator.Generate(req)

	opts := Options{Description: "x", Formats: []string{"bmp"}}
	_, err := RenderFromPlan(context.Background(), p, req, opts)
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("err = %v, want invalid-format", err)
	}
}
