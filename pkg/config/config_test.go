package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jwinther/homeplan/pkg/errors"
	"github.com/jwinther/homeplan/pkg/plan"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"empty path", ""},
		{"nonexistent file", filepath.Join(t.TempDir(), "nope.toml")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(tt.path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if cfg.Server.Addr != ":8080" {
				t.Errorf("Server.Addr = %q, want :8080", cfg.Server.Addr)
			}
			if cfg.Store.Backend != "memory" {
				t.Errorf("Store.Backend = %q, want memory", cfg.Store.Backend)
			}
			if cfg.Packing.GapMM != plan.DefaultGap {
				t.Errorf("Packing.GapMM = %d, want %d", cfg.Packing.GapMM, plan.DefaultGap)
			}
		})
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "homeplan.toml")
	content := `
[catalog.areas]
kitchen = 350
wine_cellar = 999

[catalog.aspect_ratios]
kitchen = 2.0

[packing]
gap_mm = 300
row_width_factor = 1.5

[server]
addr = ":9090"

[store]
backend = "redis"

[store.redis]
addr = "redis.internal:6379"
db = 2
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Addr != ":9090" {
		t.Errorf("Server.Addr = %q, want :9090", cfg.Server.Addr)
	}
	if cfg.Store.Backend != "redis" {
		t.Errorf("Store.Backend = %q, want redis", cfg.Store.Backend)
	}
	if cfg.Store.Redis.Addr != "redis.internal:6379" || cfg.Store.Redis.DB != 2 {
		t.Errorf("Store.Redis = %+v", cfg.Store.Redis)
	}

	p := cfg.Packer()
	if p.Gap != 300 {
		t.Errorf("Packer.Gap = %d, want 300", p.Gap)
	}
	if p.Margin != plan.DefaultMargin {
		t.Errorf("Packer.Margin = %d, want default %d", p.Margin, plan.DefaultMargin)
	}
	if p.RowWidthFactor != 1.5 {
		t.Errorf("Packer.RowWidthFactor = %v, want 1.5", p.RowWidthFactor)
	}

	catalog := plan.NewCatalog(cfg.CatalogOptions()...)
	if got := catalog.Area(plan.CategoryKitchen); got != 350 {
		t.Errorf("kitchen area = %v, want 350", got)
	}
	if got := catalog.AspectRatio(plan.CategoryKitchen); got != 2.0 {
		t.Errorf("kitchen aspect = %v, want 2.0", got)
	}
	if catalog.Has("wine_cellar") {
		t.Error("unknown catalog tag must be ignored")
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(path, []byte("[[[not toml"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load succeeded on invalid TOML")
	}
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidConfig)
	}
}

func TestGeneratorFromConfig(t *testing.T) {
	cfg := Default()
	cfg.Catalog.Areas = map[string]float64{"kitchen": 400}

	gen := cfg.Generator()
	if got := gen.Catalog().Area(plan.CategoryKitchen); got != 400 {
		t.Errorf("kitchen area = %v, want 400", got)
	}
}
