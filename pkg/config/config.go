// Package config loads homeplan configuration from a TOML file.
//
// Every setting has a default matching the built-in engine constants, so a
// missing config file is not an error: [Load] with an empty or nonexistent
// path returns the defaults. The file can override catalog areas and aspect
// ratios, packing constants, the API server address and the plan store
// backend.
//
// # Example
//
//	[catalog.areas]
//	kitchen = 350
//
//	[catalog.aspect_ratios]
//	kitchen = 2.0
//
//	[packing]
//	gap_mm = 200
//	margin_mm = 1000
//	row_width_factor = 1.3
//
//	[server]
//	addr = ":8080"
//
//	[store]
//	backend = "redis"
//
//	[store.redis]
//	addr = "localhost:6379"
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/jwinther/homeplan/pkg/errors"
	"github.com/jwinther/homeplan/pkg/plan"
)

// Config is the root configuration document.
type Config struct {
	Catalog CatalogConfig `toml:"catalog"`
	Packing PackingConfig `toml:"packing"`
	Server  ServerConfig  `toml:"server"`
	Store   StoreConfig   `toml:"store"`
}

// CatalogConfig overrides entries of the room category catalog. Keys are
// category tags; unknown tags are ignored, mirroring the catalog's
// lookup-failure policy.
type CatalogConfig struct {
	Areas        map[string]float64 `toml:"areas"`
	AspectRatios map[string]float64 `toml:"aspect_ratios"`
}

// PackingConfig overrides the packer constants. Zero values keep the
// defaults.
type PackingConfig struct {
	GapMM          int     `toml:"gap_mm"`
	MarginMM       int     `toml:"margin_mm"`
	RowWidthFactor float64 `toml:"row_width_factor"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// StoreConfig selects and configures the plan store backend.
type StoreConfig struct {
	// Backend is "memory", "redis" or "mongo". Default: "memory".
	Backend string `toml:"backend"`

	Redis RedisConfig `toml:"redis"`
	Mongo MongoConfig `toml:"mongo"`
}

// RedisConfig configures the redis-backed plan store.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// MongoConfig configures the mongo-backed plan store.
type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// Default returns the configuration matching the built-in constants.
func Default() *Config {
	return &Config{
		Packing: PackingConfig{
			GapMM:          plan.DefaultGap,
			MarginMM:       plan.DefaultMargin,
			RowWidthFactor: plan.DefaultRowWidthFactor,
		},
		Server: ServerConfig{Addr: ":8080"},
		Store: StoreConfig{
			Backend: "memory",
			Redis:   RedisConfig{Addr: "localhost:6379"},
			Mongo: MongoConfig{
				URI:        "mongodb://localhost:27017",
				Database:   "homeplan",
				Collection: "plans",
			},
		},
	}
}

// Load reads configuration from path. An empty path or a missing file
// returns the defaults; a file that exists but fails to parse is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "reading config %s", path)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parsing config %s", path)
	}
	return cfg, nil
}

// CatalogOptions converts the catalog overrides to plan catalog options.
func (c *Config) CatalogOptions() []plan.CatalogOption {
	var opts []plan.CatalogOption
	for tag, area := range c.Catalog.Areas {
		opts = append(opts, plan.WithArea(plan.Category(tag), area))
	}
	for tag, ratio := range c.Catalog.AspectRatios {
		opts = append(opts, plan.WithAspectRatio(plan.Category(tag), ratio))
	}
	return opts
}

// Packer builds a packer from the packing overrides; zero values fall back
// to the defaults.
func (c *Config) Packer() plan.Packer {
	p := plan.NewPacker()
	if c.Packing.GapMM > 0 {
		p.Gap = c.Packing.GapMM
	}
	if c.Packing.MarginMM > 0 {
		p.Margin = c.Packing.MarginMM
	}
	if c.Packing.RowWidthFactor > 0 {
		p.RowWidthFactor = c.Packing.RowWidthFactor
	}
	return p
}

// Generator builds a plan generator from the catalog and packing settings.
func (c *Config) Generator() *plan.Generator {
	return plan.NewGenerator(
		plan.WithCatalog(plan.NewCatalog(c.CatalogOptions()...)),
		plan.WithPacker(c.Packer()),
	)
}
