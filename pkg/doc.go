// Package pkg provides the core libraries for homeplan floor plan generation.
//
// # Overview
//
// Homeplan turns a plain-language house description into a packed 2D floor
// plan. The pkg directory is organized into these main areas:
//
//  1. [requirements] - Description parsing into a structured requirements record
//  2. [plan] - Domain logic (room catalog, inventory, dimensioning, packing)
//  3. [render/floorplan] - Output formats (SVG drawing, JSON document, Graphviz)
//  4. [pipeline] - Orchestration (parse → generate → render) with caching
//  5. [cache], [store] - Infrastructure (artifact cache, plan persistence)
//
// # Architecture
//
// The typical data flow through homeplan:
//
//	House description ("2500 sqft Ranch, 4 bedrooms...")
//	         ↓
//	    [requirements] package (parse into HouseRequirements)
//	         ↓
//	    [plan] package (inventory → dimensions → packing)
//	         ↓
//	    [render/floorplan] package (SVG / JSON / DOT output)
//
// # Quick Start
//
// Generate and render a plan:
//
//	import (
//	    "github.com/jwinther/homeplan/pkg/plan"
//	    "github.com/jwinther/homeplan/pkg/render/floorplan"
//	    "github.com/jwinther/homeplan/pkg/requirements"
//	)
//
//	// 1. Parse the description
//	req := requirements.Parse("2500 sqft Ranch, 4 bedrooms, 3 bathrooms")
//
//	// 2. Generate the plan
//	p := plan.NewGenerator().Generate(req)
//
//	// 3. Render to SVG
//	svg := floorplan.RenderSVG(p)
//
// # Main Packages
//
// ## Core Domain Logic
//
// [requirements] - Deterministic parsing of house descriptions: area, style,
// room counts, garage size and special rooms, with sensible defaults for
// anything not mentioned.
//
// [plan] - The generation engine. A room category catalog drives inventory
// building, target areas are converted to millimeter dimensions, and a
// row-based packer places rooms into a rectangular footprint.
//
// [render/floorplan] - Rendering of packed plans: a scaled SVG drawing, a
// JSON plan document that round-trips through [floorplan.ParsePlanJSON],
// and a room adjacency graph in Graphviz DOT format.
//
// ## Infrastructure
//
// [pipeline] - Complete generation pipeline (parse → generate → render) used
// by CLI and API. Ensures consistent behavior across all entry points.
//
// [cache] - Content-addressed caching of generated plans and rendered
// artifacts with a filesystem backend.
//
// [store] - Plan persistence behind a common interface with memory, Redis
// and MongoDB backends.
//
// [config] - TOML configuration for catalog policies, packing constants and
// server settings.
//
// [errors] - Coded errors shared across packages, with user-facing messages.
//
// [observability] - Optional hooks for metrics and tracing without hard
// backend dependencies.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/plan/...     # Specific package
//
// [requirements]: https://pkg.go.dev/github.com/jwinther/homeplan/pkg/requirements
// [plan]: https://pkg.go.dev/github.com/jwinther/homeplan/pkg/plan
// [render/floorplan]: https://pkg.go.dev/github.com/jwinther/homeplan/pkg/render/floorplan
// [pipeline]: https://pkg.go.dev/github.com/jwinther/homeplan/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/jwinther/homeplan/pkg/cache
// [store]: https://pkg.go.dev/github.com/jwinther/homeplan/pkg/store
// [config]: https://pkg.go.dev/github.com/jwinther/homeplan/pkg/config
// [errors]: https://pkg.go.dev/github.com/jwinther/homeplan/pkg/errors
// [observability]: https://pkg.go.dev/github.com/jwinther/homeplan/pkg/observability
package pkg
