package plan

import (
	"github.com/jwinther/homeplan/pkg/requirements"
)

// Generator orchestrates the full generation pipeline: inventory, then
// dimensions, then packing. It holds only immutable configuration and is
// safe for concurrent use; each call owns its own room sequence.
type Generator struct {
	catalog Catalog
	packer  Packer
}

// GeneratorOption customizes a Generator during construction.
type GeneratorOption func(*Generator)

// WithCatalog replaces the default room category catalog.
func WithCatalog(c Catalog) GeneratorOption {
	return func(g *Generator) { g.catalog = c }
}

// WithPacker replaces the default packer configuration.
func WithPacker(p Packer) GeneratorOption {
	return func(g *Generator) { g.packer = p }
}

// NewGenerator creates a generator with the default catalog and packer.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		catalog: DefaultCatalog(),
		packer:  NewPacker(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Catalog returns the generator's category catalog.
func (g *Generator) Catalog() Catalog {
	return g.catalog
}

// Packer returns the generator's packer configuration.
func (g *Generator) Packer() Packer {
	return g.packer
}

// Generate produces a complete floor plan from the requirements record.
// The result is a pure function of the input: identical requirements yield
// an identical plan, including room order and every computed field.
func (g *Generator) Generate(req requirements.HouseRequirements) Plan {
	req = req.Normalize()

	rooms := BuildInventory(g.catalog, req)
	DimensionRooms(g.catalog, rooms)
	footprint := g.packer.Pack(rooms, req.TotalArea)

	return Plan{
		Style:     req.Style,
		TotalArea: req.TotalArea,
		Rooms:     rooms,
		Footprint: footprint,
	}
}
