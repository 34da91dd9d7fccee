package world

// ChunkGenerator produces the full content of a chunk from its coordinate.
// Implementations must be pure: the same coordinate always yields the same
// content, independent of call order, so generation can run on any goroutine.
type ChunkGenerator interface {
	Generate(coord ChunkCoord) *Chunk
}

// Generator is the standard chunk generator: biome classification via a
// BiomeField, then per-cell ground and resource selection driven by hash-based
// draws keyed on (seed, cell, purpose).
type Generator struct {
	seed     int64
	size     int
	density  int // resource probability in percent, 0-100
	field    *BiomeField
	palettes [biomeCount]Palette
}

// NewGenerator creates a generator. palettes is indexed by Biome; every ground
// palette must be non-empty (enforced by config validation before we get here).
func NewGenerator(seed int64, size, density int, field *BiomeField, palettes [biomeCount]Palette) *Generator {
	return &Generator{
		seed:     seed,
		size:     size,
		density:  density,
		field:    field,
		palettes: palettes,
	}
}

// Generate builds the chunk at coord. Cells are visited row-major, y outer and
// x inner; since every draw is a pure function of the cell, the order is a
// convention rather than a correctness requirement.
func (g *Generator) Generate(coord ChunkCoord) *Chunk {
	c := NewChunk(coord, g.size)
	origin := coord.Origin(g.size)

	for ly := 0; ly < g.size; ly++ {
		for lx := 0; lx < g.size; lx++ {
			cell := Cell{X: origin.X + lx, Y: origin.Y + ly}
			biome := g.field.At(cell)
			pal := g.palettes[biome]

			ground := pal.Ground[cellRandN(g.seed, cell, tagGround, len(pal.Ground))]

			resource := NoResource
			if len(pal.Resource) > 0 && g.rollResource(cell) {
				resource = pal.Resource[cellRandN(g.seed, cell, tagResourceKind, len(pal.Resource))]
			}

			c.setCell(lx, ly, biome, ground, resource)
		}
	}
	return c
}

// rollResource decides whether the cell spawns a resource. With density 0 the
// roll never succeeds; with density 100 it always does.
func (g *Generator) rollResource(cell Cell) bool {
	return cellRand01(g.seed, cell, tagResourceRoll)*100 < float64(g.density)
}
