package world

import (
	"crypto/sha256"
	"testing"
)

func testPalettes() [biomeCount]Palette {
	return [biomeCount]Palette{
		BiomeForest: {Ground: []int{0, 1, 2, 3}, Resource: []int{100, 101, 102}},
		BiomeDesert: {Ground: []int{10, 11, 12}, Resource: []int{110, 111}},
		BiomeSnow:   {Ground: []int{20, 21, 22}, Resource: []int{120}},
	}
}

func testGenerator(seed int64, size, density int) *Generator {
	field := NewBiomeField(seed, 0.02, [2]float64{0.4, 0.7}, false)
	return NewGenerator(seed, size, density, field, testPalettes())
}

func TestGeneratorImplementsInterface(t *testing.T) {
	var _ ChunkGenerator = testGenerator(123, 16, 10)
}

// hashChunk computes a SHA-256 over the full chunk content.
func hashChunk(c *Chunk) [32]byte {
	h := sha256.New()
	for ly := 0; ly < c.Size(); ly++ {
		for lx := 0; lx < c.Size(); lx++ {
			h.Write([]byte{
				byte(c.BiomeAt(lx, ly)),
				byte(c.GroundAt(lx, ly)), byte(c.GroundAt(lx, ly) >> 8),
				byte(c.ResourceAt(lx, ly)), byte(c.ResourceAt(lx, ly) >> 8),
			})
		}
	}
	var result [32]byte
	copy(result[:], h.Sum(nil))
	return result
}

func TestGeneratorDeterminism(t *testing.T) {
	seed := int64(12345)
	var hashes [50][32]byte

	for i := range hashes {
		g := testGenerator(seed, 16, 10)
		hashes[i] = hashChunk(g.Generate(ChunkCoord{}))
	}
	first := hashes[0]
	for i := 1; i < len(hashes); i++ {
		if hashes[i] != first {
			t.Fatalf("chunk generation not deterministic: hash[0] != hash[%d]", i)
		}
	}
}

func TestGeneratorOrderIndependent(t *testing.T) {
	// Generating chunks in a different order must not change any chunk's
	// content; every draw is keyed on the cell, not a shared stream.
	coords := []ChunkCoord{{0, 0}, {1, 0}, {0, 1}, {-1, -1}, {3, -2}}

	g1 := testGenerator(42, 16, 10)
	forward := make(map[ChunkCoord][32]byte)
	for _, cc := range coords {
		forward[cc] = hashChunk(g1.Generate(cc))
	}

	g2 := testGenerator(42, 16, 10)
	for i := len(coords) - 1; i >= 0; i-- {
		cc := coords[i]
		if got := hashChunk(g2.Generate(cc)); got != forward[cc] {
			t.Errorf("chunk %v content depends on generation order", cc)
		}
	}
}

func TestGeneratorZeroDensityNoResources(t *testing.T) {
	g := testGenerator(7, 16, 0)
	for _, cc := range []ChunkCoord{{0, 0}, {5, -3}, {-2, 8}} {
		c := g.Generate(cc)
		for ly := 0; ly < c.Size(); ly++ {
			for lx := 0; lx < c.Size(); lx++ {
				if c.HasResource(lx, ly) {
					t.Fatalf("density 0 produced a resource at chunk %v local (%d,%d)", cc, lx, ly)
				}
			}
		}
	}
}

func TestGeneratorFullDensityAllResources(t *testing.T) {
	// Every palette in testPalettes has resources, so density 100 must fill
	// every cell.
	g := testGenerator(7, 16, 100)
	c := g.Generate(ChunkCoord{})
	for ly := 0; ly < c.Size(); ly++ {
		for lx := 0; lx < c.Size(); lx++ {
			if !c.HasResource(lx, ly) {
				t.Fatalf("density 100 left local (%d,%d) without a resource", lx, ly)
			}
		}
	}
}

func TestGeneratorEmptyResourcePalette(t *testing.T) {
	// A biome with no resource tiles never spawns resources, even at
	// density 100.
	field := NewBiomeField(7, 0.02, [2]float64{0.4, 0.7}, true) // forest everywhere
	palettes := testPalettes()
	palettes[BiomeForest].Resource = nil
	g := NewGenerator(7, 16, 100, field, palettes)

	c := g.Generate(ChunkCoord{X: 2, Y: -1})
	for ly := 0; ly < c.Size(); ly++ {
		for lx := 0; lx < c.Size(); lx++ {
			if c.HasResource(lx, ly) {
				t.Fatal("biome with empty resource palette spawned a resource")
			}
		}
	}
}

func TestGeneratorTilesFromPalette(t *testing.T) {
	g := testGenerator(99, 16, 100)
	pal := testPalettes()
	c := g.Generate(ChunkCoord{X: -4, Y: 6})

	inPalette := func(v int, list []int) bool {
		for _, p := range list {
			if p == v {
				return true
			}
		}
		return false
	}

	for ly := 0; ly < c.Size(); ly++ {
		for lx := 0; lx < c.Size(); lx++ {
			b := c.BiomeAt(lx, ly)
			if g := c.GroundAt(lx, ly); !inPalette(g, pal[b].Ground) {
				t.Fatalf("ground tile %d at (%d,%d) not in %s palette", g, lx, ly, b)
			}
			if r := c.ResourceAt(lx, ly); r != NoResource && !inPalette(r, pal[b].Resource) {
				t.Fatalf("resource tile %d at (%d,%d) not in %s palette", r, lx, ly, b)
			}
		}
	}
}

func TestGeneratorBiomeMatchesField(t *testing.T) {
	field := NewBiomeField(3, 0.02, [2]float64{0.4, 0.7}, false)
	g := NewGenerator(3, 16, 10, field, testPalettes())
	cc := ChunkCoord{X: 1, Y: -2}
	c := g.Generate(cc)
	origin := cc.Origin(16)

	for ly := 0; ly < c.Size(); ly++ {
		for lx := 0; lx < c.Size(); lx++ {
			want := field.At(Cell{X: origin.X + lx, Y: origin.Y + ly})
			if got := c.BiomeAt(lx, ly); got != want {
				t.Fatalf("cached biome %s at local (%d,%d) disagrees with field %s", got, lx, ly, want)
			}
		}
	}
}

func BenchmarkGenerate(b *testing.B) {
	g := testGenerator(12345, 16, 10)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Generate(ChunkCoord{X: i % 32, Y: i / 32})
	}
}
