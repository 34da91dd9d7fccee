package world

import (
	"sync"
)

// ChunkStore holds every generated chunk for the lifetime of the session.
// Presence in the map is the "generated" flag; there is no eviction. Queries
// for ungenerated cells fall back to the pure BiomeField and never trigger
// generation, keeping generation cadence independent of query traffic.
type ChunkStore struct {
	size  int
	field *BiomeField
	gen   ChunkGenerator

	mu       sync.RWMutex
	chunks   map[ChunkCoord]*Chunk
	modCount uint64 // increases on every chunk insert
}

// NewChunkStore creates an empty store backed by the given generator.
func NewChunkStore(size int, field *BiomeField, gen ChunkGenerator) *ChunkStore {
	return &ChunkStore{
		size:   size,
		field:  field,
		gen:    gen,
		chunks: make(map[ChunkCoord]*Chunk),
	}
}

// ChunkSize returns the configured chunk edge length in cells.
func (cs *ChunkStore) ChunkSize() int { return cs.size }

// Has reports whether the chunk at coord has been generated.
func (cs *ChunkStore) Has(coord ChunkCoord) bool {
	cs.mu.RLock()
	_, ok := cs.chunks[coord]
	cs.mu.RUnlock()
	return ok
}

// Get returns the generated chunk at coord, if any.
func (cs *ChunkStore) Get(coord ChunkCoord) (*Chunk, bool) {
	cs.mu.RLock()
	c, ok := cs.chunks[coord]
	cs.mu.RUnlock()
	return c, ok
}

// EnsureGenerated generates and stores the chunk at coord if it is missing.
// Idempotent and cheap when already satisfied. Generation runs outside the
// lock; the double-check on insert keeps concurrent callers from clobbering
// each other (first writer wins, so all callers observe identical content).
func (cs *ChunkStore) EnsureGenerated(coord ChunkCoord) *Chunk {
	if c, ok := cs.Get(coord); ok {
		return c
	}

	c := cs.gen.Generate(coord)

	cs.mu.Lock()
	if existing, ok := cs.chunks[coord]; ok {
		cs.mu.Unlock()
		return existing
	}
	cs.chunks[coord] = c
	cs.modCount++
	cs.mu.Unlock()
	return c
}

// chunkForCell returns the generated chunk containing the cell plus local
// coordinates, or nil if the chunk has not been generated.
func (cs *ChunkStore) chunkForCell(c Cell) (*Chunk, int, int) {
	chunk, ok := cs.Get(ChunkOf(c, cs.size))
	if !ok {
		return nil, 0, 0
	}
	return chunk, mod(c.X, cs.size), mod(c.Y, cs.size)
}

// BiomeAt answers for any cell, generated or not. For generated cells the
// cached value is returned; otherwise the classification is recomputed from
// the pure field without materializing the chunk.
func (cs *ChunkStore) BiomeAt(c Cell) Biome {
	if chunk, lx, ly := cs.chunkForCell(c); chunk != nil {
		return chunk.BiomeAt(lx, ly)
	}
	return cs.field.At(c)
}

// GroundTileAt returns the ground tile id at the cell and whether the cell has
// been generated.
func (cs *ChunkStore) GroundTileAt(c Cell) (int, bool) {
	chunk, lx, ly := cs.chunkForCell(c)
	if chunk == nil {
		return 0, false
	}
	return chunk.GroundAt(lx, ly), true
}

// ResourceTileAt returns the resource tile id at the cell, or NoResource when
// the cell is empty or not yet generated.
func (cs *ChunkStore) ResourceTileAt(c Cell) int {
	chunk, lx, ly := cs.chunkForCell(c)
	if chunk == nil {
		return NoResource
	}
	return chunk.ResourceAt(lx, ly)
}

// HasResourceAt reports whether the cell currently holds a resource.
// Ungenerated cells report false.
func (cs *ChunkStore) HasResourceAt(c Cell) bool {
	return cs.ResourceTileAt(c) != NoResource
}

// removeResourceAt clears the resource at the cell, reporting whether one was
// present. Used by the ResourceIndex on behalf of the harvesting collaborator.
func (cs *ChunkStore) removeResourceAt(c Cell) bool {
	chunk, lx, ly := cs.chunkForCell(c)
	if chunk == nil {
		return false
	}
	return chunk.clearResource(lx, ly)
}

// Count returns the number of generated chunks.
func (cs *ChunkStore) Count() int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return len(cs.chunks)
}

// ModCount returns the store's modification counter. Render layers use it to
// notice newly generated chunks without walking the map.
func (cs *ChunkStore) ModCount() uint64 {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.modCount
}
