package world

// NoResource marks a cell with no harvestable resource.
const NoResource = -1

// Chunk owns a square block of size×size cells. Content is written once at
// generation time; the only later mutation is clearing a resource when the
// harvesting collaborator consumes it.
type Chunk struct {
	Coord ChunkCoord

	size int

	// Flat row-major arrays, y*size+x. biomes caches the field classification;
	// it is derived data, never authoritative (the BiomeField can always
	// recompute it).
	biomes    []Biome
	ground    []int16
	resources []int16
}

// NewChunk allocates an empty chunk shell at the given coordinate.
func NewChunk(coord ChunkCoord, size int) *Chunk {
	n := size * size
	c := &Chunk{
		Coord:     coord,
		size:      size,
		biomes:    make([]Biome, n),
		ground:    make([]int16, n),
		resources: make([]int16, n),
	}
	for i := range c.resources {
		c.resources[i] = NoResource
	}
	return c
}

// Size returns the chunk edge length in cells.
func (c *Chunk) Size() int { return c.size }

func (c *Chunk) index(lx, ly int) int {
	return ly*c.size + lx
}

func (c *Chunk) inBounds(lx, ly int) bool {
	return lx >= 0 && lx < c.size && ly >= 0 && ly < c.size
}

// BiomeAt returns the cached biome at local coordinates.
func (c *Chunk) BiomeAt(lx, ly int) Biome {
	if !c.inBounds(lx, ly) {
		return BiomeForest
	}
	return c.biomes[c.index(lx, ly)]
}

// GroundAt returns the selected ground tile id at local coordinates.
func (c *Chunk) GroundAt(lx, ly int) int {
	if !c.inBounds(lx, ly) {
		return 0
	}
	return int(c.ground[c.index(lx, ly)])
}

// ResourceAt returns the resource tile id at local coordinates, or NoResource.
func (c *Chunk) ResourceAt(lx, ly int) int {
	if !c.inBounds(lx, ly) {
		return NoResource
	}
	return int(c.resources[c.index(lx, ly)])
}

// HasResource reports whether the local cell holds a resource.
func (c *Chunk) HasResource(lx, ly int) bool {
	return c.ResourceAt(lx, ly) != NoResource
}

// setCell records the generation result for one local cell.
func (c *Chunk) setCell(lx, ly int, biome Biome, ground int, resource int) {
	if !c.inBounds(lx, ly) {
		return
	}
	i := c.index(lx, ly)
	c.biomes[i] = biome
	c.ground[i] = int16(ground)
	c.resources[i] = int16(resource)
}

// clearResource removes the resource at local coordinates and reports whether
// one was present.
func (c *Chunk) clearResource(lx, ly int) bool {
	if !c.inBounds(lx, ly) {
		return false
	}
	i := c.index(lx, ly)
	if c.resources[i] == NoResource {
		return false
	}
	c.resources[i] = NoResource
	return true
}
