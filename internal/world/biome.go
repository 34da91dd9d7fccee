package world

// Biome classifies a cell's terrain. The order matters: biomes are listed by
// ascending noise-value threshold, so Forest covers the lowest band and Snow
// the highest.
type Biome uint8

const (
	BiomeForest Biome = iota
	BiomeDesert
	BiomeSnow

	biomeCount = 3
)

func (b Biome) String() string {
	switch b {
	case BiomeForest:
		return "Forest"
	case BiomeDesert:
		return "Desert"
	case BiomeSnow:
		return "Snow"
	}
	return "Unknown"
}

// Palette holds the tile ids a biome draws from during generation. Ground must
// be non-empty (validated at construction); Resource may be empty, in which
// case the biome never spawns a harvestable.
type Palette struct {
	Ground   []int
	Resource []int
}

// BiomeField maps cells to biomes. It is a pure function of (seed, cell):
// calling At in any order, any number of times, yields the same answer.
type BiomeField struct {
	seed       int64
	scale      float64
	thresholds [2]float64
	single     bool // degenerate config: everything is Forest, no noise sampled
}

// NewBiomeField builds a field from the given seed and classification
// parameters. thresholds must be ascending values in [0,1).
func NewBiomeField(seed int64, scale float64, thresholds [2]float64, single bool) *BiomeField {
	return &BiomeField{
		seed:       seed,
		scale:      scale,
		thresholds: thresholds,
		single:     single,
	}
}

// At classifies the cell. The seed offsets the sample coordinates so that two
// worlds with different seeds disagree everywhere, not just in fine detail.
func (f *BiomeField) At(c Cell) Biome {
	if f.single {
		return BiomeForest
	}
	x := (float64(c.X) + float64(f.seed)) * f.scale
	y := (float64(c.Y) + float64(f.seed)) * f.scale
	v := valueNoise2D(x, y, f.seed)

	switch {
	case v < f.thresholds[0]:
		return BiomeForest
	case v < f.thresholds[1]:
		return BiomeDesert
	default:
		return BiomeSnow
	}
}
