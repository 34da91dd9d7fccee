package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PaletteConfig lists the tile ids a biome draws from. Ground must be
// non-empty; an empty Resource list is valid and means the biome never spawns
// harvestables.
type PaletteConfig struct {
	Ground   []int `yaml:"ground"`
	Resource []int `yaml:"resource"`
}

// Config holds every tunable of the world core. It is immutable after
// validation: the world keeps its own copy and nothing mutates it mid-session.
type Config struct {
	Seed int64 `yaml:"seed"`

	// ChunkSize is the chunk edge length in cells.
	ChunkSize int `yaml:"chunk_size"`

	// StreamRadius is the Chebyshev radius, in chunks, of the synchronous
	// generation guarantee around the observer (1 = the 3x3 neighborhood).
	StreamRadius int `yaml:"stream_radius"`

	// PrefetchRadius is the wider radius warmed by background workers.
	// Zero disables prefetch.
	PrefetchRadius int `yaml:"prefetch_radius"`

	// RevealRadius is the fog reveal radius in cells (Euclidean).
	RevealRadius float64 `yaml:"reveal_radius"`

	// RevealInterval is the fog update cadence in seconds.
	RevealInterval float64 `yaml:"reveal_interval"`

	// PermanentReveal pins revealed cells forever; otherwise cells re-occlude
	// when the observer moves away.
	PermanentReveal bool `yaml:"permanent_reveal"`

	// ResourceDensity is the percent chance (0-100) that an eligible cell
	// spawns a resource at generation time.
	ResourceDensity int `yaml:"resource_density"`

	// NoiseScale stretches the biome noise field; smaller values make larger
	// biome regions.
	NoiseScale float64 `yaml:"noise_scale"`

	// BiomeThresholds are the two ascending cut points over [0,1) separating
	// Forest / Desert / Snow.
	BiomeThresholds [2]float64 `yaml:"biome_thresholds"`

	// SingleBiome switches to the degenerate forest-only classification. The
	// thresholds and noise scale are ignored in that mode.
	SingleBiome bool `yaml:"single_biome"`

	// WorldExtent is the half-extent, in cells, of the declared world used by
	// the reveal-everything command.
	WorldExtent int `yaml:"world_extent"`

	Forest PaletteConfig `yaml:"forest"`
	Desert PaletteConfig `yaml:"desert"`
	Snow   PaletteConfig `yaml:"snow"`
}

// Default returns the stock configuration: three biomes, 16-cell chunks, a
// 3x3 streaming neighborhood and permanent reveal on a 0.2s cadence.
func Default() Config {
	return Config{
		Seed:            1,
		ChunkSize:       16,
		StreamRadius:    1,
		PrefetchRadius:  3,
		RevealRadius:    6,
		RevealInterval:  0.2,
		PermanentReveal: true,
		ResourceDensity: 8,
		NoiseScale:      0.02,
		BiomeThresholds: [2]float64{0.4, 0.7},
		WorldExtent:     256,
		Forest: PaletteConfig{
			Ground:   []int{0, 1, 2, 3},
			Resource: []int{100, 101, 102},
		},
		Desert: PaletteConfig{
			Ground:   []int{10, 11, 12},
			Resource: []int{110, 111},
		},
		Snow: PaletteConfig{
			Ground:   []int{20, 21, 22},
			Resource: []int{120},
		},
	}
}

// Load reads a YAML file over the defaults and validates the result, so a
// config file only needs to state what it changes.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects out-of-range values. Construction is the only place
// configuration errors can surface; generation itself never fails.
func (c Config) Validate() error {
	if c.ChunkSize <= 0 {
		return fmt.Errorf("chunk_size must be positive, got %d", c.ChunkSize)
	}
	if c.StreamRadius < 0 {
		return fmt.Errorf("stream_radius must be non-negative, got %d", c.StreamRadius)
	}
	if c.PrefetchRadius < 0 {
		return fmt.Errorf("prefetch_radius must be non-negative, got %d", c.PrefetchRadius)
	}
	if c.RevealRadius < 0 {
		return fmt.Errorf("reveal_radius must be non-negative, got %g", c.RevealRadius)
	}
	if c.RevealInterval <= 0 {
		return fmt.Errorf("reveal_interval must be positive, got %g", c.RevealInterval)
	}
	if c.ResourceDensity < 0 || c.ResourceDensity > 100 {
		return fmt.Errorf("resource_density must be in [0,100], got %d", c.ResourceDensity)
	}
	if c.WorldExtent < 0 {
		return fmt.Errorf("world_extent must be non-negative, got %d", c.WorldExtent)
	}
	if !c.SingleBiome {
		if c.NoiseScale <= 0 {
			return fmt.Errorf("noise_scale must be positive, got %g", c.NoiseScale)
		}
		for i, t := range c.BiomeThresholds {
			if t < 0 || t >= 1 {
				return fmt.Errorf("biome_thresholds[%d] must be in [0,1), got %g", i, t)
			}
		}
		if c.BiomeThresholds[0] > c.BiomeThresholds[1] {
			return fmt.Errorf("biome_thresholds must be ascending, got %g > %g",
				c.BiomeThresholds[0], c.BiomeThresholds[1])
		}
	}

	// A biome cannot render without ground tiles, so an empty ground palette
	// is a configuration error. Empty resource palettes are fine. In the
	// single-biome configuration only the forest palette is reachable.
	type namedPalette struct {
		name string
		pal  PaletteConfig
	}
	palettes := []namedPalette{{"forest", c.Forest}}
	if !c.SingleBiome {
		palettes = append(palettes,
			namedPalette{"desert", c.Desert},
			namedPalette{"snow", c.Snow})
	}
	for _, p := range palettes {
		if len(p.pal.Ground) == 0 {
			return fmt.Errorf("%s: ground palette must not be empty", p.name)
		}
	}
	return nil
}
