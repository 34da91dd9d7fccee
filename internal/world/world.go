package world

import (
	"github.com/go-gl/mathgl/mgl64"

	"overland/internal/config"
)

// World wires the biome field, chunk store, streaming controller and fog
// tracker behind one facade. All updates happen on the caller's tick
// goroutine; queries are safe from anywhere.
type World struct {
	cfg config.Config

	field    *BiomeField
	store    *ChunkStore
	streamer *ChunkStreamer
	fog      *FogTracker
	index    *ResourceIndex

	// Observer state. Until an observer registers the world ticks
	// quiescently: no streaming, no fog updates, no errors.
	hasObserver bool
	observer    Cell

	fogAccum float64
}

// New validates the configuration and builds a world. The streaming
// neighborhood around the spawn cell is generated before New returns, so the
// first presented frame has no generation pop-in.
func New(cfg config.Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	field := NewBiomeField(cfg.Seed, cfg.NoiseScale, cfg.BiomeThresholds, cfg.SingleBiome)

	palettes := [biomeCount]Palette{
		BiomeForest: {Ground: cfg.Forest.Ground, Resource: cfg.Forest.Resource},
		BiomeDesert: {Ground: cfg.Desert.Ground, Resource: cfg.Desert.Resource},
		BiomeSnow:   {Ground: cfg.Snow.Ground, Resource: cfg.Snow.Resource},
	}
	gen := NewGenerator(cfg.Seed, cfg.ChunkSize, cfg.ResourceDensity, field, palettes)

	store := NewChunkStore(cfg.ChunkSize, field, gen)
	streamer := NewChunkStreamer(store, cfg.StreamRadius)

	w := &World{
		cfg:      cfg,
		field:    field,
		store:    store,
		streamer: streamer,
		fog:      NewFogTracker(cfg.RevealRadius, cfg.PermanentReveal),
		index:    NewResourceIndex(store),
	}

	// Pre-generate the spawn neighborhood.
	w.streamer.EnsureAround(Cell{})
	return w, nil
}

// Close stops the background prefetch workers.
func (w *World) Close() {
	w.streamer.Close()
}

// SetObserver registers the observer's continuous world position. Conversion
// to a cell happens here, at the boundary; everything below works on cells.
func (w *World) SetObserver(pos mgl64.Vec2) {
	w.observer = CellAt(pos)
	w.hasObserver = true
}

// ClearObserver detaches the observer. Subsequent ticks are quiescent.
func (w *World) ClearObserver() {
	w.hasObserver = false
}

// Observer returns the observer's current cell and whether one is registered.
func (w *World) Observer() (Cell, bool) {
	return w.observer, w.hasObserver
}

// Tick advances the world by dt seconds. Streaming runs every tick (cheap
// once the neighborhood exists); the fog update runs on its own fixed
// cadence, decoupled from the frame rate.
func (w *World) Tick(dt float64) {
	if !w.hasObserver {
		return
	}

	w.streamer.EnsureAround(w.observer)
	if w.cfg.PrefetchRadius > w.cfg.StreamRadius {
		w.streamer.PrefetchAround(w.observer, w.cfg.PrefetchRadius)
	}

	w.fogAccum += dt
	for w.fogAccum >= w.cfg.RevealInterval {
		w.fogAccum -= w.cfg.RevealInterval
		w.fog.Update(w.observer)
	}
}

// BiomeAt answers for any cell, generated or not.
func (w *World) BiomeAt(c Cell) Biome {
	return w.store.BiomeAt(c)
}

// HasResourceAt reports whether the cell currently holds a harvestable
// resource. Never triggers generation.
func (w *World) HasResourceAt(c Cell) bool {
	return w.index.Has(c)
}

// RevealAll permanently reveals the declared world extent. Expensive; meant
// for debug and rare game events only.
func (w *World) RevealAll() {
	e := w.cfg.WorldExtent
	w.fog.RevealAll(Cell{X: -e, Y: -e}, Cell{X: e, Y: e})
}

// Fog exposes the fog layer to the presentation collaborator.
func (w *World) Fog() *FogTracker { return w.fog }

// Resources exposes the resource index to movement and harvesting checks.
func (w *World) Resources() *ResourceIndex { return w.index }

// Store exposes the chunk store to the presentation collaborator.
func (w *World) Store() *ChunkStore { return w.store }

// Config returns the immutable world configuration.
func (w *World) Config() config.Config { return w.cfg }

// SaveWorldState is a placeholder; persistence is not designed here.
func (w *World) SaveWorldState() error {
	return nil
}
