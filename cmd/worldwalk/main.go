// worldwalk drives an observer along a deterministic spiral for a fixed
// number of ticks and reports what the world core did: chunks generated,
// cells revealed, and where the tick time went. Useful for eyeballing
// streaming behavior and for comparing runs across seeds without a window.
package main

import (
	"flag"
	"log/slog"
	"math"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/xlab/closer"

	"overland/internal/config"
	"overland/internal/profiling"
	"overland/internal/world"
)

func main() {
	var (
		seed      = flag.Int64("seed", 1, "world seed")
		ticks     = flag.Int("ticks", 3000, "number of simulated ticks")
		dt        = flag.Float64("dt", 1.0/60.0, "seconds per tick")
		speed     = flag.Float64("speed", 10, "observer speed in cells/s")
		transient = flag.Bool("transient", false, "use transient fog instead of permanent")
		reveal    = flag.Bool("reveal-all", false, "fire the reveal-everything command at the end")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg := config.Default()
	cfg.Seed = *seed
	cfg.PermanentReveal = !*transient

	w, err := world.New(cfg)
	if err != nil {
		logger.Error("world init failed", "err", err)
		os.Exit(1)
	}
	closer.Bind(w.Close)
	defer closer.Close()

	logger.Info("walking",
		"seed", cfg.Seed,
		"ticks", *ticks,
		"chunk_size", cfg.ChunkSize,
		"permanent_reveal", cfg.PermanentReveal)

	// Outward spiral: crosses chunk borders in every direction and keeps
	// revisiting old ground, which exercises both streaming and re-occlusion.
	pos := mgl64.Vec2{}
	for i := 0; i < *ticks; i++ {
		profiling.ResetFrame()

		angle := float64(i) * 0.01
		r := *speed * *dt
		pos = pos.Add(mgl64.Vec2{math.Cos(angle) * r, math.Sin(angle) * r})

		w.SetObserver(pos)
		w.Tick(*dt)

		if i > 0 && i%1000 == 0 {
			logger.Info("progress",
				"tick", i,
				"cell", world.CellAt(pos),
				"chunks", w.Store().Count(),
				"revealed", w.Fog().RevealedCount(),
				"timings", profiling.TopN(3))
		}
	}

	if *reveal {
		w.RevealAll()
	}

	logger.Info("done",
		"chunks", w.Store().Count(),
		"revealed", w.Fog().RevealedCount(),
		"biome_at_origin", w.BiomeAt(world.Cell{}).String(),
		"resource_at_origin", w.HasResourceAt(world.Cell{}))
}
