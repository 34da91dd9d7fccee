package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"overland/internal/config"
	"overland/internal/view"
	"overland/internal/world"
)

func main() {
	var (
		seed       = flag.Int64("seed", 0, "world seed (0 = config default)")
		configPath = flag.String("config", "", "optional YAML config file")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	w, err := world.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer w.Close()

	ebiten.SetWindowTitle("overland")
	ebiten.SetWindowSize(1280, 800)
	if err := ebiten.RunGame(view.New(w, 1280, 800)); err != nil {
		log.Fatal(err)
	}
}
