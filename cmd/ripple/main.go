//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"ripple/internal/app"
	"ripple/internal/core"
	"ripple/internal/wave"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	var sim core.Sim
	if cfg.ConfigPath != "" {
		fieldCfg, err := wave.LoadConfig(cfg.ConfigPath)
		if err != nil {
			log.Fatal(err)
		}
		if cfg.Sim == "ripple-buffered" {
			fieldCfg.Tension = wave.TensionBuffered
		}
		field, err := wave.New(fieldCfg)
		if err != nil {
			log.Fatal(err)
		}
		sim = field
	} else {
		sim = factory(nil)
	}

	game := app.New(sim, cfg.Scale, cfg.TPS, cfg.HUDWidth)
	size := sim.Size()

	ebiten.SetWindowTitle("ripple — " + sim.Name())
	ebiten.SetWindowSize(int(size.W*cfg.Scale)+cfg.HUDWidth, int(size.H*cfg.Scale))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
