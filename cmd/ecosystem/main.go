//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"ecosystem/internal/app"
	"ecosystem/internal/core"
	"ecosystem/internal/sims/ecosystem"

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
	world, ok := factory(cfg.SimOptions()).(*ecosystem.World)
	if !ok {
		log.Fatalf("sim %q is not interactive", cfg.Sim)
	}

	session := app.NewSession(world, cfg.Seed, cfg.SavePath)
	session.Reset(cfg.Seed)

	game := app.New(session, cfg.Scale, cfg.TickDelta())
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("ecosystem")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
