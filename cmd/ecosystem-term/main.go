package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"ecosystem/internal/app"
	"ecosystem/internal/core"
	"ecosystem/internal/sims/ecosystem"
	"ecosystem/internal/termview"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Width = 80
	cfg.Height = 30
	cfg.Bind(flag.CommandLine)
	audio := flag.Bool("audio", true, "play a splash when droplets land (toggle with a)")
	logPath := flag.String("log", "", "write log output to this file while the screen is active")
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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}
	restoreLog, err := redirectLog(*logPath)
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}
	screen.EnableMouse()

	splash := termview.NewSplash(*audio)
	if err := splash.Init(); err != nil {
		// Non-fatal, the simulation runs without sound.
		log.Printf("audio initialization failed: %v", err)
	}

	view := termview.New(screen, session)
	run(screen, view, session, splash, cfg)

	splash.Close()
	screen.Fini()
	restoreLog()
}

// maxCatchUp bounds how many ticks one frame may run after a stall.
const maxCatchUp = 4

func run(screen tcell.Screen, view *termview.View, session *app.Session, splash *termview.Splash, cfg *app.Config) {
	timer := core.NewFixedStep(cfg.TPS)
	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := termview.PollEvents(screen, done)

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch view.HandleEvent(ev) {
			case termview.ActionQuit:
				return
			case termview.ActionToggleAudio:
				if splash.Toggle() {
					view.Notify("audio on")
				} else {
					view.Notify("audio off")
				}
			}
		case <-ticker.C:
			for n := 0; n < maxCatchUp && timer.ShouldStep(); n++ {
				if session.Advance(timer.Delta()) && session.World.LastStep().DropletsLanded > 0 {
					splash.Play()
				}
			}
			view.Draw()
		}
	}
}

// redirectLog sends log output to path, or discards it when path is empty,
// so log lines do not corrupt the terminal. The returned func restores
// stderr.
func redirectLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log %s: %w", path, err)
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		f.Close()
	}, nil
}
