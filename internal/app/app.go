//go:build ebiten

package app

import (
	"log"
	"time"

	"ecosystem/internal/render"
	"ecosystem/internal/sims/ecosystem"
	"ecosystem/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 300

var modeKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
}

// Game adapts an interactive session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	scale int
	dt    float64
}

// New constructs a Game for the provided session.
func New(session *Session, scale int, dt float64) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := session.World.Size()
	return &Game{
		session: session,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(session.World, scale),
		hud:     ui.NewHUD(session.World, hudWidth, session.Status),
		scale:   scale,
		dt:      dt,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	s := g.session
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.Resume()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		s.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.Reset(0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		s.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.CyclePlant()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		s.ToggleHumidity()
	}
	for i, key := range modeKeys {
		if inpututil.IsKeyJustPressed(key) {
			s.SelectModeIndex(i + 1)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		if err := s.Save(); err != nil {
			log.Printf("save failed: %v", err)
		} else {
			log.Printf("saved world to %s", s.SavePath)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		if report, err := s.Load(); err != nil {
			log.Printf("load failed: %v", err)
		} else {
			log.Printf("loaded %s: %d tiles, %d plants, %d seeds, %d droplets, %d skipped",
				s.SavePath, report.Tiles, report.Plants, report.Seeds, report.Droplets, report.Skipped)
			g.rebuildViews()
		}
	}

	viewW := s.World.Size().W * g.scale
	g.hud.Update(viewW)
	if mx, my := ebiten.CursorPosition(); mx >= 0 && mx < viewW && my >= 0 && g.pointerActive() {
		s.ApplyScreen(mx, my, g.scale)
	}

	s.Advance(g.dt)
	return nil
}

// pointerActive reports whether the current tool should fire this frame.
// Water and seeds stream while the button is held; terrain edits fire per
// click.
func (g *Game) pointerActive() bool {
	switch g.session.Mode {
	case ecosystem.ModeWater, ecosystem.ModePlant:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	default:
		return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	}
}

// rebuildViews recreates size-dependent views after a load resized the world.
func (g *Game) rebuildViews() {
	size := g.session.World.Size()
	if w, h := g.painter.Size(); w == size.W && h == size.H {
		return
	}
	g.painter = render.NewGridPainter(size.W, size.H)
	g.overlay = ui.NewOverlay(g.session.World, g.scale)
	g.hud = ui.NewHUD(g.session.World, hudWidth, g.session.Status)
	ebiten.SetWindowSize(size.W*g.scale+hudWidth, size.H*g.scale)
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	world := g.session.World
	g.painter.Blit(screen, world.Cells(), world.Palette(), g.scale)
	g.overlay.Draw(screen, g.session.ShowHumidity)
	g.hud.Draw(screen, world.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.World.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
