package app

import (
	"errors"
	"fmt"

	"ecosystem/internal/sims/ecosystem"
)

// ErrNoSavePath is returned by Save and Load when no world file is configured.
var ErrNoSavePath = errors.New("app: no save path configured")

// Session holds the interactive state shared by the front ends: the world,
// the selected tool, and the run controls. It has no display dependencies.
type Session struct {
	World *ecosystem.World

	Mode         ecosystem.Mode
	Plant        ecosystem.PlantType
	Paused       bool
	ShowHumidity bool
	SavePath     string

	seed     int64
	tickOnce bool
}

// NewSession wraps world. seed is used by Reset with a zero argument.
func NewSession(world *ecosystem.World, seed int64, savePath string) *Session {
	return &Session{World: world, seed: seed, SavePath: savePath}
}

// Seed reports the seed of the last reset.
func (s *Session) Seed() int64 { return s.seed }

// Reset regenerates the world. A zero seed reuses the last one.
func (s *Session) Reset(seed int64) {
	if seed != 0 {
		s.seed = seed
	}
	s.World.Reset(s.seed)
	s.tickOnce = false
}

// SelectMode switches the active tool. Unknown modes are ignored.
func (s *Session) SelectMode(m ecosystem.Mode) {
	for _, known := range ecosystem.Modes() {
		if known == m {
			s.Mode = m
			return
		}
	}
}

// SelectModeIndex selects the mode bound to digit key n (1-based).
func (s *Session) SelectModeIndex(n int) {
	modes := ecosystem.Modes()
	if n < 1 || n > len(modes) {
		return
	}
	s.Mode = modes[n-1]
}

// CyclePlant advances the seed species placed by the plant tool.
func (s *Session) CyclePlant() {
	types := ecosystem.PlantTypes()
	for i, pt := range types {
		if pt == s.Plant {
			s.Plant = types[(i+1)%len(types)]
			return
		}
	}
	s.Plant = types[0]
}

// TogglePause flips the paused state.
func (s *Session) TogglePause() { s.Paused = !s.Paused }

// Resume clears the paused state.
func (s *Session) Resume() { s.Paused = false }

// StepOnce requests a single tick while paused.
func (s *Session) StepOnce() { s.tickOnce = true }

// ToggleHumidity flips the humidity overlay.
func (s *Session) ToggleHumidity() { s.ShowHumidity = !s.ShowHumidity }

// Advance steps the world by dt unless paused. It reports whether a step ran.
func (s *Session) Advance(dt float64) bool {
	if s.Paused && !s.tickOnce {
		return false
	}
	s.World.Step(dt)
	s.tickOnce = false
	return true
}

// Apply runs the active tool at world position (wx, wy).
func (s *Session) Apply(wx, wy float64) {
	s.World.ApplyInteraction(ecosystem.Interaction{Mode: s.Mode, Plant: s.Plant}, wx, wy)
}

// ApplyScreen runs the active tool at screen position (px, py), where scale
// is screen units per tile and row 0 is the top of the view.
func (s *Session) ApplyScreen(px, py, scale int) {
	wx, wy := s.ScreenToWorld(px, py, scale)
	s.Apply(wx, wy)
}

// ScreenToWorld maps the centre of screen unit (px, py) to world units.
func (s *Session) ScreenToWorld(px, py, scale int) (float64, float64) {
	if scale <= 0 {
		scale = 1
	}
	h := float64(s.World.Size().H)
	tx := (float64(px) + 0.5) / float64(scale)
	ty := h - (float64(py)+0.5)/float64(scale)
	return tx * ecosystem.TileSize, ty * ecosystem.TileSize
}

// Save writes the world to SavePath.
func (s *Session) Save() error {
	if s.SavePath == "" {
		return ErrNoSavePath
	}
	return s.World.SaveFile(s.SavePath)
}

// Load replaces the world with the contents of SavePath.
func (s *Session) Load() (ecosystem.LoadReport, error) {
	if s.SavePath == "" {
		return ecosystem.LoadReport{}, ErrNoSavePath
	}
	report, err := s.World.LoadFile(s.SavePath)
	if err != nil {
		return report, err
	}
	s.seed = s.World.Config().Seed
	return report, nil
}

// Status returns short lines describing the session for a HUD or status bar.
func (s *Session) Status() []string {
	state := "running"
	if s.Paused {
		state = "paused"
	}
	ledger := s.World.Ledger()
	return []string{
		fmt.Sprintf("tool %s  plant %s  %s", s.Mode, s.Plant, state),
		fmt.Sprintf("plants %d  seeds %d  drops %d", len(s.World.Plants()), len(s.World.Seeds()), len(s.World.Droplets())),
		fmt.Sprintf("humidity %.2f  rain %.2f  evap %.2f", s.World.TotalHumidity(), ledger.Rain, ledger.Evaporated),
	}
}
