// Package termview renders an ecosystem session into a tcell screen and maps
// terminal input onto session actions. Each tile occupies one terminal cell.
package termview

import (
	"fmt"
	"image/color"
	"math"

	"ecosystem/internal/app"
	"ecosystem/internal/render"
	"ecosystem/internal/sims/ecosystem"

	"github.com/gdamore/tcell/v2"
)

// Action is a request the view cannot satisfy on its own.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionToggleAudio
)

// statusRows is the number of text rows drawn under the grid.
const statusRows = 4

var plantGlyphs = map[ecosystem.PlantType]rune{
	ecosystem.PlantGrass:  '"',
	ecosystem.PlantFlower: '*',
	ecosystem.PlantCactus: '#',
	ecosystem.PlantLily:   'o',
}

// View draws a session and translates events.
type View struct {
	screen  tcell.Screen
	session *app.Session
	message string
	field   []float64
}

// New returns a view of session on screen.
func New(screen tcell.Screen, session *app.Session) *View {
	return &View{screen: screen, session: session}
}

// Notify sets the transient message shown in the status area.
func (v *View) Notify(format string, args ...any) {
	v.message = fmt.Sprintf(format, args...)
}

// Message returns the current status message.
func (v *View) Message() string { return v.message }

// HandleEvent applies ev to the session and reports anything the caller must
// act on.
func (v *View) HandleEvent(ev tcell.Event) Action {
	s := v.session
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return ActionQuit
		case tcell.KeyEnter:
			s.Resume()
		case tcell.KeyF5:
			if err := s.Save(); err != nil {
				v.Notify("save failed: %v", err)
			} else {
				v.Notify("saved %s", s.SavePath)
			}
		case tcell.KeyF9:
			if report, err := s.Load(); err != nil {
				v.Notify("load failed: %v", err)
			} else {
				v.Notify("loaded %s (%d plants, %d skipped)", s.SavePath, report.Plants, report.Skipped)
			}
		case tcell.KeyRune:
			return v.handleRune(ev.Rune())
		}
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			return ActionNone
		}
		x, y := ev.Position()
		size := s.World.Size()
		if x >= 0 && x < size.W && y >= 0 && y < size.H {
			s.ApplyScreen(x, y, 1)
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return ActionNone
}

func (v *View) handleRune(r rune) Action {
	s := v.session
	switch {
	case r >= '1' && r <= '9':
		s.SelectModeIndex(int(r - '0'))
	case r == 'q':
		return ActionQuit
	case r == ' ':
		s.TogglePause()
	case r == 'n':
		s.StepOnce()
	case r == 'r':
		s.Reset(0)
	case r == 's':
		s.Reset(s.Seed() + 1)
	case r == 'p':
		s.CyclePlant()
	case r == 'h':
		s.ToggleHumidity()
	case r == 'a':
		return ActionToggleAudio
	}
	return ActionNone
}

// Draw paints the world, its entities and the status rows, then shows the
// screen.
func (v *View) Draw() {
	world := v.session.World
	size := world.Size()
	sw, sh := v.screen.Size()
	v.screen.Clear()

	cells := world.Cells()
	palette := world.Palette()
	if v.session.ShowHumidity {
		v.field = world.HumidityField(v.field)
	}
	for y := 0; y < size.H && y < sh; y++ {
		for x := 0; x < size.W && x < sw; x++ {
			i := y*size.W + x
			style := tcell.StyleDefault.Background(rgb(render.PaletteColor(palette, cells[i])))
			ch := ' '
			if v.session.ShowHumidity {
				ch = humidityGlyph(v.field[i])
				style = style.Foreground(tcell.ColorWhite)
			}
			v.screen.SetContent(x, y, ch, nil, style)
		}
	}

	for _, p := range world.Plants() {
		glyph, ok := plantGlyphs[p.Type]
		if !ok {
			glyph = '"'
		}
		for k := 0; k < p.Size; k++ {
			v.setCell(p.X, p.Y+k, glyph, tcell.ColorGreen, p.Mature)
		}
	}
	for _, s := range world.Seeds() {
		x, y := tileOf(s.X, s.Y)
		v.setCell(x, y, '.', tcell.ColorOlive, false)
	}
	for _, d := range world.Droplets() {
		x, y := tileOf(d.X, d.Y)
		v.setCell(x, y, '|', tcell.ColorBlue, false)
	}

	lines := v.session.Status()
	if v.message != "" {
		lines = append(lines, v.message)
	}
	for i, line := range lines {
		if i >= statusRows {
			break
		}
		v.drawText(0, size.H+i, line)
	}
	v.screen.Show()
}

// setCell draws glyph over tile (tx, ty), keeping the terrain background.
func (v *View) setCell(tx, ty int, glyph rune, fg tcell.Color, bold bool) {
	world := v.session.World
	size := world.Size()
	if tx < 0 || tx >= size.W || ty < 0 || ty >= size.H {
		return
	}
	sy := size.H - 1 - ty
	if sw, sh := v.screen.Size(); tx >= sw || sy >= sh {
		return
	}
	col := render.PaletteColor(world.Palette(), world.Cells()[sy*size.W+tx])
	style := tcell.StyleDefault.Background(rgb(col)).Foreground(fg).Bold(bold)
	v.screen.SetContent(tx, sy, glyph, nil, style)
}

func (v *View) drawText(x, y int, text string) {
	sw, sh := v.screen.Size()
	if y >= sh {
		return
	}
	for i, r := range []rune(text) {
		if x+i >= sw {
			return
		}
		v.screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func tileOf(wx, wy float64) (int, int) {
	return int(math.Floor(wx / ecosystem.TileSize)), int(math.Floor(wy / ecosystem.TileSize))
}

func humidityGlyph(h float64) rune {
	switch {
	case h <= 0:
		return ' '
	case h >= 1:
		return '9'
	}
	return rune('0' + int(h*10))
}
