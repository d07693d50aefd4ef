//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"ecosystem/internal/core"
	"ecosystem/internal/render"
	"ecosystem/internal/sims/ecosystem"

	"github.com/hajimehoshi/ebiten/v2"
)

type particleProvider interface {
	Droplets() []ecosystem.Droplet
	Seeds() []ecosystem.Seed
}

type plantProvider interface {
	Plants() []ecosystem.Plant
}

type humidityProvider interface {
	HumidityField(dst []float64) []float64
}

// Overlay draws the entities that live between tiles (droplets, seeds,
// plant stems) and the optional humidity tint on top of the terrain.
type Overlay struct {
	sim   core.Sim
	scale int

	pixel       *ebiten.Image
	humidity    *render.GridPainter
	humidityBuf []float64
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	size := sim.Size()
	o.humidity = render.NewGridPainter(size.W, size.H)
	return o
}

var (
	dropletColor = color.RGBA{R: 40, G: 90, B: 230, A: 255}
	seedColor    = color.RGBA{R: 150, G: 110, B: 40, A: 255}
	humidityTint = color.RGBA{R: 0, G: 220, B: 255, A: 170}
	plantColors  = map[ecosystem.PlantType]color.RGBA{
		ecosystem.PlantGrass:  {R: 70, G: 170, B: 60, A: 255},
		ecosystem.PlantFlower: {R: 220, G: 90, B: 160, A: 255},
		ecosystem.PlantCactus: {R: 40, G: 120, B: 70, A: 255},
		ecosystem.PlantLily:   {R: 240, G: 240, B: 200, A: 255},
	}
)

// Draw renders the overlay onto screen. showHumidity adds a per-tile tint
// proportional to tile humidity.
func (o *Overlay) Draw(screen *ebiten.Image, showHumidity bool) {
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}

	if provider, ok := o.sim.(plantProvider); ok {
		for _, p := range provider.Plants() {
			o.drawPlant(screen, p, size)
		}
	}
	if provider, ok := o.sim.(particleProvider); ok {
		for _, s := range provider.Seeds() {
			o.drawParticle(screen, s.X, s.Y, size, 0.3, seedColor)
		}
		for _, d := range provider.Droplets() {
			o.drawParticle(screen, d.X, d.Y, size, 0.25, dropletColor)
		}
	}
	if showHumidity {
		if provider, ok := o.sim.(humidityProvider); ok {
			o.humidityBuf = provider.HumidityField(o.humidityBuf)
			o.humidity.BlitIntensity(screen, o.humidityBuf, humidityTint, o.scale)
		}
	}
}

// drawPlant paints a stem Size tiles tall from the plant's tile upward, its
// width tracking health.
func (o *Overlay) drawPlant(screen *ebiten.Image, p ecosystem.Plant, size core.Size) {
	col, ok := plantColors[p.Type]
	if !ok {
		col = plantColors[ecosystem.PlantGrass]
	}
	scale := float64(o.scale)
	width := scale * (0.25 + 0.5*clamp01(p.Health))
	x := (float64(p.X)+0.5)*scale - width/2
	top := float64(size.H-p.Y-p.Size) * scale
	height := float64(p.Size) * scale
	o.drawRect(screen, x, top, width, height, col)
	if p.Mature {
		o.drawRect(screen, (float64(p.X)+0.5)*scale-scale*0.2, top, scale*0.4, scale*0.3, color.RGBA{R: 250, G: 210, B: 60, A: 255})
	}
}

func (o *Overlay) drawParticle(screen *ebiten.Image, wx, wy float64, size core.Size, tiles float64, col color.RGBA) {
	scale := float64(o.scale)
	sx := wx / ecosystem.TileSize * scale
	sy := (float64(size.H) - wy/ecosystem.TileSize) * scale
	dot := math.Max(1, tiles*scale)
	o.drawRect(screen, sx-dot/2, sy-dot/2, dot, dot, col)
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	if o.pixel == nil || w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
