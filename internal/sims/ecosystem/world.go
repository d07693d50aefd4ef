package ecosystem

import (
	"math"

	"ecosystem/internal/core"
)

// Tile is one cell of the world grid. Plant is a non-owning reference to the
// plant rooted in this tile, or NoPlant.
type Tile struct {
	X, Y     int
	Terrain  Terrain
	Humidity float64
	Plant    PlantID
}

// HasPlant reports whether a live plant is registered on the tile.
func (t *Tile) HasPlant() bool { return t.Plant != NoPlant }

// Ledger accumulates every humidity injection and extraction since the last
// Reset or Load. For any run the change in TotalHumidity equals
// Spring + Rain - Evaporated - Uptake - Spilled - Dried - Clamped.
type Ledger struct {
	Spring     float64
	Rain       float64
	Evaporated float64
	Uptake     float64
	// Spilled is overflow pushed past the top row or rain deposited above it.
	Spilled float64
	// Dried is residual water discarded when a Water tile demotes to Air.
	Dried float64
	// Clamped is water removed (or, when negative, added) by clamping
	// negative humidity back to zero.
	Clamped float64
}

// Net returns the expected change in total humidity.
func (l Ledger) Net() float64 {
	return l.Spring + l.Rain - l.Evaporated - l.Uptake - l.Spilled - l.Dried - l.Clamped
}

// StepStats counts the entity events of the most recent Step.
type StepStats struct {
	DropletsLanded  int
	SeedsGerminated int
	SeedsExpired    int
	SeedsSuffocated int
	SeedsSpawned    int
	PlantsDied      int
}

// World stores the tile grid, the particle collections and the plants.
type World struct {
	cfg Config

	w, h int

	tiles    *core.Grid[Tile]
	droplets []Droplet
	seeds    []Seed

	plants      []Plant
	plantIndex  map[PlantID]int
	nextPlantID PlantID

	ledger Ledger
	stats  StepStats

	display []uint8

	wet          []bool
	sweepReverse bool

	rng *core.RNG
}

// New returns an ecosystem simulation with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns an all-Air world configured from the provided options.
// Call Reset to generate terrain.
func NewWithConfig(cfg Config) *World {
	tiles := core.NewGrid[Tile](cfg.Width, cfg.Height)
	cfg.Width, cfg.Height = tiles.W, tiles.H
	w := &World{
		cfg:         cfg,
		w:           cfg.Width,
		h:           cfg.Height,
		tiles:       tiles,
		plantIndex:  make(map[PlantID]int),
		nextPlantID: 1,
		display:     make([]uint8, cfg.Width*cfg.Height),
		rng:         core.NewRNG(cfg.Seed),
	}
	w.clearTiles()
	return w
}

// Generate returns a width x height world with terrain generated from seed
// and no particles or plants.
func Generate(width, height int, seed int64) *World {
	w := New(width, height)
	w.Reset(seed)
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "ecosystem" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Cells exposes the current display buffer, top row first.
func (w *World) Cells() []uint8 { return w.display }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Tiles exposes the tile grid in row-major order with y = 0 at the bottom.
func (w *World) Tiles() []Tile { return w.tiles.Cells() }

// TileAt returns the tile at (x, y), or false when out of bounds.
func (w *World) TileAt(x, y int) (*Tile, bool) { return w.tiles.At(x, y) }

// Droplets exposes the active droplets.
func (w *World) Droplets() []Droplet { return w.droplets }

// Seeds exposes the active seeds.
func (w *World) Seeds() []Seed { return w.seeds }

// Plants exposes the live plants.
func (w *World) Plants() []Plant { return w.plants }

// Ledger returns the humidity bookkeeping since the last Reset or Load.
func (w *World) Ledger() Ledger { return w.ledger }

// LastStep returns the entity event counts of the most recent Step.
func (w *World) LastStep() StepStats { return w.stats }

// TotalHumidity sums the humidity of every tile.
func (w *World) TotalHumidity() float64 {
	total := 0.0
	for _, t := range w.tiles.Cells() {
		total += t.Humidity
	}
	return total
}

// Reset regenerates the world using deterministic randomness. A zero seed
// uses the configured seed; any other seed becomes the configured one.
func (w *World) Reset(seed int64) {
	if seed != 0 {
		w.cfg.Seed = seed
	}
	effective := w.cfg.Seed
	w.rng.Seed(effective)
	w.clearTiles()
	w.droplets = w.droplets[:0]
	w.seeds = w.seeds[:0]
	w.plants = w.plants[:0]
	clear(w.plantIndex)
	w.nextPlantID = 1
	w.ledger = Ledger{}
	w.stats = StepStats{}
	w.sweepReverse = false

	w.generateTerrain(effective)
	w.rebuildDisplay()
}

// Step advances the simulation by dt seconds: droplets, seeds, humidity and
// plants, in that order.
func (w *World) Step(dt float64) {
	if dt <= 0 || math.IsNaN(dt) {
		return
	}
	w.stats = StepStats{}
	w.stepDroplets(dt)
	w.stepSeeds(dt)
	w.stepHumidity(dt)
	w.stepPlants(dt)
	w.rebuildDisplay()
}

func (w *World) clearTiles() {
	cells := w.tiles.Cells()
	for i := range cells {
		cells[i] = Tile{X: i % w.w, Y: i / w.w}
	}
}

// worldToTile converts world units to tile coordinates.
func worldToTile(wx, wy float64) (int, int) {
	return int(math.Floor(wx / TileSize)), int(math.Floor(wy / TileSize))
}

func init() {
	core.Register("ecosystem", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return NewWithConfig(c)
	})
}
