package ecosystem

// Mode selects what ApplyInteraction does at the pointer position.
type Mode uint8

const (
	ModeWater Mode = iota
	ModeSpring
	ModePlant
	ModeSoil
	ModeRock
	ModeDig

	modeCount
)

var modeNames = [modeCount]string{
	ModeWater:  "water",
	ModeSpring: "spring",
	ModePlant:  "plant",
	ModeSoil:   "soil",
	ModeRock:   "rock",
	ModeDig:    "dig",
}

func (m Mode) String() string {
	if m >= modeCount {
		return "unknown"
	}
	return modeNames[m]
}

// Modes lists every interaction mode in declaration order.
func Modes() []Mode {
	modes := make([]Mode, modeCount)
	for i := range modes {
		modes[i] = Mode(i)
	}
	return modes
}

// Interaction is a user action. Plant is only used by ModePlant.
type Interaction struct {
	Mode  Mode
	Plant PlantType
}

// ApplyInteraction performs in at world position (wx, wy). Positions outside
// the grid are ignored.
func (w *World) ApplyInteraction(in Interaction, wx, wy float64) {
	tx, ty := worldToTile(wx, wy)
	t, ok := w.tiles.At(tx, ty)
	if !ok {
		return
	}
	switch in.Mode {
	case ModeWater:
		w.SpawnDroplet(wx, wy)
	case ModePlant:
		w.SpawnSeed(in.Plant, wx, wy, 0, 0)
	case ModeSpring:
		w.setTerrain(t, TerrainSpring)
	case ModeSoil:
		w.setTerrain(t, TerrainSoil)
	case ModeRock:
		w.setTerrain(t, TerrainRock)
	case ModeDig:
		if t.Terrain == TerrainAir {
			return
		}
		next := TerrainAir
		if t.Humidity > w.cfg.Params.HumidityEpsilon {
			next = TerrainWater
		}
		w.setTerrain(t, next)
	default:
		return
	}
	w.compactPlants()
	w.rebuildDisplay()
}

// setTerrain converts t in place, keeping its humidity. A plant whose own
// tile turns solid is killed.
func (w *World) setTerrain(t *Tile, terrain Terrain) {
	t.Terrain = terrain
	if terrain == TerrainAir {
		w.ledger.Dried += t.Humidity
		t.Humidity = 0
	}
	if terrain.IsSolid() && t.HasPlant() {
		if p, ok := w.Plant(t.Plant); ok {
			w.killPlant(p)
		}
	}
}
