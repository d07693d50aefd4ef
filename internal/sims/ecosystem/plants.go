package ecosystem

import "math"

// PlantID identifies a plant for the lifetime of a world. NoPlant marks an
// unoccupied tile.
type PlantID uint32

// NoPlant is the zero PlantID.
const NoPlant PlantID = 0

// healthyThreshold is the health a plant needs before its growth timer runs.
const healthyThreshold = 0.99

// Plant is a rooted organism. X, Y is the tile it occupies; terrestrial
// plants are supported by the tile below, aquatic plants float on the water
// tile they occupy.
type Plant struct {
	ID           PlantID
	Type         PlantType
	X, Y         int
	Size         int
	MatureHeight int
	Health       float64
	Water        float64
	GrowthTimer  float64
	Mature       bool

	dead bool
}

// Top returns the world position of the plant's tip.
func (p *Plant) Top() (float64, float64) {
	return (float64(p.X) + 0.5) * TileSize, float64(p.Y+p.Size) * TileSize
}

func (w *World) newPlant(pt PlantType, x, y int) Plant {
	info := pt.Info()
	return Plant{
		Type:         pt,
		X:            x,
		Y:            y,
		Size:         1,
		MatureHeight: w.rng.IntInclusive(info.MatureHeightMin, info.MatureHeightMax),
		Health:       1,
		GrowthTimer:  w.rng.FloatRange(info.GrowthTimeMin, info.GrowthTimeMax),
	}
}

// addPlant registers p on its tile and returns its new ID. The tile must be
// in bounds and free.
func (w *World) addPlant(p Plant) PlantID {
	t, ok := w.tiles.At(p.X, p.Y)
	if !ok || t.HasPlant() {
		return NoPlant
	}
	p.ID = w.nextPlantID
	w.nextPlantID++
	p.dead = false
	w.plantIndex[p.ID] = len(w.plants)
	w.plants = append(w.plants, p)
	t.Plant = p.ID
	return p.ID
}

// Plant returns the live plant with the given ID.
func (w *World) Plant(id PlantID) (*Plant, bool) {
	idx, ok := w.plantIndex[id]
	if !ok || w.plants[idx].dead {
		return nil, false
	}
	return &w.plants[idx], true
}

// PlantAt returns the live plant registered on tile (x, y).
func (w *World) PlantAt(x, y int) (*Plant, bool) {
	t, ok := w.tiles.At(x, y)
	if !ok || !t.HasPlant() {
		return nil, false
	}
	return w.Plant(t.Plant)
}

// killPlant clears the plant's tile reference and tombstones it until the
// next compactPlants.
func (w *World) killPlant(p *Plant) {
	if p.dead {
		return
	}
	p.dead = true
	if t, ok := w.tiles.At(p.X, p.Y); ok && t.Plant == p.ID {
		t.Plant = NoPlant
	}
	delete(w.plantIndex, p.ID)
	w.stats.PlantsDied++
}

// compactPlants drops tombstoned plants and reindexes the survivors.
func (w *World) compactPlants() {
	kept := w.plants[:0]
	for _, p := range w.plants {
		if p.dead {
			continue
		}
		w.plantIndex[p.ID] = len(kept)
		kept = append(kept, p)
	}
	clear(w.plants[len(kept):])
	w.plants = kept
}

func (w *World) stepPlants(dt float64) {
	for i := range w.plants {
		p := &w.plants[i]
		if p.dead {
			continue
		}
		w.stepPlant(p, dt)
	}
	w.compactPlants()
}

func (w *World) stepPlant(p *Plant, dt float64) {
	params := w.cfg.Params
	info := p.Type.Info()

	gx, gy := p.X, p.Y
	if info.Aquatic {
		w.trackSurface(p)
		gx, gy = p.X, p.Y
	} else {
		gy = p.Y - 1
		support, ok := w.tiles.At(gx, gy)
		if !ok || !support.Terrain.IsSolid() {
			w.killPlant(p)
			return
		}
	}
	ground, _ := w.tiles.At(gx, gy)

	p.Water -= info.ThirstRate * dt
	if deficit := info.DesiredHumidity - p.Water; deficit > 0 {
		amount := math.Min(deficit, ground.Humidity) * dt
		if amount > 0 {
			w.ledger.Uptake += amount
			w.modifyHumidity(gx, gy, -amount)
			p.Water += amount
		}
	}

	var difference float64
	if info.Aquatic {
		if !ground.Terrain.IsWater() {
			difference = params.AquaticDryDifference
		}
	} else {
		difference = math.Abs(ground.Humidity - info.DesiredHumidity)
	}
	switch {
	case difference < params.HappyBand:
		p.Health = math.Min(1, p.Health+dt)
	case difference < params.NeutralBand:
	default:
		p.Health -= params.DyingRate * dt
	}

	if p.Health >= healthyThreshold {
		p.GrowthTimer -= dt
		if p.GrowthTimer <= 0 {
			w.growPlant(p, info)
		}
	}

	if p.Health <= 0 {
		w.killPlant(p)
	}
}

// growPlant fires the growth event: re-roll the timer, pay the water cost,
// then either drop a seed (mature), mature, or grow one tile.
func (w *World) growPlant(p *Plant, info PlantTypeInfo) {
	params := w.cfg.Params
	p.GrowthTimer = w.rng.FloatRange(info.GrowthTimeMin, info.GrowthTimeMax)
	p.Water -= params.GrowthWaterCost

	switch {
	case p.Mature:
		dx := w.rng.FloatRange(params.SeedSpeedMinX, params.SeedSpeedMaxX)
		if w.rng.Bool() {
			dx = -dx
		}
		dy := w.rng.FloatRange(params.SeedSpeedMinY, params.SeedSpeedMaxY)
		x, y := p.Top()
		w.SpawnSeed(p.Type, x, y, dx, dy)
		w.stats.SeedsSpawned++
	case p.Size >= p.MatureHeight:
		p.Mature = true
		p.Size = p.MatureHeight
	default:
		p.Size++
		if p.Size >= p.MatureHeight {
			p.Mature = true
			p.Size = p.MatureHeight
		}
	}
}

// trackSurface moves an aquatic plant to the tile holding the current water
// surface of its column, when that tile is free.
func (w *World) trackSurface(p *Plant) {
	t, _ := w.tiles.At(p.X, p.Y)
	if !t.Terrain.IsWater() {
		return
	}
	row := w.surfaceRow(w.SurfaceHeight(p.X, p.Y))
	if row == p.Y {
		return
	}
	dst, ok := w.tiles.At(p.X, row)
	if !ok || dst.HasPlant() {
		return
	}
	t.Plant = NoPlant
	dst.Plant = p.ID
	p.Y = row
}
