package ecosystem

// surfaceInset keeps a resting seed just inside the tile it rests on so the
// next step still sees that tile.
const surfaceInset = 0.01

// Seed is a falling or resting seed in world units. Life counts down in
// seconds.
type Seed struct {
	Type   PlantType
	X, Y   float64
	DX, DY float64
	Life   float64
}

// SpawnSeed adds a seed of type pt at world position (wx, wy).
func (w *World) SpawnSeed(pt PlantType, wx, wy, dx, dy float64) {
	w.seeds = append(w.seeds, Seed{
		Type: pt,
		X:    wx,
		Y:    wy,
		DX:   dx,
		DY:   dy,
		Life: pt.Info().SeedLife,
	})
}

func (w *World) stepSeeds(dt float64) {
	kept := w.seeds[:0]
	for _, s := range w.seeds {
		if w.advanceSeed(&s, dt) {
			kept = append(kept, s)
		}
	}
	clear(w.seeds[len(kept):])
	w.seeds = kept
}

// advanceSeed moves one seed and reports whether it survives the step.
func (w *World) advanceSeed(s *Seed, dt float64) bool {
	p := w.cfg.Params
	s.Life -= dt
	s.X += s.DX * dt
	s.Y += s.DY * dt

	tx, ty := worldToTile(s.X, s.Y)
	if tx < 0 || tx >= w.w || ty < 0 {
		return false
	}
	t, ok := w.tiles.At(tx, ty)
	resting := false
	switch {
	case !ok || t.Terrain == TerrainAir:
		s.DY -= p.Gravity * dt
		if s.DY < -p.TerminalVelocity {
			s.DY = -p.TerminalVelocity
		}
	case t.Terrain.IsWater():
		s.DX, s.DY = 0, 0
		height := w.SurfaceHeight(tx, ty)
		row := w.surfaceRow(height)
		s.Y = max(height*TileSize-surfaceInset, float64(row)*TileSize)
		if top, ok := w.tiles.At(tx, row); ok {
			ty, t = row, top
		}
		resting = true
	default:
		s.DX, s.DY = 0, 0
		s.Y = float64(ty+1)*TileSize - surfaceInset
		resting = true
	}

	if s.Life <= 0 {
		w.stats.SeedsExpired++
		return false
	}
	if !resting {
		return true
	}
	if above, ok := w.tiles.At(tx, ty+1); ok && above.Terrain.IsSolid() {
		w.stats.SeedsSuffocated++
		return false
	}
	if w.tryGerminate(s, t) {
		w.stats.SeedsGerminated++
		return false
	}
	return true
}

// tryGerminate roots a plant for a resting seed when its species can grow
// there, the target tile is free, and the germination draw succeeds.
// Aquatic seeds root in the water tile they float on. Terrestrial seeds root
// in the tile above the solid tile they rest on, or in a drying water tile
// over solid ground.
func (w *World) tryGerminate(s *Seed, t *Tile) bool {
	info := s.Type.Info()
	px, py := t.X, t.Y
	switch {
	case info.Aquatic:
		if !t.Terrain.IsWater() {
			return false
		}
	case t.Terrain.IsSolid():
		py++
	case t.Terrain.IsWater() && t.Humidity < w.cfg.Params.DryWaterThreshold:
		below, ok := w.tiles.At(t.X, t.Y-1)
		if !ok || !below.Terrain.IsSolid() {
			return false
		}
	default:
		return false
	}

	target, ok := w.tiles.At(px, py)
	if !ok || target.HasPlant() || target.Terrain.IsSolid() {
		return false
	}
	if !w.rng.Chance(w.cfg.Params.GerminationChance) {
		return false
	}
	w.addPlant(w.newPlant(s.Type, px, py))
	return true
}
