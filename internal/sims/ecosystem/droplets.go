package ecosystem

import "math"

// Droplet is a falling water particle in world units.
type Droplet struct {
	X, Y   float64
	DX, DY float64
}

// SpawnDroplet adds a droplet at world position (wx, wy) falling at the
// configured speed.
func (w *World) SpawnDroplet(wx, wy float64) {
	w.droplets = append(w.droplets, Droplet{X: wx, Y: wy, DY: -w.cfg.Params.DropletSpeed})
}

// stepDroplets advances every droplet in sub-steps of at most one tile so
// thin layers are never skipped.
func (w *World) stepDroplets(dt float64) {
	kept := w.droplets[:0]
	for _, d := range w.droplets {
		if w.advanceDroplet(&d, dt) {
			kept = append(kept, d)
		}
	}
	clear(w.droplets[len(kept):])
	w.droplets = kept
}

// advanceDroplet moves one droplet and reports whether it is still falling.
func (w *World) advanceDroplet(d *Droplet, dt float64) bool {
	travel := max(math.Abs(d.DX), math.Abs(d.DY)) * dt
	steps := max(1, int(math.Ceil(travel/TileSize)))
	sub := dt / float64(steps)
	for range steps {
		d.X += d.DX * sub
		d.Y += d.DY * sub
		tx, ty := worldToTile(d.X, d.Y)
		t, ok := w.tiles.At(tx, ty)
		if !ok {
			return false
		}
		if t.Terrain != TerrainAir {
			w.depositDroplet(tx, ty)
			w.stats.DropletsLanded++
			return false
		}
	}
	return true
}

// depositDroplet soaks the droplet payload into the struck tile up to its
// porosity-scaled free capacity and pools the remainder one tile above.
func (w *World) depositDroplet(x, y int) {
	payload := w.cfg.Params.DropletWater
	if payload <= 0 {
		return
	}
	w.ledger.Rain += payload
	t, _ := w.tiles.At(x, y)
	capacity := max(0, 1-t.Humidity) * t.Terrain.Porosity()
	absorbed := min(payload, capacity)
	if absorbed > 0 {
		w.modifyHumidity(x, y, absorbed)
	}
	if rest := payload - absorbed; rest > 0 {
		w.modifyHumidity(x, y+1, rest)
	}
}
