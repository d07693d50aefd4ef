package ecosystem

import "math"

type direction struct{ dx, dy int }

var (
	dirUp    = direction{0, 1}
	dirDown  = direction{0, -1}
	dirLeft  = direction{-1, 0}
	dirRight = direction{1, 0}

	verticalOrder = [...]direction{dirUp, dirDown}
	lateralOrder  = [...]direction{dirLeft, dirRight}
)

// modifyHumidity adds delta to the tile at (x, y), re-derives its terrain,
// and pushes any excess above 1 into the tile above until it is absorbed or
// leaves the top of the grid.
func (w *World) modifyHumidity(x, y int, delta float64) {
	for {
		t, ok := w.tiles.At(x, y)
		if !ok {
			if delta > 0 {
				w.ledger.Spilled += delta
			}
			return
		}
		t.Humidity += delta
		w.rederiveTerrain(t)
		if t.Humidity <= 1 {
			return
		}
		delta = t.Humidity - 1
		t.Humidity = 1
		y++
	}
}

// rederiveTerrain keeps the Air/Water phase consistent with humidity: any
// humidity on Air makes it Water, and Water below epsilon dries to Air.
func (w *World) rederiveTerrain(t *Tile) {
	if t.Terrain == TerrainAir && t.Humidity > 0 {
		t.Terrain = TerrainWater
	}
	switch t.Terrain {
	case TerrainAir:
		if t.Humidity != 0 {
			w.ledger.Clamped += t.Humidity
			t.Humidity = 0
		}
	case TerrainWater:
		if t.Humidity < w.cfg.Params.HumidityEpsilon {
			w.ledger.Dried += t.Humidity
			t.Humidity = 0
			t.Terrain = TerrainAir
		}
	default:
		if t.Humidity < 0 {
			w.ledger.Clamped += t.Humidity
			t.Humidity = 0
		}
	}
}

// tickScale converts per-reference-tick transfer constants to this step's dt.
func (w *World) tickScale(dt float64) float64 {
	ref := w.cfg.Params.ReferenceTPS
	if ref <= 0 {
		return 1
	}
	return math.Min(1, dt*ref)
}

// stepHumidity applies spring inflow, evaporation and neighbour transfer to
// every non-Air tile, bottom row first. Rows alternate sweep direction, and
// the pattern flips every step. Tiles that were Air when the pass started do
// not pass water on until the next step.
func (w *World) stepHumidity(dt float64) {
	p := w.cfg.Params
	scale := w.tickScale(dt)
	w.markWet()
	for y := 0; y < w.h; y++ {
		reverse := w.sweepReverse != (y%2 == 1)
		for i := 0; i < w.w; i++ {
			x := i
			if reverse {
				x = w.w - 1 - i
			}
			t, _ := w.tiles.At(x, y)
			if t.Terrain == TerrainAir {
				continue
			}

			if t.Terrain == TerrainSpring {
				inflow := p.SpringRate * dt
				w.ledger.Spring += inflow
				w.modifyHumidity(x, y, inflow)
			}

			if above, ok := w.tiles.At(x, y+1); ok && above.Terrain == TerrainAir && t.Humidity > 0 {
				loss := math.Min(t.Humidity, t.Humidity*p.EvaporationRate*dt)
				w.ledger.Evaporated += loss
				w.modifyHumidity(x, y, -loss)
			}

			if !w.wet[w.tiles.Index(x, y)] {
				continue
			}
			for _, d := range verticalOrder {
				if t.Terrain == TerrainAir {
					break
				}
				w.transfer(x, y, d, scale)
			}
			w.spreadLaterally(x, y, scale)
		}
	}
	w.sweepReverse = !w.sweepReverse
}

func (w *World) markWet() {
	tiles := w.tiles.Cells()
	if cap(w.wet) < len(tiles) {
		w.wet = make([]bool, len(tiles))
	}
	w.wet = w.wet[:len(tiles)]
	for i := range tiles {
		w.wet[i] = tiles[i].Terrain != TerrainAir
	}
}

// spreadLaterally sizes both sideways transfers from the same source level
// before moving either, so neither side is favoured.
func (w *World) spreadLaterally(x, y int, scale float64) {
	src, _ := w.tiles.At(x, y)
	if src.Terrain == TerrainAir {
		return
	}
	var amounts [len(lateralOrder)]float64
	for i, d := range lateralOrder {
		if dst, ok := w.tiles.At(x+d.dx, y); ok {
			amounts[i] = w.transferAmount(src, dst, d) * scale
		}
	}
	for i, d := range lateralOrder {
		if amounts[i] <= 0 {
			continue
		}
		if src.Terrain == TerrainAir {
			return
		}
		w.modifyHumidity(x, y, -amounts[i])
		w.modifyHumidity(x+d.dx, y, amounts[i])
	}
}

func (w *World) transfer(x, y int, d direction, scale float64) {
	src, _ := w.tiles.At(x, y)
	nx, ny := x+d.dx, y+d.dy
	dst, ok := w.tiles.At(nx, ny)
	if !ok {
		return
	}
	amount := w.transferAmount(src, dst, d) * scale
	if amount <= 0 {
		return
	}
	w.modifyHumidity(x, y, -amount)
	w.modifyHumidity(nx, ny, amount)
}

// transferAmount returns how much humidity src pushes into dst per reference
// tick. Open water only flows down or sideways toward lower levels; porous
// ground only seeps into strictly drier porous ground.
func (w *World) transferAmount(src, dst *Tile, d direction) float64 {
	p := w.cfg.Params
	porosity := dst.Terrain.Porosity()
	switch {
	case src.Terrain == TerrainAir:
		return 0
	case src.Terrain.IsWater():
		switch d {
		case dirDown:
			room := math.Max(0, 1-dst.Humidity)
			return math.Min(src.Humidity, room) * porosity
		case dirLeft, dirRight:
			if src.Humidity <= dst.Humidity {
				return 0
			}
			return (src.Humidity - dst.Humidity) / 2 * p.WaterLateralDamping * porosity
		default:
			return 0
		}
	default:
		if dst.Terrain == TerrainAir || dst.Terrain.IsWater() || dst.Humidity >= src.Humidity {
			return 0
		}
		return (src.Humidity - dst.Humidity) * p.SoilTransferRate * porosity
	}
}
