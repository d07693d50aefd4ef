package ecosystem

import (
	"math"
	"testing"
)

const tick = 1.0 / 60.0

// newTestWorld returns an all-Air world of the given size with default params.
func newTestWorld(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

func setTile(t *testing.T, w *World, x, y int, terrain Terrain, humidity float64) {
	t.Helper()
	tile, ok := w.TileAt(x, y)
	if !ok {
		t.Fatalf("tile (%d,%d) out of bounds", x, y)
	}
	tile.Terrain = terrain
	tile.Humidity = humidity
}

func mustTile(t *testing.T, w *World, x, y int) *Tile {
	t.Helper()
	tile, ok := w.TileAt(x, y)
	if !ok {
		t.Fatalf("tile (%d,%d) out of bounds", x, y)
	}
	return tile
}

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// checkTileInvariants verifies humidity bounds and the Air/Water phase rule.
func checkTileInvariants(t *testing.T, w *World) {
	t.Helper()
	eps := w.cfg.Params.HumidityEpsilon
	for _, tile := range w.Tiles() {
		if tile.Humidity < 0 || tile.Humidity > 1 {
			t.Fatalf("tile (%d,%d) humidity %f outside [0,1]", tile.X, tile.Y, tile.Humidity)
		}
		switch tile.Terrain {
		case TerrainAir:
			if tile.Humidity != 0 {
				t.Fatalf("air tile (%d,%d) holds humidity %f", tile.X, tile.Y, tile.Humidity)
			}
		case TerrainWater:
			if tile.Humidity < eps {
				t.Fatalf("water tile (%d,%d) humidity %f below epsilon", tile.X, tile.Y, tile.Humidity)
			}
		}
	}
}
