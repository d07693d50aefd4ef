package ecosystem

import (
	"slices"

	"github.com/aquilax/go-perlin"
)

// generateTerrain fills the grid column by column from a random-walk
// heightmap. Rows below the column depth are Soil or Rock with random
// humidity, the row at the depth is Water, and everything above is Air.
func (w *World) generateTerrain(seed int64) {
	p := w.cfg.Params
	depthCap := p.DepthCap
	if depthCap > w.h-1 {
		depthCap = w.h - 1
	}
	if depthCap < 1 {
		depthCap = 1
	}
	initialMax := p.InitialDepthMax
	if initialMax > depthCap {
		initialMax = depthCap
	}

	soil := w.soilMask(seed)

	depth := w.rng.IntRange(1, initialMax)
	for x := 0; x < w.w; x++ {
		depth = w.rng.IntRange(max(1, depth-2), min(depthCap, depth+3))
		for y := 0; y < w.h; y++ {
			t, _ := w.tiles.At(x, y)
			switch {
			case y < depth:
				t.Terrain = TerrainRock
				if soil(x, y) {
					t.Terrain = TerrainSoil
				}
				t.Humidity = w.rng.Float64()
			case y == depth:
				t.Terrain = TerrainWater
				t.Humidity = w.rng.FloatRange(0.05, 1)
			default:
				t.Terrain = TerrainAir
				t.Humidity = 0
			}
		}
	}
}

// soilMask decides Soil versus Rock for underground tiles. With a positive
// RockNoiseScale the choice thresholds perlin noise at the SoilChance
// quantile, giving coherent rock veins; otherwise each tile is an
// independent draw.
func (w *World) soilMask(seed int64) func(x, y int) bool {
	p := w.cfg.Params
	if p.RockNoiseScale <= 0 {
		return func(int, int) bool { return w.rng.Chance(p.SoilChance) }
	}

	noise := perlin.NewPerlin(1.8, 2, 3, seed)
	scale := p.RockNoiseScale
	values := make([]float64, w.w*w.h)
	for y := 0; y < w.h; y++ {
		for x := 0; x < w.w; x++ {
			values[y*w.w+x] = noise.Noise2D(float64(x)*scale, float64(y)*scale)
		}
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	cut := int(p.SoilChance * float64(len(sorted)))
	if cut >= len(sorted) {
		return func(int, int) bool { return true }
	}
	threshold := sorted[cut]
	return func(x, y int) bool { return values[y*w.w+x] < threshold }
}
