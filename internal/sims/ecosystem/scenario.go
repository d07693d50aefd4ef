package ecosystem

import (
	"fmt"
	"strconv"
	"sync"
)

// ScenarioResult captures telemetry from a deterministic headless run.
type ScenarioResult struct {
	// StepsSimulated reports how many ticks were executed.
	StepsSimulated int
	// PeakPlants is the largest live plant count seen after any step.
	PeakPlants int
	// FinalPlants is the live plant count after the last step.
	FinalPlants int
	// MaturePlants counts mature plants after the last step.
	MaturePlants int
	// SeedsGerminated totals germinations across the run.
	SeedsGerminated int
	// PlantsDied totals plant deaths across the run.
	PlantsDied int
	// WaterTiles counts Water and Spring tiles after the last step.
	WaterTiles int
	// InitialHumidity and FinalHumidity are grid-wide humidity totals.
	InitialHumidity float64
	FinalHumidity   float64
	// Ledger is the humidity bookkeeping for the run.
	Ledger Ledger
}

// Drift returns how far the final humidity strays from what the ledger
// predicts; it should stay near zero.
func (r ScenarioResult) Drift() float64 {
	return r.FinalHumidity - r.InitialHumidity - r.Ledger.Net()
}

// RunScenario resets a world from cfg, sows one seed of every species across
// the surface, and advances it steps ticks of dt seconds.
func RunScenario(cfg Config, steps int, dt float64) ScenarioResult {
	world := NewWithConfig(cfg)
	world.Reset(0)
	world.sowSurface()
	return world.run(steps, dt)
}

func (w *World) run(steps int, dt float64) ScenarioResult {
	result := ScenarioResult{InitialHumidity: w.TotalHumidity()}
	for step := 1; step <= steps; step++ {
		w.Step(dt)
		stats := w.LastStep()
		result.SeedsGerminated += stats.SeedsGerminated
		result.PlantsDied += stats.PlantsDied
		if n := len(w.plants); n > result.PeakPlants {
			result.PeakPlants = n
		}
		result.StepsSimulated = step
	}
	result.FinalPlants = len(w.plants)
	for _, p := range w.plants {
		if p.Mature {
			result.MaturePlants++
		}
	}
	for _, t := range w.tiles.Cells() {
		if t.Terrain.IsWater() {
			result.WaterTiles++
		}
	}
	result.FinalHumidity = w.TotalHumidity()
	result.Ledger = w.ledger
	return result
}

// sowSurface drops seeds above the grid, cycling through the species.
func (w *World) sowSurface() {
	types := PlantTypes()
	top := float64(w.h)*TileSize - surfaceInset
	for x := 0; x < w.w; x += 3 {
		pt := types[(x/3)%len(types)]
		w.SpawnSeed(pt, (float64(x)+0.5)*TileSize, top, 0, 0)
	}
}

// SweepRecord pairs one candidate value with the scenario it produced.
type SweepRecord struct {
	Parameter string
	Value     string
	Result    ScenarioResult
}

// ParameterSweep runs one scenario per candidate value of key, fanning the
// runs out over workers goroutines. Records come back in values order.
func ParameterSweep(base Config, key string, values []float64, steps int, dt float64, workers int) ([]SweepRecord, error) {
	if workers <= 0 {
		workers = 1
	}
	check := base.Params
	if !check.SetParam(key, "0") && !check.SetParam(key, "1") {
		return nil, fmt.Errorf("unknown sweep parameter %q", key)
	}

	configs := make([]Config, len(values))
	formatted := make([]string, len(values))
	for i, v := range values {
		formatted[i] = strconv.FormatFloat(v, 'f', -1, 64)
		configs[i] = base
		if !configs[i].Params.SetParam(key, formatted[i]) {
			return nil, fmt.Errorf("sweep value %s rejected for %q", formatted[i], key)
		}
	}

	records := make([]SweepRecord, len(values))
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for idx := range configs {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			records[i] = SweepRecord{
				Parameter: key,
				Value:     formatted[i],
				Result:    RunScenario(configs[i], steps, dt),
			}
			<-sem
		}(idx)
	}

	wg.Wait()
	return records, nil
}
