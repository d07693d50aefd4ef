package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"strconv"
	"strings"

	"ecosystem/internal/sims/ecosystem"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	steps := flag.Int("steps", 3600, "number of ticks to simulate per run")
	tps := flag.Float64("tps", 60, "ticks per simulated second")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel sweep runs")
	width := flag.Int("width", 64, "map width for tuning runs")
	height := flag.Int("height", 40, "map height for tuning runs")
	seed := flag.Int64("seed", 1337, "seed used for deterministic simulations")
	sweepKey := flag.String("sweep", "", "parameter to sweep (empty evaluates the baseline only)")
	sweepValues := flag.String("values", "", "comma-separated candidate values for -sweep")
	var overrides kvList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	if *tps <= 0 {
		log.Fatalf("tps must be positive, got %v", *tps)
	}
	dt := 1 / *tps

	cfg := ecosystem.DefaultConfig()
	cfg.Width = *width
	cfg.Height = *height
	cfg.Seed = *seed
	for _, kv := range overrides {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			log.Printf("ignoring malformed override %q", kv)
			continue
		}
		if !cfg.Params.SetParam(key, value) {
			log.Printf("ignoring override %q: unknown key or bad value", kv)
		}
	}

	baseline := ecosystem.RunScenario(cfg, *steps, dt)
	fmt.Println("Baseline:")
	printResult(baseline)

	if *sweepKey == "" {
		printParams(cfg)
		return
	}
	values, err := parseValues(*sweepValues)
	if err != nil {
		log.Fatal(err)
	}
	records, err := ecosystem.ParameterSweep(cfg, *sweepKey, values, *steps, dt, *workers)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("\nSweep of %s:\n", *sweepKey)
	best := -1
	for i, rec := range records {
		r := rec.Result
		fmt.Printf("  %s=%s -> peak plants %d, final %d (mature %d), germinated %d, died %d, water tiles %d\n",
			rec.Parameter, rec.Value, r.PeakPlants, r.FinalPlants, r.MaturePlants, r.SeedsGerminated, r.PlantsDied, r.WaterTiles)
		if best < 0 || r.FinalPlants > records[best].Result.FinalPlants {
			best = i
		}
	}
	if best >= 0 {
		fmt.Printf("\nMost plants survived with %s=%s\n", records[best].Parameter, records[best].Value)
	}
}

func parseValues(list string) ([]float64, error) {
	if strings.TrimSpace(list) == "" {
		return nil, fmt.Errorf("-sweep needs -values")
	}
	var values []float64
	for _, field := range strings.Split(list, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, fmt.Errorf("parse sweep value %q: %w", field, err)
		}
		values = append(values, v)
	}
	return values, nil
}

func printResult(r ecosystem.ScenarioResult) {
	fmt.Printf("  steps %d, peak plants %d, final plants %d (mature %d)\n", r.StepsSimulated, r.PeakPlants, r.FinalPlants, r.MaturePlants)
	fmt.Printf("  seeds germinated %d, plants died %d, water tiles %d\n", r.SeedsGerminated, r.PlantsDied, r.WaterTiles)
	fmt.Printf("  humidity %.3f -> %.3f (spring %.3f, rain %.3f, evaporated %.3f, uptake %.3f, spilled %.3f, drift %.2g)\n",
		r.InitialHumidity, r.FinalHumidity, r.Ledger.Spring, r.Ledger.Rain, r.Ledger.Evaporated, r.Ledger.Uptake, r.Ledger.Spilled, r.Drift())
}

func printParams(cfg ecosystem.Config) {
	world := ecosystem.NewWithConfig(cfg)
	fmt.Println("Parameters:")
	for _, group := range world.Parameters().Groups {
		for _, p := range group.Params {
			fmt.Printf("  %s=%s\n", p.Key, p.Value)
		}
	}
}
