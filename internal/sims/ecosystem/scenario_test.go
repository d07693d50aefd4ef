package ecosystem

import (
	"math"
	"testing"
)

func scenarioConfig() Config {
	cfg := DefaultConfig()
	cfg.Width = 24
	cfg.Height = 16
	cfg.Seed = 99
	cfg.Params.GerminationChance = 0.5
	return cfg
}

func TestRunScenarioDeterministic(t *testing.T) {
	cfg := scenarioConfig()
	first := RunScenario(cfg, 240, tick)
	second := RunScenario(cfg, 240, tick)
	if first != second {
		t.Fatalf("expected identical scenarios, got %+v vs %+v", first, second)
	}
	if first.StepsSimulated != 240 {
		t.Fatalf("expected 240 steps, got %d", first.StepsSimulated)
	}
	if first.SeedsGerminated == 0 {
		t.Fatal("expected some sown seeds to germinate")
	}
	if first.PeakPlants < first.FinalPlants {
		t.Fatalf("peak %d below final %d", first.PeakPlants, first.FinalPlants)
	}
}

func TestRunScenarioLedgerBalances(t *testing.T) {
	cfg := scenarioConfig()
	world := NewWithConfig(cfg)
	world.Reset(0)
	world.sowSurface()
	for x := 0; x < cfg.Width; x += 2 {
		world.SpawnDroplet((float64(x)+0.5)*TileSize, float64(cfg.Height)*TileSize-1)
	}
	result := world.run(300, tick)

	if drift := math.Abs(result.Drift()); drift > 1e-6 {
		t.Fatalf("humidity drift %g exceeds tolerance (ledger %+v)", drift, result.Ledger)
	}
	if result.Ledger.Rain <= 0 {
		t.Fatal("expected droplets to land")
	}
	checkTileInvariants(t, world)
}

func TestParameterSweep(t *testing.T) {
	cfg := scenarioConfig()
	values := []float64{0, 0.5, 1}
	records, err := ParameterSweep(cfg, "germination_chance", values, 120, tick, 2)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if len(records) != len(values) {
		t.Fatalf("expected %d records, got %d", len(values), len(records))
	}
	for i, want := range []string{"0", "0.5", "1"} {
		if records[i].Value != want || records[i].Parameter != "germination_chance" {
			t.Fatalf("record %d = %s=%s, want %s", i, records[i].Parameter, records[i].Value, want)
		}
	}
	if records[0].Result.SeedsGerminated != 0 {
		t.Fatalf("zero chance should never germinate, got %d", records[0].Result.SeedsGerminated)
	}

	again := cfg
	again.Params.GerminationChance = 1
	if direct := RunScenario(again, 120, tick); direct != records[2].Result {
		t.Fatal("sweep result differs from a direct run with the same value")
	}
}

func TestParameterSweepUnknownKey(t *testing.T) {
	if _, err := ParameterSweep(scenarioConfig(), "nonsense", []float64{1}, 1, tick, 1); err == nil {
		t.Fatal("expected error for unknown parameter")
	}
}

func TestParameterSweepRejectsInvalidValue(t *testing.T) {
	tests := []struct {
		key    string
		values []float64
	}{
		{"evaporation_rate", []float64{0.1, -0.5}},
		{"reference_tps", []float64{0}},
		{"depth_cap", []float64{2.5}},
	}
	for _, tc := range tests {
		if records, err := ParameterSweep(scenarioConfig(), tc.key, tc.values, 1, tick, 2); err == nil {
			t.Fatalf("%s %v: expected error, got %d records", tc.key, tc.values, len(records))
		}
	}
}
