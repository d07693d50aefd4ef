package ecosystem

import (
	"math"
	"testing"
)

func TestModifyHumidityPhaseChanges(t *testing.T) {
	world := newTestWorld(1, 2)

	world.modifyHumidity(0, 0, 0.3)
	if tile := mustTile(t, world, 0, 0); tile.Terrain != TerrainWater || tile.Humidity != 0.3 {
		t.Fatalf("expected wet air to become water 0.3, got %s/%f", tile.Terrain, tile.Humidity)
	}

	world.modifyHumidity(0, 0, -0.2995)
	tile := mustTile(t, world, 0, 0)
	if tile.Terrain != TerrainAir || tile.Humidity != 0 {
		t.Fatalf("expected water below epsilon to dry to air, got %s/%f", tile.Terrain, tile.Humidity)
	}
	if !almostEqual(world.Ledger().Dried, 0.0005, 1e-12) {
		t.Fatalf("expected dried residue to be recorded, got %f", world.Ledger().Dried)
	}
}

func TestModifyHumidityOverflowCascade(t *testing.T) {
	world := newTestWorld(1, 4)
	setTile(t, world, 0, 0, TerrainWater, 1)
	setTile(t, world, 0, 1, TerrainWater, 0.9)

	world.modifyHumidity(0, 0, 0.5)

	if got := mustTile(t, world, 0, 0).Humidity; got != 1 {
		t.Fatalf("bottom tile should clamp to 1, got %f", got)
	}
	if got := mustTile(t, world, 0, 1).Humidity; got != 1 {
		t.Fatalf("middle tile should fill to 1, got %f", got)
	}
	top := mustTile(t, world, 0, 2)
	if top.Terrain != TerrainWater || !almostEqual(top.Humidity, 0.4, 1e-12) {
		t.Fatalf("expected overflow puddle of 0.4 above, got %s/%f", top.Terrain, top.Humidity)
	}
	if mustTile(t, world, 0, 3).Terrain != TerrainAir {
		t.Fatal("overflow should stop once absorbed")
	}
}

func TestModifyHumidityOverflowSpillsAtTop(t *testing.T) {
	world := newTestWorld(1, 1)
	setTile(t, world, 0, 0, TerrainSoil, 0.8)
	world.modifyHumidity(0, 0, 0.5)
	if got := mustTile(t, world, 0, 0).Humidity; got != 1 {
		t.Fatalf("top tile should clamp to 1, got %f", got)
	}
	if !almostEqual(world.Ledger().Spilled, 0.3, 1e-12) {
		t.Fatalf("expected 0.3 spilled past the top row, got %f", world.Ledger().Spilled)
	}
}

func TestWaterFallsIntoAir(t *testing.T) {
	world := newTestWorld(1, 3)
	setTile(t, world, 0, 0, TerrainRock, 0)
	setTile(t, world, 0, 2, TerrainWater, 0.6)

	world.stepHumidity(tick)

	if tile := mustTile(t, world, 0, 2); tile.Terrain != TerrainAir {
		t.Fatalf("expected source to drain to air, got %s/%f", tile.Terrain, tile.Humidity)
	}
	if tile := mustTile(t, world, 0, 1); tile.Terrain != TerrainWater || !almostEqual(tile.Humidity, 0.6, 1e-12) {
		t.Fatalf("expected water to fall one tile, got %s/%f", tile.Terrain, tile.Humidity)
	}
}

func TestWaterNeverFlowsUpward(t *testing.T) {
	world := newTestWorld(1, 3)
	setTile(t, world, 0, 0, TerrainRock, 0)
	setTile(t, world, 0, 1, TerrainWater, 0.9)

	for i := 0; i < 30; i++ {
		world.stepHumidity(tick)
	}

	if tile := mustTile(t, world, 0, 2); tile.Terrain != TerrainAir {
		t.Fatalf("water must not climb into the air above, got %s/%f", tile.Terrain, tile.Humidity)
	}
	if got := mustTile(t, world, 0, 0).Humidity; got != 0 {
		t.Fatalf("rock has zero porosity and must stay dry, got %f", got)
	}
}

func TestEvaporationOnlyUnderOpenAir(t *testing.T) {
	world := newTestWorld(2, 2)
	setTile(t, world, 0, 0, TerrainRock, 0.5)
	setTile(t, world, 1, 0, TerrainRock, 0.5)
	setTile(t, world, 1, 1, TerrainRock, 0)

	world.stepHumidity(tick)

	p := world.cfg.Params
	want := 0.5 - 0.5*p.EvaporationRate*tick
	if got := mustTile(t, world, 0, 0).Humidity; !almostEqual(got, want, 1e-12) {
		t.Fatalf("exposed rock humidity = %f, want %f", got, want)
	}
	if got := mustTile(t, world, 1, 0).Humidity; got != 0.5 {
		t.Fatalf("covered rock must not evaporate, got %f", got)
	}
}

func TestSoilSeepsIntoDrierSoil(t *testing.T) {
	world := newTestWorld(1, 3)
	setTile(t, world, 0, 0, TerrainSoil, 0.2)
	setTile(t, world, 0, 1, TerrainSoil, 0.8)
	setTile(t, world, 0, 2, TerrainRock, 0)

	world.stepHumidity(tick)

	moved := (0.8 - 0.2) * world.cfg.Params.SoilTransferRate * TerrainSoil.Porosity()
	if got := mustTile(t, world, 0, 0).Humidity; !almostEqual(got, 0.2+moved, 1e-12) {
		t.Fatalf("lower soil = %f, want %f", got, 0.2+moved)
	}
	if got := mustTile(t, world, 0, 1).Humidity; !almostEqual(got, 0.8-moved, 1e-12) {
		t.Fatalf("upper soil = %f, want %f", got, 0.8-moved)
	}
}

func TestSoilDoesNotPushIntoWater(t *testing.T) {
	world := newTestWorld(2, 1)
	setTile(t, world, 0, 0, TerrainSoil, 0.9)
	setTile(t, world, 1, 0, TerrainWater, 0.1)

	world.stepHumidity(tick)

	if got := mustTile(t, world, 0, 0).Humidity; got != 0.9 {
		t.Fatalf("soil must not feed open water, got %f", got)
	}
	if got := mustTile(t, world, 1, 0).Humidity; got != 0.1 {
		t.Fatalf("water must not climb back into wetter soil, got %f", got)
	}
}

func TestWaterSpreadsLaterallyDownhill(t *testing.T) {
	world := newTestWorld(2, 1)
	setTile(t, world, 0, 0, TerrainWater, 0.8)
	setTile(t, world, 1, 0, TerrainWater, 0.2)

	world.stepHumidity(tick)

	moved := (0.8 - 0.2) / 2 * world.cfg.Params.WaterLateralDamping
	if got := mustTile(t, world, 0, 0).Humidity; !almostEqual(got, 0.8-moved, 1e-12) {
		t.Fatalf("left water = %f, want %f", got, 0.8-moved)
	}
	if got := mustTile(t, world, 1, 0).Humidity; !almostEqual(got, 0.2+moved, 1e-12) {
		t.Fatalf("right water = %f, want %f", got, 0.2+moved)
	}
}

func TestSpringInjectsWithoutDemoting(t *testing.T) {
	world := newTestWorld(1, 2)
	setTile(t, world, 0, 0, TerrainSpring, 0)
	setTile(t, world, 0, 1, TerrainRock, 0)

	world.stepHumidity(0.1)

	tile := mustTile(t, world, 0, 0)
	want := world.cfg.Params.SpringRate * 0.1
	if tile.Terrain != TerrainSpring || !almostEqual(tile.Humidity, want, 1e-12) {
		t.Fatalf("expected spring at %f, got %s/%f", want, tile.Terrain, tile.Humidity)
	}
	if !almostEqual(world.Ledger().Spring, want, 1e-12) {
		t.Fatalf("expected spring inflow %f in ledger, got %f", want, world.Ledger().Spring)
	}

	for i := 0; i < 100; i++ {
		world.stepHumidity(0.1)
	}
	if got := mustTile(t, world, 0, 0).Humidity; got != 1 {
		t.Fatalf("spring should saturate at 1, got %f", got)
	}
}

func TestTransferScalesWithDelta(t *testing.T) {
	world := newTestWorld(2, 1)
	setTile(t, world, 0, 0, TerrainWater, 0.8)
	setTile(t, world, 1, 0, TerrainWater, 0.2)

	world.stepHumidity(tick / 2)

	moved := (0.8 - 0.2) / 2 * world.cfg.Params.WaterLateralDamping / 2
	if got := mustTile(t, world, 1, 0).Humidity; !almostEqual(got, 0.2+moved, 1e-12) {
		t.Fatalf("half-tick lateral transfer = %f, want %f", got, 0.2+moved)
	}
}

func TestPuddleSpreadsEvenlyBothWays(t *testing.T) {
	const width = 9
	world := newTestWorld(width, 2)
	for x := 0; x < width; x++ {
		setTile(t, world, x, 0, TerrainRock, 0)
	}
	center := width / 2
	setTile(t, world, center, 1, TerrainWater, 1)

	for i := 0; i < 60; i++ {
		world.stepHumidity(tick)
	}

	var left, right float64
	for x := 0; x < center; x++ {
		left += mustTile(t, world, x, 1).Humidity
	}
	for x := center + 1; x < width; x++ {
		right += mustTile(t, world, x, 1).Humidity
	}
	if left == 0 || right == 0 {
		t.Fatalf("expected the puddle to spread both ways, left %f right %f", left, right)
	}
	if skew := math.Abs(left-right) / (left + right); skew > 0.002 {
		t.Fatalf("lateral spreading skewed by %.4f (left %f right %f)", skew, left, right)
	}
	checkTileInvariants(t, world)
}
