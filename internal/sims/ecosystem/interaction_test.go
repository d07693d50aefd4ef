package ecosystem

import "testing"

func TestInteractionModes(t *testing.T) {
	world := newTestWorld(4, 4)
	setTile(t, world, 0, 0, TerrainSoil, 0.3)
	at := func(x, y int) (float64, float64) {
		return (float64(x) + 0.5) * TileSize, (float64(y) + 0.5) * TileSize
	}

	wx, wy := at(1, 3)
	world.ApplyInteraction(Interaction{Mode: ModeWater}, wx, wy)
	if len(world.Droplets()) != 1 {
		t.Fatal("water mode should spawn a droplet")
	}

	world.ApplyInteraction(Interaction{Mode: ModePlant, Plant: PlantCactus}, wx, wy)
	seeds := world.Seeds()
	if len(seeds) != 1 || seeds[0].Type != PlantCactus {
		t.Fatalf("plant mode should spawn a cactus seed, got %+v", seeds)
	}
	if seeds[0].DX != 0 || seeds[0].DY != 0 {
		t.Fatal("placed seeds start at rest")
	}

	wx, wy = at(2, 0)
	world.ApplyInteraction(Interaction{Mode: ModeSpring}, wx, wy)
	if got := mustTile(t, world, 2, 0).Terrain; got != TerrainSpring {
		t.Fatalf("spring mode set %v", got)
	}
	world.ApplyInteraction(Interaction{Mode: ModeRock}, wx, wy)
	if got := mustTile(t, world, 2, 0).Terrain; got != TerrainRock {
		t.Fatalf("rock mode set %v", got)
	}
	world.ApplyInteraction(Interaction{Mode: ModeSoil}, wx, wy)
	if got := mustTile(t, world, 2, 0).Terrain; got != TerrainSoil {
		t.Fatalf("soil mode set %v", got)
	}
}

func TestDigInteraction(t *testing.T) {
	world := newTestWorld(3, 3)
	setTile(t, world, 0, 0, TerrainSoil, 0.3)
	setTile(t, world, 1, 0, TerrainRock, 0)

	world.ApplyInteraction(Interaction{Mode: ModeDig}, 0.5*TileSize, 0.5*TileSize)
	wet := mustTile(t, world, 0, 0)
	if wet.Terrain != TerrainWater || wet.Humidity != 0.3 {
		t.Fatalf("digging wet soil should leave water, got %v %f", wet.Terrain, wet.Humidity)
	}

	world.ApplyInteraction(Interaction{Mode: ModeDig}, 1.5*TileSize, 0.5*TileSize)
	dry := mustTile(t, world, 1, 0)
	if dry.Terrain != TerrainAir || dry.Humidity != 0 {
		t.Fatalf("digging dry rock should leave air, got %v %f", dry.Terrain, dry.Humidity)
	}

	world.ApplyInteraction(Interaction{Mode: ModeDig}, 2.5*TileSize, 2.5*TileSize)
	if got := mustTile(t, world, 2, 2).Terrain; got != TerrainAir {
		t.Fatalf("digging air is a no-op, got %v", got)
	}
}

func TestInteractionOutOfBoundsIgnored(t *testing.T) {
	world := newTestWorld(2, 2)
	before := append([]Tile(nil), world.Tiles()...)

	for _, pos := range [][2]float64{{-1, 8}, {8, -1}, {2 * TileSize, 8}, {8, 2 * TileSize}} {
		for _, m := range Modes() {
			world.ApplyInteraction(Interaction{Mode: m}, pos[0], pos[1])
		}
	}
	if len(world.Droplets()) != 0 || len(world.Seeds()) != 0 {
		t.Fatal("out of bounds interaction spawned particles")
	}
	for i, tile := range world.Tiles() {
		if tile != before[i] {
			t.Fatalf("tile %d changed: %+v -> %+v", i, before[i], tile)
		}
	}
}

func TestRockOverPlantKillsIt(t *testing.T) {
	world := newTestWorld(2, 3)
	setTile(t, world, 0, 0, TerrainSoil, 0.5)
	id := plantOn(t, world, PlantGrass, 0, 1, 2)

	world.ApplyInteraction(Interaction{Mode: ModeRock}, 0.5*TileSize, 1.5*TileSize)

	if _, ok := world.Plant(id); ok {
		t.Fatal("plant buried in rock should die")
	}
	if len(world.Plants()) != 0 {
		t.Fatal("dead plant should be compacted away")
	}
	if mustTile(t, world, 0, 1).HasPlant() {
		t.Fatal("rock tile still references the plant")
	}
}

func TestModeNames(t *testing.T) {
	want := []string{"water", "spring", "plant", "soil", "rock", "dig"}
	modes := Modes()
	if len(modes) != len(want) {
		t.Fatalf("expected %d modes, got %d", len(want), len(modes))
	}
	for i, m := range modes {
		if m.String() != want[i] {
			t.Fatalf("mode %d = %q, want %q", i, m.String(), want[i])
		}
	}
}
