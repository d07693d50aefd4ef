package ecosystem

import "strings"

// Terrain enumerates the tile material values.
type Terrain uint8

const (
	TerrainAir Terrain = iota
	TerrainSoil
	TerrainRock
	TerrainWater
	TerrainSpring

	terrainCount
)

type terrainInfo struct {
	name     string
	porosity float64
	solid    bool
	water    bool
}

var terrainTable = [terrainCount]terrainInfo{
	TerrainAir:    {name: "Air", porosity: 1},
	TerrainSoil:   {name: "Soil", porosity: 0.5, solid: true},
	TerrainRock:   {name: "Rock", porosity: 0, solid: true},
	TerrainWater:  {name: "Water", porosity: 1, water: true},
	TerrainSpring: {name: "Spring", porosity: 1, water: true},
}

func (t Terrain) info() terrainInfo {
	if t >= terrainCount {
		return terrainTable[TerrainAir]
	}
	return terrainTable[t]
}

// Porosity is the rate in [0,1] at which humidity passes into the terrain.
func (t Terrain) Porosity() float64 { return t.info().porosity }

// IsSolid reports whether the terrain blocks falling objects and anchors roots.
func (t Terrain) IsSolid() bool { return t.info().solid }

// IsWater reports whether the terrain is an open water body (Water or Spring).
func (t Terrain) IsWater() bool { return t.info().water }

// String returns the terrain name used in save files.
func (t Terrain) String() string { return t.info().name }

// ParseTerrain maps a save-file name back to its Terrain.
func ParseTerrain(name string) (Terrain, bool) {
	for i, info := range terrainTable {
		if strings.EqualFold(info.name, name) {
			return Terrain(i), true
		}
	}
	return TerrainAir, false
}
