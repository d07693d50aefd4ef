package ecosystem

import "strings"

// PlantType enumerates the plant species.
type PlantType uint8

const (
	PlantGrass PlantType = iota
	PlantFlower
	PlantCactus
	PlantLily

	plantTypeCount
)

// PlantTypeInfo holds the static growth parameters of a species. Growth
// times and seed life are in seconds; mature heights are in tiles.
type PlantTypeInfo struct {
	Name            string
	Aquatic         bool
	ThirstRate      float64
	DesiredHumidity float64
	GrowthTimeMin   float64
	GrowthTimeMax   float64
	MatureHeightMin int
	MatureHeightMax int
	SeedLife        float64
}

var plantTypeTable = [plantTypeCount]PlantTypeInfo{
	PlantGrass: {
		Name:            "Grass",
		ThirstRate:      0.02,
		DesiredHumidity: 0.5,
		GrowthTimeMin:   1,
		GrowthTimeMax:   3,
		MatureHeightMin: 1,
		MatureHeightMax: 2,
		SeedLife:        10,
	},
	PlantFlower: {
		Name:            "Flower",
		ThirstRate:      0.03,
		DesiredHumidity: 0.6,
		GrowthTimeMin:   2,
		GrowthTimeMax:   5,
		MatureHeightMin: 2,
		MatureHeightMax: 4,
		SeedLife:        15,
	},
	PlantCactus: {
		Name:            "Cactus",
		ThirstRate:      0.005,
		DesiredHumidity: 0.15,
		GrowthTimeMin:   4,
		GrowthTimeMax:   9,
		MatureHeightMin: 2,
		MatureHeightMax: 5,
		SeedLife:        30,
	},
	PlantLily: {
		Name:            "Lily",
		Aquatic:         true,
		ThirstRate:      0.04,
		DesiredHumidity: 0.8,
		GrowthTimeMin:   2,
		GrowthTimeMax:   4,
		MatureHeightMin: 1,
		MatureHeightMax: 1,
		SeedLife:        20,
	},
}

// Info returns the species parameters; unknown values fall back to Grass.
func (p PlantType) Info() PlantTypeInfo {
	if p >= plantTypeCount {
		return plantTypeTable[PlantGrass]
	}
	return plantTypeTable[p]
}

// String returns the species name used in save files.
func (p PlantType) String() string { return p.Info().Name }

// PlantTypes lists every species in declaration order.
func PlantTypes() []PlantType {
	types := make([]PlantType, plantTypeCount)
	for i := range types {
		types[i] = PlantType(i)
	}
	return types
}

// ParsePlantType maps a save-file name back to its PlantType.
func ParsePlantType(name string) (PlantType, bool) {
	for i, info := range plantTypeTable {
		if strings.EqualFold(info.Name, name) {
			return PlantType(i), true
		}
	}
	return PlantGrass, false
}
