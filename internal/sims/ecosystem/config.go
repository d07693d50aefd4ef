package ecosystem

import "strconv"

// TileSize is the edge length of one tile in world units.
const TileSize = 16.0

// MaxDimension bounds the grid width and height accepted from flags and save
// files.
const MaxDimension = 4096

func validDimension(n int) bool { return n > 0 && n <= MaxDimension }

// Params holds tunable rates, thresholds and probabilities for the ecosystem sim.
// Rates suffixed "per second" are multiplied by dt; transfer constants are
// expressed per reference tick (1/ReferenceTPS seconds) and scaled by
// dt*ReferenceTPS, capped at one reference tick per step.
type Params struct {
	SoilChance      float64
	InitialDepthMax int
	DepthCap        int
	RockNoiseScale  float64

	SpringRate          float64 // per second
	EvaporationRate     float64 // fraction of humidity per second
	WaterLateralDamping float64
	SoilTransferRate    float64
	HumidityEpsilon     float64
	ReferenceTPS        float64

	DropletWater float64
	DropletSpeed float64

	Gravity           float64
	TerminalVelocity  float64
	GerminationChance float64
	DryWaterThreshold float64

	SurfaceFullThreshold float64

	HappyBand            float64
	NeutralBand          float64
	DyingRate            float64
	GrowthWaterCost      float64
	AquaticDryDifference float64
	SeedSpeedMinX        float64
	SeedSpeedMaxX        float64
	SeedSpeedMinY        float64
	SeedSpeedMaxY        float64
}

// Config controls the ecosystem world dimensions and tunables.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  64,
		Height: 40,
		Seed:   1337,
		Params: Params{
			SoilChance:      0.7,
			InitialDepthMax: 10,
			DepthCap:        15,
			RockNoiseScale:  0,

			SpringRate:          0.5,
			EvaporationRate:     0.12,
			WaterLateralDamping: 0.2,
			SoilTransferRate:    0.02,
			HumidityEpsilon:     0.001,
			ReferenceTPS:        60,

			DropletWater: 0.1,
			DropletSpeed: 96,

			Gravity:           98,
			TerminalVelocity:  120,
			GerminationChance: 0.01,
			DryWaterThreshold: 0.2,

			SurfaceFullThreshold: 0.95,

			HappyBand:            0.15,
			NeutralBand:          0.4,
			DyingRate:            0.1,
			GrowthWaterCost:      0.1,
			AquaticDryDifference: 0.8,
			SeedSpeedMinX:        20,
			SeedSpeedMaxX:        40,
			SeedSpeedMinY:        40,
			SeedSpeedMaxY:        80,
		},
	}
}

type floatSpec struct {
	key   string
	label string
	group string
	min   float64
	field func(*Params) *float64
}

type intSpec struct {
	key   string
	label string
	group string
	min   int
	field func(*Params) *int
}

var floatSpecs = []floatSpec{
	{"soil_chance", "Soil chance", groupGeneration, 0, func(p *Params) *float64 { return &p.SoilChance }},
	{"rock_noise_scale", "Rock noise scale", groupGeneration, 0, func(p *Params) *float64 { return &p.RockNoiseScale }},
	{"spring_rate", "Spring rate", groupHumidity, 0, func(p *Params) *float64 { return &p.SpringRate }},
	{"evaporation_rate", "Evaporation rate", groupHumidity, 0, func(p *Params) *float64 { return &p.EvaporationRate }},
	{"water_lateral_damping", "Water lateral damping", groupHumidity, 0, func(p *Params) *float64 { return &p.WaterLateralDamping }},
	{"soil_transfer_rate", "Soil transfer rate", groupHumidity, 0, func(p *Params) *float64 { return &p.SoilTransferRate }},
	{"humidity_epsilon", "Humidity epsilon", groupHumidity, 0, func(p *Params) *float64 { return &p.HumidityEpsilon }},
	{"reference_tps", "Reference TPS", groupHumidity, 1, func(p *Params) *float64 { return &p.ReferenceTPS }},
	{"droplet_water", "Droplet water", groupParticles, 0, func(p *Params) *float64 { return &p.DropletWater }},
	{"droplet_speed", "Droplet speed", groupParticles, 0, func(p *Params) *float64 { return &p.DropletSpeed }},
	{"gravity", "Gravity", groupParticles, 0, func(p *Params) *float64 { return &p.Gravity }},
	{"terminal_velocity", "Terminal velocity", groupParticles, 0, func(p *Params) *float64 { return &p.TerminalVelocity }},
	{"germination_chance", "Germination chance", groupParticles, 0, func(p *Params) *float64 { return &p.GerminationChance }},
	{"dry_water_threshold", "Dry water threshold", groupParticles, 0, func(p *Params) *float64 { return &p.DryWaterThreshold }},
	{"surface_full_threshold", "Surface full threshold", groupParticles, 0, func(p *Params) *float64 { return &p.SurfaceFullThreshold }},
	{"happy_band", "Happy band", groupPlants, 0, func(p *Params) *float64 { return &p.HappyBand }},
	{"neutral_band", "Neutral band", groupPlants, 0, func(p *Params) *float64 { return &p.NeutralBand }},
	{"dying_rate", "Dying rate", groupPlants, 0, func(p *Params) *float64 { return &p.DyingRate }},
	{"growth_water_cost", "Growth water cost", groupPlants, 0, func(p *Params) *float64 { return &p.GrowthWaterCost }},
	{"aquatic_dry_difference", "Aquatic dry difference", groupPlants, 0, func(p *Params) *float64 { return &p.AquaticDryDifference }},
	{"seed_speed_min_x", "Seed speed min x", groupPlants, 0, func(p *Params) *float64 { return &p.SeedSpeedMinX }},
	{"seed_speed_max_x", "Seed speed max x", groupPlants, 0, func(p *Params) *float64 { return &p.SeedSpeedMaxX }},
	{"seed_speed_min_y", "Seed speed min y", groupPlants, 0, func(p *Params) *float64 { return &p.SeedSpeedMinY }},
	{"seed_speed_max_y", "Seed speed max y", groupPlants, 0, func(p *Params) *float64 { return &p.SeedSpeedMaxY }},
}

var intSpecs = []intSpec{
	{"initial_depth_max", "Initial depth max", groupGeneration, 1, func(p *Params) *int { return &p.InitialDepthMax }},
	{"depth_cap", "Depth cap", groupGeneration, 1, func(p *Params) *int { return &p.DepthCap }},
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparsable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && validDimension(parsed) {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && validDimension(parsed) {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	for _, spec := range floatSpecs {
		v, ok := cfg[spec.key]
		if !ok {
			continue
		}
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= spec.min {
			*spec.field(&c.Params) = parsed
		}
	}
	for _, spec := range intSpecs {
		v, ok := cfg[spec.key]
		if !ok {
			continue
		}
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= spec.min {
			*spec.field(&c.Params) = parsed
		}
	}
	c.Params.normalize()
	return c
}

// SetParam applies a single key=value override. It reports false for unknown
// keys or values that fail to parse.
func (p *Params) SetParam(key, value string) bool {
	for _, spec := range floatSpecs {
		if spec.key != key {
			continue
		}
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil || parsed < spec.min {
			return false
		}
		*spec.field(p) = parsed
		p.normalize()
		return true
	}
	for _, spec := range intSpecs {
		if spec.key != key {
			continue
		}
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed < spec.min {
			return false
		}
		*spec.field(p) = parsed
		p.normalize()
		return true
	}
	return false
}

func (p *Params) normalize() {
	if p.SoilChance > 1 {
		p.SoilChance = 1
	}
	if p.GerminationChance > 1 {
		p.GerminationChance = 1
	}
	if p.SeedSpeedMaxX < p.SeedSpeedMinX {
		p.SeedSpeedMaxX = p.SeedSpeedMinX
	}
	if p.SeedSpeedMaxY < p.SeedSpeedMinY {
		p.SeedSpeedMaxY = p.SeedSpeedMinY
	}
	if p.NeutralBand < p.HappyBand {
		p.NeutralBand = p.HappyBand
	}
}
