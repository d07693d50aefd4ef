package ecosystem

import "image/color"

const (
	displayTerrainMask    = 0x07
	displayHumidityShift  = 3
	displayHumidityMask   = 0x38
	displayHumidityLevels = 8
	displayPlantBit       = 0x40
	displayPaletteSize    = 0x80
)

var ecosystemPalette = buildEcosystemPalette()

// Palette exposes the color palette used for rendering the display buffer.
func (w *World) Palette() []color.RGBA {
	return ecosystemPalette
}

func buildEcosystemPalette() []color.RGBA {
	palette := make([]color.RGBA, displayPaletteSize)
	for i := range palette {
		terrain := Terrain(i & displayTerrainMask)
		level := (i & displayHumidityMask) >> displayHumidityShift
		plant := i&displayPlantBit != 0
		palette[i] = toRGBA(paletteColorFor(terrain, level, plant))
	}
	return palette
}

func toRGBA(c color.NRGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func paletteColorFor(terrain Terrain, level int, plant bool) color.NRGBA {
	wet := float64(level) / float64(displayHumidityLevels-1)
	var c color.NRGBA
	switch terrain {
	case TerrainSoil:
		c = blendColors(color.NRGBA{R: 120, G: 86, B: 52, A: 255}, color.NRGBA{R: 58, G: 44, B: 90, A: 255}, wet*0.8)
	case TerrainRock:
		c = blendColors(color.NRGBA{R: 128, G: 128, B: 132, A: 255}, color.NRGBA{R: 80, G: 90, B: 130, A: 255}, wet*0.5)
	case TerrainWater:
		c = blendColors(color.NRGBA{R: 150, G: 190, B: 255, A: 255}, color.NRGBA{R: 20, G: 60, B: 220, A: 255}, wet)
	case TerrainSpring:
		c = color.NRGBA{R: 40, G: 220, B: 230, A: 255}
	default:
		c = color.NRGBA{R: 113, G: 149, B: 255, A: 255}
	}
	if plant {
		c = blendColors(c, color.NRGBA{R: 50, G: 150, B: 60, A: 255}, 0.7)
	}
	return c
}

func blendColors(base, overlay color.NRGBA, overlayWeight float64) color.NRGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	inv := 1 - overlayWeight
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a)*inv + float64(b)*overlayWeight + 0.5)
	}
	return color.NRGBA{R: mix(base.R, overlay.R), G: mix(base.G, overlay.G), B: mix(base.B, overlay.B), A: mix(base.A, overlay.A)}
}

func encodeDisplayValue(t *Tile) uint8 {
	value := uint8(t.Terrain) & displayTerrainMask
	level := int(t.Humidity*float64(displayHumidityLevels-1) + 0.5)
	level = max(0, min(displayHumidityLevels-1, level))
	value |= uint8(level<<displayHumidityShift) & displayHumidityMask
	if t.HasPlant() {
		value |= displayPlantBit
	}
	return value
}

// rebuildDisplay writes the tile grid into the display buffer with the top
// row of the world first.
func (w *World) rebuildDisplay() {
	if len(w.display) != w.w*w.h {
		w.display = make([]uint8, w.w*w.h)
	}
	for y := 0; y < w.h; y++ {
		row := (w.h - 1 - y) * w.w
		for x := 0; x < w.w; x++ {
			t, _ := w.tiles.At(x, y)
			w.display[row+x] = encodeDisplayValue(t)
		}
	}
}

// HumidityField fills dst with per-tile humidity in display order (top row
// first) and returns it, growing dst when it is too small.
func (w *World) HumidityField(dst []float64) []float64 {
	n := w.w * w.h
	if cap(dst) < n {
		dst = make([]float64, n)
	}
	dst = dst[:n]
	for y := 0; y < w.h; y++ {
		row := (w.h - 1 - y) * w.w
		for x := 0; x < w.w; x++ {
			t, _ := w.tiles.At(x, y)
			dst[row+x] = t.Humidity
		}
	}
	return dst
}
