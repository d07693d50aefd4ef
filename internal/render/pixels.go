package render

import "image/color"

// PaletteColor returns the palette entry for cell value c. Values past the
// end of the palette use the last entry; an empty palette yields transparent
// black.
func PaletteColor(palette []color.RGBA, c uint8) color.RGBA {
	if len(palette) == 0 {
		return color.RGBA{}
	}
	idx := int(c)
	if idx >= len(palette) {
		idx = len(palette) - 1
	}
	return palette[idx]
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	for i, c := range cells {
		col := PaletteColor(palette, c)
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// fillIntensityRGBA writes tint into buf with alpha scaled by each value in
// levels (expected in [0,1]). Zero levels are fully transparent.
func fillIntensityRGBA(buf []byte, levels []float64, tint color.RGBA) {
	for i, v := range levels {
		base := i * 4
		if v <= 0 {
			buf[base+0], buf[base+1], buf[base+2], buf[base+3] = 0, 0, 0, 0
			continue
		}
		if v > 1 {
			v = 1
		}
		a := float64(tint.A) * v
		// Premultiplied, as ebiten images expect.
		buf[base+0] = uint8(float64(tint.R) * a / 255)
		buf[base+1] = uint8(float64(tint.G) * a / 255)
		buf[base+2] = uint8(float64(tint.B) * a / 255)
		buf[base+3] = uint8(a)
	}
}
