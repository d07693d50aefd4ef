package render

import (
	"image/color"
	"testing"
)

func TestPaletteColorClampsIndex(t *testing.T) {
	palette := []color.RGBA{{R: 1, A: 255}, {G: 2, A: 255}}
	if got := PaletteColor(palette, 1); got != palette[1] {
		t.Fatalf("expected entry 1, got %+v", got)
	}
	if got := PaletteColor(palette, 200); got != palette[1] {
		t.Fatalf("out of range index should use the last entry, got %+v", got)
	}
	if got := PaletteColor(nil, 3); got != (color.RGBA{}) {
		t.Fatalf("empty palette should be transparent, got %+v", got)
	}
}

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{{R: 10, G: 20, B: 30, A: 255}, {R: 40, G: 50, B: 60, A: 255}}
	buf := make([]byte, 8)
	fillPaletteRGBA(buf, []uint8{1, 0}, palette)
	want := []byte{40, 50, 60, 255, 10, 20, 30, 255}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("byte %d = %d, want %d", i, buf[i], want[i])
		}
	}
}

func TestFillIntensityRGBA(t *testing.T) {
	buf := []byte{9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9}
	fillIntensityRGBA(buf, []float64{0, 1, 3}, color.RGBA{R: 255, B: 255, A: 200})
	if buf[0] != 0 || buf[3] != 0 {
		t.Fatal("zero level should be transparent")
	}
	if buf[4] != 200 || buf[5] != 0 || buf[6] != 200 || buf[7] != 200 {
		t.Fatalf("full level should be the premultiplied tint, got %v", buf[4:8])
	}
	if buf[11] != 200 {
		t.Fatalf("levels above one should clamp, got alpha %d", buf[11])
	}
}
