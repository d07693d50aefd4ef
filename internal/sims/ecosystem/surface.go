package ecosystem

// SurfaceHeight returns the fractional row of the water surface in column x,
// starting from row. If the tile at row is not water the row is returned
// unchanged. Otherwise the contiguous water column is walked down to its
// bottom and back up through tiles filled past SurfaceFullThreshold; the
// result is the top tile's row plus its humidity.
func (w *World) SurfaceHeight(x, row int) float64 {
	t, ok := w.tiles.At(x, row)
	if !ok || !t.Terrain.IsWater() {
		return float64(row)
	}
	y := row
	for y > 0 {
		below, _ := w.tiles.At(x, y-1)
		if !below.Terrain.IsWater() {
			break
		}
		y--
	}
	full := w.cfg.Params.SurfaceFullThreshold
	for {
		cur, _ := w.tiles.At(x, y)
		above, ok := w.tiles.At(x, y+1)
		if !ok || !above.Terrain.IsWater() || cur.Humidity <= full {
			break
		}
		y++
	}
	top, _ := w.tiles.At(x, y)
	return float64(y) + top.Humidity
}

// surfaceRow converts a fractional surface height to the row of the tile
// that holds the surface.
func (w *World) surfaceRow(height float64) int {
	row := int(height)
	if float64(row) == height && row > 0 {
		row--
	}
	if row >= w.h {
		row = w.h - 1
	}
	return row
}
