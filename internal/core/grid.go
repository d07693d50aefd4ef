package core

// Grid stores a 2D array of cells by value in row-major order. Coordinates
// outside the grid are never wrapped.
type Grid[T any] struct {
	W, H int
	data []T
}

// NewGrid allocates a grid with the given dimensions (at least 1x1).
func NewGrid[T any](w, h int) *Grid[T] {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid[T]{W: w, H: h, data: make([]T, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid[T]) Index(x, y int) int { return y*g.W + x }

// In reports whether (x, y) lies inside the grid.
func (g *Grid[T]) In(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns a pointer to the cell at (x, y), or false when out of bounds.
func (g *Grid[T]) At(x, y int) (*T, bool) {
	if !g.In(x, y) {
		return nil, false
	}
	return &g.data[y*g.W+x], true
}

// Clear resets every cell to its zero value.
func (g *Grid[T]) Clear() {
	var zero T
	for i := range g.data {
		g.data[i] = zero
	}
}
