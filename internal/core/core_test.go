package core

import (
	"testing"
	"time"
)

func TestGridBounds(t *testing.T) {
	g := NewGrid[int](4, 3)
	if g.W != 4 || g.H != 3 {
		t.Fatalf("unexpected dimensions %dx%d", g.W, g.H)
	}
	if _, ok := g.At(-1, 0); ok {
		t.Fatal("expected negative x to be out of bounds")
	}
	if _, ok := g.At(4, 0); ok {
		t.Fatal("expected x == W to be out of bounds without wrapping")
	}
	if _, ok := g.At(0, 3); ok {
		t.Fatal("expected y == H to be out of bounds without wrapping")
	}
	cell, ok := g.At(3, 2)
	if !ok {
		t.Fatal("expected (3,2) to be in bounds")
	}
	*cell = 7
	if got := g.Cells()[g.Index(3, 2)]; got != 7 {
		t.Fatalf("expected write through pointer, got %d", got)
	}
	g.Clear()
	if got := g.Cells()[g.Index(3, 2)]; got != 0 {
		t.Fatalf("expected Clear to zero cells, got %d", got)
	}
}

func TestNewGridMinimumSize(t *testing.T) {
	g := NewGrid[uint8](0, -3)
	if g.W != 1 || g.H != 1 || len(g.Cells()) != 1 {
		t.Fatalf("expected 1x1 fallback, got %dx%d (%d cells)", g.W, g.H, len(g.Cells()))
	}
}

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 32; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("sequences diverged at draw %d", i)
		}
	}
	a.Seed(7)
	b.Seed(7)
	if a.IntRange(0, 1000) != b.IntRange(0, 1000) {
		t.Fatal("expected re-seeded generators to match")
	}
}

func TestRNGRanges(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 500; i++ {
		if v := r.IntRange(3, 6); v < 3 || v >= 6 {
			t.Fatalf("IntRange out of range: %d", v)
		}
		if v := r.IntInclusive(2, 4); v < 2 || v > 4 {
			t.Fatalf("IntInclusive out of range: %d", v)
		}
		if v := r.FloatRange(-1, 1); v < -1 || v >= 1 {
			t.Fatalf("FloatRange out of range: %f", v)
		}
	}
	if got := r.IntRange(5, 5); got != 5 {
		t.Fatalf("expected empty range to return min, got %d", got)
	}
	if got := r.IntInclusive(9, 9); got != 9 {
		t.Fatalf("expected single-value range to return 9, got %d", got)
	}
	if r.Chance(0) {
		t.Fatal("Chance(0) must never succeed")
	}
	if !r.Chance(1) {
		t.Fatal("Chance(1) must always succeed")
	}
}

func TestFixedStepAccumulates(t *testing.T) {
	fs := NewFixedStep(10)
	clock := time.Unix(100, 0)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("expected first call to consume the primed accumulator")
	}
	if fs.ShouldStep() {
		t.Fatal("expected no step without elapsed time")
	}
	clock = clock.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("expected no step after half a tick")
	}
	clock = clock.Add(60 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("expected step once a full tick elapsed")
	}
	if got := fs.Delta(); got != 0.1 {
		t.Fatalf("expected 0.1s delta, got %f", got)
	}
}

func TestSnapshotLookupAndClamp(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{{Key: "a", Value: "1"}}},
		{Name: "B", Params: []Parameter{{Key: "b", Value: "2"}}},
	}}
	if p, ok := snap.Lookup("b"); !ok || p.Value != "2" {
		t.Fatalf("expected to find b=2, got %+v ok=%v", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("expected missing key lookup to fail")
	}
	ctrl := ParameterControl{Min: 0, Max: 1, HasMin: true, HasMax: true}
	if got := ctrl.Clamp(2); got != 1 {
		t.Fatalf("expected clamp to 1, got %f", got)
	}
	if got := ctrl.Clamp(-1); got != 0 {
		t.Fatalf("expected clamp to 0, got %f", got)
	}
}
