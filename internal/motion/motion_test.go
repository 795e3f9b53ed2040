package motion

import (
	"math"
	"testing"
)

func TestCircularStaysWithinRadius(t *testing.T) {
	c := NewCircular(3, 1, true)
	for frame := 0; frame < 200; frame += 7 {
		for row := range 8 {
			for col := range 8 {
				dx, dy := c.Offset(col, row, frame)
				if r := math.Hypot(dx, dy); r > 3+1e-9 {
					t.Fatalf("circular offset radius %v exceeds 3 at (%d,%d,%d)", r, col, row, frame)
				}
			}
		}
	}
}

func TestCircularDirection(t *testing.T) {
	cw := NewCircular(5, 1, true)
	ccw := NewCircular(5, 1, false)

	// Opposite directions diverge after the first frame.
	x1, y1 := cw.Offset(0, 0, 10)
	x2, y2 := ccw.Offset(0, 0, 10)
	if x1 == x2 && y1 == y2 {
		t.Fatal("clockwise and counter-clockwise produce identical offsets")
	}
}

func TestCircularNeighboursOutOfPhase(t *testing.T) {
	c := NewCircular(5, 1, true)
	ax, ay := c.Offset(0, 0, 0)
	bx, by := c.Offset(1, 0, 0)
	if ax == bx && ay == by {
		t.Fatal("neighbouring cells move in lockstep")
	}
}

func TestDriftDeterministicAndBounded(t *testing.T) {
	a := NewDrift(4, 1, 42)
	b := NewDrift(4, 1, 42)
	for frame := 0; frame < 60; frame += 5 {
		for row := range 4 {
			for col := range 4 {
				ax, ay := a.Offset(col, row, frame)
				bx, by := b.Offset(col, row, frame)
				if ax != bx || ay != by {
					t.Fatal("drift not deterministic for a fixed seed")
				}
				if math.Abs(ax) > 4 || math.Abs(ay) > 4 {
					t.Fatalf("drift offset (%v,%v) escapes radius 4", ax, ay)
				}
			}
		}
	}
}

func TestSpringConvergesToStaticTarget(t *testing.T) {
	target := &fixedStrategy{dx: 2, dy: -1}
	s := NewSpring(target, 2, 2, 30, 6.0, 0.8)

	var dx, dy float64
	for frame := range 300 {
		dx, dy = s.Offset(1, 1, frame)
	}
	if math.Abs(dx-2) > 0.05 || math.Abs(dy+1) > 0.05 {
		t.Fatalf("spring settled at (%v,%v), want near (2,-1)", dx, dy)
	}
}

func TestSpringStartsAtRest(t *testing.T) {
	target := &fixedStrategy{dx: 10, dy: 10}
	s := NewSpring(target, 1, 1, 30, 6.0, 0.8)
	dx, dy := s.Offset(0, 0, 0)
	// First step moves only a fraction of the way to the target.
	if math.Hypot(dx, dy) >= math.Hypot(10, 10) {
		t.Fatalf("spring jumped straight to target: (%v,%v)", dx, dy)
	}
}

type fixedStrategy struct{ dx, dy float64 }

func (f *fixedStrategy) Name() string { return "fixed" }
func (f *fixedStrategy) Offset(_, _, _ int) (float64, float64) {
	return f.dx, f.dy
}

func TestParseMode(t *testing.T) {
	for _, m := range Modes() {
		got, err := ParseMode(m.String())
		if err != nil {
			t.Fatalf("ParseMode(%q): %v", m.String(), err)
		}
		if got != m {
			t.Fatalf("ParseMode(%q) = %v, want %v", m.String(), got, m)
		}
	}
	if _, err := ParseMode("orbit"); err == nil {
		t.Fatal("ParseMode accepted an unknown mode")
	}
}
