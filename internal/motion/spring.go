package motion

import "github.com/charmbracelet/harmonica"

// Spring smooths another strategy's offsets through damped springs, one
// pair per cell, so sharp target jumps become eased glides. The grid size
// is fixed at construction; Offset must be driven once per cell per frame
// for the springs to integrate in real time.
type Spring struct {
	target Strategy
	spring harmonica.Spring
	cols   int

	px, py []float64
	vx, vy []float64
}

// NewSpring wraps target with per-cell springs tuned for the given tick
// rate. Frequency and damping follow harmonica's conventions.
func NewSpring(target Strategy, cols, rows, fps int, frequency, damping float64) *Spring {
	cells := cols * rows
	return &Spring{
		target: target,
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
		cols:   cols,
		px:     make([]float64, cells),
		py:     make([]float64, cells),
		vx:     make([]float64, cells),
		vy:     make([]float64, cells),
	}
}

func (s *Spring) Name() string { return "spring" }

func (s *Spring) Offset(col, row, frame int) (float64, float64) {
	tx, ty := s.target.Offset(col, row, frame)
	i := row*s.cols + col
	if i < 0 || i >= len(s.px) {
		return tx, ty
	}
	s.px[i], s.vx[i] = s.spring.Update(s.px[i], s.vx[i], tx)
	s.py[i], s.vy[i] = s.spring.Update(s.py[i], s.vy[i], ty)
	return s.px[i], s.py[i]
}
