package motion

import "math"

// Circular orbits each cell's glyph around its home position. A per-cell
// phase derived from the column and row keeps neighbours out of lockstep.
type Circular struct {
	Radius      float64
	Speed       float64
	Clockwise   bool
	PhaseSpread float64
}

// NewCircular creates a circular motion with the stock phase spread of 0.8.
func NewCircular(radius, speed float64, clockwise bool) *Circular {
	return &Circular{
		Radius:      radius,
		Speed:       speed,
		Clockwise:   clockwise,
		PhaseSpread: 0.8,
	}
}

func (c *Circular) Name() string { return "circular" }

func (c *Circular) Offset(col, row, frame int) (float64, float64) {
	phase := (float64(col)*0.7 + float64(row)*1.3) * c.PhaseSpread
	dir := -1.0
	if c.Clockwise {
		dir = 1.0
	}
	angle := dir*float64(frame)*c.Speed*0.03 + phase
	return math.Cos(angle) * c.Radius, math.Sin(angle) * c.Radius
}
