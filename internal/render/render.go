// Package render turns composited per-cell HSB grids into colored glyph
// rows for the terminal. It never touches fonts or pixels; a cell is one
// printed rune.
package render

import (
	"math"
	"strings"

	"github.com/MichailSemoglou/typewave/internal/motion"
)

// Renderer converts flat HSB channel arrays into one text frame per tick.
type Renderer struct {
	ramp    []rune
	profile Profile
	motion  motion.Strategy
}

// New creates a renderer using the given glyph ramp and the detected
// terminal color profile.
func New(ramp []rune) *Renderer {
	return &Renderer{ramp: ramp, profile: DetectProfile()}
}

// NewMono creates a renderer that never emits color sequences, for
// headless output and tests.
func NewMono(ramp []rune) *Renderer {
	return &Renderer{ramp: ramp, profile: ProfileNone}
}

// SetMotion installs a sampling-displacement strategy, or removes it when nil.
func (r *Renderer) SetMotion(m motion.Strategy) { r.motion = m }

// Motion returns the installed strategy, or nil.
func (r *Renderer) Motion() motion.Strategy { return r.motion }

// SetRamp swaps the glyph ramp.
func (r *Renderer) SetRamp(ramp []rune) { r.ramp = ramp }

// Frame renders one tick. hue, sat and bri are flat cols*rows arrays in the
// engine's channel ranges. When a motion strategy is installed, each cell
// samples a displaced source cell, clamped to the grid.
func (r *Renderer) Frame(hue, sat, bri []float64, cols, rows, frame int) string {
	var out strings.Builder
	out.Grow(rows * (cols + 1) * 4)
	p := newPen(r.profile)

	for y := 0; y < rows; y++ {
		if y > 0 {
			out.WriteByte('\n')
		}
		for x := 0; x < cols; x++ {
			sx, sy := x, y
			if r.motion != nil {
				dx, dy := r.motion.Offset(x, y, frame)
				sx = clampInt(x+int(math.Round(dx)), 0, cols-1)
				sy = clampInt(y+int(math.Round(dy)), 0, rows-1)
			}
			idx := sy*cols + sx

			b := bri[idx]
			ch := glyphFor(r.ramp, b)
			if ch == ' ' || r.profile == ProfileNone {
				out.WriteRune(ch)
				continue
			}
			p.set(&out, hsbRGB(hue[idx], sat[idx], b))
			out.WriteRune(ch)
		}
		p.reset(&out)
	}
	return out.String()
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
