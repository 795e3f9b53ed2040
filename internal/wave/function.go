package wave

import (
	"fmt"
	"math"
)

// Function is a pluggable per-cell wave evaluator. Eval receives grid
// coordinates normalized to [0,1], the normalized animation time t, and
// should return a brightness inside the configured range. Built-ins honor
// the range; user-supplied functions are trusted to.
type Function struct {
	Name        string
	Description string
	Eval        func(frame int, x, y, t float64, p *Params) float64
}

// Shape identifies a built-in wave preset.
type Shape int

const (
	ShapeSine Shape = iota
	ShapeTangent
	ShapeSquare
	ShapeTriangle
	ShapeSawtooth
	ShapeNoise
)

func (s Shape) String() string {
	switch s {
	case ShapeSine:
		return "sine"
	case ShapeTangent:
		return "tangent"
	case ShapeSquare:
		return "square"
	case ShapeTriangle:
		return "triangle"
	case ShapeSawtooth:
		return "sawtooth"
	case ShapeNoise:
		return "noise"
	default:
		return "unknown"
	}
}

// Shapes lists every built-in shape in cycle order.
func Shapes() []Shape {
	return []Shape{ShapeSine, ShapeTangent, ShapeSquare, ShapeTriangle, ShapeSawtooth, ShapeNoise}
}

// ParseShape maps a CLI name to a Shape.
func ParseShape(name string) (Shape, error) {
	for _, s := range Shapes() {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown wave shape %q", name)
}

// Preset returns the built-in Function for a shape. The noise shape uses a
// fixed default seed; use NoiseFunc for control over seed, scale and speed.
func Preset(s Shape) Function {
	switch s {
	case ShapeTangent:
		return Tangent()
	case ShapeSquare:
		return Square()
	case ShapeTriangle:
		return Triangle()
	case ShapeSawtooth:
		return Sawtooth()
	case ShapeNoise:
		return DefaultNoise(defaultNoiseSeed)
	default:
		return Sine()
	}
}

// FunctionFor is Preset with control over the noise seed.
func FunctionFor(s Shape, seed int64) Function {
	if s == ShapeNoise {
		return DefaultNoise(seed)
	}
	return Preset(s)
}

// phase combines frame-based time animation with a diagonal spatial sweep
// across the normalized grid. Shared by every mathematical preset.
func phase(frame int, x, y float64, p *Params) float64 {
	return float64(frame)*p.WaveSpeed*0.05 + x*2*math.Pi*3 + y*2*math.Pi*3
}

// phaseFrac folds a phase into one [0,1) period.
func phaseFrac(ph float64) float64 {
	t := math.Mod(ph/(2*math.Pi), 1)
	if t < 0 {
		t++
	}
	return t
}

// Sine is the gentlest of the mathematical shapes.
func Sine() Function {
	return Function{
		Name:        "sine",
		Description: "smooth sinusoidal oscillation",
		Eval: func(frame int, x, y, _ float64, p *Params) float64 {
			return mapRange(math.Sin(phase(frame, x, y, p)), -1, 1,
				p.BrightnessMin, p.BrightnessMax)
		},
	}
}

// Tangent produces sharp, angular transitions; the mapped value is clamped
// because tangent is unbounded near its asymptotes.
func Tangent() Function {
	return Function{
		Name:        "tangent",
		Description: "sharp, angular tangent oscillation",
		Eval: func(frame int, x, y, _ float64, p *Params) float64 {
			raw := mapRange(math.Tan(phase(frame, x, y, p)), -1, 1,
				p.BrightnessMin, p.BrightnessMax)
			return clampRange(raw, p.BrightnessMin, p.BrightnessMax)
		},
	}
}

// Square is binary on/off: the output is always exactly BrightnessMin or
// BrightnessMax, giving bold checkerboard-like patterns.
func Square() Function {
	return Function{
		Name:        "square",
		Description: "binary on/off square wave",
		Eval: func(frame int, x, y, _ float64, p *Params) float64 {
			if math.Sin(phase(frame, x, y, p)) >= 0 {
				return p.BrightnessMax
			}
			return p.BrightnessMin
		},
	}
}

// Triangle ramps linearly up then down across each period.
func Triangle() Function {
	return Function{
		Name:        "triangle",
		Description: "linear ramp up then down",
		Eval: func(frame int, x, y, _ float64, p *Params) float64 {
			t := phaseFrac(phase(frame, x, y, p))
			var tri float64
			if t < 0.5 {
				tri = 4*t - 1
			} else {
				tri = 3 - 4*t
			}
			return mapRange(tri, -1, 1, p.BrightnessMin, p.BrightnessMax)
		},
	}
}

// Sawtooth ramps linearly with a hard reset at the period boundary.
func Sawtooth() Function {
	return Function{
		Name:        "sawtooth",
		Description: "linear ramp with sharp drop",
		Eval: func(frame int, x, y, _ float64, p *Params) float64 {
			t := phaseFrac(phase(frame, x, y, p))
			return mapRange(t, 0, 1, p.BrightnessMin, p.BrightnessMax)
		},
	}
}
