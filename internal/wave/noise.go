package wave

import opensimplex "github.com/ojrac/opensimplex-go"

const defaultNoiseSeed = 42

// Octave blend constants. Raw two-octave noise rarely reaches its
// theoretical extremes, so the map window is narrowed to [0.15, 0.85] to
// keep visible contrast.
const (
	noiseBaseWeight   = 0.7
	noiseDetailWeight = 0.3
	noiseDetailScale  = 2.5
	noiseDetailOffset = 100.0
	noiseDetailRate   = 1.5
	noiseWindowLo     = 0.15
	noiseWindowHi     = 0.85
)

// NoiseFunc returns a coherent-noise wave: two octaves of 3-D simplex noise
// sampled at (x*scale, y*scale, frame*0.01*speed). Deterministic for a
// fixed seed; the noise source is never mutated.
func NoiseFunc(seed int64, scale, speed float64) Function {
	src := opensimplex.NewNormalized(seed)
	return Function{
		Name:        "noise",
		Description: "organic coherent-noise patterns",
		Eval: func(frame int, x, y, _ float64, p *Params) float64 {
			nx := x * scale
			ny := y * scale
			nt := float64(frame) * 0.01 * speed
			base := src.Eval3(nx, ny, nt)
			detail := src.Eval3(
				nx*noiseDetailScale+noiseDetailOffset,
				ny*noiseDetailScale+noiseDetailOffset,
				nt*noiseDetailRate,
			)
			v := base*noiseBaseWeight + detail*noiseDetailWeight
			return mapRange(v, noiseWindowLo, noiseWindowHi,
				p.BrightnessMin, p.BrightnessMax)
		},
	}
}

// DefaultNoise mirrors the stock preset: spatial scale 3, temporal speed 0.8.
func DefaultNoise(seed int64) Function {
	return NoiseFunc(seed, 3.0, 0.8)
}
