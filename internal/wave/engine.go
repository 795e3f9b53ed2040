package wave

import "math"

// Engine answers per-cell hue/saturation/brightness queries for an animated
// grid. All three channels share one "temporal term + spatial dot-product ×
// multiplier" phase construction but use different shaping functions and
// offset constants, so they never move in lockstep.
type Engine struct {
	params *Params
	custom *Function

	// Recomputed by Update once per frame.
	waveMultiplier float64

	autoUpdate bool
	lastFrame  int
	lastSpeed  float64
}

// NewEngine creates an engine reading from the given parameter set.
func NewEngine(p *Params) *Engine {
	return &Engine{
		params:     p,
		autoUpdate: true,
		lastFrame:  -1,
		lastSpeed:  -1,
	}
}

// Update recomputes the wave multiplier for the given frame. Call once per
// frame before querying cells, or rely on auto-update which runs it before
// the first query of a new (frame, speed) pair.
func (e *Engine) Update(frame int, waveSpeed float64) {
	p := e.params
	e.waveMultiplier = mapRange(math.Sin(radians(float64(frame))), -1, 1,
		p.WaveMultiplierMin, p.WaveMultiplierMax)
	e.lastFrame = frame
	e.lastSpeed = waveSpeed
}

func (e *Engine) ensureUpdated(frame int, waveSpeed float64) {
	if e.autoUpdate && (frame != e.lastFrame || waveSpeed != e.lastSpeed) {
		e.Update(frame, waveSpeed)
	}
}

// SetAutoUpdate disables or re-enables the implicit Update before queries.
func (e *Engine) SetAutoUpdate(on bool) { e.autoUpdate = on }

// AutoUpdate reports whether auto-update is enabled.
func (e *Engine) AutoUpdate() bool { return e.autoUpdate }

// WaveMultiplier returns the multiplier computed for the current frame.
func (e *Engine) WaveMultiplier() float64 { return e.waveMultiplier }

// Amplitude returns the normalized wave amplitude for a grid cell.
// Pure function of the coordinates; independent of frame and time.
func (e *Engine) Amplitude(x, y int) float64 {
	p := e.params
	a := mapRange(math.Tan(radians(float64(x+y))), -1, 1,
		p.WaveAmplitudeMin, p.WaveAmplitudeMax)
	return clampRange(norm(a, p.WaveAmplitudeMin, p.WaveAmplitudeMax), 0, 1)
}

// Brightness computes the brightness channel for a cell from the default
// tangent field. Tangent is unbounded near its asymptotes, so the mapped
// value is clamped rather than renormalized.
func (e *Engine) Brightness(frame, x, y int, amplitude float64) float64 {
	p := e.params
	e.ensureUpdated(frame, p.WaveSpeed)

	angle := radians(p.WaveAngle)
	dx := math.Cos(angle)
	dy := math.Sin(angle)
	spatial := (float64(x)*dx + float64(y)*dy) * e.waveMultiplier
	input := float64(frame)*p.WaveSpeed + spatial*amplitude
	v := mapRange(math.Tan(radians(input)), -1, 1, p.BrightnessMin, p.BrightnessMax)
	return clampRange(v, p.BrightnessMin, p.BrightnessMax)
}

// BrightnessAt computes brightness through the installed Function, if any,
// normalizing the cell coordinates to [0,1] and the frame to animation time.
// Without a custom function it falls back to the default tangent field.
func (e *Engine) BrightnessAt(frame, x, y int, tilesX, tilesY float64) float64 {
	if e.custom != nil {
		p := e.params
		nx := float64(x) / tilesX
		ny := float64(y) / tilesY
		t := float64(frame) / float64(p.FPS*p.DurationSeconds)
		return e.custom.Eval(frame, nx, ny, t, p)
	}
	return e.Brightness(frame, x, y, e.Amplitude(x, y))
}

// Saturation computes the saturation channel. The wave is decorrelated from
// brightness by a 30 degree angle offset and different time/space scaling.
// A degenerate range (min == max) pins the channel: no wave is computed.
func (e *Engine) Saturation(frame, x, y int) float64 {
	p := e.params
	if p.SaturationMin == p.SaturationMax {
		return p.SaturationMin
	}

	e.ensureUpdated(frame, p.WaveSpeed)
	angle := radians(p.WaveAngle + 30)
	dx := math.Cos(angle)
	dy := math.Sin(angle)
	input := float64(frame)*p.WaveSpeed*0.7 +
		(float64(x)*dx+float64(y)*dy)*e.waveMultiplier*1.3
	v := mapRange(math.Sin(radians(input)), -1, 1, p.SaturationMin, p.SaturationMax)
	return clampRange(v, p.SaturationMin, p.SaturationMax)
}

// Hue computes the hue channel with slower scaling constants for a gentler
// sweep. A degenerate range (min == max) pins the channel.
func (e *Engine) Hue(frame, x, y int) float64 {
	p := e.params
	if p.HueMin == p.HueMax {
		return p.HueMin
	}

	e.ensureUpdated(frame, p.WaveSpeed)
	angle := radians(p.WaveAngle)
	dx := math.Cos(angle)
	dy := math.Sin(angle)
	input := float64(frame)*p.WaveSpeed*0.3 +
		(float64(x)*dx+float64(y)*dy)*e.waveMultiplier*0.5
	v := mapRange(math.Sin(radians(input)), -1, 1, p.HueMin, p.HueMax)
	return clampRange(v, p.HueMin, p.HueMax)
}

// SetFunction installs a custom wave function, or removes it when nil.
func (e *Engine) SetFunction(f *Function) { e.custom = f }

// Function returns the installed custom function, or nil.
func (e *Engine) Function() *Function { return e.custom }

// Reset removes any custom wave function.
func (e *Engine) Reset() { e.custom = nil }

func radians(deg float64) float64 { return deg * math.Pi / 180 }

// mapRange linearly remaps v from [inMin,inMax] to [outMin,outMax] without
// clamping. A degenerate input range maps everything to outMin.
func mapRange(v, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return outMin
	}
	return outMin + (v-inMin)/(inMax-inMin)*(outMax-outMin)
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// norm is the inverse of mapRange onto [0,1], unclamped.
func norm(v, lo, hi float64) float64 {
	if hi == lo {
		return 0
	}
	return (v - lo) / (hi - lo)
}
