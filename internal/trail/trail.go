// Package trail keeps a rolling history of captured grid frames and
// composites them into a single output frame, simulating motion persistence.
package trail

import (
	"fmt"
	"math"
)

// BlendMode selects the reduction operator applied across a trail's window.
type BlendMode int

const (
	// BlendAdd accumulates weighted brightness (default).
	BlendAdd BlendMode = iota
	// BlendMax keeps the per-cell weighted maximum.
	BlendMax
	// BlendAverage divides the weighted sum by the sample count.
	BlendAverage
)

func (m BlendMode) String() string {
	switch m {
	case BlendMax:
		return "max"
	case BlendAverage:
		return "average"
	default:
		return "add"
	}
}

// ParseBlendMode maps a CLI name to a BlendMode.
func ParseBlendMode(name string) (BlendMode, error) {
	switch name {
	case "add":
		return BlendAdd, nil
	case "max":
		return BlendMax, nil
	case "average":
		return BlendAverage, nil
	}
	return 0, fmt.Errorf("unknown blend mode %q", name)
}

// Buffer is a fixed-capacity ring of captured per-cell frames. It is built
// for a single-threaded once-per-tick driver: capture, then composite. The
// ring-index arithmetic is not safe under concurrent captures.
type Buffer struct {
	cols   int
	rows   int
	maxLen int

	// One flat cols*rows array per slot, per channel.
	bri [][]float64
	hue [][]float64
	sat [][]float64

	head   int // next write position
	filled int // slots holding data, saturates at maxLen

	trailLength int
	fadeDecay   float64
	blend       BlendMode

	useTemporalWave  bool
	temporalWaveAmp  float64
	temporalWaveFreq float64

	framerateReactive bool
	targetFPS         float64
	smoothedFPS       float64

	audioReactive bool
	audioLevel    float64
	audioMinTrail int
	audioMaxTrail int
}

// New allocates a Buffer for a fixed grid and capacity. A non-positive
// capacity is clamped to 1, which degenerates gracefully to "no trail".
func New(cols, rows, maxLen int) *Buffer {
	if maxLen < 1 {
		maxLen = 1
	}
	cells := cols * rows
	b := &Buffer{
		cols:          cols,
		rows:          rows,
		maxLen:        maxLen,
		bri:           make([][]float64, maxLen),
		hue:           make([][]float64, maxLen),
		sat:           make([][]float64, maxLen),
		trailLength:   maxLen,
		fadeDecay:     0.7,
		targetFPS:     60,
		smoothedFPS:   60,
		audioMinTrail: 2,
		audioMaxTrail: maxLen,
	}
	for i := range maxLen {
		b.bri[i] = make([]float64, cells)
		b.hue[i] = make([]float64, cells)
		b.sat[i] = make([]float64, cells)
	}
	return b
}

// Capture evaluates all three channels for every cell, writes them into the
// slot at head and advances the ring, overwriting the oldest slot once full.
func (b *Buffer) Capture(bri, hue, sat func(x, y int) float64) {
	briSlot := b.bri[b.head]
	hueSlot := b.hue[b.head]
	satSlot := b.sat[b.head]

	for y := 0; y < b.rows; y++ {
		for x := 0; x < b.cols; x++ {
			idx := y*b.cols + x
			briSlot[idx] = bri(x, y)
			hueSlot[idx] = hue(x, y)
			satSlot[idx] = sat(x, y)
		}
	}

	b.head = (b.head + 1) % b.maxLen
	if b.filled < b.maxLen {
		b.filled++
	}
}

// CaptureRaw stores a pre-computed brightness frame (flat, cols*rows).
// Hue and saturation for the slot are left untouched.
func (b *Buffer) CaptureRaw(values []float64) {
	copy(b.bri[b.head], values)
	b.head = (b.head + 1) % b.maxLen
	if b.filled < b.maxLen {
		b.filled++
	}
}

// slotIndex resolves the ring position for slot age t (0 = most recent).
func (b *Buffer) slotIndex(t int) int {
	return (b.head - 1 - t + 2*b.maxLen) % b.maxLen
}

// temporalOffset perturbs which historical age a cell samples, producing a
// wave-like displacement across the trail.
func (b *Buffer) temporalOffset(cell, t int) int {
	col := cell % b.cols
	row := cell / b.cols
	w := math.Sin(float64(col+row)*b.temporalWaveFreq + float64(t)*0.2)
	return int(math.Round(w * b.temporalWaveAmp))
}

// Composite reduces the trail window into a rows×cols brightness grid,
// clamped to [0,255]. An empty buffer yields an all-zero grid.
func (b *Buffer) Composite() [][]float64 {
	result := make([][]float64, b.rows)
	for r := range result {
		result[r] = make([]float64, b.cols)
	}
	if b.filled == 0 {
		return result
	}

	length := b.EffectiveTrailLength()
	cells := b.cols * b.rows
	accum := make([]float64, cells)
	counts := make([]int, cells)

	for t := 0; t < length && t < b.filled; t++ {
		weight := math.Pow(b.fadeDecay, float64(t))

		for c := range cells {
			age := t
			if b.useTemporalWave {
				age += b.temporalOffset(c, t)
			}
			// A displaced age outside the history window contributes nothing.
			if age < 0 || age >= b.filled {
				continue
			}
			v := b.bri[b.slotIndex(age)][c] * weight

			switch b.blend {
			case BlendMax:
				if v > accum[c] {
					accum[c] = v
				}
			case BlendAverage:
				accum[c] += v
				counts[c]++
			default:
				accum[c] += v
			}
		}
	}

	for y := 0; y < b.rows; y++ {
		for x := 0; x < b.cols; x++ {
			idx := y*b.cols + x
			v := accum[idx]
			if b.blend == BlendAverage && counts[idx] > 0 {
				v /= float64(counts[idx])
			}
			result[y][x] = clamp(v, 0, 255)
		}
	}
	return result
}

// CompositeHSB reduces the trail into flat hue, saturation and brightness
// arrays of length cols*rows. Hue and saturation are weighted averages so
// they blend without overshooting their bounded ranges; brightness is a
// weighted sum clamped to [0,255] so trails visibly accumulate light.
func (b *Buffer) CompositeHSB() (hue, sat, bri []float64) {
	length := b.EffectiveTrailLength()
	cells := b.cols * b.rows
	hue = make([]float64, cells)
	sat = make([]float64, cells)
	bri = make([]float64, cells)
	wSum := make([]float64, cells)

	for t := 0; t < length && t < b.filled; t++ {
		weight := math.Pow(b.fadeDecay, float64(t))

		for c := range cells {
			age := t
			if b.useTemporalWave {
				age += b.temporalOffset(c, t)
			}
			if age < 0 || age >= b.filled {
				continue
			}
			src := b.slotIndex(age)
			hue[c] += b.hue[src][c] * weight
			sat[c] += b.sat[src][c] * weight
			bri[c] += b.bri[src][c] * weight
			wSum[c] += weight
		}
	}

	for c := range cells {
		w := wSum[c]
		if w < 0.001 {
			w = 0.001
		}
		hue[c] /= w
		sat[c] /= w
		bri[c] = clamp(bri[c], 0, 255)
	}
	return hue, sat, bri
}

// EffectiveTrailLength resolves the trail window for the next composite:
// the static length, scaled up when the real frame rate lags the target
// (capped at 3x), overridden entirely by the audio level when audio-reactive,
// and finally bounded by the available history.
func (b *Buffer) EffectiveTrailLength() int {
	length := b.trailLength

	if b.framerateReactive {
		smoothed := b.smoothedFPS
		if smoothed < 1 {
			smoothed = 1
		}
		ratio := clamp(b.targetFPS/smoothed, 1.0, 3.0)
		length = int(math.Round(float64(length) * ratio))
	}

	if b.audioReactive {
		length = int(math.Round(lerp(float64(b.audioMinTrail), float64(b.audioMaxTrail), b.audioLevel)))
	}

	if length > b.filled {
		length = b.filled
	}
	if length > b.maxLen {
		length = b.maxLen
	}
	return length
}

// SetTrailLength sets the static trail window, clamped to [1, capacity].
func (b *Buffer) SetTrailLength(n int) {
	if n < 1 {
		n = 1
	}
	if n > b.maxLen {
		n = b.maxLen
	}
	b.trailLength = n
}

// TrailLength returns the static trail window.
func (b *Buffer) TrailLength() int { return b.trailLength }

// SetFadeDecay sets the per-age weight multiplier: 0 fades instantly,
// 1 never fades. Clamped to [0,1].
func (b *Buffer) SetFadeDecay(d float64) { b.fadeDecay = clamp(d, 0, 1) }

// FadeDecay returns the per-age weight multiplier.
func (b *Buffer) FadeDecay() float64 { return b.fadeDecay }

// SetBlendMode selects the compositing operator.
func (b *Buffer) SetBlendMode(m BlendMode) { b.blend = m }

// BlendModeSetting returns the active compositing operator.
func (b *Buffer) BlendModeSetting() BlendMode { return b.blend }

// SetTemporalWave enables the per-cell temporal displacement: amp is the
// maximum age offset, freq the spatial frequency across the grid.
func (b *Buffer) SetTemporalWave(amp, freq float64) {
	b.useTemporalWave = true
	b.temporalWaveAmp = amp
	b.temporalWaveFreq = freq
}

// DisableTemporalWave turns the temporal displacement off.
func (b *Buffer) DisableTemporalWave() { b.useTemporalWave = false }

// SetFramerateReactive makes the trail grow when the measured frame rate
// drops below target (more ghosting when the host stutters).
func (b *Buffer) SetFramerateReactive(on bool, targetFPS float64) {
	b.framerateReactive = on
	b.targetFPS = targetFPS
}

// FeedFramerate feeds one frame-rate observation into the EMA. Call once
// per tick when framerate-reactive.
func (b *Buffer) FeedFramerate(fps float64) {
	b.smoothedFPS = b.smoothedFPS*0.9 + fps*0.1
}

// SetAudioReactive makes the audio level dictate the trail window, from
// minTrail at silence to maxTrail at full level. Applied after the
// framerate scaling, so it wins when both modes are enabled.
func (b *Buffer) SetAudioReactive(minTrail, maxTrail int) {
	b.audioReactive = true
	if minTrail < 1 {
		minTrail = 1
	}
	if maxTrail > b.maxLen {
		maxTrail = b.maxLen
	}
	b.audioMinTrail = minTrail
	b.audioMaxTrail = maxTrail
}

// DisableAudioReactive turns audio-reactive length off.
func (b *Buffer) DisableAudioReactive() { b.audioReactive = false }

// FeedAudioLevel stores the current normalized audio level, clamped to [0,1].
func (b *Buffer) FeedAudioLevel(level float64) {
	b.audioLevel = clamp(level, 0, 1)
}

// Clear discards all history without touching allocated storage.
func (b *Buffer) Clear() {
	b.head = 0
	b.filled = 0
}

// Filled returns the number of slots currently holding data.
func (b *Buffer) Filled() int { return b.filled }

// Cols returns the grid width.
func (b *Buffer) Cols() int { return b.cols }

// Rows returns the grid height.
func (b *Buffer) Rows() int { return b.rows }

// MaxLength returns the ring capacity.
func (b *Buffer) MaxLength() int { return b.maxLen }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }
