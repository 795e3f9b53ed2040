package audio

import "math"

// Meter condenses a window of samples into a 0-1 loudness level. Loudness
// uses a dB scale with a -40 dB floor so quiet passages still register,
// and asymmetric smoothing so hits land fast and fade slow.
type Meter struct {
	rms float64
}

const (
	meterAttack  = 0.6
	meterRelease = 0.15
	meterFloorDB = -40.0
)

// Feed folds a sample window into the smoothed RMS and returns the
// current level. An empty window decays toward silence.
func (m *Meter) Feed(samples []int16) float64 {
	var sum float64
	for _, s := range samples {
		f := float64(s) / 32768.0
		sum += f * f
	}
	rms := 0.0
	if len(samples) > 0 {
		rms = math.Sqrt(sum / float64(len(samples)))
	}

	if rms > m.rms {
		m.rms = m.rms*(1-meterAttack) + rms*meterAttack
	} else {
		m.rms = m.rms*(1-meterRelease) + rms*meterRelease
	}
	return m.Level()
}

// Level maps the smoothed RMS to [0,1] on a dB scale.
func (m *Meter) Level() float64 {
	if m.rms < 1e-6 {
		return 0
	}
	db := 20 * math.Log10(m.rms)
	if db < meterFloorDB {
		return 0
	}
	level := (db - meterFloorDB) / -meterFloorDB
	if level > 1 {
		level = 1
	}
	return level
}

// Reset returns the meter to silence.
func (m *Meter) Reset() { m.rms = 0 }
