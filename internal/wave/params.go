package wave

import "fmt"

// Params holds every tunable the wave engine reads. One instance is shared
// by the engine, the capture loop and the UI; fields are only mutated
// between frames, never during a query.
type Params struct {
	WaveSpeed float64
	WaveAngle float64 // degrees, direction of the spatial sweep

	WaveMultiplierMin float64
	WaveMultiplierMax float64
	WaveAmplitudeMin  float64
	WaveAmplitudeMax  float64

	HueMin        float64 // 0-360
	HueMax        float64
	SaturationMin float64 // 0-255
	SaturationMax float64
	BrightnessMin float64 // 0-255
	BrightnessMax float64

	FPS             int
	DurationSeconds int
}

// DefaultParams returns the stock parameter set: a diagonal monochrome wave.
// Hue and saturation default to fixed zero, so only brightness animates.
func DefaultParams() *Params {
	return &Params{
		WaveSpeed:         1.0,
		WaveAngle:         45.0,
		WaveMultiplierMin: 0.0,
		WaveMultiplierMax: 2.0,
		WaveAmplitudeMin:  -200.0,
		WaveAmplitudeMax:  200.0,
		BrightnessMin:     50,
		BrightnessMax:     255,
		FPS:               30,
		DurationSeconds:   18,
	}
}

// Validate reports parameter combinations that would make the animation
// meaningless. Equal min/max on hue or saturation is valid: it pins the
// channel to a fixed value.
func (p *Params) Validate() error {
	if p.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", p.FPS)
	}
	if p.DurationSeconds <= 0 {
		return fmt.Errorf("duration must be positive, got %d", p.DurationSeconds)
	}
	if p.HueMin > p.HueMax {
		return fmt.Errorf("hue range inverted: %g > %g", p.HueMin, p.HueMax)
	}
	if p.HueMin < 0 || p.HueMax > 360 {
		return fmt.Errorf("hue range must stay within [0,360], got [%g,%g]", p.HueMin, p.HueMax)
	}
	if p.SaturationMin > p.SaturationMax {
		return fmt.Errorf("saturation range inverted: %g > %g", p.SaturationMin, p.SaturationMax)
	}
	if p.SaturationMin < 0 || p.SaturationMax > 255 {
		return fmt.Errorf("saturation range must stay within [0,255], got [%g,%g]", p.SaturationMin, p.SaturationMax)
	}
	if p.BrightnessMin >= p.BrightnessMax {
		return fmt.Errorf("brightness range must be increasing, got [%g,%g]", p.BrightnessMin, p.BrightnessMax)
	}
	if p.BrightnessMin < 0 || p.BrightnessMax > 255 {
		return fmt.Errorf("brightness range must stay within [0,255], got [%g,%g]", p.BrightnessMin, p.BrightnessMax)
	}
	if p.WaveMultiplierMin > p.WaveMultiplierMax {
		return fmt.Errorf("wave multiplier range inverted: %g > %g", p.WaveMultiplierMin, p.WaveMultiplierMax)
	}
	if p.WaveAmplitudeMin >= p.WaveAmplitudeMax {
		return fmt.Errorf("wave amplitude range must be increasing, got [%g,%g]", p.WaveAmplitudeMin, p.WaveAmplitudeMax)
	}
	return nil
}
