// Package vibe turns loose natural-language descriptions ("melancholic
// rain at night") into animation settings. Each known keyword carries a
// full parameter set; multiple keywords in one description are averaged.
package vibe

import (
	"math"
	"sort"
	"strings"

	"github.com/MichailSemoglou/typewave/internal/wave"
)

// Settings is a resolved description: wave parameters plus a grid size.
type Settings struct {
	WaveSpeed         float64
	BrightnessMin     float64
	BrightnessMax     float64
	WaveMultiplierMax float64
	Cols              int
	Rows              int
	WaveAngle         float64
	HueMin            float64
	HueMax            float64
	SaturationMin     float64
	SaturationMax     float64
}

// Apply writes the settings into p, leaving fields vibes do not cover
// (fps, duration, amplitude range) untouched.
func (s Settings) Apply(p *wave.Params) {
	p.WaveSpeed = s.WaveSpeed
	p.WaveAngle = s.WaveAngle
	p.WaveMultiplierMax = s.WaveMultiplierMax
	p.BrightnessMin = s.BrightnessMin
	p.BrightnessMax = s.BrightnessMax
	p.HueMin = s.HueMin
	p.HueMax = s.HueMax
	p.SaturationMin = s.SaturationMin
	p.SaturationMax = s.SaturationMax
}

type preset struct {
	speed          float64
	briMin, briMax float64
	multMax        float64
	cols, rows     int
	angle          float64
	hueMin, hueMax float64
	satMin, satMax float64
}

// grey builds a colorless preset with the default 45 degree wave angle.
func grey(speed, briMin, briMax, multMax float64, cols, rows int) preset {
	return preset{speed: speed, briMin: briMin, briMax: briMax, multMax: multMax, cols: cols, rows: rows, angle: 45}
}

var presets = map[string]preset{
	// calm
	"calm":     grey(0.5, 20, 100, 1.0, 8, 8),
	"zen":      grey(0.5, 20, 100, 1.0, 8, 8),
	"peaceful": grey(0.6, 30, 120, 1.2, 10, 10),
	"serene":   grey(0.4, 15, 80, 0.8, 6, 6),

	// energetic, neon magenta-cyan with a steep angle
	"energy": {4.0, 150, 255, 5.0, 32, 24, 60, 270, 330, 200, 255},
	"rave":   {5.0, 180, 255, 6.0, 40, 30, 135, 260, 340, 220, 255},
	"techno": {4.5, 160, 255, 5.5, 36, 28, 120, 240, 320, 210, 255},
	"hype":   {4.0, 150, 255, 5.0, 32, 24, 90, 280, 350, 200, 255},

	// melancholic
	"melancholy": grey(0.8, 0, 60, 2.0, 16, 12),
	"rain":       grey(0.8, 0, 60, 2.0, 16, 12),
	"sad":        grey(0.7, 0, 50, 1.8, 14, 10),
	"nostalgic":  grey(0.9, 20, 80, 1.5, 12, 12),

	// chaotic, full-spectrum
	"chaos":   {6.0, 100, 255, 8.0, 48, 48, 200, 0, 360, 180, 255},
	"glitch":  {7.0, 80, 255, 10.0, 64, 48, 225, 80, 200, 150, 255},
	"noise":   {5.5, 120, 255, 7.0, 40, 40, 180, 30, 360, 160, 255},
	"digital": {6.0, 100, 255, 8.0, 48, 48, 210, 150, 270, 180, 255},

	// ocean, 90 degrees rolls the wave horizontally
	"ocean": {0.7, 80, 200, 2.0, 24, 16, 90, 0, 0, 0, 0},
	"flow":  {0.7, 80, 200, 2.0, 24, 16, 90, 0, 0, 0, 0},
	"wave":  {0.9, 90, 220, 2.5, 28, 18, 90, 0, 0, 0, 0},
	"water": {0.8, 70, 180, 2.2, 22, 16, 90, 0, 0, 0, 0},

	// minimal
	"minimal": grey(0.6, 30, 100, 1.0, 6, 6),
	"sparse":  grey(0.5, 20, 80, 0.8, 5, 5),
	"simple":  grey(0.7, 40, 120, 1.2, 8, 8),

	// light and dark
	"dark":   grey(0.8, 0, 40, 1.5, 16, 16),
	"night":  grey(0.7, 0, 50, 1.3, 14, 14),
	"bright": grey(2.0, 100, 255, 2.5, 20, 20),
	"day":    grey(2.0, 100, 255, 2.5, 20, 20),
	"light":  grey(1.8, 90, 255, 2.3, 18, 18),
}

// Balanced is the neutral fallback used when a description matches nothing.
func Balanced() Settings {
	return Settings{
		WaveSpeed:         2.0,
		BrightnessMin:     50,
		BrightnessMax:     200,
		WaveMultiplierMax: 2.0,
		Cols:              16,
		Rows:              16,
		WaveAngle:         45,
	}
}

// Resolve parses a description and averages every recognized keyword's
// parameters. The matched keywords come back in input order. Color only
// survives the blend when the averaged hue range is non-degenerate;
// otherwise the result is greyscale.
func Resolve(desc string) (Settings, []string) {
	words := strings.Fields(strings.ToLower(desc))

	var sum preset
	var matched []string
	for _, w := range words {
		p, ok := presets[w]
		if !ok {
			continue
		}
		matched = append(matched, w)
		sum.speed += p.speed
		sum.briMin += p.briMin
		sum.briMax += p.briMax
		sum.multMax += p.multMax
		sum.cols += p.cols
		sum.rows += p.rows
		sum.angle += p.angle
		sum.hueMin += p.hueMin
		sum.hueMax += p.hueMax
		sum.satMin += p.satMin
		sum.satMax += p.satMax
	}
	if len(matched) == 0 {
		return Balanced(), nil
	}

	n := float64(len(matched))
	s := Settings{
		WaveSpeed:         sum.speed / n,
		BrightnessMin:     sum.briMin / n,
		BrightnessMax:     sum.briMax / n,
		WaveMultiplierMax: sum.multMax / n,
		Cols:              int(math.Round(float64(sum.cols) / n)),
		Rows:              int(math.Round(float64(sum.rows) / n)),
		WaveAngle:         sum.angle / n,
	}
	hueMin, hueMax := sum.hueMin/n, sum.hueMax/n
	if hueMin != hueMax {
		s.HueMin, s.HueMax = hueMin, hueMax
		s.SaturationMin, s.SaturationMax = sum.satMin/n, sum.satMax/n
	}
	return s, matched
}

// Random interpolates between the calm and chaos extremes.
// intensity is clamped to [0,1].
func Random(intensity float64) Settings {
	if intensity < 0 {
		intensity = 0
	}
	if intensity > 1 {
		intensity = 1
	}
	tiles := int(8 + intensity*40)
	return Settings{
		WaveSpeed:         0.5 + intensity*5.5,
		BrightnessMin:     20 + intensity*130,
		BrightnessMax:     255,
		WaveMultiplierMax: 1.0 + intensity*7.0,
		Cols:              tiles,
		Rows:              tiles,
		WaveAngle:         45,
	}
}

// Valid reports whether a single keyword is recognized.
func Valid(keyword string) bool {
	_, ok := presets[strings.ToLower(keyword)]
	return ok
}

// Keywords returns every recognized keyword, sorted.
func Keywords() []string {
	out := make([]string, 0, len(presets))
	for k := range presets {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
