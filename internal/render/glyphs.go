package render

import "fmt"

// Built-in glyph ramps, darkest to brightest.
const (
	RampDensity = " .:-=+*#%@"
	RampBlocks  = " ░▒▓█"
	RampDots    = " ·•●"
)

// ParseRamp validates a user-supplied glyph ramp. A ramp needs at least two
// runes so brightness has something to interpolate between.
func ParseRamp(s string) ([]rune, error) {
	runes := []rune(s)
	if len(runes) < 2 {
		return nil, fmt.Errorf("glyph ramp needs at least 2 characters, got %d", len(runes))
	}
	return runes, nil
}

// glyphFor picks the ramp rune for a brightness in [0,255].
func glyphFor(ramp []rune, brightness float64) rune {
	idx := int(brightness / 255 * float64(len(ramp)-1))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(ramp) {
		idx = len(ramp) - 1
	}
	return ramp[idx]
}
