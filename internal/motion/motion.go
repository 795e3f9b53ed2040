// Package motion computes per-cell displacements used by the renderer to
// wobble sampling positions, so neighbouring glyphs drift instead of sitting
// rigidly in their cells.
package motion

import "fmt"

// Strategy computes a displacement for a grid cell at a frame, in cell
// units. Implementations are stepped once per cell per frame by the driver.
type Strategy interface {
	Name() string
	Offset(col, row, frame int) (dx, dy float64)
}

// Mode identifies a built-in motion strategy for the CLI.
type Mode int

const (
	ModeNone Mode = iota
	ModeCircular
	ModeDrift
	ModeSpring
)

func (m Mode) String() string {
	switch m {
	case ModeCircular:
		return "circular"
	case ModeDrift:
		return "drift"
	case ModeSpring:
		return "spring"
	default:
		return "none"
	}
}

// Modes lists every mode in cycle order.
func Modes() []Mode {
	return []Mode{ModeNone, ModeCircular, ModeDrift, ModeSpring}
}

// Build constructs the stock strategy for a mode. The spring mode wraps a
// circular orbit so direction flips ease in instead of snapping. Returns
// nil for ModeNone.
func Build(m Mode, cols, rows, fps int, speed float64, seed int64) Strategy {
	switch m {
	case ModeCircular:
		return NewCircular(1.5, speed, true)
	case ModeDrift:
		return NewDrift(2.0, speed, seed)
	case ModeSpring:
		return NewSpring(NewCircular(1.5, speed, true), cols, rows, fps, 6.0, 0.8)
	default:
		return nil
	}
}

// ParseMode maps a CLI name to a Mode.
func ParseMode(name string) (Mode, error) {
	for _, m := range Modes() {
		if m.String() == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown motion mode %q", name)
}
