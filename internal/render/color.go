package render

import (
	"fmt"
	"math"
	"os"
	"strings"
	"sync"
)

// Profile is the terminal's color capability.
type Profile uint8

const (
	ProfileNone Profile = iota
	ProfileANSI16
	ProfileANSI256
	ProfileTrueColor
)

var (
	detectOnce     sync.Once
	detected       Profile
	sequenceCache  sync.Map
	ansi16Palette  = []rgb{
		{0, 0, 0},
		{205, 49, 49},
		{13, 188, 121},
		{229, 229, 16},
		{36, 114, 200},
		{188, 63, 188},
		{17, 168, 205},
		{229, 229, 229},
	}
)

// DetectProfile inspects the environment once and caches the result.
// NO_COLOR disables color entirely.
func DetectProfile() Profile {
	detectOnce.Do(func() {
		if _, off := os.LookupEnv("NO_COLOR"); off {
			detected = ProfileNone
			return
		}
		term := strings.ToLower(os.Getenv("TERM"))
		colorTerm := strings.ToLower(os.Getenv("COLORTERM"))
		switch {
		case strings.Contains(colorTerm, "truecolor"), strings.Contains(colorTerm, "24bit"):
			detected = ProfileTrueColor
		case strings.Contains(term, "256color"):
			detected = ProfileANSI256
		case term == "", term == "dumb":
			detected = ProfileNone
		default:
			detected = ProfileANSI16
		}
	})
	return detected
}

type rgb struct {
	r, g, b uint8
}

// hsbRGB converts the engine's HSB channels (hue 0-360, saturation and
// brightness 0-255) to RGB.
func hsbRGB(h, s, b float64) rgb {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	sf := clamp01(s / 255)
	bf := clamp01(b / 255)

	sector := h / 60
	i := int(sector) % 6
	f := sector - math.Floor(sector)
	p := bf * (1 - sf)
	q := bf * (1 - f*sf)
	t := bf * (1 - (1-f)*sf)

	var rf, gf, bl float64
	switch i {
	case 0:
		rf, gf, bl = bf, t, p
	case 1:
		rf, gf, bl = q, bf, p
	case 2:
		rf, gf, bl = p, bf, t
	case 3:
		rf, gf, bl = p, q, bf
	case 4:
		rf, gf, bl = t, p, bf
	default:
		rf, gf, bl = bf, p, q
	}
	return rgb{uint8(rf*255 + 0.5), uint8(gf*255 + 0.5), uint8(bl*255 + 0.5)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// pen tracks the last emitted foreground color so runs of identically
// colored cells cost one escape sequence, not one per glyph.
type pen struct {
	profile Profile
	current uint32
}

const penUnset = ^uint32(0)

func newPen(p Profile) pen {
	return pen{profile: p, current: penUnset}
}

func (p *pen) set(sb *strings.Builder, c rgb) {
	if p.profile == ProfileNone {
		return
	}
	key := uint32(c.r)<<16 | uint32(c.g)<<8 | uint32(c.b)
	if key == p.current {
		return
	}
	sb.WriteString(foregroundSequence(p.profile, c))
	p.current = key
}

func (p *pen) reset(sb *strings.Builder) {
	if p.profile == ProfileNone || p.current == penUnset {
		return
	}
	sb.WriteString("\x1b[0m")
	p.current = penUnset
}

func foregroundSequence(profile Profile, c rgb) string {
	key := uint32(profile)<<24 | uint32(c.r)<<16 | uint32(c.g)<<8 | uint32(c.b)
	if seq, ok := sequenceCache.Load(key); ok {
		return seq.(string)
	}

	var seq string
	switch profile {
	case ProfileTrueColor:
		seq = fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.r, c.g, c.b)
	case ProfileANSI256:
		// 6x6x6 color cube starting at index 16.
		r := int(c.r) * 5 / 255
		g := int(c.g) * 5 / 255
		b := int(c.b) * 5 / 255
		seq = fmt.Sprintf("\x1b[38;5;%dm", 16+36*r+6*g+b)
	case ProfileANSI16:
		seq = fmt.Sprintf("\x1b[%dm", 30+nearestANSI16(c))
	default:
		seq = ""
	}

	sequenceCache.Store(key, seq)
	return seq
}

func nearestANSI16(c rgb) int {
	best := 0
	bestDist := math.MaxFloat64
	for i, p := range ansi16Palette {
		dr := float64(c.r) - float64(p.r)
		dg := float64(c.g) - float64(p.g)
		db := float64(c.b) - float64(p.b)
		if d := dr*dr + dg*dg + db*db; d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}
