package render

import (
	"strings"
	"testing"
)

func TestHSBRGBPrimaries(t *testing.T) {
	tests := []struct {
		name    string
		h, s, b float64
		want    rgb
	}{
		{"red", 0, 255, 255, rgb{255, 0, 0}},
		{"green", 120, 255, 255, rgb{0, 255, 0}},
		{"blue", 240, 255, 255, rgb{0, 0, 255}},
		{"black", 0, 255, 0, rgb{0, 0, 0}},
		{"white", 0, 0, 255, rgb{255, 255, 255}},
		{"mid gray", 180, 0, 128, rgb{128, 128, 128}},
		{"hue wraps", 360, 255, 255, rgb{255, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hsbRGB(tt.h, tt.s, tt.b); got != tt.want {
				t.Fatalf("hsbRGB(%v,%v,%v) = %+v, want %+v", tt.h, tt.s, tt.b, got, tt.want)
			}
		})
	}
}

func TestForegroundSequenceTrueColor(t *testing.T) {
	seq := foregroundSequence(ProfileTrueColor, rgb{10, 20, 30})
	if seq != "\x1b[38;2;10;20;30m" {
		t.Fatalf("truecolor sequence = %q", seq)
	}
}

func TestForegroundSequence256UsesCube(t *testing.T) {
	seq := foregroundSequence(ProfileANSI256, rgb{255, 255, 255})
	if seq != "\x1b[38;5;231m" {
		t.Fatalf("256-color white = %q, want index 231", seq)
	}
}

func TestNearestANSI16(t *testing.T) {
	if got := nearestANSI16(rgb{250, 10, 10}); got != 1 {
		t.Fatalf("nearest to red = %d, want 1", got)
	}
	if got := nearestANSI16(rgb{5, 5, 5}); got != 0 {
		t.Fatalf("nearest to black = %d, want 0", got)
	}
}

func TestPenSkipsRepeatedColor(t *testing.T) {
	var sb strings.Builder
	p := newPen(ProfileTrueColor)
	p.set(&sb, rgb{1, 2, 3})
	first := sb.Len()
	p.set(&sb, rgb{1, 2, 3})
	if sb.Len() != first {
		t.Fatal("pen emitted a sequence for an unchanged color")
	}
	p.set(&sb, rgb{4, 5, 6})
	if sb.Len() == first {
		t.Fatal("pen skipped a sequence for a changed color")
	}
}

func TestPenNoneProfileEmitsNothing(t *testing.T) {
	var sb strings.Builder
	p := newPen(ProfileNone)
	p.set(&sb, rgb{200, 100, 50})
	p.reset(&sb)
	if sb.Len() != 0 {
		t.Fatalf("colorless pen wrote %q", sb.String())
	}
}
