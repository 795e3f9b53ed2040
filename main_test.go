package main

import (
	"io"
	"strings"
	"testing"

	"github.com/MichailSemoglou/typewave/internal/motion"
	"github.com/MichailSemoglou/typewave/internal/wave"
)

func TestParseArgsDefaults(t *testing.T) {
	o, err := parseArgs(nil, io.Discard)
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if o.waveName != "sine" || o.blendName != "average" || o.maxTrail != 12 {
		t.Fatalf("defaults = %+v", o)
	}
	if o.vibeSet {
		t.Fatal("vibeSet without -vibe flag")
	}
}

func TestParseArgsDetectsExplicitVibe(t *testing.T) {
	o, err := parseArgs([]string{"-vibe", ""}, io.Discard)
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if !o.vibeSet {
		t.Fatal("an empty -vibe flag should still count as set")
	}
}

func TestParseArgsPositionalAudio(t *testing.T) {
	o, err := parseArgs([]string{"-vibe", "calm", "track.mp3"}, io.Discard)
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if o.audioPath != "track.mp3" {
		t.Fatalf("audioPath = %q", o.audioPath)
	}

	if _, err := parseArgs([]string{"a.mp3", "b.mp3"}, io.Discard); err == nil {
		t.Fatal("two positional arguments accepted")
	}
}

func TestBuildConfigVibeThenFlagOverrides(t *testing.T) {
	o, err := parseArgs([]string{"-vibe", "calm", "-cols", "20", "-fps", "24"}, io.Discard)
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	cfg, err := buildConfig(o.vibeDesc, o)
	if err != nil {
		t.Fatalf("buildConfig: %v", err)
	}

	if cfg.Params.WaveSpeed != 0.5 {
		t.Fatalf("calm speed = %v, want 0.5", cfg.Params.WaveSpeed)
	}
	if cfg.Cols != 20 {
		t.Fatalf("cols = %d, -cols should override the vibe grid", cfg.Cols)
	}
	if cfg.Rows != 8 {
		t.Fatalf("rows = %d, want the vibe's 8", cfg.Rows)
	}
	if cfg.Params.FPS != 24 {
		t.Fatalf("fps = %d, want 24", cfg.Params.FPS)
	}
	if cfg.Vibe != "calm" {
		t.Fatalf("vibe label = %q", cfg.Vibe)
	}
}

func TestBuildConfigParsesEnums(t *testing.T) {
	o, _ := parseArgs([]string{"-wave", "noise", "-motion", "drift", "-glyphs", " ░█"}, io.Discard)
	cfg, err := buildConfig("", o)
	if err != nil {
		t.Fatalf("buildConfig: %v", err)
	}
	if cfg.Shape != wave.ShapeNoise || cfg.Motion != motion.ModeDrift || len(cfg.Ramp) != 3 {
		t.Fatalf("cfg = shape %v, motion %v, ramp %d runes", cfg.Shape, cfg.Motion, len(cfg.Ramp))
	}
}

func TestBuildConfigRejectsBadValues(t *testing.T) {
	for _, args := range [][]string{
		{"-wave", "zigzag"},
		{"-blend", "screen"},
		{"-motion", "teleport"},
		{"-glyphs", "x"},
	} {
		o, err := parseArgs(args, io.Discard)
		if err != nil {
			continue
		}
		if _, err := buildConfig("", o); err == nil {
			t.Fatalf("buildConfig accepted %v", args)
		}
	}
}

func TestRunHeadlessEmitsRequestedFrames(t *testing.T) {
	o, _ := parseArgs([]string{"-vibe", "minimal", "-frames", "5"}, io.Discard)
	cfg, err := buildConfig(o.vibeDesc, o)
	if err != nil {
		t.Fatalf("buildConfig: %v", err)
	}

	var sb strings.Builder
	if err := runHeadless(&sb, cfg, headlessFrames(o, cfg)); err != nil {
		t.Fatalf("runHeadless: %v", err)
	}

	frames := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n\n")
	if len(frames) != 5 {
		t.Fatalf("got %d frames, want 5", len(frames))
	}
	rows := strings.Split(frames[0], "\n")
	if len(rows) != cfg.Rows {
		t.Fatalf("frame has %d rows, want %d", len(rows), cfg.Rows)
	}
	for _, row := range rows {
		if len([]rune(row)) != cfg.Cols {
			t.Fatalf("row %q has %d runes, want %d", row, len([]rune(row)), cfg.Cols)
		}
	}
}

func TestHeadlessFramesDefaultsToDuration(t *testing.T) {
	o, _ := parseArgs([]string{"-fps", "10", "-duration", "2"}, io.Discard)
	cfg, err := buildConfig("", o)
	if err != nil {
		t.Fatalf("buildConfig: %v", err)
	}
	if got := headlessFrames(o, cfg); got != 20 {
		t.Fatalf("headlessFrames = %d, want fps*duration = 20", got)
	}
}

func TestRunHeadlessRejectsZeroFrames(t *testing.T) {
	o, _ := parseArgs(nil, io.Discard)
	cfg, err := buildConfig("", o)
	if err != nil {
		t.Fatalf("buildConfig: %v", err)
	}
	if err := runHeadless(io.Discard, cfg, 0); err == nil {
		t.Fatal("zero frames accepted")
	}
}
