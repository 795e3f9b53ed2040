package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/MichailSemoglou/typewave/internal/motion"
	"github.com/MichailSemoglou/typewave/internal/render"
	"github.com/MichailSemoglou/typewave/internal/trail"
	"github.com/MichailSemoglou/typewave/internal/ui"
	"github.com/MichailSemoglou/typewave/internal/wave"
)

// headlessFrames picks the frame count for a headless run: the explicit
// -frames override, otherwise fps times the configured duration.
func headlessFrames(o options, cfg ui.Config) int {
	if o.frames > 0 {
		return o.frames
	}
	return cfg.Params.FPS * cfg.Params.DurationSeconds
}

// runHeadless renders the animation to w without a terminal, one
// monochrome glyph frame per tick. Useful for piping and for inspecting
// what a vibe resolves to.
func runHeadless(w io.Writer, cfg ui.Config, frames int) error {
	if frames < 1 {
		return fmt.Errorf("headless run needs at least 1 frame, got %d", frames)
	}

	engine := wave.NewEngine(&cfg.Params)
	fn := wave.FunctionFor(cfg.Shape, cfg.Seed)
	engine.SetFunction(&fn)

	buf := trail.New(cfg.Cols, cfg.Rows, cfg.MaxTrail)
	if cfg.TrailLength > 0 {
		buf.SetTrailLength(cfg.TrailLength)
	}
	if cfg.FadeDecay > 0 {
		buf.SetFadeDecay(cfg.FadeDecay)
	}
	buf.SetBlendMode(cfg.Blend)

	r := render.NewMono(cfg.Ramp)
	r.SetMotion(motion.Build(cfg.Motion, cfg.Cols, cfg.Rows, cfg.Params.FPS, cfg.Params.WaveSpeed, cfg.Seed))

	out := bufio.NewWriter(w)
	cols, rows := float64(cfg.Cols), float64(cfg.Rows)
	for frame := 1; frame <= frames; frame++ {
		engine.Update(frame, cfg.Params.WaveSpeed)
		f := frame
		buf.Capture(
			func(x, y int) float64 { return engine.BrightnessAt(f, x, y, cols, rows) },
			func(x, y int) float64 { return engine.Hue(f, x, y) },
			func(x, y int) float64 { return engine.Saturation(f, x, y) },
		)
		hue, sat, bri := buf.CompositeHSB()
		if _, err := fmt.Fprintf(out, "%s\n\n", r.Frame(hue, sat, bri, cfg.Cols, cfg.Rows, frame)); err != nil {
			return err
		}
	}
	return out.Flush()
}
