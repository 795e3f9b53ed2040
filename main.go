package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MichailSemoglou/typewave/internal/audio"
	"github.com/MichailSemoglou/typewave/internal/motion"
	"github.com/MichailSemoglou/typewave/internal/render"
	"github.com/MichailSemoglou/typewave/internal/trail"
	"github.com/MichailSemoglou/typewave/internal/ui"
	"github.com/MichailSemoglou/typewave/internal/vibe"
	"github.com/MichailSemoglou/typewave/internal/wave"
)

type options struct {
	cols, rows int
	waveName   string
	seed       int64
	blendName  string
	trailLen   int
	maxTrail   int
	decay      float64
	vibeDesc   string
	vibeSet    bool
	glyphs     string
	motionName string
	fps        int
	speed      float64
	duration   int
	headless   bool
	frames     int
	audioPath  string
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("typewave", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.IntVar(&o.cols, "cols", 0, "grid columns (0 = from vibe)")
	fs.IntVar(&o.rows, "rows", 0, "grid rows (0 = from vibe)")
	fs.StringVar(&o.waveName, "wave", "sine", "wave shape: sine, tangent, square, triangle, sawtooth, noise")
	fs.Int64Var(&o.seed, "seed", 42, "noise seed")
	fs.StringVar(&o.blendName, "blend", "average", "trail blend mode: add, max, average")
	fs.IntVar(&o.trailLen, "trail", 0, "trail length in frames (0 = full buffer)")
	fs.IntVar(&o.maxTrail, "max-trail", 12, "trail buffer capacity in frames")
	fs.Float64Var(&o.decay, "decay", 0.7, "per-frame trail fade decay (0-1)")
	fs.StringVar(&o.vibeDesc, "vibe", "", `vibe description, e.g. "melancholic rain at night"`)
	fs.StringVar(&o.glyphs, "glyphs", "", "custom glyph ramp, darkest to brightest")
	fs.StringVar(&o.motionName, "motion", "none", "glyph motion: none, circular, drift, spring")
	fs.IntVar(&o.fps, "fps", 0, "target framerate (0 = default)")
	fs.Float64Var(&o.speed, "speed", 0, "wave speed override")
	fs.IntVar(&o.duration, "duration", 0, "headless run length in seconds (0 = default)")
	fs.BoolVar(&o.headless, "headless", false, "render frames to stdout without a TUI")
	fs.IntVar(&o.frames, "frames", 0, "headless frame count override")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: typewave [flags] [audio file]\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "vibe" {
			o.vibeSet = true
		}
	})

	if fs.NArg() > 1 {
		return o, fmt.Errorf("expected at most one audio file, got %d arguments", fs.NArg())
	}
	o.audioPath = fs.Arg(0)
	return o, nil
}

// buildConfig resolves the vibe description and layers explicit flags on
// top of it.
func buildConfig(desc string, o options) (ui.Config, error) {
	settings, matched := vibe.Resolve(desc)

	params := wave.DefaultParams()
	settings.Apply(params)
	if o.speed > 0 {
		params.WaveSpeed = o.speed
	}
	if o.fps > 0 {
		params.FPS = o.fps
	}
	if o.duration > 0 {
		params.DurationSeconds = o.duration
	}
	if err := params.Validate(); err != nil {
		return ui.Config{}, err
	}

	cols, rows := settings.Cols, settings.Rows
	if o.cols > 0 {
		cols = o.cols
	}
	if o.rows > 0 {
		rows = o.rows
	}

	shape, err := wave.ParseShape(o.waveName)
	if err != nil {
		return ui.Config{}, err
	}
	blend, err := trail.ParseBlendMode(o.blendName)
	if err != nil {
		return ui.Config{}, err
	}
	mode, err := motion.ParseMode(o.motionName)
	if err != nil {
		return ui.Config{}, err
	}
	ramp := []rune(render.RampDensity)
	if o.glyphs != "" {
		if ramp, err = render.ParseRamp(o.glyphs); err != nil {
			return ui.Config{}, err
		}
	}

	return ui.Config{
		Params:      *params,
		Cols:        cols,
		Rows:        rows,
		Shape:       shape,
		Seed:        o.seed,
		Blend:       blend,
		TrailLength: o.trailLen,
		FadeDecay:   o.decay,
		MaxTrail:    o.maxTrail,
		Ramp:        ramp,
		Motion:      mode,
		Vibe:        strings.Join(matched, " "),
	}, nil
}

// openTrack validates the path, starts playback and attaches the player
// and its metadata to cfg.
func openTrack(cfg ui.Config, path string) (ui.Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return cfg, err
	}
	if info.IsDir() {
		return cfg, fmt.Errorf("%s is a directory", path)
	}
	ext := strings.ToLower(filepath.Ext(path))
	supported := false
	for _, e := range audio.Extensions() {
		if e == ext {
			supported = true
			break
		}
	}
	if !supported {
		return cfg, fmt.Errorf("unsupported format %s (supported: %s)", ext, strings.Join(audio.Extensions(), ", "))
	}

	player, err := audio.New(path)
	if err != nil {
		return cfg, fmt.Errorf("opening %s: %w", path, err)
	}
	cfg.Player = player
	cfg.Meta = audio.ReadMetadata(path)
	return cfg, nil
}

func main() {
	opts, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if opts.headless {
		cfg, err := buildConfig(opts.vibeDesc, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := runHeadless(os.Stdout, cfg, headlessFrames(opts, cfg)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Without an explicit -vibe the session starts in the picker.
	var model tea.Model
	if opts.vibeSet {
		cfg, err := buildConfig(opts.vibeDesc, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if opts.audioPath != "" {
			if cfg, err = openTrack(cfg, opts.audioPath); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			defer cfg.Player.Close()
		}
		model = ui.New(cfg)
	} else {
		model = newStartupModel(opts)
	}

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
