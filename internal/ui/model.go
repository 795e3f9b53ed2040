package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MichailSemoglou/typewave/internal/audio"
	"github.com/MichailSemoglou/typewave/internal/motion"
	"github.com/MichailSemoglou/typewave/internal/render"
	"github.com/MichailSemoglou/typewave/internal/trail"
	"github.com/MichailSemoglou/typewave/internal/wave"
)

// Temporal wobble applied when the user toggles it on.
const (
	wobbleAmplitude = 2.0
	wobbleFrequency = 0.3
)

// Config carries everything the animation view needs. Player is nil when
// running without a track.
type Config struct {
	Params      wave.Params
	Cols, Rows  int
	Shape       wave.Shape
	Seed        int64
	Blend       trail.BlendMode
	TrailLength int
	FadeDecay   float64
	MaxTrail    int
	Ramp        []rune
	Motion      motion.Mode
	Vibe        string
	Player      *audio.Player
	Meta        audio.Metadata
}

// Model is the Bubbletea model for the running animation.
type Model struct {
	cfg      Config
	engine   *wave.Engine
	trailBuf *trail.Buffer
	renderer *render.Renderer

	shape      wave.Shape
	motionMode motion.Mode
	rampIdx    int

	frame     int
	frameView string
	lastTick  time.Time
	level     float64
	levelBar  progress.Model
	wobble    bool
	fpsAdapt  bool
	audioLen  bool

	paused   bool
	quitting bool
	width    int
}

// New builds the animation model. cfg.Params should already be validated.
func New(cfg Config) Model {
	if cfg.MaxTrail < 1 {
		cfg.MaxTrail = 12
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

	r := render.New(cfg.Ramp)
	r.SetMotion(motionStrategy(cfg))

	bar := progress.New(
		progress.WithScaledGradient("#3CE074", "#F26056"),
		progress.WithoutPercentage(),
	)
	bar.Width = 20

	m := Model{
		cfg:        cfg,
		engine:     engine,
		trailBuf:   buf,
		renderer:   r,
		shape:      cfg.Shape,
		motionMode: cfg.Motion,
		rampIdx:    -1,
		levelBar:   bar,
	}
	if cfg.Player != nil {
		m.audioLen = true
		buf.SetAudioReactive(2, cfg.MaxTrail)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.cfg.Params.FPS)}
	if m.cfg.Player != nil {
		cmds = append(cmds, checkDone(m.cfg.Player))
	}
	return tea.Batch(cmds...)
}

func checkDone(p *audio.Player) tea.Cmd {
	return func() tea.Msg {
		<-p.Done()
		return playbackEndedMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		if !m.paused {
			m.step(time.Time(msg))
		}
		return m, tickCmd(m.cfg.Params.FPS)

	case playbackEndedMsg:
		m.quitting = true
		m.cfg.Player.Close()
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}
	return m, nil
}

// step advances the animation one frame: measure the real framerate, feed
// the reactive inputs, capture the new field and composite the trail.
func (m *Model) step(now time.Time) {
	if !m.lastTick.IsZero() {
		if dt := now.Sub(m.lastTick).Seconds(); dt > 0 {
			m.trailBuf.FeedFramerate(1 / dt)
		}
	}
	m.lastTick = now

	if p := m.cfg.Player; p != nil {
		m.level = p.Level()
		m.trailBuf.FeedAudioLevel(m.level)
	}

	m.frame++
	frame := m.frame
	m.engine.Update(frame, m.cfg.Params.WaveSpeed)
	cols, rows := float64(m.cfg.Cols), float64(m.cfg.Rows)
	m.trailBuf.Capture(
		func(x, y int) float64 { return m.engine.BrightnessAt(frame, x, y, cols, rows) },
		func(x, y int) float64 { return m.engine.Hue(frame, x, y) },
		func(x, y int) float64 { return m.engine.Saturation(frame, x, y) },
	)

	hue, sat, bri := m.trailBuf.CompositeHSB()
	m.frameView = m.renderer.Frame(hue, sat, bri, m.cfg.Cols, m.cfg.Rows, frame)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if isQuit(msg) {
		m.quitting = true
		if m.cfg.Player != nil {
			m.cfg.Player.Close()
		}
		return m, tea.Quit
	}

	switch msg.String() {
	case " ":
		m.paused = !m.paused
		m.lastTick = time.Time{}
		if p := m.cfg.Player; p != nil && p.Paused() != m.paused {
			p.TogglePause()
		}

	case "w":
		m.shape = nextShape(m.shape)
		fn := wave.FunctionFor(m.shape, m.cfg.Seed)
		m.engine.SetFunction(&fn)

	case "b":
		m.trailBuf.SetBlendMode(nextBlend(m.trailBuf.BlendModeSetting()))

	case "m":
		m.motionMode = nextMotion(m.motionMode)
		cfg := m.cfg
		cfg.Motion = m.motionMode
		m.renderer.SetMotion(motionStrategy(cfg))

	case "g":
		m.rampIdx = (m.rampIdx + 1) % len(builtinRamps)
		m.renderer.SetRamp([]rune(builtinRamps[m.rampIdx]))

	case "[":
		m.trailBuf.SetTrailLength(m.trailBuf.TrailLength() - 1)
	case "]":
		m.trailBuf.SetTrailLength(m.trailBuf.TrailLength() + 1)

	case "-":
		m.trailBuf.SetFadeDecay(m.trailBuf.FadeDecay() - 0.05)
	case "=", "+":
		m.trailBuf.SetFadeDecay(m.trailBuf.FadeDecay() + 0.05)

	case "t":
		m.wobble = !m.wobble
		if m.wobble {
			m.trailBuf.SetTemporalWave(wobbleAmplitude, wobbleFrequency)
		} else {
			m.trailBuf.DisableTemporalWave()
		}

	case "f":
		m.fpsAdapt = !m.fpsAdapt
		m.trailBuf.SetFramerateReactive(m.fpsAdapt, float64(m.cfg.Params.FPS))

	case "a":
		if m.cfg.Player != nil {
			m.audioLen = !m.audioLen
			if m.audioLen {
				m.trailBuf.SetAudioReactive(2, m.cfg.MaxTrail)
			} else {
				m.trailBuf.DisableAudioReactive()
			}
		}

	case "c":
		m.trailBuf.Clear()

	case "up":
		if m.cfg.Player != nil {
			m.cfg.Player.AdjustVolume(0.05)
		}
	case "down":
		if m.cfg.Player != nil {
			m.cfg.Player.AdjustVolume(-0.05)
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(headerStyle.Render("typewave"))
	if m.cfg.Vibe != "" {
		b.WriteString("  ")
		b.WriteString(artistStyle.Render(m.cfg.Vibe))
	}
	b.WriteString("\n")

	if m.cfg.Player != nil {
		b.WriteString("  ")
		b.WriteString(titleStyle.Render(m.cfg.Meta.Title))
		if m.cfg.Meta.Artist != "" {
			b.WriteString("  ")
			b.WriteString(artistStyle.Render(m.cfg.Meta.Artist))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.frameView != "" {
		for _, line := range strings.Split(m.frameView, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	b.WriteString("\n  ")
	b.WriteString(statusStyle.Render(m.statusLine()))
	b.WriteString("\n")

	if m.cfg.Player != nil {
		b.WriteString("  ")
		b.WriteString(m.levelBar.ViewAs(m.level))
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(helpStyle.Render(helpText(m.cfg.Player != nil)))
	b.WriteString("\n")
	return b.String()
}

func (m Model) statusLine() string {
	s := fmt.Sprintf("%s  %s  motion:%s  trail %d/%d  decay %.2f",
		m.shape, m.trailBuf.BlendModeSetting(), m.motionMode,
		m.trailBuf.EffectiveTrailLength(), m.trailBuf.MaxLength(),
		m.trailBuf.FadeDecay())
	if m.wobble {
		s += "  wobble"
	}
	if m.fpsAdapt {
		s += "  fps-adapt"
	}
	if m.paused {
		s += "  paused"
	}
	return s
}

var builtinRamps = []string{render.RampDensity, render.RampBlocks, render.RampDots}

func nextShape(s wave.Shape) wave.Shape {
	shapes := wave.Shapes()
	for i, c := range shapes {
		if c == s {
			return shapes[(i+1)%len(shapes)]
		}
	}
	return shapes[0]
}

func nextBlend(b trail.BlendMode) trail.BlendMode {
	switch b {
	case trail.BlendAdd:
		return trail.BlendMax
	case trail.BlendMax:
		return trail.BlendAverage
	default:
		return trail.BlendAdd
	}
}

func nextMotion(mo motion.Mode) motion.Mode {
	modes := motion.Modes()
	for i, c := range modes {
		if c == mo {
			return modes[(i+1)%len(modes)]
		}
	}
	return modes[0]
}

func motionStrategy(cfg Config) motion.Strategy {
	return motion.Build(cfg.Motion, cfg.Cols, cfg.Rows, cfg.Params.FPS, cfg.Params.WaveSpeed, cfg.Seed)
}
