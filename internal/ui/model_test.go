package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MichailSemoglou/typewave/internal/motion"
	"github.com/MichailSemoglou/typewave/internal/render"
	"github.com/MichailSemoglou/typewave/internal/trail"
	"github.com/MichailSemoglou/typewave/internal/wave"
)

func testConfig() Config {
	return Config{
		Params:   *wave.DefaultParams(),
		Cols:     6,
		Rows:     4,
		Shape:    wave.ShapeSine,
		Blend:    trail.BlendAverage,
		MaxTrail: 8,
		Ramp:     []rune(render.RampDensity),
	}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return got
}

func TestTickAdvancesAndRenders(t *testing.T) {
	m := New(testConfig())
	m = update(t, m, tickMsg(time.Now()))

	if m.frame != 1 {
		t.Fatalf("frame = %d, want 1", m.frame)
	}
	if m.frameView == "" {
		t.Fatal("tick produced no frame view")
	}
	if got := len(strings.Split(m.frameView, "\n")); got != 4 {
		t.Fatalf("frame view has %d rows, want 4", got)
	}
}

func TestSpacePausesTicking(t *testing.T) {
	m := New(testConfig())
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if !m.paused {
		t.Fatal("space did not pause")
	}

	m = update(t, m, tickMsg(time.Now()))
	if m.frame != 0 {
		t.Fatalf("paused model advanced to frame %d", m.frame)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = update(t, m, tickMsg(time.Now()))
	if m.frame != 1 {
		t.Fatalf("resumed model at frame %d, want 1", m.frame)
	}
}

func TestWaveKeyCyclesShapes(t *testing.T) {
	m := New(testConfig())
	seen := map[wave.Shape]bool{m.shape: true}
	for range wave.Shapes() {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}})
		seen[m.shape] = true
	}
	if len(seen) != len(wave.Shapes()) {
		t.Fatalf("cycled through %d shapes, want %d", len(seen), len(wave.Shapes()))
	}
	if m.shape != wave.ShapeSine {
		t.Fatalf("full cycle ended on %v, want sine", m.shape)
	}
}

func TestBlendKeyCycles(t *testing.T) {
	m := New(testConfig())
	start := m.trailBuf.BlendModeSetting()
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})
	if m.trailBuf.BlendModeSetting() == start {
		t.Fatal("blend key did not change the blend mode")
	}
}

func TestMotionKeyInstallsStrategy(t *testing.T) {
	m := New(testConfig())
	if m.renderer.Motion() != nil {
		t.Fatal("motion installed before any key")
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}})
	if m.motionMode != motion.ModeCircular || m.renderer.Motion() == nil {
		t.Fatalf("first motion cycle gave %v", m.motionMode)
	}
}

func TestTrailLengthKeys(t *testing.T) {
	m := New(testConfig())
	n := m.trailBuf.TrailLength()
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'['}})
	if m.trailBuf.TrailLength() != n-1 {
		t.Fatalf("[ gave length %d, want %d", m.trailBuf.TrailLength(), n-1)
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{']'}})
	if m.trailBuf.TrailLength() != n {
		t.Fatalf("] gave length %d, want %d", m.trailBuf.TrailLength(), n)
	}
}

func TestWobbleToggle(t *testing.T) {
	m := New(testConfig())
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	if !m.wobble {
		t.Fatal("t did not enable the temporal wobble")
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	if m.wobble {
		t.Fatal("t did not disable the temporal wobble")
	}
}

func TestClearEmptiesTrail(t *testing.T) {
	m := New(testConfig())
	m = update(t, m, tickMsg(time.Now()))
	if m.trailBuf.Filled() == 0 {
		t.Fatal("tick did not capture a frame")
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	if m.trailBuf.Filled() != 0 {
		t.Fatal("c did not clear the trail")
	}
}

func TestQuitKey(t *testing.T) {
	m := New(testConfig())
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !next.(Model).quitting {
		t.Fatal("q did not set quitting")
	}
	if cmd == nil {
		t.Fatal("q returned no command")
	}
}

func TestPickerSelectsKeyword(t *testing.T) {
	p := NewPicker()
	next, _ := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got := next.(PickerModel)
	if !got.Done() {
		t.Fatal("enter did not finish the picker")
	}
	if r := got.Result(); r.Cancelled || r.Description != "" {
		t.Fatalf("first item should resolve to the balanced default, got %+v", r)
	}
}

func TestPickerFreeFormInput(t *testing.T) {
	p := NewPicker()
	next, _ := p.Update(tea.KeyMsg{Type: tea.KeyTab})
	p = next.(PickerModel)
	for _, r := range "calm ocean" {
		next, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		p = next.(PickerModel)
	}
	next, _ = p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	p = next.(PickerModel)

	if !p.Done() || p.Result().Description != "calm ocean" {
		t.Fatalf("picker result = %+v", p.Result())
	}
}

func TestPickerCancel(t *testing.T) {
	p := NewPicker()
	next, _ := p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if r := next.(PickerModel).Result(); !r.Cancelled {
		t.Fatalf("q gave %+v, want cancelled", r)
	}
}
