package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MichailSemoglou/typewave/internal/ui"
)

type startupPhase uint8

const (
	phasePick startupPhase = iota
	phaseOpening
)

type startupResolvedMsg struct {
	model ui.Model
	err   error
}

// startupModel runs the vibe picker, then opens the track (if any) behind
// a spinner before handing control to the animation model.
type startupModel struct {
	picker  ui.PickerModel
	phase   startupPhase
	spinner spinner.Model
	opts    options
	errMsg  string
	width   int
	height  int
}

func newStartupModel(opts options) startupModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"})

	return startupModel{
		picker:  ui.NewPicker(),
		spinner: s,
		opts:    opts,
	}
}

func (m startupModel) Init() tea.Cmd {
	return tea.Batch(m.picker.Init(), m.spinner.Tick)
}

func (m startupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.phase == phaseOpening {
			return m, cmd
		}
		return m, nil

	case startupResolvedMsg:
		if msg.err != nil {
			m.phase = phasePick
			m.errMsg = msg.err.Error()
			return m, nil
		}
		cmds := []tea.Cmd{msg.model.Init()}
		if m.width > 0 || m.height > 0 {
			w, h := m.width, m.height
			cmds = append(cmds, func() tea.Msg {
				return tea.WindowSizeMsg{Width: w, Height: h}
			})
		}
		return msg.model, tea.Batch(cmds...)

	case tea.KeyMsg:
		if m.phase == phaseOpening {
			switch msg.String() {
			case "q", "esc", "ctrl+c":
				return m, tea.Quit
			}
			return m, nil
		}
	}

	if m.phase == phasePick {
		next, cmd := m.picker.Update(msg)
		picker, ok := next.(ui.PickerModel)
		if !ok {
			return m, cmd
		}
		m.picker = picker
		if !picker.Done() {
			return m, cmd
		}
		result := picker.Result()
		if result.Cancelled {
			return m, tea.Quit
		}
		m.phase = phaseOpening
		m.errMsg = ""
		return m, tea.Batch(m.spinner.Tick, openCmd(result.Description, m.opts))
	}

	return m, nil
}

func openCmd(desc string, opts options) tea.Cmd {
	return func() tea.Msg {
		cfg, err := buildConfig(desc, opts)
		if err != nil {
			return startupResolvedMsg{err: err}
		}
		if opts.audioPath != "" {
			if cfg, err = openTrack(cfg, opts.audioPath); err != nil {
				return startupResolvedMsg{err: err}
			}
		}
		return startupResolvedMsg{model: ui.New(cfg)}
	}
}

func (m startupModel) View() string {
	if m.phase == phaseOpening {
		var b strings.Builder
		b.WriteString("\n  ")
		b.WriteString(startupHeaderStyle.Render("typewave"))
		b.WriteString("\n\n  ")
		b.WriteString(m.spinner.View())
		b.WriteString(" Opening...\n\n  ")
		b.WriteString(startupHelpStyle.Render("q quit"))
		b.WriteString("\n")
		return b.String()
	}

	view := m.picker.View()
	if m.errMsg != "" {
		view = "\n  " + startupErrorStyle.Render(m.errMsg) + "\n" + view
	}
	return view
}

var (
	startupHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"})
	startupHelpStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"})
	startupErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#A00000", Dark: "#FF8080"})
)
