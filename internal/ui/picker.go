package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MichailSemoglou/typewave/internal/vibe"
)

// vibeItem is one selectable preset keyword.
type vibeItem struct {
	name string
	hint string
}

func (i vibeItem) Title() string       { return i.name }
func (i vibeItem) Description() string { return i.hint }
func (i vibeItem) FilterValue() string { return i.name }

var vibeHints = map[string]string{
	"calm":       "slow waves, muted greys, sparse grid",
	"zen":        "slow waves, muted greys, sparse grid",
	"energy":     "fast neon waves, dense grid",
	"rave":       "very fast, magenta-cyan, dense grid",
	"techno":     "fast, cold neon, dense grid",
	"melancholy": "slow greyscale drizzle",
	"rain":       "slow greyscale drizzle",
	"chaos":      "extreme speed, full spectrum",
	"glitch":     "jittery, harsh color bands",
	"ocean":      "rolling horizontal waves",
	"flow":       "rolling horizontal waves",
	"minimal":    "tiny grid, quiet motion",
	"dark":       "near-black, slow",
	"night":      "near-black, slow",
	"bright":     "high brightness, medium pace",
}

// PickerResult is what the picker resolved to.
type PickerResult struct {
	Description string
	Cancelled   bool
}

// PickerModel lets the user choose a preset keyword or type a free-form
// description before the animation starts.
type PickerModel struct {
	list   list.Model
	input  textinput.Model
	typing bool
	done   bool
	result PickerResult
}

// NewPicker builds the vibe picker.
func NewPicker() PickerModel {
	keywords := vibe.Keywords()
	items := make([]list.Item, 0, len(keywords)+1)
	items = append(items, vibeItem{name: "balanced", hint: "the neutral default"})
	for _, k := range keywords {
		hint := vibeHints[k]
		if hint == "" {
			hint = "preset"
		}
		items = append(items, vibeItem{name: k, hint: hint})
	}

	l := list.New(items, list.NewDefaultDelegate(), 40, 20)
	l.Title = "pick a vibe"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)

	ti := textinput.New()
	ti.Placeholder = "melancholic rain at night"
	ti.CharLimit = 80
	ti.Width = 40

	return PickerModel{list: l, input: ti}
}

func (m PickerModel) Init() tea.Cmd { return nil }

func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case tea.KeyMsg:
		if m.typing {
			switch msg.String() {
			case "enter":
				m.done = true
				m.result = PickerResult{Description: m.input.Value()}
				return m, nil
			case "esc":
				m.typing = false
				m.input.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "tab":
			m.typing = true
			return m, m.input.Focus()
		case "enter":
			if item, ok := m.list.SelectedItem().(vibeItem); ok {
				m.done = true
				desc := item.name
				if desc == "balanced" {
					desc = ""
				}
				m.result = PickerResult{Description: desc}
			}
			return m, nil
		case "q", "esc", "ctrl+c":
			// Let esc fall through to the list while filtering.
			if msg.String() == "esc" && m.list.FilterState() == list.Filtering {
				break
			}
			m.done = true
			m.result = PickerResult{Cancelled: true}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m PickerModel) View() string {
	if m.done {
		return ""
	}
	if m.typing {
		return "\n  " + headerStyle.Render("typewave") + "\n\n" +
			"  describe the vibe:\n\n  " + m.input.View() + "\n\n  " +
			helpStyle.Render("enter start  esc back") + "\n"
	}
	return "\n" + m.list.View() + "\n  " +
		helpStyle.Render("enter start  tab describe  q quit") + "\n"
}

// Done reports whether a choice has been made.
func (m PickerModel) Done() bool { return m.done }

// Result returns the resolved choice once Done.
func (m PickerModel) Result() PickerResult { return m.result }
