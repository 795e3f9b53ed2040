package ui

import tea "github.com/charmbracelet/bubbletea"

func isQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return true
	}
	return false
}

func helpText(hasAudio bool) string {
	s := "space pause  w wave  b blend  m motion  g glyphs  [/] trail  -/= decay  t wobble  f fps-adapt  c clear"
	if hasAudio {
		s += "  a audio-trail  ↑/↓ volume"
	}
	s += "  q quit"
	return s
}
