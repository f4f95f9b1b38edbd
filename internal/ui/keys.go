package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivier-w/damplab/internal/simulation"
)

func isQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return true
	}
	return false
}

func helpText(mode simulation.Mode, paused bool) string {
	s := "tab param  ↑/↓ adjust  enter edit  ←/→ function  f pick"
	if mode == simulation.ModeLive {
		if paused {
			s += "  space resume"
		} else {
			s += "  space pause"
		}
		s += "  click goal"
	}
	s += "  m mode  r reset  q quit"
	return s
}
