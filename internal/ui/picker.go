package ui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/olivier-w/damplab/internal/smoothing"
)

type fnItem struct {
	name string
	desc string
}

func (i fnItem) Title() string       { return i.name }
func (i fnItem) Description() string { return i.desc }
func (i fnItem) FilterValue() string { return i.name }

// picker is the full-screen function chooser. Filtering stays off so the
// list index always equals the registry index.
type picker struct {
	active bool
	list   list.Model
}

func newPicker() picker {
	var items []list.Item
	for _, f := range smoothing.All() {
		items = append(items, fnItem{name: f.Name(), desc: fnDescription(f.Name())})
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"}).
		BorderLeftForeground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"})
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#888888"}).
		BorderLeftForeground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"})

	l := list.New(items, delegate, 60, 18)
	l.Title = "smoothing functions"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = headerStyle

	return picker{list: l}
}

func fnDescription(name string) string {
	switch name {
	case "exact":
		return "jump straight to the goal"
	case "lerp":
		return "fixed blend per frame, frame-rate dependent"
	case "damper-bad":
		return "dt-scaled blend, still frame-rate dependent"
	case "damper-exact":
		return "exponential decay tuned by half-life"
	case "damper-exact2":
		return "exponential decay tuned by rate"
	default:
		return ""
	}
}

func (m Model) openPicker() (Model, tea.Cmd) {
	m.picker.active = true
	m.picker.list.Select(m.fnIdx)
	if m.width > 0 && m.height > 2 {
		m.picker.list.SetSize(m.width, m.height-2)
	}
	return m, nil
}

func (m Model) updatePicker(msg tea.Msg) (Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			m = m.selectFunction(m.picker.list.Index())
			m.picker.active = false
			return m, nil
		case "esc", "f":
			m.picker.active = false
			return m, nil
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		}
	}

	var cmd tea.Cmd
	m.picker.list, cmd = m.picker.list.Update(msg)
	return m, cmd
}
