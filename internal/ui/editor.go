package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivier-w/damplab/internal/util"
)

// editor is the inline numeric entry for the selected slot. While open it
// replaces that slot's slider in the panel; the rest of the view keeps
// rendering around it.
type editor struct {
	active bool
	input  textinput.Model
	slot   int
}

func newEditor() editor {
	ti := textinput.New()
	ti.CharLimit = 12
	ti.Width = 12
	ti.Prompt = ""
	return editor{input: ti}
}

func (m Model) openEditor() (Model, tea.Cmd) {
	slots := m.slots()
	if m.cursor < 0 || m.cursor >= len(slots) {
		return m, nil
	}
	m.editor.active = true
	m.editor.slot = m.cursor
	m.editor.input.SetValue(util.FormatValue(slots[m.cursor].value))
	m.editor.input.CursorEnd()
	m.editor.input.Focus()
	return m, textinput.Blink
}

func (m Model) closeEditor() Model {
	m.editor.active = false
	m.editor.input.Blur()
	m.editor.input.Reset()
	return m
}

func (m Model) updateEditor(msg tea.Msg) (Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			v, err := strconv.ParseFloat(strings.TrimSpace(m.editor.input.Value()), 64)
			if err != nil {
				// Not a number; leave the editor open for another try.
				return m, nil
			}
			m = m.setSlot(m.editor.slot, v)
			return m.closeEditor(), nil
		case "esc":
			return m.closeEditor(), nil
		case "ctrl+c":
			m.quitting = true
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		}
	}

	var cmd tea.Cmd
	m.editor.input, cmd = m.editor.input.Update(msg)
	return m, cmd
}
