package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/olivier-w/damplab/internal/plot"
	"github.com/olivier-w/damplab/internal/simulation"
	"github.com/olivier-w/damplab/internal/util"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.picker.active {
		return "\n" + m.picker.list.View()
	}

	header := headerStyle.Render("damplab")
	mode := statusStyle.Render(m.sim.Mode.String())
	status := ""
	if m.sim.Mode == simulation.ModeLive && m.paused {
		status = "  " + statusStyle.Render("❚❚ paused")
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, "  ", m.renderCanvas(), "  ", m.renderPanel())

	s := "\n"
	s += "  " + header + "  " + mode + status + "\n"
	s += "\n"
	s += body + "\n"
	s += "\n"
	s += "  " + helpStyle.Render(helpText(m.sim.Mode, m.paused)) + "\n"
	return s
}

// renderCanvas draws the active mode onto a fresh braille canvas. Live plots
// the history ring against the fixed [0,1] range with a dotted guide at the
// goal; Compare reruns both batch simulations and plots them against their
// shared value range.
func (m Model) renderCanvas() string {
	c := plot.NewCanvas(m.canvasCols, m.canvasRows)

	if m.sim.Mode == simulation.ModeCompare {
		st := m.sim.Compare
		first := simulation.Run(m.fn, compareStart, compareGoal, st.SimTime, st.FirstRate)
		second := simulation.Run(m.fn, compareStart, compareGoal, st.SimTime, st.SecondRate)
		lo, hi := plot.Bounds(first, second)
		c.DottedRow(c.RowFor(compareGoal, lo, hi), 2)
		c.Plot(first, lo, hi, plot.SeriesA)
		c.Plot(second, lo, hi, plot.SeriesB)
	} else {
		live := m.sim.Live
		c.DottedRow(c.RowFor(live.Goal, 0, 1), 2)
		c.Plot(live.History.Values(), 0, 1, plot.SeriesA)
	}

	return c.Render()
}

func (m Model) renderPanel() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.fn.Name()) + "\n\n")

	for i, s := range m.slots() {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("▸ ")
		}

		if m.editor.active && i == m.editor.slot {
			b.WriteString(fmt.Sprintf("%s%s %s\n", cursor,
				labelStyle.Render(fmt.Sprintf("%-10s", s.name)),
				m.editor.input.View()))
			continue
		}

		b.WriteString(fmt.Sprintf("%s%s %s %s\n", cursor,
			labelStyle.Render(fmt.Sprintf("%-10s", s.name)),
			renderSlider(s.value, s.min, s.max, sliderWidth),
			valueStyle.Render(util.FormatValue(s.value))))
	}

	b.WriteString("\n")

	if m.sim.Mode == simulation.ModeCompare {
		b.WriteString(legendAStyle.Render("━ fps a") + "  " + legendBStyle.Render("━ fps b") + "\n")
	} else {
		b.WriteString(fmt.Sprintf("%s %s   %s %s\n",
			labelStyle.Render("value"), valueStyle.Render(util.FormatValue(m.sim.Live.Value)),
			labelStyle.Render("goal"), valueStyle.Render(util.FormatValue(m.sim.Live.Goal))))
	}

	b.WriteString(fmt.Sprintf("%s %s\n",
		labelStyle.Render("fps"), valueStyle.Render(util.FormatValue(m.fps.value()))))

	if len(m.frameMS) >= 2 {
		graph := asciigraph.Plot(m.frameMS,
			asciigraph.Height(4),
			asciigraph.Width(panelWidth-10),
			asciigraph.Caption("frame ms"))
		b.WriteString("\n" + helpStyle.Render(graph) + "\n")
	}

	return b.String()
}
