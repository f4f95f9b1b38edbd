package plot

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	seriesAStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#005FD7", Dark: "#5FAFFF"})

	seriesBStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#D75F00", Dark: "#FFAF5F"})

	overlapStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#8700AF", Dark: "#D7AFFF"})

	guideStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#555555"})
)

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

type cell struct {
	r    rune
	kind uint8 // 0 empty, 1/2 series, 3 overlap, 4 guide
}

// cellAt packs the 2x4 dot block of a terminal cell into its braille rune
// and picks the cell's color class. Overlap wins over either series; a cell
// holding dots of both series counts as overlap too.
func (c *Canvas) cellAt(row, col int) cell {
	var pattern uint
	var hasA, hasB, hasOverlap, hasGuide bool

	for dx := range 2 {
		for dy := range 4 {
			m := c.mask[row*4+dy][col*2+dx]
			if m == 0 {
				continue
			}
			pattern |= 1 << brailleBits[dx][dy]
			switch m {
			case SeriesA:
				hasA = true
			case SeriesB:
				hasB = true
			case 3:
				hasOverlap = true
			case 4:
				hasGuide = true
			}
		}
	}

	kind := uint8(0)
	switch {
	case hasOverlap || (hasA && hasB):
		kind = 3
	case hasA:
		kind = SeriesA
	case hasB:
		kind = SeriesB
	case hasGuide:
		kind = 4
	}

	return cell{r: rune(0x2800 + pattern), kind: kind}
}

// Render returns the canvas as rows of braille runes, colored per cell by
// what the cell holds. Runs of equally-colored cells share one style span.
func (c *Canvas) Render() string {
	var out strings.Builder

	for row := range c.rows {
		if row > 0 {
			out.WriteByte('\n')
		}

		var run []rune
		var kind uint8
		flush := func() {
			if len(run) == 0 {
				return
			}
			out.WriteString(styleFor(kind).Render(string(run)))
			run = run[:0]
		}

		for col := range c.cols {
			cl := c.cellAt(row, col)
			if cl.kind != kind {
				flush()
				kind = cl.kind
			}
			run = append(run, cl.r)
		}
		flush()
	}

	return out.String()
}

func styleFor(kind uint8) lipgloss.Style {
	switch kind {
	case SeriesA:
		return seriesAStyle
	case SeriesB:
		return seriesBStyle
	case 3:
		return overlapStyle
	case 4:
		return guideStyle
	default:
		return lipgloss.NewStyle()
	}
}
