package plot

import "math"

// Series identifiers for Line and Plot. Internally the dot mask also uses
// 3 for points where both series land and 4 for the goal guide, mirroring
// how cells pick their color.
const (
	SeriesA uint8 = 1
	SeriesB uint8 = 2
)

// Canvas is a braille dot canvas: each terminal cell carries a 2x4 dot
// grid, so a cols x rows canvas offers cols*2 x rows*4 addressable dots.
type Canvas struct {
	cols, rows int
	mask       [][]uint8 // [dotRow][dotCol]
}

// NewCanvas creates a canvas of cols x rows terminal cells. Panics on
// non-positive dimensions.
func NewCanvas(cols, rows int) *Canvas {
	if cols < 1 || rows < 1 {
		panic("plot: canvas dimensions must be positive")
	}
	c := &Canvas{cols: cols, rows: rows}
	c.mask = make([][]uint8, rows*4)
	for r := range c.mask {
		c.mask[r] = make([]uint8, cols*2)
	}
	return c
}

// DotWidth returns the canvas width in dots.
func (c *Canvas) DotWidth() int { return c.cols * 2 }

// DotHeight returns the canvas height in dots.
func (c *Canvas) DotHeight() int { return c.rows * 4 }

// Clear erases every dot.
func (c *Canvas) Clear() {
	for r := range c.mask {
		for x := range c.mask[r] {
			c.mask[r][x] = 0
		}
	}
}

// Line draws a dot line from (x0,y0) to (x1,y1) in dot coordinates.
// Points outside the canvas are skipped. Where the line crosses dots of
// the other series, the dot becomes an overlap point.
func (c *Canvas) Line(x0, y0, x1, y1 int, series uint8) {
	maxY := len(c.mask)
	maxX := len(c.mask[0])

	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy

	for {
		if y0 >= 0 && y0 < maxY && x0 >= 0 && x0 < maxX {
			cur := c.mask[y0][x0]
			switch {
			case cur == 0 || cur == 4 || cur == series:
				c.mask[y0][x0] = series
			case cur != series:
				c.mask[y0][x0] = 3
			}
		}

		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DottedRow marks every nth dot of the given dot row as a guide line.
// Guide dots never displace series dots and rows off the canvas are
// ignored, so the goal guide can sit outside the plotted range.
func (c *Canvas) DottedRow(dotY, every int) {
	if dotY < 0 || dotY >= len(c.mask) {
		return
	}
	if every < 1 {
		every = 1
	}
	for x := 0; x < len(c.mask[dotY]); x += every {
		if c.mask[dotY][x] == 0 {
			c.mask[dotY][x] = 4
		}
	}
}

// Plot draws values as a connected polyline, spread across the full dot
// width with the first value at the left edge. The value axis points up
// the screen: min lands on the bottom dot row, max on the top. A single
// value plots as a point.
func (c *Canvas) Plot(values []float64, min, max float64, series uint8) {
	if len(values) == 0 {
		return
	}

	dw := c.DotWidth()
	if len(values) == 1 {
		y := c.rowFor(values[0], min, max)
		c.Line(0, y, 0, y, series)
		return
	}

	prevX := 0
	prevY := c.rowFor(values[0], min, max)
	for i := 1; i < len(values); i++ {
		x := i * (dw - 1) / (len(values) - 1)
		y := c.rowFor(values[i], min, max)
		c.Line(prevX, prevY, x, y, series)
		prevX, prevY = x, y
	}
}

// RowFor maps a value to its dot row under the same axis Plot uses.
func (c *Canvas) RowFor(v, min, max float64) int {
	return c.rowFor(v, min, max)
}

func (c *Canvas) rowFor(v, min, max float64) int {
	dh := c.DotHeight()
	span := max - min
	if span <= 0 {
		return dh / 2
	}
	norm := (v - min) / span
	row := int(math.Round((1 - norm) * float64(dh-1)))
	if row < 0 {
		row = 0
	}
	if row >= dh {
		row = dh - 1
	}
	return row
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
