package ui

import "strings"

// renderSlider draws a horizontal slider of exactly width runes with a knob
// at the value's position within [min, max].
func renderSlider(value, min, max float64, width int) string {
	if width < 4 {
		width = 4
	}

	var ratio float64
	if max > min {
		ratio = (value - min) / (max - min)
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	filled := int(ratio * float64(width-1))

	return strings.Repeat("━", filled) + "●" + strings.Repeat("─", width-1-filled)
}
