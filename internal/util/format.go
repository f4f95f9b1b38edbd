package util

import (
	"strconv"
	"strings"
)

// FormatValue renders a slider value compactly: two decimals with trailing
// zeros trimmed, so 60 stays "60" and 0.5 stays "0.5".
func FormatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s
}
