package plot

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Bounds returns joint plotting bounds over the given series, padded when
// the data is flat so a constant trace still renders mid-canvas. Empty
// series are skipped; with no data at all the bounds default to [0,1].
func Bounds(series ...[]float64) (lo, hi float64) {
	found := false
	for _, s := range series {
		if len(s) == 0 {
			continue
		}
		mn, mx := floats.Min(s), floats.Max(s)
		if !found {
			lo, hi = mn, mx
			found = true
			continue
		}
		if mn < lo {
			lo = mn
		}
		if mx > hi {
			hi = mx
		}
	}

	if !found {
		return 0, 1
	}
	if lo == hi {
		pad := 0.5
		if m := math.Abs(lo); m > 1 {
			pad = m * 0.05
		}
		lo -= pad
		hi += pad
	}
	return lo, hi
}
