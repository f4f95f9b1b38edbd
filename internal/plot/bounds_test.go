package plot

import (
	"math"
	"testing"
)

func TestBoundsSpansAllSeries(t *testing.T) {
	lo, hi := Bounds([]float64{0, 5, 2}, []float64{-2, 3})
	if lo != -2 || hi != 5 {
		t.Fatalf("expected [-2,5], got [%v,%v]", lo, hi)
	}
}

func TestBoundsSkipsEmptySeries(t *testing.T) {
	lo, hi := Bounds(nil, []float64{1, 4})
	if lo != 1 || hi != 4 {
		t.Fatalf("expected [1,4], got [%v,%v]", lo, hi)
	}
}

func TestBoundsDefaultWithNoData(t *testing.T) {
	lo, hi := Bounds()
	if lo != 0 || hi != 1 {
		t.Fatalf("expected [0,1], got [%v,%v]", lo, hi)
	}
}

func TestBoundsPadsFlatData(t *testing.T) {
	lo, hi := Bounds([]float64{0, 0, 0})
	if lo != -0.5 || hi != 0.5 {
		t.Fatalf("expected [-0.5,0.5], got [%v,%v]", lo, hi)
	}

	lo, hi = Bounds([]float64{2, 2})
	if math.Abs(lo-1.9) > 1e-12 || math.Abs(hi-2.1) > 1e-12 {
		t.Fatalf("expected proportional padding around 2, got [%v,%v]", lo, hi)
	}
}
