package smoothing

// Exact snaps straight to the target every call. It is the degenerate
// baseline: useful for sanity-checking the renderers and as the "instant"
// reference in Compare mode.
type Exact struct{}

func (Exact) Name() string { return "exact" }

func (Exact) Evaluate(current, target, dt float64) float64 {
	return target
}

func (Exact) Params() []Param { return nil }

func (Exact) SetParam(i int, v float64) {
	panic("smoothing: exact has no parameters")
}
