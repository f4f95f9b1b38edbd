package smoothing

// Lerp blends a fixed fraction of the remaining gap on every call,
// ignoring dt entirely. The trajectory depends on how often the function
// gets called, which is the flaw Compare mode exists to expose. Keep it
// broken.
type Lerp struct {
	Factor float64
}

func (l *Lerp) Name() string { return "lerp" }

func (l *Lerp) Evaluate(current, target, dt float64) float64 {
	return lerp(current, target, l.Factor)
}

func (l *Lerp) Params() []Param {
	return []Param{
		{Name: "factor", Min: 0.01, Max: 1, Step: 0.05, Value: l.Factor},
	}
}

func (l *Lerp) SetParam(i int, v float64) {
	if i != 0 {
		panic("smoothing: lerp parameter index out of range")
	}
	l.Factor = v
}
