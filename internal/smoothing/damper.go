package smoothing

import "math"

// halfLifeEpsilon keeps the half-life damper finite as HalfLife approaches
// zero.
const halfLifeEpsilon = 1e-5

// DamperBad scales the blend fraction linearly with dt, clamped to [0,1].
// That looks dt-aware but the response still changes with call rate, which
// is the mistake this variant preserves on purpose. Keep it broken.
type DamperBad struct {
	Damper float64
}

func (d *DamperBad) Name() string { return "damper-bad" }

func (d *DamperBad) Evaluate(current, target, dt float64) float64 {
	return lerp(current, target, clamp01(d.Damper*dt))
}

func (d *DamperBad) Params() []Param {
	return []Param{
		{Name: "damper", Min: 0.01, Max: 20, Step: 0.5, Value: d.Damper},
	}
}

func (d *DamperBad) SetParam(i int, v float64) {
	if i != 0 {
		panic("smoothing: damper-bad parameter index out of range")
	}
	d.Damper = v
}

// DamperExact is frame-rate-independent exponential decay parameterized by
// half-life: the time for the remaining gap to shrink by half, regardless
// of how the elapsed time is sliced into steps.
type DamperExact struct {
	HalfLife float64
}

func (d *DamperExact) Name() string { return "damper-exact" }

func (d *DamperExact) Evaluate(current, target, dt float64) float64 {
	return lerp(current, target, 1-math.Exp(-(math.Ln2*dt)/(d.HalfLife+halfLifeEpsilon)))
}

func (d *DamperExact) Params() []Param {
	return []Param{
		{Name: "half-life", Min: 0.01, Max: 1, Step: 0.05, Value: d.HalfLife},
	}
}

func (d *DamperExact) SetParam(i int, v float64) {
	if i != 0 {
		panic("smoothing: damper-exact parameter index out of range")
	}
	d.HalfLife = v
}

// DamperExact2 is the same decay law parameterized by rate, measured in
// halvings per second: the remaining gap after dt is 2^(-rate*dt) of what
// it was. Note the swapped lerp arguments; the retained fraction anchors on
// the current value rather than the blend fraction anchoring on the target.
type DamperExact2 struct {
	Rate float64
}

func (d *DamperExact2) Name() string { return "damper-exact2" }

func (d *DamperExact2) Evaluate(current, target, dt float64) float64 {
	return lerp(target, current, math.Exp2(-d.Rate*dt))
}

func (d *DamperExact2) Params() []Param {
	return []Param{
		{Name: "rate", Min: 0.01, Max: 30, Step: 0.5, Value: d.Rate},
	}
}

func (d *DamperExact2) SetParam(i int, v float64) {
	if i != 0 {
		panic("smoothing: damper-exact2 parameter index out of range")
	}
	d.Rate = v
}
