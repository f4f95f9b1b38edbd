package smoothing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAll_DefaultsMatchRegistryOrder(t *testing.T) {
	fns := All()

	assert.Len(t, fns, 5)
	assert.Equal(t, []string{"exact", "lerp", "damper-bad", "damper-exact", "damper-exact2"}, Names())

	assert.Empty(t, fns[0].Params(), "exact carries no parameters")
	assert.Equal(t, 0.5, fns[1].Params()[0].Value)
	assert.Equal(t, 5.0, fns[2].Params()[0].Value)
	assert.Equal(t, 1.0, fns[3].Params()[0].Value)
	assert.Equal(t, 1.0, fns[4].Params()[0].Value)
}

func TestAll_ReturnsFreshInstances(t *testing.T) {
	first := All()[1]
	first.SetParam(0, 0.9)

	second := All()[1]
	assert.Equal(t, 0.5, second.Params()[0].Value, "edits must not leak into later registry calls")
}

func TestEvaluate_FixedPointHoldsForEveryVariant(t *testing.T) {
	for _, f := range All() {
		for _, v := range []float64{-3.5, 0, 1, 42} {
			for _, dt := range []float64{0, 0.001, 1, 1000} {
				got := f.Evaluate(v, v, dt)
				assert.InDelta(t, v, got, 1e-12, "%s must hold a settled value (v=%v dt=%v)", f.Name(), v, dt)
			}
		}
	}
}

func TestExact_AlwaysReturnsTarget(t *testing.T) {
	e := Exact{}
	for _, dt := range []float64{0, 1.0 / 60, 3} {
		assert.Equal(t, 7.25, e.Evaluate(-100, 7.25, dt))
		assert.Equal(t, -2.0, e.Evaluate(55, -2, dt))
	}
}

func TestLerp_IgnoresDt(t *testing.T) {
	l := &Lerp{Factor: 0.25}

	fast := l.Evaluate(0, 1, 0.001)
	slow := l.Evaluate(0, 1, 1000)
	assert.Equal(t, fast, slow, "lerp must not respond to dt")
	assert.InDelta(t, 0.25, fast, 1e-12)

	// Moving with zero elapsed time is the flaw this variant preserves.
	assert.InDelta(t, 0.25, l.Evaluate(0, 1, 0), 1e-12)
}

func TestDamperBad_BlendClampsAtLargeDt(t *testing.T) {
	d := &DamperBad{Damper: 5}

	assert.Equal(t, 1.0, d.Evaluate(0, 1, 10), "damper*dt past 1 must clamp, not overshoot")
	assert.InDelta(t, 5.0/60, d.Evaluate(0, 1, 1.0/60), 1e-12, "small dt moves proportionally")
}

func TestDampers_ZeroDtIsNoOp(t *testing.T) {
	for _, f := range []Function{&DamperBad{Damper: 5}, &DamperExact{HalfLife: 0.5}, &DamperExact2{Rate: 2}} {
		assert.Equal(t, 3.0, f.Evaluate(3, 9, 0), "%s must hold position at dt=0", f.Name())
	}
}

func TestDamperExact_GapHalvesAfterOneHalfLife(t *testing.T) {
	d := &DamperExact{HalfLife: 0.5}

	value, target := 0.0, 1.0
	dt := 0.5 / 30
	for range 30 {
		value = d.Evaluate(value, target, dt)
	}

	assert.InDelta(t, 0.5, target-value, 1e-4, "gap should halve after one half-life")
}

func TestDamperExact2_GapHalvesAfterRateReciprocal(t *testing.T) {
	d := &DamperExact2{Rate: 2}

	// Rate 2 halves the gap every 0.5 seconds.
	value, target := 0.0, 1.0
	dt := 0.5 / 25
	for range 25 {
		value = d.Evaluate(value, target, dt)
	}

	assert.InDelta(t, 0.5, target-value, 1e-9)
}

func TestDampers_MonotonicConvergence(t *testing.T) {
	cases := []struct {
		name string
		make func() Function
	}{
		{"damper-exact", func() Function { return &DamperExact{HalfLife: 0.25} }},
		{"damper-exact2", func() Function { return &DamperExact2{Rate: 4} }},
	}

	for _, tc := range cases {
		// Rising toward the target.
		f := tc.make()
		value, target := 0.0, 1.0
		prev := value
		for i := range 600 {
			value = f.Evaluate(value, target, 1.0/60)
			assert.GreaterOrEqual(t, value, prev, "%s must not retreat at step %d", tc.name, i)
			assert.LessOrEqual(t, value, target, "%s must not overshoot at step %d", tc.name, i)
			prev = value
		}
		assert.InDelta(t, target, value, 1e-9, "%s should converge from below", tc.name)

		// Falling toward the target.
		f = tc.make()
		value, target = 1.0, 0.0
		prev = value
		for i := range 600 {
			value = f.Evaluate(value, target, 1.0/60)
			assert.LessOrEqual(t, value, prev, "%s must not retreat at step %d", tc.name, i)
			assert.GreaterOrEqual(t, value, target, "%s must not undershoot at step %d", tc.name, i)
			prev = value
		}
		assert.InDelta(t, target, value, 1e-9, "%s should converge from above", tc.name)
	}
}

func TestDamperParameterizations_AgreeAcrossSteps(t *testing.T) {
	// A rate of 1/half-life halvings per second is the same decay law as the
	// half-life damper (including its epsilon guard), so trajectories must
	// track each other at any step size.
	halfLife := 0.3
	exact := &DamperExact{HalfLife: halfLife}
	exact2 := &DamperExact2{Rate: 1 / (halfLife + 1e-5)}

	for _, dt := range []float64{1.0 / 60, 1.0 / 15} {
		a, b := 0.0, 0.0
		for i := range 60 {
			a = exact.Evaluate(a, 1, dt)
			b = exact2.Evaluate(b, 1, dt)
			assert.InDelta(t, a, b, 1e-4, "parameterizations diverged at step %d (dt=%v)", i, dt)
		}
	}
}

func TestDamperDefaults_HalfLifeOneMatchesRateOne(t *testing.T) {
	exact := &DamperExact{HalfLife: 1}
	exact2 := &DamperExact2{Rate: 1}

	a, b := 0.0, 0.0
	for range 120 {
		a = exact.Evaluate(a, 1, 1.0/60)
		b = exact2.Evaluate(b, 1, 1.0/60)
	}

	assert.InDelta(t, a, b, 1e-4, "default half-life 1s and rate 1/s describe the same decay")
}

func TestSetParam_RoutesToField(t *testing.T) {
	l := &Lerp{Factor: 0.5}
	l.SetParam(0, 0.75)
	assert.Equal(t, 0.75, l.Factor)

	d := &DamperExact2{Rate: 1}
	d.SetParam(0, 12)
	assert.Equal(t, 12.0, d.Params()[0].Value)
}

func TestSetParam_OutOfRangePanics(t *testing.T) {
	assert.Panics(t, func() { Exact{}.SetParam(0, 1) })
	assert.Panics(t, func() { (&Lerp{}).SetParam(1, 1) })
	assert.Panics(t, func() { (&DamperExact{}).SetParam(-1, 1) })
}

func TestParams_RangesMatchSliderContract(t *testing.T) {
	p := (&Lerp{Factor: 0.5}).Params()[0]
	assert.Equal(t, "factor", p.Name)
	assert.Equal(t, 0.01, p.Min)
	assert.Equal(t, 1.0, p.Max)

	p = (&DamperBad{Damper: 5}).Params()[0]
	assert.Equal(t, "damper", p.Name)
	assert.Equal(t, 20.0, p.Max)

	p = (&DamperExact{HalfLife: 1}).Params()[0]
	assert.Equal(t, "half-life", p.Name)
	assert.Equal(t, 1.0, p.Max)

	p = (&DamperExact2{Rate: 1}).Params()[0]
	assert.Equal(t, "rate", p.Name)
	assert.Equal(t, 30.0, p.Max)
}
