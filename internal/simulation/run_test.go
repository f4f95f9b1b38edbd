package simulation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/olivier-w/damplab/internal/smoothing"
)

func TestRun_CollectsStepPlusOneValues(t *testing.T) {
	values := Run(&smoothing.DamperExact{HalfLife: 1}, 100, 0, 2.0, 60)

	assert.Len(t, values, 121, "2 seconds at 60 fps is 120 steps plus the start value")
	assert.Equal(t, 100.0, values[0], "trajectory starts at the configured start")
}

func TestRun_DegenerateDurationKeepsStartOnly(t *testing.T) {
	// 0.05s of simulated time is shorter than one frame at 10 fps.
	values := Run(&smoothing.DamperExact{HalfLife: 1}, 42, 0, 0.05, 10)

	assert.Equal(t, []float64{42}, values)
}

func TestRun_ExactDampersAreFrameRateIndependent(t *testing.T) {
	fns := []smoothing.Function{
		&smoothing.DamperExact{HalfLife: 0.25},
		&smoothing.DamperExact2{Rate: 4},
	}

	for _, f := range fns {
		fast := Run(f, 1, 0, 2.0, 60)
		slow := Run(f, 1, 0, 2.0, 15)

		// Same simulated duration, so the endpoints must agree no matter how
		// finely the time was sliced. Midpoints too: t=1s is index rate*1.
		assert.InDelta(t, fast[len(fast)-1], slow[len(slow)-1], 1e-6,
			"%s endpoints diverged across frame rates", f.Name())
		assert.InDelta(t, fast[60], slow[15], 1e-6,
			"%s midpoints diverged across frame rates", f.Name())
	}
}

func TestRun_LerpTrajectoryDependsOnFrameRate(t *testing.T) {
	// The anti-property: lerp's flaw has to stay visible. 0.2s is 12 steps
	// at 60 fps but only 3 at 15 fps, and factor 0.5 per step makes the
	// endpoints land far apart.
	f := &smoothing.Lerp{Factor: 0.5}

	fast := Run(f, 1, 0, 0.2, 60)
	slow := Run(f, 1, 0, 0.2, 15)

	gap := math.Abs(fast[len(fast)-1] - slow[len(slow)-1])
	assert.Greater(t, gap, 0.1, "lerp endpoints should differ visibly across frame rates")
}

func TestRun_DamperBadTrajectoryDependsOnFrameRate(t *testing.T) {
	f := &smoothing.DamperBad{Damper: 5}

	fast := Run(f, 1, 0, 0.2, 60)
	slow := Run(f, 1, 0, 0.2, 15)

	gap := math.Abs(fast[len(fast)-1] - slow[len(slow)-1])
	assert.Greater(t, gap, 0.01, "damper-bad endpoints should differ across frame rates")
}

func TestRun_ExactArrivesOnFirstStep(t *testing.T) {
	values := Run(smoothing.Exact{}, 5, -1, 1.0, 10)

	assert.Equal(t, 5.0, values[0])
	for i, v := range values[1:] {
		assert.Equal(t, -1.0, v, "step %d should sit on the goal", i+1)
	}
}

func TestRun_IsDeterministic(t *testing.T) {
	f := &smoothing.DamperExact2{Rate: 2}

	first := Run(f, 1, 0, 1.5, 48)
	second := Run(f, 1, 0, 1.5, 48)

	assert.Equal(t, first, second, "a compare run is recomputed every frame and must not drift")
}

func TestRun_PanicsOnBadInputs(t *testing.T) {
	f := &smoothing.Lerp{Factor: 0.5}

	assert.Panics(t, func() { Run(f, 0, 1, 1, 0) })
	assert.Panics(t, func() { Run(f, 0, 1, 1, -60) })
	assert.Panics(t, func() { Run(f, 0, 1, -1, 60) })
}
