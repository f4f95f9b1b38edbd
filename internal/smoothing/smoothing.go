// Package smoothing provides the value-smoothing functions the playground
// compares: a fixed set of update rules that move a scalar toward a target
// over a time step.
package smoothing

// Function is a single smoothing rule. Evaluate is pure: it reads the
// function's parameters but never mutates them, and keeps no other state.
// dt is in seconds and must be >= 0; negative dt is a caller bug and is not
// guarded. Parameter ranges are enforced by the caller, not here.
type Function interface {
	Name() string
	Evaluate(current, target, dt float64) float64
	Params() []Param
	SetParam(i int, v float64)
}

// Param describes one tunable of a Function: its display name, the range
// and step the UI should offer, and the current value.
type Param struct {
	Name     string
	Min, Max float64
	Step     float64
	Value    float64
}

// All returns the full set of smoothing functions, each with its default
// parameters. The slice is freshly allocated on every call, so selecting a
// function from it never carries over edits made to a previous instance.
func All() []Function {
	return []Function{
		Exact{},
		&Lerp{Factor: 0.5},
		&DamperBad{Damper: 5},
		&DamperExact{HalfLife: 1},
		&DamperExact2{Rate: 1},
	}
}

// Names returns the function names in registry order.
func Names() []string {
	fns := All()
	names := make([]string, len(fns))
	for i, f := range fns {
		names[i] = f.Name()
	}
	return names
}

func lerp(from, to, t float64) float64 {
	return from*(1-t) + to*t
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
