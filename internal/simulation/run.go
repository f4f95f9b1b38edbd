package simulation

import "github.com/olivier-w/damplab/internal/smoothing"

// Run simulates f from start toward a fixed goal at a fixed frame rate for
// duration seconds, and returns the full trajectory: the start value
// followed by one value per simulated frame. A duration shorter than one
// frame period yields just the start value. Panics on a non-positive frame
// rate or a negative duration; the UI clamps both before calling.
func Run(f smoothing.Function, start, goal, duration, frameRate float64) []float64 {
	if frameRate <= 0 {
		panic("simulation: frame rate must be positive")
	}
	if duration < 0 {
		panic("simulation: duration must not be negative")
	}

	steps := int(duration * frameRate)
	dt := 1 / frameRate

	values := make([]float64, 0, steps+1)
	values = append(values, start)
	current := start
	for range steps {
		current = f.Evaluate(current, goal, dt)
		values = append(values, current)
	}
	return values
}
