package simulation

import "github.com/olivier-w/damplab/internal/smoothing"

// Live holds the interactive-mode state: the chasing value, the
// user-positioned goal, and the trailing trace.
type Live struct {
	Value   float64
	Goal    float64
	History *History
}

// NewLive starts the value and goal at start with a flat trace.
func NewLive(start float64) *Live {
	return &Live{
		Value:   start,
		Goal:    start,
		History: NewHistory(DefaultHistoryLen, start),
	}
}

// Step advances the value by one frame with the observed dt (seconds) and
// records it on the trace.
func (l *Live) Step(f smoothing.Function, dt float64) {
	l.Value = f.Evaluate(l.Value, l.Goal, dt)
	l.History.Push(l.Value)
}

// SetGoal moves the goal. Nothing else mutates it.
func (l *Live) SetGoal(g float64) { l.Goal = g }

// Reset puts value and goal back at start and flattens the trace.
func (l *Live) Reset(start float64) {
	l.Value = start
	l.Goal = start
	l.History.Fill(start)
}
