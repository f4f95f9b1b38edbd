package simulation

// Mode identifies which of the two simulator states is active.
type Mode int

const (
	ModeLive Mode = iota
	ModeCompare
)

// String returns the name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeCompare:
		return "compare"
	default:
		return "live"
	}
}

// CompareSettings drives the side-by-side batch runs: one simulated
// duration replayed at two fixed frame rates.
type CompareSettings struct {
	SimTime    float64 // seconds of simulated time per run
	FirstRate  float64 // frames per second, first run
	SecondRate float64 // frames per second, second run
}

// DefaultCompareSettings returns the values installed when Compare mode is
// entered: 2 seconds, 60 vs 15 fps.
func DefaultCompareSettings() CompareSettings {
	return CompareSettings{SimTime: 2, FirstRate: 60, SecondRate: 15}
}

// Simulator is the playground's two-state machine. Live steps the value
// once per rendered frame with the observed dt; Compare re-runs the same
// function at two fixed frame rates, recomputed every frame. Transitions
// happen only on user action.
type Simulator struct {
	Mode    Mode
	Live    *Live
	Compare *CompareSettings // non-nil only in ModeCompare
}

// NewSimulator creates a simulator in Live mode with the value at start.
func NewSimulator(start float64) *Simulator {
	return &Simulator{Live: NewLive(start)}
}

// EnterCompare switches to Compare mode with default settings installed.
// No-op when already comparing.
func (s *Simulator) EnterCompare() {
	if s.Mode == ModeCompare {
		return
	}
	settings := DefaultCompareSettings()
	s.Compare = &settings
	s.Mode = ModeCompare
}

// EnterLive switches back to Live mode, discarding the compare settings.
// No-op when already live.
func (s *Simulator) EnterLive() {
	if s.Mode == ModeLive {
		return
	}
	s.Compare = nil
	s.Mode = ModeLive
}

// Toggle flips between the two modes.
func (s *Simulator) Toggle() {
	if s.Mode == ModeLive {
		s.EnterCompare()
	} else {
		s.EnterLive()
	}
}
