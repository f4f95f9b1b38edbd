package ui

import "github.com/charmbracelet/harmonica"

// fpsMeter spring-smooths the jittery instantaneous frame rate into a
// readable readout. Display only; it has no part in the smoothing math the
// playground compares.
type fpsMeter struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
}

func newFPSMeter() fpsMeter {
	return fpsMeter{spring: harmonica.NewSpring(harmonica.FPS(60), 6.0, 1.0)}
}

func (f *fpsMeter) step(target float64) float64 {
	f.pos, f.vel = f.spring.Update(f.pos, f.vel, target)
	return f.pos
}

func (f fpsMeter) value() float64 { return f.pos }
