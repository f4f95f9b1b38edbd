package main

import (
	"fmt"
	"strings"

	"github.com/olivier-w/damplab/internal/smoothing"
)

// config holds the command-line parameters.
type config struct {
	// function is the smoothing function name from list-functions
	function string
	// fps is the requested live-mode frame rate
	fps float64
	// compare starts in Compare mode instead of Live
	compare bool
	// debug enables the bubbletea debug log
	debug bool

	// fnIdx is the registry index resolved by sanitize
	fnIdx int
}

func newDefaultConfig() config {
	return config{
		function: "exact",
		fps:      60,
	}
}

// sanitize cleans things up: the frame rate is clamped to the range the UI
// slider covers, and the function name is resolved to its registry index.
func (cfg *config) sanitize() error {
	switch {
	case cfg.fps < 10:
		cfg.fps = 10
	case cfg.fps > 240:
		cfg.fps = 240
	}

	for i, name := range smoothing.Names() {
		if name == cfg.function {
			cfg.fnIdx = i
			return nil
		}
	}
	return fmt.Errorf("unknown function %q (valid: %s)",
		cfg.function, strings.Join(smoothing.Names(), ", "))
}
