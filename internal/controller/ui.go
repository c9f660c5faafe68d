// Package controller provides the console and terminal UIs of buildmatrix.
package controller

import (
	m "github.com/mouse-blink/buildmatrix/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeRun StartMode = iota
	ModeList
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithListMode sets the UI to option listing mode.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// WithRunMode sets the UI to build execution mode.
func WithRunMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRun
	}
}

// UI displays discovered options, build progress and the final summary.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish (user closes it)
	DisplayOptions(options m.OptionSet, passthrough []string, err error) error
	DisplayRunStarted(combination m.Combination, rendering string, total int)
	DisplayRunCompleted(result m.RunResult)
	DisplaySummary(ledger *m.Ledger, exitCode int) error
}

func displayRendering(rendering string) string {
	if rendering == "" {
		return "(no assignments)"
	}

	return rendering
}
