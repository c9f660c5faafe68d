package model

import (
	"fmt"
	"time"
)

// Outcome represents the state of a single build run.
type Outcome string

const (
	// Pending indicates the combination has not been built yet.
	Pending Outcome = "PENDING"
	// Passed indicates the build tool exited with status 0.
	Passed Outcome = "PASSED"
	// Failed indicates the build tool exited nonzero or could not be started.
	Failed Outcome = "FAILED"
)

// Terminal reports whether the outcome can no longer change.
func (o Outcome) Terminal() bool {
	return o == Passed || o == Failed
}

// BuildOutput is what the build executor reports for one invocation.
type BuildOutput struct {
	ExitCode int
	Output   string // combined stdout and stderr
	Duration time.Duration
	// LaunchErr is set when the process could not be started or waited on.
	// ExitCode is nonzero in that case.
	LaunchErr error
}

// RunResult holds the outcome of building a single combination.
type RunResult struct {
	Index       int
	Combination Combination
	Rendering   string
	Outcome     Outcome
	ExitCode    int
	Output      string
	Duration    time.Duration
}

// Ledger is the ordered record of every combination's outcome.
// Entries are appended as PENDING and resolved exactly once.
type Ledger struct {
	runID   string
	results []RunResult
}

// NewLedger creates an empty ledger for the given run.
func NewLedger(runID string) *Ledger {
	return &Ledger{runID: runID}
}

// RunID returns the identifier of the run the ledger belongs to.
func (l *Ledger) RunID() string {
	return l.runID
}

// Append records a PENDING entry and returns its position.
func (l *Ledger) Append(combination Combination, rendering string) int {
	l.results = append(l.results, RunResult{
		Index:       len(l.results),
		Combination: combination,
		Rendering:   rendering,
		Outcome:     Pending,
	})

	return len(l.results) - 1
}

// Resolve moves the entry at index from PENDING to a terminal outcome.
func (l *Ledger) Resolve(index int, result RunResult) error {
	if index < 0 || index >= len(l.results) {
		return fmt.Errorf("ledger index %d out of range [0, %d)", index, len(l.results))
	}

	if !result.Outcome.Terminal() {
		return fmt.Errorf("ledger entry %d: %s is not a terminal outcome", index, result.Outcome)
	}

	entry := &l.results[index]
	if entry.Outcome != Pending {
		return fmt.Errorf("ledger entry %d already resolved as %s", index, entry.Outcome)
	}

	entry.Outcome = result.Outcome
	entry.ExitCode = result.ExitCode
	entry.Output = result.Output
	entry.Duration = result.Duration

	return nil
}

// Len returns the number of entries.
func (l *Ledger) Len() int {
	return len(l.results)
}

// Results returns a copy of all entries in enumeration order.
func (l *Ledger) Results() []RunResult {
	out := make([]RunResult, len(l.results))
	copy(out, l.results)

	return out
}

// Count returns the number of entries with the given outcome.
func (l *Ledger) Count(outcome Outcome) int {
	n := 0

	for _, r := range l.results {
		if r.Outcome == outcome {
			n++
		}
	}

	return n
}

// ExitCode returns the exit code of the last failed entry, or 0 when none failed.
func (l *Ledger) ExitCode() int {
	for i := len(l.results) - 1; i >= 0; i-- {
		if l.results[i].Outcome == Failed {
			return l.results[i].ExitCode
		}
	}

	return 0
}

// Report summarizes one complete run for export.
type Report struct {
	RunID       string
	Started     time.Time
	Finished    time.Time
	Passthrough []string
	Options     OptionSet
	Results     []RunResult
	ExitCode    int
}
