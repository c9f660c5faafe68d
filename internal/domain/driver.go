package domain

import (
	"context"

	"github.com/google/uuid"

	"github.com/mouse-blink/buildmatrix/internal/adapter"
	"github.com/mouse-blink/buildmatrix/internal/ctxlog"
	m "github.com/mouse-blink/buildmatrix/internal/model"
)

// RunListener is notified around every build of a run.
type RunListener interface {
	DisplayRunStarted(combination m.Combination, rendering string, total int)
	DisplayRunCompleted(result m.RunResult)
}

// DriverOptions configures how combinations are handed to the build executor.
type DriverOptions struct {
	KeyRule     m.KeyRule
	Passthrough []string
	// RunID tags the ledger; a random one is generated when empty.
	RunID string
}

// Driver builds combinations one after another and records their outcome.
type Driver struct {
	executor adapter.BuildExecutor
	opts     DriverOptions
}

// NewDriver constructs a Driver.
func NewDriver(executor adapter.BuildExecutor, opts DriverOptions) *Driver {
	return &Driver{executor: executor, opts: opts}
}

// Execute builds a single combination. Exit status 0 is PASSED, anything
// else is FAILED with the exit status recorded. A build tool that cannot be
// started is reported by the executor as a nonzero exit and fails the same way.
func (d *Driver) Execute(ctx context.Context, combination m.Combination) m.RunResult {
	rendering := combination.Render(d.opts.KeyRule)
	out := d.executor.Build(ctx, combination.Args(d.opts.KeyRule), d.opts.Passthrough)

	result := m.RunResult{
		Index:       combination.Index,
		Combination: combination,
		Rendering:   rendering,
		Outcome:     m.Passed,
		ExitCode:    out.ExitCode,
		Output:      out.Output,
		Duration:    out.Duration,
	}

	if out.ExitCode != 0 {
		result.Outcome = m.Failed
	}

	logger := ctxlog.FromContext(ctx)
	if out.LaunchErr != nil {
		logger.Warn("build tool launch failed", "configuration", rendering, "error", out.LaunchErr)
	}

	logger.Debug("build finished",
		"index", combination.Index,
		"configuration", rendering,
		"outcome", result.Outcome,
		"exit_code", out.ExitCode,
		"duration", out.Duration)

	return result
}

// RunAll builds every combination the enumerator yields, starting at its
// current position. Failures never stop the run. The returned exit code is
// the one of the last failed build, or 0 when every build passed.
func (d *Driver) RunAll(ctx context.Context, enum *Enumerator, listener RunListener) (*m.Ledger, int) {
	runID := d.opts.RunID
	if runID == "" {
		runID = uuid.New().String()
	}

	ledger := m.NewLedger(runID)
	total := enum.Count()
	exitCode := 0

	for combination := range enum.All() {
		rendering := combination.Render(d.opts.KeyRule)
		idx := ledger.Append(combination, rendering)

		if listener != nil {
			listener.DisplayRunStarted(combination, rendering, total)
		}

		result := d.Execute(ctx, combination)
		result.Index = idx

		if err := ledger.Resolve(idx, result); err != nil {
			panic(err) // unreachable: idx was appended as pending above
		}

		if result.Outcome == m.Failed {
			exitCode = result.ExitCode
		}

		if listener != nil {
			listener.DisplayRunCompleted(result)
		}
	}

	return ledger, exitCode
}
