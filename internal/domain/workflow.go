package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mouse-blink/buildmatrix/internal/adapter"
	"github.com/mouse-blink/buildmatrix/internal/controller"
	"github.com/mouse-blink/buildmatrix/internal/ctxlog"
	berrors "github.com/mouse-blink/buildmatrix/internal/errors"
	m "github.com/mouse-blink/buildmatrix/internal/model"
)

// ListArgs contains the arguments for listing the option matrix.
type ListArgs struct {
	// Passthrough is forwarded verbatim to every build tool invocation.
	Passthrough []string
}

// TestArgs contains the arguments for building the whole matrix.
type TestArgs struct {
	ListArgs
	// Report is an optional path the YAML run report is written to.
	Report m.Path
}

// Workflow defines the high level operations of the compilation tester.
type Workflow interface {
	List(ctx context.Context, args ListArgs) error
	Test(ctx context.Context, args TestArgs) error
}

type workflow struct {
	source      adapter.OptionSource
	executor    adapter.BuildExecutor
	reportStore adapter.ReportStore
	ui          controller.UI
	keyRule     m.KeyRule
	now         func() time.Time
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	source adapter.OptionSource,
	executor adapter.BuildExecutor,
	reportStore adapter.ReportStore,
	ui controller.UI,
	keyRule m.KeyRule,
) Workflow {
	return &workflow{
		source:      source,
		executor:    executor,
		reportStore: reportStore,
		ui:          ui,
		keyRule:     keyRule,
		now:         time.Now,
	}
}

// List discovers the options and shows them together with the number of
// combinations a run would build.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	options, err := Discover(ctx, w.source, args.Passthrough)
	if err != nil {
		_ = w.ui.DisplayOptions(nil, args.Passthrough, err)
		return err
	}

	if err := w.ui.Start(controller.WithListMode()); err != nil {
		return fmt.Errorf("failed to start UI: %w", err)
	}
	defer w.ui.Close()

	if err := w.ui.DisplayOptions(options, args.Passthrough, nil); err != nil {
		return err
	}

	w.ui.Wait()

	return nil
}

// Test discovers the options, builds every combination and reports the
// outcome. A run with failed builds returns an execution error carrying the
// exit code of the last failure.
func (w *workflow) Test(ctx context.Context, args TestArgs) error {
	started := w.now()

	options, err := Discover(ctx, w.source, args.Passthrough)
	if err != nil {
		_ = w.ui.DisplayOptions(nil, args.Passthrough, err)
		return err
	}

	enum, err := NewEnumerator(options)
	if err != nil {
		return err
	}

	if err := w.ui.Start(controller.WithRunMode()); err != nil {
		return fmt.Errorf("failed to start UI: %w", err)
	}
	defer w.ui.Close()

	if err := w.ui.DisplayOptions(options, args.Passthrough, nil); err != nil {
		return err
	}

	runID := uuid.New().String()
	ctx = ctxlog.WithLogger(ctx, ctxlog.FromContext(ctx).With("run_id", runID))

	driver := NewDriver(w.executor, DriverOptions{
		KeyRule:     w.keyRule,
		Passthrough: args.Passthrough,
		RunID:       runID,
	})

	ledger, exitCode := driver.RunAll(ctx, enum, w.ui)

	if err := w.ui.DisplaySummary(ledger, exitCode); err != nil {
		return err
	}

	var reportErr error
	if args.Report != "" {
		reportErr = w.saveReport(ctx, args, options, ledger, exitCode, started)
	}

	w.ui.Wait()

	if exitCode != 0 {
		failed := berrors.Execution(exitCode,
			fmt.Sprintf("%d of %d configurations failed", ledger.Count(m.Failed), ledger.Len()))

		return errors.Join(failed, reportErr)
	}

	return reportErr
}

func (w *workflow) saveReport(
	ctx context.Context,
	args TestArgs,
	options m.OptionSet,
	ledger *m.Ledger,
	exitCode int,
	started time.Time,
) error {
	report := m.Report{
		RunID:       ledger.RunID(),
		Started:     started,
		Finished:    w.now(),
		Passthrough: args.Passthrough,
		Options:     options,
		Results:     ledger.Results(),
		ExitCode:    exitCode,
	}

	if err := w.reportStore.SaveReport(args.Report, report); err != nil {
		ctxlog.FromContext(ctx).Warn("failed to save report", "path", args.Report, "error", err)
		return berrors.Wrap(err, "save report")
	}

	ctxlog.FromContext(ctx).Info("report saved", "path", args.Report)

	return nil
}
