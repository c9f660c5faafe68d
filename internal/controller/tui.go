package controller

import (
	"fmt"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	m "github.com/mouse-blink/buildmatrix/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output   io.Writer
	mu       sync.Mutex
	program  *tea.Program
	started  bool
	finished bool
	group    errgroup.Group
	ledger   *m.Ledger
	exitCode int
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program for the requested mode.
func (t *TUI) Start(options ...StartOption) error {
	cfg := StartConfig{mode: ModeRun}
	for _, option := range options {
		option(&cfg)
	}

	var model tea.Model = newRunModel()
	if cfg.mode == ModeList {
		model = newOptionListModel()
	}

	return t.startWithModel(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
}

func (t *TUI) startWithModel(model tea.Model, opts ...tea.ProgramOption) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	opts = append([]tea.ProgramOption{tea.WithOutput(t.output)}, opts...)
	program := tea.NewProgram(model, opts...)

	t.program = program
	t.started = true

	t.group.Go(func() error {
		_, err := program.Run()

		t.mu.Lock()
		t.finished = true
		t.mu.Unlock()

		return err
	})

	return nil
}

// exited reports whether the user closed the program before the run ended.
func (t *TUI) exited() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.finished
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(msg)
}

// Wait blocks until the user closes the program.
func (t *TUI) Wait() {
	_ = t.group.Wait()
}

// Close stops the program and waits for the terminal to be restored.
func (t *TUI) Close() {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	t.Wait()

	t.mu.Lock()
	ledger, exitCode := t.ledger, t.exitCode
	t.ledger = nil
	t.mu.Unlock()

	// the alt screen is gone once the program exits; leave the report behind
	if ledger != nil {
		t.printReport(ledger, exitCode)
	}
}

func (t *TUI) printReport(ledger *m.Ledger, exitCode int) {
	for _, result := range ledger.Results() {
		if result.Outcome == m.Failed {
			writeRunCompleted(t.output, result)
		}
	}

	writeSummary(t.output, ledger, exitCode)

	_, _ = fmt.Fprintf(t.output, "%d configurations built: %d passed, %d failed (exit code %d)\n",
		ledger.Len(), ledger.Count(m.Passed), ledger.Count(m.Failed), exitCode)
}

// DisplayOptions sends the discovered options to the program. On a
// discovery error the terminal is restored and the error is returned to
// the caller for reporting.
func (t *TUI) DisplayOptions(options m.OptionSet, passthrough []string, err error) error {
	if err != nil {
		t.Close()
		return err
	}

	items := make([]optionItem, 0, len(options))
	for _, opt := range options {
		items = append(items, optionItem{name: opt.Name, values: opt.Values})
	}

	t.send(optionsMsg{items: items, passthrough: passthrough, total: options.Count()})

	return nil
}

// DisplayRunStarted marks a combination as being built. Once the user has
// closed the program, progress continues as plain lines.
func (t *TUI) DisplayRunStarted(combination m.Combination, rendering string, total int) {
	if t.exited() {
		writeRunStarted(t.output, combination.Index, total, rendering)
		return
	}

	t.send(startRunMsg{index: combination.Index, total: total, rendering: rendering})
}

// DisplayRunCompleted appends a finished build to the results list.
func (t *TUI) DisplayRunCompleted(result m.RunResult) {
	t.send(completedRunMsg{
		index:     result.Index,
		rendering: result.Rendering,
		status:    string(result.Outcome),
		exitCode:  result.ExitCode,
		duration:  result.Duration,
		output:    result.Output,
	})
}

// DisplaySummary switches the program to the results view.
func (t *TUI) DisplaySummary(ledger *m.Ledger, exitCode int) error {
	t.mu.Lock()
	t.ledger = ledger
	t.exitCode = exitCode
	t.mu.Unlock()

	t.send(summaryMsg{
		passed:   ledger.Count(m.Passed),
		failed:   ledger.Count(m.Failed),
		exitCode: exitCode,
	})

	return nil
}
