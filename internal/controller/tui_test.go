package controller

import (
	"bytes"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/buildmatrix/internal/model"
)

type quitModel struct{}

func (q quitModel) Init() tea.Cmd                       { return tea.Quit }
func (q quitModel) Update(tea.Msg) (tea.Model, tea.Cmd) { return q, tea.Quit }
func (q quitModel) View() string                        { return "" }

func waitOrFail(t *testing.T, name string, fn func()) {
	t.Helper()

	done := make(chan struct{})

	go func() {
		fn()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("%s timed out", name)
	}
}

func TestTUI_StartWithModel_WaitAndClose(t *testing.T) {
	var buf bytes.Buffer

	tui := NewTUI(&buf)
	require.NoError(t, tui.startWithModel(quitModel{}, tea.WithInput(nil)))

	// second start is a no-op
	require.NoError(t, tui.startWithModel(quitModel{}))

	tui.send(summaryMsg{})

	waitOrFail(t, "Wait", tui.Wait)
	waitOrFail(t, "Close", tui.Close)
}

func TestTUI_NotStarted(t *testing.T) {
	var buf bytes.Buffer

	tui := NewTUI(&buf)

	// no program yet: every call is a no-op
	tui.send(startRunMsg{})
	tui.Wait()
	tui.Close()
	tui.Close()

	require.NoError(t, tui.DisplayOptions(m.OptionSet{{Name: "OPT_A", Values: []string{"x"}}}, nil, nil))
	tui.DisplayRunStarted(m.Combination{}, "", 1)
	tui.DisplayRunCompleted(m.RunResult{Outcome: m.Passed})
	require.NoError(t, tui.DisplaySummary(m.NewLedger("run"), 0))
}

func TestTUI_DisplayOptions_Error(t *testing.T) {
	var buf bytes.Buffer

	tui := NewTUI(&buf)
	boom := errors.New("make: not found")

	err := tui.DisplayOptions(nil, nil, boom)
	assert.ErrorIs(t, err, boom)
	assert.NotContains(t, buf.String(), "make: not found")
}

func TestTUI_CloseLeavesSummary(t *testing.T) {
	var buf bytes.Buffer

	tui := NewTUI(&buf)
	require.NoError(t, tui.startWithModel(quitModel{}, tea.WithInput(nil)))

	ledger := m.NewLedger("run")
	passed := ledger.Append(m.Combination{Index: 0}, `SEL_A="x"`)
	require.NoError(t, ledger.Resolve(passed, m.RunResult{Outcome: m.Passed, Output: "linked x"}))
	failed := ledger.Append(m.Combination{Index: 1}, `SEL_A="y"`)
	require.NoError(t, ledger.Resolve(failed, m.RunResult{Outcome: m.Failed, ExitCode: 2, Output: "undefined reference"}))

	require.NoError(t, tui.DisplaySummary(ledger, 2))
	waitOrFail(t, "Close", tui.Close)

	text := buf.String()
	assert.Contains(t, text, "=== Configurations build summary ===")
	assert.Contains(t, text, `SEL_A="x"`)
	assert.Contains(t, text, "Failed configuration:\n SEL_A=\"y\"")
	assert.Contains(t, text, "undefined reference")
	assert.NotContains(t, text, "linked x")
	assert.Contains(t, text, "2 configurations built: 1 passed, 1 failed (exit code 2)")

	// a second close prints nothing new
	length := buf.Len()
	tui.Close()
	assert.Equal(t, length, buf.Len())
}

func TestTUI_ProgressAfterUserQuits(t *testing.T) {
	var buf bytes.Buffer

	tui := NewTUI(&buf)
	require.NoError(t, tui.startWithModel(quitModel{}, tea.WithInput(nil)))
	waitOrFail(t, "Wait", tui.Wait)

	tui.DisplayRunStarted(m.Combination{Index: 2}, `SEL_A="z"`, 4)

	assert.Contains(t, buf.String(), `[3/4] building SEL_A="z"`)
}
