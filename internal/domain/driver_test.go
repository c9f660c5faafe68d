package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adaptermocks "github.com/mouse-blink/buildmatrix/internal/adapter/mocks"
	m "github.com/mouse-blink/buildmatrix/internal/model"
)

type recordingListener struct {
	started   []string
	totals    []int
	completed []m.RunResult
}

func (r *recordingListener) DisplayRunStarted(_ m.Combination, rendering string, total int) {
	r.started = append(r.started, rendering)
	r.totals = append(r.totals, total)
}

func (r *recordingListener) DisplayRunCompleted(result m.RunResult) {
	r.completed = append(r.completed, result)
}

var selRule = m.KeyRule{From: "OPT_", To: "SEL_"}

func TestDriver_Execute(t *testing.T) {
	combination := m.Combination{Assignments: pairs("OPT_A", "x", "OPT_B", "1")}

	tests := []struct {
		name     string
		output   m.BuildOutput
		outcome  m.Outcome
		exitCode int
	}{
		{name: "passed", output: m.BuildOutput{ExitCode: 0, Output: "ok"}, outcome: m.Passed, exitCode: 0},
		{name: "failed", output: m.BuildOutput{ExitCode: 2, Output: "error"}, outcome: m.Failed, exitCode: 2},
		{
			name:     "launch failure",
			output:   m.BuildOutput{ExitCode: 127, Output: "exec: \"make\": not found", LaunchErr: errors.New("not found")},
			outcome:  m.Failed,
			exitCode: 127,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			executor := adaptermocks.NewMockBuildExecutor(t)
			executor.EXPECT().
				Build(mock.Anything, []string{"SEL_A=x", "SEL_B=1"}, []string{"BOARD=evb"}).
				Return(tt.output).
				Once()

			driver := NewDriver(executor, DriverOptions{KeyRule: selRule, Passthrough: []string{"BOARD=evb"}})
			result := driver.Execute(context.Background(), combination)

			assert.Equal(t, tt.outcome, result.Outcome)
			assert.Equal(t, tt.exitCode, result.ExitCode)
			assert.Equal(t, tt.output.Output, result.Output)
			assert.Equal(t, `SEL_A="x" SEL_B="1"`, result.Rendering)
		})
	}
}

func TestDriver_RunAll_LastFailureWins(t *testing.T) {
	// Arrange
	executor := adaptermocks.NewMockBuildExecutor(t)
	executor.EXPECT().Build(mock.Anything, []string{"SEL_A=x"}, mock.Anything).Return(m.BuildOutput{ExitCode: 0}).Once()
	executor.EXPECT().Build(mock.Anything, []string{"SEL_A=y"}, mock.Anything).Return(m.BuildOutput{ExitCode: 2}).Once()
	executor.EXPECT().Build(mock.Anything, []string{"SEL_A=z"}, mock.Anything).Return(m.BuildOutput{ExitCode: 0}).Once()

	enum, err := NewEnumerator(m.OptionSet{{Name: "OPT_A", Values: []string{"x", "y", "z"}}})
	require.NoError(t, err)

	listener := &recordingListener{}
	driver := NewDriver(executor, DriverOptions{KeyRule: selRule, RunID: "run-1"})

	// Act
	ledger, exitCode := driver.RunAll(context.Background(), enum, listener)

	// Assert
	assert.Equal(t, 2, exitCode)
	assert.Equal(t, "run-1", ledger.RunID())
	require.Equal(t, 3, ledger.Len())

	results := ledger.Results()
	assert.Equal(t, []m.Outcome{m.Passed, m.Failed, m.Passed},
		[]m.Outcome{results[0].Outcome, results[1].Outcome, results[2].Outcome})
	assert.Equal(t, []int{0, 1, 2}, []int{results[0].Index, results[1].Index, results[2].Index})

	assert.Equal(t, []string{`SEL_A="x"`, `SEL_A="y"`, `SEL_A="z"`}, listener.started)
	assert.Equal(t, []int{3, 3, 3}, listener.totals)
	assert.Len(t, listener.completed, 3)
}

func TestDriver_RunAll_KeepsGoingAfterFailures(t *testing.T) {
	executor := adaptermocks.NewMockBuildExecutor(t)
	executor.EXPECT().Build(mock.Anything, []string{"SEL_A=x"}, mock.Anything).Return(m.BuildOutput{ExitCode: 3}).Once()
	executor.EXPECT().Build(mock.Anything, []string{"SEL_A=y"}, mock.Anything).Return(m.BuildOutput{ExitCode: 0}).Once()

	enum, err := NewEnumerator(m.OptionSet{{Name: "OPT_A", Values: []string{"x", "y"}}})
	require.NoError(t, err)

	ledger, exitCode := NewDriver(executor, DriverOptions{KeyRule: selRule}).RunAll(context.Background(), enum, nil)

	assert.Equal(t, 3, exitCode)
	assert.Equal(t, 1, ledger.Count(m.Failed))
	assert.Equal(t, 1, ledger.Count(m.Passed))
	assert.NotEmpty(t, ledger.RunID())
}

func TestDriver_RunAll_AllPassed(t *testing.T) {
	executor := adaptermocks.NewMockBuildExecutor(t)
	executor.EXPECT().Build(mock.Anything, mock.Anything, mock.Anything).Return(m.BuildOutput{}).Times(4)

	enum, err := NewEnumerator(m.OptionSet{
		{Name: "OPT_A", Values: []string{"x", "y"}},
		{Name: "OPT_EMPTY"},
		{Name: "OPT_B", Values: []string{"1", "2"}},
	})
	require.NoError(t, err)

	ledger, exitCode := NewDriver(executor, DriverOptions{KeyRule: selRule}).RunAll(context.Background(), enum, nil)

	assert.Equal(t, 0, exitCode)
	assert.Equal(t, enum.Count(), ledger.Len())
	assert.Equal(t, 4, ledger.Count(m.Passed))
	assert.Zero(t, ledger.ExitCode())
}
