// Package adapter contains the process, build tool and report adapters of the
// buildmatrix CLI.
package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/mouse-blink/buildmatrix/internal/ctxlog"
	m "github.com/mouse-blink/buildmatrix/internal/model"
)

// Exit codes synthesized when the build tool does not report one itself.
const (
	// ExitLaunchFailure mirrors the shell status for a command that could not be run.
	ExitLaunchFailure = 127
	// ExitTimeout mirrors coreutils timeout(1).
	ExitTimeout = 124
)

const waitDelay = 5 * time.Second

// ToolRunnerAdapter runs the external build tool. It keeps os/exec out of
// the option source and build executor so both can be tested with a mock.
type ToolRunnerAdapter interface {
	// Query runs the tool and returns its stdout. A nonzero exit or a launch
	// failure is an error carrying the tool's stderr.
	Query(ctx context.Context, args ...string) ([]byte, error)

	// Run runs the tool to completion and reports its exit status together
	// with the combined stdout and stderr. Launch failures are folded into a
	// nonzero exit code.
	Run(ctx context.Context, args ...string) m.BuildOutput
}

// LocalToolRunnerAdapter runs a command on the local machine.
type LocalToolRunnerAdapter struct {
	command   string
	dir       string
	timeout   time.Duration
	waitDelay time.Duration
}

// NewLocalToolRunnerAdapter constructs a runner for command executed in dir.
// A zero timeout lets every invocation run to completion.
func NewLocalToolRunnerAdapter(command, dir string, timeout time.Duration) *LocalToolRunnerAdapter {
	return &LocalToolRunnerAdapter{
		command:   command,
		dir:       dir,
		timeout:   timeout,
		waitDelay: waitDelay,
	}
}

// Query runs the tool with stdout and stderr captured separately.
func (a *LocalToolRunnerAdapter) Query(ctx context.Context, args ...string) ([]byte, error) {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	cmd := a.newCmd(ctx, args)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	ctxlog.FromContext(ctx).Debug("querying build tool", "command", a.command, "args", args)

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s %s: %w (stderr: %s)",
			a.command, strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}

	return stdout.Bytes(), nil
}

// Run runs the tool with stdout and stderr captured into one buffer. The
// captured output starts with the command line that was run.
func (a *LocalToolRunnerAdapter) Run(ctx context.Context, args ...string) m.BuildOutput {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	cmd := a.newCmd(ctx, args)

	var combined bytes.Buffer
	combined.WriteString(commandLine(a.command, args))
	combined.WriteByte('\n')
	cmd.Stdout = &combined
	cmd.Stderr = &combined

	logger := ctxlog.FromContext(ctx)
	logger.Debug("running build tool", "command", a.command, "args", args)

	start := time.Now()
	err := cmd.Run()
	out := m.BuildOutput{
		Output:   combined.String(),
		Duration: time.Since(start),
	}

	if err == nil {
		return out
	}

	var exitErr *exec.ExitError

	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		out.ExitCode = ExitTimeout
		out.Output += fmt.Sprintf("\nbuildmatrix: build timed out after %s\n", a.timeout)
	case errors.Is(err, exec.ErrWaitDelay):
		// the tool exited but a process it started still holds the output open
		out.ExitCode = cmd.ProcessState.ExitCode()
		out.Output += fmt.Sprintf("\nbuildmatrix: output closed %s after exit, a background process kept it open\n", a.waitDelay)

		logger.Warn("build tool left a process holding its output", "command", a.command, "exit_code", out.ExitCode)
	case errors.As(err, &exitErr) && exitErr.ExitCode() > 0:
		out.ExitCode = exitErr.ExitCode()
	case errors.As(err, &exitErr):
		// killed by a signal
		out.ExitCode = 1
		out.Output += fmt.Sprintf("\nbuildmatrix: %v\n", err)
	default:
		out.ExitCode = ExitLaunchFailure
		out.LaunchErr = err
		out.Output += fmt.Sprintf("buildmatrix: %v\n", err)

		logger.Warn("build tool could not be started", "command", a.command, "error", err)
	}

	return out
}

func (a *LocalToolRunnerAdapter) newCmd(ctx context.Context, args []string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, a.command, args...)
	cmd.Dir = a.dir
	cmd.Env = os.Environ()

	if a.timeout > 0 {
		// make's children may keep the output pipe open after make is killed
		cmd.WaitDelay = a.waitDelay
	}

	return cmd
}

func commandLine(command string, args []string) string {
	return strings.TrimSpace(command + " " + strings.Join(args, " "))
}

func (a *LocalToolRunnerAdapter) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, a.timeout)
}
