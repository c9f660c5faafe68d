package adapter

import (
	"context"

	m "github.com/mouse-blink/buildmatrix/internal/model"
)

// BuildExecutor performs one clean-and-build cycle.
type BuildExecutor interface {
	Build(ctx context.Context, assignments []string, passthrough []string) m.BuildOutput
}

// MakeTargets names the makefile and the targets of a build cycle.
type MakeTargets struct {
	Makefile string
	Clean    string // skipped when empty
	Build    string
}

// MakeBuildExecutor builds with a single make invocation:
//
//	make -f CompilationTest.mk clean all SEL_A=x SEL_B=1 [passthrough...]
type MakeBuildExecutor struct {
	runner  ToolRunnerAdapter
	targets MakeTargets
}

// NewMakeBuildExecutor constructs a MakeBuildExecutor.
func NewMakeBuildExecutor(runner ToolRunnerAdapter, targets MakeTargets) *MakeBuildExecutor {
	return &MakeBuildExecutor{runner: runner, targets: targets}
}

// Build implements BuildExecutor.
func (e *MakeBuildExecutor) Build(ctx context.Context, assignments []string, passthrough []string) m.BuildOutput {
	args := makefileArgs(e.targets.Makefile)

	if e.targets.Clean != "" {
		args = append(args, e.targets.Clean)
	}

	args = append(args, e.targets.Build)
	args = append(args, assignments...)
	args = append(args, passthrough...)

	return e.runner.Run(ctx, args...)
}
