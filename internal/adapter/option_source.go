package adapter

import (
	"context"
	"fmt"

	"github.com/mouse-blink/buildmatrix/internal/ctxlog"
)

// OptionSource reports the configurable options of a build and their values.
type OptionSource interface {
	// ListOptionNames returns the option identifiers in build tool order.
	ListOptionNames(ctx context.Context, passthrough []string) ([]string, error)
	// ListOptionValues returns the admissible values of one option, in order.
	ListOptionValues(ctx context.Context, name string, passthrough []string) ([]string, error)
}

// MakeQuery describes how option names and values are requested from make.
type MakeQuery struct {
	Makefile string   // passed with -f when set
	Target   string   // e.g. get_var
	Variable string   // e.g. GET_VAR; receives the option name
	Flags    []string // e.g. -s
}

// MakeOptionSource asks a makefile for its options:
//
//	make -f CompilationTest.mk get_var -s [passthrough...]             -> option names
//	make -f CompilationTest.mk get_var -s GET_VAR=<name> [passthrough...] -> values
type MakeOptionSource struct {
	runner ToolRunnerAdapter
	query  MakeQuery
}

// NewMakeOptionSource constructs a MakeOptionSource.
func NewMakeOptionSource(runner ToolRunnerAdapter, query MakeQuery) *MakeOptionSource {
	return &MakeOptionSource{runner: runner, query: query}
}

// ListOptionNames implements OptionSource.
func (s *MakeOptionSource) ListOptionNames(ctx context.Context, passthrough []string) ([]string, error) {
	names, err := s.tokens(ctx, s.args("", passthrough))
	if err != nil {
		return nil, fmt.Errorf("list option names: %w", err)
	}

	ctxlog.FromContext(ctx).Debug("discovered options", "names", names)

	return names, nil
}

// ListOptionValues implements OptionSource.
func (s *MakeOptionSource) ListOptionValues(ctx context.Context, name string, passthrough []string) ([]string, error) {
	values, err := s.tokens(ctx, s.args(name, passthrough))
	if err != nil {
		return nil, fmt.Errorf("list values of %s: %w", name, err)
	}

	ctxlog.FromContext(ctx).Debug("discovered option values", "option", name, "values", values)

	return values, nil
}

func (s *MakeOptionSource) tokens(ctx context.Context, args []string) ([]string, error) {
	out, err := s.runner.Query(ctx, args...)
	if err != nil {
		return nil, err
	}

	return decodeTokens(out)
}

func (s *MakeOptionSource) args(name string, passthrough []string) []string {
	args := makefileArgs(s.query.Makefile)
	args = append(args, s.query.Target)
	args = append(args, s.query.Flags...)

	if name != "" {
		args = append(args, s.query.Variable+"="+name)
	}

	return append(args, passthrough...)
}

func makefileArgs(makefile string) []string {
	if makefile == "" {
		return []string{}
	}

	return []string{"-f", makefile}
}
