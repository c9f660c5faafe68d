// Package cmd provides the root command and CLI setup for buildmatrix.
package cmd

import (
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/buildmatrix/internal/adapter"
	"github.com/mouse-blink/buildmatrix/internal/config"
	"github.com/mouse-blink/buildmatrix/internal/controller"
	"github.com/mouse-blink/buildmatrix/internal/ctxlog"
	"github.com/mouse-blink/buildmatrix/internal/domain"
	berrors "github.com/mouse-blink/buildmatrix/internal/errors"
	m "github.com/mouse-blink/buildmatrix/internal/model"
)

// workflow is built on first use unless a test has already installed one.
var workflow domain.Workflow

// settings is the configuration resolved for the current invocation.
var settings = config.Default()

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

const rootLongDescription = `buildmatrix asks the build description for every configuration option
and the values each option admits, then performs a clean build of every
combination of those values and reports which ones fail.

Options are discovered with
  make -f CompilationTest.mk get_var -s                 (option names)
  make -f CompilationTest.mk get_var -s GET_VAR=OPT_X   (values of OPT_X)
and every combination is built with
  make -f CompilationTest.mk clean all SEL_X=value ...

All arguments are forwarded verbatim to make, for example
  buildmatrix BOARD=evb -j8

The exit code is 0 when every combination builds, otherwise the exit code
of the last failing build. Settings are read from .buildmatrix.yaml (or the
file named by BUILDMATRIX_CONFIG) and BUILDMATRIX_* environment variables.`

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                "buildmatrix [make arguments...]",
		Short:              "Build every combination of a project's configuration options",
		Long:               rootLongDescription,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		PersistentPreRunE:  setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := currentWorkflow(cmd)
			if err != nil {
				return err
			}

			return wf.Test(cmd.Context(), testArgs(args))
		},
	}

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		if !berrors.IsExecution(err) {
			rootCmd.PrintErrln("Error:", err)
		}

		os.Exit(berrors.ExitCode(err))
	}
}

// setup resolves the configuration and installs the logger for the command
// about to run.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Resolve(os.Getenv)
	if err != nil {
		return berrors.ConfigWrap(err, "invalid configuration")
	}

	settings = cfg

	logger := newLogger(cfg, cmd.ErrOrStderr())
	cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))

	return nil
}

// currentWorkflow wires the workflow on first use, so commands that never
// touch the build description (help, completion) run anywhere.
func currentWorkflow(cmd *cobra.Command) (domain.Workflow, error) {
	if workflow != nil {
		return workflow, nil
	}

	wf, err := buildWorkflow(cmd, settings, adapter.NewLocalProjectFSAdapter())
	if err != nil {
		return nil, err
	}

	workflow = wf

	return workflow, nil
}

func buildWorkflow(cmd *cobra.Command, cfg config.Config, fsAdapter adapter.ProjectFSAdapter) (domain.Workflow, error) {
	dir, err := resolveProjectDir(fsAdapter, cfg)
	if err != nil {
		return nil, err
	}

	ctxlog.FromContext(cmd.Context()).Debug("project directory resolved", "dir", dir, "makefile", cfg.Makefile)

	runner := adapter.NewLocalToolRunnerAdapter(cfg.Command, string(dir), time.Duration(cfg.Timeout))
	source := adapter.NewMakeOptionSource(runner, adapter.MakeQuery{
		Makefile: cfg.Makefile,
		Target:   cfg.QueryTarget,
		Variable: cfg.QueryVariable,
		Flags:    cfg.QueryFlags,
	})
	executor := adapter.NewMakeBuildExecutor(runner, adapter.MakeTargets{
		Makefile: cfg.Makefile,
		Clean:    cfg.CleanTarget,
		Build:    cfg.BuildTarget,
	})
	ui := controller.NewUI(cmd, useTTY(cfg.UI, cmd.OutOrStdout()))

	return domain.NewWorkflow(source, executor, adapter.NewReportStore(), ui, cfg.KeyRule()), nil
}

// resolveProjectDir returns the directory make runs in: the configured dir,
// or the nearest parent of it that holds the makefile.
func resolveProjectDir(fsAdapter adapter.ProjectFSAdapter, cfg config.Config) (m.Path, error) {
	start := m.Path(cfg.Dir)
	if start == "" {
		start = "."
	}

	if cfg.Makefile == "" {
		return m.Path(cfg.Dir), nil
	}

	dir, err := fsAdapter.FindMakefileDir(start, cfg.Makefile)
	if err != nil {
		return "", berrors.ConfigWrap(err, "build description not found")
	}

	return dir, nil
}

func useTTY(mode string, out io.Writer) bool {
	switch mode {
	case config.UITUI:
		return true
	case config.UISimple:
		return false
	default:
		return controller.IsTTY(out)
	}
}

func listArgs(args []string) domain.ListArgs {
	return domain.ListArgs{Passthrough: append([]string(nil), args...)}
}

func testArgs(args []string) domain.TestArgs {
	return domain.TestArgs{
		ListArgs: listArgs(args),
		Report:   m.Path(settings.Report),
	}
}
