package cmd

import (
	"github.com/spf13/cobra"
)

// runCmd represents the run command.
var runCmd = newRunCmd()

const runLongDescription = `Build every combination of the discovered configuration options.

Each combination gets a clean build; failures never stop the run. A summary
of every combination and its outcome is printed at the end, and the run
report is written to the path configured with the report setting.

All arguments are forwarded verbatim to make.`

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                "run [make arguments...]",
		Short:              "Build every combination of the configuration options",
		Long:               runLongDescription,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
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

func init() {
	rootCmd.AddCommand(runCmd)
}
