package cmd

import (
	"github.com/spf13/cobra"
)

// listCmd represents the list command.
var listCmd = newListCmd()

const listLongDescription = `List the configuration options the build description declares, the
values each option admits and the number of combinations a run would build.
Nothing is built.

All arguments are forwarded verbatim to make.`

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                "list [make arguments...]",
		Short:              "List configuration options and the combination count",
		Long:               listLongDescription,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := currentWorkflow(cmd)
			if err != nil {
				return err
			}

			return wf.List(cmd.Context(), listArgs(args))
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
