package controller

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/buildmatrix/internal/model"
)

// SimpleUI implements UI using plain text on the command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// Wait returns immediately; plain output needs no user interaction.
func (s *SimpleUI) Wait() {}

// DisplayOptions prints the discovered options. A discovery error is
// returned as is and reported by the caller.
func (s *SimpleUI) DisplayOptions(options m.OptionSet, passthrough []string, err error) error {
	if err != nil {
		return err
	}

	if len(passthrough) > 0 {
		s.printf("Make add arguments: %s\n", strings.Join(passthrough, " "))
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Option", "Count", "Values"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})

	for _, opt := range options {
		values := strings.Join(opt.Values, " ")
		if values == "" {
			values = "-"
		}

		table.Append([]string{opt.Name, fmt.Sprintf("%d", opt.Cardinality()), values})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Options %d", len(options)),
		"",
		fmt.Sprintf("%d combinations", options.Count()),
	})

	table.Render()
	s.printf("\n%s\n", tableBuffer.String())

	return nil
}

// DisplayRunStarted announces the build of a combination.
func (s *SimpleUI) DisplayRunStarted(combination m.Combination, rendering string, total int) {
	writeRunStarted(s.cmd.OutOrStdout(), combination.Index, total, rendering)
}

// DisplayRunCompleted prints the outcome of a build together with its output.
func (s *SimpleUI) DisplayRunCompleted(result m.RunResult) {
	writeRunCompleted(s.cmd.OutOrStdout(), result)
}

// DisplaySummary prints every combination with its outcome in build order.
func (s *SimpleUI) DisplaySummary(ledger *m.Ledger, exitCode int) error {
	writeSummary(s.cmd.OutOrStdout(), ledger, exitCode)
	return nil
}

func writeRunStarted(w io.Writer, index, total int, rendering string) {
	_, _ = fmt.Fprintf(w, "[%d/%d] building %s\n", index+1, total, displayRendering(rendering))
}

func writeRunCompleted(w io.Writer, result m.RunResult) {
	if result.Outcome == m.Failed {
		_, _ = fmt.Fprintf(w, "*** FAILED ***\n")
		_, _ = fmt.Fprintf(w, "Failed configuration:\n %s\n", displayRendering(result.Rendering))
		_, _ = fmt.Fprintf(w, "\nReturn code: %d\n", result.ExitCode)
		_, _ = fmt.Fprintf(w, "\nError logs:\n%s\n", result.Output)

		return
	}

	_, _ = fmt.Fprintf(w, "*** PASSED ***\n")
	_, _ = fmt.Fprintf(w, "Configuration: %s\n\n", displayRendering(result.Rendering))
	_, _ = fmt.Fprintf(w, "%s\n", result.Output)
}

func writeSummary(w io.Writer, ledger *m.Ledger, exitCode int) {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"#", "Result", "Exit", "Configuration"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
	})

	for _, r := range ledger.Results() {
		table.Append([]string{
			fmt.Sprintf("%d", r.Index+1),
			string(r.Outcome),
			fmt.Sprintf("%d", r.ExitCode),
			displayRendering(r.Rendering),
		})
	}

	table.SetFooter([]string{
		"",
		fmt.Sprintf("%d passed", ledger.Count(m.Passed)),
		fmt.Sprintf("%d failed", ledger.Count(m.Failed)),
		fmt.Sprintf("exit code %d", exitCode),
	})

	table.Render()
	_, _ = fmt.Fprintf(w, "\n=== Configurations build summary ===\n%s", tableBuffer.String())
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
