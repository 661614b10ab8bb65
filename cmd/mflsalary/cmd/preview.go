package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nateprich/mfl-salary-top30/internal/report"
)

// previewCmd runs the full pipeline and prints the rankings as terminal
// tables instead of writing a spreadsheet.
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Fetch all seasons and print the rankings as tables",
	Example: `  mflsalary preview
  mflsalary preview --quiet`,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, _ []string) error {
	runner, _, err := newRunner()
	if err != nil {
		return err
	}

	rep, err := runner.Run(cmd.Context())
	if err != nil {
		return err
	}

	return report.WritePreview(cmd.OutOrStdout(), rep)
}
