package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/agentstation/utc"
	"github.com/spf13/cobra"

	"github.com/nateprich/mfl-salary-top30/internal/report"
)

var reportFlagOutput string

// reportCmd runs the full pipeline and writes the spreadsheet artifact.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Fetch all seasons and write the salary spreadsheet",
	Long: `report runs the full pipeline: fetches roster snapshots, auction
results, waiver bids, and the player directory for every configured season,
reconciles them into one salary per player, ranks players by position, and
writes a multi-sheet spreadsheet named after today's date.`,
	Example: `  mflsalary report
  mflsalary report --output /tmp/salaries.xlsx
  mflsalary report --verbose`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(&reportFlagOutput, "output", "o", "", "output file (default: mfl-salary-top{N}-{date}.xlsx in the output dir)")
}

func runReport(cmd *cobra.Command, _ []string) error {
	runner, cfg, err := newRunner()
	if err != nil {
		return err
	}

	rep, err := runner.Run(cmd.Context())
	if err != nil {
		return err
	}

	path := reportFlagOutput
	if path == "" {
		path = filepath.Join(cfg.OutputDir, report.Filename(cfg.TopN, utc.Now()))
	}
	if err := report.WriteWorkbook(rep, path); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Wrote", path)
	return nil
}
