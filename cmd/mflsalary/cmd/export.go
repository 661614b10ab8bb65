package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/agentstation/utc"
	"github.com/spf13/cobra"

	"github.com/nateprich/mfl-salary-top30/internal/report"
)

var (
	exportFlagFormat string
	exportFlagOutput string
)

// exportCmd runs the full pipeline and emits the report in a
// machine-readable format for scripting.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Fetch all seasons and emit the report as YAML or JSON",
	Example: `  mflsalary export --format yaml
  mflsalary export --format json --output report.json`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFlagFormat, "format", "f", "yaml", "export format: yaml or json")
	exportCmd.Flags().StringVarP(&exportFlagOutput, "output", "o", "", "output file (default: stdout)")
}

func runExport(cmd *cobra.Command, _ []string) error {
	format := strings.ToLower(exportFlagFormat)
	if format != "yaml" && format != "json" {
		return fmt.Errorf("unsupported format %q: use yaml or json", exportFlagFormat)
	}

	runner, _, err := newRunner()
	if err != nil {
		return err
	}

	rep, err := runner.Run(cmd.Context())
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if exportFlagOutput != "" {
		f, err := os.Create(exportFlagOutput)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	if format == "json" {
		return report.WriteJSON(w, rep, utc.Now())
	}
	return report.WriteYAML(w, rep, utc.Now())
}
