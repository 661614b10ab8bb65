// Package cmd holds the mflsalary command tree.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nateprich/mfl-salary-top30/internal/config"
	"github.com/nateprich/mfl-salary-top30/internal/pipeline"
	"github.com/nateprich/mfl-salary-top30/internal/sources/mfl"
	"github.com/nateprich/mfl-salary-top30/internal/transport"
	"github.com/nateprich/mfl-salary-top30/pkg/logging"
)

var (
	flagConfigFile string
	flagVerbose    bool
	flagQuiet      bool

	// Version information set by main.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "mflsalary",
	Short: "Historical salary report for a MyFantasyLeague league",
	Long: `mflsalary fetches historical salary data for a MyFantasyLeague
league across multiple seasons, reconciles roster snapshots, auction
results, and waiver bids into one authoritative salary per player, ranks
players within position groups, and renders the result as a multi-sheet
spreadsheet.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		configureLogging()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command tree and returns the process exit code.
func Execute(ctx context.Context, version, commit, date string) int {
	Version = version
	Commit = commit
	Date = date
	rootCmd.Version = version

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigFile, "config", "", "config file (default is $HOME/.mflsalary.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "only log warnings and errors")
}

// configureLogging sets the log level from flags and environment.
func configureLogging() {
	level := zerolog.InfoLevel
	if flagVerbose {
		level = zerolog.DebugLevel
	}
	if flagQuiet {
		level = zerolog.WarnLevel
	}
	if envLevel := os.Getenv("LOG_LEVEL"); envLevel != "" {
		if parsed, err := zerolog.ParseLevel(envLevel); err == nil {
			level = parsed
		}
	}
	logging.SetLevel(level)
}

// newRunner wires the configuration, fetch client, source client, and
// pipeline together for the run commands.
func newRunner() (*pipeline.Runner, *config.Config, error) {
	cfg, err := config.Load(flagConfigFile)
	if err != nil {
		return nil, nil, err
	}

	tc := transport.New(
		transport.WithTimeout(cfg.HTTPTimeout),
		transport.WithRetries(cfg.MaxAttempts, cfg.RetryBackoff),
	)
	source := mfl.NewClient(tc, cfg.BaseURL, cfg.LeagueID, mfl.WithWaiverCount(cfg.WaiverCount))

	return pipeline.New(cfg, source, logging.Default()), cfg, nil
}
