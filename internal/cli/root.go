// Package cli implements the fitadvisor command line interface. All
// subcommands run fully offline against JSON input.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/harjula/fitadvisor/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "fitadvisor",
	Short: "Analyze workout configurations from the command line",
	Long: `fitadvisor analyzes workout configuration snapshots for conflicts and
synergies, validates them, scores generated plans, and selects duration
strategies. Input is JSON from a file or stdin.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the logger shared by the subcommands. Diagnostics go to
// stderr so stdout stays parseable.
func newLogger() *slog.Logger {
	return logging.NewLogger(os.Stderr, slog.LevelWarn)
}
