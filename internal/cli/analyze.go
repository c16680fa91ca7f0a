package cli

import (
	"github.com/spf13/cobra"

	"github.com/harjula/fitadvisor/internal/analysis"
)

var analyzeFile string

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Detect conflicts and synergies in a workout configuration",
	Long: `Analyze reads a JSON document with a workout configuration snapshot and
user context, runs the interaction analysis, and prints conflicts,
synergies, and recommendations as JSON.`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "-", "Path to the input JSON document (- for stdin)")
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	var input configurationInput
	if err := readInput(analyzeFile, &input); err != nil {
		return err
	}

	service := analysis.NewService(newLogger())
	result := service.AnalyzeInteractions(cmd.Context(), input.Configuration, input.Context)

	return printJSON(result)
}
