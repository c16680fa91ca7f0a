package cli

import (
	"github.com/spf13/cobra"

	"github.com/harjula/fitadvisor/internal/confidence"
	"github.com/harjula/fitadvisor/internal/workout"
)

var confidenceFile string

// confidenceInput is the JSON document the confidence subcommand reads.
type confidenceInput struct {
	Profile workout.UserProfile `json:"profile"`
	Plan    workout.Plan        `json:"plan"`
	Context workout.Context     `json:"context"`
}

var confidenceCmd = &cobra.Command{
	Use:   "confidence",
	Short: "Score how well a generated plan fits a user profile",
	Long: `Confidence reads a JSON document with a user profile, a generated workout
plan, and user context, and prints the weighted confidence score with its
factor breakdown as JSON.`,
	RunE: runConfidence,
}

func init() {
	rootCmd.AddCommand(confidenceCmd)

	confidenceCmd.Flags().StringVarP(&confidenceFile, "file", "f", "-", "Path to the input JSON document (- for stdin)")
}

func runConfidence(cmd *cobra.Command, _ []string) error {
	var input confidenceInput
	if err := readInput(confidenceFile, &input); err != nil {
		return err
	}

	service, err := confidence.NewService(newLogger())
	if err != nil {
		return err
	}

	result := service.Calculate(cmd.Context(), input.Profile, input.Plan, input.Context)

	return printJSON(result)
}
