package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/harjula/fitadvisor/internal/analysis"
)

var validateFile string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a workout configuration for blocking conflicts",
	Long: `Validate reads a JSON document with a workout configuration snapshot and
user context and reports whether the configuration is valid. The exit code
is non-zero when a critical conflict blocks the configuration.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "-", "Path to the input JSON document (- for stdin)")
}

func runValidate(cmd *cobra.Command, _ []string) error {
	var input configurationInput
	if err := readInput(validateFile, &input); err != nil {
		return err
	}

	service := analysis.NewService(newLogger())
	result := service.ValidateConfiguration(cmd.Context(), input.Configuration, input.Context)

	if err := printJSON(result); err != nil {
		return err
	}

	if !result.IsValid {
		cmd.SilenceUsage = true
		return errors.New("configuration is not valid")
	}

	return nil
}
