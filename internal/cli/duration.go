package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/harjula/fitadvisor/internal/duration"
	"github.com/harjula/fitadvisor/internal/workout"
)

var (
	durationMinutes      int
	durationEnergy       int
	durationSoreness     int
	durationFitnessLevel string
)

var durationCmd = &cobra.Command{
	Use:   "duration",
	Short: "Select a duration strategy for a requested workout length",
	Long: `Duration maps a requested workout length onto a supported duration bucket,
applies contextual adjustments, and prints the selected strategy and its
phase allocation as JSON.`,
	RunE: runDuration,
}

func init() {
	rootCmd.AddCommand(durationCmd)

	durationCmd.Flags().IntVarP(&durationMinutes, "minutes", "m", 0, "Requested workout length in minutes")
	durationCmd.Flags().IntVar(&durationEnergy, "energy", 0, "Reported energy level 1-10 (0 = not reported)")
	durationCmd.Flags().IntVar(&durationSoreness, "soreness", 0, "Number of sore body areas")
	durationCmd.Flags().StringVar(&durationFitnessLevel, "fitness-level", "", `Fitness level, e.g. "new to exercise"`)
	_ = durationCmd.MarkFlagRequired("minutes")
}

func runDuration(_ *cobra.Command, _ []string) error {
	if durationMinutes <= 0 {
		return errors.New("minutes must be positive")
	}

	params := duration.Params{
		RequestedMinutes:  durationMinutes,
		EnergyLevel:       durationEnergy,
		SorenessAreaCount: durationSoreness,
		FitnessLevel:      workout.FitnessLevel(durationFitnessLevel),
	}

	result := duration.SelectStrategy(params)

	return printJSON(struct {
		Result       duration.Result       `json:"result"`
		Optimization duration.Optimization `json:"optimization"`
	}{
		Result:       result,
		Optimization: duration.CreateOptimization(params, result),
	})
}
