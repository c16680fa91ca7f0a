package confidence

import (
	"github.com/harjula/fitadvisor/internal/workout"
)

// Structure quality check weights; they sum to 1.0.
const (
	warmupPresentWeight   = 0.2
	mainPresentWeight     = 0.3
	cooldownPresentWeight = 0.2
	warmupShareWeight     = 0.15
	cooldownShareWeight   = 0.15
)

// Sane phase shares of total duration, in percent.
const (
	warmupShareMin   = 5.0
	warmupShareMax   = 25.0
	cooldownShareMin = 5.0
	cooldownShareMax = 20.0
)

// structureQualityCalculator scores completeness and coherence of the plan's
// phase structure. An empty plan scores 0; the overall confidence stays
// positive through the other factors.
type structureQualityCalculator struct{}

func (structureQualityCalculator) FactorName() string { return FactorStructureQuality }
func (structureQualityCalculator) Weight() float64    { return StructureQualityWeight }
func (structureQualityCalculator) Description() string {
	return "Completeness and coherence of the plan's warm-up, main, and cool-down structure"
}

func (structureQualityCalculator) Calculate(_ workout.UserProfile, plan workout.Plan, _ workout.Context) float64 {
	score := 0.0

	if len(plan.WarmUp.Exercises) > 0 {
		score += warmupPresentWeight
	}
	if len(plan.MainWorkout.Exercises) > 0 {
		score += mainPresentWeight
	}
	if len(plan.CoolDown.Exercises) > 0 {
		score += cooldownPresentWeight
	}

	total := plan.WarmUp.DurationMinutes + plan.MainWorkout.DurationMinutes + plan.CoolDown.DurationMinutes
	if total > 0 {
		warmupShare := plan.WarmUp.DurationMinutes / total * 100
		if warmupShare >= warmupShareMin && warmupShare <= warmupShareMax {
			score += warmupShareWeight
		}
		cooldownShare := plan.CoolDown.DurationMinutes / total * 100
		if cooldownShare >= cooldownShareMin && cooldownShare <= cooldownShareMax {
			score += cooldownShareWeight
		}
	}

	return clamp(score)
}
