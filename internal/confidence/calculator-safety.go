package confidence

import (
	"strings"

	"github.com/harjula/fitadvisor/internal/workout"
)

// Safety alignment penalties.
const (
	injuryOverlapPenalty   = 0.2
	mobilityOverlapPenalty = 0.1
	overreachPenalty       = 0.3
)

// safetyAlignmentCalculator penalizes plans whose intensity or exercise
// selection conflicts with stated injuries, soreness, or mobility limits.
// A plan that touches nothing risky scores 1.
type safetyAlignmentCalculator struct{}

func (safetyAlignmentCalculator) FactorName() string { return FactorSafetyAlignment }
func (safetyAlignmentCalculator) Weight() float64    { return SafetyAlignmentWeight }
func (safetyAlignmentCalculator) Description() string {
	return "Penalizes plans that conflict with stated injuries, soreness, or mobility limitations"
}

func (safetyAlignmentCalculator) Calculate(profile workout.UserProfile, plan workout.Plan, _ workout.Context) float64 {
	score := 1.0

	targets := planTargets(plan)
	for _, injury := range profile.Injuries {
		if touchesArea(targets, injury) {
			score -= injuryOverlapPenalty
		}
	}
	for _, limitation := range profile.MobilityLimitations {
		if touchesArea(targets, limitation) {
			score -= mobilityOverlapPenalty
		}
	}

	if plan.Difficulty == workout.DifficultyAdvanced && profile.FitnessLevel == workout.FitnessNewToExercise {
		score -= overreachPenalty
	}

	return clamp(score)
}

// planTargets collects every normalized area and muscle the plan touches.
func planTargets(plan workout.Plan) []string {
	var targets []string
	for _, area := range plan.TargetAreas {
		targets = append(targets, normalize(area))
	}
	for _, phase := range []workout.Phase{plan.WarmUp, plan.MainWorkout, plan.CoolDown} {
		for _, exercise := range phase.Exercises {
			for _, muscle := range exercise.TargetMuscles {
				targets = append(targets, normalize(muscle))
			}
		}
	}
	return targets
}

// touchesArea reports whether any plan target mentions the given body area.
// Substring matching covers phrasing like "lower back" vs "back".
func touchesArea(targets []string, area string) bool {
	needle := normalize(area)
	if needle == "" {
		return false
	}
	for _, target := range targets {
		if strings.Contains(target, needle) || strings.Contains(needle, target) {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
