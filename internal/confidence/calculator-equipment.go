package confidence

import (
	"github.com/harjula/fitadvisor/internal/workout"
)

// equipmentFitCalculator scores the overlap between the equipment the plan
// requires and what the user has available. A plan requiring nothing fits
// perfectly.
type equipmentFitCalculator struct{}

func (equipmentFitCalculator) FactorName() string { return FactorEquipmentFit }
func (equipmentFitCalculator) Weight() float64    { return EquipmentFitWeight }
func (equipmentFitCalculator) Description() string {
	return "Overlap between the equipment the plan requires and what the user has available"
}

func (equipmentFitCalculator) Calculate(profile workout.UserProfile, plan workout.Plan, _ workout.Context) float64 {
	required := plan.Equipment
	// Fall back to per-exercise equipment when the plan level list is empty.
	if len(required) == 0 {
		required = exerciseEquipment(plan)
	}
	return clamp(overlapRatio(required, profile.AvailableEquipment))
}

// exerciseEquipment collects the distinct equipment named by the plan's
// exercises.
func exerciseEquipment(plan workout.Plan) []string {
	seen := make(map[string]struct{})
	var items []string
	for _, phase := range []workout.Phase{plan.WarmUp, plan.MainWorkout, plan.CoolDown} {
		for _, exercise := range phase.Exercises {
			for _, item := range exercise.Equipment {
				key := normalize(item)
				if _, ok := seen[key]; ok {
					continue
				}
				seen[key] = struct{}{}
				items = append(items, item)
			}
		}
	}
	return items
}
