package confidence

import (
	"github.com/harjula/fitadvisor/internal/workout"
)

// Profile match scoring adjustments.
const (
	profileBaseScore          = 0.5
	difficultyMatchBonus      = 0.3
	difficultyAdjacentBonus   = 0.1
	difficultyMismatchPenalty = 0.2
	equipmentAccessWeight     = 0.2
)

// profileMatchCalculator scores how well plan difficulty and equipment align
// with the user's fitness level and equipment access.
type profileMatchCalculator struct{}

func (profileMatchCalculator) FactorName() string { return FactorProfileMatch }
func (profileMatchCalculator) Weight() float64    { return ProfileMatchWeight }
func (profileMatchCalculator) Description() string {
	return "How well plan intensity and equipment align with the user's fitness level and access"
}

func (profileMatchCalculator) Calculate(profile workout.UserProfile, plan workout.Plan, _ workout.Context) float64 {
	score := profileBaseScore

	expected := workout.ExpectedDifficulty(profile.FitnessLevel)
	switch {
	case plan.Difficulty == expected:
		score += difficultyMatchBonus
	case difficultyAdjacent(plan.Difficulty, expected):
		score += difficultyAdjacentBonus
	default:
		score -= difficultyMismatchPenalty
	}

	score += equipmentAccessWeight * overlapRatio(plan.Equipment, profile.AvailableEquipment)

	return clamp(score)
}

// difficultyAdjacent reports whether two difficulty tiers are one step apart.
func difficultyAdjacent(a, b workout.Difficulty) bool {
	rank := map[workout.Difficulty]int{
		workout.DifficultyBeginner:     1,
		workout.DifficultyIntermediate: 2,
		workout.DifficultyAdvanced:     3,
	}
	ra, aOK := rank[a]
	rb, bOK := rank[b]
	return aOK && bOK && absInt(ra-rb) == 1
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// overlapRatio returns the fraction of required items that are available.
// Nothing required counts as a full match.
func overlapRatio(required, available []string) float64 {
	if len(required) == 0 {
		return 1
	}
	availableSet := make(map[string]struct{}, len(available))
	for _, item := range available {
		availableSet[normalize(item)] = struct{}{}
	}
	matched := 0
	for _, item := range required {
		if _, ok := availableSet[normalize(item)]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(required))
}
