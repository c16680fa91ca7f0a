package confidence

import (
	"strings"

	"github.com/harjula/fitadvisor/internal/workout"
)

// Goal alignment scoring constants.
const (
	// noGoalsScore is the neutral score when the user stated no goals.
	noGoalsScore = 0.5
	// unmatchedGoalsFloor is the floor when goals exist but none match a
	// plan that at least describes itself.
	unmatchedGoalsFloor = 0.2
)

// goalKeywords maps a stated goal to the terms that signal a matching plan.
var goalKeywords = map[string][]string{
	"strength":    {"strength", "power", "muscle", "lift"},
	"muscle gain": {"strength", "hypertrophy", "muscle"},
	"endurance":   {"endurance", "cardio", "stamina", "aerobic"},
	"weight loss": {"cardio", "hiit", "calorie", "fat"},
	"flexibility": {"flexibility", "mobility", "stretch", "yoga"},
	"recovery":    {"recovery", "mobility", "gentle", "restorative"},
}

// goalAlignmentCalculator scores the semantic match between the plan's
// declared focus and reasoning and the user's stated goals.
type goalAlignmentCalculator struct{}

func (goalAlignmentCalculator) FactorName() string { return FactorGoalAlignment }
func (goalAlignmentCalculator) Weight() float64    { return GoalAlignmentWeight }
func (goalAlignmentCalculator) Description() string {
	return "Semantic match between the plan's focus and reasoning and the user's stated goals"
}

func (goalAlignmentCalculator) Calculate(profile workout.UserProfile, plan workout.Plan, _ workout.Context) float64 {
	if len(profile.Goals) == 0 {
		return noGoalsScore
	}

	planText := normalize(strings.Join([]string{
		plan.Title, plan.Description, plan.Reasoning, string(plan.Focus),
	}, " "))

	matched := 0
	for _, goal := range profile.Goals {
		if goalMatchesPlan(goal, planText) {
			matched++
		}
	}

	score := float64(matched) / float64(len(profile.Goals))
	if matched == 0 && planText != "" {
		score = unmatchedGoalsFloor
	}
	return clamp(score)
}

// goalMatchesPlan reports whether the plan text mentions the goal or any of
// its known keywords.
func goalMatchesPlan(goal, planText string) bool {
	needle := normalize(goal)
	if needle != "" && strings.Contains(planText, needle) {
		return true
	}
	for _, keyword := range goalKeywords[needle] {
		if strings.Contains(planText, keyword) {
			return true
		}
	}
	return false
}
