package duration

import (
	"fmt"
	"strings"

	"github.com/harjula/fitadvisor/internal/workout"
)

// BeginnerMaxMinutes caps session length for users new to exercise.
const BeginnerMaxMinutes = 30

// Params carries the requested duration and the physiological context the
// strategy adjusts for. EnergyLevel of 0 means "not reported".
type Params struct {
	RequestedMinutes  int                  `json:"requested_minutes"`
	EnergyLevel       int                  `json:"energy_level,omitempty"`
	SorenessAreaCount int                  `json:"soreness_area_count,omitempty"`
	FitnessLevel      workout.FitnessLevel `json:"fitness_level,omitempty"`
}

// Result is the outcome of one strategy selection. It is computed per request
// and never persisted.
type Result struct {
	Config             Config   `json:"config"`
	AdjustedMinutes    int      `json:"adjusted_minutes"`
	IsExactMatch       bool     `json:"is_exact_match"`
	AdjustmentReason   string   `json:"adjustment_reason,omitempty"`
	Recommendations    []string `json:"recommendations,omitempty"`
	AlternativeOptions []int    `json:"alternative_options"`
}

// SelectStrategy maps the requested duration onto a supported bucket and
// applies contextual downward adjustments in a fixed order: low energy,
// widespread soreness, then the beginner cap. Adjustments only ever shorten
// the session.
func SelectStrategy(p Params) Result {
	idx := closestSupported(p.RequestedMinutes)
	isExact := supportedConfigs[idx].Minutes == p.RequestedMinutes

	var (
		reasons         []string
		recommendations []string
	)
	if !isExact {
		reasons = append(reasons, fmt.Sprintf("%dmin not directly supported, using %dmin instead",
			p.RequestedMinutes, supportedConfigs[idx].Minutes))
	}

	if p.EnergyLevel > 0 && p.EnergyLevel <= workout.LowEnergyThreshold && idx > 0 {
		idx--
		reasons = append(reasons, fmt.Sprintf("reduced to %dmin due to low energy", supportedConfigs[idx].Minutes))
		recommendations = append(recommendations, "A shorter session keeps quality high on low-energy days")
	}

	if p.SorenessAreaCount >= workout.HighSorenessAreaCount && idx > 0 {
		idx--
		reasons = append(reasons, fmt.Sprintf("reduced to %dmin due to widespread soreness",
			supportedConfigs[idx].Minutes))
		recommendations = append(recommendations, "Keep movements gentle while multiple areas are sore")
	}

	if p.FitnessLevel == workout.FitnessNewToExercise && supportedConfigs[idx].Minutes > BeginnerMaxMinutes {
		idx = indexOf(BeginnerMaxMinutes)
		reasons = append(reasons, fmt.Sprintf("capped at %dmin for new exercisers", BeginnerMaxMinutes))
		recommendations = append(recommendations, "Build the habit first - session length can grow later")
	}

	if p.EnergyLevel >= workout.HighEnergyThreshold {
		recommendations = append(recommendations, "High energy level - consider higher intensity")
	}

	chosen := supportedConfigs[idx]
	return Result{
		Config:             chosen,
		AdjustedMinutes:    chosen.Minutes,
		IsExactMatch:       isExact,
		AdjustmentReason:   strings.Join(reasons, "; "),
		Recommendations:    recommendations,
		AlternativeOptions: alternativesTo(chosen.Minutes),
	}
}

// closestSupported returns the index of the bucket with minimum absolute
// distance to the requested minutes. On a tie the lower bucket wins (round
// down): the table is ascending and only a strictly smaller distance replaces
// the current candidate.
func closestSupported(requestedMinutes int) int {
	best := 0
	for i, cfg := range supportedConfigs {
		if absDiff(cfg.Minutes, requestedMinutes) < absDiff(supportedConfigs[best].Minutes, requestedMinutes) {
			best = i
		}
	}
	return best
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

func indexOf(minutes int) int {
	for i, cfg := range supportedConfigs {
		if cfg.Minutes == minutes {
			return i
		}
	}
	return 0
}

// alternativesTo returns all supported durations except the chosen one.
func alternativesTo(chosenMinutes int) []int {
	alternatives := make([]int, 0, len(supportedConfigs)-1)
	for _, cfg := range supportedConfigs {
		if cfg.Minutes != chosenMinutes {
			alternatives = append(alternatives, cfg.Minutes)
		}
	}
	return alternatives
}

// ValidateStrategy re-derives the expected bucket and reports whether the
// result is consistent with a fresh computation. Consistency guard, not a
// business rule.
func ValidateStrategy(result Result, p Params) bool {
	if _, ok := configFor(result.Config.Minutes); !ok {
		return false
	}
	if result.AdjustedMinutes != result.Config.Minutes {
		return false
	}
	fresh := SelectStrategy(p)
	return fresh.AdjustedMinutes == result.AdjustedMinutes && fresh.IsExactMatch == result.IsExactMatch
}

// PhaseAllocation splits the adjusted duration across the three phases.
// Every supported bucket allocates more than zero minutes to each phase.
type PhaseAllocation struct {
	WarmupMinutes   float64 `json:"warmup_minutes"`
	MainMinutes     float64 `json:"main_minutes"`
	CooldownMinutes float64 `json:"cooldown_minutes"`
}

// Optimization is the caller-facing view of how the request was served.
type Optimization struct {
	RequestedMinutes     int             `json:"requested_minutes"`
	ActualMinutes        int             `json:"actual_minutes"`
	IsOptimal            bool            `json:"is_optimal"`
	AlternativeDurations []int           `json:"alternative_durations"`
	PhaseAllocation      PhaseAllocation `json:"phase_allocation"`
}

// CreateOptimization derives the optimization view for a strategy result.
func CreateOptimization(p Params, result Result) Optimization {
	total := float64(result.AdjustedMinutes)
	return Optimization{
		RequestedMinutes:     p.RequestedMinutes,
		ActualMinutes:        result.AdjustedMinutes,
		IsOptimal:            p.RequestedMinutes == result.AdjustedMinutes && result.IsExactMatch,
		AlternativeDurations: alternativesTo(result.AdjustedMinutes),
		PhaseAllocation: PhaseAllocation{
			WarmupMinutes:   total * result.Config.WarmupPercent / 100,
			MainMinutes:     total * result.Config.MainPercent / 100,
			CooldownMinutes: total * result.Config.CooldownPercent / 100,
		},
	}
}
