// Package confidence scores how well a generated workout plan matches the
// user's profile and constraints, as a weighted sum of five independent 0-1
// factors.
package confidence

import (
	"time"

	"github.com/harjula/fitadvisor/internal/workout"
)

// Factor weights. The five weights must sum to 1.0; NewService enforces this
// at construction time.
const (
	ProfileMatchWeight     = 0.25
	SafetyAlignmentWeight  = 0.20
	EquipmentFitWeight     = 0.15
	GoalAlignmentWeight    = 0.20
	StructureQualityWeight = 0.20
)

// Factor name constants.
const (
	FactorProfileMatch     = "profile_match"
	FactorSafetyAlignment  = "safety_alignment"
	FactorEquipmentFit     = "equipment_fit"
	FactorGoalAlignment    = "goal_alignment"
	FactorStructureQuality = "structure_quality"
)

// Calculator scores one dimension of plan/profile fit. Implementations are
// pure arithmetic over already-loaded values and must return a score in
// [0,1] even for degenerate input.
type Calculator interface {
	Calculate(profile workout.UserProfile, plan workout.Plan, uc workout.Context) float64
	FactorName() string
	Weight() float64
	Description() string
}

// Factors holds the five factor scores of one calculation.
type Factors struct {
	ProfileMatch     float64 `json:"profile_match"`
	SafetyAlignment  float64 `json:"safety_alignment"`
	EquipmentFit     float64 `json:"equipment_fit"`
	GoalAlignment    float64 `json:"goal_alignment"`
	StructureQuality float64 `json:"structure_quality"`
}

// Level is the qualitative confidence band.
type Level string

// Confidence level constants.
const (
	LevelExcellent Level = "excellent"
	LevelGood      Level = "good"
	LevelFair      Level = "fair"
	LevelPoor      Level = "poor"
)

// Score bands for deriving levels.
const (
	excellentThreshold = 0.85
	goodThreshold      = 0.70
	fairThreshold      = 0.50
)

// Result is the outcome of one confidence calculation.
type Result struct {
	OverallScore    float64  `json:"overall_score"`
	Level           Level    `json:"level"`
	Factors         Factors  `json:"factors"`
	Recommendations []string `json:"recommendations"`
	Metadata        Metadata `json:"metadata"`
}

// Metadata describes how the score was computed.
type Metadata struct {
	CalculatedAt  time.Time          `json:"calculated_at"`
	CalculationMs float64            `json:"calculation_ms"`
	Weights       map[string]float64 `json:"weights"`
	DataQuality   string             `json:"data_quality"`
}

// levelFor maps an overall score onto its qualitative band.
func levelFor(score float64) Level {
	switch {
	case score >= excellentThreshold:
		return LevelExcellent
	case score >= goodThreshold:
		return LevelGood
	case score >= fairThreshold:
		return LevelFair
	default:
		return LevelPoor
	}
}

// clamp bounds a score to [0,1].
func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
