// Package workout defines the shared domain model for workout configuration
// analysis, plan generation, and confidence scoring.
package workout

// FocusType represents the primary focus of a workout session.
type FocusType string

// Workout focus constants.
const (
	FocusStrength    FocusType = "strength"
	FocusPower       FocusType = "power"
	FocusEndurance   FocusType = "endurance"
	FocusCardio      FocusType = "cardio"
	FocusFlexibility FocusType = "flexibility"
	FocusRecovery    FocusType = "recovery"
)

// FitnessLevel represents the user's self-reported training experience.
type FitnessLevel string

// Fitness level constants.
const (
	FitnessNewToExercise  FitnessLevel = "new to exercise"
	FitnessSomeExperience FitnessLevel = "some experience"
	FitnessAdvanced       FitnessLevel = "advanced athlete"
)

// Difficulty represents the difficulty tier of a generated plan.
type Difficulty string

// Plan difficulty constants.
const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// IntensityLevel classifies how demanding recent training has been.
type IntensityLevel string

// Training intensity constants.
const (
	IntensityLight    IntensityLevel = "light"
	IntensityModerate IntensityLevel = "moderate"
	IntensityIntense  IntensityLevel = "intense"
)

// Physiological thresholds shared by the rule engine and the duration strategy.
const (
	// LowEnergyThreshold marks reported energy (1-10) at or below which the
	// user should avoid demanding work.
	LowEnergyThreshold = 3
	// HighEnergyThreshold marks reported energy at or above which harder
	// work is well supported.
	HighEnergyThreshold = 8
	// HighSorenessAreaCount marks how many sore body areas count as
	// widespread soreness.
	HighSorenessAreaCount = 3
)

// TrainingLoad summarizes the user's recent training volume and intensity.
type TrainingLoad struct {
	AverageIntensity    IntensityLevel `json:"average_intensity"`
	WeeklyVolumeMinutes int            `json:"weekly_volume_minutes"`
	RecentSessionCount  int            `json:"recent_session_count"`
}

// UserProfile describes the user the plan is generated for.
type UserProfile struct {
	FitnessLevel        FitnessLevel `json:"fitness_level"`
	Goals               []string     `json:"goals"`
	Injuries            []string     `json:"injuries"`
	MobilityLimitations []string     `json:"mobility_limitations"`
	AvailableEquipment  []string     `json:"available_equipment"`
}

// Context carries the user profile plus session-level information that the
// analyzers and calculators read alongside the configuration snapshot.
type Context struct {
	Profile UserProfile `json:"profile"`
	// SessionsLast30Days summarizes prior session history.
	SessionsLast30Days int `json:"sessions_last_30_days"`
	// AssistanceLevel is the session preference for how verbose generated
	// guidance should be, e.g. "minimal" or "detailed".
	AssistanceLevel string `json:"assistance_level,omitempty"`
}

// PlannedExercise is a single exercise inside a generated plan phase.
type PlannedExercise struct {
	Name            string   `json:"name"`
	DurationSeconds int      `json:"duration_seconds"`
	Sets            int      `json:"sets,omitempty"`
	Reps            int      `json:"reps,omitempty"`
	Equipment       []string `json:"equipment,omitempty"`
	TargetMuscles   []string `json:"target_muscles,omitempty"`
}

// Phase is one segment of a generated plan.
type Phase struct {
	Name            string            `json:"name"`
	DurationMinutes float64           `json:"duration_minutes"`
	Exercises       []PlannedExercise `json:"exercises"`
}

// Plan is a generated workout plan. It is a plain value produced by an
// external generator and scored by the confidence service.
type Plan struct {
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	Reasoning            string     `json:"reasoning"`
	Difficulty           Difficulty `json:"difficulty"`
	TotalDurationMinutes int        `json:"total_duration_minutes"`
	Focus                FocusType  `json:"focus"`
	Equipment            []string   `json:"equipment"`
	TargetAreas          []string   `json:"target_areas"`
	WarmUp               Phase      `json:"warm_up"`
	MainWorkout          Phase      `json:"main_workout"`
	CoolDown             Phase      `json:"cool_down"`
}

// ExpectedDifficulty maps a fitness level to the plan difficulty it supports.
func ExpectedDifficulty(level FitnessLevel) Difficulty {
	switch level {
	case FitnessNewToExercise:
		return DifficultyBeginner
	case FitnessSomeExperience:
		return DifficultyIntermediate
	case FitnessAdvanced:
		return DifficultyAdvanced
	default:
		return DifficultyIntermediate
	}
}
