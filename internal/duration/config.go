// Package duration maps a requested workout length onto one of the supported
// duration buckets, adjusts it for physiological context, and allocates time
// across warm-up, main, and cool-down phases.
package duration

// Config describes one supported duration bucket. The reference table is
// loaded once and never mutated.
type Config struct {
	Minutes int `json:"minutes"`
	// Phase time allocation in percent of the total; the three always sum
	// to 100 and each is greater than zero.
	WarmupPercent   float64 `json:"warmup_percent"`
	MainPercent     float64 `json:"main_percent"`
	CooldownPercent float64 `json:"cooldown_percent"`
	// Exercise-count targets per phase.
	WarmupExercises   int `json:"warmup_exercises"`
	MainExercises     int `json:"main_exercises"`
	CooldownExercises int `json:"cooldown_exercises"`
	// ComplexityTier bounds how elaborate the session structure can be.
	ComplexityTier string `json:"complexity_tier"`
	// VarietyTier bounds how many exercise variables the session can vary.
	VarietyTier string `json:"variety_tier"`
}

// Complexity and variety tier constants.
const (
	TierMinimal  = "minimal"
	TierBasic    = "basic"
	TierStandard = "standard"
	TierFull     = "full"
)

// supportedConfigs is the fixed bucket table, sorted ascending by minutes.
// The ascending order carries the round-down tie-break in closestSupported.
var supportedConfigs = []Config{
	{
		Minutes:       5,
		WarmupPercent: 20, MainPercent: 70, CooldownPercent: 10,
		WarmupExercises: 1, MainExercises: 3, CooldownExercises: 1,
		ComplexityTier: TierMinimal,
		VarietyTier:    TierMinimal,
	},
	{
		Minutes:       10,
		WarmupPercent: 20, MainPercent: 70, CooldownPercent: 10,
		WarmupExercises: 2, MainExercises: 4, CooldownExercises: 1,
		ComplexityTier: TierMinimal,
		VarietyTier:    TierBasic,
	},
	{
		Minutes:       15,
		WarmupPercent: 15, MainPercent: 75, CooldownPercent: 10,
		WarmupExercises: 2, MainExercises: 5, CooldownExercises: 2,
		ComplexityTier: TierBasic,
		VarietyTier:    TierBasic,
	},
	{
		Minutes:       20,
		WarmupPercent: 15, MainPercent: 70, CooldownPercent: 15,
		WarmupExercises: 3, MainExercises: 6, CooldownExercises: 2,
		ComplexityTier: TierBasic,
		VarietyTier:    TierStandard,
	},
	{
		Minutes:       30,
		WarmupPercent: 15, MainPercent: 70, CooldownPercent: 15,
		WarmupExercises: 3, MainExercises: 8, CooldownExercises: 3,
		ComplexityTier: TierStandard,
		VarietyTier:    TierStandard,
	},
	{
		Minutes:       45,
		WarmupPercent: 10, MainPercent: 75, CooldownPercent: 15,
		WarmupExercises: 4, MainExercises: 10, CooldownExercises: 3,
		ComplexityTier: TierFull,
		VarietyTier:    TierFull,
	},
}

// SupportedMinutes returns the fixed list of supported durations in minutes.
func SupportedMinutes() []int {
	minutes := make([]int, len(supportedConfigs))
	for i, cfg := range supportedConfigs {
		minutes[i] = cfg.Minutes
	}
	return minutes
}

// configFor returns the bucket config for the given supported minute count.
func configFor(minutes int) (Config, bool) {
	for _, cfg := range supportedConfigs {
		if cfg.Minutes == minutes {
			return cfg, true
		}
	}
	return Config{}, false
}
