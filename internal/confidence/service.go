package confidence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/harjula/fitadvisor/internal/workout"
)

// weightSumTolerance is the floating point tolerance for the weight-sum
// invariant.
const weightSumTolerance = 1e-9

// Service runs all factor calculators and combines them into one weighted
// confidence score.
type Service struct {
	logger      *slog.Logger
	calculators []Calculator
}

// NewService creates a confidence service with the default calculators.
// It fails fast when the calculator set is empty or the weights do not sum
// to 1.0; misconfiguration is a setup-time error, never a per-call one.
func NewService(logger *slog.Logger) (*Service, error) {
	return newService(logger, []Calculator{
		profileMatchCalculator{},
		safetyAlignmentCalculator{},
		equipmentFitCalculator{},
		goalAlignmentCalculator{},
		structureQualityCalculator{},
	})
}

func newService(logger *slog.Logger, calculators []Calculator) (*Service, error) {
	if len(calculators) == 0 {
		return nil, errors.New("calculator set cannot be empty")
	}
	weightSum := 0.0
	for _, calc := range calculators {
		weightSum += calc.Weight()
	}
	if math.Abs(weightSum-1.0) > weightSumTolerance {
		return nil, fmt.Errorf("factor weights must sum to 1.0, got %v", weightSum)
	}
	return &Service{logger: logger, calculators: calculators}, nil
}

// Calculate scores the generated plan against the user profile and context.
// Factor scores outside [0,1] are clamped and logged; a panicking calculator
// contributes the minimum score instead of failing the pass.
func (s *Service) Calculate(
	ctx context.Context,
	profile workout.UserProfile,
	plan workout.Plan,
	uc workout.Context,
) Result {
	start := time.Now()

	var (
		overall float64
		factors Factors
		weights = make(map[string]float64, len(s.calculators))
	)
	for _, calc := range s.calculators {
		score := s.safeCalculate(ctx, calc, profile, plan, uc)
		overall += score * calc.Weight()
		weights[calc.FactorName()] = calc.Weight()
		factors.set(calc.FactorName(), score)
	}

	level := levelFor(overall)
	result := Result{
		OverallScore:    overall,
		Level:           level,
		Factors:         factors,
		Recommendations: s.recommendations(level, factors),
		Metadata: Metadata{
			CalculatedAt:  start.UTC(),
			CalculationMs: float64(time.Since(start).Microseconds()) / 1000.0,
			Weights:       weights,
			DataQuality:   dataQuality(profile, plan),
		},
	}

	s.logger.LogAttrs(ctx, slog.LevelDebug, "calculated confidence",
		slog.Float64("overall_score", overall),
		slog.String("level", string(level)))

	return result
}

// safeCalculate runs one calculator, recovering panics as minimum score and
// clamping out-of-range output.
func (s *Service) safeCalculate(
	ctx context.Context,
	calc Calculator,
	profile workout.UserProfile,
	plan workout.Plan,
	uc workout.Context,
) (score float64) {
	defer func() {
		if excp := recover(); excp != nil {
			s.logger.LogAttrs(ctx, slog.LevelWarn, "calculator panicked",
				slog.String("factor", calc.FactorName()), slog.Any("panic", excp))
			score = 0
		}
	}()

	score = calc.Calculate(profile, plan, uc)
	if score < 0 || score > 1 {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "calculator returned out-of-range score",
			slog.String("factor", calc.FactorName()), slog.Float64("score", score))
		score = clamp(score)
	}
	return score
}

// recommendations produces at least one textual recommendation whenever the
// overall level is not excellent, naming the weakest dimensions.
func (s *Service) recommendations(level Level, factors Factors) []string {
	if level == LevelExcellent {
		return nil
	}

	var recommendations []string
	if factors.ProfileMatch < goodThreshold {
		recommendations = append(recommendations,
			"Adjust the plan difficulty to better match the user's fitness level")
	}
	if factors.SafetyAlignment < goodThreshold {
		recommendations = append(recommendations,
			"Rework exercises that touch stated injuries or mobility limitations")
	}
	if factors.EquipmentFit < goodThreshold {
		recommendations = append(recommendations,
			"Substitute exercises that need equipment the user does not have")
	}
	if factors.GoalAlignment < goodThreshold {
		recommendations = append(recommendations,
			"Align the plan focus more closely with the user's stated goals")
	}
	if factors.StructureQuality < goodThreshold {
		recommendations = append(recommendations,
			"Complete the plan structure with a warm-up, main block, and cool-down")
	}
	if len(recommendations) == 0 {
		recommendations = append(recommendations,
			"Review the weakest scoring factors to push the plan toward an excellent match")
	}
	return recommendations
}

// set assigns a factor score by name.
func (f *Factors) set(name string, score float64) {
	switch name {
	case FactorProfileMatch:
		f.ProfileMatch = score
	case FactorSafetyAlignment:
		f.SafetyAlignment = score
	case FactorEquipmentFit:
		f.EquipmentFit = score
	case FactorGoalAlignment:
		f.GoalAlignment = score
	case FactorStructureQuality:
		f.StructureQuality = score
	}
}

// dataQuality indicates how complete the scoring inputs were.
func dataQuality(profile workout.UserProfile, plan workout.Plan) string {
	complete := len(plan.MainWorkout.Exercises) > 0 &&
		plan.TotalDurationMinutes > 0 &&
		profile.FitnessLevel != ""
	if complete {
		return "complete"
	}
	return "partial"
}
