package plangen

import (
	"fmt"
	"strings"

	"github.com/harjula/fitadvisor/internal/duration"
	"github.com/harjula/fitadvisor/internal/workout"
)

// exercisePool holds the deterministic exercises the fallback draws from,
// per focus. Bodyweight only so the fallback never depends on equipment.
var exercisePool = map[workout.FocusType][]string{
	workout.FocusStrength:    {"Push-ups", "Squats", "Lunges", "Plank", "Glute bridges", "Wall sit", "Superman hold", "Calf raises"},
	workout.FocusPower:       {"Jump squats", "Burpees", "Explosive push-ups", "Broad jumps", "High knees", "Skater hops"},
	workout.FocusEndurance:   {"Jumping jacks", "Mountain climbers", "Step-ups", "High knees", "Squats", "Flutter kicks"},
	workout.FocusCardio:      {"Jumping jacks", "High knees", "Burpees", "Mountain climbers", "Butt kicks", "Skater hops"},
	workout.FocusFlexibility: {"Forward fold", "Hip flexor stretch", "Cat-cow", "Seated twist", "Hamstring stretch", "Child's pose"},
	workout.FocusRecovery:    {"Gentle walk in place", "Cat-cow", "Child's pose", "Neck rolls", "Shoulder circles", "Deep breathing"},
}

var warmUpPool = []string{"Arm circles", "Leg swings", "Torso twists", "March in place", "Shoulder rolls"}

var coolDownPool = []string{"Standing quad stretch", "Hamstring stretch", "Chest opener", "Child's pose", "Deep breathing"}

// fallbackPlan builds a deterministic plan sized by the duration strategy.
// It is used when no API key is configured or generation fails.
func fallbackPlan(req Request) workout.Plan {
	result := duration.SelectStrategy(duration.Params{
		RequestedMinutes:  req.DurationMinutes,
		EnergyLevel:       req.EnergyLevel,
		SorenessAreaCount: len(req.SoreAreas),
		FitnessLevel:      req.Profile.FitnessLevel,
	})
	cfg := result.Config

	warmUpMinutes := float64(cfg.Minutes) * cfg.WarmupPercent / 100
	mainMinutes := float64(cfg.Minutes) * cfg.MainPercent / 100
	coolDownMinutes := float64(cfg.Minutes) * cfg.CooldownPercent / 100

	pool, ok := exercisePool[req.Focus]
	if !ok {
		pool = exercisePool[workout.FocusEndurance]
	}

	plan := workout.Plan{
		Title:                fmt.Sprintf("%d-minute %s session", cfg.Minutes, req.Focus),
		Description:          fmt.Sprintf("A %s bodyweight session built from a fixed exercise library.", req.Focus),
		Reasoning:            fallbackReasoning(req, result),
		Difficulty:           workout.ExpectedDifficulty(req.Profile.FitnessLevel),
		TotalDurationMinutes: cfg.Minutes,
		Focus:                req.Focus,
		Equipment:            []string{},
		TargetAreas:          req.TargetAreas,
		WarmUp:               buildPhase("Warm-up", warmUpMinutes, warmUpPool, cfg.WarmupExercises),
		MainWorkout:          buildPhase("Main workout", mainMinutes, pool, cfg.MainExercises),
		CoolDown:             buildPhase("Cool-down", coolDownMinutes, coolDownPool, cfg.CooldownExercises),
	}

	return plan
}

func fallbackReasoning(req Request, result duration.Result) string {
	parts := []string{
		fmt.Sprintf("Built offline from the %s exercise library.", req.Focus),
	}

	if result.AdjustmentReason != "" {
		parts = append(parts, result.AdjustmentReason)
	}

	return strings.Join(parts, " ")
}

// buildPhase spreads the phase duration evenly across count exercises from
// the pool, cycling if the pool is smaller than the count.
func buildPhase(name string, minutes float64, pool []string, count int) workout.Phase {
	if count <= 0 || len(pool) == 0 {
		return workout.Phase{Name: name, DurationMinutes: minutes, Exercises: []workout.PlannedExercise{}}
	}

	perExerciseSeconds := int(minutes * 60 / float64(count))

	exercises := make([]workout.PlannedExercise, 0, count)
	for i := range count {
		exercises = append(exercises, workout.PlannedExercise{
			Name:            pool[i%len(pool)],
			DurationSeconds: perExerciseSeconds,
		})
	}

	return workout.Phase{
		Name:            name,
		DurationMinutes: minutes,
		Exercises:       exercises,
	}
}
