package analysis

import (
	"fmt"
	"strings"

	"github.com/harjula/fitadvisor/internal/workout"
)

// Rule thresholds. The comparators in the rule conditions are part of the
// contract; tune the values here, not in the rules.
const (
	// ShortDurationMinutes is the ceiling below which a session is too
	// short to absorb much work.
	ShortDurationMinutes = 15
	// LongDurationMinutes is the floor above which a session is demanding.
	LongDurationMinutes = 45
	// VeryLongDurationMinutes is the floor above which a session needs
	// deliberate structure.
	VeryLongDurationMinutes = 60
	// MaxEquipmentForShortWorkout is how many equipment pieces fit into a
	// session shorter than VeryLongDurationMinutes without changeover
	// overhead dominating.
	MaxEquipmentForShortWorkout = 3
	// MinEquipmentForStrength is the minimum equipment count for effective
	// strength work.
	MinEquipmentForStrength = 2
	// OvertrainingWeeklyVolumeMinutes is the weekly training volume above
	// which stacking intense work risks overtraining.
	OvertrainingWeeklyVolumeMinutes = 300
)

// conflictRule pairs a pure predicate with a conflict generator. Rules never
// mutate the snapshot and must treat missing fields as a non-match.
type conflictRule struct {
	id        string
	condition func(snap Snapshot, uc workout.Context) bool
	generate  func(snap Snapshot, uc workout.Context) Conflict
}

func focusIn(snap Snapshot, focuses ...workout.FocusType) bool {
	focus, ok := snap.Focus.Value()
	if !ok {
		return false
	}
	for _, f := range focuses {
		if focus == f {
			return true
		}
	}
	return false
}

func energyAtOrBelow(snap Snapshot, threshold int) bool {
	energy, ok := snap.Energy.Rating()
	return ok && energy <= threshold
}

func energyAtOrAbove(snap Snapshot, threshold int) bool {
	energy, ok := snap.Energy.Rating()
	return ok && energy >= threshold
}

func intenseLoad(snap Snapshot) bool {
	return snap.TrainingLoad != nil && snap.TrainingLoad.AverageIntensity == workout.IntensityIntense
}

// conflictRules is the declarative conflict rule table, grouped by the field
// pair each rule reasons about. Every rule is evaluated on every pass.
var conflictRules = []conflictRule{
	// energy <-> duration
	{
		id: "low-energy-long-duration",
		condition: func(snap Snapshot, _ workout.Context) bool {
			minutes, ok := snap.Duration.Minutes()
			return ok && energyAtOrBelow(snap, workout.LowEnergyThreshold) && minutes > LongDurationMinutes
		},
		generate: func(snap Snapshot, _ workout.Context) Conflict {
			minutes, _ := snap.Duration.Minutes()
			return Conflict{
				ID:         "low-energy-long-duration",
				Components: []string{FieldEnergy, FieldDuration},
				Type:       ConflictEfficiency,
				Severity:   SeverityHigh,
				Description: fmt.Sprintf(
					"A %d minute session is hard to sustain at your current energy level", minutes),
				SuggestedResolution: "Shorten the session or pick a lighter focus until energy recovers",
				Confidence:          0.9,
				Impact:              ImpactPerformance,
				Metadata:            map[string]any{"duration_minutes": minutes},
			}
		},
	},
	{
		id: "high-energy-very-short-duration",
		condition: func(snap Snapshot, _ workout.Context) bool {
			minutes, ok := snap.Duration.Minutes()
			return ok && energyAtOrAbove(snap, workout.HighEnergyThreshold) && minutes < ShortDurationMinutes
		},
		generate: func(snap Snapshot, _ workout.Context) Conflict {
			minutes, _ := snap.Duration.Minutes()
			return Conflict{
				ID:                  "high-energy-very-short-duration",
				Components:          []string{FieldEnergy, FieldDuration},
				Type:                ConflictUserExperience,
				Severity:            SeverityLow,
				Description:         fmt.Sprintf("High energy is underused in a %d minute session", minutes),
				SuggestedResolution: "Extend the session to make use of the available energy",
				Confidence:          0.6,
				Impact:              ImpactPerformance,
				Metadata:            nil,
			}
		},
	},
	// energy <-> focus
	{
		id: "low-energy-demanding-focus",
		condition: func(snap Snapshot, _ workout.Context) bool {
			return energyAtOrBelow(snap, workout.LowEnergyThreshold) &&
				focusIn(snap, workout.FocusStrength, workout.FocusPower)
		},
		generate: func(snap Snapshot, _ workout.Context) Conflict {
			focus, _ := snap.Focus.Value()
			return Conflict{
				ID:                  "low-energy-demanding-focus",
				Components:          []string{FieldEnergy, FieldFocus},
				Type:                ConflictSafety,
				Severity:            SeverityHigh,
				Description:         fmt.Sprintf("%s work at low energy raises injury risk from degraded form", focus),
				SuggestedResolution: "Switch to flexibility or recovery work, or rest today",
				Confidence:          0.85,
				Impact:              ImpactSafety,
				Metadata:            map[string]any{"focus": string(focus)},
			}
		},
	},
	// equipment <-> focus
	{
		id: "no-equipment-strength-focus",
		condition: func(snap Snapshot, _ workout.Context) bool {
			return snap.Equipment.Count() == 0 && focusIn(snap, workout.FocusStrength)
		},
		generate: func(_ Snapshot, _ workout.Context) Conflict {
			return Conflict{
				ID:                  "no-equipment-strength-focus",
				Components:          []string{FieldEquipment, FieldFocus},
				Type:                ConflictEfficiency,
				Severity:            SeverityMedium,
				Description:         "Strength focus without any equipment limits progressive overload",
				SuggestedResolution: "Add resistance equipment or switch to a bodyweight-friendly focus",
				Confidence:          0.8,
				Impact:              ImpactEffectiveness,
				Metadata:            nil,
			}
		},
	},
	// equipment <-> duration
	{
		id: "equipment-changeover-overhead",
		condition: func(snap Snapshot, _ workout.Context) bool {
			minutes, ok := snap.Duration.Minutes()
			return ok && snap.Equipment.Count() > MaxEquipmentForShortWorkout && minutes < VeryLongDurationMinutes
		},
		generate: func(snap Snapshot, _ workout.Context) Conflict {
			minutes, _ := snap.Duration.Minutes()
			count := snap.Equipment.Count()
			return Conflict{
				ID:         "equipment-changeover-overhead",
				Components: []string{FieldEquipment, FieldDuration},
				Type:       ConflictEfficiency,
				Severity:   SeverityMedium,
				Description: fmt.Sprintf(
					"Rotating through %d equipment pieces eats into a %d minute session", count, minutes),
				SuggestedResolution: "Trim the equipment list to the essentials for this session length",
				Confidence:          0.7,
				Impact:              ImpactPerformance,
				Metadata:            map[string]any{"equipment_count": count},
			}
		},
	},
	// soreness <-> target areas
	{
		id: "soreness-target-overlap",
		condition: func(snap Snapshot, _ workout.Context) bool {
			return len(overlap(snap.Soreness.List(), snap.TargetAreas.List())) > 0
		},
		generate: func(snap Snapshot, _ workout.Context) Conflict {
			common := overlap(snap.Soreness.List(), snap.TargetAreas.List())
			return Conflict{
				ID:                  "soreness-target-overlap",
				Components:          []string{FieldSoreness, FieldTargetAreas},
				Type:                ConflictSafety,
				Severity:            SeverityMedium,
				Description:         fmt.Sprintf("Targeting sore areas: %s", strings.Join(common, ", ")),
				SuggestedResolution: "Work around the sore areas or keep the load on them light",
				Confidence:          0.85,
				Impact:              ImpactSafety,
				Metadata:            map[string]any{"overlapping_areas": common},
			}
		},
	},
	// soreness <-> focus
	{
		id: "widespread-soreness-demanding-focus",
		condition: func(snap Snapshot, _ workout.Context) bool {
			return snap.Soreness.Count() >= workout.HighSorenessAreaCount &&
				focusIn(snap, workout.FocusStrength, workout.FocusPower, workout.FocusEndurance)
		},
		generate: func(snap Snapshot, _ workout.Context) Conflict {
			focus, _ := snap.Focus.Value()
			return Conflict{
				ID:         "widespread-soreness-demanding-focus",
				Components: []string{FieldSoreness, FieldFocus},
				Type:       ConflictSafety,
				Severity:   SeverityHigh,
				Description: fmt.Sprintf(
					"%d sore areas suggest the body needs recovery, not %s work", snap.Soreness.Count(), focus),
				SuggestedResolution: "Choose recovery or flexibility work until soreness subsides",
				Confidence:          0.9,
				Impact:              ImpactSafety,
				Metadata:            map[string]any{"sore_area_count": snap.Soreness.Count()},
			}
		},
	},
	// training load <-> focus
	{
		id: "overtraining-risk",
		condition: func(snap Snapshot, _ workout.Context) bool {
			return intenseLoad(snap) &&
				focusIn(snap, workout.FocusStrength, workout.FocusPower) &&
				snap.TrainingLoad.WeeklyVolumeMinutes > OvertrainingWeeklyVolumeMinutes
		},
		generate: func(snap Snapshot, _ workout.Context) Conflict {
			return Conflict{
				ID:         "overtraining-risk",
				Components: []string{FieldTrainingLoad, FieldFocus},
				Type:       ConflictSafety,
				Severity:   SeverityHigh,
				Description: fmt.Sprintf(
					"Intense training at %d weekly minutes plus more heavy work risks overtraining",
					snap.TrainingLoad.WeeklyVolumeMinutes),
				SuggestedResolution: "Schedule a deload session or reduce weekly volume",
				Confidence:          0.9,
				Impact:              ImpactSafety,
				Metadata:            map[string]any{"weekly_volume_minutes": snap.TrainingLoad.WeeklyVolumeMinutes},
			}
		},
	},
	// training load <-> duration
	{
		id: "intense-load-long-duration",
		condition: func(snap Snapshot, _ workout.Context) bool {
			minutes, ok := snap.Duration.Minutes()
			return ok && intenseLoad(snap) && minutes > LongDurationMinutes
		},
		generate: func(snap Snapshot, _ workout.Context) Conflict {
			minutes, _ := snap.Duration.Minutes()
			return Conflict{
				ID:                  "intense-load-long-duration",
				Components:          []string{FieldTrainingLoad, FieldDuration},
				Type:                ConflictEfficiency,
				Severity:            SeverityMedium,
				Description:         fmt.Sprintf("A %d minute session on top of intense recent training", minutes),
				SuggestedResolution: "Keep today's session shorter to protect recovery",
				Confidence:          0.75,
				Impact:              ImpactPerformance,
				Metadata:            nil,
			}
		},
	},
	// training load <-> energy
	{
		id: "intense-load-low-energy",
		condition: func(snap Snapshot, _ workout.Context) bool {
			return intenseLoad(snap) && energyAtOrBelow(snap, workout.LowEnergyThreshold)
		},
		generate: func(_ Snapshot, _ workout.Context) Conflict {
			return Conflict{
				ID:                  "intense-load-low-energy",
				Components:          []string{FieldTrainingLoad, FieldEnergy},
				Type:                ConflictSafety,
				Severity:            SeverityHigh,
				Description:         "Low energy after intense recent training points to accumulated fatigue",
				SuggestedResolution: "Take a rest day or limit today to light recovery work",
				Confidence:          0.85,
				Impact:              ImpactSafety,
				Metadata:            nil,
			}
		},
	},
	// training load <-> soreness
	{
		id: "systemic-soreness-intense-load",
		condition: func(snap Snapshot, _ workout.Context) bool {
			return snap.Soreness.Count() >= workout.HighSorenessAreaCount && intenseLoad(snap)
		},
		generate: func(snap Snapshot, _ workout.Context) Conflict {
			return Conflict{
				ID:         "systemic-soreness-intense-load",
				Components: []string{FieldSoreness, FieldTrainingLoad},
				Type:       ConflictSafety,
				Severity:   SeverityCritical,
				Description: fmt.Sprintf(
					"%d sore areas combined with intense recent training is a high injury risk",
					snap.Soreness.Count()),
				SuggestedResolution: "Do not train hard today; rest or do gentle mobility work only",
				Confidence:          0.95,
				Impact:              ImpactSafety,
				Metadata:            map[string]any{"sore_area_count": snap.Soreness.Count()},
			}
		},
	},
}
