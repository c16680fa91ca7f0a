package analysis

import (
	"fmt"

	"github.com/harjula/fitadvisor/internal/workout"
)

// synergyRule pairs a pure predicate with a synergy generator. components is
// static metadata so pair-wise queries work without evaluating the rule.
type synergyRule struct {
	id         string
	components []string
	condition  func(snap Snapshot, uc workout.Context) bool
	generate   func(snap Snapshot, uc workout.Context) Synergy
}

// synergyRules is the declarative synergy rule table.
var synergyRules = []synergyRule{
	// energy <-> focus
	{
		id:         "high-energy-demanding-focus",
		components: []string{FieldEnergy, FieldFocus},
		condition: func(snap Snapshot, _ workout.Context) bool {
			return energyAtOrAbove(snap, workout.HighEnergyThreshold) &&
				focusIn(snap, workout.FocusStrength, workout.FocusPower)
		},
		generate: func(snap Snapshot, _ workout.Context) Synergy {
			focus, _ := snap.Focus.Value()
			return Synergy{
				ID:          "high-energy-demanding-focus",
				Components:  []string{FieldEnergy, FieldFocus},
				Type:        SynergyPerformanceBoost,
				Description: fmt.Sprintf("High energy supports quality %s work", focus),
				Confidence:  0.85,
				Metadata:    map[string]any{"focus": string(focus)},
			}
		},
	},
	// equipment <-> focus
	{
		id:         "equipped-strength-focus",
		components: []string{FieldEquipment, FieldFocus},
		condition: func(snap Snapshot, _ workout.Context) bool {
			return snap.Equipment.Count() >= MinEquipmentForStrength && focusIn(snap, workout.FocusStrength)
		},
		generate: func(snap Snapshot, _ workout.Context) Synergy {
			return Synergy{
				ID:          "equipped-strength-focus",
				Components:  []string{FieldEquipment, FieldFocus},
				Type:        SynergyEfficiencyBoost,
				Description: "Available equipment enables progressive strength loading",
				Confidence:  0.8,
				Metadata:    map[string]any{"equipment_count": snap.Equipment.Count()},
			}
		},
	},
	// soreness <-> focus
	{
		id:         "soreness-recovery-focus",
		components: []string{FieldSoreness, FieldFocus},
		condition: func(snap Snapshot, _ workout.Context) bool {
			return snap.Soreness.Count() >= 1 &&
				focusIn(snap, workout.FocusFlexibility, workout.FocusRecovery)
		},
		generate: func(snap Snapshot, _ workout.Context) Synergy {
			focus, _ := snap.Focus.Value()
			return Synergy{
				ID:          "soreness-recovery-focus",
				Components:  []string{FieldSoreness, FieldFocus},
				Type:        SynergyRecoverySupport,
				Description: fmt.Sprintf("%s work actively helps the sore areas recover", focus),
				Confidence:  0.75,
				Metadata:    nil,
			}
		},
	},
	// energy <-> duration <-> focus
	{
		id:         "high-energy-endurance-block",
		components: []string{FieldEnergy, FieldDuration, FieldFocus},
		condition: func(snap Snapshot, _ workout.Context) bool {
			minutes, ok := snap.Duration.Minutes()
			return ok && minutes >= LongDurationMinutes &&
				energyAtOrAbove(snap, workout.HighEnergyThreshold) &&
				focusIn(snap, workout.FocusEndurance, workout.FocusCardio)
		},
		generate: func(snap Snapshot, _ workout.Context) Synergy {
			minutes, _ := snap.Duration.Minutes()
			return Synergy{
				ID:          "high-energy-endurance-block",
				Components:  []string{FieldEnergy, FieldDuration, FieldFocus},
				Type:        SynergyCapacityMatch,
				Description: fmt.Sprintf("High energy matches the demands of a %d minute endurance block", minutes),
				Confidence:  0.7,
				Metadata:    nil,
			}
		},
	},
}
