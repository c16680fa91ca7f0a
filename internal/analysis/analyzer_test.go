package analysis_test

import (
	"math"
	"testing"

	"github.com/harjula/fitadvisor/internal/analysis"
	"github.com/harjula/fitadvisor/internal/workout"
)

func TestDetectConflictsOrdering(t *testing.T) {
	// Triggers the critical systemic rule plus several high and medium ones.
	snap := analysis.Snapshot{
		Duration:     analysis.DurationMinutes(60),
		Energy:       analysis.EnergyRating(2),
		Focus:        analysis.FocusValue(workout.FocusStrength),
		Soreness:     analysis.SorenessAreas("legs", "back", "shoulders"),
		TargetAreas:  analysis.Areas("legs"),
		TrainingLoad: intenseLoad(),
	}

	conflicts := analysis.DetectConflicts(snap, workout.Context{})
	if len(conflicts) < 4 {
		t.Fatalf("expected several conflicts, got %v", conflictIDs(conflicts))
	}

	if conflicts[0].Severity != analysis.SeverityCritical {
		t.Errorf("first conflict severity = %s, want critical", conflicts[0].Severity)
	}

	rank := map[analysis.Severity]int{
		analysis.SeverityCritical: 4,
		analysis.SeverityHigh:     3,
		analysis.SeverityMedium:   2,
		analysis.SeverityLow:      1,
	}
	for i := 1; i < len(conflicts); i++ {
		prev, cur := conflicts[i-1], conflicts[i]
		if rank[prev.Severity] < rank[cur.Severity] {
			t.Errorf("conflict %d (%s) sorted after lower severity %s", i, cur.Severity, prev.Severity)
		}
		if prev.Severity == cur.Severity && prev.Confidence < cur.Confidence {
			t.Errorf("conflict %d breaks the confidence tie-break: %v before %v",
				i, prev.Confidence, cur.Confidence)
		}
	}
}

func TestFindSynergiesOrdering(t *testing.T) {
	// Matches all four synergy rules at once.
	snap := analysis.Snapshot{
		Duration:  analysis.DurationMinutes(45),
		Energy:    analysis.EnergyRating(9),
		Focus:     analysis.FocusValue(workout.FocusStrength),
		Equipment: analysis.EquipmentItems("dumbbells", "bench"),
	}

	synergies := analysis.FindSynergies(snap, workout.Context{})
	if len(synergies) < 2 {
		t.Fatalf("expected multiple synergies, got %d", len(synergies))
	}

	for i := 1; i < len(synergies); i++ {
		if synergies[i-1].Confidence < synergies[i].Confidence {
			t.Errorf("synergies not sorted by descending confidence: %v before %v",
				synergies[i-1].Confidence, synergies[i].Confidence)
		}
	}
}

func TestHasPotentialSynergy(t *testing.T) {
	tests := []struct {
		fieldA string
		fieldB string
		want   bool
	}{
		{analysis.FieldEnergy, analysis.FieldFocus, true},
		{analysis.FieldFocus, analysis.FieldEnergy, true},
		{analysis.FieldEquipment, analysis.FieldFocus, true},
		{analysis.FieldSoreness, analysis.FieldFocus, true},
		{analysis.FieldEnergy, analysis.FieldDuration, true},
		{analysis.FieldEquipment, analysis.FieldSoreness, false},
		{analysis.FieldTrainingLoad, analysis.FieldFocus, false},
	}

	for _, tt := range tests {
		if got := analysis.HasPotentialSynergy(tt.fieldA, tt.fieldB); got != tt.want {
			t.Errorf("HasPotentialSynergy(%s, %s) = %v, want %v", tt.fieldA, tt.fieldB, got, tt.want)
		}
	}
}

func TestSynergyStrength(t *testing.T) {
	snap := analysis.Snapshot{
		Energy: analysis.EnergyRating(9),
		Focus:  analysis.FocusValue(workout.FocusStrength),
	}

	strength := analysis.SynergyStrength(snap, workout.Context{}, analysis.FieldEnergy, analysis.FieldFocus)
	if math.Abs(strength-0.85) > 1e-9 {
		t.Errorf("SynergyStrength = %v, want 0.85", strength)
	}

	// The pair exists in the table but the configuration does not realize it.
	cold := analysis.Snapshot{
		Energy: analysis.EnergyRating(4),
		Focus:  analysis.FocusValue(workout.FocusStrength),
	}
	if got := analysis.SynergyStrength(cold, workout.Context{}, analysis.FieldEnergy, analysis.FieldFocus); got != 0 {
		t.Errorf("SynergyStrength for unrealized pair = %v, want 0", got)
	}

	// Unknown pair.
	if got := analysis.SynergyStrength(snap, workout.Context{}, analysis.FieldEquipment, analysis.FieldSoreness); got != 0 {
		t.Errorf("SynergyStrength for unrelated pair = %v, want 0", got)
	}
}
