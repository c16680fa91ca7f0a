package analysis

import (
	"testing"

	"github.com/harjula/fitadvisor/internal/workout"
)

func TestDetectConflictsSurvivesPanickingRule(t *testing.T) {
	rules := []conflictRule{
		{
			id:        "panics-in-condition",
			condition: func(Snapshot, workout.Context) bool { panic("boom") },
			generate: func(Snapshot, workout.Context) Conflict {
				return Conflict{ID: "panics-in-condition"}
			},
		},
		{
			id:        "panics-in-generate",
			condition: func(Snapshot, workout.Context) bool { return true },
			generate:  func(Snapshot, workout.Context) Conflict { panic("boom") },
		},
		{
			id:        "healthy",
			condition: func(Snapshot, workout.Context) bool { return true },
			generate: func(Snapshot, workout.Context) Conflict {
				return Conflict{ID: "healthy", Severity: SeverityLow, Confidence: 0.5}
			},
		},
	}

	conflicts := detectConflicts(rules, Snapshot{}, workout.Context{})

	if len(conflicts) != 1 {
		t.Fatalf("conflicts = %+v, want only the healthy rule's match", conflicts)
	}
	if conflicts[0].ID != "healthy" {
		t.Errorf("ID = %q, want %q", conflicts[0].ID, "healthy")
	}
}

func TestFindSynergiesSurvivesPanickingRule(t *testing.T) {
	rules := []synergyRule{
		{
			id:        "panics-in-condition",
			condition: func(Snapshot, workout.Context) bool { panic("boom") },
			generate: func(Snapshot, workout.Context) Synergy {
				return Synergy{ID: "panics-in-condition"}
			},
		},
		{
			id:        "healthy",
			condition: func(Snapshot, workout.Context) bool { return true },
			generate: func(Snapshot, workout.Context) Synergy {
				return Synergy{ID: "healthy", Confidence: 0.8}
			},
		},
		{
			id:        "panics-in-generate",
			condition: func(Snapshot, workout.Context) bool { return true },
			generate:  func(Snapshot, workout.Context) Synergy { panic("boom") },
		},
	}

	synergies := findSynergies(rules, Snapshot{}, workout.Context{})

	if len(synergies) != 1 {
		t.Fatalf("synergies = %+v, want only the healthy rule's match", synergies)
	}
	if synergies[0].ID != "healthy" {
		t.Errorf("ID = %q, want %q", synergies[0].ID, "healthy")
	}
}
