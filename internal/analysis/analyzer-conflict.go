package analysis

import (
	"sort"

	"github.com/harjula/fitadvisor/internal/workout"
)

// DetectConflicts evaluates every conflict rule against the snapshot and
// returns the matches sorted by severity, then descending confidence.
// Multiple simultaneous conflicts are expected; nothing short-circuits.
func DetectConflicts(snap Snapshot, uc workout.Context) []Conflict {
	return detectConflicts(conflictRules, snap, uc)
}

func detectConflicts(rules []conflictRule, snap Snapshot, uc workout.Context) []Conflict {
	conflicts := make([]Conflict, 0, len(rules))
	for _, rule := range rules {
		if conflict, ok := evaluateConflictRule(rule, snap, uc); ok {
			conflicts = append(conflicts, conflict)
		}
	}

	sortConflicts(conflicts)
	return conflicts
}

// evaluateConflictRule runs a single rule fail-soft: a panicking rule counts
// as a non-match so one malformed rule cannot abort the whole pass.
func evaluateConflictRule(rule conflictRule, snap Snapshot, uc workout.Context) (conflict Conflict, ok bool) {
	defer func() {
		if recover() != nil {
			conflict = Conflict{}
			ok = false
		}
	}()

	if !rule.condition(snap, uc) {
		return Conflict{}, false
	}
	return rule.generate(snap, uc), true
}

// sortConflicts orders by severity (critical first), then descending
// confidence as the tie-break.
func sortConflicts(conflicts []Conflict) {
	sort.SliceStable(conflicts, func(i, j int) bool {
		if severityRank[conflicts[i].Severity] != severityRank[conflicts[j].Severity] {
			return severityRank[conflicts[i].Severity] > severityRank[conflicts[j].Severity]
		}
		return conflicts[i].Confidence > conflicts[j].Confidence
	})
}
