package analysis

import (
	"slices"
	"sort"

	"github.com/harjula/fitadvisor/internal/workout"
)

// FindSynergies evaluates every synergy rule against the snapshot and returns
// the matches sorted by descending confidence.
func FindSynergies(snap Snapshot, uc workout.Context) []Synergy {
	return findSynergies(synergyRules, snap, uc)
}

func findSynergies(rules []synergyRule, snap Snapshot, uc workout.Context) []Synergy {
	synergies := make([]Synergy, 0, len(rules))
	for _, rule := range rules {
		if synergy, ok := evaluateSynergyRule(rule, snap, uc); ok {
			synergies = append(synergies, synergy)
		}
	}

	sort.SliceStable(synergies, func(i, j int) bool {
		return synergies[i].Confidence > synergies[j].Confidence
	})
	return synergies
}

// evaluateSynergyRule runs a single rule fail-soft, mirroring the conflict
// analyzer: a panicking rule counts as a non-match.
func evaluateSynergyRule(rule synergyRule, snap Snapshot, uc workout.Context) (synergy Synergy, ok bool) {
	defer func() {
		if recover() != nil {
			synergy = Synergy{}
			ok = false
		}
	}()

	if !rule.condition(snap, uc) {
		return Synergy{}, false
	}
	return rule.generate(snap, uc), true
}

// HasPotentialSynergy reports whether any rule in the table reasons about
// both fields, regardless of the current configuration.
func HasPotentialSynergy(fieldA, fieldB string) bool {
	for _, rule := range synergyRules {
		if slices.Contains(rule.components, fieldA) && slices.Contains(rule.components, fieldB) {
			return true
		}
	}
	return false
}

// SynergyStrength returns the realized synergy strength between two fields
// under the given configuration: the mean confidence across all matching
// rules referencing both fields, or 0 when none match.
func SynergyStrength(snap Snapshot, uc workout.Context, fieldA, fieldB string) float64 {
	var (
		total   float64
		matched int
	)
	for _, rule := range synergyRules {
		if !slices.Contains(rule.components, fieldA) || !slices.Contains(rule.components, fieldB) {
			continue
		}
		if synergy, ok := evaluateSynergyRule(rule, snap, uc); ok {
			total += synergy.Confidence
			matched++
		}
	}
	if matched == 0 {
		return 0
	}
	return total / float64(matched)
}
