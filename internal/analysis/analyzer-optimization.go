package analysis

import (
	"fmt"
	"sort"

	"github.com/harjula/fitadvisor/internal/workout"
)

// GenerateOptimizationInsights applies heuristics that are independent of the
// rule tables and returns actionable optimization insights.
func GenerateOptimizationInsights(snap Snapshot, _ workout.Context) []Insight {
	var insights []Insight

	if minutes, ok := snap.Duration.Minutes(); ok &&
		minutes > VeryLongDurationMinutes && !snap.Duration.IncludesWarmUp() {
		insights = append(insights, Insight{
			ID:             "missing-warmup-long-session",
			Type:           InsightOptimization,
			Message:        fmt.Sprintf("A %d minute session has no warm-up reserved", minutes),
			Recommendation: "Start with a 5-10 minute dynamic warm-up before the main work",
			Confidence:     0.8,
			Actionable:     true,
			RelatedFields:  []string{FieldDuration},
			Metadata:       nil,
		})
	}

	if focus, ok := snap.Focus.Value(); ok &&
		focus == workout.FocusStrength && snap.Equipment.Count() < MinEquipmentForStrength {
		insights = append(insights, Insight{
			ID:             "underequipped-strength",
			Type:           InsightOptimization,
			Message:        "Strength work benefits from more resistance options",
			Recommendation: "Add dumbbells, a barbell, or resistance bands to the selection",
			Confidence:     0.75,
			Actionable:     true,
			RelatedFields:  []string{FieldEquipment, FieldFocus},
			Metadata:       nil,
		})
	}

	if _, ok := snap.Focus.Value(); ok && len(snap.TargetAreas.List()) == 0 {
		insights = append(insights, Insight{
			ID:             "no-target-areas",
			Type:           InsightOptimization,
			Message:        "A focus is set but no target areas are selected",
			Recommendation: "Pick the body areas to emphasize so exercises can be tailored",
			Confidence:     0.7,
			Actionable:     true,
			RelatedFields:  []string{FieldFocus, FieldTargetAreas},
			Metadata:       nil,
		})
	}

	return insights
}

// GenerateRecommendations merges conflicts, synergies, and heuristic insights
// into one ranked list: actionable insights first, each group sorted by
// descending confidence.
func GenerateRecommendations(
	conflicts []Conflict,
	synergies []Synergy,
	snap Snapshot,
	uc workout.Context,
) []Insight {
	insights := make([]Insight, 0, len(conflicts)+len(synergies))

	for _, conflict := range conflicts {
		insights = append(insights, conflictInsight(conflict))
	}
	for _, synergy := range synergies {
		insights = append(insights, synergyInsight(synergy))
	}
	insights = append(insights, GenerateOptimizationInsights(snap, uc)...)

	sort.SliceStable(insights, func(i, j int) bool {
		if insights[i].Actionable != insights[j].Actionable {
			return insights[i].Actionable
		}
		return insights[i].Confidence > insights[j].Confidence
	})
	return insights
}

// conflictInsight projects a conflict into the unified insight shape.
// Critical conflicts become critical warnings; everything else warns.
func conflictInsight(conflict Conflict) Insight {
	insightType := InsightWarning
	if conflict.Severity == SeverityCritical {
		insightType = InsightCriticalWarning
	}
	return Insight{
		ID:             "conflict-" + conflict.ID,
		Type:           insightType,
		Message:        conflict.Description,
		Recommendation: conflict.SuggestedResolution,
		Confidence:     conflict.Confidence,
		Actionable:     true,
		RelatedFields:  conflict.Components,
		Metadata:       conflict.Metadata,
	}
}

// synergyInsight projects a synergy into a non-actionable optimization
// insight confirming the current combination.
func synergyInsight(synergy Synergy) Insight {
	return Insight{
		ID:             "synergy-" + synergy.ID,
		Type:           InsightOptimization,
		Message:        synergy.Description,
		Recommendation: "Keep this combination - it works in your favor",
		Confidence:     synergy.Confidence,
		Actionable:     false,
		RelatedFields:  synergy.Components,
		Metadata:       synergy.Metadata,
	}
}
