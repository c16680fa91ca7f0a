package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/harjula/fitadvisor/internal/workout"
)

// Service orchestrates the conflict, synergy, and optimization analyzers.
type Service struct {
	logger *slog.Logger
}

// NewService creates a new cross-component analysis service.
func NewService(logger *slog.Logger) *Service {
	return &Service{logger: logger}
}

// Result is the output of a full interaction analysis.
type Result struct {
	Conflicts       []Conflict     `json:"conflicts"`
	Synergies       []Synergy      `json:"synergies"`
	Recommendations []Insight      `json:"recommendations"`
	Metadata        ResultMetadata `json:"metadata"`
}

// ResultMetadata identifies one analysis pass.
type ResultMetadata struct {
	RunID      string    `json:"run_id"`
	AnalyzedAt time.Time `json:"analyzed_at"`
	ElapsedMs  float64   `json:"elapsed_ms"`
}

// AnalyzeInteractions runs conflict and synergy detection concurrently over
// the immutable snapshot and merges the results into ranked recommendations.
// Detection order does not matter; the final sorts are deterministic.
func (s *Service) AnalyzeInteractions(ctx context.Context, snap Snapshot, uc workout.Context) Result {
	start := time.Now()

	var (
		conflicts []Conflict
		synergies []Synergy
		g         errgroup.Group
	)
	g.Go(func() error {
		conflicts = DetectConflicts(snap, uc)
		return nil
	})
	g.Go(func() error {
		synergies = FindSynergies(snap, uc)
		return nil
	})
	// The analyzers never error; Wait only joins the goroutines.
	_ = g.Wait()

	recommendations := GenerateRecommendations(conflicts, synergies, snap, uc)

	result := Result{
		Conflicts:       conflicts,
		Synergies:       synergies,
		Recommendations: recommendations,
		Metadata: ResultMetadata{
			RunID:      uuid.NewString(),
			AnalyzedAt: start.UTC(),
			ElapsedMs:  float64(time.Since(start).Microseconds()) / 1000.0,
		},
	}

	s.logger.LogAttrs(ctx, slog.LevelDebug, "analyzed interactions",
		slog.String("run_id", result.Metadata.RunID),
		slog.Int("conflicts", len(conflicts)),
		slog.Int("synergies", len(synergies)))

	return result
}

// ValidationResult classifies conflicts into blocking and advisory buckets.
type ValidationResult struct {
	IsValid bool `json:"is_valid"`
	// Conflicts is the full sorted conflict list.
	Conflicts []Conflict `json:"conflicts"`
	// Warnings holds the non-blocking high and medium severity conflicts.
	// Low severity conflicts stay informational and appear only in Conflicts.
	Warnings []Conflict `json:"warnings"`
}

// ValidateConfiguration detects conflicts and classifies them: any critical
// conflict makes the configuration invalid, high and medium severities warn.
func (s *Service) ValidateConfiguration(ctx context.Context, snap Snapshot, uc workout.Context) ValidationResult {
	conflicts := DetectConflicts(snap, uc)

	result := ValidationResult{
		IsValid:   true,
		Conflicts: conflicts,
		Warnings:  []Conflict{},
	}
	for _, conflict := range conflicts {
		switch conflict.Severity {
		case SeverityCritical:
			result.IsValid = false
		case SeverityHigh, SeverityMedium:
			result.Warnings = append(result.Warnings, conflict)
		case SeverityLow:
			// informational only
		}
	}

	if !result.IsValid {
		s.logger.LogAttrs(ctx, slog.LevelInfo, "configuration rejected",
			slog.Int("conflicts", len(conflicts)))
	}
	return result
}

// ImpactKind classifies a single difference in a what-if analysis.
type ImpactKind string

// Impact kind constants.
const (
	ImpactPositive ImpactKind = "positive"
	ImpactNegative ImpactKind = "negative"
	ImpactNeutral  ImpactKind = "neutral"
)

// ComponentImpact describes one conflict resolved or introduced by a change.
type ComponentImpact struct {
	Kind        ImpactKind `json:"kind"`
	ConflictID  string     `json:"conflict_id,omitempty"`
	Description string     `json:"description"`
	Severity    Severity   `json:"severity,omitempty"`
}

// ChangeImpact is the result of a what-if component change analysis.
type ChangeImpact struct {
	Field           string            `json:"field"`
	Impacts         []ComponentImpact `json:"impacts"`
	Conflicts       []Conflict        `json:"conflicts"`
	Recommendations []Insight         `json:"recommendations"`
}

// AnalyzeComponentChange hypothetically applies newValue to the named field,
// diffs the conflict sets before and after by ID, and returns fresh
// recommendations computed against the post-change configuration.
func (s *Service) AnalyzeComponentChange(
	ctx context.Context,
	field string,
	newValue any,
	snap Snapshot,
	uc workout.Context,
) (ChangeImpact, error) {
	changed, err := snap.withChange(field, newValue)
	if err != nil {
		return ChangeImpact{}, fmt.Errorf("apply change to %s: %w", field, err)
	}

	before := DetectConflicts(snap, uc)
	after := DetectConflicts(changed, uc)

	impacts := diffConflicts(before, after)
	recommendations := GenerateRecommendations(after, FindSynergies(changed, uc), changed, uc)

	s.logger.LogAttrs(ctx, slog.LevelDebug, "analyzed component change",
		slog.String("field", field),
		slog.Int("impacts", len(impacts)))

	return ChangeImpact{
		Field:           field,
		Impacts:         impacts,
		Conflicts:       after,
		Recommendations: recommendations,
	}, nil
}

// diffConflicts classifies each difference between conflict sets: resolved
// conflicts are positive, newly introduced ones negative. When nothing
// changed a single neutral impact is emitted.
func diffConflicts(before, after []Conflict) []ComponentImpact {
	beforeByID := make(map[string]Conflict, len(before))
	for _, conflict := range before {
		beforeByID[conflict.ID] = conflict
	}
	afterByID := make(map[string]Conflict, len(after))
	for _, conflict := range after {
		afterByID[conflict.ID] = conflict
	}

	var impacts []ComponentImpact
	for _, conflict := range before {
		if _, stillPresent := afterByID[conflict.ID]; !stillPresent {
			impacts = append(impacts, ComponentImpact{
				Kind:        ImpactPositive,
				ConflictID:  conflict.ID,
				Description: "Resolves: " + conflict.Description,
				Severity:    conflict.Severity,
			})
		}
	}
	for _, conflict := range after {
		if _, wasPresent := beforeByID[conflict.ID]; !wasPresent {
			impacts = append(impacts, ComponentImpact{
				Kind:        ImpactNegative,
				ConflictID:  conflict.ID,
				Description: "Introduces: " + conflict.Description,
				Severity:    conflict.Severity,
			})
		}
	}

	if len(impacts) == 0 {
		impacts = append(impacts, ComponentImpact{
			Kind:        ImpactNeutral,
			Description: "No conflicts resolved or introduced by this change",
		})
	}
	return impacts
}

// withChange returns a copy of the snapshot with newValue applied to the
// named field. Values arrive as decoded JSON, so numbers are float64 and
// lists are []any.
func (snap Snapshot) withChange(field string, newValue any) (Snapshot, error) {
	changed := snap
	switch field {
	case FieldDuration:
		minutes, err := coerceInt(newValue)
		if err != nil {
			return Snapshot{}, err
		}
		changed.Duration = DurationMinutes(minutes)
	case FieldFocus:
		focus, ok := newValue.(string)
		if !ok {
			return Snapshot{}, fmt.Errorf("focus must be a string, got %T", newValue)
		}
		changed.Focus = FocusValue(workout.FocusType(focus))
	case FieldEnergy:
		rating, err := coerceInt(newValue)
		if err != nil {
			return Snapshot{}, err
		}
		changed.Energy = EnergyRating(rating)
	case FieldEquipment:
		items, err := coerceStringSlice(newValue)
		if err != nil {
			return Snapshot{}, err
		}
		changed.Equipment = EquipmentItems(items...)
	case FieldTargetAreas:
		areas, err := coerceStringSlice(newValue)
		if err != nil {
			return Snapshot{}, err
		}
		changed.TargetAreas = Areas(areas...)
	case FieldSoreness:
		areas, err := coerceStringSlice(newValue)
		if err != nil {
			return Snapshot{}, err
		}
		changed.Soreness = SorenessAreas(areas...)
	case FieldTrainingLoad:
		load, err := coerceTrainingLoad(newValue)
		if err != nil {
			return Snapshot{}, err
		}
		changed.TrainingLoad = &load
	default:
		return Snapshot{}, fmt.Errorf("unknown field %q", field)
	}
	return changed, nil
}

// coerceTrainingLoad accepts a typed training load or the map shape a
// generic JSON decode produces for one.
func coerceTrainingLoad(value any) (workout.TrainingLoad, error) {
	switch v := value.(type) {
	case workout.TrainingLoad:
		return v, nil
	case *workout.TrainingLoad:
		if v == nil {
			return workout.TrainingLoad{}, fmt.Errorf("training load must not be nil")
		}
		return *v, nil
	case map[string]any:
		raw, err := json.Marshal(v)
		if err != nil {
			return workout.TrainingLoad{}, fmt.Errorf("encode training load: %w", err)
		}
		var load workout.TrainingLoad
		if err := json.Unmarshal(raw, &load); err != nil {
			return workout.TrainingLoad{}, fmt.Errorf("decode training load: %w", err)
		}
		return load, nil
	default:
		return workout.TrainingLoad{}, fmt.Errorf("expected a training load object, got %T", value)
	}
}

func coerceInt(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case float64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("expected a number, got %T", value)
	}
}

func coerceStringSlice(value any) ([]string, error) {
	switch v := value.(type) {
	case []string:
		return v, nil
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			str, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("expected a string list, got element of type %T", item)
			}
			items = append(items, str)
		}
		return items, nil
	default:
		return nil, fmt.Errorf("expected a string list, got %T", value)
	}
}

// componentDependencies is the static field coupling table callers use to
// decide which fields to re-validate after an edit. Declarative data, not
// derived from the rule tables.
var componentDependencies = map[string][]string{
	FieldDuration:     {FieldEnergy, FieldEquipment, FieldTrainingLoad},
	FieldFocus:        {FieldEnergy, FieldEquipment, FieldSoreness, FieldTargetAreas, FieldTrainingLoad},
	FieldEnergy:       {FieldDuration, FieldFocus, FieldTrainingLoad},
	FieldEquipment:    {FieldDuration, FieldFocus},
	FieldTargetAreas:  {FieldFocus, FieldSoreness},
	FieldSoreness:     {FieldFocus, FieldTargetAreas, FieldTrainingLoad},
	FieldTrainingLoad: {FieldDuration, FieldEnergy, FieldFocus, FieldSoreness},
}

// ComponentDependencies returns a copy of the static field dependency table.
func ComponentDependencies() map[string][]string {
	deps := make(map[string][]string, len(componentDependencies))
	for field, coupled := range componentDependencies {
		deps[field] = append([]string(nil), coupled...)
	}
	return deps
}
