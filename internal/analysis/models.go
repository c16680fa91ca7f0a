// Package analysis evaluates a workout configuration snapshot against
// declarative conflict and synergy rule tables and derives ranked,
// user-facing insights from the matches.
package analysis

// ConflictType classifies what kind of problem a conflict describes.
type ConflictType string

// Conflict type constants.
const (
	ConflictSafety         ConflictType = "safety"
	ConflictEfficiency     ConflictType = "efficiency"
	ConflictGoalAlignment  ConflictType = "goal_alignment"
	ConflictUserExperience ConflictType = "user_experience"
)

// Severity ranks how serious a conflict is.
type Severity string

// Severity constants, ordered from least to most serious.
const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// severityRank orders severities for sorting. Higher sorts first.
var severityRank = map[Severity]int{
	SeverityLow:      1,
	SeverityMedium:   2,
	SeverityHigh:     3,
	SeverityCritical: 4,
}

// ImpactArea names what a conflict degrades.
type ImpactArea string

// Impact area constants.
const (
	ImpactPerformance   ImpactArea = "performance"
	ImpactSafety        ImpactArea = "safety"
	ImpactEffectiveness ImpactArea = "effectiveness"
)

// Conflict is a detected incompatibility between configuration fields.
// Conflicts are immutable once produced and live only for one analysis pass.
type Conflict struct {
	ID                  string         `json:"id"`
	Components          []string       `json:"components"`
	Type                ConflictType   `json:"type"`
	Severity            Severity       `json:"severity"`
	Description         string         `json:"description"`
	SuggestedResolution string         `json:"suggested_resolution"`
	Confidence          float64        `json:"confidence"`
	Impact              ImpactArea     `json:"impact"`
	Metadata            map[string]any `json:"metadata,omitempty"`
}

// SynergyType classifies the benefit a synergy describes.
type SynergyType string

// Synergy type constants.
const (
	SynergyPerformanceBoost SynergyType = "performance_boost"
	SynergyEfficiencyBoost  SynergyType = "efficiency_boost"
	SynergyRecoverySupport  SynergyType = "recovery_support"
	SynergyCapacityMatch    SynergyType = "capacity_match"
)

// Synergy is a detected beneficial combination between configuration fields.
type Synergy struct {
	ID          string         `json:"id"`
	Components  []string       `json:"components"`
	Type        SynergyType    `json:"type"`
	Description string         `json:"description"`
	Confidence  float64        `json:"confidence"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// InsightType classifies an insight for rendering.
type InsightType string

// Insight type constants.
const (
	InsightWarning         InsightType = "warning"
	InsightCriticalWarning InsightType = "critical_warning"
	InsightOptimization    InsightType = "optimization"
)

// Insight is the unified user-facing projection of conflicts, synergies, and
// heuristic suggestions.
type Insight struct {
	ID             string         `json:"id"`
	Type           InsightType    `json:"type"`
	Message        string         `json:"message"`
	Recommendation string         `json:"recommendation"`
	Confidence     float64        `json:"confidence"`
	Actionable     bool           `json:"actionable"`
	RelatedFields  []string       `json:"related_fields,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}
