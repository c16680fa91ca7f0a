package analysis

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/harjula/fitadvisor/internal/workout"
)

// Field name constants used in conflict components, dependency tables, and
// change-impact requests.
const (
	FieldDuration     = "duration"
	FieldFocus        = "focus"
	FieldEnergy       = "energy"
	FieldEquipment    = "equipment"
	FieldTargetAreas  = "target_areas"
	FieldSoreness     = "soreness"
	FieldTrainingLoad = "training_load"
)

// Snapshot is an immutable configuration snapshot taken per generation
// request. Each field is either unset, a bare scalar, or a richer object
// carrying the same semantic value; the extraction methods always yield one
// canonical value per field.
type Snapshot struct {
	Duration     DurationSelection     `json:"duration"`
	Focus        FocusSelection        `json:"focus"`
	Energy       EnergySelection       `json:"energy"`
	Equipment    EquipmentSelection    `json:"equipment"`
	TargetAreas  AreaSelection         `json:"target_areas"`
	Soreness     SorenessSelection     `json:"soreness"`
	TrainingLoad *workout.TrainingLoad `json:"training_load,omitempty"`
}

// DurationDetail is the rich representation of a duration selection.
type DurationDetail struct {
	TotalMinutes    int    `json:"total_minutes"`
	Label           string `json:"label,omitempty"`
	WorkingMinutes  int    `json:"working_minutes,omitempty"`
	IncludeWarmUp   bool   `json:"include_warm_up,omitempty"`
	IncludeCoolDown bool   `json:"include_cool_down,omitempty"`
}

// DurationSelection is either a bare minute count or a DurationDetail.
type DurationSelection struct {
	minutes *int
	detail  *DurationDetail
}

// DurationMinutes constructs a bare duration selection.
func DurationMinutes(minutes int) DurationSelection {
	return DurationSelection{minutes: &minutes}
}

// DurationDetailed constructs a rich duration selection.
func DurationDetailed(detail DurationDetail) DurationSelection {
	return DurationSelection{detail: &detail}
}

// Minutes extracts the canonical minute count. ok is false when the field was
// not specified; callers must then skip rules that require a duration.
func (s DurationSelection) Minutes() (minutes int, ok bool) {
	switch {
	case s.minutes != nil:
		return *s.minutes, true
	case s.detail != nil:
		return s.detail.TotalMinutes, true
	default:
		return 0, false
	}
}

// IncludesWarmUp reports whether the selection explicitly reserves warm-up
// time. A bare minute count carries no warm-up signal.
func (s DurationSelection) IncludesWarmUp() bool {
	return s.detail != nil && s.detail.IncludeWarmUp
}

func (s *DurationSelection) UnmarshalJSON(data []byte) error {
	*s = DurationSelection{}
	if string(data) == "null" {
		return nil
	}
	var minutes int
	if err := json.Unmarshal(data, &minutes); err == nil {
		s.minutes = &minutes
		return nil
	}
	var detail DurationDetail
	if err := json.Unmarshal(data, &detail); err != nil {
		return fmt.Errorf("duration selection: %w", err)
	}
	s.detail = &detail
	return nil
}

// FocusDetail is the rich representation of a focus selection.
type FocusDetail struct {
	Focus    workout.FocusType `json:"focus"`
	Label    string            `json:"label,omitempty"`
	Category string            `json:"category,omitempty"`
}

// FocusSelection is either a bare focus value or a FocusDetail.
type FocusSelection struct {
	focus  *workout.FocusType
	detail *FocusDetail
}

// FocusValue constructs a bare focus selection.
func FocusValue(focus workout.FocusType) FocusSelection {
	return FocusSelection{focus: &focus}
}

// FocusDetailed constructs a rich focus selection.
func FocusDetailed(detail FocusDetail) FocusSelection {
	return FocusSelection{detail: &detail}
}

// Value extracts the canonical focus. ok is false when unspecified.
func (s FocusSelection) Value() (focus workout.FocusType, ok bool) {
	switch {
	case s.focus != nil:
		return *s.focus, true
	case s.detail != nil:
		return s.detail.Focus, true
	default:
		return "", false
	}
}

func (s *FocusSelection) UnmarshalJSON(data []byte) error {
	*s = FocusSelection{}
	if string(data) == "null" {
		return nil
	}
	var focus workout.FocusType
	if err := json.Unmarshal(data, &focus); err == nil {
		s.focus = &focus
		return nil
	}
	var detail FocusDetail
	if err := json.Unmarshal(data, &detail); err != nil {
		return fmt.Errorf("focus selection: %w", err)
	}
	s.detail = &detail
	return nil
}

// EnergyDetail is the rich representation of an energy selection.
type EnergyDetail struct {
	Rating int    `json:"rating"`
	Label  string `json:"label,omitempty"`
}

// EnergySelection is either a bare 1-10 rating or an EnergyDetail.
type EnergySelection struct {
	rating *int
	detail *EnergyDetail
}

// EnergyRating constructs a bare energy selection.
func EnergyRating(rating int) EnergySelection {
	return EnergySelection{rating: &rating}
}

// EnergyDetailed constructs a rich energy selection.
func EnergyDetailed(detail EnergyDetail) EnergySelection {
	return EnergySelection{detail: &detail}
}

// Rating extracts the canonical energy rating. ok is false when unspecified.
func (s EnergySelection) Rating() (rating int, ok bool) {
	switch {
	case s.rating != nil:
		return *s.rating, true
	case s.detail != nil:
		return s.detail.Rating, true
	default:
		return 0, false
	}
}

func (s *EnergySelection) UnmarshalJSON(data []byte) error {
	*s = EnergySelection{}
	if string(data) == "null" {
		return nil
	}
	var rating int
	if err := json.Unmarshal(data, &rating); err == nil {
		s.rating = &rating
		return nil
	}
	var detail EnergyDetail
	if err := json.Unmarshal(data, &detail); err != nil {
		return fmt.Errorf("energy selection: %w", err)
	}
	s.detail = &detail
	return nil
}

// EquipmentDetail is the rich representation of an equipment selection.
type EquipmentDetail struct {
	Items    []string `json:"items"`
	Location string   `json:"location,omitempty"`
}

// EquipmentSelection is either a bare item list or an EquipmentDetail.
type EquipmentSelection struct {
	items  []string
	detail *EquipmentDetail
}

// EquipmentItems constructs a bare equipment selection.
func EquipmentItems(items ...string) EquipmentSelection {
	return EquipmentSelection{items: items}
}

// EquipmentDetailed constructs a rich equipment selection.
func EquipmentDetailed(detail EquipmentDetail) EquipmentSelection {
	return EquipmentSelection{detail: &detail}
}

// List extracts the canonical item list. A missing selection yields an empty
// list, never an error.
func (s EquipmentSelection) List() []string {
	switch {
	case s.items != nil:
		return append([]string(nil), s.items...)
	case s.detail != nil:
		return append([]string(nil), s.detail.Items...)
	default:
		return []string{}
	}
}

// Count returns the number of selected equipment items.
func (s EquipmentSelection) Count() int {
	return len(s.List())
}

func (s *EquipmentSelection) UnmarshalJSON(data []byte) error {
	*s = EquipmentSelection{}
	if string(data) == "null" {
		return nil
	}
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		s.items = items
		return nil
	}
	var detail EquipmentDetail
	if err := json.Unmarshal(data, &detail); err != nil {
		return fmt.Errorf("equipment selection: %w", err)
	}
	s.detail = &detail
	return nil
}

// AreaDetail is the rich representation of a target area selection.
type AreaDetail struct {
	Areas    []string `json:"areas"`
	Priority string   `json:"priority,omitempty"`
}

// AreaSelection is either a bare area list or an AreaDetail.
type AreaSelection struct {
	areas  []string
	detail *AreaDetail
}

// Areas constructs a bare area selection.
func Areas(areas ...string) AreaSelection {
	return AreaSelection{areas: areas}
}

// AreasDetailed constructs a rich area selection.
func AreasDetailed(detail AreaDetail) AreaSelection {
	return AreaSelection{detail: &detail}
}

// List extracts the canonical area list. A missing selection yields an empty
// list.
func (s AreaSelection) List() []string {
	switch {
	case s.areas != nil:
		return append([]string(nil), s.areas...)
	case s.detail != nil:
		return append([]string(nil), s.detail.Areas...)
	default:
		return []string{}
	}
}

func (s *AreaSelection) UnmarshalJSON(data []byte) error {
	*s = AreaSelection{}
	if string(data) == "null" {
		return nil
	}
	var areas []string
	if err := json.Unmarshal(data, &areas); err == nil {
		s.areas = areas
		return nil
	}
	var detail AreaDetail
	if err := json.Unmarshal(data, &detail); err != nil {
		return fmt.Errorf("target area selection: %w", err)
	}
	s.detail = &detail
	return nil
}

// SorenessSelection is either a bare list of sore areas or a map from area to
// severity (1-5).
type SorenessSelection struct {
	areas      []string
	severities map[string]int
}

// SorenessAreas constructs a bare soreness selection.
func SorenessAreas(areas ...string) SorenessSelection {
	return SorenessSelection{areas: areas}
}

// SorenessRated constructs a soreness selection with per-area severities.
func SorenessRated(severities map[string]int) SorenessSelection {
	return SorenessSelection{severities: severities}
}

// List extracts the sore areas in deterministic (sorted) order. A missing
// selection yields an empty list.
func (s SorenessSelection) List() []string {
	switch {
	case s.areas != nil:
		areas := append([]string(nil), s.areas...)
		sort.Strings(areas)
		return areas
	case s.severities != nil:
		areas := make([]string, 0, len(s.severities))
		for area := range s.severities {
			areas = append(areas, area)
		}
		sort.Strings(areas)
		return areas
	default:
		return []string{}
	}
}

// Count returns the number of sore areas.
func (s SorenessSelection) Count() int {
	return len(s.List())
}

func (s *SorenessSelection) UnmarshalJSON(data []byte) error {
	*s = SorenessSelection{}
	if string(data) == "null" {
		return nil
	}
	var areas []string
	if err := json.Unmarshal(data, &areas); err == nil {
		s.areas = areas
		return nil
	}
	var severities map[string]int
	if err := json.Unmarshal(data, &severities); err != nil {
		return fmt.Errorf("soreness selection: %w", err)
	}
	s.severities = severities
	return nil
}

// overlap returns the elements present in both lists, in sorted order.
// Comparison is exact; callers normalize casing upstream.
func overlap(a, b []string) []string {
	set := make(map[string]struct{}, len(a))
	for _, item := range a {
		set[item] = struct{}{}
	}
	var common []string
	for _, item := range b {
		if _, ok := set[item]; ok {
			common = append(common, item)
		}
	}
	sort.Strings(common)
	return common
}
