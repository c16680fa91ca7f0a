package duration_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/harjula/fitadvisor/internal/duration"
	"github.com/harjula/fitadvisor/internal/workout"
)

func TestSelectStrategyExactMatches(t *testing.T) {
	for _, minutes := range duration.SupportedMinutes() {
		result := duration.SelectStrategy(duration.Params{RequestedMinutes: minutes})

		if !result.IsExactMatch {
			t.Errorf("SelectStrategy(%d).IsExactMatch = false, want true", minutes)
		}

		if result.AdjustedMinutes != minutes {
			t.Errorf("SelectStrategy(%d).AdjustedMinutes = %d", minutes, result.AdjustedMinutes)
		}

		if result.AdjustmentReason != "" {
			t.Errorf("SelectStrategy(%d).AdjustmentReason = %q, want empty", minutes, result.AdjustmentReason)
		}
	}
}

func TestSelectStrategyMapping(t *testing.T) {
	tests := []struct {
		name         string
		params       duration.Params
		wantAdjusted int
		wantExact    bool
		wantReasons  []string
	}{
		{
			name:         "22 rounds to 20",
			params:       duration.Params{RequestedMinutes: 22},
			wantAdjusted: 20,
			wantReasons:  []string{"22min not directly supported, using 20min instead"},
		},
		{
			name:         "tie rounds down",
			params:       duration.Params{RequestedMinutes: 25},
			wantAdjusted: 20,
			wantReasons:  []string{"25min not directly supported, using 20min instead"},
		},
		{
			name:         "above the largest bucket",
			params:       duration.Params{RequestedMinutes: 90},
			wantAdjusted: 45,
		},
		{
			name:         "below the smallest bucket",
			params:       duration.Params{RequestedMinutes: 2},
			wantAdjusted: 5,
		},
		{
			name: "low energy steps down one bucket",
			params: duration.Params{
				RequestedMinutes: 30,
				EnergyLevel:      2,
			},
			wantAdjusted: 20,
			wantExact:    true,
			wantReasons:  []string{"reduced to 20min due to low energy"},
		},
		{
			name: "widespread soreness steps down one bucket",
			params: duration.Params{
				RequestedMinutes:  30,
				SorenessAreaCount: 3,
			},
			wantAdjusted: 20,
			wantExact:    true,
			wantReasons:  []string{"reduced to 20min due to widespread soreness"},
		},
		{
			name: "low energy and soreness stack",
			params: duration.Params{
				RequestedMinutes:  30,
				EnergyLevel:       3,
				SorenessAreaCount: 4,
			},
			wantAdjusted: 15,
			wantExact:    true,
			wantReasons: []string{
				"reduced to 20min due to low energy",
				"reduced to 15min due to widespread soreness",
			},
		},
		{
			name: "beginner cap",
			params: duration.Params{
				RequestedMinutes: 45,
				FitnessLevel:     workout.FitnessNewToExercise,
			},
			wantAdjusted: 30,
			wantExact:    true,
			wantReasons:  []string{"capped at 30min for new exercisers"},
		},
		{
			name: "unknown energy is not low energy",
			params: duration.Params{
				RequestedMinutes: 30,
				EnergyLevel:      0,
			},
			wantAdjusted: 30,
			wantExact:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := duration.SelectStrategy(tt.params)

			if result.AdjustedMinutes != tt.wantAdjusted {
				t.Errorf("AdjustedMinutes = %d, want %d", result.AdjustedMinutes, tt.wantAdjusted)
			}

			if result.IsExactMatch != tt.wantExact {
				t.Errorf("IsExactMatch = %v, want %v", result.IsExactMatch, tt.wantExact)
			}

			for _, reason := range tt.wantReasons {
				if !strings.Contains(result.AdjustmentReason, reason) {
					t.Errorf("AdjustmentReason = %q, want substring %q", result.AdjustmentReason, reason)
				}
			}

			if result.Config.Minutes != result.AdjustedMinutes {
				t.Errorf("Config.Minutes = %d does not match AdjustedMinutes %d",
					result.Config.Minutes, result.AdjustedMinutes)
			}
		})
	}
}

func TestSelectStrategyNeverLeavesSupportedSet(t *testing.T) {
	supported := duration.SupportedMinutes()

	for requested := 1; requested <= 120; requested++ {
		for _, energy := range []int{0, 2, 5, 9} {
			for _, soreness := range []int{0, 3} {
				result := duration.SelectStrategy(duration.Params{
					RequestedMinutes:  requested,
					EnergyLevel:       energy,
					SorenessAreaCount: soreness,
					FitnessLevel:      workout.FitnessNewToExercise,
				})
				if !slices.Contains(supported, result.AdjustedMinutes) {
					t.Fatalf("SelectStrategy(%d, energy=%d, soreness=%d) chose unsupported %d",
						requested, energy, soreness, result.AdjustedMinutes)
				}
				if result.AdjustedMinutes > duration.BeginnerMaxMinutes {
					t.Fatalf("beginner cap violated for requested=%d: got %d", requested, result.AdjustedMinutes)
				}
			}
		}
	}
}

func TestSelectStrategyHighEnergyRecommendation(t *testing.T) {
	result := duration.SelectStrategy(duration.Params{RequestedMinutes: 30, EnergyLevel: 9})

	found := false
	for _, rec := range result.Recommendations {
		if strings.Contains(rec, "higher intensity") {
			found = true
		}
	}
	if !found {
		t.Errorf("Recommendations = %v, want a higher intensity suggestion", result.Recommendations)
	}
}

func TestAlternativeOptions(t *testing.T) {
	result := duration.SelectStrategy(duration.Params{RequestedMinutes: 20})

	want := []int{5, 10, 15, 30, 45}
	if !slices.Equal(result.AlternativeOptions, want) {
		t.Errorf("AlternativeOptions = %v, want %v", result.AlternativeOptions, want)
	}
}

func TestValidateStrategy(t *testing.T) {
	params := duration.Params{RequestedMinutes: 22}
	result := duration.SelectStrategy(params)

	if !duration.ValidateStrategy(result, params) {
		t.Error("ValidateStrategy rejected a freshly computed result")
	}

	tampered := result
	tampered.AdjustedMinutes = 45
	if duration.ValidateStrategy(tampered, params) {
		t.Error("ValidateStrategy accepted a tampered result")
	}

	tampered = result
	tampered.Config.Minutes = 7
	if duration.ValidateStrategy(tampered, params) {
		t.Error("ValidateStrategy accepted an unsupported bucket")
	}
}

func TestCreateOptimization(t *testing.T) {
	tests := []struct {
		name        string
		params      duration.Params
		wantOptimal bool
		wantActual  int
	}{
		{
			name:        "exact request is optimal",
			params:      duration.Params{RequestedMinutes: 20},
			wantOptimal: true,
			wantActual:  20,
		},
		{
			name:        "mapped request is not optimal",
			params:      duration.Params{RequestedMinutes: 22},
			wantOptimal: false,
			wantActual:  20,
		},
		{
			name: "adjusted request is not optimal",
			params: duration.Params{
				RequestedMinutes: 30,
				EnergyLevel:      2,
			},
			wantOptimal: false,
			wantActual:  20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := duration.SelectStrategy(tt.params)
			opt := duration.CreateOptimization(tt.params, result)

			if opt.IsOptimal != tt.wantOptimal {
				t.Errorf("IsOptimal = %v, want %v", opt.IsOptimal, tt.wantOptimal)
			}

			if opt.ActualMinutes != tt.wantActual {
				t.Errorf("ActualMinutes = %d, want %d", opt.ActualMinutes, tt.wantActual)
			}

			if opt.RequestedMinutes != tt.params.RequestedMinutes {
				t.Errorf("RequestedMinutes = %d", opt.RequestedMinutes)
			}

			alloc := opt.PhaseAllocation
			if alloc.WarmupMinutes <= 0 || alloc.MainMinutes <= 0 || alloc.CooldownMinutes <= 0 {
				t.Errorf("phase allocation has a non-positive phase: %+v", alloc)
			}

			total := alloc.WarmupMinutes + alloc.MainMinutes + alloc.CooldownMinutes
			if total < float64(opt.ActualMinutes)-0.001 || total > float64(opt.ActualMinutes)+0.001 {
				t.Errorf("phase allocation sums to %v, want %d", total, opt.ActualMinutes)
			}
		})
	}
}
