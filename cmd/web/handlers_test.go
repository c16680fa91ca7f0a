package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/harjula/fitadvisor/internal/analysis"
	"github.com/harjula/fitadvisor/internal/confidence"
	"github.com/harjula/fitadvisor/internal/plangen"
	"github.com/harjula/fitadvisor/internal/testhelpers"
)

func newTestApplication(t *testing.T) *application {
	t.Helper()

	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))

	confidenceService, err := confidence.NewService(logger)
	if err != nil {
		t.Fatalf("new confidence service: %v", err)
	}

	return &application{
		logger:            logger,
		analysisService:   analysis.NewService(logger),
		confidenceService: confidenceService,
		planService:       plangen.NewService("", logger),
	}
}

func doRequest(t *testing.T, app *application, method, url, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, url, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	app.routes(5 * time.Second).ServeHTTP(w, req)
	return w
}

func TestHealthy(t *testing.T) {
	app := newTestApplication(t)

	w := doRequest(t, app, http.MethodGet, "/api/healthy", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	if got := strings.TrimSpace(w.Body.String()); got != `{"status":"ok"}` {
		t.Errorf("body = %q", got)
	}

	if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q, want nosniff", got)
	}
}

func TestAnalysisPOST(t *testing.T) {
	app := newTestApplication(t)

	tests := []struct {
		name           string
		body           string
		wantStatus     int
		wantConflictID string
	}{
		{
			name: "low energy with long duration conflicts",
			body: `{
				"configuration": {"duration": 60, "energy": 2, "focus": "strength"},
				"context": {"profile": {"fitness_level": "some experience"}}
			}`,
			wantStatus:     http.StatusOK,
			wantConflictID: "low-energy-long-duration",
		},
		{
			name: "rich component selections are accepted",
			body: `{
				"configuration": {
					"duration": {"total_minutes": 30, "include_warm_up": true},
					"energy": {"rating": 9},
					"focus": {"focus": "strength", "label": "Strength"},
					"equipment": {"items": ["dumbbells", "bench"]}
				},
				"context": {"profile": {"fitness_level": "advanced athlete"}}
			}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "malformed body",
			body:       `{"configuration": `,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, app, http.MethodPost, "/api/analysis", tt.body)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d, body: %s", w.Code, tt.wantStatus, w.Body.String())
			}

			if tt.wantConflictID != "" && !strings.Contains(w.Body.String(), tt.wantConflictID) {
				t.Errorf("response missing conflict %q:\n%s", tt.wantConflictID, w.Body.String())
			}
		})
	}
}

func TestAnalysisValidatePOST(t *testing.T) {
	app := newTestApplication(t)

	tests := []struct {
		name      string
		body      string
		wantValid bool
	}{
		{
			name: "benign configuration is valid",
			body: `{
				"configuration": {"duration": 20, "energy": 7, "focus": "endurance"},
				"context": {"profile": {"fitness_level": "some experience"}}
			}`,
			wantValid: true,
		},
		{
			name: "critical conflict blocks the configuration",
			body: `{
				"configuration": {
					"duration": 30,
					"focus": "strength",
					"soreness": ["legs", "back", "shoulders"],
					"training_load": {"average_intensity": "intense", "weekly_volume_minutes": 280, "recent_session_count": 6}
				},
				"context": {"profile": {"fitness_level": "some experience"}}
			}`,
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, app, http.MethodPost, "/api/analysis/validate", tt.body)

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, body: %s", w.Code, w.Body.String())
			}

			var result analysis.ValidationResult
			if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
				t.Fatalf("unmarshal response: %v", err)
			}

			if result.IsValid != tt.wantValid {
				t.Errorf("IsValid = %v, want %v, body: %s", result.IsValid, tt.wantValid, w.Body.String())
			}
		})
	}
}

func TestAnalysisImpactPOST(t *testing.T) {
	app := newTestApplication(t)

	t.Run("duration change resolves the conflict", func(t *testing.T) {
		body := `{
			"field": "duration",
			"new_value": 20,
			"configuration": {"duration": 60, "energy": 2, "focus": "endurance"},
			"context": {"profile": {"fitness_level": "some experience"}}
		}`

		w := doRequest(t, app, http.MethodPost, "/api/analysis/impact", body)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body: %s", w.Code, w.Body.String())
		}

		var impact analysis.ChangeImpact
		if err := json.Unmarshal(w.Body.Bytes(), &impact); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}

		if impact.Field != "duration" {
			t.Errorf("Field = %q", impact.Field)
		}

		if len(impact.Impacts) == 0 {
			t.Error("expected at least one impact from resolving the conflict")
		}
	})

	t.Run("training load change decodes from its JSON object shape", func(t *testing.T) {
		body := `{
			"field": "training_load",
			"new_value": {"average_intensity": "intense", "weekly_volume_minutes": 320, "recent_session_count": 6},
			"configuration": {"duration": 20, "energy": 2},
			"context": {"profile": {"fitness_level": "some experience"}}
		}`

		w := doRequest(t, app, http.MethodPost, "/api/analysis/impact", body)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body: %s", w.Code, w.Body.String())
		}

		var impact analysis.ChangeImpact
		if err := json.Unmarshal(w.Body.Bytes(), &impact); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}

		foundIntroduced := false
		for _, ci := range impact.Impacts {
			if ci.Kind == analysis.ImpactNegative && ci.ConflictID == "intense-load-low-energy" {
				foundIntroduced = true
			}
		}
		if !foundIntroduced {
			t.Errorf("Impacts = %+v, expected intense-load-low-energy to be introduced", impact.Impacts)
		}
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		body := `{
			"field": "does-not-exist",
			"new_value": 20,
			"configuration": {"duration": 30},
			"context": {}
		}`

		w := doRequest(t, app, http.MethodPost, "/api/analysis/impact", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestAnalysisDependenciesGET(t *testing.T) {
	app := newTestApplication(t)

	w := doRequest(t, app, http.MethodGet, "/api/analysis/dependencies", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Dependencies map[string][]string `json:"dependencies"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}

	if _, ok := resp.Dependencies["duration"]; !ok {
		t.Errorf("dependencies missing duration entry: %v", resp.Dependencies)
	}
}

func TestConfidencePOST(t *testing.T) {
	app := newTestApplication(t)

	body := `{
		"profile": {
			"fitness_level": "some experience",
			"goals": ["build muscle"],
			"available_equipment": ["dumbbells"]
		},
		"plan": {
			"title": "Strength basics",
			"description": "A dumbbell strength session.",
			"difficulty": "intermediate",
			"total_duration_minutes": 30,
			"focus": "strength",
			"equipment": ["dumbbells"],
			"warm_up": {"name": "Warm-up", "duration_minutes": 4.5, "exercises": [{"name": "Arm circles", "duration_seconds": 60}]},
			"main_workout": {"name": "Main", "duration_minutes": 21, "exercises": [{"name": "Dumbbell press", "duration_seconds": 180}]},
			"cool_down": {"name": "Cool-down", "duration_minutes": 4.5, "exercises": [{"name": "Stretch", "duration_seconds": 90}]}
		},
		"context": {"profile": {"fitness_level": "some experience"}}
	}`

	w := doRequest(t, app, http.MethodPost, "/api/confidence", body)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", w.Code, w.Body.String())
	}

	var result confidence.Result
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}

	if result.OverallScore <= 0 || result.OverallScore > 1 {
		t.Errorf("OverallScore = %f, want within (0, 1]", result.OverallScore)
	}

	if result.Level == "" {
		t.Error("Level is empty")
	}
}

func TestDurationPOST(t *testing.T) {
	app := newTestApplication(t)

	tests := []struct {
		name         string
		body         string
		wantStatus   int
		wantAdjusted int
		wantReason   string
	}{
		{
			name:         "unsupported duration maps to closest bucket",
			body:         `{"requested_minutes": 22}`,
			wantStatus:   http.StatusOK,
			wantAdjusted: 20,
			wantReason:   "22min not directly supported",
		},
		{
			name:         "beginner cap",
			body:         `{"requested_minutes": 45, "fitness_level": "new to exercise"}`,
			wantStatus:   http.StatusOK,
			wantAdjusted: 30,
		},
		{
			name:       "non-positive duration",
			body:       `{"requested_minutes": 0}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, app, http.MethodPost, "/api/duration", tt.body)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d, body: %s", w.Code, tt.wantStatus, w.Body.String())
			}

			if tt.wantStatus != http.StatusOK {
				return
			}

			var resp durationResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal response: %v", err)
			}

			if resp.Result.AdjustedMinutes != tt.wantAdjusted {
				t.Errorf("AdjustedMinutes = %d, want %d", resp.Result.AdjustedMinutes, tt.wantAdjusted)
			}

			if tt.wantReason != "" && !strings.Contains(resp.Result.AdjustmentReason, tt.wantReason) {
				t.Errorf("AdjustmentReason = %q, want substring %q", resp.Result.AdjustmentReason, tt.wantReason)
			}

			if resp.Optimization.ActualMinutes != tt.wantAdjusted {
				t.Errorf("Optimization.ActualMinutes = %d, want %d", resp.Optimization.ActualMinutes, tt.wantAdjusted)
			}
		})
	}
}

func TestDurationOptionsGET(t *testing.T) {
	app := newTestApplication(t)

	w := doRequest(t, app, http.MethodGet, "/api/duration/options", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		SupportedMinutes []int `json:"supported_minutes"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}

	want := []int{5, 10, 15, 20, 30, 45}
	if len(resp.SupportedMinutes) != len(want) {
		t.Fatalf("SupportedMinutes = %v, want %v", resp.SupportedMinutes, want)
	}
	for i, m := range want {
		if resp.SupportedMinutes[i] != m {
			t.Errorf("SupportedMinutes[%d] = %d, want %d", i, resp.SupportedMinutes[i], m)
		}
	}
}

func TestPlansPOST(t *testing.T) {
	app := newTestApplication(t)

	body := `{
		"profile": {"fitness_level": "some experience", "goals": ["get fitter"]},
		"duration_minutes": 20,
		"focus": "cardio",
		"energy_level": 7
	}`

	w := doRequest(t, app, http.MethodPost, "/api/plans", body)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", w.Code, w.Body.String())
	}

	var resp planResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}

	if resp.Plan.Title == "" {
		t.Error("plan title is empty")
	}

	if resp.Plan.TotalDurationMinutes != 20 {
		t.Errorf("TotalDurationMinutes = %d, want 20", resp.Plan.TotalDurationMinutes)
	}

	if resp.Confidence.OverallScore <= 0 {
		t.Errorf("Confidence.OverallScore = %f, want positive", resp.Confidence.OverallScore)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	app := newTestApplication(t)

	w := doRequest(t, app, http.MethodGet, "/api/analysis", "")

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", w.Code)
	}
}
