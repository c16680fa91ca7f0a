package main

import (
	"net/http"

	"github.com/harjula/fitadvisor/internal/analysis"
	"github.com/harjula/fitadvisor/internal/workout"
)

type analysisRequest struct {
	Configuration analysis.Snapshot `json:"configuration"`
	Context       workout.Context   `json:"context"`
}

// analysisPOST runs the full interaction analysis over a configuration
// snapshot and returns conflicts, synergies, and recommendations.
func (app *application) analysisPOST(w http.ResponseWriter, r *http.Request) {
	var req analysisRequest
	if !app.decodeJSON(w, r, &req) {
		return
	}

	result := app.analysisService.AnalyzeInteractions(r.Context(), req.Configuration, req.Context)
	app.writeJSON(w, r, http.StatusOK, result)
}

// analysisValidatePOST checks whether a configuration is internally valid.
func (app *application) analysisValidatePOST(w http.ResponseWriter, r *http.Request) {
	var req analysisRequest
	if !app.decodeJSON(w, r, &req) {
		return
	}

	result := app.analysisService.ValidateConfiguration(r.Context(), req.Configuration, req.Context)
	app.writeJSON(w, r, http.StatusOK, result)
}

type impactRequest struct {
	Field         string            `json:"field"`
	NewValue      any               `json:"new_value"`
	Configuration analysis.Snapshot `json:"configuration"`
	Context       workout.Context   `json:"context"`
}

// analysisImpactPOST reports how changing one configuration field would
// shift the conflict picture.
func (app *application) analysisImpactPOST(w http.ResponseWriter, r *http.Request) {
	var req impactRequest
	if !app.decodeJSON(w, r, &req) {
		return
	}

	impact, err := app.analysisService.AnalyzeComponentChange(
		r.Context(), req.Field, req.NewValue, req.Configuration, req.Context)
	if err != nil {
		app.clientError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, impact)
}

// analysisDependenciesGET returns the static component dependency map.
func (app *application) analysisDependenciesGET(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, map[string]any{
		"dependencies": analysis.ComponentDependencies(),
	})
}
