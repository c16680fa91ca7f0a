package main

import (
	"net/http"

	"github.com/harjula/fitadvisor/internal/workout"
)

type confidenceRequest struct {
	Profile workout.UserProfile `json:"profile"`
	Plan    workout.Plan        `json:"plan"`
	Context workout.Context     `json:"context"`
}

// confidencePOST scores how well a generated plan fits the user.
func (app *application) confidencePOST(w http.ResponseWriter, r *http.Request) {
	var req confidenceRequest
	if !app.decodeJSON(w, r, &req) {
		return
	}

	result := app.confidenceService.Calculate(r.Context(), req.Profile, req.Plan, req.Context)
	app.writeJSON(w, r, http.StatusOK, result)
}
