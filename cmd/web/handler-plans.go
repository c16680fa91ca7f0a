package main

import (
	"net/http"

	"github.com/harjula/fitadvisor/internal/confidence"
	"github.com/harjula/fitadvisor/internal/plangen"
	"github.com/harjula/fitadvisor/internal/workout"
)

type planResponse struct {
	Plan       workout.Plan      `json:"plan"`
	Confidence confidence.Result `json:"confidence"`
}

// plansPOST generates a workout plan and scores it in one round trip.
func (app *application) plansPOST(w http.ResponseWriter, r *http.Request) {
	var req plangen.Request
	if !app.decodeJSON(w, r, &req) {
		return
	}

	plan, err := app.planService.Generate(r.Context(), req)
	if err != nil {
		app.clientError(w, r, err)
		return
	}

	uc := workout.Context{Profile: req.Profile}
	score := app.confidenceService.Calculate(r.Context(), req.Profile, plan, uc)

	app.writeJSON(w, r, http.StatusOK, planResponse{
		Plan:       plan,
		Confidence: score,
	})
}
