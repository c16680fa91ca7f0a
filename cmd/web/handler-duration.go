package main

import (
	"net/http"

	"github.com/harjula/fitadvisor/internal/duration"
	"github.com/harjula/fitadvisor/internal/errors"
)

type durationResponse struct {
	Result       duration.Result       `json:"result"`
	Optimization duration.Optimization `json:"optimization"`
}

// durationPOST selects the duration strategy for a requested length.
func (app *application) durationPOST(w http.ResponseWriter, r *http.Request) {
	var params duration.Params
	if !app.decodeJSON(w, r, &params) {
		return
	}

	if params.RequestedMinutes <= 0 {
		app.clientError(w, r, errors.New("requested_minutes must be positive"))
		return
	}

	result := duration.SelectStrategy(params)
	app.writeJSON(w, r, http.StatusOK, durationResponse{
		Result:       result,
		Optimization: duration.CreateOptimization(params, result),
	})
}

// durationOptionsGET lists the supported duration buckets.
func (app *application) durationOptionsGET(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, map[string]any{
		"supported_minutes": duration.SupportedMinutes(),
	})
}
