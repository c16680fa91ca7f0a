package main

import (
	"net/http"
	"time"
)

func (app *application) routes(requestTimeout time.Duration) *http.ServeMux {
	mux := http.NewServeMux()

	api := func(next http.Handler) http.Handler {
		return app.recoverPanic(app.logAndTraceRequest(secureHeaders(
			app.timeout(requestTimeout, next))))
	}

	mux.Handle("POST /api/analysis", api(http.HandlerFunc(app.analysisPOST)))
	mux.Handle("POST /api/analysis/validate", api(http.HandlerFunc(app.analysisValidatePOST)))
	mux.Handle("POST /api/analysis/impact", api(http.HandlerFunc(app.analysisImpactPOST)))
	mux.Handle("GET /api/analysis/dependencies", api(http.HandlerFunc(app.analysisDependenciesGET)))

	mux.Handle("POST /api/confidence", api(http.HandlerFunc(app.confidencePOST)))

	mux.Handle("POST /api/duration", api(http.HandlerFunc(app.durationPOST)))
	mux.Handle("GET /api/duration/options", api(http.HandlerFunc(app.durationOptionsGET)))

	mux.Handle("POST /api/plans", api(http.HandlerFunc(app.plansPOST)))

	mux.Handle("GET /api/healthy", api(http.HandlerFunc(app.healthy)))

	return mux
}
