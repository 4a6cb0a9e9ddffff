package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerAnalyticsRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/seasons/{season}/rounds/{round}/facts", handler.ListRoundFacts)
	mux.HandleFunc("GET /v1/matches/{matchID}/facts", handler.GetMatchFact)
	mux.HandleFunc("GET /v1/seasons/{season}/players/per90", handler.ListPlayerLeaders)
	mux.HandleFunc("GET /v1/seasons/{season}/teams/form", handler.ListTeamForm)
	mux.HandleFunc("GET /v1/seasons/{season}/teams/form/latest", handler.ListLatestTeamForm)
	mux.HandleFunc("GET /v1/seasons/{season}/teams/shares", handler.ListTeamShares)
	mux.HandleFunc("GET /v1/seasons/{season}/goalkeepers", handler.ListGoalkeepers)
}

func registerRecapRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/seasons/{season}/rounds/{round}/context", handler.GetRoundContext)
	mux.HandleFunc("POST /v1/summaries/round", handler.SummariseRound)
}
