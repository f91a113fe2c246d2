package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/matchdays/{matchdayID}/leaderboard", handler.GetMatchdayLeaderboard)
	mux.HandleFunc("GET /v1/leaderboard", handler.GetGlobalLeaderboard)
	mux.HandleFunc("GET /v1/leaderboard/series", handler.GetCumulativeSeries)
}

func registerUserRoutes(mux *http.ServeMux, handler *Handler) {
	mux.Handle("POST /v1/predictions", RequireUser(http.HandlerFunc(handler.SubmitPrediction)))
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler) {
	mux.Handle("POST /v1/admin/matchdays/{matchdayID}/sync", RequireUser(http.HandlerFunc(handler.SyncMatchday)))
	mux.Handle("POST /v1/admin/recalculate", RequireUser(http.HandlerFunc(handler.RecalculateSeason)))
}
