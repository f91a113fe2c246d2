package httpapi

import (
	"net/http"

	"github.com/Chango93/quinielacartoimagen-sub000/internal/usecase"
)

func (h *Handler) GetMatchdayLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchdayLeaderboard")
	defer span.End()

	matchdayID, err := pathID(r, "matchdayID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	entries, err := h.leaderboardService.MatchdayLeaderboard(ctx, matchdayID)
	if err != nil {
		h.logger.WarnContext(ctx, "matchday leaderboard failed", "matchday_id", matchdayID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, entries)
}

func (h *Handler) GetGlobalLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGlobalLeaderboard")
	defer span.End()

	scope := usecase.LeaderboardScope(r.URL.Query().Get("mode"))
	entries, err := h.leaderboardService.GlobalLeaderboard(ctx, scope)
	if err != nil {
		h.logger.WarnContext(ctx, "global leaderboard failed", "mode", string(scope), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, entries)
}

func (h *Handler) GetCumulativeSeries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCumulativeSeries")
	defer span.End()

	series, err := h.leaderboardService.CumulativeSeries(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "cumulative series failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, series)
}
