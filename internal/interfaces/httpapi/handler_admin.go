package httpapi

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/Chango93/quinielacartoimagen-sub000/internal/usecase"
)

func (h *Handler) SyncMatchday(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SyncMatchday")
	defer span.End()

	userID, ok := actorFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: caller identity is missing from request context", usecase.ErrUnauthorized))
		return
	}

	matchdayID, err := pathID(r, "matchdayID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.syncService.SyncMatchday(ctx, userID, matchdayID)
	if err != nil {
		h.logger.WarnContext(ctx, "matchday sync failed", "user_id", userID, "matchday_id", matchdayID, "error", err)
		writeError(ctx, w, err)
		return
	}
	if result.NotFound {
		writeError(ctx, w, fmt.Errorf("%w: matchday %d", usecase.ErrNotFound, matchdayID))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

type recalculateSeasonRequest struct {
	MaxWorkers int `json:"max_workers" validate:"gte=0,lte=32"`
}

func (h *Handler) RecalculateSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecalculateSeason")
	defer span.End()

	userID, ok := actorFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: caller identity is missing from request context", usecase.ErrUnauthorized))
		return
	}

	prof, found, err := h.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "load profile failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}
	if !found || !prof.IsAdmin() {
		writeError(ctx, w, fmt.Errorf("%w: user %q may not trigger a season recalculation", usecase.ErrUnauthorized, userID))
		return
	}

	var req recalculateSeasonRequest
	if r.ContentLength > 0 {
		decoder := jsoniter.NewDecoder(r.Body)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
			return
		}
		if err := h.validateRequest(ctx, req); err != nil {
			writeError(ctx, w, err)
			return
		}
	}

	result, err := h.scoringService.RecalculateSeason(ctx, req.MaxWorkers)
	if err != nil {
		h.logger.ErrorContext(ctx, "season recalculation failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}
