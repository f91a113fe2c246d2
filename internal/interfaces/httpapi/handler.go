package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/profile"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/platform/logging"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/usecase"
)

type Handler struct {
	syncService        *usecase.SyncService
	scoringService     *usecase.ScoringService
	leaderboardService *usecase.LeaderboardService
	predictionService  *usecase.PredictionService
	profileRepo        profile.Repository
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	syncService *usecase.SyncService,
	scoringService *usecase.ScoringService,
	leaderboardService *usecase.LeaderboardService,
	predictionService *usecase.PredictionService,
	profileRepo profile.Repository,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		syncService:        syncService,
		scoringService:     scoringService,
		leaderboardService: leaderboardService,
		predictionService:  predictionService,
		profileRepo:        profileRepo,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

type submitPredictionRequest struct {
	MatchID   int64 `json:"match_id" validate:"required,gt=0"`
	HomeGoals *int  `json:"home_goals" validate:"required,gte=0"`
	AwayGoals *int  `json:"away_goals" validate:"required,gte=0"`
}

func (h *Handler) SubmitPrediction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitPrediction")
	defer span.End()

	userID, ok := actorFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: caller identity is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req submitPredictionRequest
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

	if err := h.predictionService.Submit(ctx, userID, req.MatchID, *req.HomeGoals, *req.AwayGoals); err != nil {
		h.logger.WarnContext(ctx, "submit prediction failed", "user_id", userID, "match_id", req.MatchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"match_id":   req.MatchID,
		"home_goals": *req.HomeGoals,
		"away_goals": *req.AwayGoals,
	})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", usecase.ErrInvalidInput, name, raw)
	}
	return id, nil
}
