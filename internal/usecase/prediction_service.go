package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/match"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/matchday"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/prediction"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/platform/logging"
)

// PredictionService handles participant score submissions. A submission is an
// idempotent upsert keyed on (user, match); resubmitting overwrites the
// forecast until the matchday locks or the match kicks off.
type PredictionService struct {
	matchdayRepo   matchday.Repository
	matchRepo      match.Repository
	predictionRepo prediction.Repository
	logger         *logging.Logger
	now            func() time.Time
}

func NewPredictionService(
	matchdayRepo matchday.Repository,
	matchRepo match.Repository,
	predictionRepo prediction.Repository,
	logger *logging.Logger,
) *PredictionService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PredictionService{
		matchdayRepo:   matchdayRepo,
		matchRepo:      matchRepo,
		predictionRepo: predictionRepo,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *PredictionService) Submit(ctx context.Context, userID string, matchID int64, homeGoals, awayGoals int) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.Submit")
	defer span.End()

	if userID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if homeGoals < 0 || awayGoals < 0 {
		return fmt.Errorf("%w: predicted scores must not be negative", ErrInvalidInput)
	}

	item, found, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return fmt.Errorf("load match id=%d: %w", matchID, err)
	}
	if !found {
		return fmt.Errorf("%w: match id=%d", ErrNotFound, matchID)
	}

	md, found, err := s.matchdayRepo.GetByID(ctx, item.MatchdayID)
	if err != nil {
		return fmt.Errorf("load matchday id=%d: %w", item.MatchdayID, err)
	}
	if !found {
		return fmt.Errorf("%w: matchday id=%d", ErrNotFound, item.MatchdayID)
	}

	now := s.now().UTC()
	if !md.Open {
		return fmt.Errorf("%w: matchday %q is closed for predictions", ErrInvalidInput, md.Name)
	}
	if !now.Before(item.KickoffAt) {
		return fmt.Errorf("%w: match id=%d already kicked off", ErrInvalidInput, matchID)
	}

	if err := s.predictionRepo.Upsert(ctx, prediction.Prediction{
		UserID:    userID,
		MatchID:   matchID,
		HomeGoals: homeGoals,
		AwayGoals: awayGoals,
	}); err != nil {
		return fmt.Errorf("store prediction user=%s match=%d: %w", userID, matchID, err)
	}

	s.logger.DebugContext(ctx, "prediction stored", "user_id", userID, "match_id", matchID)
	return nil
}
