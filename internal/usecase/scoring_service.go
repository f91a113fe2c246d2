package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"

	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/match"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/matchday"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/prediction"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/platform/logging"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/platform/resilience"
)

const (
	pointsExact   = 2
	pointsOutcome = 1

	defaultSeasonRecalcWorkers = 4
)

// ScoringService recalculates prediction points from stored match results.
// Points are always derived, never incremented, so a recalculation can run
// any number of times against the same results and land on the same rows.
type ScoringService struct {
	matchdayRepo   matchday.Repository
	matchRepo      match.Repository
	predictionRepo prediction.Repository
	logger         *logging.Logger

	// recalcGroup collapses concurrent recalculations of the same matchday
	// into one pass; the scheduler and the admin trigger can overlap.
	recalcGroup resilience.SingleFlight
}

func NewScoringService(
	matchdayRepo matchday.Repository,
	matchRepo match.Repository,
	predictionRepo prediction.Repository,
	logger *logging.Logger,
) *ScoringService {
	if logger == nil {
		logger = logging.Default()
	}

	return &ScoringService{
		matchdayRepo:   matchdayRepo,
		matchRepo:      matchRepo,
		predictionRepo: predictionRepo,
		logger:         logger,
	}
}

// PointsFor awards points for one prediction against one result: exact score,
// then correct outcome, then nothing.
func PointsFor(predHome, predAway, resultHome, resultAway int) int {
	if predHome == resultHome && predAway == resultAway {
		return pointsExact
	}
	if outcomeSign(predHome, predAway) == outcomeSign(resultHome, resultAway) {
		return pointsOutcome
	}
	return 0
}

func outcomeSign(home, away int) int {
	switch {
	case home > away:
		return 1
	case home < away:
		return -1
	default:
		return 0
	}
}

// RecalculateMatchday rescores every prediction on the matchday from scratch.
// Only finished matches award points; predictions on unfinished matches stay
// unscored. Matchday lock state does not gate scoring.
func (s *ScoringService) RecalculateMatchday(ctx context.Context, matchdayID int64) error {
	_, err, _ := s.recalcGroup.Do(fmt.Sprintf("recalc-matchday-%d", matchdayID), func() (any, error) {
		return nil, s.recalculateMatchday(ctx, matchdayID)
	})
	return err
}

func (s *ScoringService) recalculateMatchday(ctx context.Context, matchdayID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.RecalculateMatchday")
	defer span.End()

	matches, err := s.matchRepo.ListByMatchday(ctx, matchdayID)
	if err != nil {
		return fmt.Errorf("list matches for scoring matchday id=%d: %w", matchdayID, err)
	}
	if len(matches) == 0 {
		return nil
	}

	resultByMatch := make(map[int64]match.Match, len(matches))
	matchIDs := make([]int64, 0, len(matches))
	for _, item := range matches {
		matchIDs = append(matchIDs, item.ID)
		if item.Finished && item.HasResult() {
			resultByMatch[item.ID] = item
		}
	}

	predictions, err := s.predictionRepo.ListByMatchIDs(ctx, matchIDs)
	if err != nil {
		return fmt.Errorf("list predictions for scoring matchday id=%d: %w", matchdayID, err)
	}

	scored := 0
	for _, pred := range predictions {
		result, hasResult := resultByMatch[pred.MatchID]
		if !hasResult {
			continue
		}

		points := PointsFor(pred.HomeGoals, pred.AwayGoals, *result.HomeScore, *result.AwayScore)
		if pred.Points != nil && *pred.Points == points {
			continue
		}

		if err := s.predictionRepo.UpdatePoints(ctx, pred.UserID, pred.MatchID, points); err != nil {
			return fmt.Errorf("store points user=%s match=%d: %w", pred.UserID, pred.MatchID, err)
		}
		scored++
	}

	s.logger.DebugContext(ctx, "matchday rescored",
		"matchday_id", matchdayID,
		"predictions", len(predictions),
		"rows_written", scored,
	)

	return nil
}

// SeasonRecalcResult reports the outcome of a season-wide rebuild.
type SeasonRecalcResult struct {
	MatchdaysProcessed int     `json:"matchdays_processed"`
	MatchdaysFailed    int     `json:"matchdays_failed"`
	FailedMatchdayIDs  []int64 `json:"failed_matchday_ids,omitempty"`
}

// RecalculateSeason rebuilds points for every matchday over a bounded worker
// pool. A failing matchday is reported and does not stop the others.
func (s *ScoringService) RecalculateSeason(ctx context.Context, maxWorkers int) (SeasonRecalcResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.RecalculateSeason")
	defer span.End()

	matchdays, err := s.matchdayRepo.List(ctx)
	if err != nil {
		return SeasonRecalcResult{}, fmt.Errorf("list matchdays for season recalc: %w", err)
	}
	if len(matchdays) == 0 {
		return SeasonRecalcResult{}, nil
	}

	if maxWorkers <= 0 {
		maxWorkers = defaultSeasonRecalcWorkers
	}

	pool, err := ants.NewPool(maxWorkers)
	if err != nil {
		return SeasonRecalcResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	failures := make(chan int64, len(matchdays))

	var processedCount atomic.Int32
	var workers sync.WaitGroup
	for _, item := range matchdays {
		item := item
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			if err := s.RecalculateMatchday(ctx, item.ID); err != nil {
				s.logger.WarnContext(ctx, "season recalc: matchday failed", "matchday_id", item.ID, "error", err)
				failures <- item.ID
				return
			}
			processedCount.Add(1)
		}); err != nil {
			workers.Done()
			return SeasonRecalcResult{}, fmt.Errorf("submit matchday to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(failures)

	result := SeasonRecalcResult{MatchdaysProcessed: int(processedCount.Load())}
	for id := range failures {
		result.FailedMatchdayIDs = append(result.FailedMatchdayIDs, id)
	}
	result.MatchdaysFailed = len(result.FailedMatchdayIDs)
	sort.Slice(result.FailedMatchdayIDs, func(i, j int) bool {
		return result.FailedMatchdayIDs[i] < result.FailedMatchdayIDs[j]
	})

	return result, nil
}
