package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/match"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/matchday"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/prediction"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/platform/logging"
)

func TestPointsFor(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name                   string
		predHome, predAway     int
		resultHome, resultAway int
		want                   int
	}{
		{name: "exact score", predHome: 2, predAway: 0, resultHome: 2, resultAway: 0, want: 2},
		{name: "exact draw", predHome: 1, predAway: 1, resultHome: 1, resultAway: 1, want: 2},
		{name: "correct home win", predHome: 3, predAway: 1, resultHome: 1, resultAway: 0, want: 1},
		{name: "correct away win", predHome: 0, predAway: 2, resultHome: 1, resultAway: 3, want: 1},
		{name: "correct draw wrong score", predHome: 1, predAway: 1, resultHome: 0, resultAway: 0, want: 1},
		{name: "wrong outcome", predHome: 2, predAway: 0, resultHome: 0, resultAway: 1, want: 0},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := PointsFor(tc.predHome, tc.predAway, tc.resultHome, tc.resultAway)
			if got != tc.want {
				t.Fatalf("unexpected points: got=%d want=%d", got, tc.want)
			}
		})
	}
}

func scoringFixture(t *testing.T, matches []match.Match, preds []prediction.Prediction) (*ScoringService, *fakePredictionRepo) {
	t.Helper()

	matchdayRepo := newFakeMatchdayRepo(
		matchday.Matchday{ID: 1, Name: "Jornada 1"},
		matchday.Matchday{ID: 2, Name: "Jornada 2"},
	)
	matchRepo := newFakeMatchRepo(matches...)
	predictionRepo := newFakePredictionRepo(preds...)
	return NewScoringService(matchdayRepo, matchRepo, predictionRepo, logging.NewNop()), predictionRepo
}

func finishedMatch(id, matchdayID int64, home, away int) match.Match {
	return match.Match{
		ID:         id,
		MatchdayID: matchdayID,
		KickoffAt:  time.Date(2026, time.August, 14, 19, 0, 0, 0, time.UTC),
		HomeScore:  intPtr(home),
		AwayScore:  intPtr(away),
		Finished:   true,
	}
}

func TestScoringService_RecalculateMatchday(t *testing.T) {
	t.Parallel()

	matches := []match.Match{
		finishedMatch(10, 1, 2, 0),
		{ID: 11, MatchdayID: 1, HomeScore: intPtr(1), AwayScore: intPtr(1)}, // live, not finished
	}
	preds := []prediction.Prediction{
		{UserID: "user-x", MatchID: 10, HomeGoals: 2, AwayGoals: 0},
		{UserID: "user-y", MatchID: 10, HomeGoals: 1, AwayGoals: 0},
		{UserID: "user-x", MatchID: 11, HomeGoals: 1, AwayGoals: 1},
	}

	service, predictionRepo := scoringFixture(t, matches, preds)

	if err := service.RecalculateMatchday(context.Background(), 1); err != nil {
		t.Fatalf("recalculate: %v", err)
	}

	if got := predictionRepo.points("user-x", 10); got == nil || *got != 2 {
		t.Fatalf("exact prediction: got=%v want=2", got)
	}
	if got := predictionRepo.points("user-y", 10); got == nil || *got != 1 {
		t.Fatalf("outcome-only prediction: got=%v want=1", got)
	}
	if got := predictionRepo.points("user-x", 11); got != nil {
		t.Fatalf("unfinished match must not award points: got=%v", got)
	}
}

func TestScoringService_RecalculateMatchday_OverwritesStalePoints(t *testing.T) {
	t.Parallel()

	matches := []match.Match{finishedMatch(10, 1, 0, 1)}
	preds := []prediction.Prediction{
		// Points awarded against an earlier provisional score.
		{UserID: "user-x", MatchID: 10, HomeGoals: 1, AwayGoals: 0, Points: intPtr(2)},
	}

	service, predictionRepo := scoringFixture(t, matches, preds)

	if err := service.RecalculateMatchday(context.Background(), 1); err != nil {
		t.Fatalf("recalculate: %v", err)
	}
	if got := predictionRepo.points("user-x", 10); got == nil || *got != 0 {
		t.Fatalf("stale points must be overwritten: got=%v want=0", got)
	}
}

func TestScoringService_RecalculateMatchday_Idempotent(t *testing.T) {
	t.Parallel()

	matches := []match.Match{finishedMatch(10, 1, 1, 1)}
	preds := []prediction.Prediction{
		{UserID: "user-x", MatchID: 10, HomeGoals: 0, AwayGoals: 0},
	}

	service, predictionRepo := scoringFixture(t, matches, preds)

	for i := 0; i < 3; i++ {
		if err := service.RecalculateMatchday(context.Background(), 1); err != nil {
			t.Fatalf("recalculate pass %d: %v", i+1, err)
		}
		if got := predictionRepo.points("user-x", 10); got == nil || *got != 1 {
			t.Fatalf("pass %d: got=%v want=1", i+1, got)
		}
	}
}

func TestScoringService_RecalculateSeason(t *testing.T) {
	t.Parallel()

	matches := []match.Match{
		finishedMatch(10, 1, 2, 0),
		finishedMatch(20, 2, 0, 0),
	}
	preds := []prediction.Prediction{
		{UserID: "user-x", MatchID: 10, HomeGoals: 2, AwayGoals: 0},
		{UserID: "user-x", MatchID: 20, HomeGoals: 1, AwayGoals: 1},
	}

	service, predictionRepo := scoringFixture(t, matches, preds)

	result, err := service.RecalculateSeason(context.Background(), 2)
	if err != nil {
		t.Fatalf("recalculate season: %v", err)
	}
	if result.MatchdaysProcessed != 2 || result.MatchdaysFailed != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}

	if got := predictionRepo.points("user-x", 10); got == nil || *got != 2 {
		t.Fatalf("matchday 1 points: got=%v want=2", got)
	}
	if got := predictionRepo.points("user-x", 20); got == nil || *got != 1 {
		t.Fatalf("matchday 2 points: got=%v want=1", got)
	}
}
