package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/match"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/matchday"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/prediction"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/profile"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/platform/logging"
)

func leaderboardFixture(t *testing.T, matches []match.Match, preds []prediction.Prediction, profiles []profile.Profile) *LeaderboardService {
	t.Helper()

	matchdayRepo := newFakeMatchdayRepo(
		matchday.Matchday{ID: 1, Name: "Jornada 1"},
		matchday.Matchday{ID: 2, Name: "Jornada 2"},
	)
	matchRepo := newFakeMatchRepo(matches...)
	predictionRepo := newFakePredictionRepo(preds...)
	profileRepo := &fakeProfileRepo{items: profiles}
	return NewLeaderboardService(matchdayRepo, matchRepo, predictionRepo, profileRepo, logging.NewNop())
}

func TestLeaderboardService_MatchdayLeaderboard_EndToEnd(t *testing.T) {
	t.Parallel()

	matches := []match.Match{
		finishedMatch(10, 1, 2, 0),
		finishedMatch(11, 1, 0, 0),
	}
	preds := []prediction.Prediction{
		{UserID: "user-x", MatchID: 10, HomeGoals: 2, AwayGoals: 0, Points: intPtr(2)},
		{UserID: "user-x", MatchID: 11, HomeGoals: 1, AwayGoals: 1, Points: intPtr(1)},
	}
	profiles := []profile.Profile{
		{UserID: "user-x", DisplayName: "User X", Role: profile.RoleParticipant, ParticipationMode: profile.ParticipationBoth},
	}

	service := leaderboardFixture(t, matches, preds, profiles)

	rows, err := service.MatchdayLeaderboard(context.Background(), 1)
	if err != nil {
		t.Fatalf("matchday leaderboard: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("unexpected row count: got=%d want=1", len(rows))
	}

	row := rows[0]
	if row.TotalPoints != 3 || row.ExactResults != 1 || row.TotalPredictions != 2 {
		t.Fatalf("unexpected aggregation: %+v", row)
	}
	if row.Rank != 1 || row.DisplayName != "User X" {
		t.Fatalf("unexpected row shape: %+v", row)
	}
}

func TestLeaderboardService_MatchdayLeaderboard_UnknownMatchday(t *testing.T) {
	t.Parallel()

	service := leaderboardFixture(t, nil, nil, nil)

	if _, err := service.MatchdayLeaderboard(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLeaderboardService_Ranking_TiedUsersShareRank(t *testing.T) {
	t.Parallel()

	matches := []match.Match{finishedMatch(10, 1, 1, 0)}
	preds := []prediction.Prediction{
		{UserID: "user-c", MatchID: 10, HomeGoals: 1, AwayGoals: 0, Points: intPtr(2)},
		{UserID: "user-a", MatchID: 10, HomeGoals: 2, AwayGoals: 0, Points: intPtr(1)},
		{UserID: "user-b", MatchID: 10, HomeGoals: 3, AwayGoals: 1, Points: intPtr(1)},
	}

	service := leaderboardFixture(t, matches, preds, nil)

	rows, err := service.MatchdayLeaderboard(context.Background(), 1)
	if err != nil {
		t.Fatalf("matchday leaderboard: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("unexpected row count: got=%d want=3", len(rows))
	}

	if rows[0].UserID != "user-c" || rows[0].Rank != 1 {
		t.Fatalf("unexpected leader: %+v", rows[0])
	}
	if rows[1].UserID != "user-a" || rows[1].Rank != 2 {
		t.Fatalf("tied users must order by user id: %+v", rows[1])
	}
	if rows[2].UserID != "user-b" || rows[2].Rank != 2 {
		t.Fatalf("tied users must share a rank: %+v", rows[2])
	}
}

func TestLeaderboardService_Ranking_Deterministic(t *testing.T) {
	t.Parallel()

	matches := []match.Match{finishedMatch(10, 1, 1, 0)}
	preds := []prediction.Prediction{
		{UserID: "user-b", MatchID: 10, HomeGoals: 2, AwayGoals: 0, Points: intPtr(1)},
		{UserID: "user-a", MatchID: 10, HomeGoals: 3, AwayGoals: 1, Points: intPtr(1)},
	}

	service := leaderboardFixture(t, matches, preds, nil)

	first, err := service.MatchdayLeaderboard(context.Background(), 1)
	if err != nil {
		t.Fatalf("first computation: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := service.MatchdayLeaderboard(context.Background(), 1)
		if err != nil {
			t.Fatalf("repeat computation: %v", err)
		}
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("ordering drifted on repeat %d: got=%+v want=%+v", i+1, again[j], first[j])
			}
		}
	}
}

func TestLeaderboardService_GlobalLeaderboard_FiltersByParticipation(t *testing.T) {
	t.Parallel()

	matches := []match.Match{
		finishedMatch(10, 1, 2, 0),
		finishedMatch(20, 2, 1, 1),
	}
	preds := []prediction.Prediction{
		{UserID: "season-only", MatchID: 10, HomeGoals: 2, AwayGoals: 0, Points: intPtr(2)},
		{UserID: "season-only", MatchID: 20, HomeGoals: 1, AwayGoals: 1, Points: intPtr(2)},
		{UserID: "matchday-only", MatchID: 10, HomeGoals: 1, AwayGoals: 0, Points: intPtr(1)},
		{UserID: "plays-both", MatchID: 10, HomeGoals: 0, AwayGoals: 0, Points: intPtr(0)},
	}
	profiles := []profile.Profile{
		{UserID: "season-only", DisplayName: "Season Only", ParticipationMode: profile.ParticipationSeason},
		{UserID: "matchday-only", DisplayName: "Matchday Only", ParticipationMode: profile.ParticipationMatchday},
		{UserID: "plays-both", DisplayName: "Plays Both", ParticipationMode: profile.ParticipationBoth},
	}

	service := leaderboardFixture(t, matches, preds, profiles)

	seasonRows, err := service.GlobalLeaderboard(context.Background(), ScopeSeason)
	if err != nil {
		t.Fatalf("season leaderboard: %v", err)
	}
	if len(seasonRows) != 2 {
		t.Fatalf("season scope must exclude matchday-only users: got=%d rows", len(seasonRows))
	}
	if seasonRows[0].UserID != "season-only" || seasonRows[0].TotalPoints != 4 {
		t.Fatalf("unexpected season leader: %+v", seasonRows[0])
	}

	matchdayRows, err := service.GlobalLeaderboard(context.Background(), ScopeMatchday)
	if err != nil {
		t.Fatalf("matchday-scope leaderboard: %v", err)
	}
	for _, row := range matchdayRows {
		if row.UserID == "season-only" {
			t.Fatalf("matchday scope must exclude season-only users: %+v", row)
		}
	}

	if _, err := service.GlobalLeaderboard(context.Background(), "weekly"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown scope, got %v", err)
	}
}

func TestLeaderboardService_CumulativeSeries(t *testing.T) {
	t.Parallel()

	matches := []match.Match{
		finishedMatch(10, 1, 2, 0),
		finishedMatch(20, 2, 1, 1),
	}
	preds := []prediction.Prediction{
		{UserID: "user-x", MatchID: 10, HomeGoals: 2, AwayGoals: 0, Points: intPtr(2)},
		{UserID: "user-x", MatchID: 20, HomeGoals: 0, AwayGoals: 0, Points: intPtr(1)},
	}
	profiles := []profile.Profile{
		{UserID: "user-x", DisplayName: "User X", ParticipationMode: profile.ParticipationBoth},
	}

	service := leaderboardFixture(t, matches, preds, profiles)

	series, err := service.CumulativeSeries(context.Background())
	if err != nil {
		t.Fatalf("cumulative series: %v", err)
	}
	if len(series) != 1 {
		t.Fatalf("unexpected series count: got=%d want=1", len(series))
	}

	points := series[0].Points
	if len(points) != 2 {
		t.Fatalf("unexpected point count: got=%d want=2", len(points))
	}
	if points[0].MatchdayID != 1 || points[0].Points != 2 || points[0].Cumulative != 2 {
		t.Fatalf("unexpected first step: %+v", points[0])
	}
	if points[1].MatchdayID != 2 || points[1].Points != 1 || points[1].Cumulative != 3 {
		t.Fatalf("unexpected second step: %+v", points[1])
	}
}
