package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/match"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/matchday"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

type feedProviderMock struct {
	mock.Mock
}

func (m *feedProviderMock) FetchEvents(ctx context.Context, from, to time.Time) ([]FeedEvent, error) {
	args := m.Called(ctx, from, to)
	events, _ := args.Get(0).([]FeedEvent)
	return events, args.Error(1)
}

func newMockSyncFixture(t *testing.T, matches []match.Match, provider *feedProviderMock) *SyncService {
	t.Helper()

	logger := logging.NewNop()
	matchdayRepo := newFakeMatchdayRepo(matchday.Matchday{ID: 1, Name: "Jornada 1", Open: true})
	matchRepo := newFakeMatchRepo(matches...)
	predictionRepo := newFakePredictionRepo()
	teamRepo := &fakeTeamRepo{teams: syncTestTeams()}
	profileRepo := &fakeProfileRepo{}

	scoring := NewScoringService(matchdayRepo, matchRepo, predictionRepo, logger)
	service := NewSyncService(provider, teamRepo, matchdayRepo, matchRepo, profileRepo, scoring, logger)
	service.now = func() time.Time { return syncTestNow }
	return service
}

func TestSyncService_RunCycle_FetchesPaddedWindowUsingMock(t *testing.T) {
	t.Parallel()

	matches := []match.Match{
		{ID: 10, MatchdayID: 1, HomeTeamID: 1, AwayTeamID: 4, KickoffAt: syncTestNow.Add(-30 * time.Minute)},
		{ID: 11, MatchdayID: 1, HomeTeamID: 16, AwayTeamID: 17, KickoffAt: syncTestNow.Add(26 * time.Hour)},
	}
	provider := &feedProviderMock{}
	provider.
		On("FetchEvents", mock.Anything,
			mock.MatchedBy(func(from time.Time) bool { return !from.After(matches[0].KickoffAt.AddDate(0, 0, -1)) }),
			mock.MatchedBy(func(to time.Time) bool { return !to.Before(matches[1].KickoffAt.AddDate(0, 0, 1)) }),
		).
		Return([]FeedEvent(nil), nil).
		Once()

	service := newMockSyncFixture(t, matches, provider)

	if _, err := service.RunCycle(context.Background()); err != nil {
		t.Fatalf("run cycle: %v", err)
	}
	provider.AssertExpectations(t)
}

func TestSyncService_RunCycle_ProviderFailurePropagatesUsingMock(t *testing.T) {
	t.Parallel()

	matches := []match.Match{
		{ID: 10, MatchdayID: 1, HomeTeamID: 1, AwayTeamID: 4, KickoffAt: syncTestNow.Add(-30 * time.Minute)},
	}
	errFeedDown := errors.New("all sources unreachable")
	provider := &feedProviderMock{}
	provider.
		On("FetchEvents", mock.Anything, mock.Anything, mock.Anything).
		Return([]FeedEvent(nil), errFeedDown).
		Once()

	service := newMockSyncFixture(t, matches, provider)

	_, err := service.RunCycle(context.Background())
	if !errors.Is(err, errFeedDown) {
		t.Fatalf("expected provider failure to propagate, got: %v", err)
	}
	provider.AssertExpectations(t)
}

func TestSyncService_RunCycle_NoActiveMatchesSkipsProviderUsingMock(t *testing.T) {
	t.Parallel()

	provider := &feedProviderMock{}
	service := newMockSyncFixture(t, nil, provider)

	summary, err := service.RunCycle(context.Background())
	if err != nil {
		t.Fatalf("run cycle: %v", err)
	}
	if summary.MatchesChecked != 0 {
		t.Fatalf("unexpected checked count: got=%d want=0", summary.MatchesChecked)
	}
	provider.AssertNotCalled(t, "FetchEvents", mock.Anything, mock.Anything, mock.Anything)
}
