package memory

import (
	"context"
	"testing"
	"time"

	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/match"
)

func TestMatchRepository_UpdateScore_FinishedNeverReverts(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.August, 14, 20, 0, 0, 0, time.UTC)
	repo := NewMatchRepository([]match.Match{
		{ID: 10, MatchdayID: 1, HomeTeamID: 1, AwayTeamID: 4, KickoffAt: now.Add(-2 * time.Hour)},
	})

	ctx := context.Background()
	if err := repo.UpdateScore(ctx, match.ScoreUpdate{MatchID: 10, HomeScore: 3, AwayScore: 1, Finished: true}); err != nil {
		t.Fatalf("finishing write: %v", err)
	}

	// A later write without the finished flag must not clear it.
	if err := repo.UpdateScore(ctx, match.ScoreUpdate{MatchID: 10, HomeScore: 3, AwayScore: 1, Finished: false}); err != nil {
		t.Fatalf("follow-up write: %v", err)
	}

	got, ok, err := repo.GetByID(ctx, 10)
	if err != nil || !ok {
		t.Fatalf("get match: ok=%v err=%v", ok, err)
	}
	if !got.Finished {
		t.Fatalf("finished flag must latch: %+v", got)
	}

	active, err := repo.ListActive(ctx, now)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("finished match must not be listed as active: got=%d", len(active))
	}
}
