package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/match"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/platform/logging"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/usecase"
)

type stubMatchRepo struct {
	next *time.Time
}

func (r *stubMatchRepo) GetByID(ctx context.Context, id int64) (match.Match, bool, error) {
	return match.Match{}, false, nil
}

func (r *stubMatchRepo) ListActive(ctx context.Context, now time.Time) ([]match.Match, error) {
	return nil, nil
}

func (r *stubMatchRepo) ListByMatchday(ctx context.Context, matchdayID int64) ([]match.Match, error) {
	return nil, nil
}

func (r *stubMatchRepo) NextKickoff(ctx context.Context, after time.Time) (*time.Time, error) {
	return r.next, nil
}

func (r *stubMatchRepo) UpdateScore(ctx context.Context, update match.ScoreUpdate) error {
	return nil
}

func newTestRunner(next *time.Time, now time.Time) *Runner {
	runner := NewRunner(nil, &stubMatchRepo{next: next}, Config{
		LiveInterval:   2 * time.Minute,
		IdleInterval:   6 * time.Hour,
		PreKickoffLead: 10 * time.Minute,
	}, logging.NewNop())
	runner.now = func() time.Time { return now }
	return runner
}

func TestRunner_NextDelay(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.August, 14, 12, 0, 0, 0, time.UTC)

	t.Run("live matches use live interval", func(t *testing.T) {
		runner := newTestRunner(nil, now)

		got := runner.nextDelay(context.Background(), usecase.SyncSummary{LiveMatches: 2}, false)
		if got != 2*time.Minute {
			t.Fatalf("unexpected delay: got=%s want=2m", got)
		}
	})

	t.Run("failed cycle retries on live interval", func(t *testing.T) {
		runner := newTestRunner(nil, now)

		got := runner.nextDelay(context.Background(), usecase.SyncSummary{}, true)
		if got != 2*time.Minute {
			t.Fatalf("unexpected delay: got=%s want=2m", got)
		}
	})

	t.Run("upcoming kickoff waits until lead window", func(t *testing.T) {
		kickoff := now.Add(90 * time.Minute)
		runner := newTestRunner(&kickoff, now)

		got := runner.nextDelay(context.Background(), usecase.SyncSummary{}, false)
		if got != 80*time.Minute {
			t.Fatalf("unexpected delay: got=%s want=80m", got)
		}
	})

	t.Run("kickoff inside lead window polls at live interval", func(t *testing.T) {
		kickoff := now.Add(5 * time.Minute)
		runner := newTestRunner(&kickoff, now)

		got := runner.nextDelay(context.Background(), usecase.SyncSummary{}, false)
		if got != 2*time.Minute {
			t.Fatalf("unexpected delay: got=%s want=2m", got)
		}
	})

	t.Run("no upcoming kickoff backs off to idle interval", func(t *testing.T) {
		runner := newTestRunner(nil, now)

		got := runner.nextDelay(context.Background(), usecase.SyncSummary{}, false)
		if got != 6*time.Hour {
			t.Fatalf("unexpected delay: got=%s want=6h", got)
		}
	})

	t.Run("distant kickoff capped at idle interval", func(t *testing.T) {
		kickoff := now.Add(72 * time.Hour)
		runner := newTestRunner(&kickoff, now)

		got := runner.nextDelay(context.Background(), usecase.SyncSummary{}, false)
		if got != 6*time.Hour {
			t.Fatalf("unexpected delay: got=%s want=6h", got)
		}
	})
}
