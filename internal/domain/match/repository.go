package match

import (
	"context"
	"time"
)

// ScoreUpdate is one idempotent row write produced by reconciliation.
type ScoreUpdate struct {
	MatchID   int64
	HomeScore int
	AwayScore int
	Finished  bool
}

// Repository exposes match reads and the row-scoped score write. UpdateScore
// must be idempotent: writing the same scores twice is a no-op at the state
// level, and it must never clear Finished once set.
type Repository interface {
	GetByID(ctx context.Context, id int64) (Match, bool, error)
	ListActive(ctx context.Context, now time.Time) ([]Match, error)
	ListByMatchday(ctx context.Context, matchdayID int64) ([]Match, error)
	// NextKickoff returns the earliest kickoff strictly after the given
	// instant, or nil when nothing is scheduled.
	NextKickoff(ctx context.Context, after time.Time) (*time.Time, error)
	UpdateScore(ctx context.Context, update ScoreUpdate) error
}
