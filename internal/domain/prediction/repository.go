package prediction

import "context"

// Repository exposes prediction reads plus the two idempotent writes the core
// performs: the (user, match)-keyed upsert and the scoring overwrite.
type Repository interface {
	Upsert(ctx context.Context, item Prediction) error
	ListByMatchIDs(ctx context.Context, matchIDs []int64) ([]Prediction, error)
	UpdatePoints(ctx context.Context, userID string, matchID int64, points int) error
}
