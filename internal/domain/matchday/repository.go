package matchday

import "context"

// Repository exposes matchday reads plus the single write the reconciliation
// cycle owns (deadline auto-close).
type Repository interface {
	List(ctx context.Context) ([]Matchday, error)
	GetByID(ctx context.Context, matchdayID int64) (Matchday, bool, error)
	SetOpen(ctx context.Context, matchdayID int64, open bool) error
}
