package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/match"
	qb "github.com/Chango93/quinielacartoimagen-sub000/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) GetByID(ctx context.Context, id int64) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match by id query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match by id: %w", err)
	}

	return mapMatchRow(row), true, nil
}

func (r *MatchRepository) ListActive(ctx context.Context, now time.Time) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(
			qb.Expr("kickoff_at <= ?", now.UTC()),
			qb.Eq("finished", false),
		).
		OrderBy("kickoff_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select active matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select active matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapMatchRow(row))
	}
	return out, nil
}

func (r *MatchRepository) ListByMatchday(ctx context.Context, matchdayID int64) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Eq("matchday_id", matchdayID)).
		OrderBy("kickoff_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches by matchday query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches by matchday: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapMatchRow(row))
	}
	return out, nil
}

func (r *MatchRepository) NextKickoff(ctx context.Context, after time.Time) (*time.Time, error) {
	query, args, err := qb.Select("kickoff_at").From("matches").
		Where(qb.Expr("kickoff_at > ?", after.UTC())).
		OrderBy("kickoff_at").
		Limit(1).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build next kickoff query: %w", err)
	}

	var kickoff time.Time
	if err := r.db.GetContext(ctx, &kickoff, query, args...); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get next kickoff: %w", err)
	}

	utc := kickoff.UTC()
	return &utc, nil
}

// UpdateScore writes the reconciled scores. The finished flag only ever moves
// from false to true; the OR keeps an already-finished row finished even if a
// stale event arrives.
func (r *MatchRepository) UpdateScore(ctx context.Context, update match.ScoreUpdate) error {
	const query = `
		UPDATE matches
		SET home_score = $1,
		    away_score = $2,
		    finished = finished OR $3,
		    updated_at = $4
		WHERE id = $5`

	if _, err := r.db.ExecContext(ctx, query,
		update.HomeScore,
		update.AwayScore,
		update.Finished,
		time.Now().UTC(),
		update.MatchID,
	); err != nil {
		return fmt.Errorf("update match score id=%d: %w", update.MatchID, err)
	}
	return nil
}
