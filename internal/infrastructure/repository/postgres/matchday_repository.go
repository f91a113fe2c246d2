package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/matchday"
	qb "github.com/Chango93/quinielacartoimagen-sub000/internal/platform/querybuilder"
)

type MatchdayRepository struct {
	db *sqlx.DB
}

func NewMatchdayRepository(db *sqlx.DB) *MatchdayRepository {
	return &MatchdayRepository{db: db}
}

func (r *MatchdayRepository) List(ctx context.Context) ([]matchday.Matchday, error) {
	query, args, err := qb.Select("*").From("matchdays").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matchdays query: %w", err)
	}

	var rows []matchdayTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matchdays: %w", err)
	}

	out := make([]matchday.Matchday, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapMatchdayRow(row))
	}

	return out, nil
}

func (r *MatchdayRepository) GetByID(ctx context.Context, id int64) (matchday.Matchday, bool, error) {
	query, args, err := qb.Select("*").From("matchdays").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return matchday.Matchday{}, false, fmt.Errorf("build get matchday by id query: %w", err)
	}

	var row matchdayTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return matchday.Matchday{}, false, nil
		}
		return matchday.Matchday{}, false, fmt.Errorf("get matchday by id: %w", err)
	}

	return mapMatchdayRow(row), true, nil
}

func (r *MatchdayRepository) SetOpen(ctx context.Context, id int64, open bool) error {
	query, args, err := qb.Update("matchdays").
		Set("open", open).
		Set("updated_at", time.Now().UTC()).
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update matchday open query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update matchday open: %w", err)
	}
	return nil
}

func mapMatchdayRow(row matchdayTableModel) matchday.Matchday {
	return matchday.Matchday{
		ID:          row.ID,
		Name:        row.Name,
		Open:        row.Open,
		AutoCloseAt: row.AutoCloseAt,
		Current:     row.Current,
	}
}
