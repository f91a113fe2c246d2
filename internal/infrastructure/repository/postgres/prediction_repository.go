package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/prediction"
	qb "github.com/Chango93/quinielacartoimagen-sub000/internal/platform/querybuilder"
)

type PredictionRepository struct {
	db *sqlx.DB
}

func NewPredictionRepository(db *sqlx.DB) *PredictionRepository {
	return &PredictionRepository{db: db}
}

// Upsert keeps exactly one row per (user, match); repeating a submission
// overwrites the predicted scores and clears nothing else.
func (r *PredictionRepository) Upsert(ctx context.Context, item prediction.Prediction) error {
	now := time.Now().UTC()
	query, args, err := qb.InsertInto("predictions").
		Columns("user_id", "match_id", "home_goals", "away_goals", "created_at", "updated_at").
		Values(item.UserID, item.MatchID, item.HomeGoals, item.AwayGoals, now, now).
		Suffix(`ON CONFLICT (user_id, match_id) DO UPDATE
			SET home_goals = EXCLUDED.home_goals,
			    away_goals = EXCLUDED.away_goals,
			    updated_at = EXCLUDED.updated_at`).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert prediction query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert prediction user=%s match=%d: %w", item.UserID, item.MatchID, err)
	}
	return nil
}

func (r *PredictionRepository) ListByMatchIDs(ctx context.Context, matchIDs []int64) ([]prediction.Prediction, error) {
	if len(matchIDs) == 0 {
		return nil, nil
	}

	values := make([]any, 0, len(matchIDs))
	for _, id := range matchIDs {
		values = append(values, id)
	}

	query, args, err := qb.Select("*").From("predictions").
		Where(qb.In("match_id", values)).
		OrderBy("match_id", "user_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select predictions query: %w", err)
	}

	var rows []predictionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select predictions by match ids: %w", err)
	}

	out := make([]prediction.Prediction, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapPredictionRow(row))
	}
	return out, nil
}

func (r *PredictionRepository) UpdatePoints(ctx context.Context, userID string, matchID int64, points int) error {
	query, args, err := qb.Update("predictions").
		Set("points", points).
		Set("updated_at", time.Now().UTC()).
		Where(
			qb.Eq("user_id", userID),
			qb.Eq("match_id", matchID),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update prediction points query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update prediction points user=%s match=%d: %w", userID, matchID, err)
	}
	return nil
}
