package postgres

import (
	"database/sql"
	"time"

	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/prediction"
)

type predictionTableModel struct {
	UserID    string        `db:"user_id"`
	MatchID   int64         `db:"match_id"`
	HomeGoals int           `db:"home_goals"`
	AwayGoals int           `db:"away_goals"`
	Points    sql.NullInt64 `db:"points"`
	CreatedAt time.Time     `db:"created_at"`
	UpdatedAt time.Time     `db:"updated_at"`
}

func mapPredictionRow(row predictionTableModel) prediction.Prediction {
	return prediction.Prediction{
		UserID:    row.UserID,
		MatchID:   row.MatchID,
		HomeGoals: row.HomeGoals,
		AwayGoals: row.AwayGoals,
		Points:    nullIntToPtr(row.Points),
		CreatedAt: row.CreatedAt.UTC(),
		UpdatedAt: row.UpdatedAt.UTC(),
	}
}
