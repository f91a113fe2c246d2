package postgres

import (
	"database/sql"
	"time"

	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/match"
)

type matchTableModel struct {
	ID         int64         `db:"id"`
	MatchdayID int64         `db:"matchday_id"`
	HomeTeamID int64         `db:"home_team_id"`
	AwayTeamID int64         `db:"away_team_id"`
	KickoffAt  time.Time     `db:"kickoff_at"`
	HomeScore  sql.NullInt64 `db:"home_score"`
	AwayScore  sql.NullInt64 `db:"away_score"`
	Finished   bool          `db:"finished"`
	CreatedAt  time.Time     `db:"created_at"`
	UpdatedAt  time.Time     `db:"updated_at"`
}

func mapMatchRow(row matchTableModel) match.Match {
	return match.Match{
		ID:         row.ID,
		MatchdayID: row.MatchdayID,
		HomeTeamID: row.HomeTeamID,
		AwayTeamID: row.AwayTeamID,
		KickoffAt:  row.KickoffAt.UTC(),
		HomeScore:  nullIntToPtr(row.HomeScore),
		AwayScore:  nullIntToPtr(row.AwayScore),
		Finished:   row.Finished,
		UpdatedAt:  row.UpdatedAt.UTC(),
	}
}
