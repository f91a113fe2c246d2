package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/team"
	qb "github.com/Chango93/quinielacartoimagen-sub000/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select("*").From("teams").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, team.Team{
			ID:        row.ID,
			Name:      row.Name,
			ShortName: row.ShortName,
		})
	}

	return out, nil
}

func (r *TeamRepository) ListAliases(ctx context.Context) ([]team.Alias, error) {
	query, args, err := qb.Select("team_id", "alias").From("team_aliases").
		OrderBy("team_id", "alias").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select team aliases query: %w", err)
	}

	var rows []teamAliasTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select team aliases: %w", err)
	}

	out := make([]team.Alias, 0, len(rows))
	for _, row := range rows {
		out = append(out, team.Alias{TeamID: row.TeamID, Alias: row.Alias})
	}

	return out, nil
}
