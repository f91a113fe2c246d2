package memory

import (
	"context"
	"sync"

	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/team"
)

type TeamRepository struct {
	mu      sync.RWMutex
	teams   []team.Team
	aliases []team.Alias
}

func NewTeamRepository(teams []team.Team, aliases []team.Alias) *TeamRepository {
	return &TeamRepository{
		teams:   append([]team.Team(nil), teams...),
		aliases: append([]team.Alias(nil), aliases...),
	}
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]team.Team(nil), r.teams...), nil
}

func (r *TeamRepository) ListAliases(_ context.Context) ([]team.Alias, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]team.Alias(nil), r.aliases...), nil
}
