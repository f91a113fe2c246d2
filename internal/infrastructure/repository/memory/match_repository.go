package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/match"
)

type MatchRepository struct {
	mu    sync.RWMutex
	items map[int64]match.Match
}

func NewMatchRepository(items []match.Match) *MatchRepository {
	byID := make(map[int64]match.Match, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	return &MatchRepository{items: byID}
}

func (r *MatchRepository) GetByID(_ context.Context, id int64) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	return item, ok, nil
}

func (r *MatchRepository) ListActive(_ context.Context, now time.Time) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []match.Match
	for _, item := range r.items {
		if item.IsActive(now) {
			out = append(out, item)
		}
	}
	sortMatches(out)
	return out, nil
}

func (r *MatchRepository) ListByMatchday(_ context.Context, matchdayID int64) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []match.Match
	for _, item := range r.items {
		if item.MatchdayID == matchdayID {
			out = append(out, item)
		}
	}
	sortMatches(out)
	return out, nil
}

func (r *MatchRepository) NextKickoff(_ context.Context, after time.Time) (*time.Time, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var next *time.Time
	for _, item := range r.items {
		kickoff := item.KickoffAt
		if !kickoff.After(after) {
			continue
		}
		if next == nil || kickoff.Before(*next) {
			next = &kickoff
		}
	}
	return next, nil
}

func (r *MatchRepository) UpdateScore(_ context.Context, update match.ScoreUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[update.MatchID]
	if !ok {
		return nil
	}

	home, away := update.HomeScore, update.AwayScore
	item.HomeScore = &home
	item.AwayScore = &away
	if update.Finished {
		item.Finished = true
	}
	item.UpdatedAt = time.Now().UTC()
	r.items[update.MatchID] = item
	return nil
}

func sortMatches(items []match.Match) {
	sort.Slice(items, func(i, j int) bool {
		if !items[i].KickoffAt.Equal(items[j].KickoffAt) {
			return items[i].KickoffAt.Before(items[j].KickoffAt)
		}
		return items[i].ID < items[j].ID
	})
}
