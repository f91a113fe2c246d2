package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/matchday"
)

type MatchdayRepository struct {
	mu    sync.RWMutex
	items map[int64]matchday.Matchday
}

func NewMatchdayRepository(items []matchday.Matchday) *MatchdayRepository {
	byID := make(map[int64]matchday.Matchday, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	return &MatchdayRepository{items: byID}
}

func (r *MatchdayRepository) List(_ context.Context) ([]matchday.Matchday, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]matchday.Matchday, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MatchdayRepository) GetByID(_ context.Context, id int64) (matchday.Matchday, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	return item, ok, nil
}

func (r *MatchdayRepository) SetOpen(_ context.Context, id int64, open bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return nil
	}
	item.Open = open
	r.items[id] = item
	return nil
}
