package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/prediction"
)

type PredictionRepository struct {
	mu    sync.RWMutex
	items map[string]prediction.Prediction
}

func NewPredictionRepository(items []prediction.Prediction) *PredictionRepository {
	byKey := make(map[string]prediction.Prediction, len(items))
	for _, item := range items {
		byKey[predictionKey(item.UserID, item.MatchID)] = item
	}
	return &PredictionRepository{items: byKey}
}

func predictionKey(userID string, matchID int64) string {
	return fmt.Sprintf("%s|%d", userID, matchID)
}

func (r *PredictionRepository) Upsert(_ context.Context, item prediction.Prediction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := predictionKey(item.UserID, item.MatchID)
	now := time.Now().UTC()
	if existing, ok := r.items[key]; ok {
		existing.HomeGoals = item.HomeGoals
		existing.AwayGoals = item.AwayGoals
		existing.UpdatedAt = now
		r.items[key] = existing
		return nil
	}

	item.CreatedAt = now
	item.UpdatedAt = now
	r.items[key] = item
	return nil
}

func (r *PredictionRepository) ListByMatchIDs(_ context.Context, matchIDs []int64) ([]prediction.Prediction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[int64]struct{}, len(matchIDs))
	for _, id := range matchIDs {
		wanted[id] = struct{}{}
	}

	var out []prediction.Prediction
	for _, item := range r.items {
		if _, ok := wanted[item.MatchID]; ok {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MatchID != out[j].MatchID {
			return out[i].MatchID < out[j].MatchID
		}
		return out[i].UserID < out[j].UserID
	})
	return out, nil
}

func (r *PredictionRepository) UpdatePoints(_ context.Context, userID string, matchID int64, points int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := predictionKey(userID, matchID)
	item, ok := r.items[key]
	if !ok {
		return nil
	}
	value := points
	item.Points = &value
	item.UpdatedAt = time.Now().UTC()
	r.items[key] = item
	return nil
}
