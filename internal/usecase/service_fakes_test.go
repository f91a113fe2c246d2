package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/match"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/matchday"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/prediction"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/profile"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/team"
)

type fakeTeamRepo struct {
	teams   []team.Team
	aliases []team.Alias
}

func (r *fakeTeamRepo) List(ctx context.Context) ([]team.Team, error) {
	return r.teams, nil
}

func (r *fakeTeamRepo) ListAliases(ctx context.Context) ([]team.Alias, error) {
	return r.aliases, nil
}

type fakeMatchdayRepo struct {
	mu    sync.Mutex
	items map[int64]matchday.Matchday
}

func newFakeMatchdayRepo(items ...matchday.Matchday) *fakeMatchdayRepo {
	repo := &fakeMatchdayRepo{items: make(map[int64]matchday.Matchday, len(items))}
	for _, item := range items {
		repo.items[item.ID] = item
	}
	return repo
}

func (r *fakeMatchdayRepo) List(ctx context.Context) ([]matchday.Matchday, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]matchday.Matchday, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeMatchdayRepo) GetByID(ctx context.Context, id int64) (matchday.Matchday, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	return item, ok, nil
}

func (r *fakeMatchdayRepo) SetOpen(ctx context.Context, id int64, open bool) error {
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

type fakeMatchRepo struct {
	mu          sync.Mutex
	items       map[int64]match.Match
	updateErrBy map[int64]error
	updates     []match.ScoreUpdate
}

func newFakeMatchRepo(items ...match.Match) *fakeMatchRepo {
	repo := &fakeMatchRepo{
		items:       make(map[int64]match.Match, len(items)),
		updateErrBy: make(map[int64]error),
	}
	for _, item := range items {
		repo.items[item.ID] = item
	}
	return repo
}

func (r *fakeMatchRepo) GetByID(ctx context.Context, id int64) (match.Match, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	return item, ok, nil
}

func (r *fakeMatchRepo) ListActive(ctx context.Context, now time.Time) ([]match.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []match.Match
	for _, item := range r.items {
		if item.IsActive(now) {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeMatchRepo) ListByMatchday(ctx context.Context, matchdayID int64) ([]match.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []match.Match
	for _, item := range r.items {
		if item.MatchdayID == matchdayID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeMatchRepo) NextKickoff(ctx context.Context, after time.Time) (*time.Time, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

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

func (r *fakeMatchRepo) UpdateScore(ctx context.Context, update match.ScoreUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.updateErrBy[update.MatchID]; err != nil {
		return err
	}

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
	r.items[update.MatchID] = item
	r.updates = append(r.updates, update)
	return nil
}

func (r *fakeMatchRepo) get(id int64) match.Match {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.items[id]
}

func (r *fakeMatchRepo) updateCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.updates)
}

type fakePredictionRepo struct {
	mu    sync.Mutex
	items map[string]prediction.Prediction
}

func predictionKey(userID string, matchID int64) string {
	return fmt.Sprintf("%s|%d", userID, matchID)
}

func newFakePredictionRepo(items ...prediction.Prediction) *fakePredictionRepo {
	repo := &fakePredictionRepo{items: make(map[string]prediction.Prediction, len(items))}
	for _, item := range items {
		repo.items[predictionKey(item.UserID, item.MatchID)] = item
	}
	return repo
}

func (r *fakePredictionRepo) Upsert(ctx context.Context, item prediction.Prediction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[predictionKey(item.UserID, item.MatchID)] = item
	return nil
}

func (r *fakePredictionRepo) ListByMatchIDs(ctx context.Context, matchIDs []int64) ([]prediction.Prediction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

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

func (r *fakePredictionRepo) UpdatePoints(ctx context.Context, userID string, matchID int64, points int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := predictionKey(userID, matchID)
	item, ok := r.items[key]
	if !ok {
		return nil
	}
	value := points
	item.Points = &value
	r.items[key] = item
	return nil
}

func (r *fakePredictionRepo) points(userID string, matchID int64) *int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.items[predictionKey(userID, matchID)].Points
}

type fakeProfileRepo struct {
	items []profile.Profile
}

func (r *fakeProfileRepo) List(ctx context.Context) ([]profile.Profile, error) {
	return r.items, nil
}

func (r *fakeProfileRepo) GetByUserID(ctx context.Context, userID string) (profile.Profile, bool, error) {
	for _, item := range r.items {
		if item.UserID == userID {
			return item, true, nil
		}
	}
	return profile.Profile{}, false, nil
}

type fakeFeedProvider struct {
	mu     sync.Mutex
	events []FeedEvent
	err    error
	calls  int
}

func (p *fakeFeedProvider) FetchEvents(ctx context.Context, from, to time.Time) ([]FeedEvent, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.events, nil
}

func intPtr(v int) *int {
	return &v
}
