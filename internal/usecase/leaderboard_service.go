package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/match"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/matchday"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/prediction"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/profile"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/platform/logging"
)

// LeaderboardScope selects which participation modes a leaderboard counts.
type LeaderboardScope string

const (
	ScopeMatchday LeaderboardScope = "matchday"
	ScopeSeason   LeaderboardScope = "season"
)

// LeaderboardEntry is a ranked leaderboard row. It is derived on demand and
// never stored; tied users share a rank.
type LeaderboardEntry struct {
	Rank              int    `json:"rank"`
	UserID            string `json:"user_id"`
	DisplayName       string `json:"display_name"`
	TotalPoints       int    `json:"total_points"`
	ExactResults      int    `json:"exact_results"`
	TotalPredictions  int    `json:"total_predictions"`
	ParticipationMode string `json:"participation_mode"`
}

// SeriesPoint is one matchday step of a user's cumulative-points curve.
type SeriesPoint struct {
	MatchdayID   int64  `json:"matchday_id"`
	MatchdayName string `json:"matchday_name"`
	Points       int    `json:"points"`
	Cumulative   int    `json:"cumulative"`
}

// UserSeries is one user's full matchday-by-matchday progression.
type UserSeries struct {
	UserID      string        `json:"user_id"`
	DisplayName string        `json:"display_name"`
	Points      []SeriesPoint `json:"points"`
}

// LeaderboardService aggregates graded predictions into ranked views. It only
// reads what the scoring service wrote, so its outputs are deterministic for a
// fixed store state.
type LeaderboardService struct {
	matchdayRepo   matchday.Repository
	matchRepo      match.Repository
	predictionRepo prediction.Repository
	profileRepo    profile.Repository
	logger         *logging.Logger
}

func NewLeaderboardService(
	matchdayRepo matchday.Repository,
	matchRepo match.Repository,
	predictionRepo prediction.Repository,
	profileRepo profile.Repository,
	logger *logging.Logger,
) *LeaderboardService {
	if logger == nil {
		logger = logging.Default()
	}

	return &LeaderboardService{
		matchdayRepo:   matchdayRepo,
		matchRepo:      matchRepo,
		predictionRepo: predictionRepo,
		profileRepo:    profileRepo,
		logger:         logger,
	}
}

// MatchdayLeaderboard ranks participants over one matchday's graded
// predictions.
func (s *LeaderboardService) MatchdayLeaderboard(ctx context.Context, matchdayID int64) ([]LeaderboardEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.MatchdayLeaderboard")
	defer span.End()

	if _, found, err := s.matchdayRepo.GetByID(ctx, matchdayID); err != nil {
		return nil, fmt.Errorf("load matchday id=%d: %w", matchdayID, err)
	} else if !found {
		return nil, fmt.Errorf("%w: matchday id=%d", ErrNotFound, matchdayID)
	}

	predictions, err := s.matchdayPredictions(ctx, matchdayID)
	if err != nil {
		return nil, err
	}

	profiles, err := s.profilesByUser(ctx)
	if err != nil {
		return nil, err
	}

	return rankEntries(aggregate(predictions, profiles, ScopeMatchday)), nil
}

// GlobalLeaderboard ranks participants over every matchday. The scope filters
// by participation mode; an empty scope defaults to season.
func (s *LeaderboardService) GlobalLeaderboard(ctx context.Context, scope LeaderboardScope) ([]LeaderboardEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.GlobalLeaderboard")
	defer span.End()

	switch scope {
	case ScopeMatchday, ScopeSeason:
	case "":
		scope = ScopeSeason
	default:
		return nil, fmt.Errorf("%w: unknown leaderboard scope %q", ErrInvalidInput, scope)
	}

	matchdays, err := s.matchdayRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matchdays for leaderboard: %w", err)
	}

	var all []prediction.Prediction
	for _, md := range matchdays {
		preds, err := s.matchdayPredictions(ctx, md.ID)
		if err != nil {
			return nil, err
		}
		all = append(all, preds...)
	}

	profiles, err := s.profilesByUser(ctx)
	if err != nil {
		return nil, err
	}

	return rankEntries(aggregate(all, profiles, scope)), nil
}

// CumulativeSeries builds every season participant's points curve as a rolling
// sum of the per-matchday outputs, in matchday order.
func (s *LeaderboardService) CumulativeSeries(ctx context.Context) ([]UserSeries, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.CumulativeSeries")
	defer span.End()

	matchdays, err := s.matchdayRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matchdays for series: %w", err)
	}
	sort.Slice(matchdays, func(i, j int) bool { return matchdays[i].ID < matchdays[j].ID })

	profiles, err := s.profilesByUser(ctx)
	if err != nil {
		return nil, err
	}

	series := make(map[string]*UserSeries)
	running := make(map[string]int)

	for _, md := range matchdays {
		preds, err := s.matchdayPredictions(ctx, md.ID)
		if err != nil {
			return nil, err
		}

		perUser := make(map[string]int)
		for _, pred := range preds {
			if pred.Points == nil {
				continue
			}
			prof := profileOrDefault(profiles, pred.UserID)
			if !prof.PlaysSeason() {
				continue
			}
			perUser[pred.UserID] += *pred.Points
			if _, ok := series[pred.UserID]; !ok {
				series[pred.UserID] = &UserSeries{UserID: pred.UserID, DisplayName: prof.DisplayName}
			}
		}

		for userID, entry := range series {
			points := perUser[userID]
			running[userID] += points
			entry.Points = append(entry.Points, SeriesPoint{
				MatchdayID:   md.ID,
				MatchdayName: md.Name,
				Points:       points,
				Cumulative:   running[userID],
			})
		}
	}

	out := make([]UserSeries, 0, len(series))
	for _, entry := range series {
		out = append(out, *entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

func (s *LeaderboardService) matchdayPredictions(ctx context.Context, matchdayID int64) ([]prediction.Prediction, error) {
	matches, err := s.matchRepo.ListByMatchday(ctx, matchdayID)
	if err != nil {
		return nil, fmt.Errorf("list matches for matchday id=%d: %w", matchdayID, err)
	}
	if len(matches) == 0 {
		return nil, nil
	}

	ids := make([]int64, 0, len(matches))
	for _, item := range matches {
		ids = append(ids, item.ID)
	}

	preds, err := s.predictionRepo.ListByMatchIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list predictions for matchday id=%d: %w", matchdayID, err)
	}
	return preds, nil
}

func (s *LeaderboardService) profilesByUser(ctx context.Context) (map[string]profile.Profile, error) {
	list, err := s.profileRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles for leaderboard: %w", err)
	}

	out := make(map[string]profile.Profile, len(list))
	for _, item := range list {
		out[item.UserID] = item
	}
	return out, nil
}

// profileOrDefault covers predictions from users without a stored profile;
// they count in every scope under their raw user id.
func profileOrDefault(profiles map[string]profile.Profile, userID string) profile.Profile {
	if prof, ok := profiles[userID]; ok {
		return prof
	}
	return profile.Profile{
		UserID:            userID,
		DisplayName:       userID,
		Role:              profile.RoleParticipant,
		ParticipationMode: profile.ParticipationBoth,
	}
}

func inScope(prof profile.Profile, scope LeaderboardScope) bool {
	if scope == ScopeMatchday {
		return prof.PlaysMatchday()
	}
	return prof.PlaysSeason()
}

func aggregate(predictions []prediction.Prediction, profiles map[string]profile.Profile, scope LeaderboardScope) []LeaderboardEntry {
	byUser := make(map[string]*LeaderboardEntry)
	for _, pred := range predictions {
		prof := profileOrDefault(profiles, pred.UserID)
		if !inScope(prof, scope) {
			continue
		}

		entry, ok := byUser[pred.UserID]
		if !ok {
			entry = &LeaderboardEntry{
				UserID:            prof.UserID,
				DisplayName:       prof.DisplayName,
				ParticipationMode: prof.ParticipationMode,
			}
			byUser[pred.UserID] = entry
		}

		entry.TotalPredictions++
		if pred.Points == nil {
			continue
		}
		entry.TotalPoints += *pred.Points
		if *pred.Points == pointsExact {
			entry.ExactResults++
		}
	}

	out := make([]LeaderboardEntry, 0, len(byUser))
	for _, entry := range byUser {
		out = append(out, *entry)
	}
	return out
}

// rankEntries orders rows by points, then exact results, then user id so ties
// never reorder between runs. Users tied on both counters share a rank and the
// next distinct row resumes at its positional number.
func rankEntries(entries []LeaderboardEntry) []LeaderboardEntry {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalPoints != entries[j].TotalPoints {
			return entries[i].TotalPoints > entries[j].TotalPoints
		}
		if entries[i].ExactResults != entries[j].ExactResults {
			return entries[i].ExactResults > entries[j].ExactResults
		}
		return entries[i].UserID < entries[j].UserID
	})

	for i := range entries {
		if i > 0 &&
			entries[i].TotalPoints == entries[i-1].TotalPoints &&
			entries[i].ExactResults == entries[i-1].ExactResults {
			entries[i].Rank = entries[i-1].Rank
			continue
		}
		entries[i].Rank = i + 1
	}
	return entries
}
