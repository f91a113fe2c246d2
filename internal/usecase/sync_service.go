package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/match"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/matchday"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/profile"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/team"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/platform/logging"
)

// SyncService reconciles external feed events into internal match rows and
// triggers scoring for every matchday it touched. One instance is shared by
// the scheduler loop and the admin trigger; every write it performs is an
// idempotent per-row upsert, so overlapping runs converge instead of
// corrupting state.
type SyncService struct {
	provider     FeedProvider
	teamRepo     team.Repository
	matchdayRepo matchday.Repository
	matchRepo    match.Repository
	profileRepo  profile.Repository
	scoring      *ScoringService
	logger       *logging.Logger
	now          func() time.Time
}

// SyncSummary reports what one reconciliation cycle did. Skipped matches are
// retried on the next cycle; they never block the rest of the run.
type SyncSummary struct {
	MatchesChecked    int
	MatchesUpdated    int
	MatchesSkipped    int
	LiveMatches       int
	MatchdaysRecalced int
	MatchdaysClosed   int
}

// MatchdaySyncResult is the admin-trigger response payload.
type MatchdaySyncResult struct {
	Updated  int    `json:"updated"`
	NotFound bool   `json:"not_found"`
	Message  string `json:"message"`
}

func NewSyncService(
	provider FeedProvider,
	teamRepo team.Repository,
	matchdayRepo matchday.Repository,
	matchRepo match.Repository,
	profileRepo profile.Repository,
	scoring *ScoringService,
	logger *logging.Logger,
) *SyncService {
	if logger == nil {
		logger = logging.Default()
	}

	return &SyncService{
		provider:     provider,
		teamRepo:     teamRepo,
		matchdayRepo: matchdayRepo,
		matchRepo:    matchRepo,
		profileRepo:  profileRepo,
		scoring:      scoring,
		logger:       logger,
		now:          time.Now,
	}
}

// RunCycle executes one full fetch → reconcile → recalculate pass. It fails
// hard only when the store or the whole provider is unreachable; every
// per-match problem is absorbed into the summary.
func (s *SyncService) RunCycle(ctx context.Context) (SyncSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.RunCycle")
	defer span.End()

	if s.provider == nil {
		return SyncSummary{}, fmt.Errorf("%w: feed provider is not configured", ErrDependencyUnavailable)
	}

	now := s.now().UTC()

	lookup, err := s.buildLookup(ctx)
	if err != nil {
		return SyncSummary{}, err
	}

	matchdays, err := s.matchdayRepo.List(ctx)
	if err != nil {
		return SyncSummary{}, fmt.Errorf("list matchdays for sync: %w", err)
	}

	active, err := s.matchRepo.ListActive(ctx, now)
	if err != nil {
		return SyncSummary{}, fmt.Errorf("list active matches for sync: %w", err)
	}

	var summary SyncSummary
	if len(active) > 0 {
		events, err := s.fetchEventsFor(ctx, active)
		if err != nil {
			return SyncSummary{}, fmt.Errorf("fetch feed events: %w", err)
		}

		dirty := make(map[int64]struct{})
		failed := make(map[int64]struct{})
		summary = s.reconcileMatches(ctx, lookup, active, events, dirty, failed)
		summary.MatchdaysRecalced = s.recalculateDirty(ctx, dirty, failed)
	}

	summary.MatchdaysClosed = s.autoCloseMatchdays(ctx, matchdays, now)

	s.logger.InfoContext(ctx, "sync cycle finished",
		"matches_checked", summary.MatchesChecked,
		"matches_updated", summary.MatchesUpdated,
		"matches_skipped", summary.MatchesSkipped,
		"live_matches", summary.LiveMatches,
		"matchdays_recalced", summary.MatchdaysRecalced,
		"matchdays_closed", summary.MatchdaysClosed,
	)

	return summary, nil
}

// SyncMatchday is the admin-triggered variant scoped to one matchday. A
// non-admin actor is rejected before any side effect.
func (s *SyncService) SyncMatchday(ctx context.Context, actorUserID string, matchdayID int64) (MatchdaySyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.SyncMatchday")
	defer span.End()

	actor, found, err := s.profileRepo.GetByUserID(ctx, actorUserID)
	if err != nil {
		return MatchdaySyncResult{}, fmt.Errorf("load actor profile user=%s: %w", actorUserID, err)
	}
	if !found || !actor.IsAdmin() {
		return MatchdaySyncResult{}, fmt.Errorf("%w: manual sync requires administrator role", ErrUnauthorized)
	}

	if _, found, err = s.matchdayRepo.GetByID(ctx, matchdayID); err != nil {
		return MatchdaySyncResult{}, fmt.Errorf("load matchday id=%d: %w", matchdayID, err)
	} else if !found {
		return MatchdaySyncResult{NotFound: true, Message: "matchday not found"}, nil
	}

	now := s.now().UTC()
	matches, err := s.matchRepo.ListByMatchday(ctx, matchdayID)
	if err != nil {
		return MatchdaySyncResult{}, fmt.Errorf("list matches for matchday id=%d: %w", matchdayID, err)
	}

	active := matches[:0:0]
	for _, item := range matches {
		if item.IsActive(now) {
			active = append(active, item)
		}
	}
	if len(active) == 0 {
		return MatchdaySyncResult{Message: "no active matches to sync"}, nil
	}

	lookup, err := s.buildLookup(ctx)
	if err != nil {
		return MatchdaySyncResult{}, err
	}

	from, to := eventWindow(active)
	events, err := s.provider.FetchEvents(ctx, from, to)
	if err != nil {
		return MatchdaySyncResult{}, fmt.Errorf("fetch feed events for matchday id=%d: %w", matchdayID, err)
	}

	dirty := make(map[int64]struct{})
	failed := make(map[int64]struct{})
	summary := s.reconcileMatches(ctx, lookup, active, events, dirty, failed)
	recalced := s.recalculateDirty(ctx, dirty, failed)

	return MatchdaySyncResult{
		Updated: summary.MatchesUpdated,
		Message: fmt.Sprintf(
			"checked %d match(es), updated %d, skipped %d, recalculated %d matchday(s)",
			summary.MatchesChecked, summary.MatchesUpdated, summary.MatchesSkipped, recalced,
		),
	}, nil
}

// buildLookup constructs the cycle-scoped team lookup: built-in aliases first,
// stored aliases appended so deployments can override spellings.
func (s *SyncService) buildLookup(ctx context.Context) (team.Lookup, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return team.Lookup{}, fmt.Errorf("list teams for sync: %w", err)
	}
	stored, err := s.teamRepo.ListAliases(ctx)
	if err != nil {
		return team.Lookup{}, fmt.Errorf("list team aliases for sync: %w", err)
	}

	aliases := append(team.DefaultAliases(), stored...)
	return team.BuildLookup(teams, aliases), nil
}

func (s *SyncService) fetchEventsFor(ctx context.Context, active []match.Match) ([]FeedEvent, error) {
	from, to := eventWindow(active)
	return s.provider.FetchEvents(ctx, from, to)
}

// eventWindow derives the provider date window from the active matches,
// padded a day on each side to absorb timezone skew in the feed.
func eventWindow(active []match.Match) (time.Time, time.Time) {
	from := active[0].KickoffAt
	to := active[0].KickoffAt
	for _, item := range active[1:] {
		if item.KickoffAt.Before(from) {
			from = item.KickoffAt
		}
		if item.KickoffAt.After(to) {
			to = item.KickoffAt
		}
	}
	return from.UTC().AddDate(0, 0, -1), to.UTC().AddDate(0, 0, 1)
}

type pairKey struct {
	home int64
	away int64
}

func (s *SyncService) reconcileMatches(
	ctx context.Context,
	lookup team.Lookup,
	active []match.Match,
	events []FeedEvent,
	dirty map[int64]struct{},
	failed map[int64]struct{},
) SyncSummary {
	byPair := indexEventsByPair(ctx, s.logger, lookup, events)

	summary := SyncSummary{MatchesChecked: len(active)}
	for _, item := range active {
		event, swapped, found := findEvent(byPair, item)
		if !found {
			summary.MatchesSkipped++
			s.logger.DebugContext(ctx, "no resolvable feed event for match",
				"match_id", item.ID,
				"matchday_id", item.MatchdayID,
			)
			continue
		}
		if IsLiveFeedStatus(event.Status) {
			summary.LiveMatches++
		}

		update, ok := buildScoreUpdate(item, event, swapped)
		if !ok {
			summary.MatchesSkipped++
			continue
		}
		if unchanged(item, update) {
			continue
		}

		if err := s.matchRepo.UpdateScore(ctx, update); err != nil {
			summary.MatchesSkipped++
			failed[item.MatchdayID] = struct{}{}
			s.logger.WarnContext(ctx, "match score write failed",
				"match_id", item.ID,
				"matchday_id", item.MatchdayID,
				"error", err,
			)
			continue
		}

		summary.MatchesUpdated++
		dirty[item.MatchdayID] = struct{}{}
	}

	return summary
}

// indexEventsByPair resolves both sides of every event and keys the result by
// the resolved (home, away) team pair. Events whose sides do not resolve are
// dropped here; the affected match shows up as skipped and retries next cycle.
// When the feed repeats a pair, the terminal event wins, then the later one.
func indexEventsByPair(ctx context.Context, logger *logging.Logger, lookup team.Lookup, events []FeedEvent) map[pairKey]FeedEvent {
	out := make(map[pairKey]FeedEvent, len(events))
	for _, event := range events {
		homeID, homeOK := lookup.Resolve(event.HomeName)
		awayID, awayOK := lookup.Resolve(event.AwayName)
		if !homeOK || !awayOK {
			logger.DebugContext(ctx, "feed event side unresolved",
				"home_name", event.HomeName,
				"away_name", event.AwayName,
			)
			continue
		}

		key := pairKey{home: homeID, away: awayID}
		existing, exists := out[key]
		if exists && preferEvent(existing, event) {
			continue
		}
		out[key] = event
	}
	return out
}

// preferEvent reports whether the existing event should be kept over the
// candidate.
func preferEvent(existing, candidate FeedEvent) bool {
	existingFinished := IsFinishedFeedStatus(existing.Status)
	candidateFinished := IsFinishedFeedStatus(candidate.Status)
	if existingFinished != candidateFinished {
		return existingFinished
	}
	return !candidate.EventDate.After(existing.EventDate)
}

// findEvent locates the match's event in either orientation; providers do not
// guarantee home/away order is preserved.
func findEvent(byPair map[pairKey]FeedEvent, item match.Match) (FeedEvent, bool, bool) {
	if event, ok := byPair[pairKey{home: item.HomeTeamID, away: item.AwayTeamID}]; ok {
		return event, false, true
	}
	if event, ok := byPair[pairKey{home: item.AwayTeamID, away: item.HomeTeamID}]; ok {
		return event, true, true
	}
	return FeedEvent{}, false, false
}

// buildScoreUpdate applies the score-fill and finished rules. After kickoff a
// missing side means zero, not unknown; before kickoff (or with both sides
// absent) the match is left untouched.
func buildScoreUpdate(item match.Match, event FeedEvent, swapped bool) (match.ScoreUpdate, bool) {
	if IsNotStartedStatus(event.Status) {
		return match.ScoreUpdate{}, false
	}
	if event.HomeGoals == nil && event.AwayGoals == nil {
		return match.ScoreUpdate{}, false
	}

	home := scoreOrZero(event.HomeGoals)
	away := scoreOrZero(event.AwayGoals)
	if home < 0 || away < 0 {
		return match.ScoreUpdate{}, false
	}
	if swapped {
		home, away = away, home
	}

	return match.ScoreUpdate{
		MatchID:   item.ID,
		HomeScore: home,
		AwayScore: away,
		Finished:  IsFinishedFeedStatus(event.Status),
	}, true
}

func unchanged(item match.Match, update match.ScoreUpdate) bool {
	return item.HasResult() &&
		*item.HomeScore == update.HomeScore &&
		*item.AwayScore == update.AwayScore &&
		item.Finished == update.Finished
}

func scoreOrZero(value *int) int {
	if value == nil {
		return 0
	}
	return *value
}

// recalculateDirty runs scoring once per touched matchday. A matchday with a
// failed row write is held back so scoring never runs against half-written
// state; the next cycle picks it up again.
func (s *SyncService) recalculateDirty(ctx context.Context, dirty, failed map[int64]struct{}) int {
	ids := make([]int64, 0, len(dirty))
	for id := range dirty {
		if _, blocked := failed[id]; blocked {
			s.logger.WarnContext(ctx, "recalculation deferred: matchday had failed writes", "matchday_id", id)
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	recalced := 0
	for _, id := range ids {
		if err := s.scoring.RecalculateMatchday(ctx, id); err != nil {
			s.logger.WarnContext(ctx, "matchday recalculation failed", "matchday_id", id, "error", err)
			continue
		}
		recalced++
	}
	return recalced
}

func (s *SyncService) autoCloseMatchdays(ctx context.Context, matchdays []matchday.Matchday, now time.Time) int {
	closed := 0
	for _, item := range matchdays {
		if !item.ShouldAutoClose(now) {
			continue
		}
		if err := s.matchdayRepo.SetOpen(ctx, item.ID, false); err != nil {
			s.logger.WarnContext(ctx, "matchday auto-close failed", "matchday_id", item.ID, "error", err)
			continue
		}
		closed++
		s.logger.InfoContext(ctx, "matchday closed on deadline", "matchday_id", item.ID, "name", item.Name)
	}
	return closed
}
