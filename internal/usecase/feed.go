package usecase

import (
	"context"
	"strings"
	"time"
)

// FeedProvider retrieves normalized match events from the external sports-data
// API for a date window. Implementations degrade to whatever subset of their
// sources responded; they return an error only on total transport failure or
// an authentication failure.
type FeedProvider interface {
	FetchEvents(ctx context.Context, from, to time.Time) ([]FeedEvent, error)
}

// FeedEvent is one normalized provider event. Scores are pointers because the
// provider omits a side's score more often than it sends zero.
type FeedEvent struct {
	HomeName  string
	AwayName  string
	HomeGoals *int
	AwayGoals *int
	Status    string
	EventDate time.Time
}

// NormalizeFeedStatus uppercases and trims a provider status code. An empty
// status is treated as not started.
func NormalizeFeedStatus(value string) string {
	status := strings.ToUpper(strings.TrimSpace(value))
	if status == "" {
		return "NS"
	}
	return status
}

// IsNotStartedStatus reports whether the event has not kicked off. A missing
// score on a started match means zero; on a not-started match it means
// unknown, so this distinction gates the score-fill rule.
func IsNotStartedStatus(value string) bool {
	switch NormalizeFeedStatus(value) {
	case "NS", "TBD", "PST", "CANC":
		return true
	default:
		return false
	}
}

// IsFinishedFeedStatus reports whether the status belongs to the closed
// vocabulary of terminal results.
func IsFinishedFeedStatus(value string) bool {
	switch NormalizeFeedStatus(value) {
	case "FT", "AET", "PEN", "FINISHED", "FINAL":
		return true
	default:
		return false
	}
}

// IsLiveFeedStatus reports whether the event is in play. The scheduler uses
// this to tighten the poll interval during live windows.
func IsLiveFeedStatus(value string) bool {
	switch NormalizeFeedStatus(value) {
	case "LIVE", "IN_PLAY", "1H", "HT", "2H", "ET", "BT", "P":
		return true
	default:
		return false
	}
}
