package prediction

import "time"

// Prediction is one user's forecast for one match. Exactly one row exists per
// (user, match); Points stays nil until the match finishes and scoring runs.
type Prediction struct {
	UserID    string
	MatchID   int64
	HomeGoals int
	AwayGoals int
	Points    *int
	CreatedAt time.Time
	UpdatedAt time.Time
}
