package match

import "time"

// Match is one fixture inside a matchday. Finished is terminal: once set it is
// never cleared, and a finished match always carries both scores.
type Match struct {
	ID         int64
	MatchdayID int64
	HomeTeamID int64
	AwayTeamID int64
	KickoffAt  time.Time
	HomeScore  *int
	AwayScore  *int
	Finished   bool
	UpdatedAt  time.Time
}

// IsActive reports whether the match is a reconciliation target: kickoff has
// passed and the result is not final yet.
func (m Match) IsActive(now time.Time) bool {
	return !m.Finished && !m.KickoffAt.IsZero() && !now.Before(m.KickoffAt)
}

// HasResult reports whether both scores are known.
func (m Match) HasResult() bool {
	return m.HomeScore != nil && m.AwayScore != nil
}
