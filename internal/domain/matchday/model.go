package matchday

import "time"

// Matchday is a named round of matches that predictions and leaderboards are
// scoped to. Open controls whether predictions are accepted; it is independent
// of whether the round's matches have finished.
type Matchday struct {
	ID          int64
	Name        string
	Open        bool
	AutoCloseAt *time.Time
	Current     bool
}

// ShouldAutoClose reports whether an open matchday has passed its deadline.
func (m Matchday) ShouldAutoClose(now time.Time) bool {
	return m.Open && m.AutoCloseAt != nil && !now.Before(*m.AutoCloseAt)
}
