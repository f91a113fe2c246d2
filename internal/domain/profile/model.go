package profile

const (
	RoleAdmin       = "admin"
	RoleParticipant = "participant"
)

const (
	ParticipationMatchday = "matchday"
	ParticipationSeason   = "season"
	ParticipationBoth     = "both"
)

// Profile is read-only user reference data owned by the account system.
type Profile struct {
	UserID            string
	DisplayName       string
	Role              string
	ParticipationMode string
}

// IsAdmin reports whether the profile may trigger manual syncs.
func (p Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// PlaysMatchday reports whether the user competes in per-matchday pools.
func (p Profile) PlaysMatchday() bool {
	return p.ParticipationMode == ParticipationMatchday || p.ParticipationMode == ParticipationBoth
}

// PlaysSeason reports whether the user competes in the season-wide pool.
func (p Profile) PlaysSeason() bool {
	return p.ParticipationMode == ParticipationSeason || p.ParticipationMode == ParticipationBoth
}
