package team

// Team is static reference data for one club in the competition.
type Team struct {
	ID        int64
	Name      string
	ShortName string
}

// Alias maps one feed spelling to an internal team. The alias table is
// versioned configuration data: adding a spelling is a data change.
type Alias struct {
	TeamID int64
	Alias  string
}
