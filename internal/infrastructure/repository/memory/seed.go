package memory

import (
	"time"

	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/match"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/matchday"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/prediction"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/profile"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/team"
)

// SeedTeams matches the id space of team.DefaultAliases so the resolver works
// out of the box in demo mode.
func SeedTeams() []team.Team {
	return []team.Team{
		{ID: 1, Name: "América", ShortName: "AME"},
		{ID: 2, Name: "Atlas", ShortName: "ATS"},
		{ID: 3, Name: "Atlético San Luis", ShortName: "ASL"},
		{ID: 4, Name: "Cruz Azul", ShortName: "CAZ"},
		{ID: 5, Name: "Guadalajara", ShortName: "GDL"},
		{ID: 6, Name: "Juárez", ShortName: "JUA"},
		{ID: 7, Name: "León", ShortName: "LEO"},
		{ID: 8, Name: "Mazatlán", ShortName: "MAZ"},
		{ID: 9, Name: "Monterrey", ShortName: "MTY"},
		{ID: 10, Name: "Necaxa", ShortName: "NEC"},
		{ID: 11, Name: "Pachuca", ShortName: "PAC"},
		{ID: 12, Name: "Puebla", ShortName: "PUE"},
		{ID: 13, Name: "Pumas UNAM", ShortName: "PUM"},
		{ID: 14, Name: "Querétaro", ShortName: "QRO"},
		{ID: 15, Name: "Santos Laguna", ShortName: "SAN"},
		{ID: 16, Name: "Tigres UANL", ShortName: "TIG"},
		{ID: 17, Name: "Tijuana", ShortName: "TIJ"},
		{ID: 18, Name: "Toluca", ShortName: "TOL"},
	}
}

func SeedMatchdays(now time.Time) []matchday.Matchday {
	closeAt := now.Add(48 * time.Hour)
	return []matchday.Matchday{
		{ID: 1, Name: "Jornada 1", Open: false},
		{ID: 2, Name: "Jornada 2", Open: true, AutoCloseAt: &closeAt, Current: true},
	}
}

func SeedMatches(now time.Time) []match.Match {
	two, zero, one := 2, 0, 1
	return []match.Match{
		{ID: 101, MatchdayID: 1, HomeTeamID: 1, AwayTeamID: 4, KickoffAt: now.Add(-7 * 24 * time.Hour), HomeScore: &two, AwayScore: &zero, Finished: true},
		{ID: 102, MatchdayID: 1, HomeTeamID: 16, AwayTeamID: 9, KickoffAt: now.Add(-7 * 24 * time.Hour), HomeScore: &one, AwayScore: &one, Finished: true},
		{ID: 201, MatchdayID: 2, HomeTeamID: 5, AwayTeamID: 13, KickoffAt: now.Add(-time.Hour)},
		{ID: 202, MatchdayID: 2, HomeTeamID: 18, AwayTeamID: 7, KickoffAt: now.Add(50 * time.Hour)},
	}
}

func SeedProfiles() []profile.Profile {
	return []profile.Profile{
		{UserID: "admin", DisplayName: "Administrador", Role: profile.RoleAdmin, ParticipationMode: profile.ParticipationBoth},
		{UserID: "carto", DisplayName: "Carto", Role: profile.RoleParticipant, ParticipationMode: profile.ParticipationBoth},
		{UserID: "imagen", DisplayName: "Imagen", Role: profile.RoleParticipant, ParticipationMode: profile.ParticipationMatchday},
		{UserID: "tercero", DisplayName: "Tercero", Role: profile.RoleParticipant, ParticipationMode: profile.ParticipationSeason},
	}
}

func SeedPredictions() []prediction.Prediction {
	two := 2
	one := 1
	return []prediction.Prediction{
		{UserID: "carto", MatchID: 101, HomeGoals: 2, AwayGoals: 0, Points: &two},
		{UserID: "carto", MatchID: 102, HomeGoals: 0, AwayGoals: 0, Points: &one},
		{UserID: "imagen", MatchID: 101, HomeGoals: 1, AwayGoals: 0, Points: &one},
		{UserID: "tercero", MatchID: 102, HomeGoals: 1, AwayGoals: 1, Points: &two},
		{UserID: "carto", MatchID: 201, HomeGoals: 1, AwayGoals: 1},
		{UserID: "imagen", MatchID: 201, HomeGoals: 2, AwayGoals: 1},
	}
}
