package team

import "testing"

func fixtureLookup() Lookup {
	teams := []Team{
		{ID: 1, Name: "América", ShortName: "AME"},
		{ID: 4, Name: "Cruz Azul", ShortName: "CAZ"},
		{ID: 5, Name: "Chivas", ShortName: "GDL"},
		{ID: 16, Name: "Tigres UANL", ShortName: "TIG"},
		{ID: 17, Name: "Tijuana", ShortName: "TIJ"},
	}
	aliases := []Alias{
		{TeamID: 1, Alias: "Club América"},
		{TeamID: 1, Alias: "Aguilas"},
		{TeamID: 5, Alias: "Guadalajara"},
		{TeamID: 16, Alias: "UANL"},
	}
	return BuildLookup(teams, aliases)
}

func TestLookup_Resolve_ExactAlias(t *testing.T) {
	t.Parallel()

	lookup := fixtureLookup()

	teamID, ok := lookup.Resolve("Club América")
	if !ok || teamID != 1 {
		t.Fatalf("resolve accented alias: got=(%d,%v) want=(1,true)", teamID, ok)
	}

	// Same alias without diacritics resolves to the same team.
	teamID, ok = lookup.Resolve("club america")
	if !ok || teamID != 1 {
		t.Fatalf("resolve unaccented alias: got=(%d,%v) want=(1,true)", teamID, ok)
	}
}

func TestLookup_Resolve_ContainmentBothDirections(t *testing.T) {
	t.Parallel()

	lookup := fixtureLookup()

	// Feed name contains the canonical name.
	teamID, ok := lookup.Resolve("Cruz Azul Hidalgo")
	if !ok || teamID != 4 {
		t.Fatalf("resolve feed superset: got=(%d,%v) want=(4,true)", teamID, ok)
	}

	// Canonical name contains the feed name.
	teamID, ok = lookup.Resolve("Tigres")
	if !ok || teamID != 16 {
		t.Fatalf("resolve feed subset: got=(%d,%v) want=(16,true)", teamID, ok)
	}
}

func TestLookup_Resolve_Unresolved(t *testing.T) {
	t.Parallel()

	lookup := fixtureLookup()

	if teamID, ok := lookup.Resolve("Real Madrid"); ok {
		t.Fatalf("expected unknown name to stay unresolved, got=%d", teamID)
	}
	if _, ok := lookup.Resolve(""); ok {
		t.Fatalf("expected empty name to stay unresolved")
	}
}

func TestLookup_Resolve_AmbiguousContainmentIsUnresolved(t *testing.T) {
	t.Parallel()

	lookup := BuildLookup([]Team{
		{ID: 16, Name: "Tigres UANL", ShortName: "TIG"},
		{ID: 17, Name: "Tijuana", ShortName: "TIJ"},
	}, nil)

	// "ti" is contained in both normalized names; guessing is worse than
	// leaving the side unresolved.
	if teamID, ok := lookup.Resolve("TI"); ok {
		t.Fatalf("expected ambiguous containment to stay unresolved, got=%d", teamID)
	}
}

func TestNormalizeName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  string
	}{
		{"  Club  América ", "club-america"},
		{"Atlético de San Luis", "atletico-de-san-luis"},
		{"FC Juárez", "fc-juarez"},
		{"---", ""},
	}
	for _, tc := range cases {
		if got := NormalizeName(tc.input); got != tc.want {
			t.Fatalf("normalize %q: got=%q want=%q", tc.input, got, tc.want)
		}
	}
}
