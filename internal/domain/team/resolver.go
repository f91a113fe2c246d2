package team

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Lookup resolves free-text feed team names to internal team ids. It is built
// once per reconciliation cycle and never mutated afterwards, so a cycle can
// share it freely.
type Lookup struct {
	byAlias map[string]int64
	byName  map[string]int64
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// BuildLookup constructs a cycle-scoped lookup table from the team list and
// the alias table. Later alias rows win over earlier ones for the same
// normalized spelling.
func BuildLookup(teams []Team, aliases []Alias) Lookup {
	out := Lookup{
		byAlias: make(map[string]int64, len(aliases)),
		byName:  make(map[string]int64, len(teams)*2),
	}

	for _, item := range teams {
		if key := NormalizeName(item.Name); key != "" {
			out.byName[key] = item.ID
		}
		if key := NormalizeName(item.ShortName); key != "" {
			out.byName[key] = item.ID
		}
	}
	for _, item := range aliases {
		if key := NormalizeName(item.Alias); key != "" {
			out.byAlias[key] = item.TeamID
		}
	}

	return out
}

// Resolve maps a feed team name to exactly one team id. Resolution order is
// exact alias match, exact name match, then bidirectional substring
// containment between normalized names. Containment that matches more than
// one distinct team is unresolved rather than a guess.
func (l Lookup) Resolve(name string) (int64, bool) {
	key := NormalizeName(name)
	if key == "" {
		return 0, false
	}

	if teamID, ok := l.byAlias[key]; ok {
		return teamID, true
	}
	if teamID, ok := l.byName[key]; ok {
		return teamID, true
	}

	seen := make(map[int64]struct{}, 2)
	matchID := int64(0)
	for candidate, teamID := range l.byName {
		if !strings.Contains(key, candidate) && !strings.Contains(candidate, key) {
			continue
		}
		if _, exists := seen[teamID]; exists {
			continue
		}
		seen[teamID] = struct{}{}
		matchID = teamID
	}
	if len(seen) != 1 {
		return 0, false
	}
	return matchID, true
}

// NormalizeName strips diacritics, lowercases, and collapses every
// non-alphanumeric run to a single dash.
func NormalizeName(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if stripped, _, err := transform.String(stripMarks, value); err == nil {
		value = stripped
	}
	value = strings.ToLower(value)

	var builder strings.Builder
	lastDash := false
	for _, r := range value {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			builder.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash {
			builder.WriteByte('-')
			lastDash = true
		}
	}

	return strings.Trim(builder.String(), "-")
}
