package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	t.Parallel()

	query, args, err := Select("id", "name").From("teams").
		Where(
			Eq("short_name", "TIG"),
			Expr("kickoff_at <= ?", "2026-08-14"),
		).
		OrderBy("id").
		Limit(5).
		ToSQL()
	if err != nil {
		t.Fatalf("build select: %v", err)
	}

	want := "SELECT id, name FROM teams WHERE short_name = $1 AND kickoff_at <= $2 ORDER BY id LIMIT 5"
	if query != want {
		t.Fatalf("unexpected query:\n got=%s\nwant=%s", query, want)
	}
	if len(args) != 2 || args[0] != "TIG" || args[1] != "2026-08-14" {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestSelectBuilder_EmptyInMatchesNothing(t *testing.T) {
	t.Parallel()

	query, args, err := Select("*").From("predictions").
		Where(In("match_id", nil)).
		ToSQL()
	if err != nil {
		t.Fatalf("build select: %v", err)
	}
	if query != "SELECT * FROM predictions WHERE 1=0" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 0 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestInsertBuilder_WithSuffix(t *testing.T) {
	t.Parallel()

	query, args, err := InsertInto("predictions").
		Columns("user_id", "match_id", "home_goals", "away_goals").
		Values("u1", int64(10), 2, 0).
		Suffix("ON CONFLICT (user_id, match_id) DO UPDATE SET home_goals = EXCLUDED.home_goals, away_goals = EXCLUDED.away_goals").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert: %v", err)
	}

	want := "INSERT INTO predictions (user_id, match_id, home_goals, away_goals) VALUES ($1, $2, $3, $4) ON CONFLICT (user_id, match_id) DO UPDATE SET home_goals = EXCLUDED.home_goals, away_goals = EXCLUDED.away_goals"
	if query != want {
		t.Fatalf("unexpected query:\n got=%s\nwant=%s", query, want)
	}
	if len(args) != 4 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	t.Parallel()

	query, args, err := Update("matches").
		Set("home_score", 1).
		Set("away_score", 0).
		Where(Eq("id", int64(10))).
		ToSQL()
	if err != nil {
		t.Fatalf("build update: %v", err)
	}

	want := "UPDATE matches SET home_score = $1, away_score = $2 WHERE id = $3"
	if query != want {
		t.Fatalf("unexpected query:\n got=%s\nwant=%s", query, want)
	}
	if len(args) != 3 {
		t.Fatalf("unexpected args: %v", args)
	}
}
