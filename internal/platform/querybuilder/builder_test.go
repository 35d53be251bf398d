package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "name").
		From("teams").
		Where(Eq("county_id", int64(3)), Eq("is_deleted", false)).
		OrderBy("id").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, name FROM teams WHERE county_id = $1 AND is_deleted = $2 ORDER BY id LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != int64(3) || args[1] != false {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilderNotEq(t *testing.T) {
	query, args, err := Select("id").
		From("matches").
		Where(NotEq("status", "FT"), IsNull("competition_id")).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id FROM matches WHERE status <> $1 AND competition_id IS NULL"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "FT" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilderReturning(t *testing.T) {
	query, args, err := InsertInto("counties").
		Columns("name").
		Values("Nakuru").
		Returning("id", "created_at").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO counties (name) VALUES ($1) RETURNING id, created_at"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "Nakuru" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilderConflictSuffix(t *testing.T) {
	query, args, err := InsertInto("standings").
		Columns("competition_id", "team_id", "points").
		Values(int64(1), int64(2), 3).
		Suffix("ON CONFLICT (competition_id, team_id) DO UPDATE SET points = EXCLUDED.points").
		Returning("id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO standings (competition_id, team_id, points) VALUES ($1, $2, $3) " +
		"ON CONFLICT (competition_id, team_id) DO UPDATE SET points = EXCLUDED.points RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("players").
		Set("position", "MF").
		SetExpr("updated_at", "NOW()").
		Where(Eq("id", int64(7))).
		Returning("updated_at").
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE players SET position = $1, updated_at = NOW() WHERE id = $2 RETURNING updated_at"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "MF" || args[1] != int64(7) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("team_squads").
		Where(Eq("team_id", int64(4)), Eq("player_id", int64(9))).
		ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}

	wantQuery := "DELETE FROM team_squads WHERE team_id = $1 AND player_id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilderRequiresWhere(t *testing.T) {
	if _, _, err := DeleteFrom("teams").ToSQL(); err == nil {
		t.Fatal("expected error for delete without conditions")
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		Name     string `db:"name"`
		Season   string `db:"season"`
		Internal string `db:"-"`
		skipped  string
	}
	_ = row{}.skipped

	query, args, err := InsertModel("competitions", row{Name: "County Cup", Season: "2026"}, "id")
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO competitions (name, season) VALUES ($1, $2) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "County Cup" || args[1] != "2026" {
		t.Fatalf("unexpected args: %+v", args)
	}
}
