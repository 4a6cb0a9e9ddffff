package querybuilder

import (
	"testing"

	"github.com/lib/pq"
)

func TestSelectBuilder(t *testing.T) {
	t.Parallel()

	query, args, err := Select("public_id", "name").
		From("teams").
		Where(Eq("public_id", "eng-ars"), IsNull("deleted_at")).
		OrderBy("public_id").
		Limit(1).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT public_id, name FROM teams WHERE public_id = $1 AND deleted_at IS NULL ORDER BY public_id LIMIT 1"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "eng-ars" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilderJoinAndAny(t *testing.T) {
	t.Parallel()

	query, args, err := Select("pms.player_public_id", "m.round").
		From("player_match_stats pms").
		Join("matches m", "m.public_id = pms.match_public_id").
		Where(Eq("m.season", "2024-25"), Any("pms.match_public_id", pq.Array([]string{"a", "b"}))).
		OrderBy("m.kickoff_at", "pms.player_public_id").
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT pms.player_public_id, m.round FROM player_match_stats pms" +
		" JOIN matches m ON m.public_id = pms.match_public_id" +
		" WHERE m.season = $1 AND pms.match_public_id = ANY($2)" +
		" ORDER BY m.kickoff_at, pms.player_public_id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "2024-25" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilderValidation(t *testing.T) {
	t.Parallel()

	if _, _, err := Select().From("teams").ToSQL(); err == nil {
		t.Fatalf("expected error for missing columns")
	}
	if _, _, err := Select("*").ToSQL(); err == nil {
		t.Fatalf("expected error for missing table")
	}
	if _, _, err := Select("*").From("matches").Join("teams", "").ToSQL(); err == nil {
		t.Fatalf("expected error for join without condition")
	}
}
