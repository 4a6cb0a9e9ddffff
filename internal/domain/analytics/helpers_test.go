package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/riskibarqy/match-recap/internal/domain/match"
	"github.com/riskibarqy/match-recap/internal/domain/player"
	"github.com/riskibarqy/match-recap/internal/domain/team"
)

const testSeason = "2024-25"

var seasonStart = time.Date(2024, 9, 21, 12, 30, 0, 0, time.UTC)

func intPtr(v int) *int { return &v }

func finishedMatch(id, homeID, awayID string, day, home, away int) match.Match {
	return match.Match{
		ID:         id,
		Season:     testSeason,
		Round:      day + 1,
		KickoffAt:  seasonStart.AddDate(0, 0, 7*day),
		HomeTeamID: homeID,
		AwayTeamID: awayID,
		HomeScore:  intPtr(home),
		AwayScore:  intPtr(away),
		Finished:   true,
	}
}

func scheduledMatch(id, homeID, awayID string, day int) match.Match {
	return match.Match{
		ID:         id,
		Season:     testSeason,
		Round:      day + 1,
		KickoffAt:  seasonStart.AddDate(0, 0, 7*day),
		HomeTeamID: homeID,
		AwayTeamID: awayID,
	}
}

func teamsByID(ids ...string) map[string]team.Team {
	out := make(map[string]team.Team, len(ids))
	for _, id := range ids {
		out[id] = team.Team{ID: id, Name: "Team " + id}
	}
	return out
}

func playersByID(ids ...string) map[string]player.Player {
	out := make(map[string]player.Player, len(ids))
	for _, id := range ids {
		out[id] = player.Player{ID: id, Name: "Player " + id}
	}
	return out
}

func assertFloat(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("unexpected %s: got=%v want=%v", name, got, want)
	}
}
