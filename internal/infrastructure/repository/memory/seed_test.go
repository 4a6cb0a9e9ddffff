package memory

import (
	"context"
	"testing"

	"github.com/riskibarqy/match-recap/internal/domain/match"
)

func TestSeedIsConsistent(t *testing.T) {
	t.Parallel()

	teams := make(map[string]struct{})
	for _, item := range SeedTeams() {
		if err := item.Validate(); err != nil {
			t.Fatalf("invalid seed team: %v", err)
		}
		teams[item.ID] = struct{}{}
	}
	players := make(map[string]struct{})
	for _, item := range SeedPlayers() {
		if err := item.Validate(); err != nil {
			t.Fatalf("invalid seed player: %v", err)
		}
		players[item.ID] = struct{}{}
	}

	for _, m := range SeedMatches() {
		if err := m.Validate(); err != nil {
			t.Fatalf("invalid seed match: %v", err)
		}
		if _, ok := teams[m.HomeTeamID]; !ok {
			t.Fatalf("match %s references unknown home team %s", m.ID, m.HomeTeamID)
		}
		if _, ok := teams[m.AwayTeamID]; !ok {
			t.Fatalf("match %s references unknown away team %s", m.ID, m.AwayTeamID)
		}
	}

	for _, row := range SeedPlayerMatchStats() {
		if _, ok := players[row.PlayerID]; !ok {
			t.Fatalf("stat row references unknown player %s", row.PlayerID)
		}
		if _, ok := teams[row.TeamID]; !ok {
			t.Fatalf("stat row references unknown team %s", row.TeamID)
		}
	}
}

func TestMatchRepository_SeedRoundAndStatistics(t *testing.T) {
	t.Parallel()

	repo := NewMatchRepository(SeedMatches(), SeedMatchStatistics())
	ctx := context.Background()

	round, err := repo.ListBySeasonAndRound(ctx, SeedSeason, 3)
	if err != nil {
		t.Fatalf("ListBySeasonAndRound error: %v", err)
	}
	if len(round) != 2 {
		t.Fatalf("expected 2 matches in round 3, got %d", len(round))
	}
	if !round[0].KickoffAt.Before(round[1].KickoffAt) {
		t.Fatalf("expected kickoff ordering, got %+v", round)
	}

	ids := []string{round[0].ID, round[1].ID}
	stats, err := repo.ListStatisticsByMatchIDs(ctx, ids)
	if err != nil {
		t.Fatalf("ListStatisticsByMatchIDs error: %v", err)
	}
	if _, ok := stats["epl-2425-r3-che-liv"]; ok {
		t.Fatalf("expected no statistics row for epl-2425-r3-che-liv")
	}
	if got := stats["epl-2425-r3-mci-ars"]; got.Home.Shots != 13 {
		t.Fatalf("unexpected statistics row: %+v", got)
	}

	_, found, err := repo.GetByID(ctx, "missing")
	if err != nil || found {
		t.Fatalf("expected missing match, found=%v err=%v", found, err)
	}
}

func TestMatchRepository_OrdersByKickoffThenID(t *testing.T) {
	t.Parallel()

	seed := SeedMatches()
	repo := NewMatchRepository([]match.Match{seed[3], seed[0], seed[2], seed[1]}, nil)

	got, err := repo.ListBySeason(context.Background(), SeedSeason)
	if err != nil {
		t.Fatalf("ListBySeason error: %v", err)
	}
	for i := 1; i < len(got); i++ {
		if got[i].KickoffAt.Before(got[i-1].KickoffAt) {
			t.Fatalf("matches out of order at %d: %+v", i, got)
		}
	}
}

func TestTeamRepository_ListByIDsSkipsUnknownAndDuplicates(t *testing.T) {
	t.Parallel()

	repo := NewTeamRepository(SeedTeams())
	got, err := repo.ListByIDs(context.Background(), []string{"eng-liv", "unknown", "eng-ars", "eng-liv"})
	if err != nil {
		t.Fatalf("ListByIDs error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "eng-ars" || got[1].ID != "eng-liv" {
		t.Fatalf("unexpected teams: %+v", got)
	}
}
