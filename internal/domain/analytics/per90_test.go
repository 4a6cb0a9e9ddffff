package analytics

import (
	"errors"
	"testing"

	"github.com/riskibarqy/match-recap/internal/domain/playerstats"
)

func TestDerivePlayerSeasonRates_Per90Formula(t *testing.T) {
	t.Parallel()

	rows := []playerstats.MatchStat{
		{PlayerID: "p1", TeamID: "ars", MatchID: "m1", Season: testSeason, Minutes: 90, Goals: 1, Assists: 0, Shots: 4, ShotsOnTarget: 2, XG: 0.8, XA: 0.1},
		{PlayerID: "p1", TeamID: "ars", MatchID: "m2", Season: testSeason, Minutes: 90, Goals: 0, Assists: 1, Shots: 2, ShotsOnTarget: 1, XG: 0.3, XA: 0.4},
		{PlayerID: "p1", TeamID: "ars", MatchID: "m3", Season: testSeason, Minutes: 45, Goals: 1, Assists: 0, Shots: 1, ShotsOnTarget: 1, XG: 0.5, XA: 0},
		{PlayerID: "p1", TeamID: "ars", MatchID: "m4", Season: testSeason, Minutes: 90, Goals: 0, Assists: 0, Shots: 3, ShotsOnTarget: 0, XG: 0.2, XA: 0.2},
		// other season must not leak in
		{PlayerID: "p1", TeamID: "ars", MatchID: "old", Season: "2023-24", Minutes: 900, Goals: 9},
	}

	got, err := DerivePlayerSeasonRates(testSeason, rows, playersByID("p1"), teamsByID("ars", "che", "liv"), DefaultPlayerMinMinutes)
	if err != nil {
		t.Fatalf("DerivePlayerSeasonRates error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 row, got %d", len(got))
	}

	row := got[0]
	if row.Minutes != 315 || row.Goals != 2 || row.Assists != 1 || row.Shots != 10 || row.ShotsOnTarget != 4 || row.Appearances != 4 {
		t.Fatalf("unexpected totals: %+v", row)
	}
	assertFloat(t, "goals per 90", row.GoalsPer90, 2.0*90/315)
	assertFloat(t, "assists per 90", row.AssistsPer90, 1.0*90/315)
	assertFloat(t, "shots per 90", row.ShotsPer90, 10.0*90/315)
	assertFloat(t, "sot per 90", row.ShotsOnTargetPer90, 4.0*90/315)
	assertFloat(t, "xg per 90", row.XGPer90, row.XG*90/315)
	assertFloat(t, "xa per 90", row.XAPer90, row.XA*90/315)
	if row.PlayerName != "Player p1" {
		t.Fatalf("unexpected player name %q", row.PlayerName)
	}
}

func TestDerivePlayerSeasonRates_MinutesFloorAfterAggregation(t *testing.T) {
	t.Parallel()

	rows := []playerstats.MatchStat{
		// 299 in total: excluded
		{PlayerID: "short", TeamID: "ars", MatchID: "m1", Season: testSeason, Minutes: 200, Goals: 3},
		{PlayerID: "short", TeamID: "ars", MatchID: "m2", Season: testSeason, Minutes: 99, Goals: 2},
		// 300 in total from small rows: included even though no row reaches the floor alone
		{PlayerID: "exact", TeamID: "che", MatchID: "m1", Season: testSeason, Minutes: 100},
		{PlayerID: "exact", TeamID: "che", MatchID: "m2", Season: testSeason, Minutes: 100},
		{PlayerID: "exact", TeamID: "che", MatchID: "m3", Season: testSeason, Minutes: 100, Goals: 1},
	}

	got, err := DerivePlayerSeasonRates(testSeason, rows, playersByID("short", "exact"), teamsByID("ars", "che", "liv"), DefaultPlayerMinMinutes)
	if err != nil {
		t.Fatalf("DerivePlayerSeasonRates error: %v", err)
	}
	if len(got) != 1 || got[0].PlayerID != "exact" {
		t.Fatalf("expected only player exact, got %+v", got)
	}
	assertFloat(t, "goals per 90", got[0].GoalsPer90, 0.3)
}

func TestDerivePlayerSeasonRates_ZeroMinutesYieldsZeroRates(t *testing.T) {
	t.Parallel()

	rows := []playerstats.MatchStat{
		{PlayerID: "bench", TeamID: "ars", MatchID: "m1", Season: testSeason, Minutes: 0, Goals: 0, XG: 0.2},
	}

	got, err := DerivePlayerSeasonRates(testSeason, rows, playersByID("bench"), teamsByID("ars", "che", "liv"), 0)
	if err != nil {
		t.Fatalf("DerivePlayerSeasonRates error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 row with floor 0, got %d", len(got))
	}
	if got[0].XGPer90 != 0 || got[0].GoalsPer90 != 0 {
		t.Fatalf("expected zero rates for zero minutes, got %+v", got[0])
	}
}

func TestDerivePlayerSeasonRates_SplitsByTeam(t *testing.T) {
	t.Parallel()

	rows := []playerstats.MatchStat{
		{PlayerID: "p1", TeamID: "ars", MatchID: "m1", Season: testSeason, Minutes: 300},
		{PlayerID: "p1", TeamID: "che", MatchID: "m9", Season: testSeason, Minutes: 310},
	}

	got, err := DerivePlayerSeasonRates(testSeason, rows, playersByID("p1"), teamsByID("ars", "che", "liv"), DefaultPlayerMinMinutes)
	if err != nil {
		t.Fatalf("DerivePlayerSeasonRates error: %v", err)
	}
	if len(got) != 2 || got[0].TeamID != "ars" || got[1].TeamID != "che" {
		t.Fatalf("expected one row per team, got %+v", got)
	}
}

func TestDerivePlayerSeasonRates_UnresolvableTeam(t *testing.T) {
	t.Parallel()

	rows := []playerstats.MatchStat{{PlayerID: "p1", TeamID: "ghost", MatchID: "m1", Season: testSeason, Minutes: 400, Goals: 2}}

	_, err := DerivePlayerSeasonRates(testSeason, rows, playersByID("p1"), teamsByID("ars"), DefaultPlayerMinMinutes)
	if !errors.Is(err, ErrUnresolvableReference) {
		t.Fatalf("expected ErrUnresolvableReference, got %v", err)
	}
}

func TestDerivePlayerSeasonRates_UnresolvablePlayer(t *testing.T) {
	t.Parallel()

	rows := []playerstats.MatchStat{{PlayerID: "ghost", TeamID: "ars", MatchID: "m1", Season: testSeason, Minutes: 90}}

	_, err := DerivePlayerSeasonRates(testSeason, rows, playersByID("p1"), teamsByID("ars", "che", "liv"), DefaultPlayerMinMinutes)
	if !errors.Is(err, ErrUnresolvableReference) {
		t.Fatalf("expected ErrUnresolvableReference, got %v", err)
	}
}
