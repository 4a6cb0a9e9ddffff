package memory

import (
	"time"

	"github.com/riskibarqy/match-recap/internal/domain/match"
	"github.com/riskibarqy/match-recap/internal/domain/player"
	"github.com/riskibarqy/match-recap/internal/domain/playerstats"
	"github.com/riskibarqy/match-recap/internal/domain/team"
)

const SeedSeason = "2024-25"

var seedSeasonStart = time.Date(2024, 8, 17, 14, 0, 0, 0, time.UTC)

type seedFixture struct {
	id        string
	round     int
	home      string
	away      string
	homeScore int
	awayScore int
	finished  bool
	stats     *match.Statistics
}

type seedSquad struct {
	goalkeeper string
	forward    string
	midfielder string
	substitute string
}

var seedSquads = map[string]seedSquad{
	"eng-ars": {goalkeeper: "ars-gk-raya", forward: "ars-fw-havertz", midfielder: "ars-mf-odegaard", substitute: "ars-mf-nwaneri"},
	"eng-che": {goalkeeper: "che-gk-sanchez", forward: "che-fw-jackson", midfielder: "che-mf-palmer", substitute: "che-mf-george"},
	"eng-liv": {goalkeeper: "liv-gk-alisson", forward: "liv-fw-salah", midfielder: "liv-mf-szoboszlai", substitute: "liv-mf-elliott"},
	"eng-mci": {goalkeeper: "mci-gk-ederson", forward: "mci-fw-haaland", midfielder: "mci-mf-foden", substitute: "mci-mf-nunes"},
}

var seedFixtures = []seedFixture{
	{id: "epl-2425-r1-ars-che", round: 1, home: "eng-ars", away: "eng-che", homeScore: 2, awayScore: 0, finished: true, stats: sideStats(15, 7, 11, 3, 1.9, 1.4, 0.5, 8, 2, 4, 1, 0.6, 0.3, 0.1)},
	{id: "epl-2425-r1-liv-mci", round: 1, home: "eng-liv", away: "eng-mci", homeScore: 1, awayScore: 1, finished: true, stats: sideStats(12, 5, 8, 2, 1.3, 1.1, 0.2, 14, 6, 10, 3, 1.8, 1.5, 0.4)},
	{id: "epl-2425-r2-ars-liv", round: 2, home: "eng-ars", away: "eng-liv", homeScore: 1, awayScore: 3, finished: true, stats: sideStats(11, 4, 7, 1, 0.9, 0.8, 0.3, 16, 9, 12, 4, 2.6, 2.9, 0.7)},
	{id: "epl-2425-r2-mci-che", round: 2, home: "eng-mci", away: "eng-che", homeScore: 2, awayScore: 2, finished: true, stats: sideStats(18, 8, 13, 3, 2.2, 1.9, 0.6, 9, 5, 6, 2, 1.1, 1.6, 0.0)},
	{id: "epl-2425-r3-mci-ars", round: 3, home: "eng-mci", away: "eng-ars", homeScore: 0, awayScore: 1, finished: true, stats: sideStats(13, 3, 9, 1, 1.2, 0.5, 0.2, 7, 3, 5, 1, 0.7, 1.0, 0.4)},
	// statistics feed missing for this match
	{id: "epl-2425-r3-che-liv", round: 3, home: "eng-che", away: "eng-liv", homeScore: 1, awayScore: 2, finished: true},
	{id: "epl-2425-r4-che-ars", round: 4, home: "eng-che", away: "eng-ars", homeScore: 1, awayScore: 1, finished: true, stats: sideStats(10, 4, 6, 1, 1.0, 0.9, 0.4, 12, 5, 9, 2, 1.4, 1.2, 0.6)},
	{id: "epl-2425-r4-mci-liv", round: 4, home: "eng-mci", away: "eng-liv", homeScore: 3, awayScore: 1, finished: true, stats: sideStats(19, 9, 15, 5, 3.1, 2.8, 0.8, 8, 3, 5, 1, 0.8, 1.1, 0.0)},
	{id: "epl-2425-r5-liv-ars", round: 5, home: "eng-liv", away: "eng-ars", homeScore: 2, awayScore: 2, finished: true, stats: sideStats(14, 6, 10, 3, 1.7, 1.8, 0.3, 11, 5, 8, 2, 1.5, 1.9, 0.7)},
	{id: "epl-2425-r5-che-mci", round: 5, home: "eng-che", away: "eng-mci", homeScore: 0, awayScore: 2, finished: true, stats: sideStats(9, 2, 5, 0, 0.6, 0.3, 0.1, 17, 7, 12, 3, 2.0, 1.7, 0.5)},
	{id: "epl-2425-r6-ars-mci", round: 6, home: "eng-ars", away: "eng-mci"},
	{id: "epl-2425-r6-liv-che", round: 6, home: "eng-liv", away: "eng-che"},
}

func sideStats(shotsH, sotH, boxH, bigH int, xgH, xgotH, spH float64, shotsA, sotA, boxA, bigA int, xgA, xgotA, spA float64) *match.Statistics {
	return &match.Statistics{
		Home: match.SideStatistics{Shots: shotsH, ShotsOnTarget: sotH, ShotsInsideBox: boxH, BigChances: bigH, XG: xgH, XGOT: xgotH, XGSetPiece: spH},
		Away: match.SideStatistics{Shots: shotsA, ShotsOnTarget: sotA, ShotsInsideBox: boxA, BigChances: bigA, XG: xgA, XGOT: xgotA, XGSetPiece: spA},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "eng-ars", Name: "Arsenal", Short: "ARS", Record: team.Record{Wins: 2, Draws: 2, Losses: 1}},
		{ID: "eng-che", Name: "Chelsea", Short: "CHE", Record: team.Record{Wins: 0, Draws: 2, Losses: 3}},
		{ID: "eng-liv", Name: "Liverpool", Short: "LIV", Record: team.Record{Wins: 2, Draws: 2, Losses: 1}},
		{ID: "eng-mci", Name: "Manchester City", Short: "MCI", Record: team.Record{Wins: 2, Draws: 2, Losses: 1}},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "ars-gk-raya", Name: "David Raya"},
		{ID: "ars-fw-havertz", Name: "Kai Havertz"},
		{ID: "ars-mf-odegaard", Name: "Martin Odegaard"},
		{ID: "ars-mf-nwaneri", Name: "Ethan Nwaneri"},
		{ID: "che-gk-sanchez", Name: "Robert Sanchez"},
		{ID: "che-fw-jackson", Name: "Nicolas Jackson"},
		{ID: "che-mf-palmer", Name: "Cole Palmer"},
		{ID: "che-mf-george", Name: "Tyrique George"},
		{ID: "liv-gk-alisson", Name: "Alisson Becker"},
		{ID: "liv-fw-salah", Name: "Mohamed Salah"},
		{ID: "liv-mf-szoboszlai", Name: "Dominik Szoboszlai"},
		{ID: "liv-mf-elliott", Name: "Harvey Elliott"},
		{ID: "mci-gk-ederson", Name: "Ederson"},
		{ID: "mci-fw-haaland", Name: "Erling Haaland"},
		{ID: "mci-mf-foden", Name: "Phil Foden"},
		{ID: "mci-mf-nunes", Name: "Matheus Nunes"},
	}
}

func SeedMatches() []match.Match {
	out := make([]match.Match, 0, len(seedFixtures))
	for i, f := range seedFixtures {
		m := match.Match{
			ID:         f.id,
			Season:     SeedSeason,
			Round:      f.round,
			KickoffAt:  seedSeasonStart.AddDate(0, 0, 7*(f.round-1)).Add(time.Duration(i%2) * 150 * time.Minute),
			HomeTeamID: f.home,
			AwayTeamID: f.away,
			Finished:   f.finished,
		}
		if f.finished {
			home, away := f.homeScore, f.awayScore
			m.HomeScore = &home
			m.AwayScore = &away
		}
		out = append(out, m)
	}
	return out
}

func SeedMatchStatistics() []match.Statistics {
	out := make([]match.Statistics, 0, len(seedFixtures))
	for _, f := range seedFixtures {
		if f.stats == nil {
			continue
		}
		s := *f.stats
		s.MatchID = f.id
		out = append(out, s)
	}
	return out
}

// SeedPlayerMatchStats derives plausible per-player lines from the fixture scores:
// goalkeeper and forward play every minute, the substitute never reaches the per-90 floor.
func SeedPlayerMatchStats() []playerstats.MatchStat {
	out := make([]playerstats.MatchStat, 0, len(seedFixtures)*8)
	for _, f := range seedFixtures {
		if !f.finished {
			continue
		}

		var homeStats, awayStats match.SideStatistics
		if f.stats != nil {
			homeStats, awayStats = f.stats.Home, f.stats.Away
		}
		out = append(out, seedSideLines(f, f.home, f.homeScore, f.awayScore, homeStats, awayStats)...)
		out = append(out, seedSideLines(f, f.away, f.awayScore, f.homeScore, awayStats, homeStats)...)
	}
	return out
}

func seedSideLines(f seedFixture, teamID string, scored, conceded int, own, opponent match.SideStatistics) []playerstats.MatchStat {
	squad := seedSquads[teamID]
	forwardGoals := (scored + 1) / 2
	midfieldGoals := scored - forwardGoals

	line := func(playerID string, minutes int) playerstats.MatchStat {
		return playerstats.MatchStat{
			PlayerID: playerID,
			MatchID:  f.id,
			TeamID:   teamID,
			Season:   SeedSeason,
			Minutes:  minutes,
		}
	}

	gk := line(squad.goalkeeper, 90)
	gk.IsGoalkeeper = true
	gk.GoalsConceded = conceded
	if opponent.XGOT > 0 {
		gk.GoalsPrevented = opponent.XGOT - float64(conceded)
	}

	fw := line(squad.forward, 90)
	fw.Goals = forwardGoals
	fw.Assists = midfieldGoals / 2
	fw.Shots = own.Shots / 3
	fw.ShotsOnTarget = own.ShotsOnTarget / 2
	fw.XG = own.XG * 0.5
	fw.XA = own.XG * 0.1

	mf := line(squad.midfielder, 78)
	mf.Goals = midfieldGoals
	mf.Assists = forwardGoals
	mf.Shots = own.Shots / 4
	mf.ShotsOnTarget = own.ShotsOnTarget / 4
	mf.XG = own.XG * 0.25
	mf.XA = own.XG * 0.35

	sub := line(squad.substitute, 12)
	sub.XA = own.XG * 0.05

	return []playerstats.MatchStat{gk, fw, mf, sub}
}
