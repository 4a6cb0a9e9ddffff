package grounding

import (
	"reflect"
	"strings"
	"testing"

	"github.com/riskibarqy/match-recap/internal/domain/analytics"
	"github.com/riskibarqy/match-recap/internal/domain/recap"
)

func intPtr(v int) *int { return &v }

func sampleContext() recap.RoundContext {
	return recap.RoundContext{
		Season: "2024-25",
		Round:  1,
		Facts: []analytics.RoundFact{
			{
				MatchID: "m1", HomeTeamID: "ars", HomeTeam: "Arsenal", AwayTeamID: "che", AwayTeam: "Chelsea",
				HomeScore: intPtr(2), AwayScore: intPtr(0), Attendance: intPtr(60214), Finished: true,
				HasStatistics: true, XGHome: 1.9, XGAway: 0.6, XGOTHome: 1.4, XGOTAway: 0.3, ShotsHome: 15, ShotsAway: 8,
			},
			{
				MatchID: "m2", HomeTeamID: "liv", HomeTeam: "Liverpool", AwayTeamID: "mci", AwayTeam: "Manchester City",
			},
		},
		Form: []analytics.TeamFormWindow{
			{TeamID: "ars", TeamName: "Arsenal", Matches: 5, Points: 10, GoalsFor: 8, GoalsAgainst: 6, PointsAvg: 2},
			{TeamID: "che", TeamName: "Chelsea", Matches: 5, Points: 4, GoalsFor: 5, GoalsAgainst: 9, PointsAvg: 0.8},
		},
		Leaders: []analytics.PlayerSeasonRate{
			{PlayerID: "p1", PlayerName: "Kai Havertz", Minutes: 450, GoalsPer90: 0.6, XGPer90: 0.51},
		},
		Shares: []analytics.TeamShareMetric{
			{TeamID: "ars", TeamName: "Arsenal", BoxShare: 0.7333, BigChances: 11, XGSetPieceShare: 0.25},
		},
		Goalkeepers: []analytics.GoalkeeperSeasonPerformance{
			{PlayerID: "gk1", PlayerName: "David Raya", XGOTDelta: 1.1},
		},
	}
}

func TestBuildFactsPanel(t *testing.T) {
	t.Parallel()

	facts := BuildFactsPanel(sampleContext())

	byLabel := make(map[string]Fact, len(facts))
	for _, f := range facts {
		byLabel[f.Label] = f
	}

	wantValues := map[string]string{
		"Arsenal vs Chelsea score":         "2-0",
		"Arsenal xG":                       "1.90",
		"Chelsea xGOT":                     "0.30",
		"Arsenal shots":                    "15",
		"Arsenal vs Chelsea attendance":    "60214",
		"Arsenal points (last 5)":          "10",
		"Chelsea points per game (last 5)": "0.80",
		"Kai Havertz g/90":                 "0.60",
		"Kai Havertz minutes":              "450",
		"Arsenal box share":                "0.73",
		"Arsenal big chances":              "11",
		"Arsenal xG set-piece share":       "0.25",
		"David Raya xGOT delta":            "1.10",
	}
	for label, want := range wantValues {
		got, ok := byLabel[label]
		if !ok {
			t.Fatalf("missing fact %q in panel", label)
		}
		if got.Value != want {
			t.Fatalf("unexpected value for %q: got=%s want=%s", label, got.Value, want)
		}
	}

	for _, f := range facts {
		if strings.HasPrefix(f.Label, "Liverpool") {
			t.Fatalf("unfinished match without statistics should not emit facts, got %+v", f)
		}
	}

	if byLabel["Arsenal xG"].Source != SourceRoundFacts || byLabel["David Raya xGOT delta"].Source != SourceGoalkeeperXGOT {
		t.Fatalf("unexpected sources: %+v", byLabel)
	}
}

func TestBuildFactsPanel_LimitsLeaders(t *testing.T) {
	t.Parallel()

	rc := recap.RoundContext{}
	for i := 0; i < panelLeadersLimit+5; i++ {
		rc.Leaders = append(rc.Leaders, analytics.PlayerSeasonRate{PlayerName: "P", Minutes: 300})
	}

	facts := BuildFactsPanel(rc)
	if len(facts) != panelLeadersLimit*3 {
		t.Fatalf("expected %d leader facts, got %d", panelLeadersLimit*3, len(facts))
	}
}

func TestCitations(t *testing.T) {
	t.Parallel()

	got := Citations(BuildFactsPanel(sampleContext()))
	want := []string{SourceRoundFacts, SourceTeamForm, SourcePlayerPer90, SourceShotProfile, SourceSetPieceShare, SourceGoalkeeperXGOT}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected citations: got=%v want=%v", got, want)
	}
}

func TestHeadline(t *testing.T) {
	t.Parallel()

	headline, bullets := Headline(sampleContext())
	if headline != "Margins matter in Round 1" {
		t.Fatalf("unexpected headline: %s", headline)
	}
	if len(bullets) != 3 {
		t.Fatalf("unexpected bullets: %v", bullets)
	}
	if bullets[0] != "Top xG in round: Arsenal (1.90)" {
		t.Fatalf("unexpected xG bullet: %s", bullets[0])
	}
	if bullets[1] != "Best recent form: Arsenal (2.00 points per game)" {
		t.Fatalf("unexpected form bullet: %s", bullets[1])
	}

	facts := BuildFactsPanel(sampleContext())
	if missing := UngroundedNumbers(strings.Join(bullets, " "), facts); len(missing) != 0 {
		t.Fatalf("headline bullets cite ungrounded numbers: %v", missing)
	}
}

func TestHeadline_NoFixtures(t *testing.T) {
	t.Parallel()

	headline, bullets := Headline(recap.RoundContext{Round: 4})
	if headline != "Round Recap" || len(bullets) != 1 || bullets[0] != "No fixtures found." {
		t.Fatalf("unexpected empty headline: %s %v", headline, bullets)
	}
}
