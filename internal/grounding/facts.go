package grounding

import (
	"fmt"
	"strconv"

	"github.com/riskibarqy/match-recap/internal/domain/recap"
)

// Fact sources, one per derivation feeding the panel.
const (
	SourceRoundFacts     = "round_facts"
	SourceTeamForm       = "team_form"
	SourcePlayerPer90    = "player_per90"
	SourceShotProfile    = "shot_profile"
	SourceSetPieceShare  = "set_piece_share"
	SourceGoalkeeperXGOT = "goalkeeper_xgot"
)

const (
	panelLeadersLimit     = 20
	panelGoalkeepersLimit = 10
)

// Fact is one labelled, attributed value of the facts panel.
type Fact struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// BuildFactsPanel flattens a round context into the facts the generated text may cite.
func BuildFactsPanel(rc recap.RoundContext) []Fact {
	facts := make([]Fact, 0, len(rc.Facts)*8+len(rc.Form)*3+len(rc.Shares)*3)

	teamNames := make(map[string]string, len(rc.Facts)*2)
	for _, m := range rc.Facts {
		teamNames[m.HomeTeamID] = m.HomeTeam
		teamNames[m.AwayTeamID] = m.AwayTeam

		if m.HomeScore != nil && m.AwayScore != nil {
			facts = append(facts, Fact{
				Label:  fmt.Sprintf("%s vs %s score", m.HomeTeam, m.AwayTeam),
				Value:  fmt.Sprintf("%d-%d", *m.HomeScore, *m.AwayScore),
				Source: SourceRoundFacts,
			})
		}
		if m.HasStatistics {
			facts = append(facts,
				Fact{Label: m.HomeTeam + " xG", Value: formatDecimal(m.XGHome), Source: SourceRoundFacts},
				Fact{Label: m.AwayTeam + " xG", Value: formatDecimal(m.XGAway), Source: SourceRoundFacts},
				Fact{Label: m.HomeTeam + " xGOT", Value: formatDecimal(m.XGOTHome), Source: SourceRoundFacts},
				Fact{Label: m.AwayTeam + " xGOT", Value: formatDecimal(m.XGOTAway), Source: SourceRoundFacts},
				Fact{Label: m.HomeTeam + " shots", Value: strconv.Itoa(m.ShotsHome), Source: SourceRoundFacts},
				Fact{Label: m.AwayTeam + " shots", Value: strconv.Itoa(m.ShotsAway), Source: SourceRoundFacts},
			)
		}
		if m.Attendance != nil {
			facts = append(facts, Fact{
				Label:  fmt.Sprintf("%s vs %s attendance", m.HomeTeam, m.AwayTeam),
				Value:  strconv.Itoa(*m.Attendance),
				Source: SourceRoundFacts,
			})
		}
	}

	for _, f := range rc.Form {
		facts = append(facts,
			Fact{Label: fmt.Sprintf("%s points (last %d)", f.TeamName, f.Matches), Value: strconv.Itoa(f.Points), Source: SourceTeamForm},
			Fact{Label: fmt.Sprintf("%s goals for (last %d)", f.TeamName, f.Matches), Value: strconv.Itoa(f.GoalsFor), Source: SourceTeamForm},
			Fact{Label: fmt.Sprintf("%s goals against (last %d)", f.TeamName, f.Matches), Value: strconv.Itoa(f.GoalsAgainst), Source: SourceTeamForm},
			Fact{Label: fmt.Sprintf("%s points per game (last %d)", f.TeamName, f.Matches), Value: formatDecimal(f.PointsAvg), Source: SourceTeamForm},
		)
	}

	for i, l := range rc.Leaders {
		if i >= panelLeadersLimit {
			break
		}
		facts = append(facts,
			Fact{Label: l.PlayerName + " g/90", Value: formatDecimal(l.GoalsPer90), Source: SourcePlayerPer90},
			Fact{Label: l.PlayerName + " xG/90", Value: formatDecimal(l.XGPer90), Source: SourcePlayerPer90},
			Fact{Label: l.PlayerName + " minutes", Value: strconv.Itoa(l.Minutes), Source: SourcePlayerPer90},
		)
	}

	for _, s := range rc.Shares {
		name := s.TeamName
		if name == "" {
			name = teamNames[s.TeamID]
		}
		facts = append(facts,
			Fact{Label: name + " box share", Value: formatDecimal(s.BoxShare), Source: SourceShotProfile},
			Fact{Label: name + " big chances", Value: strconv.Itoa(s.BigChances), Source: SourceShotProfile},
			Fact{Label: name + " xG set-piece share", Value: formatDecimal(s.XGSetPieceShare), Source: SourceSetPieceShare},
		)
	}

	for i, g := range rc.Goalkeepers {
		if i >= panelGoalkeepersLimit {
			break
		}
		facts = append(facts, Fact{
			Label:  g.PlayerName + " xGOT delta",
			Value:  formatDecimal(g.XGOTDelta),
			Source: SourceGoalkeeperXGOT,
		})
	}

	return facts
}

// Citations lists the distinct sources of the panel in first-seen order.
func Citations(facts []Fact) []string {
	seen := make(map[string]struct{}, 6)
	out := make([]string, 0, 6)
	for _, f := range facts {
		if _, ok := seen[f.Source]; ok {
			continue
		}
		seen[f.Source] = struct{}{}
		out = append(out, f.Source)
	}
	return out
}

func formatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
