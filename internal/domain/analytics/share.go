package analytics

import (
	"fmt"
	"sort"

	"github.com/riskibarqy/match-recap/internal/domain/match"
	"github.com/riskibarqy/match-recap/internal/domain/team"
)

// TeamMatchSide is one team's half of a match statistics row.
type TeamMatchSide struct {
	MatchID    string
	Season     string
	TeamID     string
	OpponentID string
	IsHome     bool
	Stats      match.SideStatistics
}

// SideSplit transposes a match and its two-sided statistics row into one
// team-keyed record per side, home first.
func SideSplit(m match.Match, s match.Statistics) [2]TeamMatchSide {
	return [2]TeamMatchSide{
		{
			MatchID:    m.ID,
			Season:     m.Season,
			TeamID:     m.HomeTeamID,
			OpponentID: m.AwayTeamID,
			IsHome:     true,
			Stats:      s.Home,
		},
		{
			MatchID:    m.ID,
			Season:     m.Season,
			TeamID:     m.AwayTeamID,
			OpponentID: m.HomeTeamID,
			IsHome:     false,
			Stats:      s.Away,
		},
	}
}

// SideSplitAll side-splits every match of the season. A match without a
// statistics row contributes zero-valued sides.
func SideSplitAll(season string, matches []match.Match, stats map[string]match.Statistics) []TeamMatchSide {
	out := make([]TeamMatchSide, 0, len(matches)*2)
	for _, m := range matches {
		if m.Season != season {
			continue
		}
		sides := SideSplit(m, stats[m.ID])
		out = append(out, sides[0], sides[1])
	}
	return out
}

// DeriveTeamShares groups side-split rows by team and computes box share of
// shots and set-piece share of xG. Rows are ordered by team id.
func DeriveTeamShares(season string, matches []match.Match, stats map[string]match.Statistics, teams map[string]team.Team) ([]TeamShareMetric, error) {
	byTeam := make(map[string]*TeamShareMetric)
	for _, side := range SideSplitAll(season, matches, stats) {
		t, ok := teams[side.TeamID]
		if !ok {
			return nil, fmt.Errorf("%w: match=%s team=%s", ErrUnresolvableReference, side.MatchID, side.TeamID)
		}

		item, ok := byTeam[side.TeamID]
		if !ok {
			item = &TeamShareMetric{Season: season, TeamID: t.ID, TeamName: t.Name}
			byTeam[side.TeamID] = item
		}
		item.Matches++
		item.Shots += side.Stats.Shots
		item.ShotsInsideBox += side.Stats.ShotsInsideBox
		item.BigChances += side.Stats.BigChances
		item.XG += side.Stats.XG
		item.XGSetPiece += side.Stats.XGSetPiece
	}

	out := make([]TeamShareMetric, 0, len(byTeam))
	for _, item := range byTeam {
		item.BoxShare = ratio(float64(item.ShotsInsideBox), float64(item.Shots))
		item.XGSetPieceShare = ratio(item.XGSetPiece, item.XG)
		out = append(out, *item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TeamID < out[j].TeamID })

	return out, nil
}
