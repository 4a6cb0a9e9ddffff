package analytics

import (
	"sort"

	"github.com/riskibarqy/match-recap/internal/domain/player"
	"github.com/riskibarqy/match-recap/internal/domain/playerstats"
	"github.com/riskibarqy/match-recap/internal/domain/team"
)

// DeriveGoalkeeperPerformance aggregates, per (player, team), every season row
// of players flagged as goalkeeper at least once. Totals below minMinutes are
// dropped after aggregation. Rows are ordered by player id, then team id.
func DeriveGoalkeeperPerformance(season string, rows []playerstats.MatchStat, players map[string]player.Player, teams map[string]team.Team, minMinutes int) ([]GoalkeeperSeasonPerformance, error) {
	keepers := make(map[string]struct{})
	for _, row := range rows {
		if row.Season == season && row.IsGoalkeeper {
			keepers[row.PlayerID] = struct{}{}
		}
	}

	totals := make(map[playerTeamKey]*GoalkeeperSeasonPerformance)
	for _, row := range rows {
		if row.Season != season {
			continue
		}
		if _, ok := keepers[row.PlayerID]; !ok {
			continue
		}
		p, err := resolveStatRow(row, players, teams)
		if err != nil {
			return nil, err
		}

		key := playerTeamKey{playerID: row.PlayerID, teamID: row.TeamID}
		item, ok := totals[key]
		if !ok {
			item = &GoalkeeperSeasonPerformance{
				Season:     season,
				PlayerID:   p.ID,
				PlayerName: p.Name,
				TeamID:     row.TeamID,
			}
			totals[key] = item
		}
		item.Appearances++
		item.Minutes += row.Minutes
		item.GoalsConceded += row.GoalsConceded
		item.XGOTDelta += row.GoalsPrevented
	}

	out := make([]GoalkeeperSeasonPerformance, 0, len(totals))
	for _, item := range totals {
		out = append(out, *item)
	}

	out = filterByMinutes(out, minMinutes, func(r GoalkeeperSeasonPerformance) int { return r.Minutes })
	sort.Slice(out, func(i, j int) bool {
		if out[i].PlayerID != out[j].PlayerID {
			return out[i].PlayerID < out[j].PlayerID
		}
		return out[i].TeamID < out[j].TeamID
	})

	return out, nil
}
