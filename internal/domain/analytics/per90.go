package analytics

import (
	"fmt"
	"sort"

	"github.com/riskibarqy/match-recap/internal/domain/player"
	"github.com/riskibarqy/match-recap/internal/domain/playerstats"
	"github.com/riskibarqy/match-recap/internal/domain/team"
)

type playerTeamKey struct {
	playerID string
	teamID   string
}

// DerivePlayerSeasonRates sums every player's season rows per (player, team)
// and converts the totals to per-90 rates. Players whose summed minutes are
// below minMinutes are dropped after aggregation. Every row must resolve to a
// known player and team.
func DerivePlayerSeasonRates(season string, rows []playerstats.MatchStat, players map[string]player.Player, teams map[string]team.Team, minMinutes int) ([]PlayerSeasonRate, error) {
	totals := make(map[playerTeamKey]*PlayerSeasonRate)
	for _, row := range rows {
		if row.Season != season {
			continue
		}
		p, err := resolveStatRow(row, players, teams)
		if err != nil {
			return nil, err
		}

		key := playerTeamKey{playerID: row.PlayerID, teamID: row.TeamID}
		item, ok := totals[key]
		if !ok {
			item = &PlayerSeasonRate{
				Season:     season,
				PlayerID:   p.ID,
				PlayerName: p.Name,
				TeamID:     row.TeamID,
			}
			totals[key] = item
		}
		item.Appearances++
		item.Minutes += row.Minutes
		item.Goals += row.Goals
		item.Assists += row.Assists
		item.Shots += row.Shots
		item.ShotsOnTarget += row.ShotsOnTarget
		item.XG += row.XG
		item.XA += row.XA
	}

	out := make([]PlayerSeasonRate, 0, len(totals))
	for _, item := range totals {
		item.GoalsPer90 = per90(float64(item.Goals), item.Minutes)
		item.AssistsPer90 = per90(float64(item.Assists), item.Minutes)
		item.ShotsPer90 = per90(float64(item.Shots), item.Minutes)
		item.ShotsOnTargetPer90 = per90(float64(item.ShotsOnTarget), item.Minutes)
		item.XGPer90 = per90(item.XG, item.Minutes)
		item.XAPer90 = per90(item.XA, item.Minutes)
		out = append(out, *item)
	}

	out = filterByMinutes(out, minMinutes, func(r PlayerSeasonRate) int { return r.Minutes })
	sort.Slice(out, func(i, j int) bool {
		if out[i].PlayerID != out[j].PlayerID {
			return out[i].PlayerID < out[j].PlayerID
		}
		return out[i].TeamID < out[j].TeamID
	})

	return out, nil
}

func resolveStatRow(row playerstats.MatchStat, players map[string]player.Player, teams map[string]team.Team) (player.Player, error) {
	p, ok := players[row.PlayerID]
	if !ok {
		return player.Player{}, fmt.Errorf("%w: match=%s player=%s", ErrUnresolvableReference, row.MatchID, row.PlayerID)
	}
	if _, ok := teams[row.TeamID]; !ok {
		return player.Player{}, fmt.Errorf("%w: match=%s player=%s team=%s", ErrUnresolvableReference, row.MatchID, row.PlayerID, row.TeamID)
	}
	return p, nil
}

// filterByMinutes keeps aggregated rows whose summed minutes reach the floor.
// It only ever sees post-aggregation totals.
func filterByMinutes[T any](items []T, minMinutes int, minutesOf func(T) int) []T {
	out := items[:0]
	for _, item := range items {
		if minutesOf(item) >= minMinutes {
			out = append(out, item)
		}
	}
	return out
}
