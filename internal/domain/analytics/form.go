package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/riskibarqy/match-recap/internal/domain/match"
	"github.com/riskibarqy/match-recap/internal/domain/team"
)

// teamResult is one finished match seen from a single team's side.
type teamResult struct {
	matchID      string
	kickoffAt    time.Time
	goalsFor     int
	goalsAgainst int
	points       int
}

// DeriveTeamForm emits, for every finished match of every team in the season,
// the aggregate over the up-to-windowSize finished matches played before it.
// Rows are ordered by team id, then sequence.
func DeriveTeamForm(season string, matches []match.Match, teams map[string]team.Team, windowSize int) ([]TeamFormWindow, error) {
	sequences, err := teamResults(season, matches, teams)
	if err != nil {
		return nil, err
	}

	teamIDs := make([]string, 0, len(sequences))
	for teamID := range sequences {
		teamIDs = append(teamIDs, teamID)
	}
	sort.Strings(teamIDs)

	out := make([]TeamFormWindow, 0, len(matches)*2)
	for _, teamID := range teamIDs {
		results := sequences[teamID]
		for i, current := range results {
			start, end := TrailingWindow(i, windowSize)
			row := TeamFormWindow{
				Season:    season,
				TeamID:    teamID,
				TeamName:  teams[teamID].Name,
				MatchID:   current.matchID,
				KickoffAt: current.kickoffAt,
				Sequence:  i + 1,
				Matches:   end - start,
			}
			for _, prior := range results[start:end] {
				row.Points += prior.points
				row.GoalsFor += prior.goalsFor
				row.GoalsAgainst += prior.goalsAgainst
			}
			row.GoalDiff = row.GoalsFor - row.GoalsAgainst
			row.PointsAvg = ratio(float64(row.Points), float64(row.Matches))
			out = append(out, row)
		}
	}

	return out, nil
}

// teamResults builds the as-played sequence per team from finished matches,
// ordered by kickoff then match id. Unfinished matches are skipped entirely.
func teamResults(season string, matches []match.Match, teams map[string]team.Team) (map[string][]teamResult, error) {
	out := make(map[string][]teamResult)
	for _, m := range matches {
		if m.Season != season || !m.Finished || m.HomeScore == nil || m.AwayScore == nil {
			continue
		}
		if _, ok := teams[m.HomeTeamID]; !ok {
			return nil, fmt.Errorf("%w: match=%s home team=%s", ErrUnresolvableReference, m.ID, m.HomeTeamID)
		}
		if _, ok := teams[m.AwayTeamID]; !ok {
			return nil, fmt.Errorf("%w: match=%s away team=%s", ErrUnresolvableReference, m.ID, m.AwayTeamID)
		}

		home, away := *m.HomeScore, *m.AwayScore
		out[m.HomeTeamID] = append(out[m.HomeTeamID], teamResult{
			matchID:      m.ID,
			kickoffAt:    m.KickoffAt,
			goalsFor:     home,
			goalsAgainst: away,
			points:       resultPoints(home, away),
		})
		out[m.AwayTeamID] = append(out[m.AwayTeamID], teamResult{
			matchID:      m.ID,
			kickoffAt:    m.KickoffAt,
			goalsFor:     away,
			goalsAgainst: home,
			points:       resultPoints(away, home),
		})
	}

	for teamID := range out {
		results := out[teamID]
		sort.SliceStable(results, func(i, j int) bool {
			if !results[i].kickoffAt.Equal(results[j].kickoffAt) {
				return results[i].kickoffAt.Before(results[j].kickoffAt)
			}
			return results[i].matchID < results[j].matchID
		})
	}

	return out, nil
}

// resultPoints scores a result from one side. A draw is worth the same at home and away.
func resultPoints(goalsFor, goalsAgainst int) int {
	switch {
	case goalsFor > goalsAgainst:
		return pointsWin
	case goalsFor == goalsAgainst:
		return pointsDraw
	default:
		return 0
	}
}

// LatestFormByTeam picks the row with the highest sequence for every team.
func LatestFormByTeam(rows []TeamFormWindow) map[string]TeamFormWindow {
	out := make(map[string]TeamFormWindow)
	for _, row := range rows {
		if current, ok := out[row.TeamID]; !ok || row.Sequence > current.Sequence {
			out[row.TeamID] = row
		}
	}
	return out
}
