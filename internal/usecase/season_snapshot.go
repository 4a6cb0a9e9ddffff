package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/match-recap/internal/domain/analytics"
	"github.com/riskibarqy/match-recap/internal/domain/match"
	"github.com/riskibarqy/match-recap/internal/domain/player"
	"github.com/riskibarqy/match-recap/internal/domain/playerstats"
	"github.com/riskibarqy/match-recap/internal/domain/team"
)

// seasonSnapshot is one read of the fact store for a season. Derivations
// only read from it, so it can be shared between concurrent workers.
type seasonSnapshot struct {
	season     string
	matches    []match.Match
	statistics map[string]match.Statistics
	teams      map[string]team.Team
	playerRows []playerstats.MatchStat
	players    map[string]player.Player
}

type snapshotScope struct {
	players bool
}

func (s *AnalyticsService) loadSeason(ctx context.Context, season string, scope snapshotScope) (seasonSnapshot, error) {
	snap := seasonSnapshot{season: season}

	matches, err := s.matchRepo.ListBySeason(ctx, season)
	if err != nil {
		return seasonSnapshot{}, fmt.Errorf("list matches by season: %w", err)
	}
	snap.matches, err = s.validMatches(ctx, matches)
	if err != nil {
		return seasonSnapshot{}, err
	}

	matchIDs := make([]string, 0, len(snap.matches))
	for _, m := range snap.matches {
		matchIDs = append(matchIDs, m.ID)
	}
	snap.statistics, err = s.matchRepo.ListStatisticsByMatchIDs(ctx, matchIDs)
	if err != nil {
		return seasonSnapshot{}, fmt.Errorf("list match statistics: %w", err)
	}

	teamIDs := teamIDsOf(snap.matches)
	if scope.players {
		snap.playerRows, err = s.statsRepo.ListBySeason(ctx, season)
		if err != nil {
			return seasonSnapshot{}, fmt.Errorf("list player match stats: %w", err)
		}
		rowTeamIDs := make([]string, 0, len(snap.playerRows))
		for _, row := range snap.playerRows {
			rowTeamIDs = append(rowTeamIDs, row.TeamID)
		}
		teamIDs = uniqueIDs(append(teamIDs, rowTeamIDs...))
	}

	snap.teams, err = s.teamsByID(ctx, teamIDs)
	if err != nil {
		return seasonSnapshot{}, err
	}

	if !scope.players {
		return snap, nil
	}

	playerIDs := make([]string, 0, len(snap.playerRows))
	for _, row := range snap.playerRows {
		playerIDs = append(playerIDs, row.PlayerID)
	}
	players, err := s.playerRepo.GetByIDs(ctx, uniqueIDs(playerIDs))
	if err != nil {
		return seasonSnapshot{}, fmt.Errorf("get players by ids: %w", err)
	}
	snap.players = make(map[string]player.Player, len(players))
	for _, p := range players {
		snap.players[p.ID] = p
	}

	return snap, nil
}

// validMatches skips rows breaking the score/finished invariant with a
// warning. A match missing a team id can never resolve and fails the read.
func (s *AnalyticsService) validMatches(ctx context.Context, matches []match.Match) ([]match.Match, error) {
	out := make([]match.Match, 0, len(matches))
	for _, m := range matches {
		if m.HomeTeamID == "" || m.AwayTeamID == "" {
			return nil, fmt.Errorf("%w: match=%s home team=%q away team=%q",
				analytics.ErrUnresolvableReference, m.ID, m.HomeTeamID, m.AwayTeamID)
		}
		if err := m.Validate(); err != nil {
			s.logger.WarnContext(ctx, "skip invalid match", "match_id", m.ID, "error", err)
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (s *AnalyticsService) teamsByID(ctx context.Context, teamIDs []string) (map[string]team.Team, error) {
	teams, err := s.teamRepo.ListByIDs(ctx, teamIDs)
	if err != nil {
		return nil, fmt.Errorf("list teams by ids: %w", err)
	}

	out := make(map[string]team.Team, len(teams))
	for _, t := range teams {
		out[t.ID] = t
	}
	return out, nil
}

func (snap seasonSnapshot) playerRates(minMinutes int) ([]analytics.PlayerSeasonRate, error) {
	rates, err := analytics.DerivePlayerSeasonRates(snap.season, snap.playerRows, snap.players, snap.teams, minMinutes)
	if err != nil {
		return nil, fmt.Errorf("derive player season rates: %w", err)
	}
	return rates, nil
}

func (snap seasonSnapshot) teamForm(windowSize int) ([]analytics.TeamFormWindow, error) {
	rows, err := analytics.DeriveTeamForm(snap.season, snap.matches, snap.teams, windowSize)
	if err != nil {
		return nil, fmt.Errorf("derive team form: %w", err)
	}
	return rows, nil
}

func (snap seasonSnapshot) teamShares() ([]analytics.TeamShareMetric, error) {
	rows, err := analytics.DeriveTeamShares(snap.season, snap.matches, snap.statistics, snap.teams)
	if err != nil {
		return nil, fmt.Errorf("derive team shares: %w", err)
	}
	return rows, nil
}

func (snap seasonSnapshot) goalkeepers(minMinutes int) ([]analytics.GoalkeeperSeasonPerformance, error) {
	rows, err := analytics.DeriveGoalkeeperPerformance(snap.season, snap.playerRows, snap.players, snap.teams, minMinutes)
	if err != nil {
		return nil, fmt.Errorf("derive goalkeeper performance: %w", err)
	}
	return rows, nil
}

func teamIDsOf(matches []match.Match) []string {
	out := make([]string, 0, len(matches)*2)
	for _, m := range matches {
		out = append(out, m.HomeTeamID, m.AwayTeamID)
	}
	return uniqueIDs(out)
}

// uniqueIDs returns the distinct non-empty ids, sorted.
func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok || id == "" {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// playsInSeason reports whether teamID appears in any loaded match.
func (snap seasonSnapshot) playsInSeason(teamID string) bool {
	for _, m := range snap.matches {
		if m.Involves(teamID) {
			return true
		}
	}
	return false
}

// sortLeaders orders per-90 rows by goals per 90, then xG per 90, then player id.
func sortLeaders(rows []analytics.PlayerSeasonRate) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].GoalsPer90 != rows[j].GoalsPer90 {
			return rows[i].GoalsPer90 > rows[j].GoalsPer90
		}
		if rows[i].XGPer90 != rows[j].XGPer90 {
			return rows[i].XGPer90 > rows[j].XGPer90
		}
		return rows[i].PlayerID < rows[j].PlayerID
	})
}

func sortGoalkeepers(rows []analytics.GoalkeeperSeasonPerformance) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].XGOTDelta != rows[j].XGOTDelta {
			return rows[i].XGOTDelta > rows[j].XGOTDelta
		}
		return rows[i].PlayerID < rows[j].PlayerID
	})
}

func filterTeams[T any](rows []T, teamIDs []string, teamOf func(T) string) []T {
	if len(teamIDs) == 0 {
		return rows
	}
	keep := make(map[string]struct{}, len(teamIDs))
	for _, id := range teamIDs {
		keep[id] = struct{}{}
	}
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		if _, ok := keep[teamOf(row)]; ok {
			out = append(out, row)
		}
	}
	return out
}

func truncate[T any](rows []T, limit int) []T {
	if limit > 0 && len(rows) > limit {
		return rows[:limit]
	}
	return rows
}
