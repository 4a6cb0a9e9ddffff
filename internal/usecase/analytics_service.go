package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/match-recap/internal/domain/analytics"
	"github.com/riskibarqy/match-recap/internal/domain/match"
	"github.com/riskibarqy/match-recap/internal/domain/player"
	"github.com/riskibarqy/match-recap/internal/domain/playerstats"
	"github.com/riskibarqy/match-recap/internal/domain/team"
	"github.com/riskibarqy/match-recap/internal/platform/logging"
)

type AnalyticsConfig struct {
	PlayerMinMinutes     int
	GoalkeeperMinMinutes int
	FormWindow           int
	LeadersLimit         int
	GoalkeepersLimit     int
}

func DefaultAnalyticsConfig() AnalyticsConfig {
	return AnalyticsConfig{
		PlayerMinMinutes:     analytics.DefaultPlayerMinMinutes,
		GoalkeeperMinMinutes: analytics.DefaultGoalkeeperMinMinutes,
		FormWindow:           analytics.DefaultFormWindow,
		LeadersLimit:         50,
		GoalkeepersLimit:     30,
	}
}

func normalizeAnalyticsConfig(cfg AnalyticsConfig) AnalyticsConfig {
	def := DefaultAnalyticsConfig()
	if cfg.PlayerMinMinutes < 0 {
		cfg.PlayerMinMinutes = def.PlayerMinMinutes
	}
	if cfg.GoalkeeperMinMinutes < 0 {
		cfg.GoalkeeperMinMinutes = def.GoalkeeperMinMinutes
	}
	if cfg.FormWindow <= 0 {
		cfg.FormWindow = def.FormWindow
	}
	if cfg.LeadersLimit <= 0 {
		cfg.LeadersLimit = def.LeadersLimit
	}
	if cfg.GoalkeepersLimit <= 0 {
		cfg.GoalkeepersLimit = def.GoalkeepersLimit
	}
	return cfg
}

// AnalyticsService serves the season derivations over the fact store.
type AnalyticsService struct {
	matchRepo  match.Repository
	teamRepo   team.Repository
	playerRepo player.Repository
	statsRepo  playerstats.Repository
	cfg        AnalyticsConfig
	logger     *logging.Logger
}

func NewAnalyticsService(
	matchRepo match.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	statsRepo playerstats.Repository,
	cfg AnalyticsConfig,
	logger *logging.Logger,
) *AnalyticsService {
	if logger == nil {
		logger = logging.Default()
	}

	return &AnalyticsService{
		matchRepo:  matchRepo,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		statsRepo:  statsRepo,
		cfg:        normalizeAnalyticsConfig(cfg),
		logger:     logger,
	}
}

func (s *AnalyticsService) Config() AnalyticsConfig {
	return s.cfg
}

func (s *AnalyticsService) ListRoundFacts(ctx context.Context, season string, round int) ([]analytics.RoundFact, error) {
	season = strings.TrimSpace(season)
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.ListRoundFacts", seasonAttrs(season, round)...)
	defer span.End()

	if err := validateSeasonRound(season, round); err != nil {
		return nil, err
	}

	matches, err := s.matchRepo.ListBySeasonAndRound(ctx, season, round)
	if err != nil {
		return nil, fmt.Errorf("list matches by round: %w", err)
	}
	matches, err = s.validMatches(ctx, matches)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: season=%s round=%d", ErrNotFound, season, round)
	}

	return s.roundFacts(ctx, matches)
}

func (s *AnalyticsService) GetMatchFact(ctx context.Context, matchID string) (analytics.RoundFact, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.GetMatchFact")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return analytics.RoundFact{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return analytics.RoundFact{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return analytics.RoundFact{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	facts, err := s.roundFacts(ctx, []match.Match{item})
	if err != nil {
		return analytics.RoundFact{}, err
	}
	return facts[0], nil
}

// ListPlayerLeaders returns per-90 rows above the minutes floor ordered by goals per 90.
// A non-positive limit falls back to the configured leaders limit.
func (s *AnalyticsService) ListPlayerLeaders(ctx context.Context, season string, limit int) ([]analytics.PlayerSeasonRate, error) {
	season = strings.TrimSpace(season)
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.ListPlayerLeaders", seasonAttrs(season, 0)...)
	defer span.End()

	if season == "" {
		return nil, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}
	if limit <= 0 {
		limit = s.cfg.LeadersLimit
	}

	snap, err := s.loadSeason(ctx, season, snapshotScope{players: true})
	if err != nil {
		return nil, err
	}
	return s.leadersFrom(snap, limit)
}

// ListTeamForm returns every form row of the season, optionally for one team.
func (s *AnalyticsService) ListTeamForm(ctx context.Context, season, teamID string) ([]analytics.TeamFormWindow, error) {
	season = strings.TrimSpace(season)
	teamID = strings.TrimSpace(teamID)
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.ListTeamForm", seasonAttrs(season, 0)...)
	defer span.End()

	if season == "" {
		return nil, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}

	snap, err := s.loadSeason(ctx, season, snapshotScope{})
	if err != nil {
		return nil, err
	}

	if teamID != "" && !snap.playsInSeason(teamID) {
		return nil, fmt.Errorf("%w: team=%s season=%s", ErrNotFound, teamID, season)
	}

	rows, err := snap.teamForm(s.cfg.FormWindow)
	if err != nil {
		return nil, err
	}
	if teamID == "" {
		return rows, nil
	}
	return filterTeams(rows, []string{teamID}, func(r analytics.TeamFormWindow) string { return r.TeamID }), nil
}

// LatestTeamForm returns the most recent form row of each requested team (all teams when empty).
func (s *AnalyticsService) LatestTeamForm(ctx context.Context, season string, teamIDs []string) ([]analytics.TeamFormWindow, error) {
	season = strings.TrimSpace(season)
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.LatestTeamForm", seasonAttrs(season, 0)...)
	defer span.End()

	if season == "" {
		return nil, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}

	snap, err := s.loadSeason(ctx, season, snapshotScope{})
	if err != nil {
		return nil, err
	}
	return s.latestFormFrom(snap, teamIDs)
}

func (s *AnalyticsService) ListTeamShares(ctx context.Context, season string, teamIDs []string) ([]analytics.TeamShareMetric, error) {
	season = strings.TrimSpace(season)
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.ListTeamShares", seasonAttrs(season, 0)...)
	defer span.End()

	if season == "" {
		return nil, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}

	snap, err := s.loadSeason(ctx, season, snapshotScope{})
	if err != nil {
		return nil, err
	}

	rows, err := snap.teamShares()
	if err != nil {
		return nil, err
	}
	return filterTeams(rows, teamIDs, func(r analytics.TeamShareMetric) string { return r.TeamID }), nil
}

// ListGoalkeeperPerformance returns goalkeepers above the minutes floor, best xGOT delta first.
func (s *AnalyticsService) ListGoalkeeperPerformance(ctx context.Context, season string, limit int) ([]analytics.GoalkeeperSeasonPerformance, error) {
	season = strings.TrimSpace(season)
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.ListGoalkeeperPerformance", seasonAttrs(season, 0)...)
	defer span.End()

	if season == "" {
		return nil, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}
	if limit <= 0 {
		limit = s.cfg.GoalkeepersLimit
	}

	snap, err := s.loadSeason(ctx, season, snapshotScope{players: true})
	if err != nil {
		return nil, err
	}
	return s.goalkeepersFrom(snap, limit)
}

func (s *AnalyticsService) roundFacts(ctx context.Context, matches []match.Match) ([]analytics.RoundFact, error) {
	matchIDs := make([]string, 0, len(matches))
	for _, m := range matches {
		matchIDs = append(matchIDs, m.ID)
	}

	stats, err := s.matchRepo.ListStatisticsByMatchIDs(ctx, matchIDs)
	if err != nil {
		return nil, fmt.Errorf("list match statistics: %w", err)
	}
	teams, err := s.teamsByID(ctx, teamIDsOf(matches))
	if err != nil {
		return nil, err
	}

	facts, err := analytics.DeriveRoundFacts(matches, teams, stats)
	if err != nil {
		return nil, fmt.Errorf("derive round facts: %w", err)
	}
	return facts, nil
}

func (s *AnalyticsService) leadersFrom(snap seasonSnapshot, limit int) ([]analytics.PlayerSeasonRate, error) {
	rows, err := snap.playerRates(s.cfg.PlayerMinMinutes)
	if err != nil {
		return nil, err
	}
	sortLeaders(rows)
	return truncate(rows, limit), nil
}

func (s *AnalyticsService) latestFormFrom(snap seasonSnapshot, teamIDs []string) ([]analytics.TeamFormWindow, error) {
	rows, err := snap.teamForm(s.cfg.FormWindow)
	if err != nil {
		return nil, err
	}

	latest := analytics.LatestFormByTeam(rows)
	out := make([]analytics.TeamFormWindow, 0, len(latest))
	for _, id := range teamIDsOf(snap.matches) {
		if row, ok := latest[id]; ok {
			out = append(out, row)
		}
	}
	return filterTeams(out, teamIDs, func(r analytics.TeamFormWindow) string { return r.TeamID }), nil
}

func (s *AnalyticsService) goalkeepersFrom(snap seasonSnapshot, limit int) ([]analytics.GoalkeeperSeasonPerformance, error) {
	rows, err := snap.goalkeepers(s.cfg.GoalkeeperMinMinutes)
	if err != nil {
		return nil, err
	}
	sortGoalkeepers(rows)
	return truncate(rows, limit), nil
}

func validateSeasonRound(season string, round int) error {
	if season == "" {
		return fmt.Errorf("%w: season is required", ErrInvalidInput)
	}
	if round < 1 {
		return fmt.Errorf("%w: round must be >= 1", ErrInvalidInput)
	}
	return nil
}
