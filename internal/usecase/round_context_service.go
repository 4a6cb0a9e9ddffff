package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/match-recap/internal/domain/analytics"
	"github.com/riskibarqy/match-recap/internal/domain/match"
	"github.com/riskibarqy/match-recap/internal/domain/recap"
	"github.com/riskibarqy/match-recap/internal/platform/logging"
)

const defaultContextWorkers = 4

// RoundContextService assembles the verified context of a round: facts of its
// matches plus season form, per-90 leaders, shares and goalkeeper rows.
type RoundContextService struct {
	analytics *AnalyticsService
	workers   int
	logger    *logging.Logger
}

func NewRoundContextService(analyticsService *AnalyticsService, workers int, logger *logging.Logger) *RoundContextService {
	if logger == nil {
		logger = logging.Default()
	}
	if workers <= 0 {
		workers = defaultContextWorkers
	}

	return &RoundContextService{
		analytics: analyticsService,
		workers:   workers,
		logger:    logger,
	}
}

func (s *RoundContextService) BuildRoundContext(ctx context.Context, season string, round int) (recap.RoundContext, error) {
	season = strings.TrimSpace(season)
	ctx, span := startUsecaseSpan(ctx, "usecase.RoundContextService.BuildRoundContext", seasonAttrs(season, round)...)
	defer span.End()

	if err := validateSeasonRound(season, round); err != nil {
		return recap.RoundContext{}, err
	}

	start := time.Now()
	snap, err := s.analytics.loadSeason(ctx, season, snapshotScope{players: true})
	if err != nil {
		return recap.RoundContext{}, err
	}

	roundMatches := make([]match.Match, 0)
	for _, m := range snap.matches {
		if m.Round == round {
			roundMatches = append(roundMatches, m)
		}
	}
	if len(roundMatches) == 0 {
		return recap.RoundContext{}, fmt.Errorf("%w: season=%s round=%d", ErrNotFound, season, round)
	}

	facts, err := analytics.DeriveRoundFacts(roundMatches, snap.teams, snap.statistics)
	if err != nil {
		return recap.RoundContext{}, fmt.Errorf("derive round facts: %w", err)
	}

	rc := recap.RoundContext{Season: season, Round: round, Facts: facts}
	teamIDs := rc.TeamIDs()
	cfg := s.analytics.Config()

	tasks := []func() error{
		func() (err error) {
			rc.Form, err = s.analytics.latestFormFrom(snap, teamIDs)
			return err
		},
		func() (err error) {
			rc.Leaders, err = s.analytics.leadersFrom(snap, cfg.LeadersLimit)
			return err
		},
		func() error {
			shares, err := snap.teamShares()
			if err != nil {
				return err
			}
			rc.Shares = filterTeams(shares, teamIDs, func(r analytics.TeamShareMetric) string { return r.TeamID })
			return nil
		},
		func() (err error) {
			rc.Goalkeepers, err = s.analytics.goalkeepersFrom(snap, cfg.GoalkeepersLimit)
			return err
		},
	}
	if err := s.runDerivations(tasks); err != nil {
		return recap.RoundContext{}, err
	}

	s.logger.DebugContext(ctx, "round context assembled",
		"season", season,
		"round", round,
		"matches", len(rc.Facts),
		"form_rows", len(rc.Form),
		"leaders", len(rc.Leaders),
		"goalkeepers", len(rc.Goalkeepers),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return rc, nil
}

// runDerivations runs independent derivations on a bounded pool and returns the first error.
// Tasks write distinct fields of the round context.
func (s *RoundContextService) runDerivations(tasks []func() error) error {
	workerCount := s.workers
	if workerCount > len(tasks) {
		workerCount = len(tasks)
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		workers  sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for _, task := range tasks {
		task := task
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			if err := task(); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}); err != nil {
			workers.Done()
			workers.Wait()
			return fmt.Errorf("submit derivation to worker pool: %w", err)
		}
	}

	workers.Wait()
	return firstErr
}
