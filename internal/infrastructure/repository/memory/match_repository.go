package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/match-recap/internal/domain/match"
)

type MatchRepository struct {
	mu         sync.RWMutex
	matches    []match.Match
	statistics map[string]match.Statistics
}

func NewMatchRepository(matches []match.Match, statistics []match.Statistics) *MatchRepository {
	items := append([]match.Match(nil), matches...)
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].KickoffAt.Equal(items[j].KickoffAt) {
			return items[i].KickoffAt.Before(items[j].KickoffAt)
		}
		return items[i].ID < items[j].ID
	})

	index := make(map[string]match.Statistics, len(statistics))
	for _, s := range statistics {
		index[s.MatchID] = s
	}

	return &MatchRepository{matches: items, statistics: index}
}

func (r *MatchRepository) ListBySeason(_ context.Context, season string) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.matches))
	for _, item := range r.matches {
		if item.Season == season {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *MatchRepository) ListBySeasonAndRound(_ context.Context, season string, round int) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0)
	for _, item := range r.matches {
		if item.Season == season && item.Round == round {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.matches {
		if item.ID == matchID {
			return item, true, nil
		}
	}
	return match.Match{}, false, nil
}

func (r *MatchRepository) ListStatisticsByMatchIDs(_ context.Context, matchIDs []string) (map[string]match.Statistics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]match.Statistics, len(matchIDs))
	for _, id := range matchIDs {
		if s, ok := r.statistics[id]; ok {
			out[id] = s
		}
	}
	return out, nil
}
