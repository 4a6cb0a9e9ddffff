package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/match-recap/internal/domain/playerstats"
)

type PlayerStatsRepository struct {
	mu       sync.RWMutex
	bySeason map[string][]playerstats.MatchStat
}

func NewPlayerStatsRepository(rows []playerstats.MatchStat) *PlayerStatsRepository {
	bySeason := make(map[string][]playerstats.MatchStat)
	for _, row := range rows {
		bySeason[row.Season] = append(bySeason[row.Season], row)
	}

	return &PlayerStatsRepository{bySeason: bySeason}
}

func (r *PlayerStatsRepository) ListBySeason(_ context.Context, season string) ([]playerstats.MatchStat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := r.bySeason[season]
	out := make([]playerstats.MatchStat, 0, len(rows))
	out = append(out, rows...)
	return out, nil
}
