package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/match-recap/internal/domain/player"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	players map[string]player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	index := make(map[string]player.Player, len(players))
	for _, p := range players {
		index[p.ID] = p
	}

	return &PlayerRepository{players: index}
}

func (r *PlayerRepository) GetByIDs(_ context.Context, playerIDs []string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(playerIDs))
	for _, id := range playerIDs {
		p, ok := r.players[id]
		if !ok {
			continue
		}
		out = append(out, p)
	}

	return out, nil
}
