package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/match-recap/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	teams map[string]team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	index := make(map[string]team.Team, len(teams))
	for _, item := range teams {
		index[item.ID] = item
	}

	return &TeamRepository{teams: index}
}

func (r *TeamRepository) ListByIDs(_ context.Context, teamIDs []string) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(teamIDs))
	seen := make(map[string]struct{}, len(teamIDs))
	for _, id := range teamIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		item, ok := r.teams[id]
		if !ok {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.teams[teamID]
	return item, ok, nil
}
