package match

import "context"

// Repository exposes read access to matches and their statistics rows.
type Repository interface {
	ListBySeason(ctx context.Context, season string) ([]Match, error)
	ListBySeasonAndRound(ctx context.Context, season string, round int) ([]Match, error)
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	// ListStatisticsByMatchIDs returns statistics keyed by match id. Matches without a row are absent from the map.
	ListStatisticsByMatchIDs(ctx context.Context, matchIDs []string) (map[string]Statistics, error)
}
