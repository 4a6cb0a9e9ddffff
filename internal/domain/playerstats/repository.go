package playerstats

import "context"

type Repository interface {
	ListBySeason(ctx context.Context, season string) ([]MatchStat, error)
}
