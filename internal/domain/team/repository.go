package team

import "context"

// Repository describes team reads needed by derivations.
type Repository interface {
	ListByIDs(ctx context.Context, teamIDs []string) ([]Team, error)
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
}
