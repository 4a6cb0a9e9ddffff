package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/match-recap/internal/domain/player"
	qb "github.com/riskibarqy/match-recap/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db           *sqlx.DB
	queryTimeout time.Duration
}

func NewPlayerRepository(db *sqlx.DB, queryTimeout time.Duration) *PlayerRepository {
	return &PlayerRepository{db: db, queryTimeout: queryTimeout}
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, playerIDs []string) ([]player.Player, error) {
	if len(playerIDs) == 0 {
		return []player.Player{}, nil
	}

	query, args, err := qb.Select("*").From("players").
		Where(
			qb.Any("public_id", pq.Array(playerIDs)),
			qb.IsNull("deleted_at"),
		).
		OrderBy("public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players by ids query: %w", err)
	}

	ctx, cancel := withQueryTimeout(ctx, r.queryTimeout)
	defer cancel()

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players by ids: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, player.Player{
			ID:   row.PublicID,
			Name: row.Name,
		})
	}

	return out, nil
}
