package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/match-recap/internal/domain/team"
	qb "github.com/riskibarqy/match-recap/internal/platform/querybuilder"
)

type TeamRepository struct {
	db           *sqlx.DB
	queryTimeout time.Duration
}

func NewTeamRepository(db *sqlx.DB, queryTimeout time.Duration) *TeamRepository {
	return &TeamRepository{db: db, queryTimeout: queryTimeout}
}

func (r *TeamRepository) ListByIDs(ctx context.Context, teamIDs []string) ([]team.Team, error) {
	if len(teamIDs) == 0 {
		return []team.Team{}, nil
	}

	query, args, err := qb.Select("*").From("teams").
		Where(
			qb.Any("public_id", pq.Array(teamIDs)),
			qb.IsNull("deleted_at"),
		).
		OrderBy("public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams by ids query: %w", err)
	}

	ctx, cancel := withQueryTimeout(ctx, r.queryTimeout)
	defer cancel()

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams by ids: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromRow(row))
	}

	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(
			qb.Eq("public_id", teamID),
			qb.IsNull("deleted_at"),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build get team query: %w", err)
	}

	ctx, cancel := withQueryTimeout(ctx, r.queryTimeout)
	defer cancel()

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team: %w", err)
	}

	return teamFromRow(row), true, nil
}

func teamFromRow(row teamTableModel) team.Team {
	return team.Team{
		ID:    row.PublicID,
		Name:  row.Name,
		Short: nullStringToString(row.Short),
		Record: team.Record{
			Wins:   row.Wins,
			Draws:  row.Draws,
			Losses: row.Losses,
		},
	}
}
