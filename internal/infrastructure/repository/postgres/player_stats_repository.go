package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/match-recap/internal/domain/playerstats"
	qb "github.com/riskibarqy/match-recap/internal/platform/querybuilder"
)

type PlayerStatsRepository struct {
	db           *sqlx.DB
	queryTimeout time.Duration
}

func NewPlayerStatsRepository(db *sqlx.DB, queryTimeout time.Duration) *PlayerStatsRepository {
	return &PlayerStatsRepository{db: db, queryTimeout: queryTimeout}
}

func (r *PlayerStatsRepository) ListBySeason(ctx context.Context, season string) ([]playerstats.MatchStat, error) {
	query, args, err := qb.Select(
		"pms.player_public_id",
		"pms.match_public_id",
		"pms.team_public_id",
		"m.season",
		"pms.minutes",
		"pms.goals",
		"pms.assists",
		"pms.shots",
		"pms.shots_on_target",
		"pms.xg",
		"pms.xa",
		"pms.is_goalkeeper",
		"pms.goals_conceded",
		"pms.goals_prevented",
	).From("player_match_statistics pms").
		Join("matches m", "m.public_id = pms.match_public_id").
		Where(
			qb.Eq("m.season", season),
			qb.IsNull("pms.deleted_at"),
			qb.IsNull("m.deleted_at"),
		).
		OrderBy("m.kickoff_at", "pms.match_public_id", "pms.player_public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list player match stats by season query: %w", err)
	}

	ctx, cancel := withQueryTimeout(ctx, r.queryTimeout)
	defer cancel()

	var rows []playerMatchStatRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list player match stats by season: %w", err)
	}

	out := make([]playerstats.MatchStat, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerstats.MatchStat{
			PlayerID:       row.PlayerID,
			MatchID:        row.MatchID,
			TeamID:         row.TeamID,
			Season:         row.Season,
			Minutes:        row.Minutes,
			Goals:          row.Goals,
			Assists:        row.Assists,
			Shots:          row.Shots,
			ShotsOnTarget:  row.ShotsOnTarget,
			XG:             nullFloat64ToFloat64(row.XG),
			XA:             nullFloat64ToFloat64(row.XA),
			IsGoalkeeper:   row.IsGoalkeeper,
			GoalsConceded:  nullInt64ToInt(row.GoalsConceded),
			GoalsPrevented: nullFloat64ToFloat64(row.GoalsPrevented),
		})
	}

	return out, nil
}
