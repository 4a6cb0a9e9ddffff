package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/match-recap/internal/domain/match"
	qb "github.com/riskibarqy/match-recap/internal/platform/querybuilder"
)

type MatchRepository struct {
	db           *sqlx.DB
	queryTimeout time.Duration
}

func NewMatchRepository(db *sqlx.DB, queryTimeout time.Duration) *MatchRepository {
	return &MatchRepository{db: db, queryTimeout: queryTimeout}
}

func (r *MatchRepository) ListBySeason(ctx context.Context, season string) ([]match.Match, error) {
	query, args, err := qb.Select(matchColumns...).From("matches").
		Where(
			qb.Eq("season", season),
			qb.IsNull("deleted_at"),
		).
		OrderBy("kickoff_at", "public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches by season query: %w", err)
	}

	return r.selectMatches(ctx, query, args, "select matches by season")
}

func (r *MatchRepository) ListBySeasonAndRound(ctx context.Context, season string, round int) ([]match.Match, error) {
	query, args, err := qb.Select(matchColumns...).From("matches").
		Where(
			qb.Eq("season", season),
			qb.Eq("round", round),
			qb.IsNull("deleted_at"),
		).
		OrderBy("kickoff_at", "public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches by round query: %w", err)
	}

	return r.selectMatches(ctx, query, args, "select matches by round")
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	query, args, err := qb.Select(matchColumns...).From("matches").
		Where(
			qb.Eq("public_id", matchID),
			qb.IsNull("deleted_at"),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match query: %w", err)
	}

	ctx, cancel := withQueryTimeout(ctx, r.queryTimeout)
	defer cancel()

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match: %w", err)
	}

	return matchFromRow(row), true, nil
}

func (r *MatchRepository) ListStatisticsByMatchIDs(ctx context.Context, matchIDs []string) (map[string]match.Statistics, error) {
	out := make(map[string]match.Statistics, len(matchIDs))
	if len(matchIDs) == 0 {
		return out, nil
	}

	query, args, err := qb.Select(matchStatisticsColumns...).From("match_statistics").
		Where(qb.Any("match_public_id", pq.Array(matchIDs))).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select match statistics query: %w", err)
	}

	ctx, cancel := withQueryTimeout(ctx, r.queryTimeout)
	defer cancel()

	var rows []matchStatisticsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select match statistics: %w", err)
	}

	for _, row := range rows {
		out[row.MatchID] = statisticsFromRow(row)
	}

	return out, nil
}

func (r *MatchRepository) selectMatches(ctx context.Context, query string, args []any, op string) ([]match.Match, error) {
	ctx, cancel := withQueryTimeout(ctx, r.queryTimeout)
	defer cancel()

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}

	return out, nil
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:         row.PublicID,
		Season:     row.Season,
		Round:      row.Round,
		KickoffAt:  row.KickoffAt,
		HomeTeamID: row.HomeTeamID,
		AwayTeamID: row.AwayTeamID,
		HomeScore:  nullInt64ToIntPtr(row.HomeScore),
		AwayScore:  nullInt64ToIntPtr(row.AwayScore),
		Venue:      nullStringToString(row.Venue),
		Attendance: nullInt64ToIntPtr(row.Attendance),
		Finished:   row.Finished,
	}
}

func statisticsFromRow(row matchStatisticsTableModel) match.Statistics {
	return match.Statistics{
		MatchID: row.MatchID,
		Home: match.SideStatistics{
			Shots:          nullInt64ToInt(row.ShotsHome),
			ShotsOnTarget:  nullInt64ToInt(row.ShotsOnTargetHome),
			ShotsInsideBox: nullInt64ToInt(row.ShotsInsideBoxHome),
			BigChances:     nullInt64ToInt(row.BigChancesHome),
			XG:             nullFloat64ToFloat64(row.XGHome),
			XGOT:           nullFloat64ToFloat64(row.XGOTHome),
			XGSetPiece:     nullFloat64ToFloat64(row.XGSetPieceHome),
		},
		Away: match.SideStatistics{
			Shots:          nullInt64ToInt(row.ShotsAway),
			ShotsOnTarget:  nullInt64ToInt(row.ShotsOnTargetAway),
			ShotsInsideBox: nullInt64ToInt(row.ShotsInsideBoxAway),
			BigChances:     nullInt64ToInt(row.BigChancesAway),
			XG:             nullFloat64ToFloat64(row.XGAway),
			XGOT:           nullFloat64ToFloat64(row.XGOTAway),
			XGSetPiece:     nullFloat64ToFloat64(row.XGSetPieceAway),
		},
	}
}
