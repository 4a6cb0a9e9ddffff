package postgres

import (
	"database/sql"
	"time"
)

type matchTableModel struct {
	PublicID   string         `db:"public_id"`
	Season     string         `db:"season"`
	Round      int            `db:"round"`
	KickoffAt  time.Time      `db:"kickoff_at"`
	HomeTeamID string         `db:"home_team_public_id"`
	AwayTeamID string         `db:"away_team_public_id"`
	HomeScore  sql.NullInt64  `db:"home_score"`
	AwayScore  sql.NullInt64  `db:"away_score"`
	Venue      sql.NullString `db:"venue"`
	Attendance sql.NullInt64  `db:"attendance"`
	Finished   bool           `db:"finished"`
}

// Every statistic column is nullable; null reads as zero.
type matchStatisticsTableModel struct {
	MatchID            string          `db:"match_public_id"`
	ShotsHome          sql.NullInt64   `db:"shots_home"`
	ShotsAway          sql.NullInt64   `db:"shots_away"`
	ShotsOnTargetHome  sql.NullInt64   `db:"shots_on_target_home"`
	ShotsOnTargetAway  sql.NullInt64   `db:"shots_on_target_away"`
	ShotsInsideBoxHome sql.NullInt64   `db:"shots_inside_box_home"`
	ShotsInsideBoxAway sql.NullInt64   `db:"shots_inside_box_away"`
	BigChancesHome     sql.NullInt64   `db:"big_chances_home"`
	BigChancesAway     sql.NullInt64   `db:"big_chances_away"`
	XGHome             sql.NullFloat64 `db:"xg_home"`
	XGAway             sql.NullFloat64 `db:"xg_away"`
	XGOTHome           sql.NullFloat64 `db:"xgot_home"`
	XGOTAway           sql.NullFloat64 `db:"xgot_away"`
	XGSetPieceHome     sql.NullFloat64 `db:"xg_set_piece_home"`
	XGSetPieceAway     sql.NullFloat64 `db:"xg_set_piece_away"`
}

var matchColumns = []string{
	"public_id",
	"season",
	"round",
	"kickoff_at",
	"home_team_public_id",
	"away_team_public_id",
	"home_score",
	"away_score",
	"venue",
	"attendance",
	"finished",
}

var matchStatisticsColumns = []string{
	"match_public_id",
	"shots_home",
	"shots_away",
	"shots_on_target_home",
	"shots_on_target_away",
	"shots_inside_box_home",
	"shots_inside_box_away",
	"big_chances_home",
	"big_chances_away",
	"xg_home",
	"xg_away",
	"xgot_home",
	"xgot_away",
	"xg_set_piece_home",
	"xg_set_piece_away",
}
