package postgres

import "database/sql"

type playerMatchStatRow struct {
	PlayerID       string          `db:"player_public_id"`
	MatchID        string          `db:"match_public_id"`
	TeamID         string          `db:"team_public_id"`
	Season         string          `db:"season"`
	Minutes        int             `db:"minutes"`
	Goals          int             `db:"goals"`
	Assists        int             `db:"assists"`
	Shots          int             `db:"shots"`
	ShotsOnTarget  int             `db:"shots_on_target"`
	XG             sql.NullFloat64 `db:"xg"`
	XA             sql.NullFloat64 `db:"xa"`
	IsGoalkeeper   bool            `db:"is_goalkeeper"`
	GoalsConceded  sql.NullInt64   `db:"goals_conceded"`
	GoalsPrevented sql.NullFloat64 `db:"goals_prevented"`
}
