package match

import (
	"fmt"
	"time"
)

// Match is one fixture as recorded by the fact store.
type Match struct {
	ID         string
	Season     string
	Round      int
	KickoffAt  time.Time
	HomeTeamID string
	AwayTeamID string
	HomeScore  *int
	AwayScore  *int
	Venue      string
	Attendance *int
	Finished   bool
}

// Validate checks the score/finished invariant: scores are populated iff the match is finished.
func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if m.HomeTeamID == "" || m.AwayTeamID == "" {
		return fmt.Errorf("match %s: home and away team ids are required", m.ID)
	}
	hasScore := m.HomeScore != nil && m.AwayScore != nil
	if m.Finished && !hasScore {
		return fmt.Errorf("match %s: finished match without final score", m.ID)
	}
	if !m.Finished && (m.HomeScore != nil || m.AwayScore != nil) {
		return fmt.Errorf("match %s: unfinished match with score", m.ID)
	}

	return nil
}

// Involves reports whether teamID plays in the match.
func (m Match) Involves(teamID string) bool {
	return m.HomeTeamID == teamID || m.AwayTeamID == teamID
}

// SideStatistics holds one side's values of a match statistics row.
type SideStatistics struct {
	Shots          int
	ShotsOnTarget  int
	ShotsInsideBox int
	BigChances     int
	XG             float64
	XGOT           float64
	XGSetPiece     float64
}

// Statistics is the per-match statistics row. Absent columns are already zero.
type Statistics struct {
	MatchID string
	Home    SideStatistics
	Away    SideStatistics
}
