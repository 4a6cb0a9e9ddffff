package analytics

import (
	"errors"
	"time"
)

const (
	DefaultPlayerMinMinutes     = 300
	DefaultGoalkeeperMinMinutes = 180
	DefaultFormWindow           = 5

	pointsWin  = 3
	pointsDraw = 1
)

// ErrUnresolvableReference marks fact rows pointing at a team or player the fact store does not know.
var ErrUnresolvableReference = errors.New("unresolvable reference")

// RoundFact is one denormalized row per match: match, both teams and statistics.
// Statistic fields are zero when the match has no statistics row.
type RoundFact struct {
	MatchID            string
	Season             string
	Round              int
	KickoffAt          time.Time
	HomeTeamID         string
	HomeTeam           string
	AwayTeamID         string
	AwayTeam           string
	HomeScore          *int
	AwayScore          *int
	Venue              string
	Attendance         *int
	Finished           bool
	HasStatistics      bool
	ShotsHome          int
	ShotsAway          int
	ShotsOnTargetHome  int
	ShotsOnTargetAway  int
	ShotsInsideBoxHome int
	ShotsInsideBoxAway int
	BigChancesHome     int
	BigChancesAway     int
	XGHome             float64
	XGAway             float64
	XGOTHome           float64
	XGOTAway           float64
	XGSetPieceHome     float64
	XGSetPieceAway     float64
}

// PlayerSeasonRate is a player's season totals for one team with per-90 rates.
type PlayerSeasonRate struct {
	Season             string
	PlayerID           string
	PlayerName         string
	TeamID             string
	Appearances        int
	Minutes            int
	Goals              int
	Assists            int
	Shots              int
	ShotsOnTarget      int
	XG                 float64
	XA                 float64
	GoalsPer90         float64
	AssistsPer90       float64
	ShotsPer90         float64
	ShotsOnTargetPer90 float64
	XGPer90            float64
	XAPer90            float64
}

// TeamFormWindow summarizes the completed matches preceding one match of a team's season.
// Sequence is the 1-based position of MatchID in the team's as-played sequence.
type TeamFormWindow struct {
	Season       string
	TeamID       string
	TeamName     string
	MatchID      string
	KickoffAt    time.Time
	Sequence     int
	Matches      int
	Points       int
	GoalsFor     int
	GoalsAgainst int
	GoalDiff     int
	PointsAvg    float64
}

// TeamShareMetric holds season shot and xG shares for one team.
type TeamShareMetric struct {
	Season          string
	TeamID          string
	TeamName        string
	Matches         int
	Shots           int
	ShotsInsideBox  int
	BigChances      int
	XG              float64
	XGSetPiece      float64
	BoxShare        float64
	XGSetPieceShare float64
}

// GoalkeeperSeasonPerformance is a goalkeeper's season performance delta for one team.
type GoalkeeperSeasonPerformance struct {
	Season        string
	PlayerID      string
	PlayerName    string
	TeamID        string
	Appearances   int
	Minutes       int
	GoalsConceded int
	XGOTDelta     float64
}

func ratio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

func per90(total float64, minutes int) float64 {
	if minutes <= 0 {
		return 0
	}
	return total * 90 / float64(minutes)
}
