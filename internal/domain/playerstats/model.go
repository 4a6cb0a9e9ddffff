package playerstats

// MatchStat is one player's statistics for one match.
// GoalsConceded and GoalsPrevented are only meaningful when IsGoalkeeper is set;
// GoalsPrevented is signed so that positive means better than expectation.
type MatchStat struct {
	PlayerID       string
	MatchID        string
	TeamID         string
	Season         string
	Minutes        int
	Goals          int
	Assists        int
	Shots          int
	ShotsOnTarget  int
	XG             float64
	XA             float64
	IsGoalkeeper   bool
	GoalsConceded  int
	GoalsPrevented float64
}
