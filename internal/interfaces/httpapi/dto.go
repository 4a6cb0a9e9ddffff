package httpapi

import (
	"time"

	"github.com/riskibarqy/match-recap/internal/domain/analytics"
	"github.com/riskibarqy/match-recap/internal/domain/recap"
	"github.com/riskibarqy/match-recap/internal/grounding"
	"github.com/riskibarqy/match-recap/internal/usecase"
)

type roundFactDTO struct {
	MatchID            string  `json:"match_id"`
	Season             string  `json:"season"`
	Round              int     `json:"round"`
	KickoffAt          string  `json:"kickoff_at"`
	HomeTeamID         string  `json:"home_team_id"`
	HomeTeam           string  `json:"home_team"`
	AwayTeamID         string  `json:"away_team_id"`
	AwayTeam           string  `json:"away_team"`
	HomeScore          *int    `json:"home_score"`
	AwayScore          *int    `json:"away_score"`
	Venue              string  `json:"venue,omitempty"`
	Attendance         *int    `json:"attendance,omitempty"`
	Finished           bool    `json:"finished"`
	HasStatistics      bool    `json:"has_statistics"`
	ShotsHome          int     `json:"shots_home"`
	ShotsAway          int     `json:"shots_away"`
	ShotsOnTargetHome  int     `json:"shots_on_target_home"`
	ShotsOnTargetAway  int     `json:"shots_on_target_away"`
	ShotsInsideBoxHome int     `json:"shots_inside_box_home"`
	ShotsInsideBoxAway int     `json:"shots_inside_box_away"`
	BigChancesHome     int     `json:"big_chances_home"`
	BigChancesAway     int     `json:"big_chances_away"`
	XGHome             float64 `json:"xg_home"`
	XGAway             float64 `json:"xg_away"`
	XGOTHome           float64 `json:"xgot_home"`
	XGOTAway           float64 `json:"xgot_away"`
	XGSetPieceHome     float64 `json:"xg_set_piece_home"`
	XGSetPieceAway     float64 `json:"xg_set_piece_away"`
}

type playerRateDTO struct {
	PlayerID           string  `json:"player_id"`
	PlayerName         string  `json:"player_name"`
	TeamID             string  `json:"team_id"`
	Appearances        int     `json:"appearances"`
	Minutes            int     `json:"minutes"`
	Goals              int     `json:"goals"`
	Assists            int     `json:"assists"`
	Shots              int     `json:"shots"`
	ShotsOnTarget      int     `json:"shots_on_target"`
	XG                 float64 `json:"xg"`
	XA                 float64 `json:"xa"`
	GoalsPer90         float64 `json:"g90"`
	AssistsPer90       float64 `json:"a90"`
	ShotsPer90         float64 `json:"shots90"`
	ShotsOnTargetPer90 float64 `json:"sot90"`
	XGPer90            float64 `json:"xg90"`
	XAPer90            float64 `json:"xa90"`
}

type teamFormDTO struct {
	TeamID       string  `json:"team_id"`
	TeamName     string  `json:"team_name"`
	MatchID      string  `json:"match_id"`
	KickoffAt    string  `json:"kickoff_at"`
	Sequence     int     `json:"sequence"`
	Matches      int     `json:"matches"`
	Points       int     `json:"points"`
	GoalsFor     int     `json:"goals_for"`
	GoalsAgainst int     `json:"goals_against"`
	GoalDiff     int     `json:"goal_diff"`
	PointsAvg    float64 `json:"points_avg"`
}

type teamShareDTO struct {
	TeamID          string  `json:"team_id"`
	TeamName        string  `json:"team_name"`
	Matches         int     `json:"matches"`
	Shots           int     `json:"shots"`
	ShotsInsideBox  int     `json:"shots_inside_box"`
	BigChances      int     `json:"big_chances"`
	XG              float64 `json:"xg"`
	XGSetPiece      float64 `json:"xg_set_piece"`
	BoxShare        float64 `json:"box_share"`
	XGSetPieceShare float64 `json:"xg_sp_share"`
}

type goalkeeperDTO struct {
	PlayerID      string  `json:"player_id"`
	PlayerName    string  `json:"player_name"`
	TeamID        string  `json:"team_id"`
	Appearances   int     `json:"appearances"`
	Minutes       int     `json:"minutes"`
	GoalsConceded int     `json:"goals_conceded"`
	XGOTDelta     float64 `json:"xgot_delta"`
}

type roundContextDTO struct {
	Season      string           `json:"season"`
	Round       int              `json:"round"`
	Headline    string           `json:"headline"`
	Bullets     []string         `json:"bullets"`
	Facts       []roundFactDTO   `json:"round_facts"`
	Form        []teamFormDTO    `json:"team_form"`
	Leaders     []playerRateDTO  `json:"leaders"`
	Shares      []teamShareDTO   `json:"shot_profiles"`
	Goalkeepers []goalkeeperDTO  `json:"goalkeepers"`
	FactsPanel  []grounding.Fact `json:"facts_panel"`
	Citations   []string         `json:"citations"`
}

type summariseRoundRequest struct {
	Season string `json:"season" validate:"required,max=32"`
	Round  int    `json:"round" validate:"required,gt=0"`
	Angle  string `json:"angle" validate:"omitempty,max=200"`
}

type roundSummaryDTO struct {
	Season     string           `json:"season"`
	Round      int              `json:"round"`
	Angle      string           `json:"angle,omitempty"`
	Headline   string           `json:"headline"`
	Bullets    []string         `json:"bullets"`
	Body       string           `json:"body"`
	Model      string           `json:"model,omitempty"`
	FactsPanel []grounding.Fact `json:"facts_panel"`
	Citations  []string         `json:"citations"`
	Ungrounded []string         `json:"ungrounded"`
}

func roundFactToDTO(v analytics.RoundFact) roundFactDTO {
	return roundFactDTO{
		MatchID:            v.MatchID,
		Season:             v.Season,
		Round:              v.Round,
		KickoffAt:          formatTime(v.KickoffAt),
		HomeTeamID:         v.HomeTeamID,
		HomeTeam:           v.HomeTeam,
		AwayTeamID:         v.AwayTeamID,
		AwayTeam:           v.AwayTeam,
		HomeScore:          v.HomeScore,
		AwayScore:          v.AwayScore,
		Venue:              v.Venue,
		Attendance:         v.Attendance,
		Finished:           v.Finished,
		HasStatistics:      v.HasStatistics,
		ShotsHome:          v.ShotsHome,
		ShotsAway:          v.ShotsAway,
		ShotsOnTargetHome:  v.ShotsOnTargetHome,
		ShotsOnTargetAway:  v.ShotsOnTargetAway,
		ShotsInsideBoxHome: v.ShotsInsideBoxHome,
		ShotsInsideBoxAway: v.ShotsInsideBoxAway,
		BigChancesHome:     v.BigChancesHome,
		BigChancesAway:     v.BigChancesAway,
		XGHome:             v.XGHome,
		XGAway:             v.XGAway,
		XGOTHome:           v.XGOTHome,
		XGOTAway:           v.XGOTAway,
		XGSetPieceHome:     v.XGSetPieceHome,
		XGSetPieceAway:     v.XGSetPieceAway,
	}
}

func playerRateToDTO(v analytics.PlayerSeasonRate) playerRateDTO {
	return playerRateDTO{
		PlayerID:           v.PlayerID,
		PlayerName:         v.PlayerName,
		TeamID:             v.TeamID,
		Appearances:        v.Appearances,
		Minutes:            v.Minutes,
		Goals:              v.Goals,
		Assists:            v.Assists,
		Shots:              v.Shots,
		ShotsOnTarget:      v.ShotsOnTarget,
		XG:                 v.XG,
		XA:                 v.XA,
		GoalsPer90:         v.GoalsPer90,
		AssistsPer90:       v.AssistsPer90,
		ShotsPer90:         v.ShotsPer90,
		ShotsOnTargetPer90: v.ShotsOnTargetPer90,
		XGPer90:            v.XGPer90,
		XAPer90:            v.XAPer90,
	}
}

func teamFormToDTO(v analytics.TeamFormWindow) teamFormDTO {
	return teamFormDTO{
		TeamID:       v.TeamID,
		TeamName:     v.TeamName,
		MatchID:      v.MatchID,
		KickoffAt:    formatTime(v.KickoffAt),
		Sequence:     v.Sequence,
		Matches:      v.Matches,
		Points:       v.Points,
		GoalsFor:     v.GoalsFor,
		GoalsAgainst: v.GoalsAgainst,
		GoalDiff:     v.GoalDiff,
		PointsAvg:    v.PointsAvg,
	}
}

func teamShareToDTO(v analytics.TeamShareMetric) teamShareDTO {
	return teamShareDTO{
		TeamID:          v.TeamID,
		TeamName:        v.TeamName,
		Matches:         v.Matches,
		Shots:           v.Shots,
		ShotsInsideBox:  v.ShotsInsideBox,
		BigChances:      v.BigChances,
		XG:              v.XG,
		XGSetPiece:      v.XGSetPiece,
		BoxShare:        v.BoxShare,
		XGSetPieceShare: v.XGSetPieceShare,
	}
}

func goalkeeperToDTO(v analytics.GoalkeeperSeasonPerformance) goalkeeperDTO {
	return goalkeeperDTO{
		PlayerID:      v.PlayerID,
		PlayerName:    v.PlayerName,
		TeamID:        v.TeamID,
		Appearances:   v.Appearances,
		Minutes:       v.Minutes,
		GoalsConceded: v.GoalsConceded,
		XGOTDelta:     v.XGOTDelta,
	}
}

func roundContextToDTO(rc recap.RoundContext) roundContextDTO {
	facts := grounding.BuildFactsPanel(rc)
	headline, bullets := grounding.Headline(rc)

	return roundContextDTO{
		Season:      rc.Season,
		Round:       rc.Round,
		Headline:    headline,
		Bullets:     bullets,
		Facts:       mapSlice(rc.Facts, roundFactToDTO),
		Form:        mapSlice(rc.Form, teamFormToDTO),
		Leaders:     mapSlice(rc.Leaders, playerRateToDTO),
		Shares:      mapSlice(rc.Shares, teamShareToDTO),
		Goalkeepers: mapSlice(rc.Goalkeepers, goalkeeperToDTO),
		FactsPanel:  facts,
		Citations:   grounding.Citations(facts),
	}
}

func roundSummaryToDTO(v usecase.RoundSummary) roundSummaryDTO {
	return roundSummaryDTO{
		Season:     v.Season,
		Round:      v.Round,
		Angle:      v.Angle,
		Headline:   v.Headline,
		Bullets:    v.Bullets,
		Body:       v.Body,
		Model:      v.Model,
		FactsPanel: v.Facts,
		Citations:  v.Citations,
		Ungrounded: v.Ungrounded,
	}
}

func mapSlice[T, D any](items []T, fn func(T) D) []D {
	out := make([]D, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}

func formatTime(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}
