package usecase

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/riskibarqy/match-recap/internal/domain/analytics"
	"github.com/riskibarqy/match-recap/internal/domain/recap"
)

const recapSystemPrompt = "You are a precise, citation-aware sports analyst. " +
	"Only use figures present in the supplied data and never invent statistics."

type promptRoundFact struct {
	MatchID    string  `json:"match_id"`
	HomeTeam   string  `json:"home_team"`
	AwayTeam   string  `json:"away_team"`
	HomeScore  *int    `json:"home_score"`
	AwayScore  *int    `json:"away_score"`
	Venue      string  `json:"venue,omitempty"`
	Attendance *int    `json:"attendance,omitempty"`
	Finished   bool    `json:"finished"`
	ShotsHome  int     `json:"shots_home"`
	ShotsAway  int     `json:"shots_away"`
	XGHome     float64 `json:"xg_home"`
	XGAway     float64 `json:"xg_away"`
	XGOTHome   float64 `json:"xgot_home"`
	XGOTAway   float64 `json:"xgot_away"`
}

type promptForm struct {
	Team         string  `json:"team"`
	Matches      int     `json:"matches"`
	Points       int     `json:"points"`
	GoalsFor     int     `json:"goals_for"`
	GoalsAgainst int     `json:"goals_against"`
	PointsAvg    float64 `json:"points_avg"`
}

type promptLeader struct {
	Player     string  `json:"player_name"`
	TeamID     string  `json:"team_id"`
	Minutes    int     `json:"minutes"`
	GoalsPer90 float64 `json:"g90"`
	XGPer90    float64 `json:"xg90"`
	XAPer90    float64 `json:"xa90"`
}

type promptShare struct {
	Team            string  `json:"team"`
	BoxShare        float64 `json:"box_share"`
	BigChances      int     `json:"big_chances"`
	XGSetPieceShare float64 `json:"xg_sp_share"`
}

type promptGoalkeeper struct {
	Player    string  `json:"player_name"`
	Minutes   int     `json:"minutes"`
	XGOTDelta float64 `json:"xgot_delta"`
}

type promptPayload struct {
	Season      string             `json:"season"`
	Round       int                `json:"round"`
	RoundFacts  []promptRoundFact  `json:"round_facts"`
	TeamForm    []promptForm       `json:"team_form"`
	Leaders     []promptLeader     `json:"leaders"`
	Shares      []promptShare      `json:"shot_profiles"`
	Goalkeepers []promptGoalkeeper `json:"gk"`
}

func buildRecapPrompt(rc recap.RoundContext, angle string, maxTokens int, temperature float64) (recap.Prompt, error) {
	payload := promptPayload{
		Season:      rc.Season,
		Round:       rc.Round,
		RoundFacts:  make([]promptRoundFact, 0, len(rc.Facts)),
		TeamForm:    make([]promptForm, 0, len(rc.Form)),
		Leaders:     make([]promptLeader, 0, len(rc.Leaders)),
		Shares:      make([]promptShare, 0, len(rc.Shares)),
		Goalkeepers: make([]promptGoalkeeper, 0, len(rc.Goalkeepers)),
	}
	for _, f := range rc.Facts {
		payload.RoundFacts = append(payload.RoundFacts, promptRoundFactFrom(f))
	}
	for _, f := range rc.Form {
		payload.TeamForm = append(payload.TeamForm, promptForm{
			Team:         f.TeamName,
			Matches:      f.Matches,
			Points:       f.Points,
			GoalsFor:     f.GoalsFor,
			GoalsAgainst: f.GoalsAgainst,
			PointsAvg:    f.PointsAvg,
		})
	}
	for _, l := range rc.Leaders {
		payload.Leaders = append(payload.Leaders, promptLeader{
			Player:     l.PlayerName,
			TeamID:     l.TeamID,
			Minutes:    l.Minutes,
			GoalsPer90: l.GoalsPer90,
			XGPer90:    l.XGPer90,
			XAPer90:    l.XAPer90,
		})
	}
	for _, sh := range rc.Shares {
		payload.Shares = append(payload.Shares, promptShare{
			Team:            sh.TeamName,
			BoxShare:        sh.BoxShare,
			BigChances:      sh.BigChances,
			XGSetPieceShare: sh.XGSetPieceShare,
		})
	}
	for _, g := range rc.Goalkeepers {
		payload.Goalkeepers = append(payload.Goalkeepers, promptGoalkeeper{
			Player:    g.PlayerName,
			Minutes:   g.Minutes,
			XGOTDelta: g.XGOTDelta,
		})
	}

	data, err := sonic.Marshal(payload)
	if err != nil {
		return recap.Prompt{}, fmt.Errorf("encode recap prompt data: %w", err)
	}

	angle = strings.TrimSpace(angle)
	if angle == "" {
		angle = "none"
	}

	var user strings.Builder
	fmt.Fprintf(&user, "Write a recap of round %d of the %s season.\n", rc.Round, rc.Season)
	fmt.Fprintf(&user, "Editorial angle: %s\n", angle)
	user.WriteString("Use only numbers that appear in the JSON below; round decimals to two places.\n\n")
	user.Write(data)

	return recap.Prompt{
		Messages: []recap.Message{
			{Role: recap.RoleSystem, Content: recapSystemPrompt},
			{Role: recap.RoleUser, Content: user.String()},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}, nil
}

func promptRoundFactFrom(f analytics.RoundFact) promptRoundFact {
	return promptRoundFact{
		MatchID:    f.MatchID,
		HomeTeam:   f.HomeTeam,
		AwayTeam:   f.AwayTeam,
		HomeScore:  f.HomeScore,
		AwayScore:  f.AwayScore,
		Venue:      f.Venue,
		Attendance: f.Attendance,
		Finished:   f.Finished,
		ShotsHome:  f.ShotsHome,
		ShotsAway:  f.ShotsAway,
		XGHome:     f.XGHome,
		XGAway:     f.XGAway,
		XGOTHome:   f.XGOTHome,
		XGOTAway:   f.XGOTAway,
	}
}
