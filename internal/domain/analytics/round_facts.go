package analytics

import (
	"fmt"

	"github.com/riskibarqy/match-recap/internal/domain/match"
	"github.com/riskibarqy/match-recap/internal/domain/team"
)

// DeriveRoundFacts joins every match with both teams (required) and its
// statistics row (optional). Output order follows matches.
func DeriveRoundFacts(matches []match.Match, teams map[string]team.Team, stats map[string]match.Statistics) ([]RoundFact, error) {
	out := make([]RoundFact, 0, len(matches))
	for _, m := range matches {
		home, ok := teams[m.HomeTeamID]
		if !ok {
			return nil, fmt.Errorf("%w: match=%s home team=%s", ErrUnresolvableReference, m.ID, m.HomeTeamID)
		}
		away, ok := teams[m.AwayTeamID]
		if !ok {
			return nil, fmt.Errorf("%w: match=%s away team=%s", ErrUnresolvableReference, m.ID, m.AwayTeamID)
		}

		s, hasStats := stats[m.ID]
		out = append(out, RoundFact{
			MatchID:            m.ID,
			Season:             m.Season,
			Round:              m.Round,
			KickoffAt:          m.KickoffAt,
			HomeTeamID:         home.ID,
			HomeTeam:           home.Name,
			AwayTeamID:         away.ID,
			AwayTeam:           away.Name,
			HomeScore:          m.HomeScore,
			AwayScore:          m.AwayScore,
			Venue:              m.Venue,
			Attendance:         m.Attendance,
			Finished:           m.Finished,
			HasStatistics:      hasStats,
			ShotsHome:          s.Home.Shots,
			ShotsAway:          s.Away.Shots,
			ShotsOnTargetHome:  s.Home.ShotsOnTarget,
			ShotsOnTargetAway:  s.Away.ShotsOnTarget,
			ShotsInsideBoxHome: s.Home.ShotsInsideBox,
			ShotsInsideBoxAway: s.Away.ShotsInsideBox,
			BigChancesHome:     s.Home.BigChances,
			BigChancesAway:     s.Away.BigChances,
			XGHome:             s.Home.XG,
			XGAway:             s.Away.XG,
			XGOTHome:           s.Home.XGOT,
			XGOTAway:           s.Away.XGOT,
			XGSetPieceHome:     s.Home.XGSetPiece,
			XGSetPieceAway:     s.Away.XGSetPiece,
		})
	}

	return out, nil
}
