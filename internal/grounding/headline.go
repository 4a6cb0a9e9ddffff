package grounding

import (
	"fmt"

	"github.com/riskibarqy/match-recap/internal/domain/recap"
)

// Headline builds the recap headline and summary bullets. Every figure it
// quotes also appears in the facts panel.
func Headline(rc recap.RoundContext) (string, []string) {
	if len(rc.Facts) == 0 {
		return "Round Recap", []string{"No fixtures found."}
	}

	headline := fmt.Sprintf("Margins matter in Round %d", rc.Round)
	bullets := make([]string, 0, 3)

	var (
		bestXG   float64
		bestTeam string
	)
	for _, m := range rc.Facts {
		if !m.HasStatistics {
			continue
		}
		if bestTeam == "" || m.XGHome > bestXG {
			bestXG, bestTeam = m.XGHome, m.HomeTeam
		}
		if m.XGAway > bestXG {
			bestXG, bestTeam = m.XGAway, m.AwayTeam
		}
	}
	if bestTeam != "" {
		bullets = append(bullets, fmt.Sprintf("Top xG in round: %s (%s)", bestTeam, formatDecimal(bestXG)))
	}

	bestForm := -1
	for i, f := range rc.Form {
		if f.Matches == 0 {
			continue
		}
		if bestForm < 0 || f.PointsAvg > rc.Form[bestForm].PointsAvg {
			bestForm = i
		}
	}
	if bestForm >= 0 {
		f := rc.Form[bestForm]
		bullets = append(bullets, fmt.Sprintf("Best recent form: %s (%s points per game)", f.TeamName, formatDecimal(f.PointsAvg)))
	} else {
		bullets = append(bullets, "Best recent form: see Facts Panel")
	}

	bullets = append(bullets, "Set-piece signals emerging across the league.")
	return headline, bullets
}
