package recap

import "github.com/riskibarqy/match-recap/internal/domain/analytics"

// RoundContext is the verified data handed to generation for one round.
type RoundContext struct {
	Season      string
	Round       int
	Facts       []analytics.RoundFact
	Form        []analytics.TeamFormWindow
	Leaders     []analytics.PlayerSeasonRate
	Shares      []analytics.TeamShareMetric
	Goalkeepers []analytics.GoalkeeperSeasonPerformance
}

// TeamIDs returns the distinct teams playing in the round, in fixture order.
func (c RoundContext) TeamIDs() []string {
	seen := make(map[string]struct{}, len(c.Facts)*2)
	out := make([]string, 0, len(c.Facts)*2)
	for _, f := range c.Facts {
		for _, id := range []string{f.HomeTeamID, f.AwayTeamID} {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}

type Message struct {
	Role    string
	Content string
}

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Prompt is a chat completion request independent of any provider.
type Prompt struct {
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

type Completion struct {
	Text             string
	Model            string
	PromptTokens     int
	CompletionTokens int
}
