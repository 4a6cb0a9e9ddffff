package recap

import (
	"reflect"
	"testing"

	"github.com/riskibarqy/match-recap/internal/domain/analytics"
)

func TestRoundContextTeamIDs(t *testing.T) {
	t.Parallel()

	rc := RoundContext{
		Facts: []analytics.RoundFact{
			{MatchID: "m1", HomeTeamID: "ars", AwayTeamID: "che"},
			{MatchID: "m2", HomeTeamID: "liv", AwayTeamID: "ars"},
		},
	}

	got := rc.TeamIDs()
	want := []string{"ars", "che", "liv"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected team ids: got=%v want=%v", got, want)
	}
}
