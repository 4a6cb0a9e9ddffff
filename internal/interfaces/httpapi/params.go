package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/match-recap/internal/usecase"
)

func pathSeason(r *http.Request) string {
	return strings.TrimSpace(r.PathValue("season"))
}

func pathRound(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.PathValue("round"))
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: round must be positive integer", usecase.ErrInvalidInput)
	}
	return v, nil
}

// queryLimit returns 0 when the parameter is absent so services apply their configured default.
func queryLimit(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("limit"))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: limit must be positive integer", usecase.ErrInvalidInput)
	}
	return v, nil
}

// queryTeamIDs accepts repeated team_id parameters as well as comma separated values.
func queryTeamIDs(r *http.Request) []string {
	out := make([]string, 0)
	for _, raw := range r.URL.Query()["team_id"] {
		for _, part := range strings.Split(raw, ",") {
			if id := strings.TrimSpace(part); id != "" {
				out = append(out, id)
			}
		}
	}
	return out
}
