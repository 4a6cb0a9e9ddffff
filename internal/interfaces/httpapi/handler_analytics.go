package httpapi

import (
	"net/http"
	"strings"

	"go.opentelemetry.io/otel/attribute"
)

func (h *Handler) ListRoundFacts(w http.ResponseWriter, r *http.Request) {
	season := pathSeason(r)
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRoundFacts", attribute.String("season", season))
	defer span.End()

	round, err := pathRound(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	facts, err := h.analyticsService.ListRoundFacts(ctx, season, round)
	if err != nil {
		h.logger.WarnContext(ctx, "list round facts failed", "season", season, "round", round, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(facts, roundFactToDTO))
}

func (h *Handler) GetMatchFact(w http.ResponseWriter, r *http.Request) {
	matchID := strings.TrimSpace(r.PathValue("matchID"))
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchFact", attribute.String("match.id", matchID))
	defer span.End()

	fact, err := h.analyticsService.GetMatchFact(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match fact failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, roundFactToDTO(fact))
}

func (h *Handler) ListPlayerLeaders(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerLeaders")
	defer span.End()

	season := pathSeason(r)
	limit, err := queryLimit(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.analyticsService.ListPlayerLeaders(ctx, season, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list player leaders failed", "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(rows, playerRateToDTO))
}

func (h *Handler) ListTeamForm(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamForm")
	defer span.End()

	season := pathSeason(r)
	teamID := strings.TrimSpace(r.URL.Query().Get("team_id"))
	rows, err := h.analyticsService.ListTeamForm(ctx, season, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list team form failed", "season", season, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(rows, teamFormToDTO))
}

func (h *Handler) ListLatestTeamForm(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLatestTeamForm")
	defer span.End()

	season := pathSeason(r)
	rows, err := h.analyticsService.LatestTeamForm(ctx, season, queryTeamIDs(r))
	if err != nil {
		h.logger.WarnContext(ctx, "list latest team form failed", "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(rows, teamFormToDTO))
}

func (h *Handler) ListTeamShares(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamShares")
	defer span.End()

	season := pathSeason(r)
	rows, err := h.analyticsService.ListTeamShares(ctx, season, queryTeamIDs(r))
	if err != nil {
		h.logger.WarnContext(ctx, "list team shares failed", "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(rows, teamShareToDTO))
}

func (h *Handler) ListGoalkeepers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGoalkeepers")
	defer span.End()

	season := pathSeason(r)
	limit, err := queryLimit(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.analyticsService.ListGoalkeeperPerformance(ctx, season, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list goalkeepers failed", "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(rows, goalkeeperToDTO))
}
