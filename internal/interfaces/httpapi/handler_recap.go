package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/match-recap/internal/usecase"
)

func (h *Handler) GetRoundContext(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRoundContext")
	defer span.End()

	season := pathSeason(r)
	round, err := pathRound(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rc, err := h.contextService.BuildRoundContext(ctx, season, round)
	if err != nil {
		h.logger.WarnContext(ctx, "build round context failed", "season", season, "round", round, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, roundContextToDTO(rc))
}

func (h *Handler) SummariseRound(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SummariseRound")
	defer span.End()

	var req summariseRoundRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	summary, err := h.summaryService.SummariseRound(ctx, usecase.SummariseRoundInput{
		Season: req.Season,
		Round:  req.Round,
		Angle:  req.Angle,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "summarise round failed", "season", req.Season, "round", req.Round, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, roundSummaryToDTO(summary))
}
