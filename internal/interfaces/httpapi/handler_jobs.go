package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/rugby-league/internal/usecase"
)

// RunRecalculateStandingsJob rebuilds one league's standings table.
// Reached only through the internal job token middleware, typically
// from a QStash callback.
func (h *Handler) RunRecalculateStandingsJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunRecalculateStandingsJob")
	defer span.End()

	req, err := decodeInternalJobRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if strings.TrimSpace(req.LeagueID) == "" {
		writeError(ctx, w, fmt.Errorf("%w: league_id is required", usecase.ErrInvalidInput))
		return
	}

	report, err := h.standingService.RecalculateLeague(ctx, req.LeagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "recalculate standings job failed", "league_id", req.LeagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, report)
}

// RunRecalculateAllJob rebuilds the standings of every league on a
// bounded worker pool.
func (h *Handler) RunRecalculateAllJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunRecalculateAllJob")
	defer span.End()

	req, err := decodeInternalJobRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	report, err := h.standingService.RecalculateAll(ctx, req.MaxWorkers)
	if err != nil {
		h.logger.WarnContext(ctx, "recalculate all standings job failed", "max_workers", req.MaxWorkers, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, report)
}

type internalJobRequest struct {
	LeagueID   string `json:"league_id"`
	MaxWorkers int    `json:"max_workers"`
}

func decodeInternalJobRequest(r *http.Request) (internalJobRequest, error) {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	var req internalJobRequest
	if err := decoder.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return internalJobRequest{}, nil
		}
		return internalJobRequest{}, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return req, nil
}
