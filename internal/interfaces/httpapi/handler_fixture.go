package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/rugby-league/internal/domain/fixture"
	"github.com/riskibarqy/rugby-league/internal/domain/result"
	"github.com/riskibarqy/rugby-league/internal/usecase"
)

func (h *Handler) ListFixturesByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixturesByLeague")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	fixtures, err := h.fixtureService.ListByLeague(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list fixtures failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]fixtureDTO, 0, len(fixtures))
	for _, f := range fixtures {
		items = append(items, fixtureToDTO(ctx, f))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetFixture(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFixture")
	defer span.End()

	fixtureID := strings.TrimSpace(r.PathValue("fixtureID"))
	item, err := h.fixtureService.GetByID(ctx, fixtureID)
	if err != nil {
		h.logger.WarnContext(ctx, "get fixture failed", "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fixtureToDTO(ctx, item))
}

func (h *Handler) GetFixtureResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFixtureResult")
	defer span.End()

	fixtureID := strings.TrimSpace(r.PathValue("fixtureID"))
	res, err := h.fixtureService.GetResultByFixture(ctx, fixtureID)
	if err != nil {
		h.logger.WarnContext(ctx, "get fixture result failed", "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, resultToDTO(ctx, res))
}

func (h *Handler) CreateFixture(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateFixture")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	var req createFixtureRequest
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

	var kickoff time.Time
	if strings.TrimSpace(req.KickoffAt) != "" {
		parsed, err := time.Parse(time.RFC3339, req.KickoffAt)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: kickoffAt must be RFC3339: %v", usecase.ErrInvalidInput, err))
			return
		}
		kickoff = parsed
	}

	item, err := h.fixtureService.CreateFixture(ctx, fixture.Fixture{
		LeagueID:   leagueID,
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
		KickoffAt:  kickoff,
		Venue:      strings.TrimSpace(req.Venue),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create fixture failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, fixtureToDTO(ctx, item))
}

func (h *Handler) UpdateFixtureStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateFixtureStatus")
	defer span.End()

	fixtureID := strings.TrimSpace(r.PathValue("fixtureID"))
	var req updateFixtureStatusRequest
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

	status, err := fixture.ParseStatus(req.Status)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	item, err := h.fixtureService.UpdateFixtureStatus(ctx, fixtureID, status)
	if err != nil {
		h.logger.WarnContext(ctx, "update fixture status failed", "fixture_id", fixtureID, "status", req.Status, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fixtureToDTO(ctx, item))
}

func (h *Handler) RecordFixtureResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordFixtureResult")
	defer span.End()

	fixtureID := strings.TrimSpace(r.PathValue("fixtureID"))
	var req recordResultRequest
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

	report, err := h.fixtureService.RecordResult(ctx, result.Result{
		FixtureID:   fixtureID,
		HomeScore:   req.HomeScore,
		AwayScore:   req.AwayScore,
		HomeScorers: scorersFromDTO(req.HomeScorers),
		AwayScorers: scorersFromDTO(req.AwayScorers),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record result failed", "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, report)
}

type createFixtureRequest struct {
	HomeTeamID string `json:"homeTeamId" validate:"required"`
	AwayTeamID string `json:"awayTeamId" validate:"required"`
	KickoffAt  string `json:"kickoffAt"`
	Venue      string `json:"venue" validate:"max=200"`
}

type updateFixtureStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type recordResultRequest struct {
	HomeScore   int         `json:"homeScore" validate:"min=0"`
	AwayScore   int         `json:"awayScore" validate:"min=0"`
	HomeScorers []scorerDTO `json:"homeScorers" validate:"dive"`
	AwayScorers []scorerDTO `json:"awayScorers" validate:"dive"`
}

func scorersFromDTO(scorers []scorerDTO) []result.Scorer {
	out := make([]result.Scorer, 0, len(scorers))
	for _, s := range scorers {
		out = append(out, result.Scorer{
			Player:     s.Player,
			Type:       s.Type,
			Points:     s.Points,
			Minute:     s.Minute,
			PenaltyTry: s.PenaltyTry,
		})
	}
	return out
}
