package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/rugby-league/internal/domain/fixture"
	"github.com/riskibarqy/rugby-league/internal/domain/league"
	"github.com/riskibarqy/rugby-league/internal/domain/result"
	"github.com/riskibarqy/rugby-league/internal/domain/standing"
	"github.com/riskibarqy/rugby-league/internal/domain/team"
	"github.com/riskibarqy/rugby-league/internal/platform/logging"
	"github.com/riskibarqy/rugby-league/internal/usecase"
)

type Handler struct {
	leagueService   *usecase.LeagueService
	fixtureService  *usecase.FixtureService
	standingService *usecase.StandingService
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(
	leagueService *usecase.LeagueService,
	fixtureService *usecase.FixtureService,
	standingService *usecase.StandingService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		leagueService:   leagueService,
		fixtureService:  fixtureService,
		standingService: standingService,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	leagues, err := h.leagueService.ListLeagues(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leagueDTO, 0, len(leagues))
	for _, l := range leagues {
		items = append(items, leagueToDTO(ctx, l))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeague")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	item, err := h.leagueService.GetLeague(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get league failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueToDTO(ctx, item))
}

func (h *Handler) ListTeamsByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamsByLeague")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	teams, err := h.leagueService.ListTeamsByLeague(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(ctx, t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type leagueDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Season string `json:"season"`
}

type teamDTO struct {
	ID       string `json:"id"`
	LeagueID string `json:"leagueId"`
	Name     string `json:"name"`
	Short    string `json:"short"`
}

type fixtureDTO struct {
	ID         string `json:"id"`
	LeagueID   string `json:"leagueId"`
	HomeTeamID string `json:"homeTeamId"`
	AwayTeamID string `json:"awayTeamId"`
	Kickoff    string `json:"kickoffAt"`
	Venue      string `json:"venue"`
	Status     string `json:"status"`
}

type scorerDTO struct {
	Player     string `json:"player"`
	Type       string `json:"type"`
	Points     int    `json:"points"`
	Minute     *int   `json:"minute,omitempty"`
	PenaltyTry bool   `json:"penaltyTry,omitempty"`
}

type resultDTO struct {
	ID          string      `json:"id"`
	FixtureID   string      `json:"fixtureId"`
	HomeScore   int         `json:"homeScore"`
	AwayScore   int         `json:"awayScore"`
	HomeScorers []scorerDTO `json:"homeScorers"`
	AwayScorers []scorerDTO `json:"awayScorers"`
}

type standingDTO struct {
	Position         int    `json:"position"`
	TeamID           string `json:"teamId"`
	Played           int    `json:"played"`
	Won              int    `json:"won"`
	Drawn            int    `json:"drawn"`
	Lost             int    `json:"lost"`
	PointsFor        int    `json:"pointsFor"`
	PointsAgainst    int    `json:"pointsAgainst"`
	PointsDifference int    `json:"pointsDifference"`
	BonusPoints      int    `json:"bonusPoints"`
	Points           int    `json:"points"`
}

func leagueToDTO(ctx context.Context, v league.League) leagueDTO {
	ctx, span := startSpan(ctx, "httpapi.leagueToDTO")
	defer span.End()

	return leagueDTO{
		ID:     v.ID,
		Name:   v.Name,
		Season: v.Season,
	}
}

func teamToDTO(ctx context.Context, v team.Team) teamDTO {
	ctx, span := startSpan(ctx, "httpapi.teamToDTO")
	defer span.End()

	return teamDTO{
		ID:       v.ID,
		LeagueID: v.LeagueID,
		Name:     v.Name,
		Short:    v.Short,
	}
}

func fixtureToDTO(ctx context.Context, v fixture.Fixture) fixtureDTO {
	ctx, span := startSpan(ctx, "httpapi.fixtureToDTO")
	defer span.End()

	kickoff := ""
	if !v.KickoffAt.IsZero() {
		kickoff = v.KickoffAt.UTC().Format(time.RFC3339)
	}

	return fixtureDTO{
		ID:         v.ID,
		LeagueID:   v.LeagueID,
		HomeTeamID: v.HomeTeamID,
		AwayTeamID: v.AwayTeamID,
		Kickoff:    kickoff,
		Venue:      v.Venue,
		Status:     v.Status.String(),
	}
}

func resultToDTO(ctx context.Context, v result.Result) resultDTO {
	ctx, span := startSpan(ctx, "httpapi.resultToDTO")
	defer span.End()

	return resultDTO{
		ID:          v.ID,
		FixtureID:   v.FixtureID,
		HomeScore:   v.HomeScore,
		AwayScore:   v.AwayScore,
		HomeScorers: scorersToDTO(v.HomeScorers),
		AwayScorers: scorersToDTO(v.AwayScorers),
	}
}

func scorersToDTO(scorers []result.Scorer) []scorerDTO {
	out := make([]scorerDTO, 0, len(scorers))
	for _, s := range scorers {
		out = append(out, scorerDTO{
			Player:     s.Player,
			Type:       s.Type,
			Points:     s.Points,
			Minute:     s.Minute,
			PenaltyTry: s.PenaltyTry,
		})
	}
	return out
}

func standingToDTO(ctx context.Context, v standing.Standing) standingDTO {
	ctx, span := startSpan(ctx, "httpapi.standingToDTO")
	defer span.End()

	return standingDTO{
		Position:         v.Position,
		TeamID:           v.TeamID,
		Played:           v.Played,
		Won:              v.Won,
		Drawn:            v.Drawn,
		Lost:             v.Lost,
		PointsFor:        v.PointsFor,
		PointsAgainst:    v.PointsAgainst,
		PointsDifference: v.PointsDifference,
		BonusPoints:      v.BonusPoints,
		Points:           v.Points,
	}
}
