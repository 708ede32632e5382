package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/rugby-league/internal/domain/fixture"
	"github.com/riskibarqy/rugby-league/internal/domain/league"
	"github.com/riskibarqy/rugby-league/internal/domain/result"
	"github.com/riskibarqy/rugby-league/internal/domain/team"
	"github.com/riskibarqy/rugby-league/internal/platform/id"
	"github.com/riskibarqy/rugby-league/internal/platform/logging"
)

// Recalculator refreshes the standings table after a fixture's
// result changes.
type Recalculator interface {
	RecalculateForFixture(ctx context.Context, fixtureID string) (RecalculationReport, error)
}

type FixtureService struct {
	leagueRepo   league.Repository
	teamRepo     team.Repository
	fixtureRepo  fixture.Repository
	resultRepo   result.Repository
	recalculator Recalculator
	idGen        id.Generator
	logger       *logging.Logger
}

func NewFixtureService(
	leagueRepo league.Repository,
	teamRepo team.Repository,
	fixtureRepo fixture.Repository,
	resultRepo result.Repository,
	recalculator Recalculator,
	idGen id.Generator,
	logger *logging.Logger,
) *FixtureService {
	if idGen == nil {
		idGen = id.NewRandomGenerator()
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &FixtureService{
		leagueRepo:   leagueRepo,
		teamRepo:     teamRepo,
		fixtureRepo:  fixtureRepo,
		resultRepo:   resultRepo,
		recalculator: recalculator,
		idGen:        idGen,
		logger:       logger,
	}
}

func (s *FixtureService) ListByLeague(ctx context.Context, leagueID string) ([]fixture.Fixture, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	_, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	fixtures, err := s.fixtureRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list fixtures by league: %w", err)
	}

	return fixtures, nil
}

func (s *FixtureService) GetByID(ctx context.Context, fixtureID string) (fixture.Fixture, error) {
	fixtureID = strings.TrimSpace(fixtureID)
	if fixtureID == "" {
		return fixture.Fixture{}, fmt.Errorf("%w: fixture id is required", ErrInvalidInput)
	}

	item, exists, err := s.fixtureRepo.GetByID(ctx, fixtureID)
	if err != nil {
		return fixture.Fixture{}, fmt.Errorf("get fixture: %w", err)
	}
	if !exists {
		return fixture.Fixture{}, fmt.Errorf("%w: fixture=%s", ErrNotFound, fixtureID)
	}

	return item, nil
}

func (s *FixtureService) GetResultByFixture(ctx context.Context, fixtureID string) (result.Result, error) {
	fixtureID = strings.TrimSpace(fixtureID)
	if fixtureID == "" {
		return result.Result{}, fmt.Errorf("%w: fixture id is required", ErrInvalidInput)
	}

	res, exists, err := s.resultRepo.GetByFixture(ctx, fixtureID)
	if err != nil {
		return result.Result{}, fmt.Errorf("get result by fixture: %w", err)
	}
	if !exists {
		return result.Result{}, fmt.Errorf("%w: result for fixture=%s", ErrNotFound, fixtureID)
	}

	return res, nil
}

// CreateFixture schedules a new fixture between two existing teams
// of the same league.
func (s *FixtureService) CreateFixture(ctx context.Context, input fixture.Fixture) (fixture.Fixture, error) {
	input.LeagueID = strings.TrimSpace(input.LeagueID)
	input.HomeTeamID = strings.TrimSpace(input.HomeTeamID)
	input.AwayTeamID = strings.TrimSpace(input.AwayTeamID)

	_, exists, err := s.leagueRepo.GetByID(ctx, input.LeagueID)
	if err != nil {
		return fixture.Fixture{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return fixture.Fixture{}, fmt.Errorf("%w: league=%s", ErrNotFound, input.LeagueID)
	}

	for _, teamID := range []string{input.HomeTeamID, input.AwayTeamID} {
		item, exists, err := s.teamRepo.GetByID(ctx, teamID)
		if err != nil {
			return fixture.Fixture{}, fmt.Errorf("get team: %w", err)
		}
		if !exists {
			return fixture.Fixture{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
		}
		if item.LeagueID != input.LeagueID {
			return fixture.Fixture{}, fmt.Errorf("%w: team=%s does not belong to league=%s", ErrInvalidInput, teamID, input.LeagueID)
		}
	}

	newID, err := s.idGen.NewID()
	if err != nil {
		return fixture.Fixture{}, fmt.Errorf("generate fixture id: %w", err)
	}
	input.ID = newID
	input.Status = fixture.StatusScheduled

	if err := input.Validate(); err != nil {
		return fixture.Fixture{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.fixtureRepo.Create(ctx, input); err != nil {
		return fixture.Fixture{}, fmt.Errorf("create fixture: %w", err)
	}

	return input, nil
}

// UpdateFixtureStatus moves a fixture through its lifecycle. It does
// not recalculate standings; recording a result does that.
func (s *FixtureService) UpdateFixtureStatus(ctx context.Context, fixtureID string, status fixture.Status) (fixture.Fixture, error) {
	item, err := s.GetByID(ctx, fixtureID)
	if err != nil {
		return fixture.Fixture{}, err
	}

	item.Status = status
	if err := s.fixtureRepo.Update(ctx, item); err != nil {
		return fixture.Fixture{}, fmt.Errorf("update fixture: %w", err)
	}

	return item, nil
}

// RecordResult saves the final score and scorer list for a fixture,
// marks the fixture completed, and refreshes the league's standings.
func (s *FixtureService) RecordResult(ctx context.Context, res result.Result) (RecalculationReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.RecordResult")
	defer span.End()

	res.FixtureID = strings.TrimSpace(res.FixtureID)
	if err := res.Validate(); err != nil {
		return RecalculationReport{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	fx, exists, err := s.fixtureRepo.GetByID(ctx, res.FixtureID)
	if err != nil {
		return RecalculationReport{}, fmt.Errorf("get fixture: %w", err)
	}
	if !exists {
		return RecalculationReport{}, fmt.Errorf("%w: fixture=%s", ErrNotFound, res.FixtureID)
	}

	existing, hasResult, err := s.resultRepo.GetByFixture(ctx, res.FixtureID)
	if err != nil {
		return RecalculationReport{}, fmt.Errorf("get result by fixture: %w", err)
	}

	if hasResult {
		res.ID = existing.ID
		if err := s.resultRepo.Update(ctx, res); err != nil {
			return RecalculationReport{}, fmt.Errorf("update result: %w", err)
		}
	} else {
		newID, err := s.idGen.NewID()
		if err != nil {
			return RecalculationReport{}, fmt.Errorf("generate result id: %w", err)
		}
		res.ID = newID
		if err := s.resultRepo.Create(ctx, res); err != nil {
			return RecalculationReport{}, fmt.Errorf("create result: %w", err)
		}
	}

	if fx.Status != fixture.StatusCompleted {
		fx.Status = fixture.StatusCompleted
		if err := s.fixtureRepo.Update(ctx, fx); err != nil {
			return RecalculationReport{}, fmt.Errorf("mark fixture completed: %w", err)
		}
	}

	if s.recalculator == nil {
		s.logger.WarnContext(ctx, "no recalculator configured, standings left stale", "fixture_id", res.FixtureID)
		return RecalculationReport{}, nil
	}

	report, err := s.recalculator.RecalculateForFixture(ctx, res.FixtureID)
	if err != nil {
		return RecalculationReport{}, fmt.Errorf("recalculate standings fixture=%s: %w", res.FixtureID, err)
	}

	return report, nil
}
