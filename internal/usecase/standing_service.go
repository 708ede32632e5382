package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/rugby-league/internal/domain/fixture"
	"github.com/riskibarqy/rugby-league/internal/domain/league"
	"github.com/riskibarqy/rugby-league/internal/domain/result"
	"github.com/riskibarqy/rugby-league/internal/domain/standing"
	"github.com/riskibarqy/rugby-league/internal/platform/logging"
)

// SeasonSource provides the season that standings writes are gated
// on. Leagues whose stored season differs are left untouched.
type SeasonSource interface {
	CurrentSeason(ctx context.Context) string
}

// StaticSeason is a SeasonSource with a fixed value, useful for
// tests and single-season deployments.
type StaticSeason string

func (s StaticSeason) CurrentSeason(context.Context) string { return string(s) }

// StandingsNotifier is told after a league's standings have been
// rewritten. Failures are logged, never propagated.
type StandingsNotifier interface {
	StandingsUpdated(ctx context.Context, leagueID, season string) error
}

// TeamOutcome reports the per-team persistence result of one
// recalculation run.
type TeamOutcome struct {
	TeamID   string `json:"team_id"`
	Position int    `json:"position"`
	Error    string `json:"error,omitempty"`
}

// RecalculationReport describes one standings recalculation run.
type RecalculationReport struct {
	LeagueID string        `json:"league_id"`
	Season   string        `json:"season"`
	Skipped  bool          `json:"skipped"`
	Failed   bool          `json:"failed,omitempty"`
	Message  string        `json:"message"`
	Teams    []TeamOutcome `json:"teams,omitempty"`
}

// AllLeaguesReport aggregates the per-league reports of a bulk
// recalculation.
type AllLeaguesReport struct {
	LeagueCount  int                   `json:"league_count"`
	UpdatedCount int                   `json:"updated_count"`
	SkippedCount int                   `json:"skipped_count"`
	FailedCount  int                   `json:"failed_count"`
	WorkerCount  int                   `json:"worker_count"`
	Reports      []RecalculationReport `json:"reports"`
}

type StandingService struct {
	leagueRepo   league.Repository
	fixtureRepo  fixture.Repository
	resultRepo   result.Repository
	standingRepo standing.Repository
	seasons      SeasonSource
	notifier     StandingsNotifier
	logger       *logging.Logger

	// serializes recalculation per league so concurrent triggers
	// cannot interleave their upserts
	leagueMu sync.Mutex
	locks    map[string]*sync.Mutex
}

func NewStandingService(
	leagueRepo league.Repository,
	fixtureRepo fixture.Repository,
	resultRepo result.Repository,
	standingRepo standing.Repository,
	seasons SeasonSource,
	notifier StandingsNotifier,
	logger *logging.Logger,
) *StandingService {
	if logger == nil {
		logger = logging.Default()
	}

	return &StandingService{
		leagueRepo:   leagueRepo,
		fixtureRepo:  fixtureRepo,
		resultRepo:   resultRepo,
		standingRepo: standingRepo,
		seasons:      seasons,
		notifier:     notifier,
		logger:       logger,
		locks:        make(map[string]*sync.Mutex),
	}
}

func (s *StandingService) lockForLeague(leagueID string) *sync.Mutex {
	s.leagueMu.Lock()
	defer s.leagueMu.Unlock()

	mu, ok := s.locks[leagueID]
	if !ok {
		mu = &sync.Mutex{}
		s.locks[leagueID] = mu
	}
	return mu
}

// ListByLeague returns the stored standings ranked and stamped with
// 1-based positions.
func (s *StandingService) ListByLeague(ctx context.Context, leagueID string) ([]standing.Standing, error) {
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

	items, err := s.standingRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list standings by league: %w", err)
	}

	standing.Rank(items)

	return items, nil
}

// RecalculateLeague recomputes the whole standings table of one
// league from its completed fixtures and persists every row.
//
// Leagues outside the current season are skipped without any write.
// A failed read aborts the run before anything is written; a failed
// per-team upsert is recorded in the report and the run continues.
func (s *StandingService) RecalculateLeague(ctx context.Context, leagueID string) (RecalculationReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.RecalculateLeague")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return RecalculationReport{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	item, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return RecalculationReport{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return RecalculationReport{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	report := RecalculationReport{LeagueID: leagueID, Season: item.Season}

	if current := s.seasons.CurrentSeason(ctx); item.Season != current {
		report.Skipped = true
		report.Message = "skipped: not current season"
		s.logger.InfoContext(ctx, "standings recalculation skipped",
			"league_id", leagueID,
			"league_season", item.Season,
			"current_season", current,
		)
		return report, nil
	}

	mu := s.lockForLeague(leagueID)
	mu.Lock()
	defer mu.Unlock()

	fixtures, err := s.fixtureRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return RecalculationReport{}, fmt.Errorf("list fixtures by league: %w", err)
	}
	results, err := s.resultRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return RecalculationReport{}, fmt.Errorf("list results by league: %w", err)
	}

	resultByFixture := make(map[string]result.Result, len(results))
	for _, res := range results {
		resultByFixture[res.FixtureID] = res
	}

	table := standing.ComputeTable(leagueID, fixtures, resultByFixture)

	report.Teams = make([]TeamOutcome, 0, len(table))
	failed := 0
	for _, row := range table {
		outcome := TeamOutcome{TeamID: row.TeamID, Position: row.Position}
		if err := s.standingRepo.Upsert(ctx, row); err != nil {
			outcome.Error = err.Error()
			failed++
			s.logger.ErrorContext(ctx, "upsert standing failed",
				"league_id", leagueID,
				"team_id", row.TeamID,
				"error", err,
			)
		}
		report.Teams = append(report.Teams, outcome)
	}

	if failed > 0 {
		report.Message = fmt.Sprintf("standings updated with %d of %d teams failed", failed, len(table))
	} else {
		report.Message = "Standings updated successfully"
	}

	// Announce only runs that actually landed rows; an empty table or
	// a fully failed upsert loop changed nothing worth broadcasting.
	if written := len(table) - failed; written > 0 {
		s.notifyUpdated(ctx, leagueID, item.Season)
	}

	return report, nil
}

// RecalculateForFixture refreshes the standings of the league the
// fixture belongs to. The league's stored season still gates the
// run, so results recorded against archived seasons change nothing.
func (s *StandingService) RecalculateForFixture(ctx context.Context, fixtureID string) (RecalculationReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.RecalculateForFixture")
	defer span.End()

	fixtureID = strings.TrimSpace(fixtureID)
	if fixtureID == "" {
		return RecalculationReport{}, fmt.Errorf("%w: fixture id is required", ErrInvalidInput)
	}

	fx, exists, err := s.fixtureRepo.GetByID(ctx, fixtureID)
	if err != nil {
		return RecalculationReport{}, fmt.Errorf("get fixture: %w", err)
	}
	if !exists {
		return RecalculationReport{}, fmt.Errorf("%w: fixture=%s", ErrNotFound, fixtureID)
	}

	return s.RecalculateLeague(ctx, fx.LeagueID)
}

// RecalculateAll runs RecalculateLeague for every known league on a
// bounded worker pool.
func (s *StandingService) RecalculateAll(ctx context.Context, maxWorkers int) (AllLeaguesReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.RecalculateAll")
	defer span.End()

	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return AllLeaguesReport{}, fmt.Errorf("list leagues: %w", err)
	}

	workerCount := normalizeWorkerCount(maxWorkers, len(leagues))
	out := AllLeaguesReport{
		LeagueCount: len(leagues),
		WorkerCount: workerCount,
		Reports:     make([]RecalculationReport, 0, len(leagues)),
	}
	if len(leagues) == 0 {
		return out, nil
	}

	reports := make(chan RecalculationReport, len(leagues))

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return AllLeaguesReport{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, item := range leagues {
		item := item
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			report, err := s.RecalculateLeague(ctx, item.ID)
			if err != nil {
				report = RecalculationReport{
					LeagueID: item.ID,
					Season:   item.Season,
					Failed:   true,
					Message:  "failed: " + err.Error(),
				}
			}
			reports <- report
		}); err != nil {
			workers.Done()
			return AllLeaguesReport{}, fmt.Errorf("submit league to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(reports)

	for report := range reports {
		out.Reports = append(out.Reports, report)
		switch {
		case report.Skipped:
			out.SkippedCount++
		case report.Failed:
			out.FailedCount++
		default:
			out.UpdatedCount++
		}
	}

	sort.SliceStable(out.Reports, func(i, j int) bool {
		return out.Reports[i].LeagueID < out.Reports[j].LeagueID
	})

	return out, nil
}

func (s *StandingService) notifyUpdated(ctx context.Context, leagueID, season string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.StandingsUpdated(ctx, leagueID, season); err != nil {
		s.logger.WarnContext(ctx, "standings updated notification failed",
			"league_id", leagueID,
			"season", season,
			"error", err,
		)
	}
}

func normalizeWorkerCount(value int, taskCount int) int {
	if taskCount <= 0 {
		return 1
	}
	if value <= 0 {
		value = 2
	}
	if value > taskCount {
		value = taskCount
	}
	return value
}
