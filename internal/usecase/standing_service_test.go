package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/riskibarqy/rugby-league/internal/domain/fixture"
	"github.com/riskibarqy/rugby-league/internal/domain/league"
	"github.com/riskibarqy/rugby-league/internal/domain/result"
	"github.com/riskibarqy/rugby-league/internal/domain/standing"
)

const (
	testSeason = "2025-26"
	oldSeason  = "2024-25"
)

func newStandingFixture(currentSeason string) (*StandingService, *stubStandingRepository, *stubFixtureRepository, *stubResultRepository) {
	leagueRepo := &stubLeagueRepository{
		byID: map[string]league.League{
			"lg-super": {ID: "lg-super", Name: "Super League", Season: testSeason},
			"lg-old":   {ID: "lg-old", Name: "Archived League", Season: oldSeason},
		},
	}
	fixtureRepo := &stubFixtureRepository{
		byLeague: map[string][]fixture.Fixture{
			"lg-super": {
				{ID: "fx-1", LeagueID: "lg-super", HomeTeamID: "tm-a", AwayTeamID: "tm-b", Status: fixture.StatusCompleted},
				{ID: "fx-2", LeagueID: "lg-super", HomeTeamID: "tm-b", AwayTeamID: "tm-a", Status: fixture.StatusScheduled},
			},
			"lg-old": {
				{ID: "fx-old", LeagueID: "lg-old", HomeTeamID: "tm-x", AwayTeamID: "tm-y", Status: fixture.StatusCompleted},
			},
		},
	}
	resultRepo := &stubResultRepository{
		byLeague: map[string][]result.Result{
			"lg-super": {
				{ID: "r-1", FixtureID: "fx-1", HomeScore: 20, AwayScore: 13},
			},
			"lg-old": {
				{ID: "r-old", FixtureID: "fx-old", HomeScore: 10, AwayScore: 0},
			},
		},
	}
	standingRepo := &stubStandingRepository{rows: map[string]standing.Standing{}}

	svc := NewStandingService(leagueRepo, fixtureRepo, resultRepo, standingRepo, StaticSeason(currentSeason), nil, nil)
	return svc, standingRepo, fixtureRepo, resultRepo
}

func TestStandingService_RecalculateLeague(t *testing.T) {
	t.Parallel()

	svc, standingRepo, _, _ := newStandingFixture(testSeason)

	report, err := svc.RecalculateLeague(context.Background(), "lg-super")
	if err != nil {
		t.Fatalf("RecalculateLeague error: %v", err)
	}
	if report.Skipped {
		t.Fatalf("current-season league should not be skipped: %+v", report)
	}
	if report.Message != "Standings updated successfully" {
		t.Fatalf("unexpected message: %q", report.Message)
	}
	if len(report.Teams) != 2 {
		t.Fatalf("expected 2 team outcomes, got %d", len(report.Teams))
	}
	for _, outcome := range report.Teams {
		if outcome.Error != "" {
			t.Fatalf("unexpected team error: %+v", outcome)
		}
	}

	winner, ok := standingRepo.get("lg-super", "tm-a")
	if !ok {
		t.Fatal("winner row not persisted")
	}
	if winner.Points != standing.WinPoints || winner.Won != 1 {
		t.Fatalf("unexpected winner row: %+v", winner)
	}

	loser, ok := standingRepo.get("lg-super", "tm-b")
	if !ok {
		t.Fatal("loser row not persisted")
	}
	if loser.BonusPoints != 1 || loser.Points != 1 {
		t.Fatalf("expected narrow-loss bonus, got %+v", loser)
	}
}

func TestStandingService_RecalculateLeague_Idempotent(t *testing.T) {
	t.Parallel()

	svc, standingRepo, _, _ := newStandingFixture(testSeason)
	ctx := context.Background()

	if _, err := svc.RecalculateLeague(ctx, "lg-super"); err != nil {
		t.Fatalf("first run: %v", err)
	}
	first, _ := standingRepo.get("lg-super", "tm-a")

	if _, err := svc.RecalculateLeague(ctx, "lg-super"); err != nil {
		t.Fatalf("second run: %v", err)
	}
	second, _ := standingRepo.get("lg-super", "tm-a")

	if first != second {
		t.Fatalf("rerun drifted: first=%+v second=%+v", first, second)
	}
	if second.Played != 1 {
		t.Fatalf("rerun must replace totals, not accumulate: %+v", second)
	}
}

func TestStandingService_RecalculateLeague_SeasonGate(t *testing.T) {
	t.Parallel()

	svc, standingRepo, _, _ := newStandingFixture(testSeason)

	report, err := svc.RecalculateLeague(context.Background(), "lg-old")
	if err != nil {
		t.Fatalf("RecalculateLeague error: %v", err)
	}
	if !report.Skipped {
		t.Fatalf("archived-season league should be skipped: %+v", report)
	}
	if report.Message != "skipped: not current season" {
		t.Fatalf("unexpected skip message: %q", report.Message)
	}
	if standingRepo.upsertCount() != 0 {
		t.Fatalf("skip must not write, got %d upserts", standingRepo.upsertCount())
	}
}

func TestStandingService_RecalculateLeague_NotFound(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newStandingFixture(testSeason)

	_, err := svc.RecalculateLeague(context.Background(), "lg-missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStandingService_RecalculateLeague_ReadFailureAbortsWrites(t *testing.T) {
	t.Parallel()

	svc, standingRepo, _, resultRepo := newStandingFixture(testSeason)
	resultRepo.listErr = errors.New("connection reset")

	_, err := svc.RecalculateLeague(context.Background(), "lg-super")
	if err == nil || !strings.Contains(err.Error(), "connection reset") {
		t.Fatalf("expected read failure, got %v", err)
	}
	if standingRepo.upsertCount() != 0 {
		t.Fatalf("failed read must not write, got %d upserts", standingRepo.upsertCount())
	}
}

func TestStandingService_RecalculateLeague_PerTeamFailureContinues(t *testing.T) {
	t.Parallel()

	svc, standingRepo, _, _ := newStandingFixture(testSeason)
	standingRepo.failTeamID = "tm-a"

	report, err := svc.RecalculateLeague(context.Background(), "lg-super")
	if err != nil {
		t.Fatalf("RecalculateLeague error: %v", err)
	}

	var failed, succeeded int
	for _, outcome := range report.Teams {
		if outcome.Error != "" {
			failed++
		} else {
			succeeded++
		}
	}
	if failed != 1 || succeeded != 1 {
		t.Fatalf("expected one failed and one persisted outcome, got %+v", report.Teams)
	}
	if !strings.Contains(report.Message, "1 of 2 teams failed") {
		t.Fatalf("unexpected message: %q", report.Message)
	}
	if _, ok := standingRepo.get("lg-super", "tm-b"); !ok {
		t.Fatal("healthy team row should still be written")
	}
}

func TestStandingService_RecalculateForFixture(t *testing.T) {
	t.Parallel()

	svc, standingRepo, _, _ := newStandingFixture(testSeason)

	report, err := svc.RecalculateForFixture(context.Background(), "fx-1")
	if err != nil {
		t.Fatalf("RecalculateForFixture error: %v", err)
	}
	if report.LeagueID != "lg-super" {
		t.Fatalf("expected delegation to the fixture's league, got %+v", report)
	}
	if standingRepo.upsertCount() == 0 {
		t.Fatal("expected standings to be written")
	}

	if _, err := svc.RecalculateForFixture(context.Background(), "fx-missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown fixture, got %v", err)
	}
}

func TestStandingService_RecalculateForFixture_ArchivedSeasonStillGated(t *testing.T) {
	t.Parallel()

	svc, standingRepo, _, _ := newStandingFixture(testSeason)

	report, err := svc.RecalculateForFixture(context.Background(), "fx-old")
	if err != nil {
		t.Fatalf("RecalculateForFixture error: %v", err)
	}
	if !report.Skipped {
		t.Fatalf("archived-season fixture must be gated: %+v", report)
	}
	if standingRepo.upsertCount() != 0 {
		t.Fatal("gated run must not write")
	}
}

func TestStandingService_RecalculateAll(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newStandingFixture(testSeason)

	out, err := svc.RecalculateAll(context.Background(), 4)
	if err != nil {
		t.Fatalf("RecalculateAll error: %v", err)
	}
	if out.LeagueCount != 2 {
		t.Fatalf("expected 2 leagues, got %d", out.LeagueCount)
	}
	if out.UpdatedCount != 1 || out.SkippedCount != 1 || out.FailedCount != 0 {
		t.Fatalf("unexpected counts: %+v", out)
	}
	if out.WorkerCount != 2 {
		t.Fatalf("worker count should be capped by league count, got %d", out.WorkerCount)
	}
	if len(out.Reports) != 2 || out.Reports[0].LeagueID > out.Reports[1].LeagueID {
		t.Fatalf("reports should be sorted by league: %+v", out.Reports)
	}
}

func TestStandingService_NotifierFiresOnlyWhenRowsWritten(t *testing.T) {
	t.Parallel()

	leagueRepo := &stubLeagueRepository{
		byID: map[string]league.League{
			"lg-super": {ID: "lg-super", Name: "Super League", Season: testSeason},
			"lg-quiet": {ID: "lg-quiet", Name: "Quiet League", Season: testSeason},
		},
	}
	fixtureRepo := &stubFixtureRepository{
		byLeague: map[string][]fixture.Fixture{
			"lg-super": {
				{ID: "fx-1", LeagueID: "lg-super", HomeTeamID: "tm-a", AwayTeamID: "tm-b", Status: fixture.StatusCompleted},
			},
		},
	}
	resultRepo := &stubResultRepository{
		byLeague: map[string][]result.Result{
			"lg-super": {
				{ID: "r-1", FixtureID: "fx-1", HomeScore: 20, AwayScore: 13},
			},
		},
	}
	standingRepo := &stubStandingRepository{rows: map[string]standing.Standing{}}
	notifier := &recordingNotifier{}

	svc := NewStandingService(leagueRepo, fixtureRepo, resultRepo, standingRepo, StaticSeason(testSeason), notifier, nil)
	ctx := context.Background()

	if _, err := svc.RecalculateLeague(ctx, "lg-super"); err != nil {
		t.Fatalf("RecalculateLeague error: %v", err)
	}
	if got := notifier.count(); got != 1 {
		t.Fatalf("expected one notification after rows were written, got %d", got)
	}

	// No completed fixtures means nothing was written, so nothing to
	// announce.
	if _, err := svc.RecalculateLeague(ctx, "lg-quiet"); err != nil {
		t.Fatalf("RecalculateLeague error: %v", err)
	}
	if got := notifier.count(); got != 1 {
		t.Fatalf("empty table must not notify, got %d notifications", got)
	}

	// Same when every upsert failed: the stored standings are
	// untouched.
	standingRepo.failAll = true
	if _, err := svc.RecalculateLeague(ctx, "lg-super"); err != nil {
		t.Fatalf("RecalculateLeague error: %v", err)
	}
	if got := notifier.count(); got != 1 {
		t.Fatalf("fully failed upsert loop must not notify, got %d notifications", got)
	}
}

func TestStandingService_RecalculateAll_CountsErroredLeagueAsFailed(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newStandingFixture(testSeason)
	svc.leagueRepo.(*stubLeagueRepository).getErrID = "lg-super"

	out, err := svc.RecalculateAll(context.Background(), 2)
	if err != nil {
		t.Fatalf("RecalculateAll error: %v", err)
	}
	if out.FailedCount != 1 || out.SkippedCount != 1 || out.UpdatedCount != 0 {
		t.Fatalf("unexpected counts: %+v", out)
	}
	for _, report := range out.Reports {
		if report.LeagueID == "lg-super" && !report.Failed {
			t.Fatalf("errored league should be marked failed: %+v", report)
		}
	}
}

func TestStandingService_ListByLeague_RanksStoredRows(t *testing.T) {
	t.Parallel()

	svc, standingRepo, _, _ := newStandingFixture(testSeason)
	standingRepo.rows["lg-super|tm-a"] = standing.Standing{LeagueID: "lg-super", TeamID: "tm-a", Points: 4}
	standingRepo.rows["lg-super|tm-b"] = standing.Standing{LeagueID: "lg-super", TeamID: "tm-b", Points: 10}

	items, err := svc.ListByLeague(context.Background(), "lg-super")
	if err != nil {
		t.Fatalf("ListByLeague error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(items))
	}
	if items[0].TeamID != "tm-b" || items[0].Position != 1 {
		t.Fatalf("unexpected leader: %+v", items[0])
	}
	if items[1].TeamID != "tm-a" || items[1].Position != 2 {
		t.Fatalf("unexpected runner-up: %+v", items[1])
	}
}

type recordingNotifier struct {
	mu    sync.Mutex
	calls int
}

func (n *recordingNotifier) StandingsUpdated(context.Context, string, string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls++
	return nil
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.calls
}

type stubLeagueRepository struct {
	byID     map[string]league.League
	getErrID string
}

func (s *stubLeagueRepository) List(_ context.Context) ([]league.League, error) {
	out := make([]league.League, 0, len(s.byID))
	for _, item := range s.byID {
		out = append(out, item)
	}
	return out, nil
}

func (s *stubLeagueRepository) GetByID(_ context.Context, leagueID string) (league.League, bool, error) {
	if s.getErrID != "" && leagueID == s.getErrID {
		return league.League{}, false, fmt.Errorf("league lookup unavailable")
	}
	item, ok := s.byID[leagueID]
	return item, ok, nil
}

type stubFixtureRepository struct {
	mu       sync.Mutex
	byLeague map[string][]fixture.Fixture
}

func (s *stubFixtureRepository) List(_ context.Context) ([]fixture.Fixture, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []fixture.Fixture
	for _, items := range s.byLeague {
		out = append(out, items...)
	}
	return out, nil
}

func (s *stubFixtureRepository) ListByLeague(_ context.Context, leagueID string) ([]fixture.Fixture, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.byLeague[leagueID]
	out := make([]fixture.Fixture, len(items))
	copy(out, items)
	return out, nil
}

func (s *stubFixtureRepository) GetByID(_ context.Context, fixtureID string) (fixture.Fixture, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, items := range s.byLeague {
		for _, item := range items {
			if item.ID == fixtureID {
				return item, true, nil
			}
		}
	}
	return fixture.Fixture{}, false, nil
}

func (s *stubFixtureRepository) Create(_ context.Context, fx fixture.Fixture) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byLeague[fx.LeagueID] = append(s.byLeague[fx.LeagueID], fx)
	return nil
}

func (s *stubFixtureRepository) Update(_ context.Context, fx fixture.Fixture) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.byLeague[fx.LeagueID]
	for i, item := range items {
		if item.ID == fx.ID {
			items[i] = fx
			return nil
		}
	}
	return fmt.Errorf("fixture %s not found", fx.ID)
}

type stubResultRepository struct {
	mu       sync.Mutex
	byLeague map[string][]result.Result
	listErr  error
}

func (s *stubResultRepository) List(_ context.Context) ([]result.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	var out []result.Result
	for _, items := range s.byLeague {
		out = append(out, items...)
	}
	return out, nil
}

func (s *stubResultRepository) ListByLeague(_ context.Context, leagueID string) ([]result.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	items := s.byLeague[leagueID]
	out := make([]result.Result, len(items))
	copy(out, items)
	return out, nil
}

func (s *stubResultRepository) GetByFixture(_ context.Context, fixtureID string) (result.Result, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, items := range s.byLeague {
		for _, item := range items {
			if item.FixtureID == fixtureID {
				return item, true, nil
			}
		}
	}
	return result.Result{}, false, nil
}

func (s *stubResultRepository) Create(_ context.Context, res result.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byLeague["lg-super"] = append(s.byLeague["lg-super"], res)
	return nil
}

func (s *stubResultRepository) Update(_ context.Context, res result.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for leagueID, items := range s.byLeague {
		for i, item := range items {
			if item.ID == res.ID {
				s.byLeague[leagueID][i] = res
				return nil
			}
		}
	}
	return fmt.Errorf("result %s not found", res.ID)
}

type stubStandingRepository struct {
	mu         sync.Mutex
	rows       map[string]standing.Standing
	upserts    int
	failTeamID string
	failAll    bool
}

func (s *stubStandingRepository) ListByLeague(_ context.Context, leagueID string) ([]standing.Standing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []standing.Standing
	for _, row := range s.rows {
		if row.LeagueID == leagueID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (s *stubStandingRepository) Upsert(_ context.Context, st standing.Standing) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll || (s.failTeamID != "" && st.TeamID == s.failTeamID) {
		return fmt.Errorf("forced upsert failure team=%s", st.TeamID)
	}
	s.rows[st.LeagueID+"|"+st.TeamID] = st
	s.upserts++
	return nil
}

func (s *stubStandingRepository) get(leagueID, teamID string) (standing.Standing, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[leagueID+"|"+teamID]
	return row, ok
}

func (s *stubStandingRepository) upsertCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.upserts
}
