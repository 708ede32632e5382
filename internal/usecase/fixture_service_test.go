package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/rugby-league/internal/domain/fixture"
	"github.com/riskibarqy/rugby-league/internal/domain/league"
	"github.com/riskibarqy/rugby-league/internal/domain/result"
	"github.com/riskibarqy/rugby-league/internal/domain/team"
)

type stubTeamRepository struct {
	byID map[string]team.Team
}

func (s *stubTeamRepository) ListByLeague(_ context.Context, leagueID string) ([]team.Team, error) {
	var out []team.Team
	for _, item := range s.byID {
		if item.LeagueID == leagueID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *stubTeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	item, ok := s.byID[teamID]
	return item, ok, nil
}

type stubRecalculator struct {
	calls []string
	err   error
}

func (s *stubRecalculator) RecalculateForFixture(_ context.Context, fixtureID string) (RecalculationReport, error) {
	s.calls = append(s.calls, fixtureID)
	if s.err != nil {
		return RecalculationReport{}, s.err
	}
	return RecalculationReport{LeagueID: "lg-super", Message: "Standings updated successfully"}, nil
}

func newFixtureServiceFixture() (*FixtureService, *stubFixtureRepository, *stubResultRepository, *stubRecalculator) {
	leagueRepo := &stubLeagueRepository{
		byID: map[string]league.League{
			"lg-super": {ID: "lg-super", Name: "Super League", Season: testSeason},
		},
	}
	teamRepo := &stubTeamRepository{
		byID: map[string]team.Team{
			"tm-a": {ID: "tm-a", LeagueID: "lg-super", Name: "Wigan"},
			"tm-b": {ID: "tm-b", LeagueID: "lg-super", Name: "Leeds"},
			"tm-z": {ID: "tm-z", LeagueID: "lg-other", Name: "Outsiders"},
		},
	}
	fixtureRepo := &stubFixtureRepository{
		byLeague: map[string][]fixture.Fixture{
			"lg-super": {
				{ID: "fx-1", LeagueID: "lg-super", HomeTeamID: "tm-a", AwayTeamID: "tm-b", Status: fixture.StatusUnderway},
			},
		},
	}
	resultRepo := &stubResultRepository{byLeague: map[string][]result.Result{}}
	recalc := &stubRecalculator{}

	svc := NewFixtureService(leagueRepo, teamRepo, fixtureRepo, resultRepo, recalc, nil, nil)
	return svc, fixtureRepo, resultRepo, recalc
}

func TestFixtureService_RecordResult(t *testing.T) {
	t.Parallel()

	svc, fixtureRepo, resultRepo, recalc := newFixtureServiceFixture()

	report, err := svc.RecordResult(context.Background(), result.Result{
		FixtureID: "fx-1",
		HomeScore: 26,
		AwayScore: 12,
		HomeScorers: []result.Scorer{
			{Player: "J. Field", Type: result.ScoreTry, Points: 4},
		},
	})
	if err != nil {
		t.Fatalf("RecordResult error: %v", err)
	}
	if report.Message != "Standings updated successfully" {
		t.Fatalf("unexpected report: %+v", report)
	}

	stored, exists, err := resultRepo.GetByFixture(context.Background(), "fx-1")
	if err != nil || !exists {
		t.Fatalf("result not stored: exists=%v err=%v", exists, err)
	}
	if stored.ID == "" {
		t.Fatal("stored result should have a generated id")
	}

	fx, _, _ := fixtureRepo.GetByID(context.Background(), "fx-1")
	if fx.Status != fixture.StatusCompleted {
		t.Fatalf("fixture should be marked completed, got %v", fx.Status)
	}

	if len(recalc.calls) != 1 || recalc.calls[0] != "fx-1" {
		t.Fatalf("expected one recalculation for fx-1, got %v", recalc.calls)
	}
}

func TestFixtureService_RecordResult_ReplacesExisting(t *testing.T) {
	t.Parallel()

	svc, _, resultRepo, _ := newFixtureServiceFixture()
	ctx := context.Background()

	if _, err := svc.RecordResult(ctx, result.Result{FixtureID: "fx-1", HomeScore: 10, AwayScore: 8}); err != nil {
		t.Fatalf("first RecordResult: %v", err)
	}
	first, _, _ := resultRepo.GetByFixture(ctx, "fx-1")

	if _, err := svc.RecordResult(ctx, result.Result{FixtureID: "fx-1", HomeScore: 12, AwayScore: 8}); err != nil {
		t.Fatalf("second RecordResult: %v", err)
	}
	second, _, _ := resultRepo.GetByFixture(ctx, "fx-1")

	if second.ID != first.ID {
		t.Fatalf("correction should keep the result id, got %s then %s", first.ID, second.ID)
	}
	if second.HomeScore != 12 {
		t.Fatalf("correction not applied: %+v", second)
	}
}

func TestFixtureService_RecordResult_Invalid(t *testing.T) {
	t.Parallel()

	svc, _, _, recalc := newFixtureServiceFixture()
	ctx := context.Background()

	if _, err := svc.RecordResult(ctx, result.Result{FixtureID: "fx-1", HomeScore: -1, AwayScore: 0}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.RecordResult(ctx, result.Result{FixtureID: "fx-missing", HomeScore: 1, AwayScore: 0}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(recalc.calls) != 0 {
		t.Fatalf("rejected results must not trigger recalculation, got %v", recalc.calls)
	}
}

func TestFixtureService_CreateFixture(t *testing.T) {
	t.Parallel()

	svc, fixtureRepo, _, _ := newFixtureServiceFixture()
	ctx := context.Background()

	created, err := svc.CreateFixture(ctx, fixture.Fixture{
		LeagueID:   "lg-super",
		HomeTeamID: "tm-a",
		AwayTeamID: "tm-b",
		Venue:      "DW Stadium",
	})
	if err != nil {
		t.Fatalf("CreateFixture error: %v", err)
	}
	if created.ID == "" || created.Status != fixture.StatusScheduled {
		t.Fatalf("unexpected created fixture: %+v", created)
	}

	items, _ := fixtureRepo.ListByLeague(ctx, "lg-super")
	if len(items) != 2 {
		t.Fatalf("expected 2 fixtures after create, got %d", len(items))
	}
}

func TestFixtureService_CreateFixture_CrossLeagueTeamRejected(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newFixtureServiceFixture()

	_, err := svc.CreateFixture(context.Background(), fixture.Fixture{
		LeagueID:   "lg-super",
		HomeTeamID: "tm-a",
		AwayTeamID: "tm-z",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for cross-league team, got %v", err)
	}
}

func TestFixtureService_UpdateFixtureStatus(t *testing.T) {
	t.Parallel()

	svc, fixtureRepo, _, _ := newFixtureServiceFixture()
	ctx := context.Background()

	updated, err := svc.UpdateFixtureStatus(ctx, "fx-1", fixture.StatusAbandoned)
	if err != nil {
		t.Fatalf("UpdateFixtureStatus error: %v", err)
	}
	if updated.Status != fixture.StatusAbandoned {
		t.Fatalf("status not applied: %+v", updated)
	}

	fx, _, _ := fixtureRepo.GetByID(ctx, "fx-1")
	if fx.Status != fixture.StatusAbandoned {
		t.Fatalf("status not persisted: %+v", fx)
	}
}
