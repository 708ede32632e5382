package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/rugby-league/internal/domain/fixture"
	"github.com/riskibarqy/rugby-league/internal/platform/logging"
	qb "github.com/riskibarqy/rugby-league/internal/platform/querybuilder"
)

type FixtureRepository struct {
	db     *sqlx.DB
	logger *logging.Logger
}

func NewFixtureRepository(db *sqlx.DB, logger *logging.Logger) *FixtureRepository {
	if logger == nil {
		logger = logging.Default()
	}
	return &FixtureRepository{db: db, logger: logger}
}

func (r *FixtureRepository) List(ctx context.Context) ([]fixture.Fixture, error) {
	query, args, err := qb.Select("*").From("fixtures").
		Where(qb.IsNull("deleted_at")).
		OrderBy("kickoff_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select fixtures query: %w", err)
	}

	var rows []fixtureTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select fixtures: %w", err)
	}

	return r.toDomain(ctx, rows), nil
}

func (r *FixtureRepository) ListByLeague(ctx context.Context, leagueID string) ([]fixture.Fixture, error) {
	query, args, err := qb.Select("*").From("fixtures").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("kickoff_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select fixtures by league query: %w", err)
	}

	var rows []fixtureTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select fixtures by league: %w", err)
	}

	return r.toDomain(ctx, rows), nil
}

func (r *FixtureRepository) GetByID(ctx context.Context, fixtureID string) (fixture.Fixture, bool, error) {
	query, args, err := qb.Select("*").From("fixtures").
		Where(
			qb.Eq("public_id", fixtureID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fixture.Fixture{}, false, fmt.Errorf("build get fixture by id query: %w", err)
	}

	var row fixtureTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fixture.Fixture{}, false, nil
		}
		return fixture.Fixture{}, false, fmt.Errorf("get fixture by id: %w", err)
	}

	return r.rowToDomain(ctx, row), true, nil
}

func (r *FixtureRepository) Create(ctx context.Context, fx fixture.Fixture) error {
	query, args, err := qb.InsertModel("fixtures", fixtureInsertModel{
		PublicID:  fx.ID,
		LeagueID:  fx.LeagueID,
		HomeTeam:  fx.HomeTeamID,
		AwayTeam:  fx.AwayTeamID,
		KickoffAt: nullableKickoff(fx.KickoffAt),
		Venue:     fx.Venue,
		Status:    fx.Status.String(),
	}, "")
	if err != nil {
		return fmt.Errorf("build insert fixture query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert fixture: %w", err)
	}

	return nil
}

func (r *FixtureRepository) Update(ctx context.Context, fx fixture.Fixture) error {
	query, args, err := qb.Update("fixtures").
		Set("home_team_public_id", fx.HomeTeamID).
		Set("away_team_public_id", fx.AwayTeamID).
		Set("kickoff_at", nullableKickoff(fx.KickoffAt)).
		Set("venue", fx.Venue).
		Set("status", fx.Status.String()).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", fx.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update fixture query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update fixture: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("fixture %s not found", fx.ID)
	}

	return nil
}

func (r *FixtureRepository) toDomain(ctx context.Context, rows []fixtureTableModel) []fixture.Fixture {
	out := make([]fixture.Fixture, 0, len(rows))
	for _, row := range rows {
		out = append(out, r.rowToDomain(ctx, row))
	}
	return out
}

func (r *FixtureRepository) rowToDomain(ctx context.Context, row fixtureTableModel) fixture.Fixture {
	status, err := fixture.ParseStatus(row.Status)
	if err != nil {
		// unknown rows stay out of standings rather than failing reads
		r.logger.WarnContext(ctx, "unknown fixture status in storage, treating as scheduled",
			"fixture_id", row.PublicID,
			"status", row.Status,
		)
		status = fixture.StatusScheduled
	}

	return fixture.Fixture{
		ID:         row.PublicID,
		LeagueID:   row.LeagueID,
		HomeTeamID: row.HomeTeam,
		AwayTeamID: row.AwayTeam,
		KickoffAt:  nullTimeToTime(row.KickoffAt),
		Venue:      row.Venue,
		Status:     status,
	}
}

func nullableKickoff(value time.Time) *time.Time {
	if value.IsZero() {
		return nil
	}
	return &value
}
