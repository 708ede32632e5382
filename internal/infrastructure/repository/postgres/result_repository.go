package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/rugby-league/internal/domain/result"
	"github.com/riskibarqy/rugby-league/internal/platform/logging"
	qb "github.com/riskibarqy/rugby-league/internal/platform/querybuilder"
)

type ResultRepository struct {
	db     *sqlx.DB
	logger *logging.Logger
}

func NewResultRepository(db *sqlx.DB, logger *logging.Logger) *ResultRepository {
	if logger == nil {
		logger = logging.Default()
	}
	return &ResultRepository{db: db, logger: logger}
}

func (r *ResultRepository) List(ctx context.Context) ([]result.Result, error) {
	query, args, err := qb.Select("*").From("results").
		Where(qb.IsNull("deleted_at")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select results query: %w", err)
	}

	var rows []resultTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select results: %w", err)
	}

	return r.toDomain(ctx, rows), nil
}

func (r *ResultRepository) ListByLeague(ctx context.Context, leagueID string) ([]result.Result, error) {
	query, args, err := qb.Select("results.*").From("results").
		Where(
			qb.Expr("results.fixture_public_id IN (SELECT public_id FROM fixtures WHERE league_public_id = ? AND deleted_at IS NULL)", leagueID),
			qb.IsNull("results.deleted_at"),
		).
		OrderBy("results.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select results by league query: %w", err)
	}

	var rows []resultTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select results by league: %w", err)
	}

	return r.toDomain(ctx, rows), nil
}

func (r *ResultRepository) GetByFixture(ctx context.Context, fixtureID string) (result.Result, bool, error) {
	query, args, err := qb.Select("*").From("results").
		Where(
			qb.Eq("fixture_public_id", fixtureID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("id DESC").
		Limit(1).
		ToSQL()
	if err != nil {
		return result.Result{}, false, fmt.Errorf("build get result by fixture query: %w", err)
	}

	var row resultTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return result.Result{}, false, nil
		}
		return result.Result{}, false, fmt.Errorf("get result by fixture: %w", err)
	}

	return row.toDomain(ctx, r.logger), true, nil
}

func (r *ResultRepository) Create(ctx context.Context, res result.Result) error {
	home, err := encodeScorers(res.HomeScorers)
	if err != nil {
		return fmt.Errorf("encode home scorers: %w", err)
	}
	away, err := encodeScorers(res.AwayScorers)
	if err != nil {
		return fmt.Errorf("encode away scorers: %w", err)
	}

	query, args, err := qb.InsertModel("results", resultInsertModel{
		PublicID:    res.ID,
		FixtureID:   res.FixtureID,
		HomeScore:   res.HomeScore,
		AwayScore:   res.AwayScore,
		HomeScorers: home,
		AwayScorers: away,
	}, "")
	if err != nil {
		return fmt.Errorf("build insert result query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert result: %w", err)
	}

	return nil
}

func (r *ResultRepository) Update(ctx context.Context, res result.Result) error {
	home, err := encodeScorers(res.HomeScorers)
	if err != nil {
		return fmt.Errorf("encode home scorers: %w", err)
	}
	away, err := encodeScorers(res.AwayScorers)
	if err != nil {
		return fmt.Errorf("encode away scorers: %w", err)
	}

	query, args, err := qb.Update("results").
		Set("home_score", res.HomeScore).
		Set("away_score", res.AwayScore).
		Set("home_scorers", home).
		Set("away_scorers", away).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", res.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update result query: %w", err)
	}

	out, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update result: %w", err)
	}
	if affected, err := out.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("result %s not found", res.ID)
	}

	return nil
}

func (r *ResultRepository) toDomain(ctx context.Context, rows []resultTableModel) []result.Result {
	out := make([]result.Result, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain(ctx, r.logger))
	}
	return out
}
