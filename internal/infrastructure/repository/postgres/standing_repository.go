package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/rugby-league/internal/domain/standing"
	qb "github.com/riskibarqy/rugby-league/internal/platform/querybuilder"
)

type StandingRepository struct {
	db *sqlx.DB
}

func NewStandingRepository(db *sqlx.DB) *StandingRepository {
	return &StandingRepository{db: db}
}

func (r *StandingRepository) ListByLeague(ctx context.Context, leagueID string) ([]standing.Standing, error) {
	query, args, err := qb.Select("*").From("standings").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("points DESC", "points_difference DESC", "points_for DESC", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list standings query: %w", err)
	}

	var rows []standingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list standings: %w", err)
	}

	out := make([]standing.Standing, 0, len(rows))
	for _, row := range rows {
		out = append(out, standing.Standing{
			LeagueID:         row.LeagueID,
			TeamID:           row.TeamID,
			Played:           row.Played,
			Won:              row.Won,
			Drawn:            row.Drawn,
			Lost:             row.Lost,
			PointsFor:        row.PointsFor,
			PointsAgainst:    row.PointsAgainst,
			PointsDifference: row.PointsDifference,
			BonusPoints:      row.BonusPoints,
			Points:           row.Points,
		})
	}

	return out, nil
}

// Upsert inserts or replaces the row keyed by (league, team) in a
// single statement, so concurrent recalculations never race between
// a read and a write.
func (r *StandingRepository) Upsert(ctx context.Context, st standing.Standing) error {
	query, args, err := qb.InsertModel("standings", standingInsertModel{
		LeagueID:         st.LeagueID,
		TeamID:           st.TeamID,
		Played:           st.Played,
		Won:              st.Won,
		Drawn:            st.Drawn,
		Lost:             st.Lost,
		PointsFor:        st.PointsFor,
		PointsAgainst:    st.PointsAgainst,
		PointsDifference: st.PointsDifference,
		BonusPoints:      st.BonusPoints,
		Points:           st.Points,
	}, `ON CONFLICT (league_public_id, team_public_id) WHERE deleted_at IS NULL
DO UPDATE SET
    played = EXCLUDED.played,
    won = EXCLUDED.won,
    drawn = EXCLUDED.drawn,
    lost = EXCLUDED.lost,
    points_for = EXCLUDED.points_for,
    points_against = EXCLUDED.points_against,
    points_difference = EXCLUDED.points_difference,
    bonus_points = EXCLUDED.bonus_points,
    points = EXCLUDED.points,
    updated_at = NOW(),
    deleted_at = NULL`)
	if err != nil {
		return fmt.Errorf("build upsert standing query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert standing league=%s team=%s: %w", st.LeagueID, st.TeamID, err)
	}

	return nil
}
