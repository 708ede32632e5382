package postgres

import (
	"context"
	"time"

	"github.com/bytedance/sonic"

	"github.com/riskibarqy/rugby-league/internal/domain/result"
	"github.com/riskibarqy/rugby-league/internal/platform/logging"
)

type resultTableModel struct {
	ID          int64      `db:"id"`
	PublicID    string     `db:"public_id"`
	FixtureID   string     `db:"fixture_public_id"`
	HomeScore   int        `db:"home_score"`
	AwayScore   int        `db:"away_score"`
	HomeScorers []byte     `db:"home_scorers"`
	AwayScorers []byte     `db:"away_scorers"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
}

type resultInsertModel struct {
	PublicID    string `db:"public_id"`
	FixtureID   string `db:"fixture_public_id"`
	HomeScore   int    `db:"home_score"`
	AwayScore   int    `db:"away_score"`
	HomeScorers []byte `db:"home_scorers"`
	AwayScorers []byte `db:"away_scorers"`
}

// toDomain decodes both scorer columns exactly once, at the storage
// boundary. Malformed scorer payloads degrade to an empty list so a
// bad row cannot block a whole league recalculation.
func (row resultTableModel) toDomain(ctx context.Context, logger *logging.Logger) result.Result {
	return result.Result{
		ID:          row.PublicID,
		FixtureID:   row.FixtureID,
		HomeScore:   row.HomeScore,
		AwayScore:   row.AwayScore,
		HomeScorers: decodeScorerColumn(ctx, logger, row.PublicID, "home_scorers", row.HomeScorers),
		AwayScorers: decodeScorerColumn(ctx, logger, row.PublicID, "away_scorers", row.AwayScorers),
	}
}

func decodeScorerColumn(ctx context.Context, logger *logging.Logger, resultID, column string, raw []byte) []result.Scorer {
	scorers, err := result.DecodeScorers(raw)
	if err != nil {
		logger.WarnContext(ctx, "malformed scorers payload, treating as empty",
			"result_id", resultID,
			"column", column,
			"error", err,
		)
		return []result.Scorer{}
	}
	return scorers
}

func encodeScorers(scorers []result.Scorer) ([]byte, error) {
	if scorers == nil {
		scorers = []result.Scorer{}
	}
	return sonic.Marshal(scorers)
}
