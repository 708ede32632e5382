package standing

import "context"

// Repository describes standings persistence needs from use cases.
type Repository interface {
	ListByLeague(ctx context.Context, leagueID string) ([]Standing, error)

	// Upsert atomically inserts or replaces the row keyed by
	// (LeagueID, TeamID).
	Upsert(ctx context.Context, st Standing) error
}
