package result

import "context"

// Repository describes result persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Result, error)
	ListByLeague(ctx context.Context, leagueID string) ([]Result, error)
	GetByFixture(ctx context.Context, fixtureID string) (Result, bool, error)
	Create(ctx context.Context, res Result) error
	Update(ctx context.Context, res Result) error
}
