package fixture

import "context"

// Repository describes fixture persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Fixture, error)
	ListByLeague(ctx context.Context, leagueID string) ([]Fixture, error)
	GetByID(ctx context.Context, fixtureID string) (Fixture, bool, error)
	Create(ctx context.Context, fx Fixture) error
	Update(ctx context.Context, fx Fixture) error
}
