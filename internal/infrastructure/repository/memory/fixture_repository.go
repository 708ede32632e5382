package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/rugby-league/internal/domain/fixture"
)

type FixtureRepository struct {
	mu     sync.RWMutex
	items  map[string]fixture.Fixture
	orders []string
}

func NewFixtureRepository(fixtures []fixture.Fixture) *FixtureRepository {
	items := make(map[string]fixture.Fixture, len(fixtures))
	orders := make([]string, 0, len(fixtures))
	for _, item := range fixtures {
		items[item.ID] = item
		orders = append(orders, item.ID)
	}

	return &FixtureRepository{
		items:  items,
		orders: orders,
	}
}

func (r *FixtureRepository) List(_ context.Context) ([]fixture.Fixture, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fixture.Fixture, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}

	return out, nil
}

func (r *FixtureRepository) ListByLeague(_ context.Context, leagueID string) ([]fixture.Fixture, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fixture.Fixture, 0, len(r.orders))
	for _, id := range r.orders {
		if item := r.items[id]; item.LeagueID == leagueID {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *FixtureRepository) GetByID(_ context.Context, fixtureID string) (fixture.Fixture, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[fixtureID]
	if !ok {
		return fixture.Fixture{}, false, nil
	}

	return item, true, nil
}

func (r *FixtureRepository) Create(_ context.Context, fx fixture.Fixture) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[fx.ID]; exists {
		return fmt.Errorf("fixture %s already exists", fx.ID)
	}
	r.items[fx.ID] = fx
	r.orders = append(r.orders, fx.ID)

	return nil
}

func (r *FixtureRepository) Update(_ context.Context, fx fixture.Fixture) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[fx.ID]; !exists {
		return fmt.Errorf("fixture %s not found", fx.ID)
	}
	r.items[fx.ID] = fx

	return nil
}
