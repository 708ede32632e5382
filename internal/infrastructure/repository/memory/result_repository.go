package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/rugby-league/internal/domain/result"
)

type ResultRepository struct {
	mu       sync.RWMutex
	items    map[string]result.Result
	orders   []string
	leagueOf func(fixtureID string) (string, bool)
}

// NewResultRepository stores results in memory. leagueOf resolves a
// fixture id to its league so ListByLeague can filter; it is usually
// a closure over the fixture repository.
func NewResultRepository(results []result.Result, leagueOf func(fixtureID string) (string, bool)) *ResultRepository {
	items := make(map[string]result.Result, len(results))
	orders := make([]string, 0, len(results))
	for _, item := range results {
		items[item.ID] = item
		orders = append(orders, item.ID)
	}
	if leagueOf == nil {
		leagueOf = func(string) (string, bool) { return "", false }
	}

	return &ResultRepository{
		items:    items,
		orders:   orders,
		leagueOf: leagueOf,
	}
}

func (r *ResultRepository) List(_ context.Context) ([]result.Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]result.Result, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}

	return out, nil
}

func (r *ResultRepository) ListByLeague(_ context.Context, leagueID string) ([]result.Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]result.Result, 0, len(r.orders))
	for _, id := range r.orders {
		item := r.items[id]
		if itemLeague, ok := r.leagueOf(item.FixtureID); ok && itemLeague == leagueID {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *ResultRepository) GetByFixture(_ context.Context, fixtureID string) (result.Result, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// later rows win when a fixture somehow holds several results
	var found result.Result
	ok := false
	for _, id := range r.orders {
		if item := r.items[id]; item.FixtureID == fixtureID {
			found = item
			ok = true
		}
	}

	return found, ok, nil
}

func (r *ResultRepository) Create(_ context.Context, res result.Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[res.ID]; exists {
		return fmt.Errorf("result %s already exists", res.ID)
	}
	r.items[res.ID] = res
	r.orders = append(r.orders, res.ID)

	return nil
}

func (r *ResultRepository) Update(_ context.Context, res result.Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[res.ID]; !exists {
		return fmt.Errorf("result %s not found", res.ID)
	}
	r.items[res.ID] = res

	return nil
}
