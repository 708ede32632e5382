package cache

import (
	"context"

	"github.com/riskibarqy/rugby-league/internal/domain/fixture"
	"github.com/riskibarqy/rugby-league/internal/domain/league"
	"github.com/riskibarqy/rugby-league/internal/domain/standing"
	"github.com/riskibarqy/rugby-league/internal/domain/team"
	basecache "github.com/riskibarqy/rugby-league/internal/platform/cache"
)

type LeagueRepository struct {
	next  league.Repository
	cache *basecache.Store
}

func NewLeagueRepository(next league.Repository, cache *basecache.Store) *LeagueRepository {
	return &LeagueRepository{next: next, cache: cache}
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	v, err := r.cache.GetOrLoad(ctx, "league:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]league.League(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]league.League)
	return append([]league.League(nil), items...), nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	key := "league:id:" + leagueID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, leagueID)
		if err != nil {
			return nil, err
		}
		return cachedLeagueByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return league.League{}, false, err
	}

	cached, _ := v.(cachedLeagueByID)
	return cached.value, cached.exists, nil
}

type cachedLeagueByID struct {
	value  league.League
	exists bool
}

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) ListByLeague(ctx context.Context, leagueID string) ([]team.Team, error) {
	key := "team:list:" + leagueID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByLeague(ctx, leagueID)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	key := "team:id:" + teamID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, teamID)
		if err != nil {
			return nil, err
		}
		return cachedTeamByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedTeamByID)
	return cached.value, cached.exists, nil
}

type cachedTeamByID struct {
	value  team.Team
	exists bool
}

type FixtureRepository struct {
	next  fixture.Repository
	cache *basecache.Store
}

func NewFixtureRepository(next fixture.Repository, cache *basecache.Store) *FixtureRepository {
	return &FixtureRepository{next: next, cache: cache}
}

func (r *FixtureRepository) List(ctx context.Context) ([]fixture.Fixture, error) {
	return r.next.List(ctx)
}

func (r *FixtureRepository) ListByLeague(ctx context.Context, leagueID string) ([]fixture.Fixture, error) {
	key := "fixture:list:" + leagueID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByLeague(ctx, leagueID)
		if err != nil {
			return nil, err
		}
		return append([]fixture.Fixture(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]fixture.Fixture)
	return append([]fixture.Fixture(nil), items...), nil
}

func (r *FixtureRepository) GetByID(ctx context.Context, fixtureID string) (fixture.Fixture, bool, error) {
	key := "fixture:id:" + fixtureID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, fixtureID)
		if err != nil {
			return nil, err
		}
		return cachedFixtureByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return fixture.Fixture{}, false, err
	}

	cached, _ := v.(cachedFixtureByID)
	return cached.value, cached.exists, nil
}

func (r *FixtureRepository) Create(ctx context.Context, fx fixture.Fixture) error {
	if err := r.next.Create(ctx, fx); err != nil {
		return err
	}
	r.cache.Delete(ctx, "fixture:list:"+fx.LeagueID)
	return nil
}

func (r *FixtureRepository) Update(ctx context.Context, fx fixture.Fixture) error {
	if err := r.next.Update(ctx, fx); err != nil {
		return err
	}
	r.cache.Delete(ctx, "fixture:id:"+fx.ID)
	r.cache.Delete(ctx, "fixture:list:"+fx.LeagueID)
	return nil
}

type cachedFixtureByID struct {
	value  fixture.Fixture
	exists bool
}

type StandingRepository struct {
	next  standing.Repository
	cache *basecache.Store
}

func NewStandingRepository(next standing.Repository, cache *basecache.Store) *StandingRepository {
	return &StandingRepository{next: next, cache: cache}
}

func (r *StandingRepository) ListByLeague(ctx context.Context, leagueID string) ([]standing.Standing, error) {
	key := "standing:list:" + leagueID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByLeague(ctx, leagueID)
		if err != nil {
			return nil, err
		}
		return append([]standing.Standing(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]standing.Standing)
	return append([]standing.Standing(nil), items...), nil
}

func (r *StandingRepository) Upsert(ctx context.Context, st standing.Standing) error {
	if err := r.next.Upsert(ctx, st); err != nil {
		return err
	}
	r.cache.Delete(ctx, "standing:list:"+st.LeagueID)
	return nil
}
