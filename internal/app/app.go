package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/riskibarqy/rugby-league/internal/config"
	"github.com/riskibarqy/rugby-league/internal/domain/fixture"
	"github.com/riskibarqy/rugby-league/internal/domain/league"
	"github.com/riskibarqy/rugby-league/internal/domain/result"
	"github.com/riskibarqy/rugby-league/internal/domain/standing"
	"github.com/riskibarqy/rugby-league/internal/domain/team"
	"github.com/riskibarqy/rugby-league/internal/infrastructure/account/anubis"
	"github.com/riskibarqy/rugby-league/internal/infrastructure/notify"
	cacherepo "github.com/riskibarqy/rugby-league/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/rugby-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/rugby-league/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/rugby-league/internal/infrastructure/seasonconfig"
	"github.com/riskibarqy/rugby-league/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/rugby-league/internal/platform/cache"
	idgen "github.com/riskibarqy/rugby-league/internal/platform/id"
	"github.com/riskibarqy/rugby-league/internal/platform/logging"
	"github.com/riskibarqy/rugby-league/internal/platform/resilience"
	"github.com/riskibarqy/rugby-league/internal/usecase"
)

// App bundles the HTTP server with the resources it owns.
type App struct {
	Server *http.Server

	db     *sqlx.DB
	logger *logging.Logger
}

type repositories struct {
	leagues   league.Repository
	teams     team.Repository
	fixtures  fixture.Repository
	results   result.Repository
	standings standing.Repository
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, db, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, err
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		repos.leagues = cacherepo.NewLeagueRepository(repos.leagues, store)
		repos.teams = cacherepo.NewTeamRepository(repos.teams, store)
		repos.fixtures = cacherepo.NewFixtureRepository(repos.fixtures, store)
		repos.standings = cacherepo.NewStandingRepository(repos.standings, store)
	}

	seasons := seasonconfig.NewSource(seasonconfig.Config{
		URL:            cfg.SeasonConfigURL,
		Timeout:        cfg.SeasonConfigTimeout,
		FallbackSeason: cfg.SeasonFallback,
	}, logger)
	seasons.Load(ctx)

	var notifier usecase.StandingsNotifier
	if cfg.QStashEnabled {
		notifier = notify.NewQStashPublisher(notify.QStashPublisherConfig{
			BaseURL:          cfg.QStashBaseURL,
			Token:            cfg.QStashToken,
			TargetBaseURL:    cfg.QStashTargetBaseURL,
			Retries:          cfg.QStashRetries,
			InternalJobToken: cfg.InternalJobToken,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.QStashCircuitEnabled,
				FailureThreshold: cfg.QStashCircuitFailureCount,
				OpenTimeout:      cfg.QStashCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.QStashCircuitHalfOpenMaxReq,
			},
		}, logger)
	}

	standingSvc := usecase.NewStandingService(
		repos.leagues,
		repos.fixtures,
		repos.results,
		repos.standings,
		seasons,
		notifier,
		logger,
	)
	leagueSvc := usecase.NewLeagueService(repos.leagues, repos.teams)
	fixtureSvc := usecase.NewFixtureService(
		repos.leagues,
		repos.teams,
		repos.fixtures,
		repos.results,
		standingSvc,
		idgen.NewRandomGenerator(),
		logger,
	)

	anubisClient := anubis.NewClient(
		&http.Client{Timeout: cfg.AnubisTimeout},
		cfg.AnubisBaseURL,
		cfg.AnubisIntrospectURL,
		cfg.AnubisAdminKey,
		resilience.CircuitBreakerConfig{
			Enabled:          cfg.AnubisCircuitEnabled,
			FailureThreshold: cfg.AnubisCircuitFailureCount,
			OpenTimeout:      cfg.AnubisCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.AnubisCircuitHalfOpenMaxReq,
		},
		logger,
	)

	handler := httpapi.NewHandler(leagueSvc, fixtureSvc, standingSvc, logger)
	router := httpapi.NewRouter(handler, anubisClient, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &App{Server: server, db: db, logger: logger}, nil
}

// Close releases resources the app holds besides the HTTP server.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}

	return a.db.Close()
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, *sqlx.DB, error) {
	if strings.TrimSpace(cfg.DBURL) == "" {
		logger.Info("db url not configured, using seeded in-memory repositories")
		return buildMemoryRepositories(), nil, nil
	}

	db, err := openDB(cfg)
	if err != nil {
		return repositories{}, nil, fmt.Errorf("open database: %w", err)
	}

	return repositories{
		leagues:   postgres.NewLeagueRepository(db),
		teams:     postgres.NewTeamRepository(db),
		fixtures:  postgres.NewFixtureRepository(db, logger),
		results:   postgres.NewResultRepository(db, logger),
		standings: postgres.NewStandingRepository(db),
	}, db, nil
}

func buildMemoryRepositories() repositories {
	fixtureRepo := memory.NewFixtureRepository(memory.SeedFixtures())
	resultRepo := memory.NewResultRepository(memory.SeedResults(), func(fixtureID string) (string, bool) {
		fx, exists, err := fixtureRepo.GetByID(context.Background(), fixtureID)
		if err != nil || !exists {
			return "", false
		}
		return fx.LeagueID, true
	})

	return repositories{
		leagues:   memory.NewLeagueRepository(memory.SeedLeagues()),
		teams:     memory.NewTeamRepository(memory.SeedTeams()),
		fixtures:  fixtureRepo,
		results:   resultRepo,
		standings: memory.NewStandingRepository(),
	}
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Open("postgres", dbURL,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(dbURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
