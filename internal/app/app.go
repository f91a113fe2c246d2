package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/Chango93/quinielacartoimagen-sub000/external/apifootball"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/config"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/match"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/matchday"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/prediction"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/profile"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/domain/team"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/infrastructure/repository/memory"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/infrastructure/repository/postgres"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/interfaces/httpapi"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/platform/logging"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/platform/resilience"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/scheduler"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/usecase"
)

// App bundles the HTTP server and the background sync runner; Scheduler is
// nil when SYNC_ENABLED=false.
type App struct {
	Server    *http.Server
	Scheduler *scheduler.Runner

	db *sqlx.DB
}

type repositories struct {
	teams       team.Repository
	matchdays   matchday.Repository
	matches     match.Repository
	predictions prediction.Repository
	profiles    profile.Repository
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var db *sqlx.DB
	var repos repositories
	if cfg.DBURL == "" {
		// Demo mode: seeded in-memory stores, no external database.
		logger.Info("running with in-memory repositories", "reason", "DB_URL empty")
		now := time.Now().UTC()
		repos = repositories{
			teams:       memory.NewTeamRepository(memory.SeedTeams(), nil),
			matchdays:   memory.NewMatchdayRepository(memory.SeedMatchdays(now)),
			matches:     memory.NewMatchRepository(memory.SeedMatches(now)),
			predictions: memory.NewPredictionRepository(memory.SeedPredictions()),
			profiles:    memory.NewProfileRepository(memory.SeedProfiles()),
		}
	} else {
		opened, err := openDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		db = opened
		repos = repositories{
			teams:       postgres.NewTeamRepository(db),
			matchdays:   postgres.NewMatchdayRepository(db),
			matches:     postgres.NewMatchRepository(db),
			predictions: postgres.NewPredictionRepository(db),
			profiles:    postgres.NewProfileRepository(db),
		}
	}

	feedClient := apifootball.NewClient(apifootball.ClientConfig{
		HTTPClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   cfg.FeedTimeout,
		},
		BaseURL:    cfg.FeedBaseURL,
		Token:      cfg.FeedToken,
		Timeout:    cfg.FeedTimeout,
		MaxRetries: cfg.FeedMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.FeedCircuitEnabled,
			FailureThreshold: cfg.FeedCircuitFailureCount,
			OpenTimeout:      cfg.FeedCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.FeedCircuitHalfOpenMaxReq,
		},
	})

	scoringSvc := usecase.NewScoringService(repos.matchdays, repos.matches, repos.predictions, logger)
	syncSvc := usecase.NewSyncService(feedClient, repos.teams, repos.matchdays, repos.matches, repos.profiles, scoringSvc, logger)
	leaderboardSvc := usecase.NewLeaderboardService(repos.matchdays, repos.matches, repos.predictions, repos.profiles, logger)
	predictionSvc := usecase.NewPredictionService(repos.matchdays, repos.matches, repos.predictions, logger)

	handler := httpapi.NewHandler(syncSvc, scoringSvc, leaderboardSvc, predictionSvc, repos.profiles, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	var runner *scheduler.Runner
	if cfg.SyncEnabled {
		runner = scheduler.NewRunner(syncSvc, repos.matches, scheduler.Config{
			LiveInterval:   cfg.SyncLiveInterval,
			IdleInterval:   cfg.SyncIdleInterval,
			PreKickoffLead: cfg.SyncPreKickoffLead,
		}, logger)
	} else {
		logger.Info("background sync disabled", "reason", "SYNC_ENABLED=false")
	}

	return &App{
		Server:    server,
		Scheduler: runner,
		db:        db,
	}, nil
}

func (a *App) Close() error {
	if a == nil || a.db == nil {
		return nil
	}
	return a.db.Close()
}
