package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httptransport "github.com/neuralink-ai/site-backend/internal/api/http"
	"github.com/neuralink-ai/site-backend/internal/api/http/handlers"
	"github.com/neuralink-ai/site-backend/internal/config"
	"github.com/neuralink-ai/site-backend/internal/events"
	"github.com/neuralink-ai/site-backend/internal/observability"
	"github.com/neuralink-ai/site-backend/internal/persistence"
	"github.com/neuralink-ai/site-backend/internal/repository"
	"github.com/neuralink-ai/site-backend/internal/seed"
	"github.com/neuralink-ai/site-backend/internal/service"
	"github.com/neuralink-ai/site-backend/internal/worker"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := observability.NewLogger(cfg.Logger,
		zap.String("service", cfg.App.Name),
		zap.String("version", cfg.App.Version))
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	catalog, err := seed.Load()
	if err != nil {
		return fmt.Errorf("load seed catalog: %w", err)
	}

	var pg *persistence.Postgres
	if cfg.Store.Backend == config.StoreBackendPostgres {
		pg, err = persistence.NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer pg.Close()

		if cfg.Postgres.RunMigrations {
			if err := persistence.RunMigrations(ctx, cfg.Postgres.DSN, logger); err != nil {
				return fmt.Errorf("run migrations: %w", err)
			}
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	var (
		serviceRepo      repository.ServiceRepository
		consultationRepo repository.ConsultationRepository
	)
	if pg.Enabled() {
		pgServices := repository.NewPostgresServiceRepository(pg.PoolHandle())
		seeded, err := pgServices.SeedIfEmpty(ctx, catalog.Services)
		if err != nil {
			return fmt.Errorf("seed services: %w", err)
		}
		if seeded > 0 {
			logger.Info("seeded services table", zap.Int("count", seeded))
		}
		serviceRepo = pgServices
		consultationRepo = repository.NewPostgresConsultationRepository(pg.PoolHandle())
	} else {
		serviceRepo = repository.NewMemoryServiceRepository(catalog.Services)
		consultationRepo = repository.NewMemoryConsultationRepository()
	}
	teamRepo := repository.NewMemoryTeamRepository(catalog.Team)

	dispatcher := events.NewInMemoryDispatcher()
	var publisher service.Publisher
	if redis != nil {
		publisher = redis
	}
	worker.StartNotificationWorker(
		service.NewNotificationService(dispatcher, publisher, logger.Named("notifications"), cfg.Notification),
		logger,
	)

	catalogService := service.NewCatalogService(service.CatalogDependencies{
		ServiceRepo: serviceRepo,
		Dispatcher:  dispatcher,
	})
	consultationService := service.NewConsultationService(service.ConsultationDependencies{
		ConsultationRepo: consultationRepo,
		Dispatcher:       dispatcher,
	})
	dashboardService := service.NewDashboardService(service.DashboardDependencies{
		ServiceRepo:      serviceRepo,
		TeamRepo:         teamRepo,
		ConsultationRepo: consultationRepo,
		User:             catalog.DashboardUser,
	})

	dependencies := map[string]handlers.Pinger{}
	if pg.Enabled() {
		dependencies["postgres"] = pg
	}
	if redis != nil {
		dependencies["redis"] = redis
	}

	app := httptransport.NewServer(httptransport.ServerConfig{
		AppName:    cfg.App.Name,
		Logger:     logger,
		Middleware: httptransport.MiddlewareConfig{AllowOrigins: cfg.App.CORSAllowOrigins},
		Routes: httptransport.RouteConfig{
			Health:    handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, dependencies),
			Services:  handlers.NewServicesHandler(catalogService),
			Team:      handlers.NewTeamHandler(service.NewTeamService(teamRepo)),
			Contact:   handlers.NewContactHandler(service.NewContactService(catalog.Contact), consultationService),
			Dashboard: handlers.NewDashboardHandler(dashboardService),
			Metrics:   observability.NewMetrics(),
		},
	})

	listenErr := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			zap.String("addr", cfg.App.Addr()),
			zap.String("store", cfg.Store.Backend))
		listenErr <- app.Listen(cfg.App.Addr())
	}()

	select {
	case err := <-listenErr:
		if err != nil {
			return fmt.Errorf("fiber listen: %w", err)
		}
		return nil
	case sig := <-waitForShutdown():
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	return app.Shutdown()
}

func waitForShutdown() <-chan os.Signal {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	return sigCh
}
