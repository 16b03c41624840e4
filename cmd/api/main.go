package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/staff-records/internal/api/http"
	"github.com/spec-kit/staff-records/internal/api/http/handlers"
	"github.com/spec-kit/staff-records/internal/config"
	"github.com/spec-kit/staff-records/internal/observability"
	"github.com/spec-kit/staff-records/internal/persistence"
	"github.com/spec-kit/staff-records/internal/repository"
	"github.com/spec-kit/staff-records/internal/service"
	"github.com/spec-kit/staff-records/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	metrics := observability.NewMetrics()

	staffRepo := repository.NewStaffRepository(pg.PoolHandle())
	photoStore := storage.NewPhotoStore(cfg.Upload.PublicRoot, cfg.Upload.PhotoDir)

	staffService := service.NewStaffService(service.Dependencies{
		Repo:     staffRepo,
		Photos:   photoStore,
		Cache:    redis.ClientHandle(),
		CacheTTL: cfg.Redis.CacheTTL(),
		Logger:   logger,
	})

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	healthHandler := handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis, metrics)
	staffHandler := handlers.NewStaffHandler(staffService)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:     healthHandler,
		Staff:      staffHandler,
		PublicRoot: cfg.Upload.PublicRoot,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
