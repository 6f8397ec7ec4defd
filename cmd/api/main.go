package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/greentouch-site/internal/api/dto"
	httptransport "github.com/spec-kit/greentouch-site/internal/api/http"
	"github.com/spec-kit/greentouch-site/internal/api/http/handlers"
	"github.com/spec-kit/greentouch-site/internal/auth"
	"github.com/spec-kit/greentouch-site/internal/config"
	"github.com/spec-kit/greentouch-site/internal/events"
	"github.com/spec-kit/greentouch-site/internal/observability"
	"github.com/spec-kit/greentouch-site/internal/persistence"
	"github.com/spec-kit/greentouch-site/internal/repository"
	"github.com/spec-kit/greentouch-site/internal/service"
	"github.com/spec-kit/greentouch-site/internal/worker"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.App, cfg.Logger)
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

	if pg.Enabled() && cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.Pool, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	var journal service.EventJournal
	if pg.Enabled() {
		journal = persistence.NewEventJournal(pg.Pool)
	}
	var bus service.EventBus
	if redis.Enabled() {
		bus = persistence.NewRedisEventBus(redis.Client, cfg.Redis.EventsChannel)
	}

	store := repository.NewSeededStore()
	dispatcher := events.NewInMemoryDispatcher()
	latency := service.NewLatency(cfg.Latency)

	notificationService := service.NewNotificationService(journal, bus, logger, cfg.Notification)
	notifications := worker.NewNotificationWorker(notificationService, logger, 0, 0)
	notifications.Register(dispatcher)
	notifications.Start(ctx)

	deps := service.NewDependencies(store, dispatcher, latency, logger)
	authService, err := service.NewAuthService(*cfg, latency, logger)
	if err != nil {
		logger.Fatal("failed to init admin credential", zap.Error(err))
	}

	metrics := observability.NewMetrics()
	validator, err := dto.NewValidator()
	if err != nil {
		logger.Fatal("failed to init validator", zap.Error(err))
	}

	app := httptransport.NewApp(cfg.App.Name)
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService, validator),
		Quotes:         handlers.NewQuotesHandler(service.NewQuoteService(deps), validator),
		Appointments:   handlers.NewAppointmentsHandler(service.NewAppointmentService(deps), validator),
		Testimonials:   handlers.NewTestimonialsHandler(service.NewTestimonialService(deps), validator),
		Gallery:        handlers.NewGalleryHandler(service.NewGalleryService(deps), validator),
		Dashboard:      handlers.NewDashboardHandler(service.NewDashboardService(deps), metrics),
		Site:           handlers.NewSiteHandler(service.NewSiteService(latency), validator),
		AuthMiddleware: auth.NewAuthMiddleware(authService.TokenManager()),
		RateLimiter:    httptransport.NewRateLimiter(cfg.RateLimit, logger),
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		logger.Warn("http shutdown", zap.Error(err))
	}
	notifications.Stop()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
