package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/ghuser/itemsdemo/docs/swagger"
	"github.com/ghuser/itemsdemo/pkg/app"
	"github.com/ghuser/itemsdemo/pkg/cache"
	"github.com/ghuser/itemsdemo/pkg/config"
	"github.com/ghuser/itemsdemo/pkg/errhttp"
	"github.com/ghuser/itemsdemo/pkg/events"
	"github.com/ghuser/itemsdemo/pkg/httpx"
	"github.com/ghuser/itemsdemo/pkg/logger"
	"github.com/ghuser/itemsdemo/pkg/telemetry"
	itemApi "github.com/ghuser/itemsdemo/services/item/application/api"
	itemServices "github.com/ghuser/itemsdemo/services/item/application/services"
	itemSubscribers "github.com/ghuser/itemsdemo/services/item/application/subscribers"
)

// @title			Items API
// @version		1.0
// @description	In-memory items CRUD service.
// @license.name	MIT
// @license.url	https://opensource.org/licenses/MIT
// @host			localhost:3000
// @BasePath		/
// @schemes		http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	// Telemetry: OTel tracing + metrics
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(context.Background()) //nolint:errcheck

	// Crash reporting: Sentry (optional, log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	eventBus := events.NewEventBus(cfg, log)
	defer eventBus.Close() //nolint:errcheck

	// Redis is optional: the item cache is disabled when REDIS_URL is empty.
	var redisClient *cache.RedisClient
	if cfg.RedisURL != "" {
		redisClient, err = cache.NewRedisClient(cfg)
		if err != nil {
			log.Error("failed to connect to redis", "error", err)
			os.Exit(1) //nolint:gocritic // intentional: startup failure
		}
		defer redisClient.Close() //nolint:errcheck
		log.Info("redis connected", "item_cache_ttl", cfg.ItemCacheTTL)
	}

	appConfig := &app.Application{
		Config:   cfg,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	if err := itemSubscribers.RegisterActivityLog(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
			RateLimitPerMinute: cfg.RateLimitPerMinute,
		},
		logger.Middleware(log),
		logger.Recovery(log, errhttp.InternalHandler(itemApi.Responder(appConfig))),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	svcs := registerRoutes(r, appConfig)

	checks := httpx.HealthChecks{
		"store":     svcs.Store,
		"event_bus": eventBus,
	}
	if redisClient != nil {
		checks["redis"] = redisClient
	}
	r.Get("/health", httpx.HealthHandler(checks))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	srv := httpx.NewServer(cfg.Addr(), r)

	go func() {
		log.Info("server listening",
			"addr", srv.Addr,
			"env", cfg.Environment,
			"envelope", cfg.ResponseEnvelope,
			"seeded", cfg.SeedItems,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	_ = svcs.Store.Close()
	log.Info("server stopped")
}

// registerRoutes mounts all service routes at the root.
// Add each new service's route function here.
func registerRoutes(r chi.Router, a *app.Application) *itemServices.Services {
	return itemApi.ItemRoutes(r, a)
}
