package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pressly/goose/v3"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/ghuser/grow/docs/swagger"
	"github.com/ghuser/grow/migrations"
	"github.com/ghuser/grow/pkg/app"
	"github.com/ghuser/grow/pkg/cache"
	"github.com/ghuser/grow/pkg/config"
	"github.com/ghuser/grow/pkg/database"
	"github.com/ghuser/grow/pkg/errhttp"
	"github.com/ghuser/grow/pkg/events"
	"github.com/ghuser/grow/pkg/httpx"
	"github.com/ghuser/grow/pkg/logger"
	"github.com/ghuser/grow/pkg/migrator"
	"github.com/ghuser/grow/pkg/telemetry"
	gardenApi "github.com/ghuser/grow/services/garden/application/api"
	plantApi "github.com/ghuser/grow/services/plant/application/api"
)

const apiConsumerGroup = "grow-api"

// @title			Grow API
// @version		1.0
// @description	Garden bed management: ordered bed collections and plant families for crop rotation.
// @license.name	MIT
// @license.url	https://opensource.org/licenses/MIT
// @host			localhost:8080
// @BasePath		/api
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
	errhttp.HideInternalErrors(cfg.Environment == config.EnvProduction)

	// Telemetry: OTel tracing + metrics
	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	// Crash reporting: Sentry (optional, log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	a := &app.Application{Config: cfg, Logger: log}

	db, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Error("failed to open storage", "driver", cfg.StorageDriver, "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}
	if db != nil {
		defer db.Close() //nolint:errcheck
		a.Db = db
	}
	log.Info("storage ready", "driver", cfg.StorageDriver)

	if cfg.UsesEventBus() {
		eventBus, err := events.NewEventBus(db.DB(), events.Options{
			ConsumerGroup: apiConsumerGroup,
			UseForwarder:  true,
		}, log)
		if err != nil {
			log.Error("failed to setup event bus", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer eventBus.Close() //nolint:errcheck

		if err := eventBus.StartForwarder(ctx); err != nil {
			log.Error("failed to start event forwarder", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		a.EventBus = eventBus
	}

	if cfg.CacheEnabled {
		redisClient, err := cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			// The cache is an optimisation; serve from storage alone.
			log.Warn("redis unavailable, bed cache disabled", "error", err)
		} else {
			defer redisClient.Close() //nolint:errcheck
			a.Redis = redisClient
			log.Info("redis connected")
		}
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		httpx.Middlewares{
			Recovery: logger.Recovery(log),
			Sentry:   telemetry.SentryMiddleware(),
			Otel:     otelhttp.NewMiddleware(cfg.ServiceName),
			Logger:   logger.Middleware(log),
		},
	)

	r.Get("/", bannerHandler(cfg))
	r.Get("/health", httpx.HealthHandler(healthChecks(a)))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Route("/api", func(r chi.Router) {
		registerRoutes(r, a)
	})

	srv := httpx.NewServer(cfg.HTTPAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// openStorage connects the configured driver. The memory driver has no
// database and returns nil. SQLite is migrated in place on startup since it
// is used for single-node and local runs without a separate migrate step.
func openStorage(ctx context.Context, cfg *config.Config, log logger.Logger) (*database.Database, error) {
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		return database.NewPool(ctx, cfg.DatabaseURL, log)
	case config.DriverSQLite:
		db, err := database.OpenSQLite(ctx, cfg.SQLitePath, log)
		if err != nil {
			return nil, err
		}
		applied, err := migrator.Up(ctx, db.DB(), goose.DialectSQLite3, migrations.FS)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		log.Info("sqlite migrated", "path", cfg.SQLitePath, "versions", applied)
		return db, nil
	case config.DriverMemory:
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

// healthChecks lists only the dependencies this process actually holds.
func healthChecks(a *app.Application) httpx.HealthChecks {
	checks := httpx.HealthChecks{Storage: a.Config.StorageDriver}
	if a.Db != nil {
		checks.Database = a.Db
	}
	if a.Redis != nil {
		checks.Redis = a.Redis
	}
	if a.EventBus != nil {
		checks.EventBus = a.EventBus
	}
	return checks
}

func bannerHandler(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{
			"service": cfg.ServiceName,
			"version": cfg.ServiceVersion,
			"docs":    "/swagger/index.html",
		})
	}
}

// registerRoutes mounts all service routes under /api.
func registerRoutes(r chi.Router, a *app.Application) {
	gardenApi.GardenRoutes(r, a)
	plantApi.PlantRoutes(r, a)
}
