package app

import (
	"github.com/ghuser/grow/pkg/cache"
	"github.com/ghuser/grow/pkg/config"
	"github.com/ghuser/grow/pkg/database"
	"github.com/ghuser/grow/pkg/events"
	"github.com/ghuser/grow/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass it to every bounded context's Routes function during server start-up.
//
// Optional dependencies are nil when not configured:
//   - Db is nil for the memory storage driver.
//   - EventBus is nil unless the storage driver is postgres.
//   - Redis is nil when the cache is disabled.
//
// Logging: app.Logger is backed by a trace-aware handler. Use slog's context
// methods and trace_id, span_id and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "beds replaced", "count", n)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config   *config.Config
	Db       *database.Database
	Logger   logger.Logger
	EventBus *events.EventBus
	Redis    *cache.RedisClient
}
