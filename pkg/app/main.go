package app

import (
	"github.com/ghuser/itemsdemo/pkg/cache"
	"github.com/ghuser/itemsdemo/pkg/config"
	"github.com/ghuser/itemsdemo/pkg/events"
	"github.com/ghuser/itemsdemo/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to ItemRoutes during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler. Use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "processing item", "item_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config   *config.Config
	Logger   logger.Logger
	EventBus *events.EventBus
	Redis    *cache.RedisClient // nil when REDIS_URL is empty
}
