package httpx

import (
	"context"
	"net/http"
	"time"
)

// HealthChecker is satisfied by any dependency that exposes a Ping method
// (the item store, RedisClient and EventBus all qualify).
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthChecks maps a component name (reported as a JSON key) to its checker.
// Nil checkers are skipped so optional dependencies can be left unset.
type HealthChecks map[string]HealthChecker

// HealthHandler returns an http.HandlerFunc that probes all registered
// HealthCheckers and reports degraded status if any of them fail.
//
// Response shape: {"status": "ok"|"degraded", "<name>": "ok"|"unreachable", ...}
func HealthHandler(checks HealthChecks) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := map[string]string{"status": "ok"}
		for name, c := range checks {
			if c == nil {
				continue
			}
			if err := c.Ping(ctx); err != nil {
				resp["status"] = "degraded"
				resp[name] = "unreachable"
				continue
			}
			resp[name] = "ok"
		}

		status := http.StatusOK
		if resp["status"] != "ok" {
			status = http.StatusServiceUnavailable
		}
		JSON(w, status, resp)
	}
}
