package httpx

import (
	"context"
	"net/http"
	"time"
)

// HealthChecker is satisfied by any infrastructure dependency that exposes
// a Ping method (database.Database, cache.RedisClient, events.EventBus).
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthChecks holds the dependencies probed by the health endpoint.
// A nil checker is reported as "disabled" and never degrades the status:
// the memory driver has no database and Redis is optional everywhere.
type HealthChecks struct {
	Storage  string
	Database HealthChecker
	Redis    HealthChecker
	EventBus HealthChecker
}

const (
	checkOK          = "ok"
	checkUnreachable = "unreachable"
	checkDisabled    = "disabled"
)

type healthResponse struct {
	Status   string `json:"status"`
	Storage  string `json:"storage,omitempty"`
	Database string `json:"database"`
	Redis    string `json:"redis"`
	EventBus string `json:"event_bus"`
}

// HealthHandler returns an http.HandlerFunc that probes all configured
// HealthCheckers and reports degraded status if any of them fail.
func HealthHandler(checks HealthChecks) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := healthResponse{Status: "ok", Storage: checks.Storage}
		probe := func(c HealthChecker) string {
			if c == nil {
				return checkDisabled
			}
			if err := c.Ping(ctx); err != nil {
				resp.Status = "degraded"
				return checkUnreachable
			}
			return checkOK
		}
		resp.Database = probe(checks.Database)
		resp.Redis = probe(checks.Redis)
		resp.EventBus = probe(checks.EventBus)

		status := http.StatusOK
		if resp.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		JSON(w, status, resp)
	}
}
