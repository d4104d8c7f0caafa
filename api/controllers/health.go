package controllers

import (
	"net/http"

	"github.com/warehousedev/inventory-service/api/responses"
	"github.com/warehousedev/inventory-service/pkg/cache"
	"github.com/warehousedev/inventory-service/pkg/config"
	"github.com/warehousedev/inventory-service/pkg/db"
	"github.com/warehousedev/inventory-service/pkg/logger"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Inventory-Env", cfg.App.Env)
		responses.WriteJSON(w, http.StatusOK, map[string]string{"status": "live"})
	}
}

// HealthReady probes the datastore, and the cache when one is wired. A nil
// cache pinger means the service runs without redis and the probe is skipped.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, cacheP cache.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Inventory-Env", cfg.App.Env)

		checks := map[string]string{}
		healthy := true

		if dbP == nil {
			checks["database"] = "not configured"
			healthy = false
		} else if err := dbP.Ping(r.Context()); err != nil {
			checks["database"] = "down"
			healthy = false
			if logg != nil {
				logg.Error(r.Context(), "health.database.unreachable", err)
			}
		} else {
			checks["database"] = "up"
		}

		if cacheP != nil {
			if err := cacheP.Ping(r.Context()); err != nil {
				checks["cache"] = "down"
				healthy = false
				if logg != nil {
					logg.Error(r.Context(), "health.cache.unreachable", err)
				}
			} else {
				checks["cache"] = "up"
			}
		}

		status := http.StatusOK
		payload := map[string]any{"status": "ready", "checks": checks}
		if !healthy {
			status = http.StatusServiceUnavailable
			payload["status"] = "degraded"
		}
		responses.WriteJSON(w, status, payload)
	}
}
