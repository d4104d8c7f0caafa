package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/warehousedev/inventory-service/api/controllers"
	"github.com/warehousedev/inventory-service/api/middleware"
	inventorysvc "github.com/warehousedev/inventory-service/internal/inventory"
	"github.com/warehousedev/inventory-service/pkg/cache"
	"github.com/warehousedev/inventory-service/pkg/config"
	"github.com/warehousedev/inventory-service/pkg/db"
	"github.com/warehousedev/inventory-service/pkg/logger"
	"github.com/warehousedev/inventory-service/pkg/metrics"
)

// NewRouter assembles the route table and middleware chain. cacheClient may
// be nil; the service then runs without write rate limiting and the readiness
// probe skips the cache check.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	cacheClient *cache.Client,
	inventoryService inventorysvc.Service,
) http.Handler {
	r := chi.NewRouter()

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	writePolicy := middleware.NewWriteRateLimitPolicy(
		cfg.RateLimit.WriteWindow,
		cfg.RateLimit.WriteLimit,
	)
	writeLimit := middleware.WriteRateLimit(writePolicy, limiterStore(cacheClient), logg)

	r.Get("/", controllers.ServiceIndex())

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, cachePinger(cacheClient)))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	r.Route("/inventory", func(r chi.Router) {
		r.Get("/", controllers.ListInventory(inventoryService, logg))
		r.With(writeLimit).Post("/", controllers.CreateInventory(inventoryService, logg))

		r.Route("/{productID}/condition/{condition}", func(r chi.Router) {
			r.Get("/", controllers.GetInventory(inventoryService, logg))
			r.With(writeLimit).Put("/", controllers.UpdateInventory(inventoryService, logg))
			r.With(writeLimit).Delete("/", controllers.DeleteInventory(inventoryService, logg))
			r.With(writeLimit).Put("/activate", controllers.ActivateInventory(inventoryService, logg))
			r.With(writeLimit).Put("/deactivate", controllers.DeactivateInventory(inventoryService, logg))
		})
	})

	return r
}

// limiterStore narrows the optional cache client for the rate limiter,
// keeping a nil *cache.Client from masquerading as a usable store.
func limiterStore(client *cache.Client) middleware.RateLimiterStore {
	if client == nil {
		return nil
	}
	return client
}

func cachePinger(client *cache.Client) cache.Pinger {
	if client == nil {
		return nil
	}
	return client
}
