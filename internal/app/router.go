// Package app provides router configuration.
package app

import (
	"github.com/guttosm/waitlist-service/config"
	"github.com/guttosm/waitlist-service/internal/http"
	"github.com/guttosm/waitlist-service/internal/middleware"
	"github.com/guttosm/waitlist-service/internal/notifier"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes the health handler and router configuration.
func InitializeRouter(
	cfg config.Config,
	services *ServiceComponents,
	db *DatabaseComponents,
	n *notifier.Notifier,
	limiter middleware.Limiter,
) *RouterComponents {
	healthHandler := http.NewHealthHandler()
	healthHandler.SetSubscriberCounter(n)

	// Register the store and its circuit breaker for health monitoring
	if db != nil {
		healthHandler.RegisterChecker("mongodb", db.DB)
		if db.EntriesCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_entries", db.EntriesCircuitBreaker)
		}
	}

	routerCfg := http.RouterConfig{
		QueueService:    services.Queue,
		SeatingService:  services.Seating,
		AuthService:     services.Auth,
		Notifier:        n,
		Limiter:         limiter,
		APIKeys:         cfg.Auth.APIKeys,
		EnableAuth:      cfg.Auth.Enabled,
		CORSOrigins:     cfg.Server.CORSOrigins,
		SwaggerUser:     cfg.Server.SwaggerUser,
		SwaggerPass:     cfg.Server.SwaggerPass,
		StreamKeepalive: cfg.Notifier.StreamKeepalive,
		RequestTimeout:  middleware.DefaultRequestTimeout,
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
