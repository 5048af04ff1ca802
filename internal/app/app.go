// Package app provides application initialization and dependency injection.
package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/waitlist-service/config"
	"github.com/guttosm/waitlist-service/internal/http"
	"github.com/guttosm/waitlist-service/internal/notifier"
)

// App is the wired application together with everything it must release on shutdown.
type App struct {
	Router   *gin.Engine
	Notifier *notifier.Notifier

	db      *DatabaseComponents
	broker  *BrokerComponents
	limiter *RateLimitComponents
}

// InitializeApp creates and wires all application dependencies.
// It fails only when a dependency marked as required cannot be reached.
func InitializeApp(cfg config.Config) (*App, error) {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	n := notifier.New(notifier.Config{
		BufferSize:     cfg.Notifier.BufferSize,
		MaxSubscribers: cfg.Notifier.MaxSubscribers,
		MaxMissed:      cfg.Notifier.MaxMissed,
	})

	broker, err := InitializeBroker(cfg.Broker, n)
	if err != nil {
		n.Close()
		return nil, err
	}

	db := InitializeDatabase(cfg.Database)
	services := InitializeServices(cfg, db, n)
	seedStaff(services.Auth, cfg.Auth)

	limiter := InitializeRateLimiter(cfg.Server, cfg.Redis)
	routerComponents := InitializeRouter(cfg, services, db, n, limiter.Limiter)

	return &App{
		Router:   http.NewRouter(routerComponents.HealthHandler, routerComponents.Config),
		Notifier: n,
		db:       db,
		broker:   broker,
		limiter:  limiter,
	}, nil
}

// Close ends every event stream, stops the broker relay and disconnects from Mongo and Redis.
func (a *App) Close(ctx context.Context) {
	a.Notifier.Close()

	if a.broker != nil {
		a.broker.Close()
	}
	if a.limiter != nil {
		a.limiter.Close()
	}
	if a.db != nil && a.db.DB != nil {
		if err := a.db.DB.Close(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to disconnect from MongoDB")
		}
	}
	log.Info().Msg("Application resources released")
}
