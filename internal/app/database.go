// Package app provides database initialization and setup.
package app

import (
	"github.com/rs/zerolog/log"

	"github.com/guttosm/waitlist-service/config"
	"github.com/guttosm/waitlist-service/internal/circuitbreaker"
	"github.com/guttosm/waitlist-service/internal/metrics"
	"github.com/guttosm/waitlist-service/internal/repository"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                    *repository.MongoDB
	EntryRepo             repository.EntryRepositoryInterface
	StaffRepo             repository.StaffRepositoryInterface
	EntriesCircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and creates the repositories.
// Returns nil if the database is disabled or the connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		log.Info().Msg("MongoDB disabled - queue endpoints will report service unavailable")
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	entriesCB := newCircuitBreaker("mongodb-entries", cfg)
	entryRepo := repository.NewEntryRepositoryWithCircuitBreaker(repository.NewEntryRepository(db), entriesCB)

	return &DatabaseComponents{
		DB:                    db,
		EntryRepo:             entryRepo,
		StaffRepo:             repository.NewStaffRepository(db),
		EntriesCircuitBreaker: entriesCB,
	}
}

// newCircuitBreaker builds a breaker that reports its state to Prometheus.
// Missing entries are expected lookups and never trip it.
func newCircuitBreaker(name string, cfg config.DatabaseConfig) *circuitbreaker.CircuitBreaker {
	metrics.SetCircuitBreakerState(name, int(circuitbreaker.StateClosed))
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             name,
		IgnoredErrors:    []error{repository.ErrNotFound},
		OnStateChange: func(name string, _, to circuitbreaker.State) {
			metrics.SetCircuitBreakerState(name, int(to))
		},
	})
}
