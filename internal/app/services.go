// Package app provides service initialization.
package app

import (
	"github.com/guttosm/waitlist-service/config"
	"github.com/guttosm/waitlist-service/internal/notifier"
	"github.com/guttosm/waitlist-service/internal/repository"
	"github.com/guttosm/waitlist-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Queue   service.QueueService
	Seating service.SeatingService
	// Auth is nil without a staff store; API keys are then the only staff credential.
	Auth service.AuthService
}

// InitializeServices initializes business logic services.
// Queue changes are published to n once they are stored.
func InitializeServices(cfg config.Config, db *DatabaseComponents, n *notifier.Notifier) *ServiceComponents {
	var entryRepo repository.EntryRepositoryInterface
	if db != nil {
		entryRepo = db.EntryRepo
	}

	queue := service.NewQueueService(entryRepo,
		service.WithPublisher(n),
		service.WithWaitMinutesPerParty(cfg.Seating.WaitMinutesPerParty),
	)
	seating := service.NewSeatingService(
		service.NewSeatingPlanner(),
		queue,
		service.TablesFromSpecs(cfg.Seating.Tables),
	)

	components := &ServiceComponents{
		Queue:   queue,
		Seating: seating,
	}
	if db != nil && db.StaffRepo != nil {
		tokens := service.NewTokenService(service.NewTokenConfigFromAuthConfig(cfg.Auth))
		components.Auth = service.NewAuthService(db.StaffRepo, tokens)
	}
	return components
}
