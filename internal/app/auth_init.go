// Package app provides authentication initialization.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/waitlist-service/config"
	"github.com/guttosm/waitlist-service/internal/service"
)

const seedTimeout = 5 * time.Second

// seedStaff creates the configured staff account when it does not exist yet.
func seedStaff(auth service.AuthService, cfg config.AuthConfig) {
	if cfg.StaffEmail == "" || cfg.StaffPassword == "" {
		return
	}
	if auth == nil {
		log.Warn().Msg("STAFF_EMAIL set but no staff store is available - skipping staff account")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	if err := auth.EnsureStaff(ctx, cfg.StaffEmail, cfg.StaffPassword, "Staff"); err != nil {
		log.Warn().Err(err).Str("email", cfg.StaffEmail).Msg("Failed to seed staff account")
	}
}
