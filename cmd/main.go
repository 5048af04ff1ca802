// Package main is the entry point for the waitlist-service application.
//
// @title           Waitlist Service API
// @version         1.0.0
// @description     Restaurant waitlist: parties join the queue, staff manage it, and a seating
// @description     planner assigns waiting parties to free tables. Queue changes are pushed live
// @description     over Server-Sent Events.
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/waitlist-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 Front-desk API key. Accepted on staff routes when authentication is enabled.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Staff access token from /api/auth/login, sent as "Bearer <token>".
//
// @tag.name        Queue
// @tag.description Waitlist entries and live updates
//
// @tag.name        Seating
// @tag.description Seating plans
//
// @tag.name        Auth
// @tag.description Staff login
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"github.com/rs/zerolog/log"

	_ "github.com/guttosm/waitlist-service/docs" // swagger docs

	"github.com/guttosm/waitlist-service/config"
	"github.com/guttosm/waitlist-service/internal/app"
)

func main() {
	cfg := config.Load()

	application, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	server := app.NewServer(application.Router, cfg.Server.Port,
		app.WithShutdownHook(application.Notifier.Close),
		app.WithRelease(application.Close),
	)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
