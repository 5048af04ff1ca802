// Package app provides logger initialization.
package app

import (
	"os"

	"github.com/guttosm/waitlist-service/internal/logger"
)

// InitializeLogger initializes the JSON logger from LOG_LEVEL and LOG_PRETTY.
func InitializeLogger() {
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	logger.Init(logLevel, os.Getenv("LOG_PRETTY") == "true")
}
