// Package main implements the entry point for the SpendTrack API server,
// a personal expense tracker with token-authenticated CRUD and time-window
// reporting endpoints.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/spendtrack/spendtrack-api/internal/config"
	"github.com/spendtrack/spendtrack-api/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String("migrate", "", "run database migrations (up, down, status) and exit")
	flag.Parse()

	if err := run(*migrateCmd); err != nil {
		log.Fatalf("spendtrack-api: %v", err)
	}
}

// run loads configuration, wires the application, and either executes a
// migration command or serves HTTP until interrupted.
func run(migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	if migrateCmd != "" {
		return runMigrations(context.Background(), cfg, appLogger, migrateCmd)
	}

	app, err := newApplication(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer app.cleanup()

	return app.serve(context.Background())
}
