package main

import (
	"fmt"
	"log/slog"

	"github.com/spendtrack/spendtrack-api/internal/api"
	apimiddleware "github.com/spendtrack/spendtrack-api/internal/api/middleware"
	"github.com/spendtrack/spendtrack-api/internal/config"
	"github.com/spendtrack/spendtrack-api/internal/platform/postgres"
	"github.com/spendtrack/spendtrack-api/internal/service"
	"github.com/spendtrack/spendtrack-api/internal/service/auth"
)

// application holds the shared dependencies so wiring happens in one place
// and cleanup runs in one place on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// The connection pool is created lazily; the first store call pays for
	// the dial, and a failed dial is terminal for the process lifetime.
	db *postgres.LazyDB

	userService    service.UserService
	expenseService service.ExpenseService

	authMiddleware *apimiddleware.AuthMiddleware
	metrics        *apimiddleware.Metrics

	authHandler    *api.AuthHandler
	expenseHandler *api.ExpenseHandler
}

// newApplication wires stores, services, and handlers from configuration.
// It does not touch the database.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	// Stores receive the lazy pool through the DBTX interface, so no
	// connection is attempted until the first query.
	lazyDB := postgres.NewLazyDB(cfg.Database.URL)

	tokenService, err := auth.NewTokenService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	hasher := auth.NewBcryptHasher()

	app := &application{
		config:         cfg,
		logger:         logger,
		db:             lazyDB,
		authMiddleware: apimiddleware.NewAuthMiddleware(tokenService),
		metrics:        apimiddleware.NewMetrics(),
	}

	userStore := postgres.NewUserStore(lazyDB, logger)
	expenseStore := postgres.NewExpenseStore(lazyDB, logger)

	app.userService = service.NewUserService(userStore, hasher, hasher, tokenService, logger)
	app.expenseService = service.NewExpenseService(expenseStore, logger)

	app.authHandler = api.NewAuthHandler(app.userService)
	app.expenseHandler = api.NewExpenseHandler(app.expenseService)

	return app, nil
}

// cleanup releases resources held by the application. Safe to call when the
// database was never reached.
func (app *application) cleanup() {
	if err := app.db.Close(); err != nil {
		app.logger.Error("failed to close database pool", "error", err)
	}
}
