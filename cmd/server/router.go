package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	apimiddleware "github.com/spendtrack/spendtrack-api/internal/api/middleware"
)

// setupRouter configures the application router with all routes and
// middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apimiddleware.TraceMiddleware)
	r.Use(app.metrics.Instrument)

	// Authentication endpoints (public)
	r.Post("/users/register", app.authHandler.Register)
	r.Post("/users/login", app.authHandler.Login)

	// Expense endpoints require a valid bearer token
	r.Group(func(r chi.Router) {
		r.Use(app.authMiddleware.Authenticate)

		r.Post("/expenses", app.expenseHandler.Create)
		r.Get("/expenses", app.expenseHandler.List)
		r.Get("/expenses/{id}", app.expenseHandler.Get)
		r.Put("/expenses/{id}", app.expenseHandler.Update)
		r.Delete("/expenses/{id}", app.expenseHandler.Delete)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	r.Method(http.MethodGet, "/metrics", app.metrics.Handler())

	return r
}
