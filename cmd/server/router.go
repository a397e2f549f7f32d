package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/handlers"
	"github.com/phrazzld/scry-relay/internal/api"
	apiMiddleware "github.com/phrazzld/scry-relay/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))

	healthHandler := api.NewHealthHandler()
	flashcardHandler := api.NewFlashcardHandler(app.flashcardService)

	r.Get("/health", healthHandler.Health)
	r.Post("/generate", flashcardHandler.Generate)
	r.Method(http.MethodGet, "/metrics", app.metrics.Handler())

	r.NotFound(api.NotFound)
	r.MethodNotAllowed(api.MethodNotAllowed)

	return handlers.CORS(
		handlers.AllowedOrigins(app.config.Server.AllowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(r)
}
