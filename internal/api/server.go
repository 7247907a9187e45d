package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	catalogapi "github.com/n46/deckgen/internal/api/catalog"
	"github.com/n46/deckgen/internal/api/docs"
	generationapi "github.com/n46/deckgen/internal/api/generation"
	"github.com/n46/deckgen/internal/api/middleware"
	presentationapi "github.com/n46/deckgen/internal/api/presentation"
	"github.com/n46/deckgen/internal/pkg/response"
)

// SetupRouter creates and configures the HTTP router
func SetupRouter(
	presentationHandler *presentationapi.Handler,
	generationHandler *generationapi.Handler,
	catalogHandler *catalogapi.Handler,
	allowedOrigins []string,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.Recoverer)                 // Recover from panics
	r.Use(chimiddleware.RequestID)                 // Add request ID
	r.Use(middleware.Logger(logger))               // Log requests
	r.Use(middleware.CORS(allowedOrigins))         // Handle CORS
	r.Use(chimiddleware.Timeout(60 * time.Second)) // Default timeout

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, map[string]string{"status": "healthy"})
	})

	// Swagger documentation endpoints
	docs.RegisterRoutes(r)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		presentationapi.RegisterRoutes(r, presentationHandler)
		generationapi.RegisterRoutes(r, generationHandler)
		catalogapi.RegisterRoutes(r, catalogHandler)
	})

	return r
}
