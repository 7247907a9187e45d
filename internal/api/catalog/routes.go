package catalog

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers catalog routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/catalog/profiles", h.ListProfiles)
	r.Get("/catalog/starter", h.StarterPrompt)
}
