package generation

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers generation routes. The presentation-scoped paths
// are registered directly so they merge with the presentation subtree.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/presentations/{presentation_id}/generate", h.StartGeneration)
	r.Get("/presentations/{presentation_id}/progress", h.GetProgress)

	r.Get("/generations/{generation_id}", h.CheckStatus)

	r.Get("/themes", h.GetThemes)
	r.Get("/connection", h.TestConnection)
}
