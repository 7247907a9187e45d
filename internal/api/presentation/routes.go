package presentation

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers presentation routes. Registrations are flat so the
// generation package can attach its own presentation-scoped endpoints to the
// same subtree.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/presentations", h.CreatePresentation)
	r.Get("/presentations", h.ListPresentations)
	r.Get("/presentations/recent", h.ListRecent)
	r.Get("/presentations/stats", h.GetStats)

	r.Get("/presentations/{presentation_id}", h.GetPresentation)
	r.Patch("/presentations/{presentation_id}", h.UpdatePresentation)
	r.Delete("/presentations/{presentation_id}", h.DeletePresentation)
	r.Get("/presentations/{presentation_id}/export", h.Export)
}
