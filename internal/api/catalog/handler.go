package catalog

import (
	"encoding/json"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/n46/deckgen/internal/entity"
	"github.com/n46/deckgen/internal/optimizer"
	"github.com/n46/deckgen/internal/pkg/logger"
)

// Handler serves the static profile and use-case reference data.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// ListProfiles handles GET /catalog/profiles
func (h *Handler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListProfiles")

	profiles := optimizer.Profiles()
	summaries := make([]entity.ProfileSummary, 0, len(profiles))

	for _, p := range profiles {
		useCases := make([]entity.UseCaseSummary, 0, len(p.UseCases))
		for _, uc := range p.UseCases {
			useCases = append(useCases, entity.UseCaseSummary{
				ID:          uc.ID,
				Name:        uc.Name,
				Description: uc.Description,
			})
		}

		summaries = append(summaries, entity.ProfileSummary{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			UseCases:    useCases,
		})
	}

	ctxzap.Debug(ctx, "catalog served", zap.Int("profiles", len(summaries)))

	h.respondJSON(w, http.StatusOK, &entity.CatalogResponse{Profiles: summaries})
}

// StarterPrompt handles GET /catalog/starter
func (h *Handler) StarterPrompt(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "StarterPrompt")

	query := r.URL.Query()
	profile := entity.Profile(query.Get("profile"))
	useCaseID := query.Get("useCase")
	subject := query.Get("subject")

	if err := profile.Validate(); err != nil {
		ctxzap.Warn(ctx, "invalid profile", zap.Error(err))
		h.respondJSON(w, http.StatusBadRequest, entity.ErrorResponse{
			Error:   http.StatusText(http.StatusBadRequest),
			Message: err.Error(),
		})
		return
	}

	if useCaseID == "" {
		h.respondJSON(w, http.StatusBadRequest, entity.ErrorResponse{
			Error:   http.StatusText(http.StatusBadRequest),
			Message: "useCase query parameter is required",
		})
		return
	}

	if subject == "" {
		subject = "[Your topic here]"
	}

	prompt := optimizer.StarterPrompt(profile, useCaseID, subject)

	h.respondJSON(w, http.StatusOK, &entity.StarterPromptResponse{Prompt: prompt})
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
