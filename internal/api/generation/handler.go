package generation

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/n46/deckgen/internal/entity"
	"github.com/n46/deckgen/internal/pkg/logger"
)

type Handler struct {
	usecase GenerationUsecase
}

func NewHandler(usecase GenerationUsecase) *Handler {
	return &Handler{usecase: usecase}
}

// StartGeneration handles POST /presentations/{presentation_id}/generate.
// The request is validated and accepted immediately; the job itself runs in
// the background and progress is exposed via the progress endpoint.
func (h *Handler) StartGeneration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	presentationID := chi.URLParam(r, "presentation_id")

	ctx = logger.AddFields(ctx,
		zap.String("presentation_id", presentationID),
		zap.String("action", "StartGeneration"),
	)

	var req entity.StartGenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	ctxzap.Info(ctx, "starting generation",
		zap.Int("density", req.Density),
		zap.Int("num_slides", req.NumSlides),
	)

	h.respondJSON(w, http.StatusAccepted, &entity.StartGenerationResponse{
		Status: "accepted",
		ID:     presentationID,
	})

	// Run the job detached from the request lifecycle, keeping the request
	// logger attached for correlation.
	go func() {
		bgCtx := logger.AddFields(ctxzap.ToContext(context.Background(), ctxzap.Extract(ctx)),
			zap.String("action", "StartGeneration-async"),
		)

		if err := h.usecase.Generate(bgCtx, presentationID, &req); err != nil {
			ctxzap.Error(bgCtx, "generation failed", zap.Error(err))
		}
	}()
}

// GetProgress handles GET /presentations/{presentation_id}/progress
func (h *Handler) GetProgress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	presentationID := chi.URLParam(r, "presentation_id")

	ctx = logger.AddFields(ctx,
		zap.String("presentation_id", presentationID),
		zap.String("action", "GetProgress"),
	)

	progress, err := h.usecase.GetProgress(ctx, presentationID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, progress)
}

// CheckStatus handles GET /generations/{generation_id}
func (h *Handler) CheckStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	generationID := chi.URLParam(r, "generation_id")

	ctx = logger.AddFields(ctx,
		zap.String("generation_id", generationID),
		zap.String("action", "CheckStatus"),
	)

	status := h.usecase.CheckStatus(ctx, generationID)
	if status == nil {
		h.respondError(ctx, w, http.StatusNotFound, "generation status unavailable", nil)
		return
	}

	h.respondJSON(w, http.StatusOK, status)
}

// GetThemes handles GET /themes
func (h *Handler) GetThemes(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GetThemes")

	themes, err := h.usecase.GetThemes(ctx)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, &entity.ThemesResponse{Themes: themes})
}

// TestConnection handles GET /connection
func (h *Handler) TestConnection(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "TestConnection")

	connected := h.usecase.TestConnection(ctx)

	h.respondJSON(w, http.StatusOK, &entity.ConnectionResponse{Connected: connected})
}

// Helper methods
func (h *Handler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) respondError(ctx context.Context, w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		ctxzap.Error(ctx, message, zap.Error(err))
	} else {
		ctxzap.Error(ctx, message)
	}
	h.respondJSON(w, status, entity.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	})
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	var gammaErr *entity.GammaError

	switch {
	case errors.Is(err, entity.ErrPresentationNotFound), errors.Is(err, entity.ErrGenerationNotFound):
		h.respondError(ctx, w, http.StatusNotFound, "resource not found", err)
	case errors.Is(err, entity.ErrGenerationInFlight):
		h.respondError(ctx, w, http.StatusConflict, "generation already in progress", err)
	case errors.Is(err, entity.ErrInvalidParameter), errors.Is(err, entity.ErrMissingField):
		h.respondError(ctx, w, http.StatusBadRequest, err.Error(), err)
	case errors.As(err, &gammaErr):
		h.respondError(ctx, w, http.StatusBadGateway, "generation service error", err)
	default:
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
