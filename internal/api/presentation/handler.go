package presentation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/n46/deckgen/internal/entity"
	"github.com/n46/deckgen/internal/pkg/logger"
)

type Handler struct {
	usecase PresentationUsecase
}

func NewHandler(usecase PresentationUsecase) *Handler {
	return &Handler{usecase: usecase}
}

// CreatePresentation handles POST /presentations
func (h *Handler) CreatePresentation(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "CreatePresentation")

	var req entity.CreatePresentationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	created, err := h.usecase.CreatePresentation(ctx, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, toPresentationResponse(created))
}

// ListPresentations handles GET /presentations
func (h *Handler) ListPresentations(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListPresentations")

	presentations, err := h.usecase.ListPresentations(ctx)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "presentations listed", zap.Int("count", len(presentations)))

	h.respondJSON(w, http.StatusOK, toPresentationResponses(presentations))
}

// ListRecent handles GET /presentations/recent
func (h *Handler) ListRecent(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListRecent")

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	presentations, err := h.usecase.ListRecent(ctx, entity.ListRecentRequest{Limit: limit})
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toPresentationResponses(presentations))
}

// GetStats handles GET /presentations/stats
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GetStats")

	stats, err := h.usecase.GetStats(ctx)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, stats)
}

// GetPresentation handles GET /presentations/{presentation_id}
func (h *Handler) GetPresentation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	presentationID := chi.URLParam(r, "presentation_id")

	ctx = logger.AddFields(ctx,
		zap.String("presentation_id", presentationID),
		zap.String("action", "GetPresentation"),
	)

	presentation, err := h.usecase.GetPresentation(ctx, presentationID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toPresentationResponse(presentation))
}

// UpdatePresentation handles PATCH /presentations/{presentation_id}
func (h *Handler) UpdatePresentation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	presentationID := chi.URLParam(r, "presentation_id")

	ctx = logger.AddFields(ctx,
		zap.String("presentation_id", presentationID),
		zap.String("action", "UpdatePresentation"),
	)

	var req entity.UpdatePresentationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	updated, err := h.usecase.UpdatePresentation(ctx, presentationID, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toPresentationResponse(updated))
}

// DeletePresentation handles DELETE /presentations/{presentation_id}
func (h *Handler) DeletePresentation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	presentationID := chi.URLParam(r, "presentation_id")

	ctx = logger.AddFields(ctx,
		zap.String("presentation_id", presentationID),
		zap.String("action", "DeletePresentation"),
	)

	if err := h.usecase.DeletePresentation(ctx, presentationID); err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Export handles GET /presentations/{presentation_id}/export
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	presentationID := chi.URLParam(r, "presentation_id")
	format := entity.ExportFormat(r.URL.Query().Get("format"))

	ctx = logger.AddFields(ctx,
		zap.String("presentation_id", presentationID),
		zap.String("format", string(format)),
		zap.String("action", "Export"),
	)

	result, err := h.usecase.Export(ctx, presentationID, format)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.WriteHeader(http.StatusOK)
	w.Write(result.Data)
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
	switch {
	case errors.Is(err, entity.ErrPresentationNotFound):
		h.respondError(ctx, w, http.StatusNotFound, "presentation not found", err)
	case errors.Is(err, entity.ErrInvalidParameter), errors.Is(err, entity.ErrMissingField), errors.Is(err, entity.ErrEmptyUpdate):
		h.respondError(ctx, w, http.StatusBadRequest, err.Error(), err)
	default:
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
