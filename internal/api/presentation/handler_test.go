package presentation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/n46/deckgen/internal/entity"
	"github.com/n46/deckgen/internal/usecase/presentation"
)

type fakeUsecase struct {
	presentation *entity.Presentation
	stats        *entity.PresentationStats
	export       *presentation.ExportResult
	err          error

	deletedID string
}

func (f *fakeUsecase) CreatePresentation(ctx context.Context, req *entity.CreatePresentationRequest) (*entity.Presentation, error) {
	return f.presentation, f.err
}

func (f *fakeUsecase) GetPresentation(ctx context.Context, id string) (*entity.Presentation, error) {
	return f.presentation, f.err
}

func (f *fakeUsecase) ListPresentations(ctx context.Context) ([]*entity.Presentation, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []*entity.Presentation{f.presentation}, nil
}

func (f *fakeUsecase) ListRecent(ctx context.Context, req entity.ListRecentRequest) ([]*entity.Presentation, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []*entity.Presentation{f.presentation}, nil
}

func (f *fakeUsecase) UpdatePresentation(ctx context.Context, id string, req *entity.UpdatePresentationRequest) (*entity.Presentation, error) {
	return f.presentation, f.err
}

func (f *fakeUsecase) DeletePresentation(ctx context.Context, id string) error {
	f.deletedID = id
	return f.err
}

func (f *fakeUsecase) GetStats(ctx context.Context) (*entity.PresentationStats, error) {
	return f.stats, f.err
}

func (f *fakeUsecase) Export(ctx context.Context, id string, format entity.ExportFormat) (*presentation.ExportResult, error) {
	return f.export, f.err
}

func newTestRouter(uc PresentationUsecase) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(uc))
	return r
}

func samplePresentation() *entity.Presentation {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &entity.Presentation{
		ID:          "p-1",
		Title:       "Solar Energy",
		UserProfile: entity.ProfileStudent,
		UseCase:     "topic-presentation",
		Prompt:      "Explain solar energy basics",
		Status:      entity.PresentationStatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestCreatePresentation(t *testing.T) {
	uc := &fakeUsecase{presentation: samplePresentation()}
	router := newTestRouter(uc)

	body, _ := json.Marshal(entity.CreatePresentationRequest{
		Title:       "Solar Energy",
		UserProfile: entity.ProfileStudent,
		UseCase:     "topic-presentation",
		Prompt:      "Explain solar energy basics",
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/presentations", bytes.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp entity.PresentationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "p-1", resp.ID)
	assert.Equal(t, entity.PresentationStatusDraft, resp.Status)
	assert.Equal(t, "2026-03-01T12:00:00Z", resp.CreatedAt)
}

func TestCreatePresentation_InvalidBody(t *testing.T) {
	router := newTestRouter(&fakeUsecase{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/presentations", bytes.NewReader([]byte("{not json"))))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp entity.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Bad Request", resp.Error)
}

func TestCreatePresentation_MissingField(t *testing.T) {
	uc := &fakeUsecase{err: fmt.Errorf("%w: title", entity.ErrMissingField)}
	router := newTestRouter(uc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/presentations", bytes.NewReader([]byte("{}"))))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp entity.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "title")
}

func TestGetPresentation_NotFound(t *testing.T) {
	uc := &fakeUsecase{err: entity.ErrPresentationNotFound}
	router := newTestRouter(uc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/presentations/missing", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp entity.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "presentation not found", resp.Message)
}

func TestListPresentations(t *testing.T) {
	uc := &fakeUsecase{presentation: samplePresentation()}
	router := newTestRouter(uc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/presentations", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []entity.PresentationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Solar Energy", resp[0].Title)
}

func TestGetStats(t *testing.T) {
	uc := &fakeUsecase{stats: &entity.PresentationStats{Total: 12, ThisWeek: 3, Drafts: 4}}
	router := newTestRouter(uc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/presentations/stats", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp entity.PresentationStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 12, resp.Total)
	assert.Equal(t, 3, resp.ThisWeek)
	assert.Equal(t, 4, resp.Drafts)
}

func TestDeletePresentation(t *testing.T) {
	uc := &fakeUsecase{}
	router := newTestRouter(uc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/presentations/p-1", nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "p-1", uc.deletedID)
	assert.Empty(t, rec.Body.String())
}

func TestExport_SetsAttachmentHeaders(t *testing.T) {
	uc := &fakeUsecase{export: &presentation.ExportResult{
		Data:        []byte("# Solar Energy\n"),
		ContentType: "text/markdown; charset=utf-8",
		Filename:    "solar-energy.md",
	}}
	router := newTestRouter(uc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/presentations/p-1/export?format=markdown", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/markdown; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="solar-energy.md"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "# Solar Energy\n", rec.Body.String())
}

func TestExport_UnsupportedFormat(t *testing.T) {
	uc := &fakeUsecase{err: fmt.Errorf("%w: unknown export format: xlsx", entity.ErrInvalidParameter)}
	router := newTestRouter(uc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/presentations/p-1/export?format=xlsx", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
