package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/n46/deckgen/internal/entity"
)

type fakeUsecase struct {
	progress  *entity.GenerationProgress
	status    *entity.GenerationStatus
	themes    []entity.Theme
	connected bool
	err       error

	generated chan string
}

func (f *fakeUsecase) Generate(ctx context.Context, presentationID string, req *entity.StartGenerationRequest) error {
	if f.generated != nil {
		f.generated <- presentationID
	}
	return f.err
}

func (f *fakeUsecase) GetProgress(ctx context.Context, presentationID string) (*entity.GenerationProgress, error) {
	return f.progress, f.err
}

func (f *fakeUsecase) CheckStatus(ctx context.Context, generationID string) *entity.GenerationStatus {
	return f.status
}

func (f *fakeUsecase) GetThemes(ctx context.Context) ([]entity.Theme, error) {
	return f.themes, f.err
}

func (f *fakeUsecase) TestConnection(ctx context.Context) bool {
	return f.connected
}

func newTestRouter(uc GenerationUsecase) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(uc))
	return r
}

func TestStartGeneration_AcceptsAndRunsAsync(t *testing.T) {
	uc := &fakeUsecase{generated: make(chan string, 1)}
	router := newTestRouter(uc)

	body, _ := json.Marshal(entity.StartGenerationRequest{
		Density:         50,
		NumSlides:       10,
		ImageStyle:      entity.ImageStylePhoto,
		SlideDimensions: entity.DimensionsFluid,
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/presentations/p-1/generate", bytes.NewReader(body)))

	require.Equal(t, http.StatusAccepted, rec.Code)

	var resp entity.StartGenerationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "accepted", resp.Status)
	assert.Equal(t, "p-1", resp.ID)

	select {
	case id := <-uc.generated:
		assert.Equal(t, "p-1", id)
	case <-time.After(time.Second):
		t.Fatal("generation was never started")
	}
}

func TestStartGeneration_InvalidBody(t *testing.T) {
	uc := &fakeUsecase{generated: make(chan string, 1)}
	router := newTestRouter(uc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/presentations/p-1/generate", bytes.NewReader([]byte("{"))))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, uc.generated, "malformed request must not start a job")
}

func TestGetProgress(t *testing.T) {
	uc := &fakeUsecase{progress: &entity.GenerationProgress{
		State:    entity.GenerationStateGenerating,
		Progress: 35,
		Message:  "Generating content with AI...",
	}}
	router := newTestRouter(uc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/presentations/p-1/progress", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp entity.GenerationProgress
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, entity.GenerationStateGenerating, resp.State)
	assert.Equal(t, 35, resp.Progress)
}

func TestGetProgress_UnknownPresentation(t *testing.T) {
	uc := &fakeUsecase{err: entity.ErrPresentationNotFound}
	router := newTestRouter(uc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/presentations/missing/progress", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCheckStatus(t *testing.T) {
	uc := &fakeUsecase{status: &entity.GenerationStatus{
		GenerationID: "gen-1",
		Status:       entity.JobStatusCompleted,
		GammaURL:     "https://gamma.app/docs/gen-1",
	}}
	router := newTestRouter(uc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/generations/gen-1", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp entity.GenerationStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, entity.JobStatusCompleted, resp.Status)
}

func TestCheckStatus_Unavailable(t *testing.T) {
	router := newTestRouter(&fakeUsecase{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/generations/gen-1", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetThemes(t *testing.T) {
	uc := &fakeUsecase{themes: []entity.Theme{{ID: "oasis", Name: "Oasis"}}}
	router := newTestRouter(uc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/themes", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp entity.ThemesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Themes, 1)
	assert.Equal(t, "oasis", resp.Themes[0].ID)
}

func TestGetThemes_ServiceError(t *testing.T) {
	uc := &fakeUsecase{err: &entity.GammaError{Message: "invalid api key", StatusCode: 403}}
	router := newTestRouter(uc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/themes", nil))

	require.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestConnection(t *testing.T) {
	uc := &fakeUsecase{connected: true}
	router := newTestRouter(uc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/connection", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp entity.ConnectionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Connected)
}
