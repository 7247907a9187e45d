package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/n46/deckgen/internal/entity"
)

func newTestRouter() http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler())
	return r
}

func TestListProfiles(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/catalog/profiles", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp entity.CatalogResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Profiles, 4)

	ids := make(map[entity.Profile]bool)
	for _, p := range resp.Profiles {
		ids[p.ID] = true
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.UseCases)
	}
	assert.True(t, ids[entity.ProfileStudent])
	assert.True(t, ids[entity.ProfileBusiness])
	assert.True(t, ids[entity.ProfileSocial])
	assert.True(t, ids[entity.ProfileScientific])
}

func TestStarterPrompt(t *testing.T) {
	router := newTestRouter()

	query := url.Values{
		"profile": {"business"},
		"useCase": {"pitch-deck"},
		"subject": {"Vertical farming"},
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/catalog/starter?"+query.Encode(), nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp entity.StarterPromptResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Prompt, "Vertical farming")
	assert.Contains(t, resp.Prompt, "Structure:")
}

func TestStarterPrompt_DefaultSubject(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/catalog/starter?profile=student&useCase=essay-report", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp entity.StarterPromptResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Prompt, "[Your topic here]")
}

func TestStarterPrompt_UnknownProfile(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/catalog/starter?profile=astronaut&useCase=pitch-deck", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStarterPrompt_MissingUseCase(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/catalog/starter?profile=social", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp entity.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "useCase")
}
