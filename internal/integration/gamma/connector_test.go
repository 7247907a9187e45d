package gamma

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/n46/deckgen/internal/config"
	"github.com/n46/deckgen/internal/entity"
	pkgRetry "github.com/n46/deckgen/internal/pkg/retry"
)

func testConfig(baseURL string) config.GammaConnectorConfig {
	return config.GammaConnectorConfig{
		HTTPClientConfig: config.HTTPClientConfig{
			RequestTimeout:        5 * time.Second,
			ConnTimeout:           5 * time.Second,
			KeepAlive:             30 * time.Second,
			IdleConnTimeout:       30 * time.Second,
			ResponseHeaderTimeout: 5 * time.Second,
			Url:                   baseURL,
		},
		APIKey:              "test-key",
		GenerationsEndpoint: "/generations",
		ThemesEndpoint:      "/themes",
		Retry: pkgRetry.RetryConfig{
			Attempts: 2,
			Delay:    time.Millisecond,
			MaxDelay: 5 * time.Millisecond,
		},
		PollInitialDelay: time.Millisecond,
		PollGrowthFactor: 1.2,
		PollMaxDelay:     5 * time.Millisecond,
		PollMaxAttempts:  5,
	}
}

func TestConnector_Generate(t *testing.T) {
	var gotKey string
	var gotBody entity.GenerateRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-KEY")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/generations", r.URL.Path)

		json.NewEncoder(w).Encode(entity.GenerateResponse{GenerationID: "gen-123"})
	}))
	defer srv.Close()

	c := NewConnector(testConfig(srv.URL), zap.NewNop())

	resp, err := c.Generate(context.Background(), &entity.GenerateRequest{
		InputText: "Title: Demo\n\nBody",
		NumCards:  8,
	})

	require.NoError(t, err)
	assert.Equal(t, "gen-123", resp.GenerationID)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, 8, gotBody.NumCards)
}

func TestConnector_Generate_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"invalid api key"}`))
	}))
	defer srv.Close()

	c := NewConnector(testConfig(srv.URL), zap.NewNop())

	_, err := c.Generate(context.Background(), &entity.GenerateRequest{})

	var gammaErr *entity.GammaError
	require.ErrorAs(t, err, &gammaErr)
	assert.Equal(t, "invalid api key", gammaErr.Message)
	assert.Equal(t, http.StatusForbidden, gammaErr.StatusCode)
}

func TestConnector_GetStatus_RetriesTransientErrors(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(entity.GenerationStatus{
			GenerationID: "gen-1",
			Status:       entity.JobStatusPending,
		})
	}))
	defer srv.Close()

	c := NewConnector(testConfig(srv.URL), zap.NewNop())

	status, err := c.GetStatus(context.Background(), "gen-1")

	require.NoError(t, err)
	assert.Equal(t, entity.JobStatusPending, status.Status)
	assert.Equal(t, int32(2), calls.Load())
}

func TestConnector_GetStatus_NoRetryOnClientError(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"not found"}`))
	}))
	defer srv.Close()

	c := NewConnector(testConfig(srv.URL), zap.NewNop())

	_, err := c.GetStatus(context.Background(), "missing")

	var gammaErr *entity.GammaError
	require.ErrorAs(t, err, &gammaErr)
	assert.Equal(t, "not found", gammaErr.Message)
	assert.Equal(t, int32(1), calls.Load())
}

func TestConnector_GetThemes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/themes", r.URL.Path)
		w.Write([]byte(`{"data":[{"id":"oasis","name":"Oasis"},{"id":"chisel","name":"Chisel"}]}`))
	}))
	defer srv.Close()

	c := NewConnector(testConfig(srv.URL), zap.NewNop())

	themes, err := c.GetThemes(context.Background())

	require.NoError(t, err)
	require.Len(t, themes, 2)
	assert.Equal(t, "oasis", themes[0].ID)
}

func TestConnector_GetThemes_EmptyData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewConnector(testConfig(srv.URL), zap.NewNop())

	themes, err := c.GetThemes(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, themes)
	assert.Empty(t, themes)
}

func TestConnector_TestConnection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	c := NewConnector(testConfig(srv.URL), zap.NewNop())
	assert.True(t, c.TestConnection(context.Background()))

	srv.Close()
	assert.False(t, c.TestConnection(context.Background()))
}

func TestConnector_WaitForCompletion(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := entity.GenerationStatus{GenerationID: "gen-1", Status: entity.JobStatusPending}
		if calls.Add(1) >= 4 {
			status.Status = entity.JobStatusCompleted
			status.GammaURL = "https://gamma.app/docs/gen-1"
			status.PDFURL = "https://gamma.app/export/gen-1.pdf"
		}
		json.NewEncoder(w).Encode(status)
	}))
	defer srv.Close()

	c := NewConnector(testConfig(srv.URL), zap.NewNop())

	var progress []entity.JobStatus
	status, err := c.WaitForCompletion(context.Background(), "gen-1", func(s *entity.GenerationStatus) {
		progress = append(progress, s.Status)
	})

	require.NoError(t, err)
	assert.Equal(t, entity.JobStatusCompleted, status.Status)
	assert.Equal(t, "https://gamma.app/docs/gen-1", status.GammaURL)
	assert.Equal(t, int32(4), calls.Load())
	assert.Len(t, progress, 4)
}

func TestConnector_WaitForCompletion_Failed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(entity.GenerationStatus{
			GenerationID: "gen-1",
			Status:       entity.JobStatusFailed,
			Error:        "content policy violation",
		})
	}))
	defer srv.Close()

	c := NewConnector(testConfig(srv.URL), zap.NewNop())

	_, err := c.WaitForCompletion(context.Background(), "gen-1", nil)

	var gammaErr *entity.GammaError
	require.ErrorAs(t, err, &gammaErr)
	assert.Equal(t, "content policy violation", gammaErr.Message)
}

func TestConnector_WaitForCompletion_Timeout(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		json.NewEncoder(w).Encode(entity.GenerationStatus{
			GenerationID: "gen-1",
			Status:       entity.JobStatusPending,
		})
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.PollMaxAttempts = 3
	c := NewConnector(cfg, zap.NewNop())

	_, err := c.WaitForCompletion(context.Background(), "gen-1", nil)

	var gammaErr *entity.GammaError
	require.ErrorAs(t, err, &gammaErr)
	assert.Contains(t, gammaErr.Message, "timed out")
	assert.Equal(t, int32(3), calls.Load())
}

func TestConnector_WaitForCompletion_Cancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(entity.GenerationStatus{
			GenerationID: "gen-1",
			Status:       entity.JobStatusPending,
		})
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.PollInitialDelay = time.Second
	c := NewConnector(cfg, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := c.WaitForCompletion(ctx, "gen-1", nil)
	assert.ErrorIs(t, err, context.Canceled)
}
