package gamma

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/n46/deckgen/internal/config"
	"github.com/n46/deckgen/internal/entity"
	"github.com/n46/deckgen/internal/integration/common"
	pkghttp "github.com/n46/deckgen/pkg/http"
)

const apiKeyHeader = "X-API-KEY"

type Connector struct {
	config    config.GammaConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.GammaConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger, pkghttp.WithAPIKey(apiKeyHeader, cfg.APIKey)),
		config:    cfg,
		logger:    logger,
	}
}

// Generate submits a new generation job
func (c *Connector) Generate(ctx context.Context, req *entity.GenerateRequest) (*entity.GenerateResponse, error) {
	ctxzap.Info(ctx, "submitting generation job", zap.Int("num_cards", req.NumCards))

	var resp entity.GenerateResponse
	err := c.connector.DoRequest(ctx, http.MethodPost, c.config.GenerationsEndpoint, req, &resp)
	if err != nil {
		return nil, asGammaError(err)
	}

	if resp.GenerationID == "" {
		return nil, &entity.GammaError{Message: "generation response missing generationId"}
	}

	ctxzap.Info(ctx, "generation job accepted", zap.String("generation_id", resp.GenerationID))

	return &resp, nil
}

// GetStatus polls the state of an in-flight generation. Transient failures
// (network errors, 429, 5xx) are retried before giving up.
func (c *Connector) GetStatus(ctx context.Context, generationID string) (*entity.GenerationStatus, error) {
	status, err := retry.DoWithData(
		func() (*entity.GenerationStatus, error) {
			var resp entity.GenerationStatus
			err := c.connector.DoRequest(ctx, http.MethodGet, c.config.GenerationsEndpoint+"/"+generationID, nil, &resp)
			if err != nil {
				return nil, err
			}
			return &resp, nil
		},
		append(c.config.Retry.ToRetryOptions(),
			retry.Context(ctx),
			retry.LastErrorOnly(true),
			retry.RetryIf(isTransient),
		)...,
	)
	if err != nil {
		return nil, asGammaError(err)
	}

	return status, nil
}

type themesEnvelope struct {
	Data []entity.Theme `json:"data"`
}

// GetThemes lists the themes available to this workspace.
func (c *Connector) GetThemes(ctx context.Context) ([]entity.Theme, error) {
	themes, err := retry.DoWithData(
		func() ([]entity.Theme, error) {
			var resp themesEnvelope
			err := c.connector.DoRequest(ctx, http.MethodGet, c.config.ThemesEndpoint, nil, &resp)
			if err != nil {
				return nil, err
			}
			return resp.Data, nil
		},
		append(c.config.Retry.ToRetryOptions(),
			retry.Context(ctx),
			retry.LastErrorOnly(true),
			retry.RetryIf(isTransient),
		)...,
	)
	if err != nil {
		return nil, asGammaError(err)
	}

	if themes == nil {
		themes = []entity.Theme{}
	}

	return themes, nil
}

// TestConnection reports whether the API is reachable with the configured key.
func (c *Connector) TestConnection(ctx context.Context) bool {
	_, err := c.GetThemes(ctx)
	if err != nil {
		ctxzap.Warn(ctx, "gamma connection check failed", zap.Error(err))
		return false
	}
	return true
}

// WaitForCompletion polls until the job finishes. The schedule starts at the
// configured initial delay and grows by the growth factor up to the max delay.
// onProgress, when non-nil, is invoked after every successful poll.
func (c *Connector) WaitForCompletion(
	ctx context.Context,
	generationID string,
	onProgress func(*entity.GenerationStatus),
) (*entity.GenerationStatus, error) {
	delay := c.config.PollInitialDelay

	for attempt := 0; attempt < c.config.PollMaxAttempts; attempt++ {
		status, err := c.GetStatus(ctx, generationID)
		if err != nil {
			return nil, err
		}

		if onProgress != nil {
			onProgress(status)
		}

		switch status.Status {
		case entity.JobStatusCompleted:
			return status, nil
		case entity.JobStatusFailed:
			msg := status.Error
			if msg == "" {
				msg = "generation failed"
			}
			return nil, &entity.GammaError{Message: msg}
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		delay = time.Duration(float64(delay) * c.config.PollGrowthFactor)
		if delay > c.config.PollMaxDelay {
			delay = c.config.PollMaxDelay
		}
	}

	return nil, &entity.GammaError{Message: "generation timed out after maximum attempts"}
}

// isTransient marks network failures and throttling/server errors retryable.
func isTransient(err error) bool {
	var netErr *pkghttp.NetworkError
	if errors.As(err, &netErr) {
		return true
	}

	var httpErr *pkghttp.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == http.StatusTooManyRequests || httpErr.StatusCode >= 500
	}

	return false
}

// asGammaError converts transport errors into the domain error type. The
// message is pulled from the JSON body when the service sends one.
func asGammaError(err error) error {
	var gammaErr *entity.GammaError
	if errors.As(err, &gammaErr) {
		return err
	}

	var httpErr *pkghttp.HTTPError
	if errors.As(err, &httpErr) {
		message := "request failed"
		var body struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if jsonErr := json.Unmarshal([]byte(httpErr.Message), &body); jsonErr == nil {
			switch {
			case body.Message != "":
				message = body.Message
			case body.Error != "":
				message = body.Error
			}
		}

		return &entity.GammaError{
			Message:    message,
			StatusCode: httpErr.StatusCode,
			Details:    json.RawMessage(httpErr.Message),
		}
	}

	return err
}
