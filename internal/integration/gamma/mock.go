package gamma

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/n46/deckgen/internal/entity"
)

// pollsUntilDone controls how many status polls a mocked job stays pending.
const pollsUntilDone = 2

// MockConnector simulates the generation service for local development.
type MockConnector struct {
	logger *zap.Logger

	mu    sync.Mutex
	polls map[string]int
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
		polls:  make(map[string]int),
	}
}

func (m *MockConnector) Generate(ctx context.Context, req *entity.GenerateRequest) (*entity.GenerateResponse, error) {
	generationID := uuid.NewString()

	ctxzap.Info(ctx, "[MOCK] generation job accepted",
		zap.String("generation_id", generationID),
		zap.Int("num_cards", req.NumCards),
	)

	m.mu.Lock()
	m.polls[generationID] = 0
	m.mu.Unlock()

	return &entity.GenerateResponse{GenerationID: generationID}, nil
}

func (m *MockConnector) GetStatus(ctx context.Context, generationID string) (*entity.GenerationStatus, error) {
	m.mu.Lock()
	polls, known := m.polls[generationID]
	if known {
		m.polls[generationID] = polls + 1
	}
	m.mu.Unlock()

	if !known {
		return nil, &entity.GammaError{Message: "generation not found", StatusCode: 404}
	}

	status := &entity.GenerationStatus{
		GenerationID: generationID,
		Status:       entity.JobStatusPending,
	}

	if polls >= pollsUntilDone {
		status.Status = entity.JobStatusCompleted
		status.GammaURL = fmt.Sprintf("https://gamma.app/docs/mock-%s", generationID)
		status.PDFURL = fmt.Sprintf("https://gamma.app/export/mock-%s.pdf", generationID)
		status.PPTXURL = fmt.Sprintf("https://gamma.app/export/mock-%s.pptx", generationID)
		status.Credits = &entity.GenerationCredits{Deducted: 40, Remaining: 960}
	}

	ctxzap.Info(ctx, "[MOCK] generation status polled",
		zap.String("generation_id", generationID),
		zap.String("status", string(status.Status)),
	)

	return status, nil
}

func (m *MockConnector) GetThemes(ctx context.Context) ([]entity.Theme, error) {
	ctxzap.Info(ctx, "[MOCK] listing themes")

	return []entity.Theme{
		{ID: "oasis", Name: "Oasis"},
		{ID: "night-sky", Name: "Night Sky"},
		{ID: "lavender", Name: "Lavender"},
		{ID: "chisel", Name: "Chisel"},
	}, nil
}

func (m *MockConnector) TestConnection(ctx context.Context) bool {
	ctxzap.Info(ctx, "[MOCK] connection check")
	return true
}

func (m *MockConnector) WaitForCompletion(
	ctx context.Context,
	generationID string,
	onProgress func(*entity.GenerationStatus),
) (*entity.GenerationStatus, error) {
	for {
		status, err := m.GetStatus(ctx, generationID)
		if err != nil {
			return nil, err
		}

		if onProgress != nil {
			onProgress(status)
		}

		if status.Status == entity.JobStatusCompleted {
			return status, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
	}
}
