package generation

import (
	"context"

	"github.com/n46/deckgen/internal/entity"
)

type GammaConnector interface {
	Generate(ctx context.Context, req *entity.GenerateRequest) (*entity.GenerateResponse, error)
	GetStatus(ctx context.Context, generationID string) (*entity.GenerationStatus, error)
	GetThemes(ctx context.Context) ([]entity.Theme, error)
	TestConnection(ctx context.Context) bool
	WaitForCompletion(ctx context.Context, generationID string, onProgress func(*entity.GenerationStatus)) (*entity.GenerationStatus, error)
}
