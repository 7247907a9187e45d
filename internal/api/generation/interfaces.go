package generation

import (
	"context"

	"github.com/n46/deckgen/internal/entity"
)

type GenerationUsecase interface {
	Generate(ctx context.Context, presentationID string, req *entity.StartGenerationRequest) error
	GetProgress(ctx context.Context, presentationID string) (*entity.GenerationProgress, error)
	CheckStatus(ctx context.Context, generationID string) *entity.GenerationStatus
	GetThemes(ctx context.Context) ([]entity.Theme, error)
	TestConnection(ctx context.Context) bool
}
