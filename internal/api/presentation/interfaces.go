package presentation

import (
	"context"

	"github.com/n46/deckgen/internal/entity"
	"github.com/n46/deckgen/internal/usecase/presentation"
)

type PresentationUsecase interface {
	CreatePresentation(ctx context.Context, req *entity.CreatePresentationRequest) (*entity.Presentation, error)
	GetPresentation(ctx context.Context, id string) (*entity.Presentation, error)
	ListPresentations(ctx context.Context) ([]*entity.Presentation, error)
	ListRecent(ctx context.Context, req entity.ListRecentRequest) ([]*entity.Presentation, error)
	UpdatePresentation(ctx context.Context, id string, req *entity.UpdatePresentationRequest) (*entity.Presentation, error)
	DeletePresentation(ctx context.Context, id string) error
	GetStats(ctx context.Context) (*entity.PresentationStats, error)
	Export(ctx context.Context, id string, format entity.ExportFormat) (*presentation.ExportResult, error)
}
