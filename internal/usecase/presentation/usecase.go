package presentation

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/n46/deckgen/internal/entity"
	"github.com/n46/deckgen/internal/pkg/formatter"
	"github.com/n46/deckgen/internal/pkg/validator"
	"github.com/n46/deckgen/internal/repository"
)

// PresentationUsecase implements presentation CRUD and export logic
type PresentationUsecase struct {
	presentationRepo repository.PresentationRepository
	validator        *validator.Validator
	formatterFactory *formatter.Factory
	logger           *zap.Logger
}

func NewUsecase(
	presentationRepo repository.PresentationRepository,
	validator *validator.Validator,
	formatterFactory *formatter.Factory,
	logger *zap.Logger,
) *PresentationUsecase {
	return &PresentationUsecase{
		presentationRepo: presentationRepo,
		validator:        validator,
		formatterFactory: formatterFactory,
		logger:           logger,
	}
}

func (uc *PresentationUsecase) CreatePresentation(ctx context.Context, req *entity.CreatePresentationRequest) (*entity.Presentation, error) {
	if err := uc.validator.ValidateCreatePresentation(req); err != nil {
		return nil, err
	}

	presentation := toEntityPresentation(req)
	presentation.ID = uuid.New().String()

	created, err := uc.presentationRepo.Create(ctx, *presentation)
	if err != nil {
		return nil, fmt.Errorf("create presentation: %w", err)
	}

	ctxzap.Info(ctx, "presentation created",
		zap.String("presentation_id", created.ID),
		zap.String("title", created.Title),
		zap.String("profile", string(created.UserProfile)),
	)

	return created, nil
}

func (uc *PresentationUsecase) GetPresentation(ctx context.Context, id string) (*entity.Presentation, error) {
	return uc.presentationRepo.Get(ctx, id)
}

func (uc *PresentationUsecase) ListPresentations(ctx context.Context) ([]*entity.Presentation, error) {
	return uc.presentationRepo.List(ctx)
}

func (uc *PresentationUsecase) ListRecent(ctx context.Context, req entity.ListRecentRequest) ([]*entity.Presentation, error) {
	req.Normalize()
	return uc.presentationRepo.ListRecent(ctx, req.Limit)
}

func (uc *PresentationUsecase) UpdatePresentation(ctx context.Context, id string, req *entity.UpdatePresentationRequest) (*entity.Presentation, error) {
	if err := uc.validator.ValidateUpdatePresentation(req); err != nil {
		return nil, err
	}

	updated, err := uc.presentationRepo.Update(ctx, id, toEntityUpdate(req))
	if err != nil {
		return nil, err
	}

	ctxzap.Info(ctx, "presentation updated", zap.String("presentation_id", id))

	return updated, nil
}

func (uc *PresentationUsecase) DeletePresentation(ctx context.Context, id string) error {
	if err := uc.presentationRepo.Delete(ctx, id); err != nil {
		return err
	}

	ctxzap.Info(ctx, "presentation deleted", zap.String("presentation_id", id))

	return nil
}

func (uc *PresentationUsecase) GetStats(ctx context.Context) (*entity.PresentationStats, error) {
	return uc.presentationRepo.Stats(ctx)
}

// ExportResult is a rendered document ready to be served as a download.
type ExportResult struct {
	Data        []byte
	ContentType string
	Filename    string
}

// Export renders the presentation outline in the requested format.
func (uc *PresentationUsecase) Export(ctx context.Context, id string, format entity.ExportFormat) (*ExportResult, error) {
	if err := format.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrInvalidParameter, err)
	}

	presentation, err := uc.presentationRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	f, err := uc.formatterFactory.Create(format)
	if err != nil {
		return nil, err
	}

	data, err := f.Format(presentation.Title, exportBody(presentation))
	if err != nil {
		return nil, fmt.Errorf("format presentation: %w", err)
	}

	ctxzap.Info(ctx, "presentation exported",
		zap.String("presentation_id", id),
		zap.String("format", string(format)),
		zap.Int("size", len(data)),
	)

	return &ExportResult{
		Data:        data,
		ContentType: f.ContentType(),
		Filename:    exportFilename(presentation.Title) + f.FileExtension(),
	}, nil
}

// exportBody assembles the document text from the stored fields.
func exportBody(p *entity.Presentation) string {
	var b strings.Builder

	if p.Description != nil && *p.Description != "" {
		b.WriteString(*p.Description)
		b.WriteString("\n\n")
	}

	b.WriteString(p.Prompt)

	if p.GammaURL != nil && *p.GammaURL != "" {
		b.WriteString("\n\nView online: ")
		b.WriteString(*p.GammaURL)
	}

	return b.String()
}

// exportFilename produces a safe download name from the title.
func exportFilename(title string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '-', r == '_':
			return '-'
		default:
			return -1
		}
	}, title)

	name = strings.Trim(name, "-")
	if name == "" {
		name = "presentation"
	}

	return strings.ToLower(name)
}
