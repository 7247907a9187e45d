package generation

import (
	"context"
	"fmt"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/n46/deckgen/internal/entity"
	"github.com/n46/deckgen/internal/optimizer"
	"github.com/n46/deckgen/internal/pkg/validator"
	"github.com/n46/deckgen/internal/repository"
)

var progressMessages = []string{
	"Analyzing your content...",
	"Generating slide structure...",
	"Creating visuals...",
	"Applying design theme...",
	"Finalizing presentation...",
}

const themeCacheKey = "themes"

// GenerationUsecase drives the lifecycle of a generation job: parameter
// optimization, submission, polling and persisting the outcome.
type GenerationUsecase struct {
	presentationRepo repository.PresentationRepository
	gammaConnector   GammaConnector
	validator        *validator.Validator
	progress         *ProgressStore
	themeCache       *gocache.Cache
	logger           *zap.Logger
}

func NewUsecase(
	presentationRepo repository.PresentationRepository,
	gammaConnector GammaConnector,
	validator *validator.Validator,
	progress *ProgressStore,
	themeCacheTTL time.Duration,
	logger *zap.Logger,
) *GenerationUsecase {
	return &GenerationUsecase{
		presentationRepo: presentationRepo,
		gammaConnector:   gammaConnector,
		validator:        validator,
		progress:         progress,
		themeCache:       gocache.New(themeCacheTTL, themeCacheTTL),
		logger:           logger,
	}
}

// Generate runs the whole generation flow synchronously: callers wanting the
// async API pattern wrap it in a goroutine. Exactly one job per presentation
// may be in flight.
func (uc *GenerationUsecase) Generate(ctx context.Context, presentationID string, req *entity.StartGenerationRequest) error {
	if err := uc.validator.ValidateStartGeneration(req); err != nil {
		return err
	}

	presentation, err := uc.presentationRepo.Get(ctx, presentationID)
	if err != nil {
		return err
	}

	claimed := uc.progress.Claim(presentationID, entity.GenerationProgress{
		State:    entity.GenerationStateStarting,
		Message:  "Preparing your presentation...",
		Progress: 0,
	})
	if !claimed {
		return entity.ErrGenerationInFlight
	}

	prefs := entity.DesignPreferences{
		Density:         req.Density,
		NumSlides:       req.NumSlides,
		ImageStyle:      req.ImageStyle,
		SlideDimensions: req.SlideDimensions,
	}

	optimized := optimizer.OptimizeForProfile(presentation.UserProfile, presentation.UseCase, prefs)
	gammaReq := optimizer.BuildRequest(presentation.Title, presentation.Prompt, optimized, req.ThemeID)

	generatingStatus := entity.PresentationStatusGenerating
	if _, err := uc.presentationRepo.Update(ctx, presentationID, entity.PresentationUpdate{
		Status:           &generatingStatus,
		GenerationParams: &gammaReq,
	}); err != nil {
		uc.failProgress(presentationID, "", err)
		return fmt.Errorf("mark presentation generating: %w", err)
	}

	uc.progress.Set(presentationID, entity.GenerationProgress{
		State:    entity.GenerationStateGenerating,
		Message:  progressMessages[0],
		Progress: 10,
	})

	resp, err := uc.gammaConnector.Generate(ctx, &gammaReq)
	if err != nil {
		uc.failProgress(presentationID, "", err)
		uc.markFailed(ctx, presentationID)
		return err
	}

	ctxzap.Info(ctx, "generation job started",
		zap.String("presentation_id", presentationID),
		zap.String("generation_id", resp.GenerationID),
	)

	if _, err := uc.presentationRepo.Update(ctx, presentationID, entity.PresentationUpdate{
		GenerationID: &resp.GenerationID,
	}); err != nil {
		ctxzap.Warn(ctx, "failed to persist generation id", zap.Error(err))
	}

	uc.progress.Set(presentationID, entity.GenerationProgress{
		State:        entity.GenerationStateGenerating,
		GenerationID: resp.GenerationID,
		Message:      progressMessages[1],
		Progress:     20,
	})

	progressIndex := 1
	result, err := uc.gammaConnector.WaitForCompletion(ctx, resp.GenerationID, func(status *entity.GenerationStatus) {
		if progressIndex < len(progressMessages)-1 {
			progressIndex++
		}
		estimated := 20 + progressIndex*15
		if estimated > 90 {
			estimated = 90
		}

		uc.progress.Set(presentationID, entity.GenerationProgress{
			State:        entity.GenerationStateGenerating,
			GenerationID: status.GenerationID,
			Message:      progressMessages[progressIndex],
			Progress:     estimated,
		})
	})
	if err != nil {
		uc.failProgress(presentationID, resp.GenerationID, err)
		uc.markFailed(ctx, presentationID)
		return err
	}

	completedStatus := entity.PresentationStatusCompleted
	update := entity.PresentationUpdate{
		Status:   &completedStatus,
		GammaURL: &result.GammaURL,
		PDFURL:   &result.PDFURL,
		PPTXURL:  &result.PPTXURL,
	}
	if _, err := uc.presentationRepo.Update(ctx, presentationID, update); err != nil {
		uc.failProgress(presentationID, resp.GenerationID, err)
		return fmt.Errorf("persist generation result: %w", err)
	}

	uc.progress.Set(presentationID, entity.GenerationProgress{
		State:        entity.GenerationStateCompleted,
		GenerationID: result.GenerationID,
		Message:      "Presentation created successfully!",
		Progress:     100,
		GammaURL:     result.GammaURL,
		PDFURL:       result.PDFURL,
		PPTXURL:      result.PPTXURL,
	})

	ctxzap.Info(ctx, "generation completed",
		zap.String("presentation_id", presentationID),
		zap.String("generation_id", result.GenerationID),
	)

	return nil
}

// GetProgress returns the live snapshot for a presentation. When no job has
// run recently, the stored presentation status decides the reported state.
func (uc *GenerationUsecase) GetProgress(ctx context.Context, presentationID string) (*entity.GenerationProgress, error) {
	if progress, ok := uc.progress.Get(presentationID); ok {
		return &progress, nil
	}

	presentation, err := uc.presentationRepo.Get(ctx, presentationID)
	if err != nil {
		return nil, err
	}

	progress := entity.GenerationProgress{State: entity.GenerationStateIdle}

	switch presentation.Status {
	case entity.PresentationStatusCompleted:
		progress.State = entity.GenerationStateCompleted
		progress.Progress = 100
		progress.Message = "Presentation created successfully!"
		if presentation.GenerationID != nil {
			progress.GenerationID = *presentation.GenerationID
		}
		if presentation.GammaURL != nil {
			progress.GammaURL = *presentation.GammaURL
		}
		if presentation.PDFURL != nil {
			progress.PDFURL = *presentation.PDFURL
		}
		if presentation.PPTXURL != nil {
			progress.PPTXURL = *presentation.PPTXURL
		}
	case entity.PresentationStatusFailed:
		progress.State = entity.GenerationStateFailed
		progress.Message = "Generation failed"
	}

	return &progress, nil
}

// ResetProgress clears the snapshot so a new job can start fresh.
func (uc *GenerationUsecase) ResetProgress(presentationID string) {
	uc.progress.Delete(presentationID)
}

// CheckStatus polls the generation service once. Errors are reported as a nil
// status rather than propagated, mirroring a best-effort status probe.
func (uc *GenerationUsecase) CheckStatus(ctx context.Context, generationID string) *entity.GenerationStatus {
	status, err := uc.gammaConnector.GetStatus(ctx, generationID)
	if err != nil {
		ctxzap.Warn(ctx, "status check failed",
			zap.String("generation_id", generationID),
			zap.Error(err),
		)
		return nil
	}
	return status
}

// GetThemes lists available themes, cached to spare the upstream rate limit.
func (uc *GenerationUsecase) GetThemes(ctx context.Context) ([]entity.Theme, error) {
	if cached, ok := uc.themeCache.Get(themeCacheKey); ok {
		return cached.([]entity.Theme), nil
	}

	themes, err := uc.gammaConnector.GetThemes(ctx)
	if err != nil {
		return nil, err
	}

	uc.themeCache.Set(themeCacheKey, themes, gocache.DefaultExpiration)

	return themes, nil
}

// TestConnection reports upstream reachability.
func (uc *GenerationUsecase) TestConnection(ctx context.Context) bool {
	return uc.gammaConnector.TestConnection(ctx)
}

func (uc *GenerationUsecase) failProgress(presentationID, generationID string, cause error) {
	uc.progress.Set(presentationID, entity.GenerationProgress{
		State:        entity.GenerationStateFailed,
		GenerationID: generationID,
		Message:      "Generation failed",
		Error:        cause.Error(),
	})
}

func (uc *GenerationUsecase) markFailed(ctx context.Context, presentationID string) {
	failedStatus := entity.PresentationStatusFailed
	if _, err := uc.presentationRepo.Update(ctx, presentationID, entity.PresentationUpdate{
		Status: &failedStatus,
	}); err != nil {
		ctxzap.Warn(ctx, "failed to mark presentation failed",
			zap.String("presentation_id", presentationID),
			zap.Error(err),
		)
	}
}
