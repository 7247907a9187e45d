package presentation

import "github.com/n46/deckgen/internal/entity"

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toEntityPresentation(req *entity.CreatePresentationRequest) *entity.Presentation {
	status := entity.PresentationStatusDraft
	if req.Status != "" {
		status = entity.PresentationStatus(req.Status)
	}

	return &entity.Presentation{
		Title:            req.Title,
		Description:      optionalString(req.Description),
		UserProfile:      req.UserProfile,
		UseCase:          req.UseCase,
		Prompt:           req.Prompt,
		GammaID:          optionalString(req.GammaID),
		GammaURL:         optionalString(req.GammaURL),
		GenerationID:     optionalString(req.GenerationID),
		Status:           status,
		PDFURL:           optionalString(req.PDFURL),
		PPTXURL:          optionalString(req.PPTXURL),
		GenerationParams: req.GenerationParams,
		ThumbnailURL:     optionalString(req.ThumbnailURL),
	}
}

func toEntityUpdate(req *entity.UpdatePresentationRequest) entity.PresentationUpdate {
	return entity.PresentationUpdate{
		Title:            req.Title,
		Description:      req.Description,
		UserProfile:      req.UserProfile,
		UseCase:          req.UseCase,
		Prompt:           req.Prompt,
		GammaID:          req.GammaID,
		GammaURL:         req.GammaURL,
		GenerationID:     req.GenerationID,
		Status:           req.Status,
		PDFURL:           req.PDFURL,
		PPTXURL:          req.PPTXURL,
		GenerationParams: req.GenerationParams,
		ThumbnailURL:     req.ThumbnailURL,
	}
}
