package presentation

import (
	"time"

	"github.com/n46/deckgen/internal/entity"
)

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toPresentationResponse(p *entity.Presentation) *entity.PresentationResponse {
	return &entity.PresentationResponse{
		ID:               p.ID,
		Title:            p.Title,
		Description:      stringValue(p.Description),
		UserProfile:      p.UserProfile,
		UseCase:          p.UseCase,
		Prompt:           p.Prompt,
		GammaID:          stringValue(p.GammaID),
		GammaURL:         stringValue(p.GammaURL),
		GenerationID:     stringValue(p.GenerationID),
		Status:           p.Status,
		PDFURL:           stringValue(p.PDFURL),
		PPTXURL:          stringValue(p.PPTXURL),
		GenerationParams: p.GenerationParams,
		ThumbnailURL:     stringValue(p.ThumbnailURL),
		CreatedAt:        p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:        p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func toPresentationResponses(presentations []*entity.Presentation) []*entity.PresentationResponse {
	responses := make([]*entity.PresentationResponse, 0, len(presentations))
	for _, p := range presentations {
		responses = append(responses, toPresentationResponse(p))
	}
	return responses
}
