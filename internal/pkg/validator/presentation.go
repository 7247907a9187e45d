package validator

import (
	"fmt"

	"github.com/n46/deckgen/internal/entity"
)

// Validator validates incoming presentation payloads
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateCreatePresentation(req *entity.CreatePresentationRequest) error {
	if req.Title == "" {
		return fmt.Errorf("%w: title", entity.ErrMissingField)
	}
	if req.UserProfile == "" {
		return fmt.Errorf("%w: userProfile", entity.ErrMissingField)
	}
	if err := req.UserProfile.Validate(); err != nil {
		return fmt.Errorf("%w: %v", entity.ErrInvalidParameter, err)
	}
	if req.UseCase == "" {
		return fmt.Errorf("%w: useCase", entity.ErrMissingField)
	}
	if req.Prompt == "" {
		return fmt.Errorf("%w: prompt", entity.ErrMissingField)
	}

	if req.Status != "" {
		status := entity.PresentationStatus(req.Status)
		if err := status.Validate(); err != nil {
			return fmt.Errorf("%w: %v", entity.ErrInvalidParameter, err)
		}
	}

	return nil
}

func (v *Validator) ValidateUpdatePresentation(req *entity.UpdatePresentationRequest) error {
	if req.Title != nil && *req.Title == "" {
		return fmt.Errorf("%w: title must not be empty", entity.ErrInvalidParameter)
	}
	if req.UserProfile != nil {
		if err := req.UserProfile.Validate(); err != nil {
			return fmt.Errorf("%w: %v", entity.ErrInvalidParameter, err)
		}
	}
	if req.Status != nil {
		if err := req.Status.Validate(); err != nil {
			return fmt.Errorf("%w: %v", entity.ErrInvalidParameter, err)
		}
	}

	return nil
}

func (v *Validator) ValidateStartGeneration(req *entity.StartGenerationRequest) error {
	if req.Density < 0 || req.Density > 100 {
		return fmt.Errorf("%w: density must be between 0 and 100, got %d", entity.ErrInvalidParameter, req.Density)
	}
	if req.ImageStyle != "" {
		if err := req.ImageStyle.Validate(); err != nil {
			return fmt.Errorf("%w: %v", entity.ErrInvalidParameter, err)
		}
	}
	if req.SlideDimensions != "" {
		if err := req.SlideDimensions.Validate(); err != nil {
			return fmt.Errorf("%w: %v", entity.ErrInvalidParameter, err)
		}
	}

	return nil
}
