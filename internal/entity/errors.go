package entity

import "errors"

// Domain errors
var (
	// Presentation errors
	ErrPresentationNotFound = errors.New("presentation not found")
	ErrEmptyUpdate          = errors.New("no fields to update")

	// Generation errors
	ErrGenerationNotFound = errors.New("generation progress not found")
	ErrGenerationInFlight = errors.New("generation already in progress")

	// Validation errors
	ErrMissingField     = errors.New("required field is missing")
	ErrInvalidParameter = errors.New("invalid parameter")
)
