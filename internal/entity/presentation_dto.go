package entity

// Field names follow the camelCase contract the web client already speaks.

type CreatePresentationRequest struct {
	Title            string           `json:"title"`
	Description      string           `json:"description,omitempty"`
	UserProfile      Profile          `json:"userProfile"`
	UseCase          string           `json:"useCase"`
	Prompt           string           `json:"prompt"`
	GammaID          string           `json:"gammaId,omitempty"`
	GammaURL         string           `json:"gammaUrl,omitempty"`
	GenerationID     string           `json:"generationId,omitempty"`
	Status           string           `json:"status,omitempty"`
	PDFURL           string           `json:"pdfUrl,omitempty"`
	PPTXURL          string           `json:"pptxUrl,omitempty"`
	GenerationParams *GenerateRequest `json:"generationParams,omitempty"`
	ThumbnailURL     string           `json:"thumbnailUrl,omitempty"`
}

// UpdatePresentationRequest is a partial update; absent fields stay untouched.
type UpdatePresentationRequest struct {
	Title            *string             `json:"title,omitempty"`
	Description      *string             `json:"description,omitempty"`
	UserProfile      *Profile            `json:"userProfile,omitempty"`
	UseCase          *string             `json:"useCase,omitempty"`
	Prompt           *string             `json:"prompt,omitempty"`
	GammaID          *string             `json:"gammaId,omitempty"`
	GammaURL         *string             `json:"gammaUrl,omitempty"`
	GenerationID     *string             `json:"generationId,omitempty"`
	Status           *PresentationStatus `json:"status,omitempty"`
	PDFURL           *string             `json:"pdfUrl,omitempty"`
	PPTXURL          *string             `json:"pptxUrl,omitempty"`
	GenerationParams *GenerateRequest    `json:"generationParams,omitempty"`
	ThumbnailURL     *string             `json:"thumbnailUrl,omitempty"`
}

type PresentationResponse struct {
	ID               string             `json:"id"`
	Title            string             `json:"title"`
	Description      string             `json:"description,omitempty"`
	UserProfile      Profile            `json:"userProfile"`
	UseCase          string             `json:"useCase"`
	Prompt           string             `json:"prompt"`
	GammaID          string             `json:"gammaId,omitempty"`
	GammaURL         string             `json:"gammaUrl,omitempty"`
	GenerationID     string             `json:"generationId,omitempty"`
	Status           PresentationStatus `json:"status"`
	PDFURL           string             `json:"pdfUrl,omitempty"`
	PPTXURL          string             `json:"pptxUrl,omitempty"`
	GenerationParams *GenerateRequest   `json:"generationParams,omitempty"`
	ThumbnailURL     string             `json:"thumbnailUrl,omitempty"`
	CreatedAt        string             `json:"createdAt"`
	UpdatedAt        string             `json:"updatedAt"`
}

type ListRecentRequest struct {
	Limit int
}

func (lr *ListRecentRequest) Normalize() {
	if lr.Limit <= 0 {
		lr.Limit = 5
	}

	lr.Limit = min(lr.Limit, 50)
}

// StartGenerationRequest is the body for POST /api/presentations/{id}/generate.
type StartGenerationRequest struct {
	Density         int             `json:"density"`
	NumSlides       int             `json:"numSlides"`
	ImageStyle      ImageStyle      `json:"imageStyle"`
	SlideDimensions SlideDimensions `json:"slideDimensions"`
	ThemeID         string          `json:"themeId,omitempty"`
}

type StartGenerationResponse struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}

// GenerationProgress is the live snapshot served while a job is in flight.
type GenerationProgress struct {
	State        GenerationState `json:"state"`
	GenerationID string          `json:"generationId,omitempty"`
	Progress     int             `json:"progress"` // 0-100 estimate
	Message      string          `json:"message"`
	GammaURL     string          `json:"gammaUrl,omitempty"`
	PDFURL       string          `json:"pdfUrl,omitempty"`
	PPTXURL      string          `json:"pptxUrl,omitempty"`
	Error        string          `json:"error,omitempty"`
}

type GenerationState string

const (
	GenerationStateIdle       GenerationState = "idle"
	GenerationStateStarting   GenerationState = "starting"
	GenerationStateGenerating GenerationState = "generating"
	GenerationStateCompleted  GenerationState = "completed"
	GenerationStateFailed     GenerationState = "failed"
)

type ThemesResponse struct {
	Themes []Theme `json:"themes"`
}

type ConnectionResponse struct {
	Connected bool `json:"connected"`
}

// Catalog DTOs expose the static profile/use-case reference data to the client.

type UseCaseSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ProfileSummary struct {
	ID          Profile          `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	UseCases    []UseCaseSummary `json:"useCases"`
}

type CatalogResponse struct {
	Profiles []ProfileSummary `json:"profiles"`
}

type StarterPromptResponse struct {
	Prompt string `json:"prompt"`
}

// ErrorResponse is the uniform error payload for the REST API.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
