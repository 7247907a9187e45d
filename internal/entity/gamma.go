package entity

import (
	"encoding/json"
	"fmt"
)

type TextMode string

const (
	TextModeGenerate TextMode = "generate"
	TextModeCondense TextMode = "condense"
	TextModePreserve TextMode = "preserve"
)

type GammaFormat string

const (
	GammaFormatPresentation GammaFormat = "presentation"
	GammaFormatDocument     GammaFormat = "document"
	GammaFormatSocial       GammaFormat = "social"
	GammaFormatWebpage      GammaFormat = "webpage"
)

type ImageSource string

const (
	ImageSourceAIGenerated  ImageSource = "aiGenerated"
	ImageSourcePictographic ImageSource = "pictographic"
	ImageSourceUnsplash     ImageSource = "unsplash"
	ImageSourcePlaceholder  ImageSource = "placeholder"
	ImageSourceNoImages     ImageSource = "noImages"
)

type TextOptions struct {
	Amount   TextAmount `json:"amount"`
	Tone     string     `json:"tone"`
	Audience string     `json:"audience"`
	Language string     `json:"language"`
}

type ImageOptions struct {
	Source ImageSource `json:"source"`
	Style  string      `json:"style,omitempty"`
}

type CardOptions struct {
	Dimensions SlideDimensions `json:"dimensions"`
}

// GenerateRequest is the payload for POST /generations on the Gamma API.
// ThemeID must be absent (not null, not empty) when no theme is selected.
type GenerateRequest struct {
	InputText              string       `json:"inputText"`
	TextMode               TextMode     `json:"textMode"`
	Format                 GammaFormat  `json:"format"`
	ThemeID                string       `json:"themeId,omitempty"`
	NumCards               int          `json:"numCards"`
	AdditionalInstructions string       `json:"additionalInstructions,omitempty"`
	TextOptions            TextOptions  `json:"textOptions"`
	ImageOptions           ImageOptions `json:"imageOptions"`
	CardOptions            CardOptions  `json:"cardOptions"`
}

type GenerateResponse struct {
	GenerationID string `json:"generationId"`
}

type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
)

type GenerationCredits struct {
	Deducted  int `json:"deducted"`
	Remaining int `json:"remaining"`
}

// GenerationStatus is the polling payload for GET /generations/{id}.
type GenerationStatus struct {
	GenerationID string             `json:"generationId"`
	Status       JobStatus          `json:"status"`
	GammaURL     string             `json:"gammaUrl,omitempty"`
	PDFURL       string             `json:"pdfUrl,omitempty"`
	PPTXURL      string             `json:"pptxUrl,omitempty"`
	Credits      *GenerationCredits `json:"credits,omitempty"`
	Error        string             `json:"error,omitempty"`
}

type Theme struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PreviewURL string `json:"previewUrl,omitempty"`
}

// GammaError is the typed error for any failure talking to the generation
// service: non-2xx responses, terminal failed jobs and poll timeouts.
type GammaError struct {
	Message    string
	StatusCode int
	Details    json.RawMessage
}

func (e *GammaError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("gamma: %s (status %d)", e.Message, e.StatusCode)
	}
	return "gamma: " + e.Message
}
