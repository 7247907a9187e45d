package entity

import (
	"fmt"
	"time"
)

type PresentationStatus string

// Presentation status represents the lifecycle of a stored presentation
const (
	PresentationStatusDraft      PresentationStatus = "draft"      // Created, generation not started
	PresentationStatusGenerating PresentationStatus = "generating" // Generation job in flight
	PresentationStatusCompleted  PresentationStatus = "completed"  // Generation finished, URLs populated
	PresentationStatusFailed     PresentationStatus = "failed"     // Generation failed, error recorded
)

// ActiveStatuses are the statuses counted as "drafts" in dashboard stats.
var ActiveStatuses = []PresentationStatus{PresentationStatusDraft, PresentationStatusGenerating}

func (ps *PresentationStatus) Validate() error {
	switch *ps {
	case PresentationStatusDraft, PresentationStatusGenerating, PresentationStatusCompleted, PresentationStatusFailed:
		return nil
	default:
		return fmt.Errorf("unknown presentation status: %s", *ps)
	}
}

type Profile string

const (
	ProfileStudent    Profile = "student"
	ProfileBusiness   Profile = "business"
	ProfileSocial     Profile = "social"
	ProfileScientific Profile = "scientific"
)

func (p *Profile) Validate() error {
	switch *p {
	case ProfileStudent, ProfileBusiness, ProfileSocial, ProfileScientific:
		return nil
	default:
		return fmt.Errorf("unknown profile: %s", *p)
	}
}

type ImageStyle string

const (
	ImageStylePhoto        ImageStyle = "photo"
	ImageStyleIllustration ImageStyle = "illustration"
	ImageStyleAbstract     ImageStyle = "abstract"
	ImageStyle3D           ImageStyle = "3d"
	ImageStyleLineArt      ImageStyle = "lineArt"
)

func (s *ImageStyle) Validate() error {
	switch *s {
	case ImageStylePhoto, ImageStyleIllustration, ImageStyleAbstract, ImageStyle3D, ImageStyleLineArt:
		return nil
	default:
		return fmt.Errorf("unknown image style: %s", *s)
	}
}

type SlideDimensions string

const (
	DimensionsFluid SlideDimensions = "fluid"
	Dimensions16x9  SlideDimensions = "16x9"
	Dimensions4x3   SlideDimensions = "4x3"
)

func (d *SlideDimensions) Validate() error {
	switch *d {
	case DimensionsFluid, Dimensions16x9, Dimensions4x3:
		return nil
	default:
		return fmt.Errorf("unknown slide dimensions: %s", *d)
	}
}

type TextAmount string

const (
	AmountBrief     TextAmount = "brief"
	AmountMedium    TextAmount = "medium"
	AmountDetailed  TextAmount = "detailed"
	AmountExtensive TextAmount = "extensive"
)

type DesignMode string

const (
	DesignModeStudio  DesignMode = "studio"
	DesignModeClassic DesignMode = "classic"
)

type ExportFormat string

const (
	FormatMarkdown ExportFormat = "markdown"
	FormatPDF      ExportFormat = "pdf"
	FormatPPTX     ExportFormat = "pptx"
)

func (f *ExportFormat) Validate() error {
	switch *f {
	case FormatMarkdown, FormatPDF, FormatPPTX:
		return nil
	default:
		return fmt.Errorf("unknown export format: %s", *f)
	}
}

// DesignPreferences are the user-facing knobs the optimizer turns into
// structured generation parameters.
type DesignPreferences struct {
	Density         int             `json:"density"` // 0-100, 0 = minimal, 100 = dense
	NumSlides       int             `json:"numSlides"`
	ImageStyle      ImageStyle      `json:"imageStyle"`
	SlideDimensions SlideDimensions `json:"slideDimensions"`
}

// Presentation is the persisted entity
type Presentation struct {
	ID          string
	Title       string
	Description *string

	// Creation context
	UserProfile Profile
	UseCase     string
	Prompt      string

	// External correlation with the generation service
	GammaID      *string
	GammaURL     *string
	GenerationID *string
	Status       PresentationStatus

	// Export URLs reported by the generation service
	PDFURL  *string
	PPTXURL *string

	// Parameters the job was submitted with
	GenerationParams *GenerateRequest

	ThumbnailURL *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PresentationUpdate carries a partial update; nil fields are left untouched.
// updated_at is always stamped by the repository.
type PresentationUpdate struct {
	Title            *string
	Description      *string
	UserProfile      *Profile
	UseCase          *string
	Prompt           *string
	GammaID          *string
	GammaURL         *string
	GenerationID     *string
	Status           *PresentationStatus
	PDFURL           *string
	PPTXURL          *string
	GenerationParams *GenerateRequest
	ThumbnailURL     *string
}

// PresentationStats backs the dashboard stats bar.
type PresentationStats struct {
	Total    int `json:"total"`
	ThisWeek int `json:"thisWeek"`
	Drafts   int `json:"drafts"`
}
