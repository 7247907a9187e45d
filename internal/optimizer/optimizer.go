// Package optimizer turns user-facing design preferences into structured
// generation parameters for the Gamma API.
package optimizer

import (
	"fmt"
	"strings"

	"github.com/n46/deckgen/internal/entity"
)

const (
	MinSlides = 5
	MaxSlides = 30
)

// OptimizedParams is the intermediate result between design preferences and
// the final generation request payload.
type OptimizedParams struct {
	TextOptions            entity.TextOptions
	AdditionalInstructions string
	ImageOptions           entity.ImageOptions
	CardOptions            entity.CardOptions
	NumCards               int
	DesignMode             entity.DesignMode
}

// DensityToTextAmount maps the 0-100 density slider to a text amount bucket.
func DensityToTextAmount(density int) entity.TextAmount {
	switch {
	case density < 25:
		return entity.AmountBrief
	case density < 50:
		return entity.AmountMedium
	case density < 75:
		return entity.AmountDetailed
	default:
		return entity.AmountExtensive
	}
}

// DensityToDesignMode picks studio for low to mid density (full image cards,
// cinematic visual impact) and classic for higher density (information-rich).
func DensityToDesignMode(density int) entity.DesignMode {
	if density <= 50 {
		return entity.DesignModeStudio
	}
	return entity.DesignModeClassic
}

// ClampNumSlides bounds the requested slide count to the supported range.
func ClampNumSlides(n int) int {
	if n < MinSlides {
		return MinSlides
	}
	if n > MaxSlides {
		return MaxSlides
	}
	return n
}

// buildImageStyle joins the base style description with the profile modifier.
func buildImageStyle(style entity.ImageStyle, profile entity.Profile) string {
	base := imageStyleDescriptions[style]
	if modifier, ok := profileStyleModifiers[profile]; ok {
		return base + ", " + modifier
	}
	return base
}

// OptimizeForProfile resolves the (profile, use case) pair against the catalog
// and combines the density, design mode and visual instruction blocks with the
// use case specifics. Density instructions always come first so they override
// everything that follows. Unknown pairs fall back to neutral defaults.
func OptimizeForProfile(profile entity.Profile, useCaseID string, prefs entity.DesignPreferences) OptimizedParams {
	mode := DensityToDesignMode(prefs.Density)
	imageStyle := buildImageStyle(prefs.ImageStyle, profile)

	blocks := []string{
		densityInstructions(prefs.Density),
		designModeInstructions(mode),
		visualRequirementInstructions(),
	}

	dimensions := prefs.SlideDimensions
	if dimensions == "" {
		dimensions = entity.DimensionsFluid
	}

	params := OptimizedParams{
		TextOptions: entity.TextOptions{
			Amount:   DensityToTextAmount(prefs.Density),
			Tone:     "professional",
			Audience: "general audience",
			Language: "en",
		},
		ImageOptions: entity.ImageOptions{
			Source: entity.ImageSourceAIGenerated,
			Style:  imageStyle,
		},
		CardOptions: entity.CardOptions{Dimensions: dimensions},
		NumCards:    ClampNumSlides(prefs.NumSlides),
		DesignMode:  mode,
	}

	uc, ok := LookupUseCase(profile, useCaseID)
	if !ok {
		params.AdditionalInstructions = strings.Join(blocks, "\n")
		return params
	}

	params.TextOptions.Tone = uc.Tone
	params.TextOptions.Audience = uc.Audience
	params.AdditionalInstructions = strings.Join(blocks, "\n") + "\n\n" + uc.Instructions

	return params
}

// BuildRequest assembles the final generation payload. The theme is included
// only when the caller picked one; whitespace-only IDs count as no selection.
func BuildRequest(title, prompt string, params OptimizedParams, themeID string) entity.GenerateRequest {
	req := entity.GenerateRequest{
		InputText:              fmt.Sprintf("Title: %s\n\n%s", title, prompt),
		TextMode:               entity.TextModeGenerate,
		Format:                 entity.GammaFormatPresentation,
		NumCards:               params.NumCards,
		AdditionalInstructions: params.AdditionalInstructions,
		TextOptions:            params.TextOptions,
		ImageOptions:           params.ImageOptions,
		CardOptions:            params.CardOptions,
	}

	if trimmed := strings.TrimSpace(themeID); trimmed != "" {
		req.ThemeID = trimmed
	}

	return req
}
