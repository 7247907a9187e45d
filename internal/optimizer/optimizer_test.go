package optimizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/n46/deckgen/internal/entity"
)

func TestDensityToTextAmount(t *testing.T) {
	cases := []struct {
		density int
		want    entity.TextAmount
	}{
		{0, entity.AmountBrief},
		{24, entity.AmountBrief},
		{25, entity.AmountMedium},
		{49, entity.AmountMedium},
		{50, entity.AmountDetailed},
		{74, entity.AmountDetailed},
		{75, entity.AmountExtensive},
		{100, entity.AmountExtensive},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, DensityToTextAmount(c.density), "density %d", c.density)
	}
}

func TestDensityToDesignMode(t *testing.T) {
	assert.Equal(t, entity.DesignModeStudio, DensityToDesignMode(0))
	assert.Equal(t, entity.DesignModeStudio, DensityToDesignMode(50))
	assert.Equal(t, entity.DesignModeClassic, DensityToDesignMode(51))
	assert.Equal(t, entity.DesignModeClassic, DensityToDesignMode(100))
}

func TestClampNumSlides(t *testing.T) {
	assert.Equal(t, 5, ClampNumSlides(3))
	assert.Equal(t, 5, ClampNumSlides(5))
	assert.Equal(t, 12, ClampNumSlides(12))
	assert.Equal(t, 30, ClampNumSlides(30))
	assert.Equal(t, 30, ClampNumSlides(99))
}

func TestOptimizeForProfile_KnownUseCase(t *testing.T) {
	prefs := entity.DesignPreferences{
		Density:         40,
		NumSlides:       10,
		ImageStyle:      entity.ImageStylePhoto,
		SlideDimensions: entity.Dimensions16x9,
	}

	params := OptimizeForProfile(entity.ProfileBusiness, "pitch-deck", prefs)

	assert.Equal(t, entity.AmountMedium, params.TextOptions.Amount)
	assert.Equal(t, "confident, compelling, visionary", params.TextOptions.Tone)
	assert.Equal(t, "venture capitalists and angel investors", params.TextOptions.Audience)
	assert.Equal(t, "en", params.TextOptions.Language)
	assert.Equal(t, entity.ImageSourceAIGenerated, params.ImageOptions.Source)
	assert.Equal(t, entity.Dimensions16x9, params.CardOptions.Dimensions)
	assert.Equal(t, 10, params.NumCards)
	assert.Equal(t, entity.DesignModeStudio, params.DesignMode)
}

func TestOptimizeForProfile_InstructionOrdering(t *testing.T) {
	prefs := entity.DesignPreferences{
		Density:    10,
		NumSlides:  8,
		ImageStyle: entity.ImageStyleAbstract,
	}

	params := OptimizeForProfile(entity.ProfileStudent, "self-learning", prefs)
	instructions := params.AdditionalInstructions

	densityIdx := strings.Index(instructions, "ULTRA-MINIMAL MODE")
	studioIdx := strings.Index(instructions, "STUDIO MODE")
	visualIdx := strings.Index(instructions, "VISUAL REQUIREMENTS")
	useCaseIdx := strings.Index(instructions, "progressive complexity")

	assert.GreaterOrEqual(t, densityIdx, 0)
	assert.Greater(t, studioIdx, densityIdx)
	assert.Greater(t, visualIdx, studioIdx)
	assert.Greater(t, useCaseIdx, visualIdx)
}

func TestOptimizeForProfile_HighDensityClassicMode(t *testing.T) {
	prefs := entity.DesignPreferences{
		Density:    85,
		NumSlides:  15,
		ImageStyle: entity.ImageStylePhoto,
	}

	params := OptimizeForProfile(entity.ProfileScientific, "white-paper", prefs)

	assert.Equal(t, entity.DesignModeClassic, params.DesignMode)
	assert.Contains(t, params.AdditionalInstructions, "MAXIMUM INFORMATION MODE")
	assert.Contains(t, params.AdditionalInstructions, "CLASSIC MODE")
	assert.NotContains(t, params.AdditionalInstructions, "STUDIO MODE")
}

func TestOptimizeForProfile_UnknownUseCaseFallback(t *testing.T) {
	prefs := entity.DesignPreferences{
		Density:    60,
		NumSlides:  10,
		ImageStyle: entity.ImageStyleLineArt,
	}

	params := OptimizeForProfile(entity.ProfileSocial, "does-not-exist", prefs)

	assert.Equal(t, "professional", params.TextOptions.Tone)
	assert.Equal(t, "general audience", params.TextOptions.Audience)
	assert.Contains(t, params.AdditionalInstructions, "BALANCED MODE")
	assert.Contains(t, params.AdditionalInstructions, "VISUAL REQUIREMENTS")
	assert.Equal(t, entity.DimensionsFluid, params.CardOptions.Dimensions)
}

func TestOptimizeForProfile_ImageStyleIncludesProfileModifier(t *testing.T) {
	prefs := entity.DesignPreferences{
		Density:    50,
		NumSlides:  10,
		ImageStyle: entity.ImageStyle3D,
	}

	params := OptimizeForProfile(entity.ProfileBusiness, "pitch-deck", prefs)

	assert.Equal(t, "3D render, three-dimensional, realistic 3D graphics, professional, modern, corporate", params.ImageOptions.Style)
}

func TestBuildRequest(t *testing.T) {
	params := OptimizeForProfile(entity.ProfileStudent, "topic-presentation", entity.DesignPreferences{
		Density:    45,
		NumSlides:  7,
		ImageStyle: entity.ImageStyleIllustration,
	})

	req := BuildRequest("Solar Energy", "Cover the basics of photovoltaics", params, "theme-42")

	assert.Equal(t, "Title: Solar Energy\n\nCover the basics of photovoltaics", req.InputText)
	assert.Equal(t, entity.TextModeGenerate, req.TextMode)
	assert.Equal(t, entity.GammaFormatPresentation, req.Format)
	assert.Equal(t, "theme-42", req.ThemeID)
	assert.Equal(t, 7, req.NumCards)
}

func TestBuildRequest_ThemeOmittedWhenBlank(t *testing.T) {
	params := OptimizeForProfile(entity.ProfileSocial, "birthday", entity.DesignPreferences{
		Density:    20,
		NumSlides:  6,
		ImageStyle: entity.ImageStylePhoto,
	})

	for _, themeID := range []string{"", "   ", "\t\n"} {
		req := BuildRequest("30 Years of Anna", "A celebration", params, themeID)
		assert.Empty(t, req.ThemeID)
	}
}

func TestBuildRequest_ThemeTrimmed(t *testing.T) {
	params := OptimizeForProfile(entity.ProfileSocial, "birthday", entity.DesignPreferences{
		Density:    20,
		NumSlides:  6,
		ImageStyle: entity.ImageStylePhoto,
	})

	req := BuildRequest("30 Years of Anna", "A celebration", params, "  ocean  ")

	assert.Equal(t, "ocean", req.ThemeID)
}

func TestCatalogCoversAllProfiles(t *testing.T) {
	profiles := Profiles()
	assert.Len(t, profiles, 4)

	total := 0
	for _, p := range profiles {
		assert.NotEmpty(t, p.UseCases, "profile %s", p.ID)
		for _, uc := range p.UseCases {
			assert.NotEmpty(t, uc.Tone, "%s/%s", p.ID, uc.ID)
			assert.NotEmpty(t, uc.Audience, "%s/%s", p.ID, uc.ID)
			assert.NotEmpty(t, uc.Instructions, "%s/%s", p.ID, uc.ID)
			assert.Len(t, uc.Structure.Sections, 4, "%s/%s", p.ID, uc.ID)
			total++
		}
	}
	assert.Equal(t, 22, total)
}
