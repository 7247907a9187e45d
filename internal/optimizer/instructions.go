package optimizer

import "github.com/n46/deckgen/internal/entity"

// Density instructions take precedence over everything else in the combined
// instruction block, so the bands below are phrased as explicit overrides.

func densityInstructions(density int) string {
	switch {
	case density < 15:
		return `
=== DENSITY OVERRIDE (CRITICAL - HIGHEST PRIORITY) ===
ULTRA-MINIMAL MODE - THIS OVERRIDES ALL OTHER INSTRUCTIONS:
- EACH SLIDE: ONE full-screen background image + ONE title (max 5 words)
- NO bullet points, NO paragraphs, NO lists, NO body text whatsoever
- NO subtitles, NO captions, NO descriptions
- The image MUST cover 100% of the slide as the background
- Text is ONLY a short headline overlaid on the image
- Think: Magazine cover or movie poster - pure visual impact
- IGNORE any other instructions about text amount or content structure
- Total text per slide: Maximum 5 words
`
	case density < 35:
		return `
=== DENSITY OVERRIDE (CRITICAL - HIGHEST PRIORITY) ===
MINIMAL MODE - THIS OVERRIDES ALL OTHER INSTRUCTIONS:
- EACH SLIDE: Full-screen background image + headline + 1 short sentence max
- The image MUST be the dominant element (full-bleed background)
- Maximum 15 words of text per slide total
- NO bullet lists, NO detailed content, NO paragraphs
- Only: Title + one supporting line overlaid on image
- Think: Apple keynote style - visual-first, text-minimal
- IGNORE any structure suggestions that add more text
`
	case density < 50:
		return `
=== DENSITY OVERRIDE (CRITICAL - HIGHEST PRIORITY) ===
VISUAL-FIRST MODE - THIS OVERRIDES ALL OTHER INSTRUCTIONS:
- Large background images are the primary content
- Headlines + 2-3 bullet points maximum per slide
- Keep text brief and punchy - no full sentences
- Images should occupy majority of slide space
- Total text per slide: Maximum 30 words
- Prioritize visual storytelling over text content
`
	case density < 65:
		return `
=== DENSITY INSTRUCTIONS ===
BALANCED MODE:
- Equal emphasis on visuals and text content
- Include images/charts alongside text content
- Allow 3-5 bullet points or short paragraphs per slide
- Every slide must have a visual element (image, chart, diagram)
- Mix of text and visuals for comprehensive coverage
`
	case density < 80:
		return `
=== DENSITY INSTRUCTIONS ===
DETAILED MODE:
- Information-dense slides with thorough content
- Include detailed bullet points, explanations, and data
- Add charts, tables, and diagrams where relevant
- Support claims with evidence and examples
- 5-8 points per slide is acceptable
- Still include relevant images to break up text
`
	default:
		return `
=== DENSITY OVERRIDE (CRITICAL - HIGHEST PRIORITY) ===
MAXIMUM INFORMATION MODE - THIS OVERRIDES ALL OTHER INSTRUCTIONS:
- Pack each slide with comprehensive information
- Include detailed text, multiple bullet points, full paragraphs
- Add data tables, charts, graphs, and statistics wherever possible
- Include citations, footnotes, and detailed explanations
- Fill slides with thorough, in-depth content
- Use smaller fonts if needed to fit more information
- Include supporting images, but text/data is the priority
- Think: Academic paper or detailed report format
- Each slide should be information-complete and self-contained
`
	}
}

func designModeInstructions(mode entity.DesignMode) string {
	if mode == entity.DesignModeStudio {
		return `
STUDIO MODE - FULL IMAGE SLIDES:
- Each slide MUST be a full-bleed background image covering the entire card
- The image IS the slide - text overlays the image, not beside it
- Generate dramatic, cinematic AI images
- Use bold, high-contrast text that overlays the full-image background
`
	}
	return `
CLASSIC MODE:
- Every slide must include at least one relevant image or visual element
- Balance text content with supporting visuals
- Include charts, diagrams, or icons where appropriate
`
}

func visualRequirementInstructions() string {
	return `
VISUAL REQUIREMENTS:
- EVERY slide MUST have at least one image, chart, diagram, or visual element
- No text-only slides are allowed
- Generate AI images for any slide lacking visual content
- Use relevant, high-quality visuals that support the slide content
- Include visual variety: photos, illustrations, icons, charts, or diagrams as appropriate
`
}
