package optimizer

import (
	"fmt"
	"strings"

	"github.com/n46/deckgen/internal/entity"
)

// StarterPrompt builds a full, editable prompt from the use case structure
// template and the user's subject. Unknown use cases get a generic outline so
// the caller always has something usable.
func StarterPrompt(profile entity.Profile, useCaseID, subject string) string {
	useCaseName := useCaseID
	tone := "professional"
	audience := "general audience"

	uc, ok := LookupUseCase(profile, useCaseID)
	if ok {
		useCaseName = uc.Name
		tone = uc.Tone
		audience = uc.Audience
	}

	if !ok || len(uc.Structure.Sections) == 0 {
		return fmt.Sprintf(`Create a %s about "%s" for %s.

Structure:
- Introduction to the topic
- Main content sections
- Key points and examples
- Conclusion and summary

Tone: %s`, useCaseName, subject, audience, tone)
	}

	lines := make([]string, 0, len(uc.Structure.Sections)+2)
	lines = append(lines, "- "+uc.Structure.Intro)
	for _, section := range uc.Structure.Sections {
		lines = append(lines, "- "+section)
	}
	lines = append(lines, "- "+uc.Structure.Closing)

	return fmt.Sprintf(`Create a %s about "%s" for %s.

Structure:
%s

Tone: %s
Target audience: %s`, useCaseName, subject, audience, strings.Join(lines, "\n"), tone, audience)
}
