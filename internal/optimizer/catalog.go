package optimizer

import "github.com/n46/deckgen/internal/entity"

// UseCase is one presentation purpose within a profile, carrying the
// tone/audience mapping and instruction text sent to the generation service.
type UseCase struct {
	ID           string
	Name         string
	Description  string
	Amount       entity.TextAmount
	Tone         string
	Audience     string
	Instructions string
	Structure    StructureTemplate
}

// StructureTemplate defines the outline injected into starter prompts.
type StructureTemplate struct {
	Intro    string
	Sections []string
	Closing  string
}

// ProfileInfo is the static description of one audience profile.
type ProfileInfo struct {
	ID          entity.Profile
	Name        string
	Description string
	UseCases    []UseCase
}

// Profile-specific style modifiers combined with the user's image style choice.
var profileStyleModifiers = map[entity.Profile]string{
	entity.ProfileStudent:    "educational, clear, diagram-friendly",
	entity.ProfileBusiness:   "professional, modern, corporate",
	entity.ProfileSocial:     "vibrant, emotional, engaging",
	entity.ProfileScientific: "technical, precise, data-visualization",
}

// Image style base descriptions sent to the generation service.
var imageStyleDescriptions = map[entity.ImageStyle]string{
	entity.ImageStylePhoto:        "photographic, realistic photography, high quality photo",
	entity.ImageStyleIllustration: "illustration, hand-drawn style, artistic illustration",
	entity.ImageStyleAbstract:     "abstract, geometric shapes, modern abstract design",
	entity.ImageStyle3D:           "3D render, three-dimensional, realistic 3D graphics",
	entity.ImageStyleLineArt:      "line art, minimalist, clean outline drawing",
}

// Profiles returns the full static catalog in a stable order.
func Profiles() []ProfileInfo {
	return catalog
}

// LookupProfile returns the catalog entry for a profile ID.
func LookupProfile(id entity.Profile) (ProfileInfo, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p, true
		}
	}
	return ProfileInfo{}, false
}

// LookupUseCase resolves a (profile, use case) pair against the catalog.
func LookupUseCase(profile entity.Profile, useCaseID string) (UseCase, bool) {
	p, ok := LookupProfile(profile)
	if !ok {
		return UseCase{}, false
	}
	for _, uc := range p.UseCases {
		if uc.ID == useCaseID {
			return uc, true
		}
	}
	return UseCase{}, false
}

var catalog = []ProfileInfo{
	{
		ID:          entity.ProfileStudent,
		Name:        "Student",
		Description: "Learning, assignments, thesis, academic projects",
		UseCases: []UseCase{
			{
				ID:           "self-learning",
				Name:         "Self-Learning",
				Description:  "Study guides and educational content",
				Amount:       entity.AmountDetailed,
				Tone:         "educational, clear, engaging",
				Audience:     "students learning new concepts",
				Instructions: "Use clear explanations, visual aids, and progressive complexity. Include key takeaways and summary points.",
				Structure: StructureTemplate{
					Intro: "Opening: Introduction to the concept and why it matters",
					Sections: []string{
						"Background: Historical context and foundational concepts",
						"Key Concepts: Main principles and definitions",
						"Examples: Real-world applications and case studies",
						"Common Misconceptions: Clarifying frequent misunderstandings",
					},
					Closing: "Summary: Key takeaways and further learning resources",
				},
			},
			{
				ID:           "essay-report",
				Name:         "Essay / Report",
				Description:  "Academic papers and formal reports",
				Amount:       entity.AmountExtensive,
				Tone:         "academic, formal, analytical",
				Audience:     "professors and academic reviewers",
				Instructions: "Follow academic formatting conventions. Include proper structure with introduction, body, conclusion. Use formal language and cite-ready formatting.",
				Structure: StructureTemplate{
					Intro: "Introduction: Thesis statement and context",
					Sections: []string{
						"Literature Review: Key scholarly perspectives",
						"Analysis: Main arguments and evidence",
						"Discussion: Implications and interpretations",
						"Counterarguments: Addressing alternative viewpoints",
					},
					Closing: "Conclusion: Summary of findings and recommendations",
				},
			},
			{
				ID:           "topic-presentation",
				Name:         "Topic Presentation",
				Description:  "Class presentations on any subject",
				Amount:       entity.AmountMedium,
				Tone:         "informative, engaging, clear",
				Audience:     "classmates and teachers",
				Instructions: "Create visually engaging slides with key points emphasized. Balance text and visuals. Include discussion questions or interactive elements.",
				Structure: StructureTemplate{
					Intro: "Hook: Attention-grabbing opening about the topic",
					Sections: []string{
						"Background: Why this topic matters",
						"Key Points: 3-4 main concepts to cover",
						"Examples: Real-world applications and illustrations",
						"Interactive Element: Discussion questions for the class",
					},
					Closing: "Summary: Key takeaways and next steps",
				},
			},
			{
				ID:           "science-project",
				Name:         "Science Project",
				Description:  "Lab reports and scientific methodology",
				Amount:       entity.AmountDetailed,
				Tone:         "scientific, precise, methodical",
				Audience:     "science teachers and judges",
				Instructions: "Follow scientific method structure: hypothesis, methodology, results, conclusion. Include data visualization placeholders and proper scientific terminology.",
				Structure: StructureTemplate{
					Intro: "Research Question: The problem being investigated",
					Sections: []string{
						"Hypothesis: Prediction and reasoning",
						"Methodology: Experimental design and procedures",
						"Results: Data presentation and analysis",
						"Discussion: Interpretation of findings",
					},
					Closing: "Conclusion: Summary and future research directions",
				},
			},
			{
				ID:           "thesis-defense",
				Name:         "Thesis Defense",
				Description:  "Graduate-level thesis presentations",
				Amount:       entity.AmountExtensive,
				Tone:         "professional, scholarly, comprehensive",
				Audience:     "thesis committee and academic experts",
				Instructions: "Structure for defense: research question, literature review, methodology, findings, implications, Q&A preparation. Maintain scholarly rigor while remaining accessible.",
				Structure: StructureTemplate{
					Intro: "Research Significance: Why this work matters",
					Sections: []string{
						"Literature Context: Gap in existing research",
						"Methodology: Research approach and rationale",
						"Key Findings: Main results and data",
						"Contributions: What this adds to the field",
					},
					Closing: "Implications: Future work and broader impact",
				},
			},
		},
	},
	{
		ID:          entity.ProfileBusiness,
		Name:        "Business",
		Description: "Startups, enterprise, sales, management",
		UseCases: []UseCase{
			{
				ID:           "pitch-deck",
				Name:         "Pitch Deck",
				Description:  "Investor presentations and fundraising",
				Amount:       entity.AmountBrief,
				Tone:         "confident, compelling, visionary",
				Audience:     "venture capitalists and angel investors",
				Instructions: "Follow proven pitch structure: Problem → Solution → Market → Traction → Team → Ask. Minimal text, maximum impact. Include placeholder for key metrics and financials. Make every slide count.",
				Structure: StructureTemplate{
					Intro: "Problem: The pain point being solved",
					Sections: []string{
						"Solution: How this addresses the problem",
						"Market: Size and opportunity (TAM/SAM/SOM)",
						"Traction: Current progress and metrics",
						"Team: Why this team can execute",
					},
					Closing: "Ask: Funding amount and use of funds",
				},
			},
			{
				ID:           "sales-proposal",
				Name:         "Sales Proposal",
				Description:  "Client presentations and deal closing",
				Amount:       entity.AmountMedium,
				Tone:         "persuasive, professional, solution-focused",
				Audience:     "potential clients and decision makers",
				Instructions: "Focus on client pain points and your solution. Include ROI projections, case studies references, and clear call-to-action. Address potential objections proactively.",
				Structure: StructureTemplate{
					Intro: "Situation: Understanding the client's current state",
					Sections: []string{
						"Pain Points: Specific challenges they face",
						"Solution: How your offering addresses these",
						"Proof: Case studies and testimonials",
						"ROI: Quantified value and benefits",
					},
					Closing: "Next Steps: Clear call-to-action and timeline",
				},
			},
			{
				ID:           "management-report",
				Name:         "Management Report",
				Description:  "Internal reports and board presentations",
				Amount:       entity.AmountDetailed,
				Tone:         "professional, data-driven, actionable",
				Audience:     "executives and board members",
				Instructions: "McKinsey-style formatting with executive summary upfront. Lead with insights and recommendations. Include KPI dashboards and trend analysis. Every slide should drive toward action items.",
				Structure: StructureTemplate{
					Intro: "Executive Summary: Key insights upfront",
					Sections: []string{
						"Performance: KPIs vs targets",
						"Analysis: Trends and patterns",
						"Challenges: Risks and issues",
						"Recommendations: Proposed actions",
					},
					Closing: "Action Items: Next steps with owners and deadlines",
				},
			},
			{
				ID:           "market-research",
				Name:         "Market Research",
				Description:  "Competitive analysis and market insights",
				Amount:       entity.AmountDetailed,
				Tone:         "analytical, objective, insightful",
				Audience:     "strategy teams and leadership",
				Instructions: "Include market sizing frameworks (TAM/SAM/SOM), competitive landscape mapping, SWOT analysis structure, and trend identification. Use data visualization heavily.",
				Structure: StructureTemplate{
					Intro: "Overview: Research scope and objectives",
					Sections: []string{
						"Market Size: TAM/SAM/SOM analysis",
						"Trends: Key market drivers and dynamics",
						"Competition: Competitive landscape mapping",
						"SWOT: Strengths, weaknesses, opportunities, threats",
					},
					Closing: "Recommendations: Strategic implications and next steps",
				},
			},
			{
				ID:           "product-roadmap",
				Name:         "Product Roadmap",
				Description:  "Product planning and strategy",
				Amount:       entity.AmountMedium,
				Tone:         "strategic, clear, forward-looking",
				Audience:     "product teams, stakeholders, and executives",
				Instructions: "Timeline-based structure with clear milestones. Include feature prioritization rationale, resource considerations, and success metrics. Balance vision with practicality.",
				Structure: StructureTemplate{
					Intro: "Vision: Where we're headed",
					Sections: []string{
						"Current State: Recent wins and progress",
						"Priorities: Strategic focus areas",
						"Timeline: Key milestones and deliverables",
						"Resources: Requirements and dependencies",
					},
					Closing: "Success Metrics: How we'll measure progress",
				},
			},
			{
				ID:           "training-materials",
				Name:         "Training Materials",
				Description:  "Onboarding and employee education",
				Amount:       entity.AmountDetailed,
				Tone:         "instructional, friendly, encouraging",
				Audience:     "new employees and team members",
				Instructions: "Step-by-step learning structure. Include knowledge checks, practical examples, and quick reference summaries. Make content scannable and memorable.",
				Structure: StructureTemplate{
					Intro: "Learning Objectives: What participants will learn",
					Sections: []string{
						"Core Concepts: Step-by-step explanations",
						"Practical Examples: Real-world applications",
						"Common Mistakes: What to avoid",
						"Quick Reference: Key points summary",
					},
					Closing: "Knowledge Check: Review questions and exercises",
				},
			},
		},
	},
	{
		ID:          entity.ProfileSocial,
		Name:        "Social",
		Description: "Events, celebrations, personal occasions",
		UseCases: []UseCase{
			{
				ID:           "birthday",
				Name:         "Birthday / Anniversary",
				Description:  "Celebration presentations",
				Amount:       entity.AmountBrief,
				Tone:         "celebratory, warm, personal",
				Audience:     "friends and family",
				Instructions: "Create emotional, celebratory content with space for photos. Use elegant design with festive touches. Include timeline of memories and heartfelt messages.",
				Structure: StructureTemplate{
					Intro: "Opening: Celebration message and occasion",
					Sections: []string{
						"Timeline: Journey through the years",
						"Memories: Favorite moments together",
						"Fun Facts: Inside jokes and stories",
						"Messages: Heartfelt wishes from loved ones",
					},
					Closing: "Celebration: Looking ahead to the future",
				},
			},
			{
				ID:           "wedding",
				Name:         "Wedding",
				Description:  "Wedding slideshows and stories",
				Amount:       entity.AmountBrief,
				Tone:         "romantic, elegant, storytelling",
				Audience:     "wedding guests and family",
				Instructions: "Romantic narrative structure: How we met → Our journey → The proposal → Our future. Elegant, sophisticated design. Photo-centric with minimal but meaningful text.",
				Structure: StructureTemplate{
					Intro: "Welcome: Opening message for the couple",
					Sections: []string{
						"How We Met: The beginning of their story",
						"Our Journey: Key moments and milestones",
						"The Proposal: How it happened",
						"Our Future: Dreams and plans together",
					},
					Closing: "Closing: Heartfelt wishes for the newlyweds",
				},
			},
			{
				ID:           "travel-recap",
				Name:         "Travel Recap",
				Description:  "Trip memories and photo stories",
				Amount:       entity.AmountBrief,
				Tone:         "adventurous, fun, nostalgic",
				Audience:     "friends and fellow travelers",
				Instructions: "Photo-driven storytelling with location highlights. Include fun facts, favorite moments, and recommendations. Create visual journey with map elements.",
				Structure: StructureTemplate{
					Intro: "Introduction: Where and when",
					Sections: []string{
						"Highlights: Best places and experiences",
						"Adventures: Memorable moments",
						"Discoveries: Unexpected finds and surprises",
						"Recommendations: Tips for fellow travelers",
					},
					Closing: "Closing: Final thoughts and best memories",
				},
			},
			{
				ID:           "roast-toast",
				Name:         "Roast / Toast",
				Description:  "Humorous tribute presentations",
				Amount:       entity.AmountBrief,
				Tone:         "humorous, affectionate, entertaining",
				Audience:     "party guests",
				Instructions: "Comedy timing structure with setup and punchlines. Mix embarrassing stories with genuine appreciation. Build to heartfelt conclusion. Keep text punchy and visual.",
				Structure: StructureTemplate{
					Intro: "Introduction: How I know the honoree",
					Sections: []string{
						"Embarrassing Stories: Lovable mishaps",
						"What Makes Them Special: Genuine appreciation",
						"Memorable Quotes: Things they've said",
						"Inside Jokes: Moments only we understand",
					},
					Closing: "Toast: Heartfelt closing message",
				},
			},
			{
				ID:           "trivia-game",
				Name:         "Trivia / Games",
				Description:  "Interactive party games",
				Amount:       entity.AmountBrief,
				Tone:         "playful, exciting, competitive",
				Audience:     "game participants",
				Instructions: "Quiz show format with clear questions and dramatic answer reveals. Include score tracking structure, category organization, and celebration moments.",
				Structure: StructureTemplate{
					Intro: "Welcome: Rules and how to play",
					Sections: []string{
						"Round 1: Easy questions to warm up",
						"Round 2: Medium difficulty challenges",
						"Round 3: Hard questions for the brave",
						"Bonus Round: Special category or speed round",
					},
					Closing: "Finale: Final scores and celebration",
				},
			},
		},
	},
	{
		ID:          entity.ProfileScientific,
		Name:        "Scientific",
		Description: "Research, publications, conferences",
		UseCases: []UseCase{
			{
				ID:           "white-paper",
				Name:         "White Paper",
				Description:  "Research documentation",
				Amount:       entity.AmountExtensive,
				Tone:         "scholarly, rigorous, authoritative",
				Audience:     "researchers and industry experts",
				Instructions: "Academic structure with abstract, methodology, findings, and discussion. Include proper citation formatting placeholders. Maintain scholarly rigor while ensuring readability.",
				Structure: StructureTemplate{
					Intro: "Abstract: Overview and key contribution",
					Sections: []string{
						"Problem Statement: Research question and significance",
						"Literature: Context and prior work",
						"Methodology: Approach and rationale",
						"Findings: Results and analysis",
					},
					Closing: "Conclusion: Implications and future directions",
				},
			},
			{
				ID:           "conference-talk",
				Name:         "Conference Talk",
				Description:  "Academic conference presentations",
				Amount:       entity.AmountMedium,
				Tone:         "professional, engaging, expert",
				Audience:     "conference attendees and peers",
				Instructions: "TED-style or academic talk format. Balance depth with accessibility. Include key findings emphasis, methodology overview, and implications. Design for large screen visibility.",
				Structure: StructureTemplate{
					Intro: "Hook: Why this research matters",
					Sections: []string{
						"Background: Context and prior work",
						"Approach: Methodology and innovation",
						"Results: Key findings with data",
						"Impact: What this means for the field",
					},
					Closing: "Future Work: Next steps and open questions",
				},
			},
			{
				ID:           "grant-proposal",
				Name:         "Grant Proposal",
				Description:  "Funding applications",
				Amount:       entity.AmountDetailed,
				Tone:         "persuasive, credible, impactful",
				Audience:     "grant committees and funding bodies",
				Instructions: "Include problem significance, proposed approach, expected outcomes, and budget justification. Emphasize innovation and broader impacts. Follow standard grant structure.",
				Structure: StructureTemplate{
					Intro: "Significance: Why this research is important",
					Sections: []string{
						"Innovation: What's new in this approach",
						"Methodology: Research plan and design",
						"Expected Outcomes: Anticipated results",
						"Broader Impacts: Benefits beyond academia",
					},
					Closing: "Budget: Resource justification and timeline",
				},
			},
			{
				ID:           "lab-meeting",
				Name:         "Lab Meeting",
				Description:  "Research updates and discussions",
				Amount:       entity.AmountMedium,
				Tone:         "technical, collaborative, update-focused",
				Audience:     "lab members and advisors",
				Instructions: "Progress update structure: What was done, what was found, what challenges arose, what comes next. Include data visualizations and preliminary findings. Keep technical but accessible to lab team.",
				Structure: StructureTemplate{
					Intro: "Update: Progress since last meeting",
					Sections: []string{
						"Results: Recent findings and data",
						"Challenges: Obstacles encountered",
						"Analysis: Interpretation of results",
						"Next Steps: Planned experiments",
					},
					Closing: "Discussion: Questions and feedback needed",
				},
			},
			{
				ID:           "poster-session",
				Name:         "Poster Session",
				Description:  "Scientific poster design",
				Amount:       entity.AmountBrief,
				Tone:         "concise, visual, impactful",
				Audience:     "conference attendees browsing posters",
				Instructions: "Poster format with scannable sections. Large, clear headings. Visual-heavy with minimal dense text. Include QR code placeholder for additional resources. Design for quick comprehension.",
				Structure: StructureTemplate{
					Intro: "Introduction: Research question and context",
					Sections: []string{
						"Methods: Visual overview of approach",
						"Results: Key figures and data",
						"Discussion: Interpretation of findings",
						"Contact: Author info and resources",
					},
					Closing: "Conclusions: Main takeaways",
				},
			},
		},
	},
}
