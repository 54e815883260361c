package types

import "planner/entities"

// PlanDays is the length of a generated plan, in days.
const PlanDays = 7

// DailyTemplate is one day's content idea before it is dated.
type DailyTemplate struct {
	Platform        string `json:"platform"`
	Format          string `json:"format"` // reel|story|post|carousel
	Pillar          string `json:"pillar"`
	IdeaTitle       string `json:"idea_title"`
	IdeaDescription string `json:"idea_description"`
	SuggestedHook   string `json:"suggested_hook"`
	CaptionPrompt   string `json:"caption_prompt"`
}

func DefaultAnalysisParams() entities.AnalysisParams {
	return entities.AnalysisParams{WindowDays: 60, Platforms: []string{"instagram"}}
}

// DemoAnalysisSummary stands in for an analysis computed from real posts.
func DemoAnalysisSummary() entities.AnalysisSummary {
	return entities.AnalysisSummary{
		TopPillars: []entities.PillarLift{
			{Name: "BTS kitchen prep", LiftVsBaseline: 2.3},
			{Name: "Staff personalities", LiftVsBaseline: 1.8},
			{Name: "UGC reposts", LiftVsBaseline: 1.6},
		},
		BestFormats: entities.FormatMultipliers{Reels: "2.7x", Carousels: "1.4x", Static: "0.6x"},
		Cadence: entities.CadenceComparison{
			CompetitorsMedianPostsPerWeek: 5,
			ClientPostsPerWeek:            2,
		},
		UnderusedByClient: []string{"UGC", "poll stories", "limited-time offers"},
	}
}

func DemoPlanSummary() entities.PlanSummary {
	return entities.PlanSummary{
		Narrative:     "Focus on short Reels showing close-up prep + friendly staff moments.",
		Pillars:       []string{"BTS", "Staff", "UGC", "Offer"},
		WeeklyCadence: entities.WeeklyCadence{Reels: 3, Stories: 2, Static: 1},
	}
}

// DailyTemplates is the ordered template list; day i of a plan uses
// DailyTemplates[i % len(DailyTemplates)].
func DailyTemplates() []DailyTemplate {
	return []DailyTemplate{
		{
			Platform:        "instagram",
			Format:          "reel",
			Pillar:          "BTS",
			IdeaTitle:       "Close-up: Hand-stretched bread",
			IdeaDescription: "15s montage of dough → oven → steam release. Text-on-screen explains why your bread hits different.",
			SuggestedHook:   "“This is why our sandwiches hit different.”",
			CaptionPrompt:   "Write a playful, 1-sentence caption highlighting fresh-baked bread with a subtle CTA to visit today.",
		},
		{
			Platform:        "instagram",
			Format:          "story",
			Pillar:          "Offer",
			IdeaTitle:       "Poll: Spicy or Mild?",
			IdeaDescription: "Two-story poll for this week’s special sauce.",
			SuggestedHook:   "“Help us pick this week’s special”",
			CaptionPrompt:   "Draft a short, friendly story copy inviting people to vote.",
		},
		{
			Platform:        "instagram",
			Format:          "reel",
			Pillar:          "Staff",
			IdeaTitle:       "Meet the Team: 10s intros",
			IdeaDescription: "Quick cuts of 3 team members sharing a fun fact. End on smiles & logo.",
			SuggestedHook:   "“Meet the folks behind the counter”",
			CaptionPrompt:   "Write a wholesome caption introducing staff with 2 emojis.",
		},
		{
			Platform:        "instagram",
			Format:          "post",
			Pillar:          "UGC",
			IdeaTitle:       "Customer Repost: Sandwich close-up",
			IdeaDescription: "DM permission, repost their best shot; tag them and thank them.",
			SuggestedHook:   "“POV: First bite = bliss”",
			CaptionPrompt:   "Write a thank-you caption crediting the customer and inviting others to tag you.",
		},
		{
			Platform:        "instagram",
			Format:          "reel",
			Pillar:          "BTS",
			IdeaTitle:       "Sauce drizzle slow-mo",
			IdeaDescription: "7–10s macro slow-mo of signature sauce drizzle; text-on-screen naming the sauce.",
			SuggestedHook:   "“Don’t watch hungry.”",
			CaptionPrompt:   "Write a cheeky caption naming the sauce and inviting taste tests.",
		},
		{
			Platform:        "instagram",
			Format:          "story",
			Pillar:          "Community",
			IdeaTitle:       "Neighborhood shoutout",
			IdeaDescription: "Story tagging a nearby small biz you love; say why you love them.",
			SuggestedHook:   "“Love thy neighbor.”",
			CaptionPrompt:   "Write a 1-sentence supportive note to a nearby business.",
		},
		{
			Platform:        "instagram",
			Format:          "carousel",
			Pillar:          "Menu",
			IdeaTitle:       "Top 3 sandwiches this week",
			IdeaDescription: "3 slides with appetizing pics, short description and price; final slide CTA.",
			SuggestedHook:   "“What are you ordering first?”",
			CaptionPrompt:   "Write a short carousel caption listing 3 items with an inviting question.",
		},
	}
}
