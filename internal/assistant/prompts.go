package assistant

import (
	"fmt"
	"strings"

	"github.com/zakiyahfaroo/HuskySync/internal/models/domain"
	"github.com/zakiyahfaroo/HuskySync/internal/utils"
)

func buildAdvicePrompt(draft domain.EventDraft, existing []domain.Event) string {
	lines := make([]string, 0)
	for _, e := range existing {
		if e.Date != draft.Date {
			continue
		}
		lines = append(lines, fmt.Sprintf("- %s (%s-%s) by %s: %s",
			e.Title, e.StartTime, e.EndTime, e.Organizer, joinTags(e.Tags)))
	}

	eventContext := strings.Join(lines, "\n")
	if eventContext == "" {
		eventContext = "No other events scheduled for this day yet."
	}

	return fmt.Sprintf(`You are an expert event planner for the University of Washington.
An RSO is planning a new event: %q on %s.
Description: %q.

Here are other events happening on that same day:
%s

Please provide brief advice (max 3 sentences) on:
1. Potential thematic clashes (e.g., too many career events).
2. Suggestions to make the event stand out based on the description.
3. If the schedule looks clear, encourage them!`,
		draft.Title, draft.Date, draft.Description, eventContext)
}

func buildMarketingPrompt(draft domain.EventDraft, kind MarketingKind) string {
	var surface, extra string
	switch kind {
	case MarketingEmail:
		surface = "A newsletter email to members"
		extra = "Subject line should be catchy."
	case MarketingSocial:
		surface = "An Instagram/Twitter post"
		extra = "Include relevant hashtags for UW students (e.g. #huskies, #udub)."
	case MarketingFlyer:
		surface = "A printed flyer headline and body"
		extra = "Keep it punchy and short. Focus on the hook."
	}

	return fmt.Sprintf(`Act as a hype-man and marketing chair for a registered student organization (RSO) at the University of Washington.

Create content for: %s

Event Details:
- Event: %s hosted by %s
- When: %s @ %s
- Where: %s
- What: %s
- Perks/Tags: %s

Tone: Exciting, inclusive, and urgent. Use emojis where appropriate.

IMPORTANT: Return ONLY plain text. Do NOT use Markdown (no bolding **, no headers #, etc). Just standard text paragraphs.

%s`,
		surface,
		draft.Title, draft.Organizer,
		draft.Date, utils.FormatTime12(draft.StartTime),
		draft.Location,
		draft.Description,
		joinTags(draft.Tags),
		extra)
}

func buildFlyerPrompt(draft domain.EventDraft) string {
	return fmt.Sprintf(`Create a vibrant, high-quality event flyer graphic for a University of Washington student event.
Event Title: %s
Theme: %s
Vibe: %s
Style: Modern, colorful, collegiate, flat vector illustration style.
Do not include text on the image, just the art.
Return the image inline as a base64 data url.`,
		draft.Title, draft.Description, joinTags(draft.Tags))
}

func joinTags(tags []domain.Tag) string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = t.String()
	}
	return strings.Join(out, ", ")
}
