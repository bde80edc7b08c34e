package llm

import (
	"sort"

	ai "github.com/sashabaranov/go-openai"
)

// Moderation category keys, matching the names reported by the moderation
// endpoint.
const (
	CategoryHate                  = "hate"
	CategoryHateThreatening       = "hate/threatening"
	CategoryHarassment            = "harassment"
	CategoryHarassmentThreatening = "harassment/threatening"
	CategorySelfHarm              = "self-harm"
	CategorySelfHarmIntent        = "self-harm/intent"
	CategorySelfHarmInstructions  = "self-harm/instructions"
	CategorySexual                = "sexual"
	CategorySexualMinors          = "sexual/minors"
	CategoryViolence              = "violence"
	CategoryViolenceGraphic       = "violence/graphic"
)

// ModerationResult is the outcome of a moderation call: an overall verdict
// plus a per-category map with an explicit, known key set.
type ModerationResult struct {
	Flagged    bool
	Categories map[string]bool
}

// FlaggedCategories returns the names of all flagged categories in sorted
// order.
func (r *ModerationResult) FlaggedCategories() []string {
	var flagged []string
	for name, hit := range r.Categories {
		if hit {
			flagged = append(flagged, name)
		}
	}
	sort.Strings(flagged)
	return flagged
}

// resultToModeration maps the provider's category struct onto the explicit
// category key set.
func resultToModeration(r ai.Result) *ModerationResult {
	return &ModerationResult{
		Flagged: r.Flagged,
		Categories: map[string]bool{
			CategoryHate:                  r.Categories.Hate,
			CategoryHateThreatening:       r.Categories.HateThreatening,
			CategoryHarassment:            r.Categories.Harassment,
			CategoryHarassmentThreatening: r.Categories.HarassmentThreatening,
			CategorySelfHarm:              r.Categories.SelfHarm,
			CategorySelfHarmIntent:        r.Categories.SelfHarmIntent,
			CategorySelfHarmInstructions:  r.Categories.SelfHarmInstructions,
			CategorySexual:                r.Categories.Sexual,
			CategorySexualMinors:          r.Categories.SexualMinors,
			CategoryViolence:              r.Categories.Violence,
			CategoryViolenceGraphic:       r.Categories.ViolenceGraphic,
		},
	}
}
