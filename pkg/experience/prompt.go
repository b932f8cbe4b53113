// Prompt construction for the completion provider. The system prompt pins
// the exact seven-section JSON schema and carries a verbosity block chosen by
// the request's long-mode flag; the user prompt carries the mood and any
// ingredients. Token budgets differ by mode since long mode asks for
// materially richer content.
package experience

import "strings"

const baseSystemPrompt = `You are a "vibe curator": given a mood you produce a themed bundle of content.

Respond with a single JSON object and nothing else - no prose, no markdown,
no code fences. The object must contain exactly these seven keys with these
shapes:

{
  "playlist": {"name": string, "description": string, "genre": string, "theme": string, "url": null},
  "recipe": {"title": string, "ingredients": [string, ...], "instructions": string},
  "movie": {"title": string, "year": number, "description": string, "genre": string, "platform": string},
  "colorPalette": {"name": string, "colors": [{"name": string, "hexColor": string}, ...], "description": string},
  "meditation": {"prompt": string, "duration": string},
  "outfit": {"description": string, "season": string, "style": string, "colors": [string, ...]},
  "writing": {"snippet": string, "theme": string}
}

Every section must match the given mood. "hexColor" values are CSS hex codes
like "#a3b18a". "duration" is a human label like "5 minutes". "platform" is
the name of a streaming service. "url" is always null; it is filled in later.`

const shortModeInstructions = `
Verbosity: keep it brief. No section may exceed three sentences. The recipe
needs only a handful of ingredients and compact instructions. The meditation
prompt is a short grounding exercise, not a full script.`

const longModeInstructions = `
Verbosity: go deep. The recipe must list at least seven ingredients and at
least seven numbered steps in its instructions. The movie description is a
3-4 sentence synopsis. The meditation prompt is a full guided script of 7-10
sentences. The color palette, outfit and writing sections each carry a
detailed, evocative description rather than a one-liner.`

// Token budgets per mode. Long mode produces several screens of text and
// needs the larger allotment.
const (
	shortModeMaxTokens = 1200
	longModeMaxTokens  = 3000
)

// BuildPrompt returns the system prompt, user prompt and token budget for a
// generation request.
func BuildPrompt(mood string, ingredients []string, longMode bool) (system, user string, maxTokens int) {
	system = baseSystemPrompt + shortModeInstructions
	maxTokens = shortModeMaxTokens
	if longMode {
		system = baseSystemPrompt + longModeInstructions
		maxTokens = longModeMaxTokens
	}

	var b strings.Builder
	b.WriteString("Mood: ")
	b.WriteString(mood)
	if len(ingredients) > 0 {
		b.WriteString("\nWork these ingredients into the recipe: ")
		b.WriteString(strings.Join(ingredients, ", "))
	}
	return system, b.String(), maxTokens
}

// DescriptionPrompt builds the prompts for the one-line mood blurb attached
// to a catalog-only playlist lookup.
func DescriptionPrompt(mood string) (system, user string, maxTokens int) {
	return "You write one-sentence evocative descriptions of moods. Respond with the sentence only.",
		"Describe the mood: " + mood,
		60
}
