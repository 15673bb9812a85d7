package llm

// ModelCost holds per-million-token pricing for a model.
// Prices are in USD per 1 million tokens, sourced from models.dev.
type ModelCost struct {
	InputPerMTok  float64 // USD per 1M input tokens
	OutputPerMTok float64 // USD per 1M output tokens
}

// Cost calculates the total USD cost for the given token counts.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return float64(inputTokens)*c.InputPerMTok/1_000_000 +
		float64(outputTokens)*c.OutputPerMTok/1_000_000
}

// LookupCost returns the pricing for a model ID, or nil if unknown.
// OpenRouter model IDs carry a vendor prefix ("anthropic/...") and are
// listed separately because OpenRouter sets its own prices.
func LookupCost(modelID string) *ModelCost {
	if c, ok := modelCosts[modelID]; ok {
		return &c
	}
	return nil
}

// modelCosts covers the models QuizForge is expected to run against.
// Last updated: 2026-06-20.
var modelCosts = map[string]ModelCost{
	// Anthropic
	"claude-3-5-sonnet-20241022": {3, 15},
	"claude-haiku-4-5-20251001":  {1, 5},
	"claude-sonnet-4-20250514":   {3, 15},
	"claude-sonnet-4-5":          {3, 15},

	// OpenAI
	"gpt-4o":      {2.5, 10},
	"gpt-4o-mini": {0.15, 0.6},
	"gpt-4.1":     {2, 8},

	// Google (Gemini)
	"gemini-2.0-flash": {0.1, 0.4},
	"gemini-2.5-flash": {0.3, 2.5},
	"gemini-2.5-pro":   {1.25, 10},

	// OpenRouter (vendor-prefixed IDs)
	"anthropic/claude-3.5-sonnet":  {3, 15},
	"anthropic/claude-sonnet-4":    {3, 15},
	"openai/gpt-4o":                {2.5, 10},
	"openai/gpt-4o-mini":           {0.15, 0.6},
	"google/gemini-2.0-flash-001":  {0.1, 0.4},
	"google/gemini-2.5-flash":      {0.3, 2.5},
}
