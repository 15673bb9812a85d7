package contract

// Extraction returns the contract for the vision stage of the style
// clone pipeline. It is deliberately a minimal "what is on the image"
// shape, not the final question shape: the vision call extracts, it
// does not generate.
func Extraction() *Contract {
	return &Contract{
		Name:        "question-extraction",
		Description: "The text and structure of an exam question as it appears in an image",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question_text": map[string]any{
					"type":        "string",
					"minLength":   1,
					"description": "The full question text exactly as it appears in the image",
				},
				"options": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Answer options if visible, in order. Empty if none.",
				},
				"question_type": map[string]any{
					"type": "string",
					"enum": []any{"mcq", "open_ended"},
				},
				"topic": map[string]any{
					"type":        "string",
					"description": "Subject area inferred from the content",
				},
				"language": map[string]any{
					"type":        "string",
					"description": "Language of the question text, e.g. \"Turkish\"",
				},
				"has_figure": map[string]any{
					"type":        "boolean",
					"description": "Whether the question references a diagram, chart or picture",
				},
			},
			"required":             []any{"question_text", "question_type", "language"},
			"additionalProperties": false,
		},
	}
}
