package contract

import "fmt"

// Refinement returns the contract for interactive question editing.
// The model must return the complete modified question plus a
// description of what changed.
func Refinement() *Contract {
	return &Contract{
		Name:        "question-refinement",
		Description: "A refined exam question together with a description of the changes made",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"refined_question": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type": "string",
						},
						"type": map[string]any{
							"type": "string",
							"enum": []any{"mcq", "open_ended"},
						},
						"question_text": map[string]any{
							"type":      "string",
							"minLength": 1,
						},
						"options": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"answer_index": map[string]any{
							"type":    "integer",
							"minimum": 0,
						},
						"sample_answer": map[string]any{
							"type": "string",
						},
						"explanation": map[string]any{
							"type":      "string",
							"minLength": 1,
						},
						"difficulty": map[string]any{
							"type": "string",
							"enum": []any{"easy", "medium", "hard"},
						},
						"topic": map[string]any{
							"type": "string",
						},
					},
					"required":             []any{"id", "type", "question_text", "explanation"},
					"additionalProperties": false,
				},
				"changes_made": map[string]any{
					"type":        "string",
					"minLength":   1,
					"description": "Plain-language summary of the edits applied",
				},
			},
			"required":             []any{"refined_question", "changes_made"},
			"additionalProperties": false,
		},
		checks: []Check{
			refinedAnswerCheck(),
		},
	}
}

// refinedAnswerCheck verifies a refined MCQ still points its answer
// index at an existing option.
func refinedAnswerCheck() Check {
	return Check{
		Name: "refined-answer",
		Run: func(doc any) []Violation {
			obj, _ := doc.(map[string]any)
			q, _ := obj["refined_question"].(map[string]any)
			if q == nil {
				return nil
			}
			if t, _ := q["type"].(string); t != "mcq" {
				return nil
			}
			options, _ := q["options"].([]any)
			if len(options) == 0 {
				return []Violation{{
					Path:    "/refined_question/options",
					Message: "an mcq question must keep its options",
				}}
			}
			idx, ok := q["answer_index"].(float64)
			if !ok {
				return []Violation{{
					Path:    "/refined_question/answer_index",
					Message: "an mcq question must keep its answer_index",
				}}
			}
			if int(idx) >= len(options) {
				return []Violation{{
					Path:    "/refined_question/answer_index",
					Message: fmt.Sprintf("answer_index %d does not reference any of the %d options", int(idx), len(options)),
				}}
			}
			return nil
		},
	}
}
