package contract

import "fmt"

// OptionCount is the fixed number of options every MCQ must carry.
// The answer index therefore lives in [0, OptionCount-1].
const OptionCount = 4

// MCQBatch returns the contract for a batch of multiple-choice
// questions. When count > 0 the batch must contain exactly that many
// questions.
func MCQBatch(count int) *Contract {
	return &Contract{
		Name:        "mcq-batch",
		Description: "A batch of multiple-choice exam questions with exactly 4 options each",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"questions": map[string]any{
					"type":  "array",
					"items": mcqItemDefinition(),
				},
			},
			"required":             []any{"questions"},
			"additionalProperties": false,
		},
		checks: []Check{
			questionCountCheck(count),
			answerIndexCheck(),
			distinctOptionsCheck(),
		},
	}
}

func mcqItemDefinition() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id": map[string]any{
				"type":        "string",
				"description": "Unique question identifier, e.g. \"q1\"",
			},
			"type": map[string]any{
				"type": "string",
				"enum": []any{"mcq"},
			},
			"question_text": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "The question stem shown to the student",
			},
			"options": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    OptionCount,
				"maxItems":    OptionCount,
				"description": "Exactly 4 answer options in display order",
			},
			"answer_index": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     OptionCount - 1,
				"description": "Zero-based index of the correct option",
			},
			"explanation": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "Why the correct answer is right and the distractors are wrong",
			},
			"difficulty": map[string]any{
				"type": "string",
				"enum": []any{"easy", "medium", "hard"},
			},
			"topic": map[string]any{
				"type":        "string",
				"description": "Subject area of the question",
			},
			"confidence_score": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     1,
				"description": "How well the question aligns with the source material",
			},
		},
		"required": []any{
			"id", "type", "question_text", "options",
			"answer_index", "explanation", "confidence_score",
		},
		"additionalProperties": false,
	}
}

// OpenEndedBatch returns the contract for a batch of open-ended
// questions with sample answers.
func OpenEndedBatch(count int) *Contract {
	return &Contract{
		Name:        "open-ended-batch",
		Description: "A batch of open-ended exam questions with sample answers",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"questions": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"id": map[string]any{
								"type": "string",
							},
							"type": map[string]any{
								"type": "string",
								"enum": []any{"open_ended"},
							},
							"question_text": map[string]any{
								"type":      "string",
								"minLength": 1,
							},
							"sample_answer": map[string]any{
								"type":        "string",
								"minLength":   1,
								"description": "A comprehensive model answer",
							},
							"explanation": map[string]any{
								"type":        "string",
								"minLength":   1,
								"description": "Grading criteria and key points expected",
							},
							"difficulty": map[string]any{
								"type": "string",
								"enum": []any{"easy", "medium", "hard"},
							},
							"topic": map[string]any{
								"type": "string",
							},
							"confidence_score": map[string]any{
								"type":    "number",
								"minimum": 0,
								"maximum": 1,
							},
						},
						"required": []any{
							"id", "type", "question_text", "sample_answer",
							"explanation", "confidence_score",
						},
						"additionalProperties": false,
					},
				},
			},
			"required":             []any{"questions"},
			"additionalProperties": false,
		},
		checks: []Check{
			questionCountCheck(count),
		},
	}
}

// questionCountCheck verifies the batch holds exactly the requested
// number of questions. A count of 0 disables the rule.
func questionCountCheck(count int) Check {
	return Check{
		Name: "question-count",
		Run: func(doc any) []Violation {
			if count <= 0 {
				return nil
			}
			questions := questionsOf(doc)
			if len(questions) == count {
				return nil
			}
			return []Violation{{
				Path:    "/questions",
				Message: fmt.Sprintf("expected exactly %d questions, got %d", count, len(questions)),
			}}
		},
	}
}

// answerIndexCheck verifies the answer index references an existing
// option. The schema already bounds the index, but the cross-field
// relation to the options array is checked here.
func answerIndexCheck() Check {
	return Check{
		Name: "answer-index",
		Run: func(doc any) []Violation {
			var out []Violation
			for i, q := range questionsOf(doc) {
				options, _ := q["options"].([]any)
				idx, ok := q["answer_index"].(float64)
				if !ok {
					continue
				}
				if int(idx) >= len(options) {
					out = append(out, Violation{
						Path:    fmt.Sprintf("/questions/%d/answer_index", i),
						Message: fmt.Sprintf("answer_index %d does not reference any of the %d options", int(idx), len(options)),
					})
				}
			}
			return out
		},
	}
}

// distinctOptionsCheck rejects questions whose options repeat. A
// duplicated distractor makes the correct answer ambiguous.
func distinctOptionsCheck() Check {
	return Check{
		Name: "distinct-options",
		Run: func(doc any) []Violation {
			var out []Violation
			for i, q := range questionsOf(doc) {
				options, _ := q["options"].([]any)
				seen := make(map[string]bool, len(options))
				for _, o := range options {
					text, _ := o.(string)
					if seen[text] {
						out = append(out, Violation{
							Path:    fmt.Sprintf("/questions/%d/options", i),
							Message: fmt.Sprintf("option %q appears more than once", text),
						})
						break
					}
					seen[text] = true
				}
			}
			return out
		},
	}
}

// questionsOf extracts the questions array from a structurally valid
// batch document.
func questionsOf(doc any) []map[string]any {
	obj, _ := doc.(map[string]any)
	arr, _ := obj["questions"].([]any)
	out := make([]map[string]any, 0, len(arr))
	for _, item := range arr {
		if q, ok := item.(map[string]any); ok {
			out = append(out, q)
		}
	}
	return out
}
