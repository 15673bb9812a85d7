package contract

import (
	"encoding/json"
	"strings"
	"testing"
)

func validMCQ(id string) map[string]any {
	return map[string]any{
		"id":               id,
		"type":             "mcq",
		"question_text":    "What is 2+2?",
		"options":          []string{"3", "4", "5", "6"},
		"answer_index":     1,
		"explanation":      "2+2 equals 4.",
		"difficulty":       "easy",
		"topic":            "arithmetic",
		"confidence_score": 0.95,
	}
}

func batchJSON(t *testing.T, questions ...map[string]any) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(map[string]any{"questions": questions})
	if err != nil {
		t.Fatalf("marshal batch: %v", err)
	}
	return raw
}

func TestMCQBatch_Valid(t *testing.T) {
	c := MCQBatch(2)
	raw := batchJSON(t, validMCQ("q1"), validMCQ("q2"))

	if violations := c.Validate(raw); len(violations) != 0 {
		t.Fatalf("expected no violations, got: %s", Format(violations))
	}
}

func TestMCQBatch_MissingRequiredField(t *testing.T) {
	q := validMCQ("q1")
	delete(q, "explanation")
	c := MCQBatch(1)

	violations := c.Validate(batchJSON(t, q))
	if len(violations) == 0 {
		t.Fatal("expected violations for missing explanation")
	}
	joined := Format(violations)
	if !strings.Contains(joined, "explanation") {
		t.Errorf("violation should name the missing field, got: %s", joined)
	}
}

func TestMCQBatch_WrongOptionCount(t *testing.T) {
	q := validMCQ("q1")
	q["options"] = []string{"3", "4"}
	c := MCQBatch(1)

	if violations := c.Validate(batchJSON(t, q)); len(violations) == 0 {
		t.Fatal("expected violations for 2 options")
	}
}

func TestMCQBatch_CountMismatch(t *testing.T) {
	c := MCQBatch(3)
	violations := c.Validate(batchJSON(t, validMCQ("q1")))
	if len(violations) == 0 {
		t.Fatal("expected a question-count violation")
	}
	if !strings.Contains(violations[0].Message, "expected exactly 3 questions, got 1") {
		t.Errorf("unexpected message: %s", violations[0].Message)
	}
}

func TestMCQBatch_CountZeroDisablesRule(t *testing.T) {
	c := MCQBatch(0)
	if violations := c.Validate(batchJSON(t, validMCQ("q1"))); len(violations) != 0 {
		t.Fatalf("expected no violations, got: %s", Format(violations))
	}
}

func TestMCQBatch_DuplicateOptions(t *testing.T) {
	q := validMCQ("q1")
	q["options"] = []string{"4", "4", "5", "6"}
	c := MCQBatch(1)

	violations := c.Validate(batchJSON(t, q))
	if len(violations) != 1 {
		t.Fatalf("expected 1 violation, got %d: %s", len(violations), Format(violations))
	}
	if !strings.Contains(violations[0].Message, `"4"`) {
		t.Errorf("violation should quote the duplicated option: %s", violations[0].Message)
	}
}

func TestMCQBatch_NotJSON(t *testing.T) {
	c := MCQBatch(1)
	violations := c.Validate(json.RawMessage("the model apologizes"))
	if len(violations) != 1 {
		t.Fatalf("expected 1 violation, got %d", len(violations))
	}
	if !strings.Contains(violations[0].Message, "not valid JSON") {
		t.Errorf("unexpected message: %s", violations[0].Message)
	}
}

func TestOpenEndedBatch_Valid(t *testing.T) {
	raw := batchJSON(t, map[string]any{
		"id":               "q1",
		"type":             "open_ended",
		"question_text":    "Explain photosynthesis.",
		"sample_answer":    "Plants convert light into chemical energy...",
		"explanation":      "Full marks require mentioning light, CO2 and glucose.",
		"difficulty":       "medium",
		"topic":            "biology",
		"confidence_score": 0.8,
	})

	if violations := OpenEndedBatch(1).Validate(raw); len(violations) != 0 {
		t.Fatalf("expected no violations, got: %s", Format(violations))
	}
}

func TestExtraction_Valid(t *testing.T) {
	raw := json.RawMessage(`{
		"question_text": "Aşağıdakilerden hangisi bir asal sayıdır?",
		"options": ["4", "6", "7", "9"],
		"question_type": "mcq",
		"topic": "mathematics",
		"language": "Turkish",
		"has_figure": false
	}`)

	if violations := Extraction().Validate(raw); len(violations) != 0 {
		t.Fatalf("expected no violations, got: %s", Format(violations))
	}
}

func TestExtraction_EmptyText(t *testing.T) {
	raw := json.RawMessage(`{"question_text": "", "question_type": "mcq", "language": "Turkish"}`)
	if violations := Extraction().Validate(raw); len(violations) == 0 {
		t.Fatal("expected violation for empty question_text")
	}
}

func TestRefinement_AnswerIndexOutOfRange(t *testing.T) {
	raw := json.RawMessage(`{
		"refined_question": {
			"id": "q1",
			"type": "mcq",
			"question_text": "What is 2+3?",
			"options": ["4", "5", "6", "7"],
			"answer_index": 9,
			"explanation": "2+3 equals 5."
		},
		"changes_made": "Changed the numbers."
	}`)

	violations := Refinement().Validate(raw)
	if len(violations) != 1 {
		t.Fatalf("expected 1 violation, got %d: %s", len(violations), Format(violations))
	}
	if violations[0].Path != "/refined_question/answer_index" {
		t.Errorf("unexpected path: %s", violations[0].Path)
	}
}

func TestRefinement_OpenEndedSkipsOptionRules(t *testing.T) {
	raw := json.RawMessage(`{
		"refined_question": {
			"id": "q2",
			"type": "open_ended",
			"question_text": "Discuss the causes of inflation.",
			"explanation": "Expect demand-pull and cost-push factors."
		},
		"changes_made": "Broadened the scope."
	}`)

	if violations := Refinement().Validate(raw); len(violations) != 0 {
		t.Fatalf("expected no violations, got: %s", Format(violations))
	}
}

func TestFormat_NumbersViolations(t *testing.T) {
	got := Format([]Violation{
		{Path: "/questions/0/options", Message: "too few items"},
		{Message: "missing questions"},
	})
	want := "1. at /questions/0/options: too few items\n2. missing questions"
	if got != want {
		t.Errorf("unexpected format:\n%s", got)
	}
}
