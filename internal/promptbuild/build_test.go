package promptbuild

import (
	"strings"
	"testing"

	"github.com/ekocak/quizforge/internal/contract"
)

func TestBuild_PDFQuestions(t *testing.T) {
	p := Build(Input{
		Task:         TaskPDFQuestions,
		Content:      "The mitochondria is the powerhouse of the cell.",
		Count:        5,
		QuestionType: "mcq",
		Contract:     contract.MCQBatch(5),
	})

	if !strings.Contains(p.User, "Generate 5 multiple-choice questions") {
		t.Errorf("user message missing count/type: %q", p.User)
	}
	if !strings.Contains(p.User, "mitochondria") {
		t.Error("user message missing source content")
	}
	if !strings.Contains(p.System, outputFormatRule) {
		t.Error("system prompt missing the no-prose output rule")
	}
	if !strings.Contains(p.System, `"answer_index"`) {
		t.Error("system prompt missing the machine-readable schema")
	}
}

func TestBuild_Deterministic(t *testing.T) {
	in := Input{
		Task:     TaskSimilarQuestions,
		Content:  "What is 7*8?",
		Count:    3,
		Contract: contract.MCQBatch(3),
	}
	if Build(in) != Build(in) {
		t.Error("Build must be deterministic for identical input")
	}
}

func TestBuild_LanguageRuleVerbatim(t *testing.T) {
	p := Build(Input{
		Task:           TaskSimilarQuestions,
		Content:        "Which planet is closest to the sun?",
		TargetLanguage: "Turkish",
		Count:          3,
		Contract:       contract.MCQBatch(3),
	})

	if !strings.Contains(p.User, LanguageRule("Turkish")) {
		t.Error("prompt must contain the language enforcement rule verbatim")
	}
	if !strings.Contains(LanguageRule("Turkish"), "Turkish") {
		t.Error("language rule must name the target language")
	}
}

func TestBuild_NoLanguageRuleWhenUnset(t *testing.T) {
	p := Build(Input{
		Task:     TaskSimilarQuestions,
		Content:  "2+2?",
		Count:    1,
		Contract: contract.MCQBatch(1),
	})
	if strings.Contains(p.User, "CRITICAL LANGUAGE RULE") {
		t.Error("no language rule expected when target language is unset")
	}
}

func TestBuild_ExtractionHasNoLanguageRule(t *testing.T) {
	// Extraction reports the source language; forcing a target language
	// there would corrupt the extraction.
	p := Build(Input{
		Task:           TaskExtraction,
		TargetLanguage: "Turkish",
		Contract:       contract.Extraction(),
	})
	if strings.Contains(p.User, "CRITICAL LANGUAGE RULE") {
		t.Error("extraction prompt must not carry the language rule")
	}
	if !strings.Contains(p.System, "pure extraction") {
		t.Error("extraction system prompt must forbid generation")
	}
}

func TestBuild_CorrectionRestatesOutputAndViolations(t *testing.T) {
	p := Build(Input{
		Task:          TaskPDFQuestions,
		Content:       "source text",
		Count:         2,
		QuestionType:  "mcq",
		Contract:      contract.MCQBatch(2),
		InvalidOutput: `{"questions": []}`,
		PriorViolations: []contract.Violation{
			{Path: "/questions", Message: "expected exactly 2 questions, got 0"},
		},
	})

	if !strings.Contains(p.User, `{"questions": []}`) {
		t.Error("correction must restate the invalid output")
	}
	if !strings.Contains(p.User, "expected exactly 2 questions, got 0") {
		t.Error("correction must include the violation text")
	}
	if !strings.Contains(p.User, correctionHeader) {
		t.Error("correction must carry the correction header")
	}
}

func TestBuild_CorrectionWithEmptyOutput(t *testing.T) {
	p := Build(Input{
		Task:          TaskPDFQuestions,
		Content:       "source text",
		Count:         1,
		Contract:      contract.MCQBatch(1),
		InvalidOutput: "   \n",
		PriorViolations: []contract.Violation{
			{Message: "model returned an empty response"},
		},
	})
	if !strings.Contains(p.User, "(empty)") {
		t.Error("correction should mark an empty previous response")
	}
}

func TestBuild_RefinementHistory(t *testing.T) {
	p := Build(Input{
		Task:        TaskRefinement,
		Content:     `{"id":"q1","type":"mcq"}`,
		Instruction: "make option 2 harder",
		History: []Exchange{
			{User: "change the answer to option B", Assistant: "Done, answer_index is now 1."},
		},
		Contract: contract.Refinement(),
	})

	if !strings.Contains(p.User, "change the answer to option B") {
		t.Error("refinement prompt missing conversation history")
	}
	if !strings.Contains(p.User, "make option 2 harder") {
		t.Error("refinement prompt missing the instruction")
	}
	if !strings.Contains(p.User, `{"id":"q1","type":"mcq"}`) {
		t.Error("refinement prompt missing the current question")
	}
}
