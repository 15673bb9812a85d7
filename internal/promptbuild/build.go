// Package promptbuild constructs model input from task context.
// Build is a pure function: the same input always yields the same
// prompt, which is what makes the enforcement rules and the re-prompt
// contract testable by string inspection.
package promptbuild

import (
	"fmt"
	"strings"

	"github.com/ekocak/quizforge/internal/contract"
)

// Task selects which generation flow the prompt serves.
type Task string

const (
	// TaskPDFQuestions generates questions from extracted PDF text.
	TaskPDFQuestions Task = "pdf-questions"

	// TaskSimilarQuestions generates style-clone questions from an
	// existing question's text (stage B of the clone pipeline).
	TaskSimilarQuestions Task = "similar-questions"

	// TaskExtraction extracts a question from an image (stage A).
	TaskExtraction Task = "extraction"

	// TaskRefinement edits an existing question per user instruction.
	TaskRefinement Task = "refinement"
)

// Exchange is one prior turn of a refinement conversation.
type Exchange struct {
	User      string
	Assistant string
}

// Input carries everything Build needs. Content is the normalized
// source material: PDF text, an extracted question, or the current
// question JSON for refinement.
type Input struct {
	Task           Task
	Content        string
	TargetLanguage string
	Count          int
	QuestionType   string // "mcq" or "open_ended", PDF task only
	Contract       *contract.Contract

	// Instruction and History are refinement-only.
	Instruction string
	History     []Exchange

	// InvalidOutput and PriorViolations turn the prompt into a
	// correction request: the previous raw output is restated together
	// with the violations found, and the model is asked to fix them.
	InvalidOutput   string
	PriorViolations []contract.Violation
}

// Prompt is the built model input.
type Prompt struct {
	System string
	User   string
}

// LanguageRule returns the verbatim enforcement instruction for the
// given target language. Exposed so tests can assert its presence.
func LanguageRule(language string) string {
	return fmt.Sprintf(languageRuleFormat, language)
}

// Build constructs the prompt for the given input.
func Build(in Input) Prompt {
	return Prompt{
		System: buildSystem(in),
		User:   buildUser(in),
	}
}

func buildSystem(in Input) string {
	var b strings.Builder

	b.WriteString(systemFor(in.Task))
	b.WriteString("\n\n")
	b.WriteString(outputFormatRule)
	b.WriteString("\n\nSchema:\n")
	b.WriteString(in.Contract.SchemaJSON())

	return b.String()
}

func systemFor(task Task) string {
	switch task {
	case TaskPDFQuestions:
		return pdfSystemPrompt
	case TaskSimilarQuestions:
		return similarSystemPrompt
	case TaskExtraction:
		return extractionSystemPrompt
	case TaskRefinement:
		return refinementSystemPrompt
	default:
		return pdfSystemPrompt
	}
}

func buildUser(in Input) string {
	var b strings.Builder

	switch in.Task {
	case TaskPDFQuestions:
		label := "multiple-choice"
		if in.QuestionType == "open_ended" {
			label = "open-ended"
		}
		fmt.Fprintf(&b, "Generate %d %s questions from this text:\n\n%s", in.Count, label, in.Content)

	case TaskSimilarQuestions:
		fmt.Fprintf(&b, "Original question:\n%s\n\n", in.Content)
		fmt.Fprintf(&b, "Generate %d similar multiple-choice questions. Each question must have exactly %d options.", in.Count, contract.OptionCount)

	case TaskExtraction:
		b.WriteString("Extract the exam question from the attached image.")

	case TaskRefinement:
		fmt.Fprintf(&b, "Current question:\n%s\n\n", in.Content)
		if len(in.History) > 0 {
			b.WriteString("Previous refinements:\n")
			for _, ex := range in.History {
				fmt.Fprintf(&b, "User: %s\nAssistant: %s\n", ex.User, ex.Assistant)
			}
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Refine the question according to this instruction: %s", in.Instruction)
	}

	if in.TargetLanguage != "" && in.Task != TaskExtraction {
		b.WriteString("\n\n")
		b.WriteString(LanguageRule(in.TargetLanguage))
	}

	if len(in.PriorViolations) > 0 {
		b.WriteString("\n\n")
		writeCorrection(&b, in)
	}

	return b.String()
}

// writeCorrection appends the re-prompt section: the invalid output is
// restated verbatim, followed by the violation list and a request for a
// corrected object.
func writeCorrection(b *strings.Builder, in Input) {
	b.WriteString(correctionHeader)
	b.WriteString("\n\nYour previous response:\n")
	if strings.TrimSpace(in.InvalidOutput) == "" {
		b.WriteString("(empty)")
	} else {
		b.WriteString(in.InvalidOutput)
	}
	b.WriteString("\n\nProblems found:\n")
	b.WriteString(contract.Format(in.PriorViolations))
	b.WriteString("\n\nReturn a corrected JSON object that fixes every problem above while still following the schema and all previous instructions.")
}
