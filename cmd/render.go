package cmd

import (
	"fmt"

	"github.com/ekocak/quizforge/internal/store"
)

// printSession renders a session and its questions to stdout.
func printSession(s *store.Session) {
	fmt.Printf("Session %s (%s", s.ID, s.Kind)
	if s.TargetLanguage != "" {
		fmt.Printf(", %s", s.TargetLanguage)
	}
	fmt.Printf(")\n")
	if s.SourceSummary != "" {
		fmt.Printf("Source: %s\n", s.SourceSummary)
	}
	fmt.Println()

	for i, q := range s.Questions {
		printQuestion(i+1, q)
		if i < len(s.Questions)-1 {
			fmt.Println()
		}
	}
}

// printQuestion renders one question with its answer and explanation.
func printQuestion(n int, q store.Question) {
	header := fmt.Sprintf("Q%d", n)
	if q.Difficulty != "" {
		header += " [" + q.Difficulty + "]"
	}
	if q.Topic != "" {
		header += " " + q.Topic
	}
	fmt.Printf("%s  (id: %s)\n", header, q.ID)
	fmt.Println(q.Text)

	switch q.Type {
	case "mcq":
		for i, opt := range q.Options {
			marker := " "
			if i == q.AnswerIndex {
				marker = "*"
			}
			fmt.Printf("  %s %c) %s\n", marker, 'A'+i, opt)
		}
	case "open_ended":
		if q.SampleAnswer != "" {
			fmt.Printf("Sample answer: %s\n", q.SampleAnswer)
		}
	}

	if q.Explanation != "" {
		fmt.Printf("Explanation: %s\n", q.Explanation)
	}
	if q.Confidence > 0 {
		fmt.Printf("Confidence: %.2f\n", q.Confidence)
	}
}
