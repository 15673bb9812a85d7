package generate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/ekocak/quizforge/internal/contract"
	"github.com/ekocak/quizforge/internal/llm"
	"github.com/ekocak/quizforge/internal/promptbuild"
)

func mcqBatchJSON(count int) string {
	var b strings.Builder
	b.WriteString(`{"questions": [`)
	for i := 0; i < count; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, `{
			"id": "q%d",
			"type": "mcq",
			"question_text": "What is %d + %d?",
			"options": ["%d", "%d", "%d", "%d"],
			"answer_index": 0,
			"explanation": "Basic addition.",
			"confidence_score": 0.9
		}`, i+1, i, i, 2*i, 2*i+1, 2*i+2, 2*i+3)
	}
	b.WriteString("]}")
	return b.String()
}

func pdfRequest(count int) Request {
	return Request{
		Prompt: promptbuild.Input{
			Task:         promptbuild.TaskPDFQuestions,
			Content:      "Photosynthesis converts light energy into chemical energy.",
			Count:        count,
			QuestionType: "mcq",
		},
		Contract: contract.MCQBatch(count),
		Purpose:  "pdf-questions",
	}
}

func userMessage(t *testing.T, req llm.Request) string {
	t.Helper()
	if len(req.Messages) == 0 {
		t.Fatal("request has no messages")
	}
	return req.Messages[len(req.Messages)-1].Content
}

func TestRun_FirstAttemptSucceeds(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: mcqBatchJSON(2)})
	g := New(mock, DefaultMaxAttempts)

	res, err := g.Run(context.Background(), pdfRequest(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", res.Attempts)
	}
	if mock.CallCount() != 1 {
		t.Errorf("call count = %d, want 1", mock.CallCount())
	}
	if !json.Valid(res.Payload) {
		t.Error("payload is not valid JSON")
	}
}

func TestRun_ProseWrappedOutputAccepted(t *testing.T) {
	wrapped := "Here are your questions:\n```json\n" + mcqBatchJSON(1) + "\n```"
	mock := llm.NewMockProvider(llm.MockResponse{Content: wrapped})
	g := New(mock, DefaultMaxAttempts)

	res, err := g.Run(context.Background(), pdfRequest(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", res.Attempts)
	}
}

func TestRun_RepromptCarriesViolations(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: `{"questions": []}`},
		llm.MockResponse{Content: mcqBatchJSON(2)},
	)
	g := New(mock, DefaultMaxAttempts)

	res, err := g.Run(context.Background(), pdfRequest(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Attempts != 2 {
		t.Errorf("attempts = %d, want 2", res.Attempts)
	}

	second := userMessage(t, mock.Calls[1])
	if !strings.Contains(second, "expected exactly 2 questions, got 0") {
		t.Error("re-prompt missing the violation text")
	}
	if !strings.Contains(second, `{"questions": []}`) {
		t.Error("re-prompt missing the invalid output")
	}
}

func TestRun_RepromptUsesLatestViolationsOnly(t *testing.T) {
	// First reply has a count problem, second a duplicate option. The
	// third prompt must describe only the second problem.
	dupOptions := `{"questions": [
		{"id": "q1", "type": "mcq", "question_text": "Pick one.",
		 "options": ["same", "same", "b", "c"], "answer_index": 0,
		 "explanation": "x", "confidence_score": 0.5}
	]}`
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: `{"questions": []}`},
		llm.MockResponse{Content: dupOptions},
		llm.MockResponse{Content: mcqBatchJSON(1)},
	)
	g := New(mock, DefaultMaxAttempts)

	if _, err := g.Run(context.Background(), pdfRequest(1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	third := userMessage(t, mock.Calls[2])
	if !strings.Contains(third, `option "same" appears more than once`) {
		t.Error("re-prompt missing the latest violation")
	}
	if strings.Contains(third, "expected exactly 1 questions") {
		t.Error("re-prompt must not carry violations from earlier attempts")
	}
}

func TestRun_EmptyBodyConsumesAttempt(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: "   \n"},
		llm.MockResponse{Content: mcqBatchJSON(1)},
	)
	g := New(mock, DefaultMaxAttempts)

	res, err := g.Run(context.Background(), pdfRequest(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Attempts != 2 {
		t.Errorf("attempts = %d, want 2", res.Attempts)
	}

	second := userMessage(t, mock.Calls[1])
	if !strings.Contains(second, "the response was empty") {
		t.Error("re-prompt should report the empty response")
	}
	if !strings.Contains(second, "(empty)") {
		t.Error("re-prompt should mark the previous response as empty")
	}
}

func TestRun_MalformedOutputConsumesAttempt(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: "I cannot produce JSON right now, sorry."},
		llm.MockResponse{Content: mcqBatchJSON(1)},
	)
	g := New(mock, DefaultMaxAttempts)

	res, err := g.Run(context.Background(), pdfRequest(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Attempts != 2 {
		t.Errorf("attempts = %d, want 2", res.Attempts)
	}

	second := userMessage(t, mock.Calls[1])
	if !strings.Contains(second, "no valid JSON") {
		t.Error("re-prompt should report the parse failure")
	}
}

func TestRun_ExhaustsAttemptBoundExactly(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: `{"questions": []}`},
		llm.MockResponse{Content: `{"questions": []}`},
		llm.MockResponse{Content: `{"questions": []}`},
		llm.MockResponse{Content: mcqBatchJSON(2)}, // must never be reached
	)
	g := New(mock, 3)

	_, err := g.Run(context.Background(), pdfRequest(2))

	var failure *Failure
	if !errors.As(err, &failure) {
		t.Fatalf("expected *Failure, got %v", err)
	}
	if failure.Kind != KindSchemaViolation {
		t.Errorf("kind = %s, want %s", failure.Kind, KindSchemaViolation)
	}
	if failure.Attempts != 3 {
		t.Errorf("attempts = %d, want 3", failure.Attempts)
	}
	if len(failure.Violations) == 0 {
		t.Error("failure should carry the final violation list")
	}
	if mock.CallCount() != 3 {
		t.Errorf("call count = %d, want exactly 3", mock.CallCount())
	}
}

func TestRun_TransportErrorsExhaust(t *testing.T) {
	unavailable := &llm.ErrProviderUnavailable{Err: errors.New("connection refused")}
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: unavailable},
		llm.MockResponse{Err: unavailable},
		llm.MockResponse{Err: unavailable},
	)
	g := New(mock, 3)

	_, err := g.Run(context.Background(), pdfRequest(1))

	var failure *Failure
	if !errors.As(err, &failure) {
		t.Fatalf("expected *Failure, got %v", err)
	}
	if failure.Kind != KindUpstreamUnavailable {
		t.Errorf("kind = %s, want %s", failure.Kind, KindUpstreamUnavailable)
	}
	var cause *llm.ErrProviderUnavailable
	if !errors.As(failure, &cause) {
		t.Error("failure should unwrap to the provider error")
	}
}

func TestRun_TimeoutIsRetried(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrTimeout{After: time.Second, Err: context.DeadlineExceeded}},
		llm.MockResponse{Content: mcqBatchJSON(1)},
	)
	g := New(mock, DefaultMaxAttempts)

	res, err := g.Run(context.Background(), pdfRequest(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Attempts != 2 {
		t.Errorf("attempts = %d, want 2", res.Attempts)
	}
}

func TestRun_TransportRetryKeepsPendingCorrection(t *testing.T) {
	// A timeout between two model replies must not drop the violation
	// feedback from the first reply.
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: `{"questions": []}`},
		llm.MockResponse{Err: &llm.ErrTimeout{After: time.Second, Err: context.DeadlineExceeded}},
		llm.MockResponse{Content: mcqBatchJSON(1)},
	)
	g := New(mock, 3)

	if _, err := g.Run(context.Background(), pdfRequest(1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	third := userMessage(t, mock.Calls[2])
	if !strings.Contains(third, "expected exactly 1 questions, got 0") {
		t.Error("correction from before the transport failure was lost")
	}
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mock := llm.NewMockProvider(llm.MockResponse{Content: mcqBatchJSON(1)})
	g := New(mock, DefaultMaxAttempts)

	_, err := g.Run(ctx, pdfRequest(1))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if mock.CallCount() != 0 {
		t.Errorf("no model calls expected after cancellation, got %d", mock.CallCount())
	}
}

func TestRun_UsageAccumulates(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: `{"questions": []}`, Usage: llm.Usage{InputTokens: 100, OutputTokens: 10, TotalTokens: 110}},
		llm.MockResponse{Content: mcqBatchJSON(1), Usage: llm.Usage{InputTokens: 150, OutputTokens: 80, TotalTokens: 230}},
	)
	g := New(mock, DefaultMaxAttempts)

	res, err := g.Run(context.Background(), pdfRequest(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Usage.TotalTokens != 340 {
		t.Errorf("total tokens = %d, want 340", res.Usage.TotalTokens)
	}
}
