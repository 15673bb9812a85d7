// Package service is the entry point the CLI and any future transport
// call. It composes ingestion, validated generation, the clone
// pipeline and persistence; everything below it is transport-agnostic.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ekocak/quizforge/internal/blob"
	"github.com/ekocak/quizforge/internal/contract"
	"github.com/ekocak/quizforge/internal/generate"
	"github.com/ekocak/quizforge/internal/ingest"
	"github.com/ekocak/quizforge/internal/llm"
	"github.com/ekocak/quizforge/internal/promptbuild"
	"github.com/ekocak/quizforge/internal/store"
	"github.com/ekocak/quizforge/internal/styleclone"
)

// Task kinds accepted by Generate.
const (
	KindPDF   = "pdf"
	KindClone = "clone"
)

// Default question counts when the caller does not specify one.
const (
	DefaultPDFCount   = 5
	DefaultCloneCount = 3
)

// Token budgets per call. A question batch needs room for several full
// question objects; a refinement returns a single revised question.
const (
	questionBatchMaxTokens = 4096
	refinementMaxTokens    = 2048
)

// ErrQuestionNotFound is returned by Refine for an unknown question ID.
var ErrQuestionNotFound = errors.New("question not found")

// Service runs generation flows and persists their results.
type Service struct {
	generator *generate.Generator
	pipeline  *styleclone.Pipeline
	sessions  store.SessionRepo
	modelID   string
}

// New creates a Service. The same provider serves text and vision
// calls; maxAttempts bounds every validation loop.
func New(provider llm.Provider, sessions store.SessionRepo, blobs blob.Store, maxAttempts int) *Service {
	gen := generate.New(provider, maxAttempts)
	return &Service{
		generator: gen,
		pipeline:  styleclone.NewPipeline(gen, gen, blobs),
		sessions:  sessions,
		modelID:   provider.ModelID(),
	}
}

// Request is one generation invocation. Exactly one of PDF or
// ImageBase64 is consumed, selected by Kind.
type Request struct {
	Kind string

	// PDF input, KindPDF only.
	PDF     []byte
	PDFName string

	// Base64 image payload, KindClone only.
	ImageBase64 string

	Count          int
	QuestionType   string // "mcq" (default) or "open_ended", KindPDF only
	TargetLanguage string
}

// Generate runs the requested flow and returns the persisted session.
func (s *Service) Generate(ctx context.Context, req Request) (*store.Session, error) {
	switch req.Kind {
	case KindPDF:
		return s.generatePDF(ctx, req)
	case KindClone:
		return s.generateClone(ctx, req)
	default:
		return nil, fmt.Errorf("unknown task kind %q", req.Kind)
	}
}

func (s *Service) generatePDF(ctx context.Context, req Request) (*store.Session, error) {
	text, err := ingest.PDFText(req.PDF)
	if err != nil {
		return nil, &generate.Failure{Kind: generate.KindUnreadableInput, Err: err}
	}
	return s.generateFromText(ctx, text, req)
}

// generateFromText is the post-ingestion half of the PDF flow.
func (s *Service) generateFromText(ctx context.Context, text string, req Request) (*store.Session, error) {
	count := req.Count
	if count < 1 {
		count = DefaultPDFCount
	}

	qtype := req.QuestionType
	if qtype == "" {
		qtype = "mcq"
	}
	var c *contract.Contract
	switch qtype {
	case "mcq":
		c = contract.MCQBatch(count)
	case "open_ended":
		c = contract.OpenEndedBatch(count)
	default:
		return nil, fmt.Errorf("unknown question type %q", qtype)
	}

	res, err := s.generator.Run(ctx, generate.Request{
		Prompt: promptbuild.Input{
			Task:           promptbuild.TaskPDFQuestions,
			Content:        text,
			TargetLanguage: req.TargetLanguage,
			Count:          count,
			QuestionType:   qtype,
		},
		Contract:  c,
		Purpose:   "pdf-questions",
		MaxTokens: questionBatchMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	questions, err := parseQuestions(res.Payload)
	if err != nil {
		return nil, err
	}

	sess := &store.Session{
		Kind:           KindPDF,
		SourceSummary:  req.PDFName,
		TargetLanguage: req.TargetLanguage,
		Model:          s.modelID,
		Questions:      questions,
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, &generate.Failure{Kind: generate.KindStorageFailure, Err: err}
	}
	return sess, nil
}

func (s *Service) generateClone(ctx context.Context, req Request) (*store.Session, error) {
	img, err := ingest.DecodeImage(req.ImageBase64)
	if err != nil {
		return nil, &generate.Failure{Kind: generate.KindUnreadableInput, Err: err}
	}

	count := req.Count
	if count < 1 {
		count = DefaultCloneCount
	}

	res, err := s.pipeline.Run(ctx, styleclone.Request{
		Image:          img,
		Count:          count,
		TargetLanguage: req.TargetLanguage,
	})
	if err != nil {
		return nil, err
	}

	questions, err := parseQuestions(res.Questions)
	if err != nil {
		return nil, err
	}

	sess := &store.Session{
		Kind:           KindClone,
		SourceSummary:  summarize(res.Extracted.QuestionText),
		TargetLanguage: res.Language,
		ImageRef:       res.ImageRef,
		Model:          s.modelID,
		Questions:      questions,
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, &generate.Failure{Kind: generate.KindStorageFailure, Err: err}
	}
	return sess, nil
}

// questionDoc mirrors the question shape in the batch contracts.
type questionDoc struct {
	ID              string   `json:"id"`
	Type            string   `json:"type"`
	QuestionText    string   `json:"question_text"`
	Options         []string `json:"options"`
	AnswerIndex     int      `json:"answer_index"`
	Explanation     string   `json:"explanation"`
	SampleAnswer    string   `json:"sample_answer"`
	Difficulty      string   `json:"difficulty"`
	Topic           string   `json:"topic"`
	ConfidenceScore float64  `json:"confidence_score"`
}

func parseQuestions(payload json.RawMessage) ([]store.Question, error) {
	var batch struct {
		Questions []questionDoc `json:"questions"`
	}
	if err := json.Unmarshal(payload, &batch); err != nil {
		// The payload already passed its contract.
		return nil, fmt.Errorf("decoding validated batch: %w", err)
	}

	out := make([]store.Question, 0, len(batch.Questions))
	for _, q := range batch.Questions {
		out = append(out, store.Question{
			Type:         q.Type,
			Text:         q.QuestionText,
			Options:      q.Options,
			AnswerIndex:  q.AnswerIndex,
			Explanation:  q.Explanation,
			SampleAnswer: q.SampleAnswer,
			Difficulty:   q.Difficulty,
			Topic:        q.Topic,
			Confidence:   q.ConfidenceScore,
		})
	}
	return out, nil
}

// summarize caps the stored source text, cutting on a rune boundary so
// multi-byte text stays valid UTF-8.
func summarize(text string) string {
	const max = 200
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
