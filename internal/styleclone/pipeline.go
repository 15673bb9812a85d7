// Package styleclone generates new exam questions in the style of a
// question photographed or screenshotted by the user.
//
// The pipeline runs two model calls, not one. The vision stage only
// extracts what is on the image; the text stage generates new questions
// from the extracted material. Combining the two into a single
// vision call makes the model invent content that is not in the image,
// so the split must stay even though one call would be cheaper.
package styleclone

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ekocak/quizforge/internal/blob"
	"github.com/ekocak/quizforge/internal/contract"
	"github.com/ekocak/quizforge/internal/generate"
	"github.com/ekocak/quizforge/internal/ingest"
	"github.com/ekocak/quizforge/internal/llm"
	"github.com/ekocak/quizforge/internal/promptbuild"
)

// Token budgets per stage. Extraction returns one small object; the
// generation stage must fit a full question batch.
const (
	extractionMaxTokens = 1024
	generationMaxTokens = 4096
)

// Pipeline composes the vision extraction stage and the text
// generation stage. Each stage runs its own bounded retry loop.
type Pipeline struct {
	vision *generate.Generator
	text   *generate.Generator
	blobs  blob.Store
}

// NewPipeline creates a Pipeline. vision and text may share a provider
// or use different models.
func NewPipeline(vision, text *generate.Generator, blobs blob.Store) *Pipeline {
	return &Pipeline{vision: vision, text: text, blobs: blobs}
}

// Request is one style clone invocation.
type Request struct {
	Image *ingest.Image

	// Count is how many new questions to generate.
	Count int

	// TargetLanguage forces the output language. When empty, the
	// language detected in the image is used.
	TargetLanguage string
}

// Extracted is the vision stage's output: what is on the image.
type Extracted struct {
	QuestionText string   `json:"question_text"`
	Options      []string `json:"options"`
	QuestionType string   `json:"question_type"`
	Topic        string   `json:"topic"`
	Language     string   `json:"language"`
	HasFigure    bool     `json:"has_figure"`
}

// Result is a successful clone run.
type Result struct {
	// Questions is the validated question batch from the text stage.
	Questions json.RawMessage

	// ImageRef is the stored source image's stable reference.
	ImageRef string

	// Extracted is the vision stage's artifact, kept for provenance.
	Extracted Extracted

	// Language is the language the questions were generated in: the
	// requested target, or the one detected in the image.
	Language string

	// Attempts counts model calls across both stages.
	Attempts int

	Usage llm.Usage
}

// Run executes the pipeline: store the image, extract, generate.
// The image is persisted before any model call so a downstream failure
// never loses the upload. A terminal vision failure propagates without
// the text stage ever being invoked.
func (p *Pipeline) Run(ctx context.Context, req Request) (*Result, error) {
	ref, err := p.blobs.Put(ctx, req.Image.Data, req.Image.MimeType)
	if err != nil {
		return nil, &generate.Failure{Kind: generate.KindStorageFailure, Err: err}
	}

	extraction, err := p.vision.Run(ctx, generate.Request{
		Prompt: promptbuild.Input{
			Task: promptbuild.TaskExtraction,
		},
		Contract: contract.Extraction(),
		Media: []llm.Media{{
			MimeType: req.Image.MimeType,
			Data:     req.Image.Data,
		}},
		Purpose:   "clone-extraction",
		MaxTokens: extractionMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	var extracted Extracted
	if err := json.Unmarshal(extraction.Payload, &extracted); err != nil {
		// The payload already passed the contract; this cannot happen
		// short of a contract/struct mismatch.
		return nil, fmt.Errorf("decoding extraction artifact: %w", err)
	}

	language := req.TargetLanguage
	if language == "" {
		language = extracted.Language
	}

	count := req.Count
	if count < 1 {
		count = 1
	}

	questions, err := p.text.Run(ctx, generate.Request{
		Prompt: promptbuild.Input{
			Task:           promptbuild.TaskSimilarQuestions,
			Content:        sourceMaterial(extracted),
			TargetLanguage: language,
			Count:          count,
		},
		Contract:  contract.MCQBatch(count),
		Purpose:   "clone-generation",
		MaxTokens: generationMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		Questions: questions.Payload,
		ImageRef:  ref,
		Extracted: extracted,
		Language:  language,
		Attempts:  extraction.Attempts + questions.Attempts,
		Usage: llm.Usage{
			InputTokens:  extraction.Usage.InputTokens + questions.Usage.InputTokens,
			OutputTokens: extraction.Usage.OutputTokens + questions.Usage.OutputTokens,
			TotalTokens:  extraction.Usage.TotalTokens + questions.Usage.TotalTokens,
		},
	}, nil
}

// sourceMaterial renders the extraction artifact as the text stage's
// source text.
func sourceMaterial(e Extracted) string {
	var b strings.Builder

	b.WriteString(e.QuestionText)
	if len(e.Options) > 0 {
		b.WriteString("\n\nOptions:\n")
		for i, opt := range e.Options {
			fmt.Fprintf(&b, "%c) %s\n", 'A'+i, opt)
		}
	}
	if e.Topic != "" {
		fmt.Fprintf(&b, "\nTopic: %s", e.Topic)
	}
	if e.HasFigure {
		b.WriteString("\nNote: the original question references a figure that is not available; the new questions must be answerable without one.")
	}

	return b.String()
}
