package styleclone

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ekocak/quizforge/internal/blob"
	"github.com/ekocak/quizforge/internal/generate"
	"github.com/ekocak/quizforge/internal/ingest"
	"github.com/ekocak/quizforge/internal/llm"
)

const extractionJSON = `{
	"question_text": "Bir üçgenin iç açıları toplamı kaçtır?",
	"options": ["90", "180", "270", "360"],
	"question_type": "mcq",
	"topic": "geometry",
	"language": "Turkish",
	"has_figure": false
}`

const batchJSON = `{"questions": [{
	"id": "q1",
	"type": "mcq",
	"question_text": "Bir dörtgenin iç açıları toplamı kaçtır?",
	"options": ["180", "270", "360", "540"],
	"answer_index": 2,
	"explanation": "Dörtgen iki üçgene bölünür.",
	"confidence_score": 0.9
}]}`

func testImage() *ingest.Image {
	return &ingest.Image{Data: []byte("fake png bytes"), MimeType: "image/png"}
}

func newPipeline(vision, text *llm.MockProvider, blobs blob.Store) *Pipeline {
	return NewPipeline(
		generate.New(vision, generate.DefaultMaxAttempts),
		generate.New(text, generate.DefaultMaxAttempts),
		blobs,
	)
}

func TestRun_EndToEnd(t *testing.T) {
	vision := llm.NewMockProvider(llm.MockResponse{Content: extractionJSON})
	text := llm.NewMockProvider(llm.MockResponse{Content: batchJSON})
	blobs := blob.NewMemoryStore()

	res, err := newPipeline(vision, text, blobs).Run(context.Background(), Request{
		Image: testImage(),
		Count: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if blobs.WriteCount() != 1 {
		t.Errorf("blob writes = %d, want 1", blobs.WriteCount())
	}
	if res.ImageRef != blobs.Writes[0].Ref {
		t.Errorf("image ref %q does not match stored blob %q", res.ImageRef, blobs.Writes[0].Ref)
	}
	if res.Extracted.QuestionText == "" {
		t.Error("extraction artifact missing question text")
	}
	if res.Attempts != 2 {
		t.Errorf("attempts = %d, want 2", res.Attempts)
	}

	// The vision call carries the image; the text call must not.
	if len(vision.LastCall().Media) != 1 {
		t.Error("vision call missing image payload")
	}
	if len(text.LastCall().Media) != 0 {
		t.Error("text call must not carry the image")
	}
}

func TestRun_StagesCarryTokenBudgets(t *testing.T) {
	vision := llm.NewMockProvider(llm.MockResponse{Content: extractionJSON})
	text := llm.NewMockProvider(llm.MockResponse{Content: batchJSON})

	_, err := newPipeline(vision, text, blob.NewMemoryStore()).Run(context.Background(), Request{
		Image: testImage(),
		Count: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := vision.LastCall().MaxTokens; got != extractionMaxTokens {
		t.Errorf("vision max tokens = %d, want %d", got, extractionMaxTokens)
	}
	if got := text.LastCall().MaxTokens; got != generationMaxTokens {
		t.Errorf("text max tokens = %d, want %d", got, generationMaxTokens)
	}
}

func TestRun_TextStageSeesExtractedContent(t *testing.T) {
	vision := llm.NewMockProvider(llm.MockResponse{Content: extractionJSON})
	text := llm.NewMockProvider(llm.MockResponse{Content: batchJSON})

	_, err := newPipeline(vision, text, blob.NewMemoryStore()).Run(context.Background(), Request{
		Image: testImage(),
		Count: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prompt := text.LastCall().Messages[0].Content
	if !strings.Contains(prompt, "Bir üçgenin iç açıları toplamı kaçtır?") {
		t.Error("text stage prompt missing the extracted question")
	}
	if !strings.Contains(prompt, "B) 180") {
		t.Error("text stage prompt missing the extracted options")
	}
}

func TestRun_LanguageDefaultsToExtracted(t *testing.T) {
	vision := llm.NewMockProvider(llm.MockResponse{Content: extractionJSON})
	text := llm.NewMockProvider(llm.MockResponse{Content: batchJSON})

	res, err := newPipeline(vision, text, blob.NewMemoryStore()).Run(context.Background(), Request{
		Image: testImage(),
		Count: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prompt := text.LastCall().Messages[0].Content
	if !strings.Contains(prompt, "MUST be written in Turkish") {
		t.Error("detected language not enforced on the text stage")
	}
	if res.Language != "Turkish" {
		t.Errorf("result language = %q, want the detected language", res.Language)
	}
}

func TestRun_ExplicitLanguageWins(t *testing.T) {
	vision := llm.NewMockProvider(llm.MockResponse{Content: extractionJSON})
	text := llm.NewMockProvider(llm.MockResponse{Content: batchJSON})

	res, err := newPipeline(vision, text, blob.NewMemoryStore()).Run(context.Background(), Request{
		Image:          testImage(),
		Count:          1,
		TargetLanguage: "English",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prompt := text.LastCall().Messages[0].Content
	if !strings.Contains(prompt, "MUST be written in English") {
		t.Error("explicit target language was not applied")
	}
	if res.Language != "English" {
		t.Errorf("result language = %q, want the requested language", res.Language)
	}
}

func TestRun_StorageFailureAbortsBeforeModelCalls(t *testing.T) {
	vision := llm.NewMockProvider()
	text := llm.NewMockProvider()
	blobs := blob.NewMemoryStore()
	blobs.Err = errors.New("disk full")

	_, err := newPipeline(vision, text, blobs).Run(context.Background(), Request{
		Image: testImage(),
		Count: 1,
	})

	var failure *generate.Failure
	if !errors.As(err, &failure) {
		t.Fatalf("expected *generate.Failure, got %v", err)
	}
	if failure.Kind != generate.KindStorageFailure {
		t.Errorf("kind = %s, want %s", failure.Kind, generate.KindStorageFailure)
	}
	if vision.CallCount() != 0 || text.CallCount() != 0 {
		t.Error("no model call may happen when the image cannot be stored")
	}
}

func TestRun_VisionFailureShortCircuits(t *testing.T) {
	// Vision never produces conformant output; the text stage must see
	// zero calls.
	vision := llm.NewMockProvider(
		llm.MockResponse{Content: "not json"},
		llm.MockResponse{Content: "still not json"},
		llm.MockResponse{Content: "nope"},
	)
	text := llm.NewMockProvider(llm.MockResponse{Content: batchJSON})

	_, err := newPipeline(vision, text, blob.NewMemoryStore()).Run(context.Background(), Request{
		Image: testImage(),
		Count: 1,
	})

	var failure *generate.Failure
	if !errors.As(err, &failure) {
		t.Fatalf("expected *generate.Failure, got %v", err)
	}
	if failure.Kind != generate.KindSchemaViolation {
		t.Errorf("kind = %s, want %s", failure.Kind, generate.KindSchemaViolation)
	}
	if text.CallCount() != 0 {
		t.Errorf("text stage called %d times after vision failure", text.CallCount())
	}
}

func TestRun_VisionTimeoutKeepsStoredImage(t *testing.T) {
	timeout := llm.MockResponse{Err: &llm.ErrTimeout{After: time.Second, Err: context.DeadlineExceeded}}
	vision := llm.NewMockProvider(timeout, timeout, timeout)
	text := llm.NewMockProvider()
	blobs := blob.NewMemoryStore()

	_, err := newPipeline(vision, text, blobs).Run(context.Background(), Request{
		Image: testImage(),
		Count: 1,
	})

	var failure *generate.Failure
	if !errors.As(err, &failure) {
		t.Fatalf("expected *generate.Failure, got %v", err)
	}
	if failure.Kind != generate.KindUpstreamUnavailable {
		t.Errorf("kind = %s, want %s", failure.Kind, generate.KindUpstreamUnavailable)
	}
	if blobs.WriteCount() != 1 {
		t.Errorf("blob writes = %d, want exactly 1", blobs.WriteCount())
	}
	if text.CallCount() != 0 {
		t.Error("text stage must not run after a vision timeout failure")
	}
}

func TestSourceMaterial_FigureNote(t *testing.T) {
	material := sourceMaterial(Extracted{
		QuestionText: "Identify the shape in the figure.",
		QuestionType: "mcq",
		Language:     "English",
		HasFigure:    true,
	})
	if !strings.Contains(material, "answerable without one") {
		t.Error("figure note missing from source material")
	}
}
