package service

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/ekocak/quizforge/internal/blob"
	"github.com/ekocak/quizforge/internal/generate"
	"github.com/ekocak/quizforge/internal/llm"
	"github.com/ekocak/quizforge/internal/store"
)

// memSessionRepo is an in-memory SessionRepo for service tests.
type memSessionRepo struct {
	sessions    map[uuid.UUID]*store.Session
	questions   map[uuid.UUID]*store.Question
	refinements map[uuid.UUID][]store.RefinementTurn
	saveErr     error
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{
		sessions:    make(map[uuid.UUID]*store.Session),
		questions:   make(map[uuid.UUID]*store.Question),
		refinements: make(map[uuid.UUID][]store.RefinementTurn),
	}
}

func (m *memSessionRepo) Save(_ context.Context, s *store.Session) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	for i := range s.Questions {
		if s.Questions[i].ID == uuid.Nil {
			s.Questions[i].ID = uuid.New()
		}
		q := s.Questions[i]
		m.questions[q.ID] = &q
	}
	m.sessions[s.ID] = s
	return nil
}

func (m *memSessionRepo) Get(_ context.Context, id uuid.UUID) (*store.Session, error) {
	return m.sessions[id], nil
}

func (m *memSessionRepo) List(_ context.Context, _ store.QueryOpts) ([]*store.Session, error) {
	out := make([]*store.Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, s)
	}
	return out, nil
}

func (m *memSessionRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.sessions, id)
	return nil
}

func (m *memSessionRepo) GetQuestion(_ context.Context, id uuid.UUID) (*store.Question, error) {
	q, ok := m.questions[id]
	if !ok {
		return nil, nil
	}
	copied := *q
	return &copied, nil
}

func (m *memSessionRepo) UpdateQuestion(_ context.Context, q *store.Question) error {
	copied := *q
	m.questions[q.ID] = &copied
	return nil
}

func (m *memSessionRepo) AppendRefinement(_ context.Context, id uuid.UUID, turn store.RefinementTurn) error {
	m.refinements[id] = append(m.refinements[id], turn)
	return nil
}

func (m *memSessionRepo) RefinementHistory(_ context.Context, id uuid.UUID) ([]store.RefinementTurn, error) {
	return m.refinements[id], nil
}

func (m *memSessionRepo) Stats(_ context.Context) (*store.SessionStats, error) {
	return &store.SessionStats{
		TotalSessions:  len(m.sessions),
		TotalQuestions: len(m.questions),
	}, nil
}

const batchJSON = `{"questions": [
	{"id": "q1", "type": "mcq",
	 "question_text": "Which organelle produces ATP?",
	 "options": ["Nucleus", "Mitochondria", "Ribosome", "Golgi"],
	 "answer_index": 1,
	 "explanation": "Mitochondria run cellular respiration.",
	 "difficulty": "easy", "topic": "cell biology",
	 "confidence_score": 0.95},
	{"id": "q2", "type": "mcq",
	 "question_text": "Where does photosynthesis occur?",
	 "options": ["Chloroplast", "Mitochondria", "Vacuole", "Nucleus"],
	 "answer_index": 0,
	 "explanation": "Chloroplasts hold the chlorophyll.",
	 "confidence_score": 0.9}
]}`

const extractionJSON = `{
	"question_text": "Which gas do plants absorb during photosynthesis?",
	"options": ["Oxygen", "Carbon dioxide", "Nitrogen", "Hydrogen"],
	"question_type": "mcq",
	"topic": "biology",
	"language": "English",
	"has_figure": false
}`

var pngBase64 = base64.StdEncoding.EncodeToString(
	append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, make([]byte, 16)...))

func newTestService(mock *llm.MockProvider, repo store.SessionRepo) *Service {
	return New(mock, repo, blob.NewMemoryStore(), generate.DefaultMaxAttempts)
}

func TestGenerateFromText_PersistsSession(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: batchJSON})
	repo := newMemSessionRepo()
	svc := newTestService(mock, repo)

	sess, err := svc.generateFromText(context.Background(), "Photosynthesis is...", Request{
		Kind:           KindPDF,
		PDFName:        "biology.pdf",
		Count:          2,
		TargetLanguage: "English",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sess.ID == uuid.Nil {
		t.Error("session not assigned an ID")
	}
	if sess.Kind != KindPDF || sess.SourceSummary != "biology.pdf" {
		t.Errorf("session fields: %+v", sess)
	}
	if len(sess.Questions) != 2 {
		t.Fatalf("questions = %d, want 2", len(sess.Questions))
	}
	q := sess.Questions[0]
	if q.Text != "Which organelle produces ATP?" || q.AnswerIndex != 1 {
		t.Errorf("question fields lost: %+v", q)
	}
	if len(repo.sessions) != 1 {
		t.Errorf("persisted sessions = %d, want 1", len(repo.sessions))
	}
}

func TestGenerateFromText_CallCarriesTokenBudget(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: batchJSON})
	svc := newTestService(mock, newMemSessionRepo())

	if _, err := svc.generateFromText(context.Background(), "source", Request{Kind: KindPDF, Count: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := mock.LastCall().MaxTokens; got != questionBatchMaxTokens {
		t.Errorf("max tokens = %d, want %d", got, questionBatchMaxTokens)
	}
}

func TestSummarize_CutsOnRuneBoundary(t *testing.T) {
	long := strings.Repeat("ü", 300)
	got := summarize(long)
	if !utf8.ValidString(got) {
		t.Error("summary is not valid UTF-8")
	}
	if n := utf8.RuneCountInString(got); n != 200 {
		t.Errorf("summary length = %d runes, want 200", n)
	}
}

func TestGenerate_UnreadablePDF(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := newTestService(mock, newMemSessionRepo())

	_, err := svc.Generate(context.Background(), Request{
		Kind: KindPDF,
		PDF:  []byte("not a pdf at all"),
	})

	var failure *generate.Failure
	if !errors.As(err, &failure) {
		t.Fatalf("expected *generate.Failure, got %v", err)
	}
	if failure.Kind != generate.KindUnreadableInput {
		t.Errorf("kind = %s, want %s", failure.Kind, generate.KindUnreadableInput)
	}
	if mock.CallCount() != 0 {
		t.Error("no model call expected for unreadable input")
	}
}

func TestGenerate_Clone_EndToEnd(t *testing.T) {
	// One provider serves both stages: extraction first, batch second.
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: extractionJSON},
		llm.MockResponse{Content: batchJSON},
	)
	repo := newMemSessionRepo()
	svc := newTestService(mock, repo)

	sess, err := svc.Generate(context.Background(), Request{
		Kind:        KindClone,
		ImageBase64: pngBase64,
		Count:       2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sess.Kind != KindClone {
		t.Errorf("kind = %s", sess.Kind)
	}
	if sess.ImageRef == "" {
		t.Error("clone session missing image ref")
	}
	if !strings.Contains(sess.SourceSummary, "Which gas do plants absorb") {
		t.Errorf("source summary = %q", sess.SourceSummary)
	}
	// No target language was requested, so the session records the
	// language actually generated in, the one detected on the image.
	if sess.TargetLanguage != "English" {
		t.Errorf("session language = %q, want the detected language", sess.TargetLanguage)
	}
	if len(sess.Questions) != 2 {
		t.Errorf("questions = %d, want 2", len(sess.Questions))
	}
	if mock.CallCount() != 2 {
		t.Errorf("model calls = %d, want 2", mock.CallCount())
	}
}

func TestGenerate_Clone_BadImage(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := newTestService(mock, newMemSessionRepo())

	_, err := svc.Generate(context.Background(), Request{
		Kind:        KindClone,
		ImageBase64: "!!!",
	})

	var failure *generate.Failure
	if !errors.As(err, &failure) {
		t.Fatalf("expected *generate.Failure, got %v", err)
	}
	if failure.Kind != generate.KindUnreadableInput {
		t.Errorf("kind = %s, want %s", failure.Kind, generate.KindUnreadableInput)
	}
}

func TestGenerate_UnknownKind(t *testing.T) {
	svc := newTestService(llm.NewMockProvider(), newMemSessionRepo())
	if _, err := svc.Generate(context.Background(), Request{Kind: "video"}); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestGenerate_PersistenceFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: batchJSON})
	repo := newMemSessionRepo()
	repo.saveErr = errors.New("disk full")
	svc := newTestService(mock, repo)

	_, err := svc.generateFromText(context.Background(), "source", Request{Kind: KindPDF, Count: 2})

	var failure *generate.Failure
	if !errors.As(err, &failure) {
		t.Fatalf("expected *generate.Failure, got %v", err)
	}
	if failure.Kind != generate.KindStorageFailure {
		t.Errorf("kind = %s, want %s", failure.Kind, generate.KindStorageFailure)
	}
}

func seedQuestion(t *testing.T, repo *memSessionRepo) *store.Question {
	t.Helper()
	sess := &store.Session{
		Kind: KindPDF,
		Questions: []store.Question{{
			Type:        "mcq",
			Text:        "What is 2+2?",
			Options:     []string{"3", "4", "5", "6"},
			AnswerIndex: 1,
			Explanation: "Basic arithmetic.",
			Confidence:  1,
		}},
	}
	if err := repo.Save(context.Background(), sess); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return &sess.Questions[0]
}

func TestRefine_UpdatesQuestionAndRecordsTurn(t *testing.T) {
	refinedJSON := `{
		"refined_question": {
			"id": "q1", "type": "mcq",
			"question_text": "What is 12+13?",
			"options": ["24", "25", "26", "27"],
			"answer_index": 1,
			"explanation": "Column addition.",
			"difficulty": "medium"
		},
		"changes_made": "Raised the difficulty to two-digit addition."
	}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: refinedJSON})
	repo := newMemSessionRepo()
	q := seedQuestion(t, repo)
	svc := newTestService(mock, repo)

	res, err := svc.Refine(context.Background(), RefineRequest{
		QuestionID:  q.ID,
		Instruction: "make it harder",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Question.Text != "What is 12+13?" {
		t.Errorf("text = %q", res.Question.Text)
	}
	if res.Question.Difficulty != "medium" {
		t.Errorf("difficulty = %q", res.Question.Difficulty)
	}
	if res.ChangesMade == "" {
		t.Error("missing change summary")
	}

	stored, _ := repo.GetQuestion(context.Background(), q.ID)
	if stored.Text != "What is 12+13?" {
		t.Error("refined question not persisted")
	}
	if len(repo.refinements[q.ID]) != 1 {
		t.Fatalf("refinement turns = %d, want 1", len(repo.refinements[q.ID]))
	}
	if repo.refinements[q.ID][0].Instruction != "make it harder" {
		t.Error("turn instruction not recorded")
	}
}

func TestRefine_PromptCarriesHistoryAndCurrentQuestion(t *testing.T) {
	refinedJSON := `{
		"refined_question": {
			"id": "q1", "type": "mcq",
			"question_text": "What is 2+2?",
			"options": ["3", "4", "5", "6"],
			"answer_index": 1,
			"explanation": "Basic arithmetic."
		},
		"changes_made": "No change needed."
	}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: refinedJSON})
	repo := newMemSessionRepo()
	q := seedQuestion(t, repo)
	repo.refinements[q.ID] = []store.RefinementTurn{
		{Instruction: "swap options 1 and 2", ChangesMade: "Swapped them."},
	}
	svc := newTestService(mock, repo)

	if _, err := svc.Refine(context.Background(), RefineRequest{
		QuestionID:  q.ID,
		Instruction: "now fix the explanation",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prompt := mock.LastCall().Messages[0].Content
	if !strings.Contains(prompt, "swap options 1 and 2") {
		t.Error("prompt missing history turn")
	}
	if got := mock.LastCall().MaxTokens; got != refinementMaxTokens {
		t.Errorf("max tokens = %d, want %d", got, refinementMaxTokens)
	}
	if !strings.Contains(prompt, "What is 2+2?") {
		t.Error("prompt missing current question")
	}
	if !strings.Contains(prompt, "now fix the explanation") {
		t.Error("prompt missing the new instruction")
	}
}

func TestRefine_UnknownQuestion(t *testing.T) {
	svc := newTestService(llm.NewMockProvider(), newMemSessionRepo())
	_, err := svc.Refine(context.Background(), RefineRequest{
		QuestionID:  uuid.New(),
		Instruction: "make it harder",
	})
	if !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("expected ErrQuestionNotFound, got %v", err)
	}
}
