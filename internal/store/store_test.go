package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleSession() *Session {
	return &Session{
		Kind:           "pdf",
		SourceSummary:  "biology-chapter-3.pdf",
		TargetLanguage: "Turkish",
		Model:          "anthropic/claude-3.5-sonnet",
		Questions: []Question{
			{
				Type:        "mcq",
				Text:        "Which organelle produces ATP?",
				Options:     []string{"Nucleus", "Mitochondria", "Ribosome", "Golgi"},
				AnswerIndex: 1,
				Explanation: "Mitochondria run cellular respiration.",
				Difficulty:  "easy",
				Topic:       "cell biology",
				Confidence:  0.95,
			},
			{
				Type:         "open_ended",
				Text:         "Describe the role of the cell membrane.",
				SampleAnswer: "It regulates what enters and leaves the cell.",
				Explanation:  "Expect selective permeability and transport.",
				Confidence:   0.8,
			},
		},
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSessionSaveAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	sess := sampleSession()
	if err := repo.Save(ctx, sess); err != nil {
		t.Fatalf("save: %v", err)
	}
	if sess.ID == uuid.Nil {
		t.Fatal("save did not assign a session ID")
	}
	if sess.Questions[0].ID == uuid.Nil {
		t.Fatal("save did not assign question IDs")
	}

	got, err := repo.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected session, got nil")
	}
	if got.Kind != "pdf" || got.TargetLanguage != "Turkish" {
		t.Errorf("session fields lost: %+v", got)
	}
	if len(got.Questions) != 2 {
		t.Fatalf("questions = %d, want 2", len(got.Questions))
	}

	mcq := got.Questions[0]
	if mcq.AnswerIndex != 1 || len(mcq.Options) != 4 {
		t.Errorf("mcq fields lost: %+v", mcq)
	}
	if got.Questions[1].SampleAnswer == "" {
		t.Error("open-ended sample answer lost")
	}
}

func TestSessionGetMissing(t *testing.T) {
	s := openTestStore(t)
	got, err := s.SessionRepo().Get(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Error("expected nil for a missing session")
	}
}

func TestSessionListNewestFirstWithKindFilter(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	for _, kind := range []string{"pdf", "clone", "pdf"} {
		sess := &Session{Kind: kind}
		if err := repo.Save(ctx, sess); err != nil {
			t.Fatalf("save %s: %v", kind, err)
		}
		// created_at has second precision in SQLite orderings.
		time.Sleep(5 * time.Millisecond)
	}

	all, err := repo.List(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("sessions = %d, want 3", len(all))
	}

	pdfs, err := repo.List(ctx, QueryOpts{Kind: "pdf", Limit: 10})
	if err != nil {
		t.Fatalf("list pdf: %v", err)
	}
	if len(pdfs) != 2 {
		t.Errorf("pdf sessions = %d, want 2", len(pdfs))
	}
}

func TestSessionDeleteCascades(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	sess := sampleSession()
	if err := repo.Save(ctx, sess); err != nil {
		t.Fatalf("save: %v", err)
	}
	questionID := sess.Questions[0].ID

	if err := repo.Delete(ctx, sess.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	got, err := repo.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Error("session still present after delete")
	}

	q, err := repo.GetQuestion(ctx, questionID)
	if err != nil {
		t.Fatalf("get question: %v", err)
	}
	if q != nil {
		t.Error("question survived session delete")
	}
}

func TestSessionDeleteMissingIsNoOp(t *testing.T) {
	s := openTestStore(t)
	if err := s.SessionRepo().Delete(context.Background(), uuid.New()); err != nil {
		t.Errorf("delete of missing session should not fail: %v", err)
	}
}

func TestQuestionUpdate(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	sess := sampleSession()
	if err := repo.Save(ctx, sess); err != nil {
		t.Fatalf("save: %v", err)
	}

	q := sess.Questions[0]
	q.Text = "Which organelle is the site of cellular respiration?"
	q.AnswerIndex = 1
	q.Difficulty = "medium"
	if err := repo.UpdateQuestion(ctx, &q); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.GetQuestion(ctx, q.ID)
	if err != nil {
		t.Fatalf("get question: %v", err)
	}
	if got.Text != q.Text {
		t.Errorf("text = %q", got.Text)
	}
	if got.Difficulty != "medium" {
		t.Errorf("difficulty = %q, want medium", got.Difficulty)
	}
}

func TestRefinementHistoryOldestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	sess := sampleSession()
	if err := repo.Save(ctx, sess); err != nil {
		t.Fatalf("save: %v", err)
	}
	qid := sess.Questions[0].ID

	turns := []string{"make it harder", "fix option B", "translate to English"}
	for _, instruction := range turns {
		err := repo.AppendRefinement(ctx, qid, RefinementTurn{
			Instruction: instruction,
			ChangesMade: "done: " + instruction,
		})
		if err != nil {
			t.Fatalf("append %q: %v", instruction, err)
		}
		time.Sleep(5 * time.Millisecond)
	}

	history, err := repo.RefinementHistory(ctx, qid)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("turns = %d, want 3", len(history))
	}
	for i, instruction := range turns {
		if history[i].Instruction != instruction {
			t.Errorf("turn %d = %q, want %q", i, history[i].Instruction, instruction)
		}
	}
}

func TestSessionStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := repo.Save(ctx, sampleSession()); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalSessions != 2 {
		t.Errorf("total sessions = %d, want 2", stats.TotalSessions)
	}
	if stats.TotalQuestions != 4 {
		t.Errorf("total questions = %d, want 4", stats.TotalQuestions)
	}
	// Both sessions were just created, so both fall in the window.
	if stats.SessionsLast7Days != 2 {
		t.Errorf("recent sessions = %d, want 2", stats.SessionsLast7Days)
	}
}

func TestLLMCallEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	calls := []LLMCallEventData{
		{Provider: "openrouter", Model: "anthropic/claude-3.5-sonnet", Purpose: "pdf-questions", InputTokens: 1200, OutputTokens: 600, Success: true},
		{Provider: "openrouter", Model: "anthropic/claude-3.5-sonnet", Purpose: "clone-extraction", Success: false, ErrorMessage: "timeout"},
		{Provider: "openrouter", Model: "anthropic/claude-3.5-sonnet", Purpose: "pdf-questions", InputTokens: 900, OutputTokens: 500, Success: true},
	}
	for i, c := range calls {
		if err := repo.AppendLLMCall(ctx, c); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	all, err := repo.ListLLMCalls(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("events = %d, want 3", len(all))
	}
	// Newest first.
	if all[0].Purpose != "pdf-questions" || all[0].InputTokens != 900 {
		t.Errorf("unexpected newest event: %+v", all[0])
	}

	extractions, err := repo.ListLLMCalls(ctx, QueryOpts{Purpose: "clone-extraction"})
	if err != nil {
		t.Fatalf("list filtered: %v", err)
	}
	if len(extractions) != 1 {
		t.Fatalf("filtered events = %d, want 1", len(extractions))
	}
	if extractions[0].ErrorMessage != "timeout" {
		t.Errorf("error message = %q", extractions[0].ErrorMessage)
	}
}

func TestLLMCallGetAndUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	calls := []LLMCallEventData{
		{Provider: "openrouter", Model: "m1", Purpose: "pdf-questions", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true, RequestBody: "[user]\nhello"},
		{Provider: "openrouter", Model: "m1", Purpose: "pdf-questions", InputTokens: 300, OutputTokens: 150, LatencyMs: 400, Success: true},
		{Provider: "openrouter", Model: "m2", Purpose: "refinement", InputTokens: 50, OutputTokens: 25, LatencyMs: 100, Success: true},
	}
	for i, c := range calls {
		if err := repo.AppendLLMCall(ctx, c); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.GetLLMCall(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.RequestBody != "[user]\nhello" {
		t.Errorf("event body lost: %+v", got)
	}

	missing, err := repo.GetLLMCall(ctx, 999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for a missing event")
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("purposes = %d, want 2", len(byPurpose))
	}
	for _, u := range byPurpose {
		if u.Purpose == "pdf-questions" {
			if u.Calls != 2 || u.InputTokens != 400 || u.OutputTokens != 200 {
				t.Errorf("pdf-questions usage: %+v", u)
			}
			if u.AvgLatencyMs != 300 {
				t.Errorf("avg latency = %d, want 300", u.AvgLatencyMs)
			}
		}
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("models = %d, want 2", len(byModel))
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"sessions", "questions", "refinements", "llm_call_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}
