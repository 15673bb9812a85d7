package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// QueryOpts configures list queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	Offset  int       // rows to skip
	Kind    string    // session kind filter: pdf, clone
	Purpose string    // event purpose filter
	From    time.Time // created/timestamp >= From
	To      time.Time // created/timestamp <= To
}

// Question is one stored exam question.
type Question struct {
	ID           uuid.UUID
	Type         string // mcq or open_ended
	Text         string
	Options      []string
	AnswerIndex  int
	Explanation  string
	SampleAnswer string
	Difficulty   string
	Topic        string
	Confidence   float64
	CreatedAt    time.Time
}

// Session is one generation run with its questions.
type Session struct {
	ID             uuid.UUID
	Kind           string // pdf or clone
	SourceSummary  string
	TargetLanguage string
	ImageRef       string
	Model          string
	CreatedAt      time.Time
	Questions      []Question
}

// RefinementTurn is one turn of a question's edit conversation.
type RefinementTurn struct {
	Instruction string
	ChangesMade string
	CreatedAt   time.Time
}

// SessionStats are whole-history totals for the stats command.
type SessionStats struct {
	TotalSessions     int
	TotalQuestions    int
	SessionsLast7Days int
}

// SessionRepo manages sessions, their questions and refinement history.
type SessionRepo interface {
	// Save stores a session with its questions. Zero IDs are assigned.
	Save(ctx context.Context, s *Session) error

	// Get returns the session with its questions, or nil if absent.
	Get(ctx context.Context, id uuid.UUID) (*Session, error)

	// List returns sessions newest first, without their questions.
	List(ctx context.Context, opts QueryOpts) ([]*Session, error)

	// Delete removes a session and everything attached to it.
	Delete(ctx context.Context, id uuid.UUID) error

	// GetQuestion returns one question, or nil if absent.
	GetQuestion(ctx context.Context, id uuid.UUID) (*Question, error)

	// UpdateQuestion overwrites a question's content after refinement.
	UpdateQuestion(ctx context.Context, q *Question) error

	// AppendRefinement records one refinement turn for a question.
	AppendRefinement(ctx context.Context, questionID uuid.UUID, turn RefinementTurn) error

	// RefinementHistory returns a question's turns oldest first.
	RefinementHistory(ctx context.Context, questionID uuid.UUID) ([]RefinementTurn, error)

	// Stats returns totals across all stored sessions.
	Stats(ctx context.Context) (*SessionStats, error)
}

// LLMCallEventData captures one model call for the event log.
type LLMCallEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMCall is a stored model call event.
type LLMCall struct {
	ID        int
	Timestamp time.Time
	LLMCallEventData
}

// UsageByPurpose aggregates token usage per call purpose.
type UsageByPurpose struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// UsageByModel aggregates token usage per model for cost estimation.
type UsageByModel struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to the model call log.
type EventRepo interface {
	// AppendLLMCall records a model call event.
	AppendLLMCall(ctx context.Context, data LLMCallEventData) error

	// ListLLMCalls returns events newest first.
	ListLLMCalls(ctx context.Context, opts QueryOpts) ([]LLMCall, error)

	// GetLLMCall returns one event by ID, or nil if absent.
	GetLLMCall(ctx context.Context, id int) (*LLMCall, error)

	// LLMUsageByPurpose aggregates usage per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]UsageByPurpose, error)

	// LLMUsageByModel aggregates usage per model.
	LLMUsageByModel(ctx context.Context) ([]UsageByModel, error)
}
