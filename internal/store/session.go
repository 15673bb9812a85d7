package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ekocak/quizforge/ent"
	"github.com/ekocak/quizforge/ent/question"
	"github.com/ekocak/quizforge/ent/refinement"
	"github.com/ekocak/quizforge/ent/session"
)

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Save(ctx context.Context, s *Session) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	create := tx.Session.Create().
		SetKind(s.Kind).
		SetSourceSummary(s.SourceSummary).
		SetTargetLanguage(s.TargetLanguage).
		SetImageRef(s.ImageRef).
		SetModel(s.Model)
	if s.ID != uuid.Nil {
		create = create.SetID(s.ID)
	}

	saved, err := create.Save(ctx)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("save session: %w", err)
	}
	s.ID = saved.ID
	s.CreatedAt = saved.CreatedAt

	for i := range s.Questions {
		q := &s.Questions[i]
		qc := tx.Question.Create().
			SetQtype(q.Type).
			SetQuestionText(q.Text).
			SetOptions(q.Options).
			SetAnswerIndex(q.AnswerIndex).
			SetExplanation(q.Explanation).
			SetSampleAnswer(q.SampleAnswer).
			SetDifficulty(q.Difficulty).
			SetTopic(q.Topic).
			SetConfidence(q.Confidence).
			SetSessionID(saved.ID)
		if q.ID != uuid.Nil {
			qc = qc.SetID(q.ID)
		}
		savedQ, err := qc.Save(ctx)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("save question %d: %w", i, err)
		}
		q.ID = savedQ.ID
		q.CreatedAt = savedQ.CreatedAt
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit session: %w", err)
	}
	return nil
}

func (r *sessionRepo) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	s, err := r.client.Session.Query().
		Where(session.ID(id)).
		WithQuestions(func(q *ent.QuestionQuery) {
			q.Order(ent.Asc(question.FieldCreatedAt))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query session: %w", err)
	}
	return fromEntSession(s), nil
}

func (r *sessionRepo) List(ctx context.Context, opts QueryOpts) ([]*Session, error) {
	q := r.client.Session.Query().
		Order(ent.Desc(session.FieldCreatedAt))

	if opts.Kind != "" {
		q = q.Where(session.Kind(opts.Kind))
	}
	if !opts.From.IsZero() {
		q = q.Where(session.CreatedAtGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(session.CreatedAtLTE(opts.To))
	}
	if opts.Offset > 0 {
		q = q.Offset(opts.Offset)
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	out := make([]*Session, 0, len(rows))
	for _, s := range rows {
		out = append(out, fromEntSession(s))
	}
	return out, nil
}

func (r *sessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.client.Session.DeleteOneID(id).Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (r *sessionRepo) GetQuestion(ctx context.Context, id uuid.UUID) (*Question, error) {
	q, err := r.client.Question.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query question: %w", err)
	}
	out := fromEntQuestion(q)
	return &out, nil
}

func (r *sessionRepo) UpdateQuestion(ctx context.Context, q *Question) error {
	_, err := r.client.Question.UpdateOneID(q.ID).
		SetQtype(q.Type).
		SetQuestionText(q.Text).
		SetOptions(q.Options).
		SetAnswerIndex(q.AnswerIndex).
		SetExplanation(q.Explanation).
		SetSampleAnswer(q.SampleAnswer).
		SetDifficulty(q.Difficulty).
		SetTopic(q.Topic).
		SetConfidence(q.Confidence).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update question: %w", err)
	}
	return nil
}

func (r *sessionRepo) AppendRefinement(ctx context.Context, questionID uuid.UUID, turn RefinementTurn) error {
	_, err := r.client.Refinement.Create().
		SetInstruction(turn.Instruction).
		SetChangesMade(turn.ChangesMade).
		SetQuestionID(questionID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save refinement: %w", err)
	}
	return nil
}

func (r *sessionRepo) RefinementHistory(ctx context.Context, questionID uuid.UUID) ([]RefinementTurn, error) {
	rows, err := r.client.Refinement.Query().
		Where(refinement.HasQuestionWith(question.ID(questionID))).
		Order(ent.Asc(refinement.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query refinement history: %w", err)
	}

	out := make([]RefinementTurn, 0, len(rows))
	for _, t := range rows {
		out = append(out, RefinementTurn{
			Instruction: t.Instruction,
			ChangesMade: t.ChangesMade,
			CreatedAt:   t.CreatedAt,
		})
	}
	return out, nil
}

func (r *sessionRepo) Stats(ctx context.Context) (*SessionStats, error) {
	sessions, err := r.client.Session.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count sessions: %w", err)
	}

	questions, err := r.client.Question.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count questions: %w", err)
	}

	weekAgo := time.Now().AddDate(0, 0, -7)
	recent, err := r.client.Session.Query().
		Where(session.CreatedAtGTE(weekAgo)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count recent sessions: %w", err)
	}

	return &SessionStats{
		TotalSessions:     sessions,
		TotalQuestions:    questions,
		SessionsLast7Days: recent,
	}, nil
}

func fromEntSession(s *ent.Session) *Session {
	out := &Session{
		ID:             s.ID,
		Kind:           s.Kind,
		SourceSummary:  s.SourceSummary,
		TargetLanguage: s.TargetLanguage,
		ImageRef:       s.ImageRef,
		Model:          s.Model,
		CreatedAt:      s.CreatedAt,
	}
	for _, q := range s.Edges.Questions {
		out.Questions = append(out.Questions, fromEntQuestion(q))
	}
	return out
}

func fromEntQuestion(q *ent.Question) Question {
	return Question{
		ID:           q.ID,
		Type:         q.Qtype,
		Text:         q.QuestionText,
		Options:      q.Options,
		AnswerIndex:  q.AnswerIndex,
		Explanation:  q.Explanation,
		SampleAnswer: q.SampleAnswer,
		Difficulty:   q.Difficulty,
		Topic:        q.Topic,
		Confidence:   q.Confidence,
		CreatedAt:    q.CreatedAt,
	}
}
