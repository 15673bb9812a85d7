package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/ekocak/quizforge/internal/contract"
	"github.com/ekocak/quizforge/internal/generate"
	"github.com/ekocak/quizforge/internal/promptbuild"
	"github.com/ekocak/quizforge/internal/store"
)

// RefineRequest edits one stored question per user instruction.
type RefineRequest struct {
	QuestionID  uuid.UUID
	Instruction string
}

// RefineResult is the updated question plus the model's change summary.
type RefineResult struct {
	Question    *store.Question
	ChangesMade string
}

// Refine loads the question and its edit history, asks the model for a
// revised version, persists it and records the turn. Earlier turns are
// replayed in the prompt so instructions can build on each other.
func (s *Service) Refine(ctx context.Context, req RefineRequest) (*RefineResult, error) {
	q, err := s.sessions.GetQuestion(ctx, req.QuestionID)
	if err != nil {
		return nil, &generate.Failure{Kind: generate.KindStorageFailure, Err: err}
	}
	if q == nil {
		return nil, ErrQuestionNotFound
	}

	history, err := s.sessions.RefinementHistory(ctx, req.QuestionID)
	if err != nil {
		return nil, &generate.Failure{Kind: generate.KindStorageFailure, Err: err}
	}

	exchanges := make([]promptbuild.Exchange, 0, len(history))
	for _, turn := range history {
		exchanges = append(exchanges, promptbuild.Exchange{
			User:      turn.Instruction,
			Assistant: turn.ChangesMade,
		})
	}

	current, err := json.Marshal(questionDoc{
		ID:              q.ID.String(),
		Type:            q.Type,
		QuestionText:    q.Text,
		Options:         q.Options,
		AnswerIndex:     q.AnswerIndex,
		Explanation:     q.Explanation,
		SampleAnswer:    q.SampleAnswer,
		Difficulty:      q.Difficulty,
		Topic:           q.Topic,
		ConfidenceScore: q.Confidence,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding current question: %w", err)
	}

	res, err := s.generator.Run(ctx, generate.Request{
		Prompt: promptbuild.Input{
			Task:        promptbuild.TaskRefinement,
			Content:     string(current),
			Instruction: req.Instruction,
			History:     exchanges,
		},
		Contract:  contract.Refinement(),
		Purpose:   "refinement",
		MaxTokens: refinementMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	var refined struct {
		RefinedQuestion questionDoc `json:"refined_question"`
		ChangesMade     string      `json:"changes_made"`
	}
	if err := json.Unmarshal(res.Payload, &refined); err != nil {
		return nil, fmt.Errorf("decoding validated refinement: %w", err)
	}

	rq := refined.RefinedQuestion
	q.Type = rq.Type
	q.Text = rq.QuestionText
	q.Options = rq.Options
	q.AnswerIndex = rq.AnswerIndex
	q.Explanation = rq.Explanation
	if rq.SampleAnswer != "" {
		q.SampleAnswer = rq.SampleAnswer
	}
	if rq.Difficulty != "" {
		q.Difficulty = rq.Difficulty
	}
	if rq.Topic != "" {
		q.Topic = rq.Topic
	}

	if err := s.sessions.UpdateQuestion(ctx, q); err != nil {
		return nil, &generate.Failure{Kind: generate.KindStorageFailure, Err: err}
	}
	if err := s.sessions.AppendRefinement(ctx, req.QuestionID, store.RefinementTurn{
		Instruction: req.Instruction,
		ChangesMade: refined.ChangesMade,
	}); err != nil {
		return nil, &generate.Failure{Kind: generate.KindStorageFailure, Err: err}
	}

	return &RefineResult{Question: q, ChangesMade: refined.ChangesMade}, nil
}
