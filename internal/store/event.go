package store

import (
	"context"
	"fmt"

	"github.com/ekocak/quizforge/ent"
	"github.com/ekocak/quizforge/ent/llmcallevent"
)

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
}

func (r *eventRepo) AppendLLMCall(ctx context.Context, data LLMCallEventData) error {
	_, err := r.client.LLMCallEvent.Create().
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM call event: %w", err)
	}
	return nil
}

func (r *eventRepo) ListLLMCalls(ctx context.Context, opts QueryOpts) ([]LLMCall, error) {
	q := r.client.LLMCallEvent.Query().
		Order(ent.Desc(llmcallevent.FieldID))

	if opts.Purpose != "" {
		q = q.Where(llmcallevent.Purpose(opts.Purpose))
	}
	if !opts.From.IsZero() {
		q = q.Where(llmcallevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(llmcallevent.TimestampLTE(opts.To))
	}
	if opts.Offset > 0 {
		q = q.Offset(opts.Offset)
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list LLM call events: %w", err)
	}

	out := make([]LLMCall, 0, len(rows))
	for _, e := range rows {
		out = append(out, fromEntCall(e))
	}
	return out, nil
}

func (r *eventRepo) GetLLMCall(ctx context.Context, id int) (*LLMCall, error) {
	e, err := r.client.LLMCallEvent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get LLM call event: %w", err)
	}
	call := fromEntCall(e)
	return &call, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]UsageByPurpose, error) {
	var rows []struct {
		Purpose      string  `json:"purpose"`
		Calls        int     `json:"calls"`
		InputTokens  int     `json:"input_tokens"`
		OutputTokens int     `json:"output_tokens"`
		AvgLatency   float64 `json:"avg_latency"`
	}
	err := r.client.LLMCallEvent.Query().
		GroupBy(llmcallevent.FieldPurpose).
		Aggregate(
			ent.As(ent.Count(), "calls"),
			ent.As(ent.Sum(llmcallevent.FieldInputTokens), "input_tokens"),
			ent.As(ent.Sum(llmcallevent.FieldOutputTokens), "output_tokens"),
			ent.As(ent.Mean(llmcallevent.FieldLatencyMs), "avg_latency"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate usage by purpose: %w", err)
	}

	out := make([]UsageByPurpose, 0, len(rows))
	for _, row := range rows {
		out = append(out, UsageByPurpose{
			Purpose:      row.Purpose,
			Calls:        row.Calls,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			AvgLatencyMs: int64(row.AvgLatency),
		})
	}
	return out, nil
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]UsageByModel, error) {
	var rows []struct {
		Model        string `json:"model"`
		Calls        int    `json:"calls"`
		InputTokens  int    `json:"input_tokens"`
		OutputTokens int    `json:"output_tokens"`
	}
	err := r.client.LLMCallEvent.Query().
		GroupBy(llmcallevent.FieldModel).
		Aggregate(
			ent.As(ent.Count(), "calls"),
			ent.As(ent.Sum(llmcallevent.FieldInputTokens), "input_tokens"),
			ent.As(ent.Sum(llmcallevent.FieldOutputTokens), "output_tokens"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate usage by model: %w", err)
	}

	out := make([]UsageByModel, 0, len(rows))
	for _, row := range rows {
		out = append(out, UsageByModel{
			Model:        row.Model,
			Calls:        row.Calls,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
		})
	}
	return out, nil
}

func fromEntCall(e *ent.LLMCallEvent) LLMCall {
	return LLMCall{
		ID:        e.ID,
		Timestamp: e.Timestamp,
		LLMCallEventData: LLMCallEventData{
			Provider:     e.Provider,
			Model:        e.Model,
			Purpose:      e.Purpose,
			InputTokens:  e.InputTokens,
			OutputTokens: e.OutputTokens,
			LatencyMs:    e.LatencyMs,
			Success:      e.Success,
			ErrorMessage: e.ErrorMessage,
			RequestBody:  e.RequestBody,
			ResponseBody: e.ResponseBody,
		},
	}
}
