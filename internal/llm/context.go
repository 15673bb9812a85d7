package llm

import "context"

type contextKey string

const purposeKey contextKey = "generation_purpose"

// WithPurpose tags ctx with the generation purpose recorded on call
// events, e.g. "pdf-questions" or "clone-extraction".
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom returns the purpose tag, or "unknown" when ctx carries
// none.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
