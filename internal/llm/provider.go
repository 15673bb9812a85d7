package llm

import "context"

// Provider is the single egress point for model calls.
// It sends a prompt (and optional image parts) to an LLM backend and
// returns the raw text of the completion. Providers never inspect,
// parse, or retry responses — interpretation and the retry loop belong
// to the generation layer, which is the only place a schema-aware
// correction prompt can be built.
type Provider interface {
	// Generate sends one request and returns the raw model output.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	// System is the system prompt. Sets the LLM's role and constraints.
	System string

	// Messages is the conversation history. Single-turn generation
	// (the common case in QuizForge) carries one user message;
	// refinement carries the prior exchange.
	Messages []Message

	// Media holds image payloads for vision calls. Attached to the
	// final user message. Empty for text-only calls.
	Media []Media

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	// Default: 0.0 (deterministic) when not set.
	Temperature float64
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Media is a binary attachment for vision-capable calls.
type Media struct {
	// MimeType is the sniffed content type, e.g. "image/png".
	MimeType string

	// Data is the raw (not base64) image bytes.
	Data []byte
}

// Response holds the LLM's output.
type Response struct {
	// Content is the raw text returned by the model, untouched.
	// Callers must treat it as untrusted: it may be empty, prose,
	// malformed JSON, or JSON wrapped in commentary.
	Content string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "error"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
