// Package generate implements the validating generator: a bounded
// retry loop that turns a prompt into schema-conformant output.
//
// Each attempt builds the prompt, calls the provider, parses the reply
// and validates it against the contract. A transport failure retries
// the same prompt. A parse or validation failure rebuilds the prompt
// with the offending output and the violations found, so the model can
// correct itself. Exhausting the attempt bound yields a typed Failure.
// Intermediate attempt state never escapes a Run call.
package generate

import (
	"context"
	"errors"
	"strings"

	"github.com/ekocak/quizforge/internal/contract"
	"github.com/ekocak/quizforge/internal/llm"
	"github.com/ekocak/quizforge/internal/promptbuild"
)

// DefaultMaxAttempts bounds the build-call-parse-validate loop.
// Matches the upstream retry budget the system was tuned with.
const DefaultMaxAttempts = 3

// Generator runs validated generation against a model provider.
// Safe for concurrent use; per-invocation state lives on the stack.
type Generator struct {
	provider    llm.Provider
	maxAttempts int
}

// New creates a Generator. maxAttempts < 1 falls back to the default.
func New(provider llm.Provider, maxAttempts int) *Generator {
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Generator{provider: provider, maxAttempts: maxAttempts}
}

// Request describes one validated generation.
type Request struct {
	// Prompt is the base prompt input. The generator owns the
	// correction fields (InvalidOutput, PriorViolations) and overwrites
	// them on every attempt.
	Prompt promptbuild.Input

	// Contract is the shape the output must satisfy.
	Contract *contract.Contract

	// Media switches the call to vision mode when non-empty.
	Media []llm.Media

	// Purpose labels the call for event logging, e.g. "pdf-questions".
	Purpose string

	MaxTokens   int
	Temperature float64
}

// Result is a successful, fully validated generation.
type Result struct {
	// Payload satisfies the request's contract exhaustively.
	Payload []byte

	// Attempts is how many model calls it took.
	Attempts int

	// Usage is the token consumption summed over all attempts.
	Usage llm.Usage
}

// Run executes the retry loop. It returns the validated result, the
// caller's context error on cancellation, or a terminal *Failure.
func (g *Generator) Run(ctx context.Context, req Request) (*Result, error) {
	ctx = llm.WithPurpose(ctx, req.Purpose)

	var (
		usage          llm.Usage
		lastRaw        string
		lastViolations []contract.Violation
		lastErr        error
		lastTransport  bool
	)

	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		// A cancelled caller gets the context error, not a stale result.
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		in := req.Prompt
		in.Contract = req.Contract
		in.InvalidOutput = lastRaw
		in.PriorViolations = lastViolations
		prompt := promptbuild.Build(in)

		resp, err := g.provider.Generate(ctx, llm.Request{
			System:      prompt.System,
			Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt.User}},
			Media:       req.Media,
			MaxTokens:   req.MaxTokens,
			Temperature: req.Temperature,
		})
		if err != nil {
			if abortErr := abortCause(ctx, err); abortErr != nil {
				return nil, abortErr
			}
			// Transport failure: retry the same prompt. Earlier
			// violations are kept so a later successful call still gets
			// the pending correction.
			lastErr = err
			lastTransport = true
			continue
		}
		usage = addUsage(usage, resp.Usage)
		lastTransport = false

		// An empty body is a violation, not a transport error: the
		// upstream answered, it just answered with nothing.
		if strings.TrimSpace(resp.Content) == "" {
			lastRaw = resp.Content
			lastViolations = []contract.Violation{{
				Message: "the response was empty; respond with the JSON object only",
			}}
			continue
		}

		payload, ok := ExtractJSON(resp.Content)
		if !ok {
			// Parse failure folds into the validation loop as a
			// malformed-output violation.
			lastRaw = resp.Content
			lastViolations = []contract.Violation{{
				Message: "no valid JSON object could be found in the response",
			}}
			continue
		}

		violations := req.Contract.Validate(payload)
		if len(violations) == 0 {
			return &Result{
				Payload:  payload,
				Attempts: attempt,
				Usage:    usage,
			}, nil
		}

		lastRaw = resp.Content
		lastViolations = violations
	}

	if lastTransport {
		return nil, &Failure{
			Kind:     KindUpstreamUnavailable,
			Attempts: g.maxAttempts,
			Err:      lastErr,
		}
	}
	return nil, &Failure{
		Kind:       KindSchemaViolation,
		Attempts:   g.maxAttempts,
		Violations: lastViolations,
	}
}

// abortCause reports whether a provider error means the caller is gone.
// A gateway timeout unwraps to context.DeadlineExceeded, so it is
// checked first: per-call timeouts are retryable, caller cancellation
// is not.
func abortCause(ctx context.Context, err error) error {
	var timeout *llm.ErrTimeout
	if errors.As(err, &timeout) {
		return nil
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}

func addUsage(a, b llm.Usage) llm.Usage {
	return llm.Usage{
		InputTokens:  a.InputTokens + b.InputTokens,
		OutputTokens: a.OutputTokens + b.OutputTokens,
		TotalTokens:  a.TotalTokens + b.TotalTokens,
	}
}
