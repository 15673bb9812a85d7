package generate

import (
	"fmt"

	"github.com/ekocak/quizforge/internal/contract"
)

// FailureKind is the stable classification of a terminal failure.
// Callers branch on the kind; the message is for humans.
type FailureKind string

const (
	// KindUnreadableInput means ingestion could not extract usable
	// content (corrupt PDF, undecodable image). Never retried.
	KindUnreadableInput FailureKind = "unreadable_input"

	// KindUpstreamUnavailable means the model gateway kept failing at
	// the transport level until the attempt bound was exhausted.
	KindUpstreamUnavailable FailureKind = "upstream_unavailable"

	// KindSchemaViolation means the model output never became
	// schema-conformant within the attempt bound.
	KindSchemaViolation FailureKind = "schema_violation"

	// KindStorageFailure means the blob store rejected the image write.
	// In the clone pipeline this aborts before any model call.
	KindStorageFailure FailureKind = "storage_failure"
)

// Failure is the terminal, typed error surfaced to callers. Individual
// attempt failures never escape the generator; only a Failure (or a
// context error on cancellation) does.
type Failure struct {
	Kind FailureKind

	// Violations holds the final attempt's violation list for
	// KindSchemaViolation failures.
	Violations []contract.Violation

	// Attempts is how many model calls were made before giving up.
	Attempts int

	// Err is the underlying cause, when there is one.
	Err error
}

func (f *Failure) Error() string {
	switch f.Kind {
	case KindSchemaViolation:
		return fmt.Sprintf("output failed schema validation after %d attempts:\n%s",
			f.Attempts, contract.Format(f.Violations))
	case KindUpstreamUnavailable:
		return fmt.Sprintf("model backend unavailable after %d attempts: %v", f.Attempts, f.Err)
	case KindUnreadableInput:
		return fmt.Sprintf("unreadable input: %v", f.Err)
	case KindStorageFailure:
		return fmt.Sprintf("image storage failed: %v", f.Err)
	default:
		return fmt.Sprintf("generation failed (%s): %v", f.Kind, f.Err)
	}
}

func (f *Failure) Unwrap() error { return f.Err }
