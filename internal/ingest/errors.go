package ingest

import "fmt"

// ErrUnreadableInput indicates the uploaded material could not be
// decoded or contained nothing usable. These are caller errors and are
// never retried.
type ErrUnreadableInput struct {
	Reason string
	Err    error
}

func (e *ErrUnreadableInput) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unreadable input: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("unreadable input: %s", e.Reason)
}

func (e *ErrUnreadableInput) Unwrap() error { return e.Err }
