package assistant

import (
	"errors"
	"fmt"
)

// ErrInvalidInput rejects a turn before any external call is made.
var ErrInvalidInput = errors.New("message is required")

// GenerationUnavailableError means the LLM backend failed or timed out.
// The whole turn fails; no partial writes occur.
type GenerationUnavailableError struct {
	Step string // "classify", "generate_plan", "chat", "qualify", ...
	Err  error
}

func (e *GenerationUnavailableError) Error() string {
	return fmt.Sprintf("generation unavailable at step %s: %v", e.Step, e.Err)
}

func (e *GenerationUnavailableError) Unwrap() error {
	return e.Err
}

// PersistenceError means a database read or write failed after the upstream
// steps succeeded. Generated content is not retried or cached.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failed during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
