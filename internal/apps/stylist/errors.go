package stylist

import (
	"errors"
	"fmt"
)

var (
	ErrAnalysisNotFound = errors.New("analysis not found")
	ErrNoProvider       = errors.New("no AI provider available")
)

// ValidationError names the offending field of malformed input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// CollaboratorError wraps a failure of an external model call.
type CollaboratorError struct {
	Collaborator string
	Err          error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Collaborator, e.Err)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}
