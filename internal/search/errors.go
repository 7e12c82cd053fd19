package search

import (
	"errors"
	"fmt"
)

// ValidationError is bad or missing input. Its message is safe to show to
// the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ErrUnexpected marks failures that escaped an orchestrator. Callers should
// log the cause and show a generic message.
var ErrUnexpected = errors.New("unexpected search failure")
