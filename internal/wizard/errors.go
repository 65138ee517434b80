package wizard

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrNotFinalStep     = errors.New("form is not on its final step")
	ErrSubmitInFlight   = errors.New("submission already in flight")
	ErrAlreadySubmitted = errors.New("form already submitted")
	ErrSessionNotFound  = errors.New("session not found")
	ErrFormNotFound     = errors.New("form not found")
	ErrUnknownField     = errors.New("unknown field")
)

// ValidationError lists the required fields that failed their rule.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "validation failed: " + strings.Join(names, ", ")
}

// SubmissionError wraps a failure reported by the submission boundary.
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	return "submission failed: " + e.Err.Error()
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}
