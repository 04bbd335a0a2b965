package service

import (
	"errors"
	"strings"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("service unavailable")
)

// ValidationError reports rejected input. Details holds one message per problem.
type ValidationError struct {
	Message string
	Details []string
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return e.Message
	}
	return e.Message + ": " + strings.Join(e.Details, "; ")
}

func newValidationError(msg string, details ...string) *ValidationError {
	return &ValidationError{Message: msg, Details: details}
}
