package service

import (
	"errors"
	"sort"
	"strings"
)

// ErrInvalidCredentials is returned for every authentication failure so the
// response never reveals whether the email or the password was wrong
var ErrInvalidCredentials = errors.New("these credentials do not match our records")

// ValidationError collects per-field failure messages. All fields are
// checked before returning so the caller sees every problem at once.
type ValidationError struct {
	Fields map[string][]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// Add records a failure message against a field
func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = append(e.Fields[field], message)
}

// HasErrors reports whether any field failed
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}
