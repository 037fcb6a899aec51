package theme

import (
	"errors"
	"fmt"
)

var (
	// ErrNoProvider is returned when a theme is read from a context that no
	// provider has populated.
	ErrNoProvider = errors.New("theme: no provider in context")

	// ErrUnknownPreset is returned when a requested preset is not registered.
	ErrUnknownPreset = errors.New("theme: unknown preset")
)

// ValidationError reports a theme field that does not satisfy the schema.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("theme validation: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("theme validation: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ParseError reports an override document that could not be decoded.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line > 0 {
		return fmt.Sprintf("theme parse: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("theme parse: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
