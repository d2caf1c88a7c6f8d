package descriptor

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is.
var (
	ErrNotFound   = errors.New("descriptor not found")
	ErrParse      = errors.New("descriptor is not valid structured data")
	ErrValidation = errors.New("descriptor failed validation")
)

// NotFoundError is returned when the descriptor resource does not exist.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("descriptor %s: not found", e.Path)
}

func (e *NotFoundError) Unwrap() []error {
	return []error{ErrNotFound, e.Err}
}

// ParseError is returned when the descriptor bytes cannot be decoded.
type ParseError struct {
	Path   string // Empty when decoding in-memory data
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parse %s descriptor: %v", e.Format, e.Err)
	}
	return fmt.Sprintf("parse %s descriptor %s: %v", e.Format, e.Path, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// ValidationError reports a field that is missing or has the wrong shape.
// Field is a dotted path such as "theme.extend.colors.dark".
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid descriptor: %s %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
