package validation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCommand is wrapped by every command construction failure.
var ErrInvalidCommand = errors.New("invalid command")

// ValidationError names the first field that violated a command invariant.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidCommand
}

// Required builds the error for a missing or blank mandatory field.
func Required(field string) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf("%s es obligatorio", field)}
}

// Invalid builds a field error with a custom reason.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf("%s %s", field, reason)}
}

// NotAllowed builds the error for a value outside an enumerated set.
func NotAllowed(field, value string, allowed []string) error {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("%s inválido %q: debe ser uno de %s", field, value, strings.Join(allowed, ", ")),
	}
}
