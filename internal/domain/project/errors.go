package project

import "errors"

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrNoFields        = errors.New("no fields to update")
)

// FieldError is a validation failure attributable to one input field.
// Handlers surface it as a field-level message rather than a generic 500.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}
