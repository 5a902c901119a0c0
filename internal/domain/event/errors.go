package event

import "errors"

var (
	ErrEventNotFound = errors.New("event not found")
	ErrInvalidFilter = errors.New("invalid event filter")
	ErrNoFields      = errors.New("no fields to update")
)
