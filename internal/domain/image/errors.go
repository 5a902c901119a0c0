package image

import "errors"

var (
	ErrImageNotFound    = errors.New("image not found")
	ErrOwnerNotFound    = errors.New("owning entity not found")
	ErrInvalidOwnerType = errors.New("entity_type must be event or project")
	ErrEmptyFile        = errors.New("file is empty")
	ErrFileTooLarge     = errors.New("file exceeds maximum allowed size")
	ErrInvalidMimeType  = errors.New("file type is not allowed")
)
