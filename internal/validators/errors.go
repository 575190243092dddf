package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingName     = errors.New("name is required")
	ErrMissingEmail    = errors.New("email is required")
	ErrUnknownColumn   = errors.New("unknown customer field")
	ErrEmptyPayload    = errors.New("at least one field must be provided")
	ErrMissingFile     = errors.New("file is required")
	ErrEmptyFile       = errors.New("uploaded file is empty")
	ErrFileTooLarge    = errors.New("uploaded file exceeds the size limit")
	ErrUnsupportedFile = errors.New("unsupported file type")
	ErrMissingFilename = errors.New("original filename is required")
)
