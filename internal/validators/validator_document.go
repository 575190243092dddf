package validators

import (
	"context"

	"github.com/apexglitch/crm/models"
)

// Field name constants for document upload validation.
const (
	// FieldFile targets the uploaded content: present, non-empty, and within
	// the configured size limit.
	FieldFile = "file"

	// FieldFileType targets the declared media type of the upload.
	FieldFileType = "file_type"

	// FieldOriginalFilename targets the client-supplied file name.
	FieldOriginalFilename = "original_filename"
)

// allowedFileTypes is the exhaustive set of media types accepted for
// uploads. Any declared type not present here is rejected.
var allowedFileTypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"image/jpeg",
	"image/png",
	"image/gif",
	"text/plain",
	"application/vnd.ms-excel",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// DocumentValidator implements the Validator interface for document uploads.
// The size limit is fixed at construction from the storage configuration.
type DocumentValidator struct {
	maxSize int64
}

func NewDocumentValidator(maxSize int64) Validator {
	return &DocumentValidator{maxSize: maxSize}
}

func (v *DocumentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.DocumentUpload:
		return v.validateDocumentUpload(ctx, value, fields...)
	case *models.DocumentUpload:
		return v.validateDocumentUpload(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func isAllowedFileType(fileType string) bool {
	for _, t := range allowedFileTypes {
		if fileType == t {
			return true
		}
	}
	return false
}

func (v *DocumentValidator) validateDocumentUpload(_ context.Context, upload models.DocumentUpload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFile, FieldFileType, FieldOriginalFilename}
	}

	for _, f := range fields {
		switch f {
		case FieldFile:
			if upload.Content == nil {
				return ErrMissingFile
			}
			if upload.Size == 0 {
				return ErrEmptyFile
			}
			if v.maxSize > 0 && upload.Size > v.maxSize {
				return ErrFileTooLarge
			}
		case FieldFileType:
			if !isAllowedFileType(upload.ContentType) {
				return ErrUnsupportedFile
			}
		case FieldOriginalFilename:
			if upload.OriginalFilename == "" {
				return ErrMissingFilename
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
