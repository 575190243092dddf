package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/apexglitch/crm/internal/logger"
	"github.com/apexglitch/crm/internal/notify"
	"github.com/apexglitch/crm/internal/store"
	"github.com/apexglitch/crm/internal/utils"
	"github.com/apexglitch/crm/internal/validators"
	"github.com/apexglitch/crm/models"
)

// documentService is the concrete implementation of DocumentService. It
// coordinates the two halves of a document: the metadata row owned by the
// DocumentRepository and the binary content owned by the FileStore.
type documentService struct {
	documentRepository store.DocumentRepository
	customerRepository store.CustomerRepository
	fileStore          store.FileStore
	validator          validators.Validator
	filenames          *utils.FilenameGenerator
	notifier           notify.Notifier
	logger             *logger.Logger
}

func NewDocumentService(
	documentRepository store.DocumentRepository,
	customerRepository store.CustomerRepository,
	fileStore store.FileStore,
	maxUploadSize int64,
	notifier notify.Notifier,
	logger *logger.Logger,
) DocumentService {
	return &documentService{
		documentRepository: documentRepository,
		customerRepository: customerRepository,
		fileStore:          fileStore,
		validator:          validators.NewDocumentValidator(maxUploadSize),
		filenames:          utils.NewFilenameGenerator(),
		notifier:           notifier,
		logger:             logger,
	}
}

// Upload validates the upload, verifies the owning customer exists, stores
// the content under a server-generated filename, and persists the metadata
// row. The uploaded notification fires after both writes succeed.
//
// A failure after the file is written removes the stored file again so that
// no orphaned content accumulates in the upload directory.
func (s *documentService) Upload(ctx context.Context, upload models.DocumentUpload) (models.Document, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, upload); err != nil {
		log.Error().Err(err).Int64("customer_id", upload.CustomerID).Msg("document upload validation failed")
		return models.Document{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	customer, err := s.customerRepository.Get(ctx, upload.CustomerID)
	if err != nil {
		log.Err(err).Int64("customer_id", upload.CustomerID).Msg("customer lookup for upload failed")
		return models.Document{}, fmt.Errorf("customer lookup for upload failed: %w", err)
	}

	filename := s.filenames.Generate(upload.OriginalFilename)

	path, size, err := s.fileStore.Save(ctx, filename, upload.Content)
	if err != nil {
		log.Err(err).Str("filename", filename).Msg("storing uploaded file failed")
		return models.Document{}, fmt.Errorf("storing uploaded file failed: %w", err)
	}

	document, err := s.documentRepository.Create(ctx, models.Document{
		CustomerID:       upload.CustomerID,
		Filename:         filename,
		OriginalFilename: upload.OriginalFilename,
		FilePath:         path,
		FileSize:         size,
		FileType:         upload.ContentType,
		Category:         upload.Category,
		Description:      upload.Description,
	})
	if err != nil {
		log.Err(err).Str("filename", filename).Msg("document creation ended with error")

		if removeErr := s.fileStore.Remove(ctx, path); removeErr != nil {
			log.Warn().Err(removeErr).Str("path", path).Msg("removing orphaned file failed")
		}
		return models.Document{}, fmt.Errorf("document creation ended with error: %w", err)
	}

	if err := s.notifier.DocumentUploaded(ctx, customer, document); err != nil {
		log.Warn().Err(err).Int64("id", document.ID).Msg("document uploaded notification failed")
	}

	return document, nil
}

// Get returns a single document metadata record by id.
func (s *documentService) Get(ctx context.Context, id int64) (models.Document, error) {
	document, err := s.documentRepository.Get(ctx, id)
	if err != nil {
		return models.Document{}, fmt.Errorf("document lookup failed: %w", err)
	}

	return document, nil
}

// ListByCustomer returns all documents of a customer, most recent first.
// The customer must exist; listing an unknown customer is an error rather
// than an empty list.
func (s *documentService) ListByCustomer(ctx context.Context, customerID int64) ([]models.Document, error) {
	if _, err := s.customerRepository.Get(ctx, customerID); err != nil {
		return nil, fmt.Errorf("customer lookup failed: %w", err)
	}

	documents, err := s.documentRepository.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("document listing failed: %w", err)
	}

	return documents, nil
}

// Delete removes a document's stored file and then its metadata row. A file
// that is already absent does not block the row deletion.
func (s *documentService) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	document, err := s.documentRepository.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("document lookup failed: %w", err)
	}

	if err := s.fileStore.Remove(ctx, document.FilePath); err != nil {
		log.Warn().Err(err).Str("path", document.FilePath).Msg("removing stored file failed")
	}

	if err := s.documentRepository.Delete(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("document deletion ended with error")
		return fmt.Errorf("document deletion ended with error: %w", err)
	}

	return nil
}

// Download returns the metadata record and an open reader over the stored
// content. A metadata row whose file has vanished from disk yields
// store.ErrFileNotFound.
func (s *documentService) Download(ctx context.Context, id int64) (models.Document, io.ReadCloser, error) {
	log := logger.FromContext(ctx)

	document, err := s.documentRepository.Get(ctx, id)
	if err != nil {
		return models.Document{}, nil, fmt.Errorf("document lookup failed: %w", err)
	}

	content, err := s.fileStore.Open(ctx, document.FilePath)
	if err != nil {
		if errors.Is(err, store.ErrFileNotFound) {
			log.Warn().Int64("id", id).Str("path", document.FilePath).Msg("stored file missing for download")
		}
		return models.Document{}, nil, fmt.Errorf("opening stored file failed: %w", err)
	}

	return document, content, nil
}
