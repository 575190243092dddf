package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/apexglitch/crm/internal/logger"
	"github.com/apexglitch/crm/models"
)

// documentRepository is the SQLite-backed implementation of
// [DocumentRepository]. It owns the metadata rows of uploaded files in the
// "documents" table; the binary content itself is owned by [FileStore].
type documentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDocumentRepository constructs a [DocumentRepository] backed by the
// provided database connection and logger.
func NewDocumentRepository(db *DB, logger *logger.Logger) DocumentRepository {
	logger.Debug().Msg("creating document repository")
	return &documentRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a document metadata row and returns the canonical record
// with server-assigned fields (ID, UploadedAt).
func (r *documentRepository) Create(ctx context.Context, document models.Document) (models.Document, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, createDocument,
		document.CustomerID,
		document.Filename,
		document.OriginalFilename,
		document.FilePath,
		document.FileSize,
		document.FileType,
		document.Category,
		document.Description,
	)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.Create").Int64("customer_id", document.CustomerID).Msg("error: inserting document failed")
		return models.Document{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.Create").Msg("error: reading inserted id")
		return models.Document{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return r.Get(ctx, id)
}

// Get retrieves a single document metadata row by id.
//
// Returns [ErrDocumentNotFound] when no row matches.
func (r *documentRepository) Get(ctx context.Context, id int64) (models.Document, error) {
	log := logger.FromContext(ctx)

	var document models.Document
	row := r.db.QueryRowContext(ctx, getDocumentByID, id)

	if err := scanDocument(row, &document); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Document{}, ErrDocumentNotFound
		}
		log.Err(err).Str("func", "*documentRepository.Get").Int64("id", id).Msg("error: scanning error")
		return models.Document{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return document, nil
}

// ListByCustomer returns all documents belonging to the given customer,
// ordered by upload timestamp, most recent first.
func (r *documentRepository) ListByCustomer(ctx context.Context, customerID int64) ([]models.Document, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getDocumentsByCustomer, customerID)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.ListByCustomer").Int64("customer_id", customerID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	documents := make([]models.Document, 0, 10)
	for rows.Next() {
		var document models.Document
		if err := scanDocument(rows, &document); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		documents = append(documents, document)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return documents, nil
}

// ListPathsByCustomer returns the stored file paths of every document
// belonging to the given customer. The customer delete cascade uses this
// list to remove the underlying files after the rows are gone.
func (r *documentRepository) ListPathsByCustomer(ctx context.Context, customerID int64) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getDocumentPathsByCustomer, customerID)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.ListPathsByCustomer").Int64("customer_id", customerID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	paths := make([]string, 0, 10)
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		paths = append(paths, path)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return paths, nil
}

// Delete removes the document metadata row with the given id.
//
// Returns [ErrDocumentNotFound] when no row matches.
func (r *documentRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteDocument, id)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.Delete").Int64("id", id).Msg("error: deleting document failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrDocumentNotFound
	}

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner, document *models.Document) error {
	return row.Scan(
		&document.ID,
		&document.CustomerID,
		&document.Filename,
		&document.OriginalFilename,
		&document.FilePath,
		&document.FileSize,
		&document.FileType,
		&document.Category,
		&document.Description,
		&document.UploadedAt,
	)
}
