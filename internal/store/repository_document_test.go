package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/apexglitch/crm/internal/logger"
	"github.com/apexglitch/crm/models"
)

func newTestDocumentRepo(t *testing.T) (*documentRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &documentRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

var documentColumns = []string{
	"id", "customer_id", "filename", "original_filename", "file_path",
	"file_size", "file_type", "category", "description", "uploaded_at",
}

func documentRow(id, customerID int64) *sqlmock.Rows {
	return sqlmock.
		NewRows(documentColumns).
		AddRow(id, customerID, "1693-abc.pdf", "contract.pdf", "uploads/1693-abc.pdf",
			2048, "application/pdf", "contracts", "signed copy", time.Now())
}

func TestDocumentCreate_Success(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	document := models.Document{
		CustomerID:       7,
		Filename:         "1693-abc.pdf",
		OriginalFilename: "contract.pdf",
		FilePath:         "uploads/1693-abc.pdf",
		FileSize:         2048,
		FileType:         "application/pdf",
		Category:         "contracts",
		Description:      "signed copy",
	}

	mock.ExpectExec("INSERT INTO documents").
		WithArgs(document.CustomerID, document.Filename, document.OriginalFilename,
			document.FilePath, document.FileSize, document.FileType,
			document.Category, document.Description).
		WillReturnResult(sqlmock.NewResult(3, 1))

	mock.ExpectQuery("SELECT id, customer_id").
		WithArgs(int64(3)).
		WillReturnRows(documentRow(3, 7))

	created, err := repo.Create(context.Background(), document)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 3 {
		t.Errorf("expected id 3, got %d", created.ID)
	}
	if created.CustomerID != 7 {
		t.Errorf("expected customer id 7, got %d", created.CustomerID)
	}
}

func TestDocumentCreate_DBError(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO documents").
		WillReturnError(errors.New("disk I/O error"))

	_, err := repo.Create(context.Background(), models.Document{CustomerID: 7})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestDocumentGet_NotFound(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, customer_id").
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), 42)
	if !errors.Is(err, ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
}

func TestDocumentListByCustomer(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(documentColumns).
		AddRow(2, 7, "b.pdf", "b.pdf", "uploads/b.pdf", 10, "application/pdf", "", "", time.Now()).
		AddRow(1, 7, "a.pdf", "a.pdf", "uploads/a.pdf", 10, "application/pdf", "", "", time.Now())

	mock.ExpectQuery("SELECT id, customer_id").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	documents, err := repo.ListByCustomer(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(documents) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(documents))
	}
	if documents[0].ID != 2 {
		t.Errorf("expected most recent document first, got id %d", documents[0].ID)
	}
}

func TestDocumentListByCustomer_Empty(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, customer_id").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(documentColumns))

	documents, err := repo.ListByCustomer(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(documents) != 0 {
		t.Errorf("expected empty list, got %d", len(documents))
	}
}

func TestDocumentListPathsByCustomer(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"file_path"}).
		AddRow("uploads/a.pdf").
		AddRow("uploads/b.pdf")

	mock.ExpectQuery("SELECT file_path").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	paths, err := repo.ListPathsByCustomer(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 paths, got %d", len(paths))
	}
	if paths[0] != "uploads/a.pdf" {
		t.Errorf("unexpected first path %s", paths[0])
	}
}

func TestDocumentDelete_Success(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM documents").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDocumentDelete_NotFound(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM documents").
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 42)
	if !errors.Is(err, ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
}
