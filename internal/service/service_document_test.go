package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apexglitch/crm/internal/logger"
	"github.com/apexglitch/crm/internal/store"
	"github.com/apexglitch/crm/models"
)

const testUploadLimit = 10 << 20

func newTestDocumentService(
	documents *mockDocumentRepository,
	customers *mockCustomerRepository,
	files *mockFileStore,
	notifier *mockNotifier,
) DocumentService {
	return NewDocumentService(documents, customers, files, testUploadLimit, notifier, logger.NewLogger("test"))
}

func validUpload() models.DocumentUpload {
	return models.DocumentUpload{
		CustomerID:       7,
		OriginalFilename: "contract.pdf",
		Size:             2048,
		ContentType:      "application/pdf",
		Category:         "contracts",
		Description:      "signed copy",
		Content:          strings.NewReader("content"),
	}
}

func TestDocumentServiceUpload_Success(t *testing.T) {
	var saved models.Document
	documents := &mockDocumentRepository{
		createFn: func(ctx context.Context, document models.Document) (models.Document, error) {
			saved = document
			document.ID = 3
			return document, nil
		},
	}
	files := &mockFileStore{
		saveFn: func(ctx context.Context, filename string, content io.Reader) (string, int64, error) {
			return "uploads/" + filename, 2048, nil
		},
	}
	notifier := &mockNotifier{}
	s := newTestDocumentService(documents, &mockCustomerRepository{}, files, notifier)

	document, err := s.Upload(context.Background(), validUpload())
	require.NoError(t, err)

	assert.Equal(t, int64(3), document.ID)
	assert.Equal(t, "contract.pdf", saved.OriginalFilename)
	assert.NotEqual(t, "contract.pdf", saved.Filename)
	assert.True(t, strings.HasSuffix(saved.Filename, ".pdf"))
	assert.Equal(t, int64(2048), saved.FileSize)
	assert.Equal(t, 1, notifier.documentUploadedCalls)
}

func TestDocumentServiceUpload_InvalidUpload(t *testing.T) {
	files := &mockFileStore{}
	s := newTestDocumentService(&mockDocumentRepository{}, &mockCustomerRepository{}, files, &mockNotifier{})

	tests := []struct {
		name   string
		mutate func(*models.DocumentUpload)
	}{
		{name: "no content", mutate: func(u *models.DocumentUpload) { u.Content = nil }},
		{name: "empty file", mutate: func(u *models.DocumentUpload) { u.Size = 0 }},
		{name: "too large", mutate: func(u *models.DocumentUpload) { u.Size = testUploadLimit + 1 }},
		{name: "bad type", mutate: func(u *models.DocumentUpload) { u.ContentType = "application/x-sh" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upload := validUpload()
			tt.mutate(&upload)

			_, err := s.Upload(context.Background(), upload)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestDocumentServiceUpload_UnknownCustomer(t *testing.T) {
	customers := &mockCustomerRepository{
		getFn: func(ctx context.Context, id int64) (models.Customer, error) {
			return nil, store.ErrCustomerNotFound
		},
	}
	files := &mockFileStore{}
	s := newTestDocumentService(&mockDocumentRepository{}, customers, files, &mockNotifier{})

	_, err := s.Upload(context.Background(), validUpload())
	assert.ErrorIs(t, err, store.ErrCustomerNotFound)
	assert.Empty(t, files.removed)
}

func TestDocumentServiceUpload_MetadataFailureRemovesFile(t *testing.T) {
	documents := &mockDocumentRepository{
		createFn: func(ctx context.Context, document models.Document) (models.Document, error) {
			return models.Document{}, errors.New("disk I/O error")
		},
	}
	files := &mockFileStore{
		saveFn: func(ctx context.Context, filename string, content io.Reader) (string, int64, error) {
			return "uploads/" + filename, 2048, nil
		},
	}
	notifier := &mockNotifier{}
	s := newTestDocumentService(documents, &mockCustomerRepository{}, files, notifier)

	_, err := s.Upload(context.Background(), validUpload())
	require.Error(t, err)

	require.Len(t, files.removed, 1)
	assert.Zero(t, notifier.documentUploadedCalls)
}

func TestDocumentServiceGet_NotFound(t *testing.T) {
	documents := &mockDocumentRepository{
		getFn: func(ctx context.Context, id int64) (models.Document, error) {
			return models.Document{}, store.ErrDocumentNotFound
		},
	}
	s := newTestDocumentService(documents, &mockCustomerRepository{}, &mockFileStore{}, &mockNotifier{})

	_, err := s.Get(context.Background(), 42)
	assert.ErrorIs(t, err, store.ErrDocumentNotFound)
}

func TestDocumentServiceListByCustomer(t *testing.T) {
	documents := &mockDocumentRepository{
		listFn: func(ctx context.Context, customerID int64) ([]models.Document, error) {
			return []models.Document{{ID: 2}, {ID: 1}}, nil
		},
	}
	s := newTestDocumentService(documents, &mockCustomerRepository{}, &mockFileStore{}, &mockNotifier{})

	list, err := s.ListByCustomer(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestDocumentServiceListByCustomer_UnknownCustomer(t *testing.T) {
	customers := &mockCustomerRepository{
		getFn: func(ctx context.Context, id int64) (models.Customer, error) {
			return nil, store.ErrCustomerNotFound
		},
	}
	s := newTestDocumentService(&mockDocumentRepository{}, customers, &mockFileStore{}, &mockNotifier{})

	_, err := s.ListByCustomer(context.Background(), 42)
	assert.ErrorIs(t, err, store.ErrCustomerNotFound)
}

func TestDocumentServiceDelete_RemovesFileThenRow(t *testing.T) {
	var rowDeleted bool
	documents := &mockDocumentRepository{
		getFn: func(ctx context.Context, id int64) (models.Document, error) {
			return models.Document{ID: id, FilePath: "uploads/a.pdf"}, nil
		},
		deleteFn: func(ctx context.Context, id int64) error {
			rowDeleted = true
			return nil
		},
	}
	files := &mockFileStore{}
	s := newTestDocumentService(documents, &mockCustomerRepository{}, files, &mockNotifier{})

	require.NoError(t, s.Delete(context.Background(), 3))
	assert.Equal(t, []string{"uploads/a.pdf"}, files.removed)
	assert.True(t, rowDeleted)
}

func TestDocumentServiceDelete_MissingFileStillDeletesRow(t *testing.T) {
	var rowDeleted bool
	documents := &mockDocumentRepository{
		getFn: func(ctx context.Context, id int64) (models.Document, error) {
			return models.Document{ID: id, FilePath: "uploads/gone.pdf"}, nil
		},
		deleteFn: func(ctx context.Context, id int64) error {
			rowDeleted = true
			return nil
		},
	}
	files := &mockFileStore{
		removeFn: func(ctx context.Context, path string) error {
			return errors.New("permission denied")
		},
	}
	s := newTestDocumentService(documents, &mockCustomerRepository{}, files, &mockNotifier{})

	require.NoError(t, s.Delete(context.Background(), 3))
	assert.True(t, rowDeleted)
}

func TestDocumentServiceDownload_Success(t *testing.T) {
	documents := &mockDocumentRepository{
		getFn: func(ctx context.Context, id int64) (models.Document, error) {
			return models.Document{ID: id, FilePath: "uploads/a.pdf", OriginalFilename: "contract.pdf"}, nil
		},
	}
	files := &mockFileStore{
		openFn: func(ctx context.Context, path string) (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader("file content")), nil
		},
	}
	s := newTestDocumentService(documents, &mockCustomerRepository{}, files, &mockNotifier{})

	document, reader, err := s.Download(context.Background(), 3)
	require.NoError(t, err)
	defer reader.Close()

	assert.Equal(t, "contract.pdf", document.OriginalFilename)

	content, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "file content", string(content))
}

func TestDocumentServiceDownload_FileMissing(t *testing.T) {
	documents := &mockDocumentRepository{
		getFn: func(ctx context.Context, id int64) (models.Document, error) {
			return models.Document{ID: id, FilePath: "uploads/gone.pdf"}, nil
		},
	}
	files := &mockFileStore{
		openFn: func(ctx context.Context, path string) (io.ReadCloser, error) {
			return nil, store.ErrFileNotFound
		},
	}
	s := newTestDocumentService(documents, &mockCustomerRepository{}, files, &mockNotifier{})

	_, _, err := s.Download(context.Background(), 3)
	assert.ErrorIs(t, err, store.ErrFileNotFound)
}

func TestDocumentServiceDownload_RowMissing(t *testing.T) {
	documents := &mockDocumentRepository{
		getFn: func(ctx context.Context, id int64) (models.Document, error) {
			return models.Document{}, store.ErrDocumentNotFound
		},
	}
	s := newTestDocumentService(documents, &mockCustomerRepository{}, &mockFileStore{}, &mockNotifier{})

	_, _, err := s.Download(context.Background(), 42)
	assert.ErrorIs(t, err, store.ErrDocumentNotFound)
}
