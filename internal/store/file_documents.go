package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/apexglitch/crm/internal/config"
	"github.com/apexglitch/crm/internal/logger"
)

// documentFileStore is the filesystem implementation of [FileStore]. It
// persists uploaded document content under a single dedicated directory that
// no other component writes to; the database only ever references these
// files by path.
type documentFileStore struct {
	dir    string
	logger *logger.Logger
}

// NewDocumentFileStore constructs a [FileStore] rooted at the configured
// upload directory, creating the directory if it does not exist.
func NewDocumentFileStore(cfg config.Files, logger *logger.Logger) (FileStore, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		logger.Err(err).Str("dir", cfg.UploadDir).Msg("error creating upload directory")
		return nil, fmt.Errorf("error creating upload directory: %w", err)
	}

	logger.Debug().Str("dir", cfg.UploadDir).Msg("creating document file store")
	return &documentFileStore{
		dir:    cfg.UploadDir,
		logger: logger,
	}, nil
}

// Save writes content to a file named filename inside the upload directory
// and returns the stored path and the number of bytes written.
//
// The filename must already be server-generated and collision-resistant;
// Save never derives it from client input.
func (s *documentFileStore) Save(ctx context.Context, filename string, content io.Reader) (string, int64, error) {
	log := logger.FromContext(ctx)

	path := filepath.Join(s.dir, filename)

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		log.Err(err).Str("func", "*documentFileStore.Save").Str("path", path).Msg("error creating file")
		return "", 0, fmt.Errorf("error creating file: %w", err)
	}

	written, err := io.Copy(file, content)
	if err != nil {
		file.Close()
		os.Remove(path)
		log.Err(err).Str("func", "*documentFileStore.Save").Str("path", path).Msg("error writing file")
		return "", 0, fmt.Errorf("error writing file: %w", err)
	}

	if err := file.Close(); err != nil {
		os.Remove(path)
		return "", 0, fmt.Errorf("error closing file: %w", err)
	}

	return path, written, nil
}

// Open returns a reader over the stored file at path.
//
// Returns [ErrFileNotFound] when the file is absent from disk.
func (s *documentFileStore) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	log := logger.FromContext(ctx)

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFileNotFound
		}
		log.Err(err).Str("func", "*documentFileStore.Open").Str("path", path).Msg("error opening file")
		return nil, fmt.Errorf("error opening file: %w", err)
	}

	return file, nil
}

// Remove deletes the stored file at path. A file that is already absent is
// not an error: the metadata row is authoritative and deletion must proceed
// even when the blob is gone.
func (s *documentFileStore) Remove(ctx context.Context, path string) error {
	log := logger.FromContext(ctx)

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			log.Warn().Str("path", path).Msg("stored file already absent, skipping")
			return nil
		}
		log.Err(err).Str("func", "*documentFileStore.Remove").Str("path", path).Msg("error removing file")
		return fmt.Errorf("error removing file: %w", err)
	}

	return nil
}
