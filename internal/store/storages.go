package store

import (
	"context"
	"fmt"

	"github.com/apexglitch/crm/internal/config"
	"github.com/apexglitch/crm/internal/logger"
)

// Storages bundles every persistence backend the application uses: the three
// SQLite-backed repositories plus the filesystem store for uploaded document
// content.
type Storages struct {
	UserRepository     UserRepository
	CustomerRepository CustomerRepository
	DocumentRepository DocumentRepository
	FileStore          FileStore
}

// NewStorages connects to the database, runs pending migrations, prepares
// the upload directory, and wires all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	fileStore, err := NewDocumentFileStore(cfg.Files, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating file store: %w", err)
	}

	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		CustomerRepository: NewCustomerRepository(db, logger),
		DocumentRepository: NewDocumentRepository(db, logger),
		FileStore:          fileStore,
	}, nil
}
