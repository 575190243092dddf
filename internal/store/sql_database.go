package store

import (
	"database/sql"

	"github.com/apexglitch/crm/internal/logger"
	"github.com/apexglitch/crm/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
