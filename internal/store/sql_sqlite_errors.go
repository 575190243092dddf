package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// sqliteErrorCode extracts the extended SQLite result code from a driver
// error. Returns 0 when err is nil or not a SQLite driver error.
//
// The extended code distinguishes which constraint failed, e.g.
// [sqlite3.ErrConstraintUnique] for a UNIQUE violation and
// [sqlite3.ErrConstraintForeignKey] for a broken reference. See
// https://www.sqlite.org/rescode.html for the full list of result codes.
func sqliteErrorCode(err error) sqlite3.ErrNoExtended {
	var sqliteErr sqlite3.Error
	// if the sqlite driver returns error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode
	}

	return 0
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint
// failure.
func isUniqueViolation(err error) bool {
	return sqliteErrorCode(err) == sqlite3.ErrConstraintUnique
}
