package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an INSERT or UPDATE on the users
	// table fails because the email is already registered to another account.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrCustomerNotFound is returned when a query, update, or delete targets
	// a customer id that does not exist in the database.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrCustomerEmailExists is returned when creating or updating a customer
	// fails on the email uniqueness constraint.
	ErrCustomerEmailExists = errors.New("customer email already exists")

	// ErrDocumentNotFound is returned when a query or delete targets a
	// document id that does not exist in the database.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrFileNotFound is returned by [FileStore.Open] when a document's
	// metadata row references a file that is no longer on disk.
	ErrFileNotFound = errors.New("stored file not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. an empty column set).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
