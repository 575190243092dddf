package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/apexglitch/crm/internal/logger"
	"github.com/apexglitch/crm/models"
)

// customerRepository is the SQLite-backed implementation of
// [CustomerRepository]. It executes all customer CRUD operations against the
// "customers" table.
//
// INSERT and UPDATE statements are generated from the client-supplied field
// set (see sql_customer_queries.go), so the column list of the statement is
// exactly the validated key set of the request. Reads materialize rows
// dynamically from the result-set column list, which keeps the repository in
// lockstep with the wide customers schema without a hand-maintained scan
// list.
type customerRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCustomerRepository constructs a [CustomerRepository] backed by the
// provided database connection and logger.
func NewCustomerRepository(db *DB, logger *logger.Logger) CustomerRepository {
	logger.Debug().Msg("creating customer repository")
	return &customerRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a customer row built from exactly the supplied field set and
// returns the canonical persisted record.
//
// Error handling:
//   - unknown column in fields → wrapped [ErrBuildingSQLQuery]
//   - email uniqueness violation → [ErrCustomerEmailExists]
//   - any other driver-level error → wrapped as "unexpected DB error"
func (r *customerRepository) Create(ctx context.Context, fields models.CustomerFields) (models.Customer, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertCustomerQuery(fields)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.Create").Msg("failed to build insert query")
		return nil, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.Create").Msg("error: inserting customer failed")

		if isUniqueViolation(err) {
			return nil, ErrCustomerEmailExists
		}
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.Create").Msg("error: reading inserted id")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return r.Get(ctx, id)
}

// Update overwrites exactly the supplied columns of the row identified by id
// and returns the resulting record. Columns absent from fields keep their
// stored values.
//
// Error handling:
//   - no row matches id → [ErrCustomerNotFound]
//   - email uniqueness violation → [ErrCustomerEmailExists]
func (r *customerRepository) Update(ctx context.Context, id int64, fields models.CustomerFields) (models.Customer, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateCustomerQuery(id, fields)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.Update").Msg("failed to build update query")
		return nil, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.Update").Int64("id", id).Msg("error: updating customer failed")

		if isUniqueViolation(err) {
			return nil, ErrCustomerEmailExists
		}
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return nil, ErrCustomerNotFound
	}

	return r.Get(ctx, id)
}

// Get retrieves a single customer row by id.
//
// Returns [ErrCustomerNotFound] when no row matches.
func (r *customerRepository) Get(ctx context.Context, id int64) (models.Customer, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getCustomerByID, id)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.Get").Int64("id", id).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	customers, err := scanCustomerRows(rows)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.Get").Int64("id", id).Msg("failed to scan customer row")
		return nil, err
	}
	if len(customers) == 0 {
		return nil, ErrCustomerNotFound
	}

	return customers[0], nil
}

// List returns all customers ordered by creation timestamp, most recent
// first.
func (r *customerRepository) List(ctx context.Context) ([]models.Customer, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllCustomers)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.List").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	customers, err := scanCustomerRows(rows)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.List").Msg("failed to scan customer rows")
		return nil, err
	}

	return customers, nil
}

// Delete removes the customer row with the given id. The documents table's
// foreign-key cascade removes the customer's document rows in the same
// statement; removing the stored files is the caller's responsibility.
//
// Returns [ErrCustomerNotFound] when no row matches, on first and every
// subsequent call.
func (r *customerRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteCustomer, id)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.Delete").Int64("id", id).Msg("error: deleting customer failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

// scanCustomerRows materializes every row of the result set as a
// [models.Customer] keyed by column name. Byte-slice values (SQLite TEXT
// under the hood) are normalized to string so records marshal cleanly to
// JSON.
func scanCustomerRows(rows *sql.Rows) ([]models.Customer, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	customers := make([]models.Customer, 0, 20)

	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}

		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		customer := make(models.Customer, len(columns))
		for i, column := range columns {
			customer[column] = normalizeValue(values[i])
		}

		customers = append(customers, customer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return customers, nil
}

func normalizeValue(value any) any {
	switch v := value.(type) {
	case []byte:
		return string(v)
	case time.Time:
		return v
	default:
		return v
	}
}
