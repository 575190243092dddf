package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/apexglitch/crm/internal/logger"
	"github.com/apexglitch/crm/models"
)

// userRepository is the SQLite-backed implementation of [UserRepository].
// It handles account creation, lookup, and credential updates against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (ID, CreatedAt).
//
// Error handling:
//   - SQLite unique constraint violation → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, createUser, user.Email, user.PasswordHash, user.Role)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: inserting user failed")

		if isUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: reading inserted id")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return r.FindUserByID(ctx, id)
}

// FindUserByEmail retrieves the user record whose email matches the one
// provided.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Any other driver or scan error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByEmail, email)

	if err := row.Scan(&foundUser.ID, &foundUser.Email, &foundUser.PasswordHash, &foundUser.Role, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

// FindUserByID retrieves the user record with the given identifier.
//
// Error handling mirrors [userRepository.FindUserByEmail].
func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByID, id)

	if err := row.Scan(&foundUser.ID, &foundUser.Email, &foundUser.PasswordHash, &foundUser.Role, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

// AdminExists reports whether at least one account with the administrator
// role is present. Used by the bootstrap gate and the public admin-exists
// probe.
func (r *userRepository) AdminExists(ctx context.Context) (bool, error) {
	log := logger.FromContext(ctx)

	var count int
	row := r.db.QueryRowContext(ctx, countAdmins, models.RoleAdmin)
	if err := row.Scan(&count); err != nil {
		log.Err(err).Str("func", "*userRepository.AdminExists").Msg("error: counting admins")
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	return count > 0, nil
}

// UpdatePassword replaces the stored password hash of the given account.
//
// Returns [ErrNoUserWasFound] when no row matches id.
func (r *userRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateUserPassword, passwordHash, id)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdatePassword").Msg("error: updating password")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// UpdateEmail replaces the email of the given account.
//
// Error handling:
//   - SQLite unique constraint violation → [ErrEmailAlreadyExists].
//   - No row matches id → [ErrNoUserWasFound].
func (r *userRepository) UpdateEmail(ctx context.Context, id int64, email string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateUserEmail, email, id)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateEmail").Msg("error: updating email")

		if isUniqueViolation(err) {
			return ErrEmailAlreadyExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}
