package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/apexglitch/crm/internal/config"
	"github.com/apexglitch/crm/internal/logger"
	"github.com/apexglitch/crm/internal/store"
	"github.com/apexglitch/crm/internal/utils"
	"github.com/apexglitch/crm/models"
)

// bcryptCost is the work factor for password hashing.
const bcryptCost = 10

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification, credential
// updates, and the JWT token lifecycle using a UserRepository for
// persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// adminSecretCode gates admin account creation: both the bootstrap
	// registration and CreateAdmin require the caller to present it.
	adminSecretCode string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:  userRepository,
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		tokenDuration:   cfg.TokenDuration,
		adminSecretCode: cfg.AdminSecretCode,
		logger:          logger,
	}
}

// BootstrapRegister creates the first administrator account.
//
// The operation is gated twice: the caller must present the configured
// secret code, and no administrator may exist yet. Once an admin exists this
// endpoint is permanently closed; additional admins are created through
// CreateAdmin by an authenticated admin.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrSecretCodeMismatch if the secret code is wrong.
//   - ErrAdminAlreadyExists if an administrator is already registered.
//   - store.ErrEmailAlreadyExists if the email is taken.
func (a *authService) BootstrapRegister(ctx context.Context, email, password, secretCode string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	if !a.secretCodeMatches(secretCode) {
		log.Warn().Str("email", email).Msg("bootstrap registration with wrong secret code")
		return models.User{}, ErrSecretCodeMismatch
	}

	adminExists, err := a.userRepository.AdminExists(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("admin lookup failed: %w", err)
	}
	if adminExists {
		log.Warn().Str("email", email).Msg("bootstrap registration refused: admin already exists")
		return models.User{}, ErrAdminAlreadyExists
	}

	return a.createUser(ctx, email, password, models.RoleAdmin)
}

// RegisterUser creates a regular (non-admin) account. Open to
// unauthenticated callers and not gated by the secret code.
func (a *authService) RegisterUser(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	return a.createUser(ctx, email, password, models.RoleUser)
}

// Login authenticates an account by email and password.
//
// Returns the account record or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - A wrapped storage error if the lookup fails (see
//     store.ErrNoUserWasFound).
//   - ErrWrongPassword if the password does not match the stored hash.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(password)); err != nil {
		log.Warn().Int64("id", foundUser.ID).Str("email", foundUser.Email).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim plus the user's email and role
// as custom claims, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature
// and the issuer claim. Any validation failure (expired, wrong issuer,
// malformed) is normalised to ErrTokenIsExpiredOrInvalid so that callers do
// not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// CreateAdmin creates an additional administrator account on behalf of an
// already authenticated administrator.
//
// Returns the persisted user or:
//   - ErrNotAllowed if the principal is not an admin.
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrSecretCodeMismatch if the secret code is wrong.
//   - store.ErrEmailAlreadyExists if the email is taken.
func (a *authService) CreateAdmin(ctx context.Context, principal models.Principal, email, password, secretCode string) (models.User, error) {
	log := logger.FromContext(ctx)

	if !principal.IsAdmin() {
		log.Warn().Int64("id", principal.UserID).Str("role", principal.Role).Msg("non-admin attempted to create an admin")
		return models.User{}, ErrNotAllowed
	}

	if email == "" || password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	if !a.secretCodeMatches(secretCode) {
		log.Warn().Int64("id", principal.UserID).Msg("admin creation with wrong secret code")
		return models.User{}, ErrSecretCodeMismatch
	}

	return a.createUser(ctx, email, password, models.RoleAdmin)
}

// ChangePassword replaces the principal's password after verifying the
// current one.
//
// Returns:
//   - ErrInvalidDataProvided if either password is empty.
//   - ErrWrongPassword if currentPassword does not match the stored hash.
func (a *authService) ChangePassword(ctx context.Context, principal models.Principal, currentPassword, newPassword string) error {
	log := logger.FromContext(ctx)

	if currentPassword == "" || newPassword == "" {
		return ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByID(ctx, principal.UserID)
	if err != nil {
		log.Err(err).Int64("id", principal.UserID).Msg("user search by id failed")
		return fmt.Errorf("user search by id failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(currentPassword)); err != nil {
		log.Warn().Int64("id", principal.UserID).Msg("current password is incorrect")
		return ErrWrongPassword
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err := a.userRepository.UpdatePassword(ctx, principal.UserID, string(newHash)); err != nil {
		log.Err(err).Int64("id", principal.UserID).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	return nil
}

// ChangeEmail replaces the principal's account email.
//
// Returns:
//   - ErrInvalidDataProvided if newEmail is empty.
//   - store.ErrEmailAlreadyExists if the email is taken by another account.
func (a *authService) ChangeEmail(ctx context.Context, principal models.Principal, newEmail string) error {
	log := logger.FromContext(ctx)

	if newEmail == "" {
		return ErrInvalidDataProvided
	}

	if err := a.userRepository.UpdateEmail(ctx, principal.UserID, newEmail); err != nil {
		log.Err(err).Int64("id", principal.UserID).Msg("email update failed")
		return fmt.Errorf("email update failed: %w", err)
	}

	return nil
}

// AdminExists reports whether an administrator account is registered.
func (a *authService) AdminExists(ctx context.Context) (bool, error) {
	exists, err := a.userRepository.AdminExists(ctx)
	if err != nil {
		return false, fmt.Errorf("admin lookup failed: %w", err)
	}

	return exists, nil
}

func (a *authService) createUser(ctx context.Context, email, password, role string) (models.User, error) {
	log := logger.FromContext(ctx)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	createdUser, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		log.Err(err).Str("email", email).Str("role", role).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return createdUser, nil
}

func (a *authService) secretCodeMatches(secretCode string) bool {
	if secretCode == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(secretCode), []byte(a.adminSecretCode)) == 1
}
