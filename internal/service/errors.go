package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrSecretCodeMismatch = errors.New("invalid secret code")
	ErrAdminAlreadyExists = errors.New("admin registration is disabled: an admin already exists")
	ErrNotAllowed         = errors.New("operation requires the admin role")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
