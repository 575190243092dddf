package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database file path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing token sign key or admin secret code).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidMailConfigs indicates the mailer is enabled without the
	// SMTP settings it needs (host, sender, admin recipient).
	ErrInvalidMailConfigs = errors.New("invalid mail configuration")
)
