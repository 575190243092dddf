// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Apex Glitch

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the CRM
// backend. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token parameters and the
	// admin bootstrap secret.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for all persistence backends: the SQLite
	// database file and the document upload directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Mail holds SMTP settings for outbound notification email. When
	// Mail.Enabled is false the server runs with notifications disabled.
	Mail Mail `envPrefix:"MAIL_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control security and
// token lifecycle.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT session
	// tokens. Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session token remains valid after
	// issuance. Defaults to 24h.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// AdminSecretCode is the shared secret gating admin creation: the
	// unauthenticated bootstrap registration and the authenticated
	// create-admin operation both require it. Injected here rather than read
	// from the process environment at check time so tests can run with
	// different values.
	// Env: APP_ADMIN_SECRET_CODE
	AdminSecretCode string `env:"ADMIN_SECRET_CODE"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the file-system storage settings for uploaded documents.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the SQLite database backend.
type DB struct {
	// DSN is the path of the SQLite database file (e.g. "crm.db"). The file
	// is created on first start if it does not exist.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system settings for the document upload store.
type Files struct {
	// UploadDir is the directory where uploaded document files are stored
	// and served from. Created on start if absent. No other component writes
	// to this directory.
	// Env: STORAGE_FILES_UPLOAD_DIR
	UploadDir string `env:"UPLOAD_DIR"`

	// MaxUploadSize is the maximum accepted upload size in bytes.
	// Defaults to 10 MiB.
	// Env: STORAGE_FILES_MAX_UPLOAD_SIZE
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`
}

// Server holds network and timeout settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:3001").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Mail holds SMTP transport settings for the notification mailer.
type Mail struct {
	// Enabled switches outbound notification email on. When false the
	// application wires a no-op notifier instead of the SMTP mailer.
	// Env: MAIL_ENABLED
	Enabled bool `env:"ENABLED"`

	// Host is the SMTP server hostname.
	// Env: MAIL_HOST
	Host string `env:"HOST"`

	// Port is the SMTP server port (e.g. 587).
	// Env: MAIL_PORT
	Port int `env:"PORT"`

	// Username authenticates against the SMTP server.
	// Env: MAIL_USERNAME
	Username string `env:"USERNAME"`

	// Password authenticates against the SMTP server. Must be kept
	// confidential.
	// Env: MAIL_PASSWORD
	Password string `env:"PASSWORD"`

	// From is the sender address of every notification email.
	// Env: MAIL_FROM
	From string `env:"FROM"`

	// AdminEmail is the recipient of customer-created and document-uploaded
	// notifications.
	// Env: MAIL_ADMIN_EMAIL
	AdminEmail string `env:"ADMIN_EMAIL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
