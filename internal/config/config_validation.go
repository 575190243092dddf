// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Apex Glitch

package config

import "time"

// Fallbacks applied to optional settings that have sane universal values.
// Security-sensitive settings (sign key, admin secret) have no fallback and
// must be provided explicitly.
const (
	DefaultHTTPAddress    = ":3001"
	DefaultTokenIssuer    = "crm-server"
	DefaultTokenDuration  = 24 * time.Hour
	DefaultRequestTimeout = 30 * time.Second
	DefaultUploadDir      = "uploads"
	DefaultMaxUploadSize  = 10 << 20 // 10 MiB
)

// applyDefaults fills zero-valued optional fields of the merged configuration
// with their documented defaults.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.Storage.Files.UploadDir == "" {
		cfg.Storage.Files.UploadDir = DefaultUploadDir
	}
	if cfg.Storage.Files.MaxUploadSize == 0 {
		cfg.Storage.Files.MaxUploadSize = DefaultMaxUploadSize
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive sentinel error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.AdminSecretCode == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Mail.Enabled && (cfg.Mail.Host == "" || cfg.Mail.From == "" || cfg.Mail.AdminEmail == "") {
		return ErrInvalidMailConfigs
	}

	return nil
}
