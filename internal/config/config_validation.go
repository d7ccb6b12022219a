// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dimas Pramesti

package config

import "time"

const (
	defaultTokenIssuer    = "hris-directory"
	defaultTokenDuration  = time.Hour
	defaultConnectTimeout = 5 * time.Second
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup, and fills in defaults
// for optional lifecycle settings.
//
// Required: token sign key, both database DSNs, and the HTTP listen address.
// Defaulted: token issuer and duration, database connect timeouts.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.AuthDB.DSN == "" || cfg.Storage.InfoDB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.Storage.AuthDB.ConnectTimeout == 0 {
		cfg.Storage.AuthDB.ConnectTimeout = defaultConnectTimeout
	}
	if cfg.Storage.InfoDB.ConnectTimeout == 0 {
		cfg.Storage.InfoDB.ConnectTimeout = defaultConnectTimeout
	}

	return nil
}
