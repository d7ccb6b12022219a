package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a required
// section is missing or incomplete after all sources have been merged.
var (
	// ErrInvalidAppConfigs is returned when the token signing key is empty.
	ErrInvalidAppConfigs = errors.New("invalid app configs: token sign key is required")

	// ErrInvalidStorageConfigs is returned when either database DSN is empty.
	ErrInvalidStorageConfigs = errors.New("invalid storage configs: auth and info database DSNs are required")

	// ErrInvalidServerConfigs is returned when the HTTP listen address is empty.
	ErrInvalidServerConfigs = errors.New("invalid server configs: http address is required")
)
