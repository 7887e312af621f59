package config

import "errors"

// Validation errors returned by the config views when required settings
// are incomplete or invalid.
var (
	// ErrInvalidClientConfigs indicates invalid client settings (for
	// example, an unparseable base URL or a zero request timeout).
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
	// ErrInvalidServerConfigs indicates invalid dev-server settings (for
	// example, a missing token signing key).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
