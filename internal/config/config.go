package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for horabank.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Client holds settings for the interactive client: the API base URL,
	// request timeout, credential file location, and background refresh
	// interval.
	Client Client `envPrefix:"CLIENT_"`

	// Server holds network settings for the development API server.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds persistence settings for the development API server.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Client groups the settings consumed by the interactive client.
type Client struct {
	// BaseURL is the root of the remote API, e.g. "http://localhost:5000".
	// Env: CLIENT_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout caps every outbound request issued by the gateway
	// (e.g. "15s"). Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CredentialsPath is where the bearer token is persisted between runs.
	// Env: CLIENT_CREDENTIALS_PATH
	CredentialsPath string `env:"CREDENTIALS_PATH"`

	// RefreshInterval drives the background task/hour-bank refresh job
	// (e.g. "5m"). Env: CLIENT_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Server holds network and timeout settings for the development API server.
type Server struct {
	// Address is the TCP address the server listens on, "host:port".
	// Env: SERVER_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout is the per-request deadline enforced by the router.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// TokenSignKey signs the JWTs issued on login/signup.
	// Env: SERVER_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenDuration is how long an issued token stays valid (e.g. "24h").
	// Env: SERVER_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Storage holds persistence settings for the development API server.
type Storage struct {
	// DB holds the sqlite connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the development server's database.
type DB struct {
	// DSN is the sqlite file path (or ":memory:").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}
