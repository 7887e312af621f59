package config

import (
	"fmt"
	"time"
)

// Defaults for the development API server.
const (
	DefaultServerAddress = "localhost:5000"
	DefaultServerDSN     = "horabank.db"
	DefaultTokenDuration = 24 * time.Hour
)

// ServerConfig is the development-server configuration view assembled
// from [StructuredConfig].
type ServerConfig struct {
	// Address is the TCP listen address, "host:port".
	Address string
	// RequestTimeout is the per-request deadline enforced by the router.
	RequestTimeout time.Duration
	// DSN is the sqlite database location.
	DSN string
	// TokenSignKey signs issued JWTs.
	TokenSignKey string
	// TokenDuration is the validity window of issued tokens.
	TokenDuration time.Duration
}

// GetServerConfig builds and validates the dev-server config view from
// the merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		Address:        cfg.Server.Address,
		RequestTimeout: cfg.Server.RequestTimeout,
		DSN:            cfg.Storage.DB.DSN,
		TokenSignKey:   cfg.Server.TokenSignKey,
		TokenDuration:  cfg.Server.TokenDuration,
	}
	serverCfg.applyDefaults()

	return serverCfg, serverCfg.validate()
}

func (cfg *ServerConfig) applyDefaults() {
	if cfg.Address == "" {
		cfg.Address = DefaultServerAddress
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.DSN == "" {
		cfg.DSN = DefaultServerDSN
	}
	if cfg.TokenDuration <= 0 {
		cfg.TokenDuration = DefaultTokenDuration
	}
}
