package config

import (
	"net/url"
	"strings"
)

// validate checks that the final client view satisfies all invariants the
// client relies on at startup.
func (cfg *ClientConfig) validate() error {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ErrInvalidClientConfigs
	}

	if cfg.RequestTimeout <= 0 || cfg.RefreshInterval <= 0 {
		return ErrInvalidClientConfigs
	}

	if strings.TrimSpace(cfg.CredentialsPath) == "" {
		return ErrInvalidClientConfigs
	}

	return nil
}

// validate checks the dev-server view. The sign key is the only field
// without a safe default: issuing tokens with an empty key is refused.
func (cfg *ServerConfig) validate() error {
	if cfg.Address == "" || cfg.DSN == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.TokenSignKey == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
