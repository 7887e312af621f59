package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Defaults applied to the client view when neither flags, env, nor the
// JSON file supplied a value. The base URL default matches the API's
// local development address.
const (
	DefaultBaseURL         = "http://localhost:5000"
	DefaultRequestTimeout  = 15 * time.Second
	DefaultRefreshInterval = 5 * time.Minute
)

// ClientConfig is the client-specific configuration view assembled from
// [StructuredConfig].
type ClientConfig struct {
	// BaseURL is the root of the remote API.
	BaseURL string
	// RequestTimeout caps every outbound gateway request.
	RequestTimeout time.Duration
	// CredentialsPath is the persisted credential file location.
	CredentialsPath string
	// RefreshInterval drives the background refresh job.
	RefreshInterval time.Duration
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration, applying defaults for anything the
// layers left unset.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		BaseURL:         cfg.Client.BaseURL,
		RequestTimeout:  cfg.Client.RequestTimeout,
		CredentialsPath: cfg.Client.CredentialsPath,
		RefreshInterval: cfg.Client.RefreshInterval,
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = DefaultRefreshInterval
	}
	if cfg.CredentialsPath == "" {
		cfg.CredentialsPath = defaultCredentialsPath()
	}
}

// defaultCredentialsPath places the credential file under the OS user
// config dir; if that cannot be resolved, next to the executable.
func defaultCredentialsPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "horabank", "credentials.json")
	}

	execPath, err := os.Executable()
	if err != nil {
		return "credentials.json"
	}
	return filepath.Join(filepath.Dir(execPath), "credentials.json")
}
