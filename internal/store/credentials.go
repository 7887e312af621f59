package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// InMemoryPath selects the non-persisting credential store variant, used
// by tests and one-off runs.
const InMemoryPath = ":memory:"

type fileCredentialStore struct {
	path     string
	inMemory bool

	mu    sync.RWMutex
	token string
}

type persistedCredentials struct {
	Token string `json:"token"`
}

// NewCredentialStore opens the credential slot at path, reading any
// previously persisted token so it can seed the session store at process
// start. Pass [InMemoryPath] for a volatile slot.
func NewCredentialStore(path string) (CredentialStore, error) {
	s := &fileCredentialStore{
		path:     path,
		inMemory: path == InMemoryPath || path == "",
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Token implements [CredentialStore].
func (s *fileCredentialStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Save implements [CredentialStore].
func (s *fileCredentialStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = strings.TrimSpace(token)
	return s.persist()
}

// Clear implements [CredentialStore].
func (s *fileCredentialStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	return s.persist()
}

func (s *fileCredentialStore) load() error {
	if s.inMemory {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read credential file: %w", err)
	}

	var creds persistedCredentials
	if err = json.Unmarshal(data, &creds); err != nil {
		return fmt.Errorf("decode credential file: %w", err)
	}

	s.token = creds.Token
	return nil
}

func (s *fileCredentialStore) persist() error {
	if s.inMemory {
		return nil
	}

	if s.token == "" {
		if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove credential file: %w", err)
		}
		return nil
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create credential dir: %w", err)
		}
	}

	payload, err := json.Marshal(persistedCredentials{Token: s.token})
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}

	// write-then-rename so a crash mid-write never leaves a truncated
	// credential file behind
	tmp := s.path + ".tmp"
	if err = os.WriteFile(tmp, payload, 0o600); err != nil {
		return fmt.Errorf("write credential file: %w", err)
	}
	if err = os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace credential file: %w", err)
	}

	return nil
}
