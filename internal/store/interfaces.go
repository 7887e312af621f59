// Package store holds the client-side persistence used by the stores:
// a single credential slot that survives restarts.
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_store_mock.go -package=mock

// CredentialStore is the persistent credential slot. It holds at most one
// bearer token under the well-known "token" key; a present token means
// "considered authenticated" for subsequent requests.
//
// Implementations must be safe for concurrent use: a login writing a fresh
// token and the gateway's 401 hook clearing a stale one can race.
type CredentialStore interface {
	// Token returns the stored bearer token, or "" when the slot is empty.
	// It also satisfies the gateway's TokenSource.
	Token() string

	// Save replaces the slot's content with token and persists it.
	Save(token string) error

	// Clear empties the slot and removes the persisted value.
	Clear() error
}
