// Package service holds the client's state stores: the session store
// (authentication and token lifecycle), the domain store (tasks, users,
// hour bank), and the background refresh job. Stores take their gateway,
// credential slot, and notifier as constructor arguments.
package service

import (
	"github.com/techsolutions/horabank/internal/adapter"
	"github.com/techsolutions/horabank/internal/logger"
	"github.com/techsolutions/horabank/internal/store"
)

// Services bundles the stores a client session needs.
type Services struct {
	Session *SessionStore
	Domain  *DomainStore
}

// NewServices wires both stores to a shared gateway and notifier.
func NewServices(gateway adapter.Gateway, creds store.CredentialStore, notifier Notifier, log *logger.Logger) *Services {
	return &Services{
		Session: NewSessionStore(gateway, creds, notifier, log),
		Domain:  NewDomainStore(gateway, notifier, log),
	}
}
