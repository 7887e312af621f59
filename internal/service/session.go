package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/techsolutions/horabank/internal/adapter"
	"github.com/techsolutions/horabank/internal/logger"
	"github.com/techsolutions/horabank/internal/store"
	"github.com/techsolutions/horabank/models"
)

// SessionStore owns the authenticated user, the bearer token, and the
// per-operation busy flags. It is constructed once per application session
// with an injected gateway and credential slot so tests get isolated
// instances instead of process-wide state.
//
// Busy flags are UI status indicators, not locks: nothing prevents a
// second invocation of an operation before the first settles. Every flag
// returns to false on every exit path.
type SessionStore struct {
	gateway  adapter.Gateway
	creds    store.CredentialStore
	notifier Notifier
	logger   *logger.Logger

	mu              sync.RWMutex
	user            *models.User
	token           string
	loggingIn       bool
	registering     bool
	updatingProfile bool
}

// NewSessionStore builds the session store, seeds the in-memory token
// from the persisted credential slot, and subscribes to the gateway's
// unauthorized hook so a 401 on any request clears the stored credential.
func NewSessionStore(gateway adapter.Gateway, creds store.CredentialStore, notifier Notifier, log *logger.Logger) *SessionStore {
	token := creds.Token()
	if token != "" && tokenExpired(token) {
		log.Debug().Msg("persisted token expired, clearing credential slot")
		if err := creds.Clear(); err != nil {
			log.Error().Err(err).Msg("failed to clear expired credential")
		}
		token = ""
	}

	s := &SessionStore{
		gateway:  gateway,
		creds:    creds,
		notifier: notifier,
		logger:   log,
		token:    token,
	}

	gateway.OnUnauthorized(s.handleUnauthorized)

	return s
}

// tokenExpired reports whether the persisted JWT is already past its
// expiry. Parsing is unverified; the server still rejects bad tokens,
// this only avoids resuming a session that cannot work.
func tokenExpired(raw string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return exp.Before(time.Now())
}

// User returns a copy of the authenticated user, or nil before login.
func (s *SessionStore) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Token returns the session's bearer token, or "" when unauthenticated.
func (s *SessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// IsLoggingIn reports whether a Login call is outstanding.
func (s *SessionStore) IsLoggingIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loggingIn
}

// IsRegistering reports whether a Register call is outstanding.
func (s *SessionStore) IsRegistering() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registering
}

// IsUpdatingProfile reports whether an UpdateProfile call is outstanding.
func (s *SessionStore) IsUpdatingProfile() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updatingProfile
}

// Login authenticates against the API. On success the returned token is
// persisted to the credential slot, user and token state are replaced,
// a success notification is emitted, and redirect (when non-nil) is
// invoked with the server-reported role. On failure user and token are
// left untouched, a failure notification carries the server message when
// one was embedded, and the error propagates so the caller can hold its
// own flow (e.g. keep a dialog open). The busy flag clears on every path.
func (s *SessionStore) Login(ctx context.Context, creds models.LoginRequest, redirect func(role string)) error {
	s.setLoggingIn(true)
	defer s.setLoggingIn(false)

	auth, err := s.gateway.Login(ctx, creds)
	if err != nil {
		s.notifier.Notify(Notification{
			Title:       "Erro no login",
			Description: failureMessage(err, "Erro ao fazer login"),
			Variant:     VariantDestructive,
		})
		return fmt.Errorf("login: %w", err)
	}

	if err = s.creds.Save(auth.Token); err != nil {
		// the session still works for this run; only persistence failed
		s.logger.Error().Err(err).Msg("persist credential")
	}

	s.mu.Lock()
	user := auth.User
	s.user = &user
	s.token = auth.Token
	s.mu.Unlock()

	s.notifier.Notify(Notification{
		Title:       "Sucesso!",
		Description: "Login realizado com sucesso.",
		Variant:     VariantSuccess,
	})

	if redirect != nil {
		redirect(auth.User.Role)
	}

	return nil
}

// Register creates an account. The password/confirmation precondition is
// checked before any network call; a mismatch notifies a validation
// failure and returns [ErrPasswordMismatch]. Otherwise the confirmation
// is stripped, the role defaults to client and the hour bank to the basic
// 20-hour plan when absent, and success/failure handling mirrors Login
// minus the redirect.
func (s *SessionStore) Register(ctx context.Context, form models.RegisterForm) error {
	s.setRegistering(true)
	defer s.setRegistering(false)

	if form.Password != form.ConfirmPassword {
		s.notifier.Notify(Notification{
			Title:       "Erro no cadastro",
			Description: "As senhas não coincidem.",
			Variant:     VariantDestructive,
		})
		return ErrPasswordMismatch
	}

	req := models.RegisterRequest{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
		Role:     form.Role,
		HourBank: form.HourBank,
		Skills:   form.Skills,
	}
	if req.Role == "" {
		req.Role = models.RoleClient
	}
	if req.HourBank == nil {
		req.HourBank = &models.HourPlan{Total: 20, Used: 0, Plan: models.PlanBasic}
	}

	auth, err := s.gateway.Register(ctx, req)
	if err != nil {
		s.notifier.Notify(Notification{
			Title:       "Erro no cadastro",
			Description: failureMessage(err, "Erro ao criar conta"),
			Variant:     VariantDestructive,
		})
		return fmt.Errorf("register: %w", err)
	}

	if err = s.creds.Save(auth.Token); err != nil {
		s.logger.Error().Err(err).Msg("persist credential")
	}

	s.mu.Lock()
	user := auth.User
	s.user = &user
	s.token = auth.Token
	s.mu.Unlock()

	s.notifier.Notify(Notification{
		Title:       "Sucesso!",
		Description: "Conta criada com sucesso.",
		Variant:     VariantSuccess,
	})

	return nil
}

// Logout tells the server to end the session and clears the local
// credential and user state unconditionally. Even when the remote call
// fails, holding on to the token locally would only extend a session the
// user asked to end.
func (s *SessionStore) Logout(ctx context.Context) error {
	remoteErr := s.gateway.Logout(ctx)

	if err := s.creds.Clear(); err != nil {
		s.logger.Error().Err(err).Msg("clear credential")
	}

	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()

	if remoteErr != nil {
		s.notifier.Notify(Notification{
			Title:       "Erro no logout",
			Description: failureMessage(remoteErr, "Erro ao fazer logout"),
			Variant:     VariantDestructive,
		})
		return fmt.Errorf("logout: %w", remoteErr)
	}

	s.notifier.Notify(Notification{
		Title:       "Sucesso!",
		Description: "Logout realizado com sucesso.",
		Variant:     VariantSuccess,
	})

	return nil
}

// UpdateProfile sends a partial user update and replaces the local user
// wholesale with the server's response on success. Failure leaves the
// user untouched and propagates.
func (s *SessionStore) UpdateProfile(ctx context.Context, update models.ProfileUpdate) error {
	s.setUpdatingProfile(true)
	defer s.setUpdatingProfile(false)

	user, err := s.gateway.UpdateProfile(ctx, update)
	if err != nil {
		s.notifier.Notify(Notification{
			Title:       "Erro na atualização",
			Description: failureMessage(err, "Erro ao atualizar perfil"),
			Variant:     VariantDestructive,
		})
		return fmt.Errorf("update profile: %w", err)
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()

	s.notifier.Notify(Notification{
		Title:       "Sucesso!",
		Description: "Perfil atualizado com sucesso.",
		Variant:     VariantSuccess,
	})

	return nil
}

// handleUnauthorized is the gateway's 401 hook. Any response with HTTP
// 401 clears the persisted credential and the in-memory token, regardless
// of which operation triggered it. It forces no navigation; the UI reacts
// to the cleared session on its own terms.
func (s *SessionStore) handleUnauthorized() {
	if err := s.creds.Clear(); err != nil {
		s.logger.Error().Err(err).Msg("clear credential after 401")
	}

	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()

	s.logger.Warn().Msg("credential cleared after unauthorized response")
}

func (s *SessionStore) setLoggingIn(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loggingIn = v
}

func (s *SessionStore) setRegistering(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registering = v
}

func (s *SessionStore) setUpdatingProfile(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updatingProfile = v
}

// failureMessage picks the user-facing text for a failed operation:
// the server-embedded message when present, then the operation's generic
// text, then the transport error itself.
func failureMessage(err error, generic string) string {
	if msg := adapter.ServerMessage(err); msg != "" {
		return msg
	}
	if generic != "" {
		return generic
	}
	return err.Error()
}
