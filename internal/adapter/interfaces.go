// Package adapter provides the transport layer between the client stores
// and the TechSolutions API.
//
// The primary abstraction is [Gateway], which decouples the store layer
// from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPGateway]) built on resty: it attaches the bearer
// credential to every outgoing request, keeps a cookie jar so transport is
// always credentialed, and maps response statuses to the sentinel errors
// defined in errors.go so that callers can use [errors.Is] for
// transport-agnostic error handling.
//
// An HTTP 401 on any response fires the hook registered with
// [Gateway.OnUnauthorized]; the gateway itself never touches credential
// storage; the session store owns that side effect.
package adapter

import (
	"context"

	"github.com/techsolutions/horabank/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/gateway_mock.go -package=mock

// TokenSource supplies the bearer credential attached to outgoing
// authenticated requests. An empty token means "not authenticated" and no
// Authorization header is sent.
type TokenSource interface {
	// Token returns the current bearer token, or "" when none is stored.
	Token() string
}

// Gateway defines transport-agnostic communication with the TechSolutions
// API. Implementations are responsible for serialisation, credential
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type Gateway interface {
	// Login authenticates with POST /api/v1/auth/login and returns the
	// issued token together with the server-side user record.
	Login(ctx context.Context, creds models.LoginRequest) (models.AuthResponse, error)

	// Register creates an account with POST /api/v1/auth/signup. The
	// response mirrors Login.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Logout invalidates the server-side session with POST
	// /api/v1/auth/logout. The local credential is not touched here;
	// clearing it is the session store's responsibility.
	Logout(ctx context.Context) error

	// UpdateProfile sends a partial user to PUT /api/v1/auth/update-profile
	// and returns the full updated user record.
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error)

	// Users fetches the user directory from GET /api/v1/clients/users.
	Users(ctx context.Context) ([]models.DirectoryUser, error)

	// Tasks fetches the caller's tasks from GET /api/v1/clients/tasks.
	Tasks(ctx context.Context) ([]models.Task, error)

	// CreateTask creates a task with POST /api/v1/clients/tasks and
	// returns the server-confirmed task object.
	CreateTask(ctx context.Context, req models.CreateTaskRequest) (models.Task, error)

	// HourBank fetches the hour bank from GET /api/v1/clients/hour-bank.
	HourBank(ctx context.Context) (models.HourBank, error)

	// TaskHistory fetches GET /api/v1/clients/tasks/history, filtered by
	// status when non-empty.
	TaskHistory(ctx context.Context, status string) ([]models.Task, error)

	// OnUnauthorized registers the hook invoked whenever any response
	// comes back with HTTP 401, regardless of which operation issued the
	// request.
	OnUnauthorized(hook func())
}
