package devserver

import "context"

// Repository is the persistence surface the HTTP handlers depend on.
// The shipped implementation is sqlite ([NewSQLiteRepository]); tests
// substitute it freely.
type Repository interface {
	// CreateUser inserts a new account. A duplicate email fails with
	// [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, record UserRecord) error

	// UserByEmail finds an account by its unique email, or
	// [ErrNoUserFound].
	UserByEmail(ctx context.Context, email string) (UserRecord, error)

	// UserByID finds an account by ID, or [ErrNoUserFound].
	UserByID(ctx context.Context, id string) (UserRecord, error)

	// UpdateUser overwrites the mutable columns of an account and
	// returns the fresh row.
	UpdateUser(ctx context.Context, record UserRecord) (UserRecord, error)

	// ListUsers returns every account, oldest first.
	ListUsers(ctx context.Context) ([]UserRecord, error)

	// CreateTask inserts a task row.
	CreateTask(ctx context.Context, record TaskRecord) error

	// TasksByClient returns the client's non-completed tasks, oldest
	// first.
	TasksByClient(ctx context.Context, clientID string) ([]TaskRecord, error)

	// TaskHistory returns the client's tasks filtered by status; an
	// empty status returns every task.
	TaskHistory(ctx context.Context, clientID, status string) ([]TaskRecord, error)

	// RevokeToken stores a token in the denylist.
	RevokeToken(ctx context.Context, token string) error

	// IsTokenRevoked reports whether the token was revoked.
	IsTokenRevoked(ctx context.Context, token string) (bool, error)
}
