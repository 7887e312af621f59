package devserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techsolutions/horabank/internal/logger"
	"github.com/techsolutions/horabank/models"
)

// stubRepository implements Repository with per-method function fields so
// each test wires only what it needs.
type stubRepository struct {
	createUser     func(ctx context.Context, record UserRecord) error
	userByEmail    func(ctx context.Context, email string) (UserRecord, error)
	userByID       func(ctx context.Context, id string) (UserRecord, error)
	updateUser     func(ctx context.Context, record UserRecord) (UserRecord, error)
	listUsers      func(ctx context.Context) ([]UserRecord, error)
	createTask     func(ctx context.Context, record TaskRecord) error
	tasksByClient  func(ctx context.Context, clientID string) ([]TaskRecord, error)
	taskHistory    func(ctx context.Context, clientID, status string) ([]TaskRecord, error)
	revokeToken    func(ctx context.Context, token string) error
	isTokenRevoked func(ctx context.Context, token string) (bool, error)
}

func (s *stubRepository) CreateUser(ctx context.Context, record UserRecord) error {
	return s.createUser(ctx, record)
}

func (s *stubRepository) UserByEmail(ctx context.Context, email string) (UserRecord, error) {
	return s.userByEmail(ctx, email)
}

func (s *stubRepository) UserByID(ctx context.Context, id string) (UserRecord, error) {
	return s.userByID(ctx, id)
}

func (s *stubRepository) UpdateUser(ctx context.Context, record UserRecord) (UserRecord, error) {
	return s.updateUser(ctx, record)
}

func (s *stubRepository) ListUsers(ctx context.Context) ([]UserRecord, error) {
	return s.listUsers(ctx)
}

func (s *stubRepository) CreateTask(ctx context.Context, record TaskRecord) error {
	return s.createTask(ctx, record)
}

func (s *stubRepository) TasksByClient(ctx context.Context, clientID string) ([]TaskRecord, error) {
	return s.tasksByClient(ctx, clientID)
}

func (s *stubRepository) TaskHistory(ctx context.Context, clientID, status string) ([]TaskRecord, error) {
	return s.taskHistory(ctx, clientID, status)
}

func (s *stubRepository) RevokeToken(ctx context.Context, token string) error {
	return s.revokeToken(ctx, token)
}

func (s *stubRepository) IsTokenRevoked(ctx context.Context, token string) (bool, error) {
	return s.isTokenRevoked(ctx, token)
}

func newTestRouter(t *testing.T, repo *stubRepository) (http.Handler, *Authenticator) {
	t.Helper()

	auth, err := NewAuthenticator("test-secret", time.Hour)
	require.NoError(t, err)

	if repo.isTokenRevoked == nil {
		repo.isTokenRevoked = func(context.Context, string) (bool, error) { return false, nil }
	}

	handler := NewHandler(repo, auth, logger.Nop())
	return Routes(handler, auth, repo, 15*time.Second, logger.Nop()), auth
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

// ── Signup ──────────────────────────────────────────────────────────────

func TestSignup_CreatesClientWithPlanHours(t *testing.T) {
	var created UserRecord
	repo := &stubRepository{
		createUser: func(_ context.Context, record UserRecord) error {
			created = record
			return nil
		},
	}
	router, _ := newTestRouter(t, repo)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/signup", "", models.RegisterRequest{
		Name:     "Maria Lima",
		Email:    "maria@example.com",
		Password: "s3cure-pass",
		Role:     models.RoleClient,
		HourBank: &models.HourPlan{Plan: models.PlanStandard},
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, models.PlanStandard, created.Plan)
	assert.Equal(t, 40, created.HoursTotal)
	assert.NotEqual(t, "s3cure-pass", created.PasswordHash)

	resp := decodeBody[models.AuthResponse](t, rec)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "maria@example.com", resp.User.Email)
	require.NotNil(t, resp.User.HourBank)
	assert.Equal(t, 40, resp.User.HourBank.Total)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	repo := &stubRepository{
		createUser: func(context.Context, UserRecord) error { return ErrEmailAlreadyExists },
	}
	router, _ := newTestRouter(t, repo)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/signup", "", models.RegisterRequest{
		Name:     "Maria Lima",
		Email:    "maria@example.com",
		Password: "s3cure-pass",
	})

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Email already registered", decodeBody[models.APIMessage](t, rec).Message)
}

func TestSignup_ShortPassword(t *testing.T) {
	router, _ := newTestRouter(t, &stubRepository{})

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/signup", "", models.RegisterRequest{
		Name:     "Maria Lima",
		Email:    "maria@example.com",
		Password: "short",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ── Login ───────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	auth, err := NewAuthenticator("test-secret", time.Hour)
	require.NoError(t, err)
	hash, err := auth.HashPassword("s3cure-pass")
	require.NoError(t, err)

	repo := &stubRepository{
		userByEmail: func(_ context.Context, email string) (UserRecord, error) {
			return UserRecord{ID: "u-1", Email: email, PasswordHash: hash, Role: models.RoleClient, Skills: "[]"}, nil
		},
	}
	router, _ := newTestRouter(t, repo)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", models.LoginRequest{
		Email:    "maria@example.com",
		Password: "s3cure-pass",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[models.AuthResponse](t, rec)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "u-1", resp.User.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	auth, err := NewAuthenticator("test-secret", time.Hour)
	require.NoError(t, err)
	hash, err := auth.HashPassword("s3cure-pass")
	require.NoError(t, err)

	repo := &stubRepository{
		userByEmail: func(_ context.Context, email string) (UserRecord, error) {
			return UserRecord{ID: "u-1", Email: email, PasswordHash: hash}, nil
		},
	}
	router, _ := newTestRouter(t, repo)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", models.LoginRequest{
		Email:    "maria@example.com",
		Password: "wrong",
	})

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", decodeBody[models.APIMessage](t, rec).Message)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := &stubRepository{
		userByEmail: func(context.Context, string) (UserRecord, error) {
			return UserRecord{}, ErrNoUserFound
		},
	}
	router, _ := newTestRouter(t, repo)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", models.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ── Authentication middleware ───────────────────────────────────────────

func TestClientsEndpoints_RequireToken(t *testing.T) {
	router, _ := newTestRouter(t, &stubRepository{})

	rec := doJSON(t, router, http.MethodGet, "/api/v1/clients/tasks", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestClientsEndpoints_RejectRevokedToken(t *testing.T) {
	repo := &stubRepository{
		isTokenRevoked: func(context.Context, string) (bool, error) { return true, nil },
	}
	router, auth := newTestRouter(t, repo)

	token, err := auth.IssueToken("u-1")
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/clients/tasks", token.SignedString, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Token has been revoked", decodeBody[models.APIMessage](t, rec).Message)
}

// ── Logout ──────────────────────────────────────────────────────────────

func TestLogout_RevokesBearerToken(t *testing.T) {
	var revoked string
	repo := &stubRepository{
		revokeToken: func(_ context.Context, token string) error {
			revoked = token
			return nil
		},
	}
	router, auth := newTestRouter(t, repo)

	token, err := auth.IssueToken("u-1")
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/logout", token.SignedString, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, token.SignedString, revoked)
}

// ── Tasks ───────────────────────────────────────────────────────────────

func TestTasks_ReturnsClientTasks(t *testing.T) {
	repo := &stubRepository{
		tasksByClient: func(_ context.Context, clientID string) ([]TaskRecord, error) {
			assert.Equal(t, "u-1", clientID)
			return []TaskRecord{{ID: "t-1", ClientID: clientID, Name: "Landing page", Status: models.StatusPending}}, nil
		},
	}
	router, auth := newTestRouter(t, repo)

	token, err := auth.IssueToken("u-1")
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/clients/tasks", token.SignedString, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	tasks := decodeBody[[]models.Task](t, rec)
	require.Len(t, tasks, 1)
	assert.Equal(t, "t-1", tasks[0].ID)
}

func TestCreateTask_AcceptsPortugueseWireFields(t *testing.T) {
	var created TaskRecord
	repo := &stubRepository{
		userByID: func(_ context.Context, id string) (UserRecord, error) {
			return UserRecord{ID: id, Plan: models.PlanBasic, HoursTotal: 20, HoursUsed: 5}, nil
		},
		createTask: func(_ context.Context, record TaskRecord) error {
			created = record
			return nil
		},
	}
	router, auth := newTestRouter(t, repo)

	token, err := auth.IssueToken("u-1")
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/clients/tasks", token.SignedString, map[string]any{
		"nome":           "Landing page",
		"descricao":      "New landing page",
		"prioridade":     "high",
		"horasEstimadas": 8,
		"dataVencimento": "2026-09-15",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Landing page", created.Name)
	assert.Equal(t, "u-1", created.ClientID)
	assert.Equal(t, models.StatusPending, created.Status)

	task := decodeBody[models.Task](t, rec)
	assert.Equal(t, created.ID, task.ID)
	assert.Equal(t, 8, task.EstimatedHours)
}

func TestCreateTask_InsufficientHours(t *testing.T) {
	repo := &stubRepository{
		userByID: func(_ context.Context, id string) (UserRecord, error) {
			return UserRecord{ID: id, Plan: models.PlanBasic, HoursTotal: 20, HoursUsed: 18}, nil
		},
	}
	router, auth := newTestRouter(t, repo)

	token, err := auth.IssueToken("u-1")
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/clients/tasks", token.SignedString, map[string]any{
		"nome":           "Big task",
		"descricao":      "Too big",
		"horasEstimadas": 8,
		"dataVencimento": "2026-09-15",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody[models.APIMessage](t, rec).Message, "Insufficient hours")
}

// ── Hour bank ───────────────────────────────────────────────────────────

func TestHourBank_DerivedFromCompletedTasks(t *testing.T) {
	repo := &stubRepository{
		userByID: func(_ context.Context, id string) (UserRecord, error) {
			return UserRecord{ID: id, Plan: models.PlanStandard, HoursTotal: 40, HoursUsed: 12}, nil
		},
		taskHistory: func(_ context.Context, clientID, status string) ([]TaskRecord, error) {
			assert.Equal(t, models.StatusCompleted, status)
			return []TaskRecord{
				{Name: "Logo design", ActualHours: 7, CompletedAt: "2026-08-01"},
				{Name: "Bug fixes", ActualHours: 5, CompletedAt: "2026-08-10"},
			}, nil
		},
	}
	router, auth := newTestRouter(t, repo)

	token, err := auth.IssueToken("u-1")
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/clients/hour-bank", token.SignedString, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	bank := decodeBody[models.HourBank](t, rec)
	assert.Equal(t, 40, bank.Total)
	assert.Equal(t, 12, bank.Used)
	assert.Equal(t, 28, bank.Available)
	assert.True(t, bank.Consistent())
	assert.Equal(t, 2, bank.CompletedTasks)
	require.Len(t, bank.DetailedHours, 2)
	assert.Equal(t, "Logo design", bank.DetailedHours[0].Task)
}

// ── Profile ─────────────────────────────────────────────────────────────

func TestUpdateProfile_KeepsAbsentFields(t *testing.T) {
	stored := UserRecord{
		ID: "u-1", Name: "Maria", Email: "maria@example.com",
		PasswordHash: "old-hash", Role: models.RoleClient, Skills: "[]",
	}
	repo := &stubRepository{
		userByID: func(context.Context, string) (UserRecord, error) { return stored, nil },
		updateUser: func(_ context.Context, record UserRecord) (UserRecord, error) {
			return record, nil
		},
	}
	router, auth := newTestRouter(t, repo)

	token, err := auth.IssueToken("u-1")
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodPut, "/api/v1/auth/update-profile", token.SignedString,
		models.ProfileUpdate{Name: "Maria Lima"})

	require.Equal(t, http.StatusOK, rec.Code)
	user := decodeBody[models.User](t, rec)
	assert.Equal(t, "Maria Lima", user.Name)
	assert.Equal(t, "maria@example.com", user.Email)
}

// ── User directory ──────────────────────────────────────────────────────

func TestUsers_ReturnsDirectoryProjection(t *testing.T) {
	repo := &stubRepository{
		listUsers: func(context.Context) ([]UserRecord, error) {
			return []UserRecord{
				{ID: "u-1", Name: "Maria", Email: "maria@example.com", PasswordHash: "secret", Role: models.RoleClient},
			}, nil
		},
	}
	router, auth := newTestRouter(t, repo)

	token, err := auth.IssueToken("u-1")
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/clients/users", token.SignedString, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	users := decodeBody[[]models.DirectoryUser](t, rec)
	require.Len(t, users, 1)
	assert.Equal(t, "u-1", users[0].ID)
	assert.NotContains(t, rec.Body.String(), "secret")
}

// ── Task history ────────────────────────────────────────────────────────

func TestTaskHistory_PassesStatusQuery(t *testing.T) {
	repo := &stubRepository{
		taskHistory: func(_ context.Context, clientID, status string) ([]TaskRecord, error) {
			assert.Equal(t, "u-1", clientID)
			assert.Equal(t, models.StatusCompleted, status)
			return nil, nil
		},
	}
	router, auth := newTestRouter(t, repo)

	token, err := auth.IssueToken("u-1")
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/clients/tasks/history?status=completed", token.SignedString, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
