package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techsolutions/horabank/internal/logger"
	"github.com/techsolutions/horabank/models"
)

type staticTokens struct{ token string }

func (s *staticTokens) Token() string { return s.token }

func newTestGateway(t *testing.T, serverURL, token string) *httpGateway {
	t.Helper()

	g, err := NewHTTPGateway(HTTPGatewayConfig{BaseURL: serverURL}, &staticTokens{token: token}, logger.Nop())
	require.NoError(t, err)
	return g.(*httpGateway)
}

func TestNewHTTPGateway_InvalidBaseURL(t *testing.T) {
	_, err := NewHTTPGateway(HTTPGatewayConfig{BaseURL: "   "}, &staticTokens{}, logger.Nop())
	require.Error(t, err)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		// not authenticated yet
		assert.Empty(t, r.Header.Get("Authorization"))

		var creds models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "a@b.com", creds.Email)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.AuthResponse{
			Token: "T1",
			User:  models.User{ID: "u1", Role: models.RoleAdmin},
		})
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, "")
	auth, err := g.Login(context.Background(), models.LoginRequest{Email: "a@b.com", Password: "x"})

	require.NoError(t, err)
	assert.Equal(t, "T1", auth.Token)
	assert.Equal(t, models.RoleAdmin, auth.User.Role)
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid credentials"}`))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, "")
	_, err := g.Login(context.Background(), models.LoginRequest{Email: "a@b.com", Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "Invalid credentials", ServerMessage(err))
}

func TestLogin_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, "")
	_, err := g.Login(context.Background(), models.LoginRequest{Email: "a@b.com", Password: "x"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.Empty(t, ServerMessage(err))
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/auth/signup", r.URL.Path)

		var req models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, models.RoleClient, req.Role)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.AuthResponse{Token: "T2", User: models.User{ID: "u2"}})
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, "")
	auth, err := g.Register(context.Background(), models.RegisterRequest{
		Name: "Alice", Email: "a@b.com", Password: "x", Role: models.RoleClient,
	})

	require.NoError(t, err)
	assert.Equal(t, "T2", auth.Token)
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"email already registered"}`))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, "")
	_, err := g.Register(context.Background(), models.RegisterRequest{Email: "a@b.com"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "email already registered", ServerMessage(err))
}

// ── Authenticated requests ───────────────────────────────────────────────────

func TestTasks_AttachesBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer T1", r.Header.Get("Authorization"))
		assert.Equal(t, "/api/v1/clients/tasks", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.Task{{ID: "t1", Name: "T"}})
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, "T1")
	tasks, err := g.Tasks(context.Background())

	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "t1", tasks[0].ID)
}

func TestUnauthorizedHook_FiresOn401(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	fired := 0
	g := newTestGateway(t, srv.URL, "stale")
	g.OnUnauthorized(func() { fired++ })

	_, err := g.Tasks(context.Background())

	require.Error(t, err)
	assert.Equal(t, 1, fired)
}

func TestUnauthorizedHook_NotFiredOnSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	fired := 0
	g := newTestGateway(t, srv.URL, "T1")
	g.OnUnauthorized(func() { fired++ })

	_, err := g.Tasks(context.Background())

	require.NoError(t, err)
	assert.Zero(t, fired)
}

// ── CreateTask ───────────────────────────────────────────────────────────────

func TestCreateTask_PortugueseWireFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/clients/tasks", r.URL.Path)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "T", payload["nome"])
		assert.Equal(t, "D", payload["descricao"])
		assert.Equal(t, "low", payload["prioridade"])
		assert.Equal(t, float64(2), payload["horasEstimadas"])
		assert.Equal(t, "2025-01-01", payload["dataVencimento"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.Task{ID: "t1", Name: "T", Status: models.StatusPending})
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, "T1")
	task, err := g.CreateTask(context.Background(), models.CreateTaskRequest{
		Name: "T", Description: "D", Priority: "low", EstimatedHours: 2, DueDate: "2025-01-01",
	})

	require.NoError(t, err)
	assert.Equal(t, "t1", task.ID)
}

// ── HourBank ─────────────────────────────────────────────────────────────────

func TestHourBank_Success(t *testing.T) {
	want := models.HourBank{Plan: "basic", Total: 20, Used: 5, Available: 15, CompletedTasks: 2}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/clients/hour-bank", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, "T1")
	bank, err := g.HourBank(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, bank)
}

// ── TaskHistory ──────────────────────────────────────────────────────────────

func TestTaskHistory_StatusQueryParam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/clients/tasks/history", r.URL.Path)
		assert.Equal(t, "completed", r.URL.Query().Get("status"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.Task{{ID: "t9", Status: models.StatusCompleted}})
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, "T1")
	tasks, err := g.TaskHistory(context.Background(), models.StatusCompleted)

	require.NoError(t, err)
	require.Len(t, tasks, 1)
}

func TestTaskHistory_NoStatusOmitsParam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, has := r.URL.Query()["status"]
		assert.False(t, has)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, "T1")
	_, err := g.TaskHistory(context.Background(), "")

	require.NoError(t, err)
}

// ── Logout / UpdateProfile ───────────────────────────────────────────────────

func TestLogout_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/auth/logout", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, "T1")
	require.NoError(t, g.Logout(context.Background()))
}

func TestUpdateProfile_ReplacesUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/auth/update-profile", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.User{ID: "u1", Name: "Renamed", Role: models.RoleClient})
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, "T1")
	user, err := g.UpdateProfile(context.Background(), models.ProfileUpdate{Name: "Renamed"})

	require.NoError(t, err)
	assert.Equal(t, "Renamed", user.Name)
}

// ── error mapping ────────────────────────────────────────────────────────────

func TestAPIError_DefaultStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, "")
	err := g.Logout(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}
