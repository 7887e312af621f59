package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/techsolutions/horabank/internal/logger"
	"github.com/techsolutions/horabank/models"
)

type httpGateway struct {
	client *resty.Client
	tokens TokenSource
	logger *logger.Logger

	mu             sync.RWMutex
	onUnauthorized func()
}

// HTTPGatewayConfig carries the settings needed to construct the HTTP
// implementation of [Gateway].
type HTTPGatewayConfig struct {
	BaseURL string
	Timeout time.Duration
}

// NewHTTPGateway constructs an HTTP/REST implementation of [Gateway].
// It normalises and validates the base URL, configures the underlying
// resty client with a cookie jar (credentialed transport) and the JSON
// content headers every endpoint expects, and installs the request and
// response interceptors.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPGateway(cfg HTTPGatewayConfig, tokens TokenSource, log *logger.Logger) (Gateway, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid gateway base url: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	g := &httpGateway{tokens: tokens, logger: log}

	g.client = resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		SetCookieJar(jar).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		OnBeforeRequest(g.beforeRequest).
		OnAfterResponse(g.afterResponse)

	return g, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// beforeRequest attaches the bearer credential when one is available and
// tags the request with an X-Request-ID. Request URLs are debug-logged;
// the log output is a diagnostic side effect, not part of the contract.
func (g *httpGateway) beforeRequest(_ *resty.Client, req *resty.Request) error {
	if token := g.tokens.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	req.SetHeader("X-Request-ID", uuid.NewString())

	g.logger.Debug().Str("method", req.Method).Str("url", req.URL).Msg("api request")
	return nil
}

// afterResponse debug-logs the response and fires the unauthorized hook on
// HTTP 401, independent of which store issued the request.
func (g *httpGateway) afterResponse(_ *resty.Client, resp *resty.Response) error {
	g.logger.Debug().
		Int("status", resp.StatusCode()).
		Str("url", resp.Request.URL).
		Str("body", strings.TrimSpace(string(resp.Body()))).
		Msg("api response")

	if resp.StatusCode() == http.StatusUnauthorized {
		g.mu.RLock()
		hook := g.onUnauthorized
		g.mu.RUnlock()

		if hook != nil {
			hook()
		}
	}
	return nil
}

// OnUnauthorized implements [Gateway].
func (g *httpGateway) OnUnauthorized(hook func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onUnauthorized = hook
}

// Login implements [Gateway].
func (g *httpGateway) Login(ctx context.Context, creds models.LoginRequest) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(creds).
		SetResult(&auth).
		Post("/api/v1/auth/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	return auth, nil
}

// Register implements [Gateway].
func (g *httpGateway) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&auth).
		Post("/api/v1/auth/signup")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	return auth, nil
}

// Logout implements [Gateway].
func (g *httpGateway) Logout(ctx context.Context) error {
	resp, err := g.client.R().
		SetContext(ctx).
		Post("/api/v1/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

// UpdateProfile implements [Gateway].
func (g *httpGateway) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error) {
	var user models.User

	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(update).
		SetResult(&user).
		Put("/api/v1/auth/update-profile")
	if err != nil {
		return models.User{}, fmt.Errorf("update profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Users implements [Gateway].
func (g *httpGateway) Users(ctx context.Context) ([]models.DirectoryUser, error) {
	var users []models.DirectoryUser

	resp, err := g.client.R().
		SetContext(ctx).
		SetResult(&users).
		Get("/api/v1/clients/users")
	if err != nil {
		return nil, fmt.Errorf("users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return users, nil
}

// Tasks implements [Gateway].
func (g *httpGateway) Tasks(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task

	resp, err := g.client.R().
		SetContext(ctx).
		SetResult(&tasks).
		Get("/api/v1/clients/tasks")
	if err != nil {
		return nil, fmt.Errorf("tasks request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return tasks, nil
}

// CreateTask implements [Gateway].
func (g *httpGateway) CreateTask(ctx context.Context, req models.CreateTaskRequest) (models.Task, error) {
	var task models.Task

	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&task).
		Post("/api/v1/clients/tasks")
	if err != nil {
		return models.Task{}, fmt.Errorf("create task request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Task{}, err
	}

	return task, nil
}

// HourBank implements [Gateway].
func (g *httpGateway) HourBank(ctx context.Context) (models.HourBank, error) {
	var bank models.HourBank

	resp, err := g.client.R().
		SetContext(ctx).
		SetResult(&bank).
		Get("/api/v1/clients/hour-bank")
	if err != nil {
		return models.HourBank{}, fmt.Errorf("hour bank request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HourBank{}, err
	}

	return bank, nil
}

// TaskHistory implements [Gateway].
func (g *httpGateway) TaskHistory(ctx context.Context, status string) ([]models.Task, error) {
	var tasks []models.Task

	req := g.client.R().
		SetContext(ctx).
		SetResult(&tasks)
	if status != "" {
		req.SetQueryParam("status", status)
	}

	resp, err := req.Get("/api/v1/clients/tasks/history")
	if err != nil {
		return nil, fmt.Errorf("task history request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return tasks, nil
}
