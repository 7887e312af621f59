package devserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/techsolutions/horabank/internal/logger"
	"github.com/techsolutions/horabank/models"
)

// Handler implements the development API endpoints the client talks to.
type Handler struct {
	repo     Repository
	auth     *Authenticator
	validate *validator.Validate
	logger   *logger.Logger
}

// NewHandler wires the handlers with their dependencies.
func NewHandler(repo Repository, auth *Authenticator, log *logger.Logger) *Handler {
	return &Handler{
		repo:     repo,
		auth:     auth,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   log,
	}
}

// Signup handles POST /api/v1/auth/signup.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || len(req.Password) < 6 {
		writeMessage(w, http.StatusBadRequest, "Name, email and a password of at least 6 characters are required")
		return
	}

	if req.Role == "" {
		req.Role = models.RoleClient
	}

	hash, err := h.auth.HashPassword(req.Password)
	if err != nil {
		h.internalError(w, r, err, "hash password")
		return
	}

	record := UserRecord{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		Skills:       encodeSkills(req.Skills),
		CreatedAt:    time.Now().UTC(),
	}
	if req.HourBank != nil {
		record.Plan = req.HourBank.Plan
		record.HoursTotal = models.PlanHours(req.HourBank.Plan)
		record.HoursUsed = req.HourBank.Used
	}

	if err := h.repo.CreateUser(r.Context(), record); err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			writeMessage(w, http.StatusConflict, "Email already registered")
			return
		}
		h.internalError(w, r, err, "create user")
		return
	}

	token, err := h.auth.IssueToken(record.ID)
	if err != nil {
		h.internalError(w, r, err, "issue token")
		return
	}

	writeJSON(w, http.StatusCreated, models.AuthResponse{Token: token.SignedString, User: record.User()})
}

// Login handles POST /api/v1/auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.StructCtx(r.Context(), req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	record, err := h.repo.UserByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, ErrNoUserFound) {
			writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.internalError(w, r, err, "find user")
		return
	}
	if !h.auth.CheckPassword(record.PasswordHash, req.Password) {
		writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.auth.IssueToken(record.ID)
	if err != nil {
		h.internalError(w, r, err, "issue token")
		return
	}

	writeJSON(w, http.StatusOK, models.AuthResponse{Token: token.SignedString, User: record.User()})
}

// Logout handles POST /api/v1/auth/logout. The bearer token goes onto
// the denylist so it cannot be replayed.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.RevokeToken(r.Context(), TokenFromContext(r.Context())); err != nil {
		h.internalError(w, r, err, "revoke token")
		return
	}

	writeJSON(w, http.StatusOK, models.APIMessage{Message: "Logged out"})
}

// UpdateProfile handles PUT /api/v1/auth/update-profile. Absent fields
// keep their stored values.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	record, err := h.repo.UserByID(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		h.internalError(w, r, err, "find user")
		return
	}

	if req.Name != "" {
		record.Name = req.Name
	}
	if req.Email != "" {
		record.Email = req.Email
	}
	if req.Skills != nil {
		record.Skills = encodeSkills(req.Skills)
	}
	if req.Password != "" {
		hash, err := h.auth.HashPassword(req.Password)
		if err != nil {
			h.internalError(w, r, err, "hash password")
			return
		}
		record.PasswordHash = hash
	}

	updated, err := h.repo.UpdateUser(r.Context(), record)
	if err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			writeMessage(w, http.StatusConflict, "Email already registered")
			return
		}
		h.internalError(w, r, err, "update user")
		return
	}

	writeJSON(w, http.StatusOK, updated.User())
}

// Users handles GET /api/v1/clients/users.
func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	records, err := h.repo.ListUsers(r.Context())
	if err != nil {
		h.internalError(w, r, err, "list users")
		return
	}

	users := make([]models.DirectoryUser, 0, len(records))
	for _, record := range records {
		users = append(users, record.DirectoryUser())
	}

	writeJSON(w, http.StatusOK, users)
}

// Tasks handles GET /api/v1/clients/tasks. Completed tasks are excluded;
// they live in the history endpoint.
func (h *Handler) Tasks(w http.ResponseWriter, r *http.Request) {
	records, err := h.repo.TasksByClient(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		h.internalError(w, r, err, "list tasks")
		return
	}

	writeJSON(w, http.StatusOK, taskList(records))
}

// CreateTask handles POST /api/v1/clients/tasks. The request body speaks
// the API's Portuguese field names.
func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Description == "" || req.EstimatedHours < 1 || req.DueDate == "" {
		writeMessage(w, http.StatusBadRequest, "Name, description, due date and at least one estimated hour are required")
		return
	}
	if req.Priority == "" {
		req.Priority = models.PriorityMedium
	}

	client, err := h.repo.UserByID(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		h.internalError(w, r, err, "find user")
		return
	}
	if req.EstimatedHours > client.HoursTotal-client.HoursUsed {
		logger.FromRequest(r).Warn().Err(ErrInsufficientHours).
			Str("client_id", client.ID).
			Int("estimated_hours", req.EstimatedHours).
			Msg("task rejected")
		writeMessage(w, http.StatusBadRequest, "Insufficient hours in your bank for this task")
		return
	}

	record := TaskRecord{
		ID:             uuid.NewString(),
		ClientID:       client.ID,
		Name:           req.Name,
		Description:    req.Description,
		Priority:       req.Priority,
		Status:         models.StatusPending,
		EstimatedHours: req.EstimatedHours,
		DueDate:        req.DueDate,
		AssignedTo:     req.AssignedTo,
	}
	if err := h.repo.CreateTask(r.Context(), record); err != nil {
		h.internalError(w, r, err, "create task")
		return
	}

	writeJSON(w, http.StatusCreated, record.Task())
}

// HourBank handles GET /api/v1/clients/hour-bank. The consumption
// breakdown is derived from the client's completed tasks.
func (h *Handler) HourBank(w http.ResponseWriter, r *http.Request) {
	client, err := h.repo.UserByID(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		h.internalError(w, r, err, "find user")
		return
	}

	completed, err := h.repo.TaskHistory(r.Context(), client.ID, models.StatusCompleted)
	if err != nil {
		h.internalError(w, r, err, "list completed tasks")
		return
	}

	bank := models.HourBank{
		Plan:           client.Plan,
		Total:          client.HoursTotal,
		Used:           client.HoursUsed,
		Available:      client.HoursTotal - client.HoursUsed,
		CompletedTasks: len(completed),
		DetailedHours:  make([]models.HourDetail, 0, len(completed)),
	}
	for _, task := range completed {
		bank.DetailedHours = append(bank.DetailedHours, models.HourDetail{
			Task:           task.Name,
			HoursSpent:     task.ActualHours,
			CompletionDate: task.CompletedAt,
		})
	}

	writeJSON(w, http.StatusOK, bank)
}

// TaskHistory handles GET /api/v1/clients/tasks/history. The optional
// status query filters the result.
func (h *Handler) TaskHistory(w http.ResponseWriter, r *http.Request) {
	records, err := h.repo.TaskHistory(r.Context(), UserIDFromContext(r.Context()), r.URL.Query().Get("status"))
	if err != nil {
		h.internalError(w, r, err, "list task history")
		return
	}

	writeJSON(w, http.StatusOK, taskList(records))
}

func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, err error, action string) {
	logger.FromRequest(r).Error().Err(err).Msg(action + " failed")
	writeMessage(w, http.StatusInternalServerError, "Internal server error")
}

func taskList(records []TaskRecord) []models.Task {
	tasks := make([]models.Task, 0, len(records))
	for _, record := range records {
		tasks = append(tasks, record.Task())
	}
	return tasks
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.APIMessage{Message: message})
}
