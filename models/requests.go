package models

// LoginRequest carries the credentials for POST /api/v1/auth/login.
// Both fields are required non-empty at the form boundary; the session
// store does not re-validate them.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterForm is the registration form as filled in by the user,
// including the confirmation password that never leaves the client.
// The session store checks Password == ConfirmPassword before any
// network call and strips the confirmation from the wire payload.
type RegisterForm struct {
	Name            string    `json:"name" validate:"required"`
	Email           string    `json:"email" validate:"required,email"`
	Password        string    `json:"password" validate:"required,min=6"`
	ConfirmPassword string    `json:"confirmPassword" validate:"required"`
	Role            string    `json:"role" validate:"omitempty,oneof=client developer admin"`
	HourBank        *HourPlan `json:"hourBank,omitempty"`
	Skills          []string  `json:"skills,omitempty"`
}

// RegisterRequest is the wire payload for POST /api/v1/auth/signup.
// Built from a [RegisterForm] with the confirmation stripped and the
// role/hour-bank defaults applied.
type RegisterRequest struct {
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Password string    `json:"password"`
	Role     string    `json:"role"`
	HourBank *HourPlan `json:"hourBank,omitempty"`
	Skills   []string  `json:"skills"`
}

// ProfileUpdate is the partial-user payload for
// PUT /api/v1/auth/update-profile. Zero-valued fields are omitted so the
// server only touches what the user actually changed.
type ProfileUpdate struct {
	Name     string   `json:"name,omitempty"`
	Email    string   `json:"email,omitempty" validate:"omitempty,email"`
	Skills   []string `json:"skills,omitempty"`
	Password string   `json:"password,omitempty"`
}

// TaskForm is the create-task dialog input in the client's own terms.
// Validation mirrors the original form schema: required strings, a known
// priority, and at least one estimated hour.
type TaskForm struct {
	Name           string `validate:"required"`
	Description    string `validate:"required"`
	Priority       string `validate:"required,oneof=low medium high"`
	EstimatedHours int    `validate:"required,min=1"`
	DueDate        string `validate:"required"`
	AssignedTo     string `validate:"omitempty"`
}

// CreateTaskRequest is the wire payload for POST /api/v1/clients/tasks.
// The API speaks Portuguese field names on this endpoint.
type CreateTaskRequest struct {
	Name           string `json:"nome"`
	Description    string `json:"descricao"`
	Priority       string `json:"prioridade"`
	EstimatedHours int    `json:"horasEstimadas"`
	DueDate        string `json:"dataVencimento"`
	AssignedTo     string `json:"atribuirDesenvolvedor,omitempty"`
}

// CreateTaskRequestFrom maps a validated [TaskForm] onto the Portuguese
// wire payload.
func CreateTaskRequestFrom(form TaskForm) CreateTaskRequest {
	return CreateTaskRequest{
		Name:           form.Name,
		Description:    form.Description,
		Priority:       form.Priority,
		EstimatedHours: form.EstimatedHours,
		DueDate:        form.DueDate,
		AssignedTo:     form.AssignedTo,
	}
}
