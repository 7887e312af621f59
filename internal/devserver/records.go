package devserver

import (
	"encoding/json"
	"time"

	"github.com/techsolutions/horabank/models"
)

// UserRecord is a users table row. Skills are stored as a JSON array in
// a text column; sqlite has no native array type.
type UserRecord struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	Plan         string
	HoursTotal   int
	HoursUsed    int
	Skills       string
	CreatedAt    time.Time
}

// User converts the row into the API's session user representation.
func (r UserRecord) User() models.User {
	user := models.User{
		ID:    r.ID,
		Name:  r.Name,
		Email: r.Email,
		Role:  r.Role,
	}

	if r.Plan != "" {
		user.HourBank = &models.HourPlan{Total: r.HoursTotal, Used: r.HoursUsed, Plan: r.Plan}
	}

	var skills []string
	if err := json.Unmarshal([]byte(r.Skills), &skills); err == nil {
		user.Skills = skills
	}

	return user
}

// DirectoryUser converts the row into the read-only directory projection.
func (r UserRecord) DirectoryUser() models.DirectoryUser {
	return models.DirectoryUser{
		ID:    r.ID,
		Name:  r.Name,
		Email: r.Email,
		Role:  r.Role,
	}
}

func encodeSkills(skills []string) string {
	if skills == nil {
		skills = []string{}
	}
	raw, err := json.Marshal(skills)
	if err != nil {
		return "[]"
	}
	return string(raw)
}

// TaskRecord is a tasks table row.
type TaskRecord struct {
	ID             string
	ClientID       string
	Name           string
	Description    string
	Priority       string
	Status         string
	EstimatedHours int
	ActualHours    int
	DueDate        string
	AssignedTo     string
	CompletedAt    string
}

// Task converts the row into the API's task representation.
func (r TaskRecord) Task() models.Task {
	return models.Task{
		ID:             r.ID,
		Name:           r.Name,
		Description:    r.Description,
		Priority:       r.Priority,
		Status:         r.Status,
		EstimatedHours: r.EstimatedHours,
		ActualHours:    r.ActualHours,
		DueDate:        r.DueDate,
		AssignedTo:     r.AssignedTo,
	}
}
