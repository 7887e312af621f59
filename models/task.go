package models

// Task priorities accepted by the API.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task statuses reported by the API. Status transitions are server-owned;
// the client only displays them.
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// Task is a unit of work created by a client against their hour bank.
// Instances are created server-side; the client appends the server-returned
// object to its local collection only after the server confirms creation.
type Task struct {
	// ID is the server-assigned identifier.
	ID string `json:"_id"`

	Name        string `json:"name"`
	Description string `json:"description"`

	// Priority is one of low, medium, or high.
	Priority string `json:"priority"`

	// Status is one of pending, in-progress, or completed.
	Status string `json:"status"`

	// EstimatedHours is the client's estimate; the API requires >= 1.
	EstimatedHours int `json:"estimatedHours"`

	// ActualHours is filled in by the server once work is logged.
	ActualHours int `json:"actualHours,omitempty"`

	// DueDate is the requested completion date in ISO-8601 form.
	DueDate string `json:"dueDate"`

	// AssignedTo is the ID of the developer working on the task, if any.
	AssignedTo string `json:"assignedTo,omitempty"`
}
