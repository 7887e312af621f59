package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/techsolutions/horabank/models"
)

type tasksModel struct {
	items   []models.Task
	idx     int
	loading bool
	spinner spinner.Model
	status  string
	role    string
}

func newTasksModel() tasksModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return tasksModel{spinner: s, loading: true}
}

func (m tasksModel) current() (models.Task, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Task{}, false
	}
	return m.items[m.idx], true
}

func statusIcon(status string) string {
	switch status {
	case models.StatusPending:
		return "[ ]"
	case models.StatusInProgress:
		return "[~]"
	case models.StatusCompleted:
		return "[x]"
	default:
		return "[?]"
	}
}

func (m tasksModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading tasks...\n")
	} else if len(m.items) == 0 {
		b.WriteString("No tasks yet. Press n to create one.\n")
	} else {
		for i, task := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%s %-9s %s (%s)\n",
				cursor, statusIcon(task.Status), task.Priority,
				fitText(task.Name, 34), hoursLabel(task.EstimatedHours)))
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(successStyle.Render(m.status))
		b.WriteString("\n")
	}

	return renderPage(m.title(), strings.TrimRight(b.String(), "\n"), m.hotKeys())
}

// Each role lands on its own variant of the task list: clients get the
// hour-bank panel, developers see only the work assigned to them, admins
// get the full directory shortcut.
func (m tasksModel) title() string {
	switch m.role {
	case models.RoleAdmin:
		return "ADMIN / ALL TASKS"
	case models.RoleDeveloper:
		return "MY ASSIGNMENTS"
	default:
		return "CLIENT DASHBOARD"
	}
}

func (m tasksModel) hotKeys() string {
	if m.role == models.RoleAdmin || m.role == models.RoleDeveloper {
		return "r refresh │ c copy id │ u team │ p profile │ x sign out"
	}
	return "n new │ r refresh │ c copy id │ b hours │ u team │ p profile │ x sign out"
}
