package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/techsolutions/horabank/models"
)

var taskPriorities = []string{models.PriorityLow, models.PriorityMedium, models.PriorityHigh}

type taskFormModel struct {
	inputs      []textinput.Model
	focus       int
	priorityIdx int
	submitting  bool
	errMsg      string
}

func newTaskFormModel() taskFormModel {
	fields := make([]textinput.Model, 5)

	fields[0] = textinput.New()
	fields[0].Placeholder = "task name"
	fields[0].Width = 40
	fields[0].Focus()

	fields[1] = textinput.New()
	fields[1].Placeholder = "description"
	fields[1].CharLimit = 512
	fields[1].Width = 40

	fields[2] = textinput.New()
	fields[2].Placeholder = "estimated hours"
	fields[2].CharLimit = 4
	fields[2].Width = 10

	fields[3] = textinput.New()
	fields[3].Placeholder = "2026-12-31"
	fields[3].CharLimit = 10
	fields[3].Width = 12

	fields[4] = textinput.New()
	fields[4].Placeholder = "developer id (optional)"
	fields[4].Width = 40

	return taskFormModel{inputs: fields, priorityIdx: 1}
}

func (m taskFormModel) priority() string {
	return taskPriorities[m.priorityIdx]
}

func (m taskFormModel) form() (models.TaskForm, error) {
	hours, err := strconv.Atoi(strings.TrimSpace(m.inputs[2].Value()))
	if err != nil {
		hours = 0
	}

	return models.TaskForm{
		Name:           strings.TrimSpace(m.inputs[0].Value()),
		Description:    strings.TrimSpace(m.inputs[1].Value()),
		Priority:       m.priority(),
		EstimatedHours: hours,
		DueDate:        strings.TrimSpace(m.inputs[3].Value()),
		AssignedTo:     strings.TrimSpace(m.inputs[4].Value()),
	}, nil
}

func (m taskFormModel) View() string {
	var b strings.Builder
	b.WriteString("Field            │ Value\n")
	b.WriteString("─────────────────┼──────────────────────────────────\n")
	b.WriteString("Name             │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Description      │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Priority         │ ◂ " + m.priority() + " ▸\n")
	b.WriteString("Estimated hours  │ [")
	b.WriteString(m.inputs[2].View())
	b.WriteString("]\n")
	b.WriteString("Due date         │ [")
	b.WriteString(m.inputs[3].View())
	b.WriteString("]\n")
	b.WriteString("Assign to        │ [")
	b.WriteString(m.inputs[4].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Creating...]\n")
	} else {
		b.WriteString("\n[Create task]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("NEW TASK", strings.TrimRight(b.String(), "\n"),
		"esc: back │ tab: next field │ ◂▸ priority │ enter: submit")
}
