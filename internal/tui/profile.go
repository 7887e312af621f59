package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/techsolutions/horabank/models"
)

type profileModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newProfileModel() profileModel {
	fields := make([]textinput.Model, 4)

	fields[0] = textinput.New()
	fields[0].Placeholder = "name"
	fields[0].Width = 40
	fields[0].Focus()

	fields[1] = textinput.New()
	fields[1].Placeholder = "email"
	fields[1].CharLimit = 128
	fields[1].Width = 40

	fields[2] = textinput.New()
	fields[2].Placeholder = "skills, comma separated"
	fields[2].Width = 40

	fields[3] = textinput.New()
	fields[3].Placeholder = "new password (leave empty to keep)"
	fields[3].EchoMode = textinput.EchoPassword
	fields[3].EchoCharacter = '*'
	fields[3].Width = 40

	return profileModel{inputs: fields}
}

// prefill seeds the form from the current user so fields the user leaves
// alone are sent back unchanged.
func (m *profileModel) prefill(user *models.User) {
	if user == nil {
		return
	}
	m.inputs[0].SetValue(user.Name)
	m.inputs[1].SetValue(user.Email)
	m.inputs[2].SetValue(strings.Join(user.Skills, ", "))
	m.inputs[3].SetValue("")
}

func (m profileModel) update() models.ProfileUpdate {
	var skills []string
	for _, s := range strings.Split(m.inputs[2].Value(), ",") {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}

	return models.ProfileUpdate{
		Name:     strings.TrimSpace(m.inputs[0].Value()),
		Email:    strings.TrimSpace(m.inputs[1].Value()),
		Skills:   skills,
		Password: m.inputs[3].Value(),
	}
}

func (m profileModel) View() string {
	var b strings.Builder
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────\n")
	b.WriteString("Name      │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Email     │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Skills    │ [")
	b.WriteString(m.inputs[2].View())
	b.WriteString("]\n")
	b.WriteString("Password  │ [")
	b.WriteString(m.inputs[3].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save profile]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("PROFILE", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: save")
}
