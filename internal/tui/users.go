package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/techsolutions/horabank/models"
)

type usersModel struct {
	items   []models.DirectoryUser
	idx     int
	loading bool
	spinner spinner.Model
	status  string
}

func newUsersModel() usersModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return usersModel{spinner: s}
}

func (m usersModel) current() (models.DirectoryUser, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.DirectoryUser{}, false
	}
	return m.items[m.idx], true
}

func (m usersModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading team...\n")
	} else if len(m.items) == 0 {
		b.WriteString("Nobody here yet.\n")
	} else {
		for i, user := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%-10s %-24s %s\n",
				cursor, user.Role, fitText(user.Name, 24), user.Email))
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(successStyle.Render(m.status))
		b.WriteString("\n")
	}

	return renderPage("TEAM", strings.TrimRight(b.String(), "\n"), "esc: back │ r refresh │ c copy id")
}
