package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/techsolutions/horabank/models"
)

type hourBankModel struct {
	bank    *models.HourBank
	loading bool
	spinner spinner.Model
}

func newHourBankModel() hourBankModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return hourBankModel{spinner: s}
}

func (m hourBankModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading hour bank...\n")
	case m.bank == nil:
		b.WriteString("No hour bank data. Press r to refresh.\n")
	default:
		bank := m.bank
		b.WriteString(fmt.Sprintf("Plan            %s\n", bank.Plan))
		b.WriteString(fmt.Sprintf("Purchased       %s\n", hoursLabel(bank.Total)))
		b.WriteString(fmt.Sprintf("Used            %s\n", hoursLabel(bank.Used)))
		b.WriteString(fmt.Sprintf("Available       %s\n", hoursLabel(bank.Available)))
		b.WriteString(fmt.Sprintf("Completed tasks %d\n", bank.CompletedTasks))

		if len(bank.DetailedHours) > 0 {
			b.WriteString("\nHistory:\n")
			for _, detail := range bank.DetailedHours {
				b.WriteString(fmt.Sprintf("  %-34s %8s  %s\n",
					fitText(detail.Task, 34), hoursLabel(detail.HoursSpent), detail.CompletionDate))
			}
		}
	}

	return renderPage("HOUR BANK", strings.TrimRight(b.String(), "\n"), "esc: back │ r refresh")
}
