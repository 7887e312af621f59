package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/techsolutions/horabank/models"
)

var registerRoles = []string{models.RoleClient, models.RoleDeveloper}

var registerPlans = []string{models.PlanBasic, models.PlanStandard, models.PlanPremium}

type registerModel struct {
	inputs     []textinput.Model
	focus      int
	roleIdx    int
	planIdx    int
	submitting bool
	errMsg     string
}

func newRegisterModel() registerModel {
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
	fields[2].Placeholder = "password"
	fields[2].EchoMode = textinput.EchoPassword
	fields[2].EchoCharacter = '*'
	fields[2].Width = 40

	fields[3] = textinput.New()
	fields[3].Placeholder = "repeat password"
	fields[3].EchoMode = textinput.EchoPassword
	fields[3].EchoCharacter = '*'
	fields[3].Width = 40

	return registerModel{inputs: fields}
}

func (m registerModel) role() string {
	return registerRoles[m.roleIdx]
}

func (m registerModel) plan() string {
	return registerPlans[m.planIdx]
}

func (m registerModel) form() models.RegisterForm {
	form := models.RegisterForm{
		Name:            strings.TrimSpace(m.inputs[0].Value()),
		Email:           strings.TrimSpace(m.inputs[1].Value()),
		Password:        m.inputs[2].Value(),
		ConfirmPassword: m.inputs[3].Value(),
		Role:            m.role(),
	}

	// developers have no hour bank; clients get the selected plan
	if form.Role == models.RoleClient {
		plan := m.plan()
		form.HourBank = &models.HourPlan{Total: models.PlanHours(plan), Used: 0, Plan: plan}
	}

	return form
}

func (m registerModel) View() string {
	var b strings.Builder
	b.WriteString("Field            │ Value\n")
	b.WriteString("─────────────────┼──────────────────────────────────\n")
	b.WriteString("Name             │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Email            │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Password         │ [")
	b.WriteString(m.inputs[2].View())
	b.WriteString("]\n")
	b.WriteString("Repeat password  │ [")
	b.WriteString(m.inputs[3].View())
	b.WriteString("]\n")
	b.WriteString("Role             │ ◂ " + m.role() + " ▸\n")
	if m.role() == models.RoleClient {
		b.WriteString("Plan             │ ◂ " + m.plan() + " (" + hoursLabel(models.PlanHours(m.plan())) + ") ▸\n")
	}

	if m.submitting {
		b.WriteString("\n[Creating account...]\n")
	} else {
		b.WriteString("\n[Create account]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("CREATE ACCOUNT", strings.TrimRight(b.String(), "\n"),
		"esc: back │ tab: next field │ ◂▸ role/plan │ enter: submit")
}
