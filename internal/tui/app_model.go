package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/techsolutions/horabank/internal/service"
	"github.com/techsolutions/horabank/internal/validators"
	"github.com/techsolutions/horabank/models"
)

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenTasks
	screenTaskForm
	screenHourBank
	screenUsers
	screenProfile
)

type appModel struct {
	ctx       context.Context
	services  *service.Services
	validator validators.Validator
	notifier  *ToastNotifier

	currentScreen screen

	welcome  welcomeModel
	login    loginModel
	register registerModel
	tasks    tasksModel
	taskForm taskFormModel
	hourBank hourBankModel
	users    usersModel
	profile  profileModel

	toast        string
	toastFailed  bool
	showError    bool
	errorOverlay errorOverlayModel
	quitByUser   bool
}

func newAppModel(ctx context.Context, services *service.Services, validator validators.Validator, notifier *ToastNotifier) appModel {
	m := appModel{
		ctx:       ctx,
		services:  services,
		validator: validator,
		notifier:  notifier,
		welcome:   newWelcomeModel(),
		login:     newLoginModel(),
		register:  newRegisterModel(),
		tasks:     newTasksModel(),
		taskForm:  newTaskFormModel(),
		hourBank:  newHourBankModel(),
		users:     newUsersModel(),
		profile:   newProfileModel(),
	}

	// a persisted token resumes straight into the task list
	if services.Session.Token() != "" {
		m.currentScreen = screenTasks
		if user := services.Session.User(); user != nil {
			m.tasks.role = user.Role
		}
	}

	return m
}

func (m appModel) Init() tea.Cmd {
	if m.currentScreen == screenTasks {
		return tea.Batch(m.tasks.spinner.Tick, m.cmdLoadTasks())
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}

	case loginDoneMsg:
		m.login.submitting = false
		m.drainToasts()
		if msg.err != nil {
			m.login.errMsg = lastToastText(m.toast)
			return m, nil
		}
		m.login = newLoginModel()
		m.tasks.role = msg.role
		m.tasks.status = "Signed in, landing at " + service.Destination(msg.role)
		m.currentScreen = screenTasks
		m.tasks.loading = true
		return m, tea.Batch(m.tasks.spinner.Tick, m.cmdLoadTasks(), cmdClearToast())

	case registerDoneMsg:
		m.register.submitting = false
		m.drainToasts()
		if msg.err != nil {
			m.register.errMsg = lastToastText(m.toast)
			return m, nil
		}
		m.register = newRegisterModel()
		if user := m.services.Session.User(); user != nil {
			m.tasks.role = user.Role
		}
		m.currentScreen = screenTasks
		m.tasks.loading = true
		return m, tea.Batch(m.tasks.spinner.Tick, m.cmdLoadTasks(), cmdClearToast())

	case logoutDoneMsg:
		m.drainToasts()
		m.currentScreen = screenWelcome
		m.welcome = newWelcomeModel()
		m.tasks = newTasksModel()
		m.hourBank = newHourBankModel()
		m.users = newUsersModel()
		return m, cmdClearToast()

	case profileSavedMsg:
		m.profile.submitting = false
		m.drainToasts()
		if msg.err != nil {
			m.profile.errMsg = lastToastText(m.toast)
			return m, nil
		}
		m.profile.errMsg = ""
		m.currentScreen = screenTasks
		return m, cmdClearToast()

	case tasksLoadedMsg:
		m.tasks.loading = false
		m.drainToasts()
		if msg.err != nil {
			m.showError = true
			m.errorOverlay.message = lastToastText(m.toast)
		}
		m.tasks.items = m.services.Domain.Tasks()
		if m.tasks.idx >= len(m.tasks.items) {
			m.tasks.idx = len(m.tasks.items) - 1
		}
		if m.tasks.idx < 0 {
			m.tasks.idx = 0
		}
		return m, cmdClearToast()

	case usersLoadedMsg:
		m.users.loading = false
		m.drainToasts()
		m.users.items = m.services.Domain.Users()
		if m.users.idx >= len(m.users.items) {
			m.users.idx = len(m.users.items) - 1
		}
		if m.users.idx < 0 {
			m.users.idx = 0
		}
		return m, cmdClearToast()

	case hourBankLoadedMsg:
		m.hourBank.loading = false
		m.drainToasts()
		if msg.err != nil {
			m.showError = true
			m.errorOverlay.message = lastToastText(m.toast)
		}
		m.hourBank.bank = m.services.Domain.HourBank()
		return m, cmdClearToast()

	case taskCreatedMsg:
		m.taskForm.submitting = false
		m.drainToasts()
		if msg.err != nil {
			m.taskForm.errMsg = lastToastText(m.toast)
			return m, nil
		}
		m.taskForm = newTaskFormModel()
		m.currentScreen = screenTasks
		m.tasks.items = m.services.Domain.Tasks()
		return m, cmdClearToast()

	case copiedMsg:
		m.tasks.status = "Copied!"
		m.users.status = "Copied!"
		return m, cmdClearToast()

	case clearStatusMsg:
		m.toast = ""
		m.tasks.status = ""
		m.users.status = ""
		return m, nil

	case spinner.TickMsg:
		var cmds []tea.Cmd
		if m.tasks.loading {
			var cmd tea.Cmd
			m.tasks.spinner, cmd = m.tasks.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
		if m.users.loading {
			var cmd tea.Cmd
			m.users.spinner, cmd = m.users.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
		if m.hourBank.loading {
			var cmd tea.Cmd
			m.hourBank.spinner, cmd = m.hourBank.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenTasks:
		return m.updateTasks(msg)
	case screenTaskForm:
		return m.updateTaskForm(msg)
	case screenHourBank:
		return m.updateHourBank(msg)
	case screenUsers:
		return m.updateUsers(msg)
	case screenProfile:
		return m.updateProfile(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.register.View()
	case screenTasks:
		body = m.tasks.View()
	case screenTaskForm:
		body = m.taskForm.View()
	case screenHourBank:
		body = m.hourBank.View()
	case screenUsers:
		body = m.users.View()
	case screenProfile:
		body = m.profile.View()
	}

	if m.toast != "" {
		line := successStyle.Render(m.toast)
		if m.toastFailed {
			line = errorStyle.Render(m.toast)
		}
		body += "\n\n" + line
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

// ── Screen updates ───────────────────────────────────────────────────────────

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m.currentScreen = screenLogin
		} else {
			m.currentScreen = screenRegister
		}
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.login = newLoginModel()
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login.inputs, m.login.focus = focusNext(m.login.inputs, m.login.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login.inputs, m.login.focus = focusPrev(m.login.inputs, m.login.focus)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}

			creds := models.LoginRequest{
				Email:    strings.TrimSpace(m.login.inputs[0].Value()),
				Password: m.login.inputs[1].Value(),
			}
			if err := m.validator.Validate(m.ctx, creds); err != nil {
				m.login.errMsg = err.Error()
				return m, nil
			}

			m.login.errMsg = ""
			m.login.submitting = true
			return m, m.cmdLogin(creds)
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.register = newRegisterModel()
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register.inputs, m.register.focus = focusNext(m.register.inputs, m.register.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register.inputs, m.register.focus = focusPrev(m.register.inputs, m.register.focus)
			return m, nil
		case key.Matches(keyMsg, keys.left):
			m.register.roleIdx = (m.register.roleIdx - 1 + len(registerRoles)) % len(registerRoles)
			return m, nil
		case key.Matches(keyMsg, keys.right):
			m.register.roleIdx = (m.register.roleIdx + 1) % len(registerRoles)
			return m, nil
		case keyMsg.String() == "[":
			m.register.planIdx = (m.register.planIdx - 1 + len(registerPlans)) % len(registerPlans)
			return m, nil
		case keyMsg.String() == "]":
			m.register.planIdx = (m.register.planIdx + 1) % len(registerPlans)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.register.submitting {
				return m, nil
			}

			form := m.register.form()
			if err := m.validator.Validate(m.ctx, form); err != nil {
				m.register.errMsg = err.Error()
				return m, nil
			}

			m.register.errMsg = ""
			m.register.submitting = true
			return m, m.cmdRegister(form)
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateTasks(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.tasks.idx > 0 {
			m.tasks.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.tasks.idx < len(m.tasks.items)-1 {
			m.tasks.idx++
		}
	case key.Matches(keyMsg, keys.newTask):
		// only clients create tasks against their hour bank
		if m.tasks.role == models.RoleAdmin || m.tasks.role == models.RoleDeveloper {
			return m, nil
		}
		m.taskForm = newTaskFormModel()
		m.currentScreen = screenTaskForm
	case key.Matches(keyMsg, keys.refresh):
		if m.tasks.loading {
			return m, nil
		}
		m.tasks.loading = true
		return m, tea.Batch(m.tasks.spinner.Tick, m.cmdLoadTasks())
	case key.Matches(keyMsg, keys.copy):
		task, ok := m.tasks.current()
		if !ok {
			return m, nil
		}
		return m, cmdCopyToClipboard(task.ID)
	case key.Matches(keyMsg, keys.hourBank):
		if m.tasks.role == models.RoleAdmin || m.tasks.role == models.RoleDeveloper {
			return m, nil
		}
		m.currentScreen = screenHourBank
		m.hourBank.loading = true
		return m, tea.Batch(m.hourBank.spinner.Tick, m.cmdLoadHourBank())
	case key.Matches(keyMsg, keys.users):
		m.currentScreen = screenUsers
		m.users.loading = true
		return m, tea.Batch(m.users.spinner.Tick, m.cmdLoadUsers())
	case key.Matches(keyMsg, keys.profile):
		m.profile = newProfileModel()
		m.profile.prefill(m.services.Session.User())
		m.currentScreen = screenProfile
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateTaskForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenTasks
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.taskForm.inputs, m.taskForm.focus = focusNext(m.taskForm.inputs, m.taskForm.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.taskForm.inputs, m.taskForm.focus = focusPrev(m.taskForm.inputs, m.taskForm.focus)
			return m, nil
		case keyMsg.String() == "[":
			m.taskForm.priorityIdx = (m.taskForm.priorityIdx - 1 + len(taskPriorities)) % len(taskPriorities)
			return m, nil
		case keyMsg.String() == "]":
			m.taskForm.priorityIdx = (m.taskForm.priorityIdx + 1) % len(taskPriorities)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.taskForm.submitting {
				return m, nil
			}

			form, _ := m.taskForm.form()
			if err := m.validator.Validate(m.ctx, form); err != nil {
				m.taskForm.errMsg = err.Error()
				return m, nil
			}

			m.taskForm.errMsg = ""
			m.taskForm.submitting = true
			return m, m.cmdCreateTask(form)
		}
	}

	var cmd tea.Cmd
	m.taskForm.inputs[m.taskForm.focus], cmd = m.taskForm.inputs[m.taskForm.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateHourBank(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenTasks
	case key.Matches(keyMsg, keys.refresh):
		if m.hourBank.loading {
			return m, nil
		}
		m.hourBank.loading = true
		return m, tea.Batch(m.hourBank.spinner.Tick, m.cmdLoadHourBank())
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateUsers(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenTasks
	case key.Matches(keyMsg, keys.up):
		if m.users.idx > 0 {
			m.users.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.users.idx < len(m.users.items)-1 {
			m.users.idx++
		}
	case key.Matches(keyMsg, keys.refresh):
		if m.users.loading {
			return m, nil
		}
		m.users.loading = true
		return m, tea.Batch(m.users.spinner.Tick, m.cmdLoadUsers())
	case key.Matches(keyMsg, keys.copy):
		user, ok := m.users.current()
		if !ok {
			return m, nil
		}
		return m, cmdCopyToClipboard(user.ID)
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenTasks
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.profile.inputs, m.profile.focus = focusNext(m.profile.inputs, m.profile.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.profile.inputs, m.profile.focus = focusPrev(m.profile.inputs, m.profile.focus)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.profile.submitting {
				return m, nil
			}

			update := m.profile.update()
			if err := m.validator.Validate(m.ctx, update); err != nil {
				m.profile.errMsg = err.Error()
				return m, nil
			}

			m.profile.errMsg = ""
			m.profile.submitting = true
			return m, m.cmdUpdateProfile(update)
		}
	}

	var cmd tea.Cmd
	m.profile.inputs[m.profile.focus], cmd = m.profile.inputs[m.profile.focus].Update(msg)
	return m, cmd
}

// ── Commands ─────────────────────────────────────────────────────────────────

func (m appModel) cmdLogin(creds models.LoginRequest) tea.Cmd {
	ctx := m.ctx
	session := m.services.Session
	return func() tea.Msg {
		var role string
		err := session.Login(ctx, creds, func(r string) { role = r })
		return loginDoneMsg{role: role, err: err}
	}
}

func (m appModel) cmdRegister(form models.RegisterForm) tea.Cmd {
	ctx := m.ctx
	session := m.services.Session
	return func() tea.Msg {
		return registerDoneMsg{err: session.Register(ctx, form)}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	session := m.services.Session
	return func() tea.Msg {
		return logoutDoneMsg{err: session.Logout(ctx)}
	}
}

func (m appModel) cmdUpdateProfile(update models.ProfileUpdate) tea.Cmd {
	ctx := m.ctx
	session := m.services.Session
	return func() tea.Msg {
		return profileSavedMsg{err: session.UpdateProfile(ctx, update)}
	}
}

func (m appModel) cmdLoadTasks() tea.Cmd {
	ctx := m.ctx
	domain := m.services.Domain
	return func() tea.Msg {
		return tasksLoadedMsg{err: domain.FetchTasks(ctx)}
	}
}

func (m appModel) cmdLoadUsers() tea.Cmd {
	ctx := m.ctx
	domain := m.services.Domain
	return func() tea.Msg {
		return usersLoadedMsg{err: domain.FetchUsers(ctx)}
	}
}

func (m appModel) cmdLoadHourBank() tea.Cmd {
	ctx := m.ctx
	domain := m.services.Domain
	return func() tea.Msg {
		return hourBankLoadedMsg{err: domain.FetchHourBank(ctx)}
	}
}

func (m appModel) cmdCreateTask(form models.TaskForm) tea.Cmd {
	ctx := m.ctx
	domain := m.services.Domain
	return func() tea.Msg {
		task, err := domain.CreateTask(ctx, form)
		return taskCreatedMsg{task: task, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return clearStatusMsg{}
		}
		return copiedMsg{}
	}
}

func cmdClearToast() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// drainToasts moves queued store notifications into the toast line. The
// last queued entry wins the display slot.
func (m *appModel) drainToasts() {
	for _, n := range m.notifier.Drain() {
		m.toast = fmt.Sprintf("%s %s", n.Title, n.Description)
		m.toastFailed = n.Variant == service.VariantDestructive
	}
}

func lastToastText(toast string) string {
	if toast == "" {
		return "something went wrong"
	}
	return toast
}

func focusNext(inputs []textinput.Model, focus int) ([]textinput.Model, int) {
	inputs[focus].Blur()
	focus = (focus + 1) % len(inputs)
	inputs[focus].Focus()
	return inputs, focus
}

func focusPrev(inputs []textinput.Model, focus int) ([]textinput.Model, int) {
	inputs[focus].Blur()
	focus = (focus - 1 + len(inputs)) % len(inputs)
	inputs[focus].Focus()
	return inputs, focus
}
