package tui

import (
	"github.com/techsolutions/horabank/models"
)

type loginDoneMsg struct {
	role string
	err  error
}

type registerDoneMsg struct {
	err error
}

type logoutDoneMsg struct {
	err error
}

type profileSavedMsg struct {
	err error
}

type tasksLoadedMsg struct {
	err error
}

type usersLoadedMsg struct {
	err error
}

type hourBankLoadedMsg struct {
	err error
}

type taskCreatedMsg struct {
	task *models.Task
	err  error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
