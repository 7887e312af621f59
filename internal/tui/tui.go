// Package tui is the terminal front end. It renders the session and
// domain state owned by the service stores and translates key presses
// into store operations; all remote work happens in async commands so
// the interface never blocks on the network.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/techsolutions/horabank/internal/logger"
	"github.com/techsolutions/horabank/internal/service"
	"github.com/techsolutions/horabank/internal/validators"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services  *service.Services
	validator validators.Validator
	notifier  *ToastNotifier
	logger    *logger.Logger
}

// New builds the terminal front end on top of the shared stores. The
// returned [ToastNotifier] from [NewToastNotifier] must be the same one
// wired into the stores, otherwise operation toasts never reach the
// screen.
func New(services *service.Services, notifier *ToastNotifier, log *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		validator: validators.NewFormValidator(),
		notifier:  notifier,
		logger:    log,
	}
}

// Run blocks until the user quits or the program fails. A quit via the
// quit key returns [ErrUserQuit] so the caller can distinguish it from a
// terminal failure.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.validator, t.notifier)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
