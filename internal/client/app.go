package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/techsolutions/horabank/internal/adapter"
	"github.com/techsolutions/horabank/internal/config"
	"github.com/techsolutions/horabank/internal/logger"
	"github.com/techsolutions/horabank/internal/service"
	"github.com/techsolutions/horabank/internal/store"
	"github.com/techsolutions/horabank/internal/tui"
	"github.com/techsolutions/horabank/internal/workers"
)

// App is the interactive client: stores, gateway, background refresh,
// and the terminal UI assembled from a [config.ClientConfig].
type App struct {
	services *service.Services
	workers  *workers.Workers
	tui      *tui.TUI
	logger   *logger.Logger
}

// NewApp wires the client application from its configuration.
func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	creds, err := store.NewCredentialStore(cfg.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("create credential store: %w", err)
	}

	notifier := tui.NewToastNotifier()

	gateway, err := adapter.NewHTTPGateway(adapter.HTTPGatewayConfig{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.RequestTimeout,
	}, creds, log)
	if err != nil {
		return nil, fmt.Errorf("create gateway: %w", err)
	}

	services := service.NewServices(gateway, creds, notifier, log)

	refresh := service.NewRefreshJob(services.Session, services.Domain, cfg.RefreshInterval, log)

	return &App{
		services: services,
		workers:  workers.New(refresh),
		tui:      tui.New(services, notifier, log),
		logger:   log,
	}, nil
}

// Run starts the background workers and blocks in the terminal UI until
// the user quits. A user-initiated quit is not an error.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.workers.Run(ctx)

	err := a.tui.Run(ctx)

	cancel()
	a.workers.Wait()

	if err != nil && !errors.Is(err, tui.ErrUserQuit) {
		return fmt.Errorf("run ui: %w", err)
	}

	a.logger.Info().Msg("client exited")
	return nil
}
