package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/lb-dashboard/internal/logger"
	"github.com/MKhiriev/lb-dashboard/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrNoServicesProvided = errors.New("no services provided")

type TUI struct {
	services *service.Services
	refresh  time.Duration

	logger *logger.Logger
}

func New(services *service.Services, refreshInterval time.Duration, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.ConfigEnricher == nil {
		return nil, ErrNoServicesProvided
	}
	return &TUI{services: services, refresh: refreshInterval, logger: logger}, nil
}

// Run shows the dashboard and blocks until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context) error {
	model := newDashboardModel(ctx, t.services, t.refresh)

	t.logger.Info().Dur("refresh", t.refresh).Msg("starting dashboard UI")
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
