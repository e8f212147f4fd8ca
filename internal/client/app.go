package client

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/lb-dashboard/internal/adapter"
	"github.com/MKhiriev/lb-dashboard/internal/config"
	"github.com/MKhiriev/lb-dashboard/internal/handler"
	"github.com/MKhiriev/lb-dashboard/internal/logger"
	"github.com/MKhiriev/lb-dashboard/internal/metrics"
	"github.com/MKhiriev/lb-dashboard/internal/report"
	"github.com/MKhiriev/lb-dashboard/internal/server"
	"github.com/MKhiriev/lb-dashboard/internal/service"
	"github.com/MKhiriev/lb-dashboard/internal/tui"
	"github.com/MKhiriev/lb-dashboard/models"
)

// App runs the command selected in its configuration.
type App struct {
	cfg       *config.StructuredConfig
	buildInfo models.AppBuildInfo
	stdout    io.Writer

	logger *logger.Logger
}

func NewApp(cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, stdout io.Writer, logger *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, ErrNoConfigProvided
	}

	return &App{
		cfg:       cfg,
		buildInfo: buildInfo,
		stdout:    stdout,
		logger:    logger,
	}, nil
}

// Run implements [Client].
func (a *App) Run(ctx context.Context) error {
	a.logger.Debug().Str("command", a.cfg.Command).Msg("running command")

	switch a.cfg.Command {
	case config.CommandServe:
		return a.runServe(ctx)
	case config.CommandDump:
		return a.runDump(ctx)
	default:
		return a.runTUI(ctx)
	}
}

func (a *App) runTUI(ctx context.Context) error {
	services, err := a.newServices(nil)
	if err != nil {
		return err
	}

	ui, err := tui.New(services, a.cfg.Workers.RefreshInterval, a.logger)
	if err != nil {
		return fmt.Errorf("error creating ui: %w", err)
	}

	return ui.Run(ctx)
}

// runDump fails when the config document could not be fetched. A failed
// info fetch is only reported in the output.
func (a *App) runDump(ctx context.Context) error {
	services, err := a.newServices(nil)
	if err != nil {
		return err
	}

	dashboard := services.ConfigEnricher.Load(ctx)
	if err = report.Write(a.stdout, dashboard, a.cfg.Report.Format); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}

	if dashboard.ConfigErr != nil {
		return fmt.Errorf("%w: %w", ErrConfigFetch, dashboard.ConfigErr)
	}
	return nil
}

func (a *App) runServe(ctx context.Context) error {
	srv, err := a.newServer()
	if err != nil {
		return err
	}
	return srv.RunServer(ctx)
}

func (a *App) newServer() (server.Server, error) {
	collector := metrics.NewCollector(a.buildInfo)

	services, err := a.newServices(collector)
	if err != nil {
		return nil, err
	}

	handlers, err := handler.NewHandlers(services, metrics.Handler(metrics.NewRegistry(collector)), a.cfg.Server, a.logger)
	if err != nil {
		return nil, fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, a.cfg.Server, a.logger)
	if err != nil {
		return nil, fmt.Errorf("error creating server: %w", err)
	}
	return srv, nil
}

// newServices builds the adapter and services. A non-nil collector wraps the
// adapter with fetch metrics.
func (a *App) newServices(collector *metrics.Collector) (*service.Services, error) {
	lbAdapter, err := adapter.NewHTTPLoadBalancerAdapter(a.cfg.Adapter, a.logger)
	if err != nil {
		return nil, fmt.Errorf("error creating load balancer adapter: %w", err)
	}
	if collector != nil {
		lbAdapter = metrics.InstrumentAdapter(lbAdapter, collector)
	}

	services, err := service.NewServices(lbAdapter, a.buildInfo, a.logger)
	if err != nil {
		return nil, fmt.Errorf("error creating services: %w", err)
	}
	return services, nil
}
