package handler

import (
	"net/http"

	"github.com/MKhiriev/lb-dashboard/internal/config"
	httphandler "github.com/MKhiriev/lb-dashboard/internal/handler/http"
	"github.com/MKhiriev/lb-dashboard/internal/logger"
	"github.com/MKhiriev/lb-dashboard/internal/service"
)

type Handlers struct {
	HTTP *httphandler.Handler
}

// NewHandlers creates the transport handlers enabled by cfg. metrics is the
// Prometheus handler mounted at /metrics; nil disables the route.
func NewHandlers(services *service.Services, metrics http.Handler, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: httphandler.NewHandler(services, metrics, logger),
	}, nil
}
