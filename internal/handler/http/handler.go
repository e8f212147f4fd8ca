package http

import (
	"net/http"

	"github.com/MKhiriev/lb-dashboard/internal/logger"
	"github.com/MKhiriev/lb-dashboard/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  http.Handler

	logger *logger.Logger
}

// NewHandler creates the API handler. metrics serves GET /metrics and may be
// nil, in which case the route is not registered.
func NewHandler(services *service.Services, metrics http.Handler, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  metrics,
		logger:   logger,
	}
}
