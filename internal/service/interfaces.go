package service

import (
	"context"

	"github.com/MKhiriev/lb-dashboard/models"
)

// ConfigEnricher reads the load balancer documents and joins every
// frontend's default backend name to the backend record it names.
type ConfigEnricher interface {
	// FetchConfig returns the configuration document as served, not enriched.
	FetchConfig(ctx context.Context) (models.Config, error)
	// FetchInfo returns the runtime status document verbatim.
	FetchInfo(ctx context.Context) (models.Info, error)
	// Enrich resolves default backends. It never fails and never modifies cfg.
	Enrich(cfg models.Config) models.Config
	// Load fetches both documents concurrently and enriches the config.
	// Each fetch error is recorded in the result instead of being returned.
	Load(ctx context.Context) models.Dashboard
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
