package service

import (
	"github.com/MKhiriev/lb-dashboard/internal/adapter"
	"github.com/MKhiriev/lb-dashboard/internal/logger"
	"github.com/MKhiriev/lb-dashboard/models"
)

type Services struct {
	ConfigEnricher ConfigEnricher
	AppInfoService AppInfoService
}

func NewServices(lbAdapter adapter.LoadBalancerAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	enricher, err := NewConfigEnricher(lbAdapter, logger)
	if err != nil {
		return nil, err
	}

	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		ConfigEnricher: enricher,
		AppInfoService: appInfo,
	}, nil
}
