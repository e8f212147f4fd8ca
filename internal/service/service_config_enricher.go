package service

import (
	"context"
	"time"

	"github.com/MKhiriev/lb-dashboard/internal/adapter"
	"github.com/MKhiriev/lb-dashboard/internal/logger"
	"github.com/MKhiriev/lb-dashboard/models"
	"golang.org/x/sync/errgroup"
)

type configEnricher struct {
	adapter adapter.LoadBalancerAdapter
	now     func() time.Time

	logger *logger.Logger
}

func NewConfigEnricher(lbAdapter adapter.LoadBalancerAdapter, logger *logger.Logger) (ConfigEnricher, error) {
	if lbAdapter == nil {
		return nil, ErrNoAdapterProvided
	}

	return &configEnricher{
		adapter: lbAdapter,
		now:     time.Now,
		logger:  logger,
	}, nil
}

func (s *configEnricher) FetchConfig(ctx context.Context) (models.Config, error) {
	cfg, err := s.adapter.GetConfig(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "*configEnricher.FetchConfig").Msg("error fetching load balancer config")
		return models.Config{}, err
	}

	s.logger.Debug().
		Int("frontends", len(cfg.Frontends)).
		Int("backends", len(cfg.Backends)).
		Msg("load balancer config fetched")
	return cfg, nil
}

func (s *configEnricher) FetchInfo(ctx context.Context) (models.Info, error) {
	info, err := s.adapter.GetInfo(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "*configEnricher.FetchInfo").Msg("error fetching load balancer info")
		return nil, err
	}

	return info, nil
}

func (s *configEnricher) Enrich(cfg models.Config) models.Config {
	return Enrich(cfg)
}

func (s *configEnricher) Load(ctx context.Context) models.Dashboard {
	var (
		dashboard models.Dashboard
		g         errgroup.Group
	)

	// both goroutines return nil so that one failure does not hide the other
	g.Go(func() error {
		cfg, err := s.FetchConfig(ctx)
		if err != nil {
			dashboard.ConfigErr = err
			return nil
		}
		enriched := s.Enrich(cfg)
		dashboard.Config = &enriched
		return nil
	})
	g.Go(func() error {
		dashboard.Info, dashboard.InfoErr = s.FetchInfo(ctx)
		return nil
	})
	_ = g.Wait()

	dashboard.FetchedAt = s.now()
	return dashboard
}
