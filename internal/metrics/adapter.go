package metrics

import (
	"context"
	"time"

	"github.com/MKhiriev/lb-dashboard/internal/adapter"
	"github.com/MKhiriev/lb-dashboard/models"
)

type instrumentedAdapter struct {
	next      adapter.LoadBalancerAdapter
	collector *Collector
	now       func() time.Time
}

// InstrumentAdapter returns an adapter that forwards every call to next and
// records its outcome and latency in c.
func InstrumentAdapter(next adapter.LoadBalancerAdapter, c *Collector) adapter.LoadBalancerAdapter {
	return &instrumentedAdapter{next: next, collector: c, now: time.Now}
}

func (a *instrumentedAdapter) GetConfig(ctx context.Context) (models.Config, error) {
	start := a.now()
	cfg, err := a.next.GetConfig(ctx)
	a.collector.ObserveFetch(adapter.ConfigEndpoint, err, a.now().Sub(start))
	return cfg, err
}

func (a *instrumentedAdapter) GetInfo(ctx context.Context) (models.Info, error) {
	start := a.now()
	info, err := a.next.GetInfo(ctx)
	a.collector.ObserveFetch(adapter.InfoEndpoint, err, a.now().Sub(start))
	return info, err
}
