package metrics

import (
	"errors"
	"time"

	"github.com/MKhiriev/lb-dashboard/internal/adapter"
	"github.com/MKhiriev/lb-dashboard/models"
	"github.com/prometheus/client_golang/prometheus"
)

// Fetch outcomes used as the "outcome" label value.
const (
	OutcomeOK         = "ok"
	OutcomeFetchError = "fetch_error"
	OutcomeParseError = "parse_error"
)

// Collector is a prometheus.Collector with the dashboard's own metrics.
type Collector struct {
	// Info metric (always 1)
	buildInfo *prometheus.Desc
	buildMeta models.AppBuildInfo

	fetchTotal    *prometheus.CounterVec
	fetchDuration *prometheus.HistogramVec
}

// NewCollector creates a collector labelled with the given build metadata.
func NewCollector(buildInfo models.AppBuildInfo) *Collector {
	return &Collector{
		buildInfo: prometheus.NewDesc(
			"lbdash_build_info",
			"Build metadata of the dashboard binary (always 1)",
			[]string{"version", "commit"},
			nil,
		),
		buildMeta: buildInfo,
		fetchTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lbdash_fetch_total",
				Help: "Total number of load balancer API fetches by endpoint and outcome",
			},
			[]string{"endpoint", "outcome"},
		),
		fetchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lbdash_fetch_duration_seconds",
				Help:    "Latency of load balancer API fetches by endpoint",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
	}
}

// ObserveFetch records one finished fetch of endpoint.
func (c *Collector) ObserveFetch(endpoint string, err error, duration time.Duration) {
	c.fetchTotal.WithLabelValues(endpoint, Outcome(err)).Inc()
	c.fetchDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// Outcome classifies a fetch error into an "outcome" label value.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, adapter.ErrParse):
		return OutcomeParseError
	default:
		return OutcomeFetchError
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.buildInfo
	c.fetchTotal.Describe(ch)
	c.fetchDuration.Describe(ch)
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(
		c.buildInfo,
		prometheus.GaugeValue,
		1,
		orNA(c.buildMeta.BuildVersion()),
		orNA(c.buildMeta.BuildCommit()),
	)
	c.fetchTotal.Collect(ch)
	c.fetchDuration.Collect(ch)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
