package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pixcontrol"

// Webhook outcomes.
const (
	OutcomeRecorded      = "recorded"
	OutcomeDuplicate     = "duplicate"
	OutcomeUnauthorized  = "unauthorized"
	OutcomeInvalid       = "invalid"
	OutcomeUnknownTenant = "unknown_tenant"
	OutcomeUnavailable   = "unavailable"
	OutcomeError         = "error"
)

type Metrics struct {
	Webhooks        *prometheus.CounterVec
	Viewers         prometheus.Gauge
	DroppedEvents   prometheus.Counter
	Closings        *prometheus.CounterVec
	ClosingDuration prometheus.Histogram
}

// New registers every collector on reg. Tests pass a fresh registry.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Webhooks: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "webhooks_total",
			Help:      "Inbound payment webhooks by outcome.",
		}, []string{"outcome"}),
		Viewers: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "live_viewers",
			Help:      "Connected live dashboard viewers.",
		}),
		DroppedEvents: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "live_events_dropped_total",
			Help:      "Live events dropped because a viewer buffer was full.",
		}),
		Closings: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "closings_total",
			Help:      "Daily closings by result.",
		}, []string{"result"}),
		ClosingDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "closing_run_seconds",
			Help:      "Duration of a scheduled closing run over all tenants.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) Webhook(outcome string) {
	m.Webhooks.WithLabelValues(outcome).Inc()
}
