package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "waste_dashboard"

// Push event results.
const (
	PushApplied  = "applied"
	PushIgnored  = "ignored"
	PushBuffered = "buffered"
	PushDropped  = "dropped"
	PushInvalid  = "invalid"
)

// Metrics methods are nil-safe so components can run without a registry.
type Metrics struct {
	GateDecisions      *prometheus.CounterVec
	PushEvents         *prometheus.CounterVec
	LiveFeeds          prometheus.Gauge
	EnrichmentFailures prometheus.Counter
	UpstreamRequests   *prometheus.CounterVec
	UpstreamLatency    *prometheus.HistogramVec
	PushReconnects     prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		GateDecisions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gate_decisions_total",
			Help:      "Route guard decisions by route and outcome.",
		}, []string{"route", "outcome"}),
		PushEvents: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "push_events_total",
			Help:      "Bin weight push events by merge result.",
		}, []string{"result"}),
		LiveFeeds: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "live_feeds",
			Help:      "Open branch-scoped live bin feeds.",
		}),
		EnrichmentFailures: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "latest_weight_enrichment_failures_total",
			Help:      "Per-bin latest weight lookups that fell back to the snapshot value.",
		}),
		UpstreamRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Upstream REST calls by operation and status class.",
		}, []string{"operation", "status"}),
		UpstreamLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Upstream REST call latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		PushReconnects: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "push_channel_reconnects_total",
			Help:      "Push channel reconnect attempts.",
		}),
	}
}

// NewRegistry builds a registry with the process collectors plus the dashboard metrics.
func NewRegistry() (*prometheus.Registry, *Metrics) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg, New(reg)
}

func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}

func (m *Metrics) ObserveGate(route, outcome string) {
	if m == nil {
		return
	}
	m.GateDecisions.WithLabelValues(route, outcome).Inc()
}

func (m *Metrics) ObservePush(result string) {
	if m == nil {
		return
	}
	m.PushEvents.WithLabelValues(result).Inc()
}

func (m *Metrics) FeedOpened() {
	if m == nil {
		return
	}
	m.LiveFeeds.Inc()
}

func (m *Metrics) FeedClosed() {
	if m == nil {
		return
	}
	m.LiveFeeds.Dec()
}

func (m *Metrics) EnrichmentFailed() {
	if m == nil {
		return
	}
	m.EnrichmentFailures.Inc()
}

func (m *Metrics) ObserveUpstream(operation, status string, seconds float64) {
	if m == nil {
		return
	}
	m.UpstreamRequests.WithLabelValues(operation, status).Inc()
	m.UpstreamLatency.WithLabelValues(operation).Observe(seconds)
}

func (m *Metrics) Reconnecting() {
	if m == nil {
		return
	}
	m.PushReconnects.Inc()
}
