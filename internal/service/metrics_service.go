package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// MetricsService owns the Prometheus registry and the counters the
// notification pipeline reports into. A nil *MetricsService is a valid
// no-op receiver so tests can skip metrics wiring.
type MetricsService struct {
	registry *prometheus.Registry

	broadcastsTotal     *prometheus.CounterVec
	recipientsDelivered *prometheus.CounterVec
	chunkCommits        *prometheus.CounterVec
	drawsTotal          prometheus.Counter
	drawnEntrants       prometheus.Counter
	httpRequests        *prometheus.CounterVec
	httpDuration        *prometheus.HistogramVec
}

// NewMetricsService builds and registers all collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &MetricsService{
		registry: registry,
		broadcastsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "notifier_broadcasts_total",
			Help: "Completed broadcasts by audience.",
		}, []string{"audience"}),
		recipientsDelivered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "notifier_recipients_delivered_total",
			Help: "Inbox items durably delivered, by audience.",
		}, []string{"audience"}),
		chunkCommits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "notifier_chunk_commits_total",
			Help: "Fan-out chunk commit attempts by outcome.",
		}, []string{"outcome"}),
		drawsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lottery_draws_total",
			Help: "Lottery draws executed.",
		}),
		drawnEntrants: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lottery_drawn_entrants_total",
			Help: "Entrants promoted to chosen across all draws.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method, path and status.",
		}, []string{"method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
	registry.MustRegister(
		m.broadcastsTotal,
		m.recipientsDelivered,
		m.chunkCommits,
		m.drawsTotal,
		m.drawnEntrants,
		m.httpRequests,
		m.httpDuration,
	)
	return m
}

// Registry exposes the registry for the /metrics handler.
func (m *MetricsService) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// RecordBroadcast counts a completed broadcast and its delivered recipients.
func (m *MetricsService) RecordBroadcast(audience string, delivered int) {
	if m == nil {
		return
	}
	m.broadcastsTotal.WithLabelValues(audience).Inc()
	m.recipientsDelivered.WithLabelValues(audience).Add(float64(delivered))
}

// RecordChunkCommit counts one fan-out chunk attempt.
func (m *MetricsService) RecordChunkCommit(ok bool) {
	if m == nil {
		return
	}
	outcome := "committed"
	if !ok {
		outcome = "failed"
	}
	m.chunkCommits.WithLabelValues(outcome).Inc()
}

// RecordDraw counts one lottery draw and the entrants it promoted.
func (m *MetricsService) RecordDraw(chosen int) {
	if m == nil {
		return
	}
	m.drawsTotal.Inc()
	m.drawnEntrants.Add(float64(chosen))
}

// RecordHTTPRequest feeds the request counter and latency histogram.
func (m *MetricsService) RecordHTTPRequest(method, path, status string, seconds float64) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, path, status).Inc()
	m.httpDuration.WithLabelValues(method, path).Observe(seconds)
}
