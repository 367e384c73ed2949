// Package metrics exposes Prometheus counters for the relay pipeline.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Relay is the process-wide metrics set, initialized by Setup.
var Relay *Metrics

// Metrics holds Prometheus counters and gauges for the RTSP to WebRTC relay.
type Metrics struct {
	registry            *prometheus.Registry
	packetsRelayedTotal *prometheus.CounterVec
	packetsDroppedTotal *prometheus.CounterVec
	sessionsTotal       prometheus.Counter
	activeSessions      prometheus.Gauge
	requestsTotal       prometheus.Counter
	errorsTotal         prometheus.Counter
}

// Setup creates the process-wide metrics set.
func Setup() {
	Relay = New()
}

// New creates and registers Prometheus metrics for the relay.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	packetsRelayedTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "relay_packets_relayed_total",
		Help: "Total number of RTP packets written to the shared output tracks",
	}, []string{"kind"})
	packetsDroppedTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "relay_packets_dropped_total",
		Help: "Total number of RTP packets dropped because a relay queue was full",
	}, []string{"kind"})
	sessionsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "relay_sessions_total",
		Help: "Total number of viewer sessions created",
	})
	activeSessions := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "relay_active_sessions",
		Help: "Number of viewer sessions currently registered",
	})
	requestsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "relay_http_requests_total",
		Help: "Total number of HTTP requests received",
	})
	errorsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "relay_http_errors_total",
		Help: "Total number of HTTP responses with error status (4xx or 5xx)",
	})

	registry.MustRegister(
		packetsRelayedTotal,
		packetsDroppedTotal,
		sessionsTotal,
		activeSessions,
		requestsTotal,
		errorsTotal,
	)

	return &Metrics{
		registry:            registry,
		packetsRelayedTotal: packetsRelayedTotal,
		packetsDroppedTotal: packetsDroppedTotal,
		sessionsTotal:       sessionsTotal,
		activeSessions:      activeSessions,
		requestsTotal:       requestsTotal,
		errorsTotal:         errorsTotal,
	}
}

// IncPacketsRelayed increments the relayed packet counter for a media kind.
func IncPacketsRelayed(kind string) {
	if Relay != nil {
		Relay.packetsRelayedTotal.WithLabelValues(kind).Inc()
	}
}

// IncPacketsDropped increments the dropped packet counter for a media kind.
func IncPacketsDropped(kind string) {
	if Relay != nil {
		Relay.packetsDroppedTotal.WithLabelValues(kind).Inc()
	}
}

// IncSessionsCreated increments the created session counter.
func IncSessionsCreated() {
	if Relay != nil {
		Relay.sessionsTotal.Inc()
	}
}

// IncRequests increments the total request counter.
func IncRequests() {
	if Relay != nil {
		Relay.requestsTotal.Inc()
	}
}

// IncErrors increments the errors counter.
func IncErrors() {
	if Relay != nil {
		Relay.errorsTotal.Inc()
	}
}

// SetActiveSessions sets the active session gauge.
func (m *Metrics) SetActiveSessions(n int) {
	m.activeSessions.Set(float64(n))
}

// Handler returns an http.Handler that serves Prometheus metrics.
// updateGauges is called before each scrape to refresh gauge values.
func (m *Metrics) Handler(updateGauges func()) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if updateGauges != nil {
			updateGauges()
		}
		promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}).ServeHTTP(w, r)
	})
}
