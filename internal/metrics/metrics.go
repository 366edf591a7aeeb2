// Package metrics exposes request-level counters on a private prometheus
// registry.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds every collector the service registers.
type Metrics struct {
	registry *prometheus.Registry

	claims   *prometheus.CounterVec
	statuses *prometheus.CounterVec
}

// New builds the metrics set on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		claims: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "faucet",
			Name:      "claims_total",
			Help:      "Claim attempts by network and outcome.",
		}, []string{"network", "outcome"}),
		statuses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "faucet",
			Name:      "status_requests_total",
			Help:      "Status snapshot requests by network and result.",
		}, []string{"network", "result"}),
	}
	m.registry.MustRegister(
		m.claims,
		m.statuses,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveClaim counts one claim attempt.
func (m *Metrics) ObserveClaim(network, outcome string) {
	m.claims.WithLabelValues(network, outcome).Inc()
}

// ObserveStatus counts one status request.
func (m *Metrics) ObserveStatus(network, result string) {
	m.statuses.WithLabelValues(network, result).Inc()
}

// Handler serves the registry over HTTP.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
