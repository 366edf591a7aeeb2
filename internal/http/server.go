// Package http is the service boundary: three JSON endpoints over the claim
// and status services, plus health and metrics.
package http

import (
	"net/http"

	"github.com/soneium-tools/token-faucet/internal/metrics"
	"github.com/soneium-tools/token-faucet/internal/networks"
)

type Server struct {
	mux      *http.ServeMux
	claims   ClaimService
	status   StatusService
	registry *networks.Registry
	metrics  *metrics.Metrics
}

func NewServer(registry *networks.Registry, claims ClaimService, status StatusService, m *metrics.Metrics) *Server {
	s := &Server{
		mux:      http.NewServeMux(),
		claims:   claims,
		status:   status,
		registry: registry,
		metrics:  m,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	api := corsPolicy{
		allowMethods: "GET,POST,OPTIONS",
		allowHeaders: "Content-Type",
		maxAge:       600,
	}

	s.mux.HandleFunc("/claim", s.withCORS(api, s.withMethod(http.MethodPost, s.handleClaim)))
	s.mux.HandleFunc("/status", s.withCORS(api, s.withMethod(http.MethodGet, s.handleStatus)))
	s.mux.HandleFunc("/networks", s.withCORS(api, s.withMethod(http.MethodGet, s.handleNetworks)))
	s.mux.HandleFunc("/healthz", s.withMethod(http.MethodGet, s.handleHealthz))
	s.mux.Handle("/metrics", s.metrics.Handler())
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
