package http

import (
	"errors"
	"net/http"

	"github.com/soneium-tools/token-faucet/internal/chain"
	"github.com/soneium-tools/token-faucet/internal/claim"
	"github.com/soneium-tools/token-faucet/internal/logger"
)

// POST /claim
func (s *Server) handleClaim(w http.ResponseWriter, r *http.Request) {
	var req claimRequest
	if err := readJSONBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, claimResponse{Success: false, Error: "invalid request body"})
		return
	}

	outcome := s.claims.Claim(r.Context(), claim.Request{
		Network: req.Network,
		Address: req.Address,
	})

	network := s.registry.ResolveOrDefault(req.Network).ID
	s.metrics.ObserveClaim(network, outcomeLabel(outcome.Kind))

	switch outcome.Kind {
	case claim.KindSuccess:
		writeJSON(w, http.StatusOK, claimResponse{
			Success:         true,
			TransactionHash: outcome.TxHash,
			Confirmed:       outcome.Confirmed,
			Message:         outcome.Message,
		})
	case claim.KindInvalidInput:
		writeJSON(w, http.StatusBadRequest, claimResponse{Success: false, Error: outcome.Message})
	case claim.KindCooldownActive:
		resp := claimResponse{Success: false, Error: outcome.Message}
		if outcome.RemainingSeconds > 0 {
			remaining := outcome.RemainingSeconds
			resp.RemainingSeconds = &remaining
		}
		writeJSON(w, http.StatusTooManyRequests, resp)
	case claim.KindInsufficientFunds:
		writeJSON(w, http.StatusServiceUnavailable, claimResponse{Success: false, Error: outcome.Message})
	default: // KindNotConfigured, KindChainError
		writeJSON(w, http.StatusInternalServerError, claimResponse{
			Success:         false,
			TransactionHash: outcome.TxHash,
			Error:           outcome.Message,
		})
	}
}

// GET /status?address=&network=
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	network := q.Get("network")
	address := q.Get("address")

	snap, err := s.status.Snapshot(r.Context(), network, address)
	label := s.registry.ResolveOrDefault(network).ID
	if err != nil {
		s.metrics.ObserveStatus(label, "error")
		if errors.Is(err, chain.ErrNotConfigured) {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Contracts not configured for this network"})
			return
		}
		logger.Error("status snapshot failed", "network", label, "error", err.Error())
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to get faucet status"})
		return
	}

	s.metrics.ObserveStatus(label, "ok")
	writeJSON(w, http.StatusOK, snap)
}

// GET /networks
func (s *Server) handleNetworks(w http.ResponseWriter, r *http.Request) {
	all := s.registry.List()
	items := make([]networkItem, 0, len(all))
	for _, n := range all {
		items = append(items, networkItem{
			ID:           n.ID,
			Name:         n.Name,
			ExplorerUrl:  n.ExplorerUrl,
			IsConfigured: n.Configured(),
		})
	}
	writeJSON(w, http.StatusOK, networksResponse{Networks: items})
}

// GET /healthz
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func outcomeLabel(k claim.Kind) string {
	switch k {
	case claim.KindSuccess:
		return "success"
	case claim.KindCooldownActive:
		return "cooldown"
	case claim.KindInsufficientFunds:
		return "insufficient_funds"
	case claim.KindNotConfigured:
		return "not_configured"
	case claim.KindInvalidInput:
		return "invalid_input"
	default:
		return "chain_error"
	}
}
