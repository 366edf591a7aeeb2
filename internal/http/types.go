package http

import (
	"context"

	"github.com/soneium-tools/token-faucet/internal/claim"
	"github.com/soneium-tools/token-faucet/internal/status"
)

// ClaimService authorizes and executes claims.
type ClaimService interface {
	Claim(ctx context.Context, req claim.Request) claim.Outcome
}

// StatusService reads faucet snapshots.
type StatusService interface {
	Snapshot(ctx context.Context, network, address string) (*status.Snapshot, error)
}

type claimRequest struct {
	Address string `json:"address"`
	Network string `json:"network,omitempty"`
}

type claimResponse struct {
	Success          bool   `json:"success"`
	TransactionHash  string `json:"transactionHash,omitempty"`
	Confirmed        bool   `json:"confirmed,omitempty"`
	Message          string `json:"message,omitempty"`
	Error            string `json:"error,omitempty"`
	RemainingSeconds *int64 `json:"remainingSeconds,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type networkItem struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ExplorerUrl  string `json:"explorerUrl"`
	IsConfigured bool   `json:"isConfigured"`
}

type networksResponse struct {
	Networks []networkItem `json:"networks"`
}

type corsPolicy struct {
	allowMethods string
	allowHeaders string
	maxAge       int
}
