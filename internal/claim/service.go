// Package claim decides whether a wallet may claim right now and, when it
// may, submits the claim transaction on its behalf and tracks it to one
// confirmation.
package claim

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/soneium-tools/token-faucet/internal/chain"
	"github.com/soneium-tools/token-faucet/internal/logger"
	"github.com/soneium-tools/token-faucet/internal/networks"
)

// Revert reason substrings emitted by the faucet contract. Treated as a
// heuristic: unrecognized reverts fall through to the generic chain error.
const (
	revertCooldown     = "CooldownNotExpired"
	revertInsufficient = "InsufficientBalance"
)

// Provider hands out the per-network contract surface. Implemented by
// chain.ClientRegistry.
type Provider interface {
	Faucet(ctx context.Context, n networks.Network) (chain.Faucet, error)
}

// Service authorizes and executes claims. All per-claim state is request
// local; concurrent claims for the same address are serialized only by the
// contract's own cooldown.
type Service struct {
	registry *networks.Registry
	provider Provider
}

func NewService(registry *networks.Registry, provider Provider) *Service {
	return &Service{registry: registry, provider: provider}
}

// Request names the network and the beneficiary of one claim attempt.
type Request struct {
	Network string
	Address string
}

// Claim runs one claim attempt end to end. It never returns an error:
// every failure mode is classified into the Outcome so the caller can map
// it to a distinct response. An unknown or empty network id routes to the
// default network.
func (s *Service) Claim(ctx context.Context, req Request) Outcome {
	if !common.IsHexAddress(strings.TrimSpace(req.Address)) {
		return Outcome{Kind: KindInvalidInput, Message: "Invalid wallet address"}
	}
	claimant := common.HexToAddress(strings.TrimSpace(req.Address))

	network := s.registry.ResolveOrDefault(req.Network)

	faucet, err := s.provider.Faucet(ctx, network)
	if err != nil {
		if errors.Is(err, chain.ErrNotConfigured) {
			return Outcome{Kind: KindNotConfigured, Message: "Faucet contract not configured for this network"}
		}
		return s.classify(network.ID, err)
	}

	ok, err := faucet.CanClaim(ctx, claimant)
	if err != nil {
		return s.classify(network.ID, err)
	}
	if !ok {
		remaining, err := faucet.RemainingCooldown(ctx, claimant)
		if err != nil {
			return s.classify(network.ID, err)
		}
		return cooldownOutcome(remaining.Int64())
	}

	txHash, err := faucet.ClaimFor(ctx, claimant)
	if err != nil {
		return s.classify(network.ID, err)
	}

	logger.Info("claim submitted",
		"network", network.ID,
		"claimant", claimant.Hex(),
		"tx", txHash.Hex(),
	)

	receipt, err := faucet.WaitClaim(ctx, txHash)
	if err != nil {
		return s.classify(network.ID, err)
	}
	if receipt.Confirmed && receipt.Reverted {
		logger.Warn("claim reverted", "network", network.ID, "tx", txHash.Hex())
		return Outcome{Kind: KindChainError, TxHash: txHash.Hex(), Message: "Transaction reverted"}
	}
	if !receipt.Confirmed {
		return Outcome{
			Kind:    KindSuccess,
			TxHash:  txHash.Hex(),
			Message: "Transaction submitted but not yet confirmed",
		}
	}
	return Outcome{
		Kind:      KindSuccess,
		TxHash:    txHash.Hex(),
		Confirmed: true,
		Message:   "Tokens claimed successfully!",
	}
}

// classify maps a chain failure onto the outcome taxonomy. The optimistic
// eligibility check can race a competing claim, so contract reverts for
// cooldown and balance are mapped back to their user-facing kinds even at
// submission time.
func (s *Service) classify(network string, err error) Outcome {
	msg := err.Error()
	switch {
	case errors.Is(err, chain.ErrMissingCredential):
		return Outcome{Kind: KindChainError, Message: "Faucet operator credential not configured"}
	case strings.Contains(msg, revertCooldown):
		return Outcome{Kind: KindCooldownActive, Message: "Cooldown period not expired"}
	case strings.Contains(msg, revertInsufficient):
		return Outcome{Kind: KindInsufficientFunds, Message: "Faucet has insufficient balance"}
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn("chain call timed out", "network", network, "error", msg)
		return Outcome{Kind: KindChainError, Message: "Chain request timed out"}
	default:
		logger.Error("claim failed", "network", network, "error", msg)
		return Outcome{Kind: KindChainError, Message: msg}
	}
}

func cooldownOutcome(remainingSeconds int64) Outcome {
	minutes := (remainingSeconds + 59) / 60
	return Outcome{
		Kind:             KindCooldownActive,
		RemainingSeconds: remainingSeconds,
		Message:          fmt.Sprintf("Cooldown active. Please wait %d minutes.", minutes),
	}
}
