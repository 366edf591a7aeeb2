// Package status aggregates faucet-level facts into one freshly read
// snapshot. Nothing here is cached across requests.
package status

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"

	"github.com/soneium-tools/token-faucet/internal/chain"
	"github.com/soneium-tools/token-faucet/internal/networks"
	"github.com/soneium-tools/token-faucet/internal/units"
)

// Provider hands out the per-network contract surface. Implemented by
// chain.ClientRegistry.
type Provider interface {
	Faucet(ctx context.Context, n networks.Network) (chain.Faucet, error)
}

// NetworkInfo identifies the network a snapshot was read from.
type NetworkInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ExplorerUrl string `json:"explorerUrl"`
}

// UserStatus is the optional per-address eligibility block.
type UserStatus struct {
	CanClaim                 bool  `json:"canClaim"`
	RemainingCooldownSeconds int64 `json:"remainingCooldownSeconds"`
}

// Snapshot is one consistent read of the faucet. Amounts are decimal
// strings scaled by the token's on-chain decimals.
type Snapshot struct {
	Network             NetworkInfo `json:"network"`
	FaucetBalance       string      `json:"faucetBalance"`
	ClaimAmount         string      `json:"claimAmount"`
	CooldownTimeSeconds int64       `json:"cooldownTimeSeconds"`
	TokenSymbol         string      `json:"tokenSymbol"`
	TokenDecimals       uint8       `json:"tokenDecimals"`
	UserStatus          *UserStatus `json:"userStatus,omitempty"`
}

// Service reads faucet snapshots.
type Service struct {
	registry *networks.Registry
	provider Provider
}

func NewService(registry *networks.Registry, provider Provider) *Service {
	return &Service{registry: registry, provider: provider}
}

// Snapshot reads every faucet-level fact in parallel; any single read
// failing fails the whole call. When address is syntactically valid the two
// per-address reads are attached; otherwise the block is simply omitted. An
// unknown or empty network id routes to the default network.
func (s *Service) Snapshot(ctx context.Context, networkID, address string) (*Snapshot, error) {
	network := s.registry.ResolveOrDefault(networkID)

	faucet, err := s.provider.Faucet(ctx, network)
	if err != nil {
		return nil, err
	}

	var (
		balance, amount, cooldown *big.Int
		decimals                  uint8
		symbol                    string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { balance, err = faucet.Balance(gctx); return })
	g.Go(func() (err error) { amount, err = faucet.ClaimAmount(gctx); return })
	g.Go(func() (err error) { cooldown, err = faucet.CooldownTime(gctx); return })
	g.Go(func() (err error) { decimals, err = faucet.TokenDecimals(gctx); return })
	g.Go(func() (err error) { symbol, err = faucet.TokenSymbol(gctx); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	snap := &Snapshot{
		Network: NetworkInfo{
			ID:          network.ID,
			Name:        network.Name,
			ExplorerUrl: network.ExplorerUrl,
		},
		FaucetBalance:       units.Format(balance, decimals),
		ClaimAmount:         units.Format(amount, decimals),
		CooldownTimeSeconds: cooldown.Int64(),
		TokenSymbol:         symbol,
		TokenDecimals:       decimals,
	}

	if addr := strings.TrimSpace(address); common.IsHexAddress(addr) {
		user, err := s.userStatus(ctx, faucet, common.HexToAddress(addr))
		if err != nil {
			return nil, err
		}
		snap.UserStatus = user
	}

	return snap, nil
}

func (s *Service) userStatus(ctx context.Context, faucet chain.Faucet, user common.Address) (*UserStatus, error) {
	var (
		canClaim  bool
		remaining *big.Int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { canClaim, err = faucet.CanClaim(gctx, user); return })
	g.Go(func() (err error) { remaining, err = faucet.RemainingCooldown(gctx, user); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &UserStatus{
		CanClaim:                 canClaim,
		RemainingCooldownSeconds: remaining.Int64(),
	}, nil
}
