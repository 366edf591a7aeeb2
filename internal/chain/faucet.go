package chain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"time"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/soneium-tools/token-faucet/internal/contracts"
	"github.com/soneium-tools/token-faucet/internal/networks"
)

// Faucet is the per-network contract surface the services depend on. The
// concrete implementation talks JSON-RPC; tests substitute call-counting
// fakes.
type Faucet interface {
	CanClaim(ctx context.Context, user common.Address) (bool, error)
	RemainingCooldown(ctx context.Context, user common.Address) (*big.Int, error)
	Balance(ctx context.Context) (*big.Int, error)
	ClaimAmount(ctx context.Context) (*big.Int, error)
	CooldownTime(ctx context.Context) (*big.Int, error)
	TokenDecimals(ctx context.Context) (uint8, error)
	TokenSymbol(ctx context.Context) (string, error)

	// ClaimFor submits a claim transaction naming user as beneficiary,
	// signed by the operator credential. Fails with ErrMissingCredential
	// when no key is configured.
	ClaimFor(ctx context.Context, user common.Address) (common.Hash, error)

	// WaitClaim waits for one confirmation of the submitted transaction,
	// bounded by the configured ceiling. A ceiling hit is not an error: the
	// receipt comes back with Confirmed=false.
	WaitClaim(ctx context.Context, tx common.Hash) (Receipt, error)
}

// Receipt is the confirmation outcome of one claim transaction.
type Receipt struct {
	Confirmed bool
	Reverted  bool
}

type boundFaucet struct {
	network networks.Network
	eth     *ethclient.Client
	faucet  *contracts.Faucet
	token   *contracts.Token

	operatorKey *ecdsa.PrivateKey
	chainID     *big.Int

	callTimeout    time.Duration
	confirmTimeout time.Duration
	pollInterval   time.Duration
}

func (b *boundFaucet) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, b.callTimeout)
}

func (b *boundFaucet) CanClaim(ctx context.Context, user common.Address) (bool, error) {
	ctx, cancel := b.callCtx(ctx)
	defer cancel()
	return b.faucet.CanClaim(ctx, user)
}

func (b *boundFaucet) RemainingCooldown(ctx context.Context, user common.Address) (*big.Int, error) {
	ctx, cancel := b.callCtx(ctx)
	defer cancel()
	return b.faucet.RemainingCooldown(ctx, user)
}

func (b *boundFaucet) Balance(ctx context.Context) (*big.Int, error) {
	ctx, cancel := b.callCtx(ctx)
	defer cancel()
	return b.faucet.Balance(ctx)
}

func (b *boundFaucet) ClaimAmount(ctx context.Context) (*big.Int, error) {
	ctx, cancel := b.callCtx(ctx)
	defer cancel()
	return b.faucet.ClaimAmount(ctx)
}

func (b *boundFaucet) CooldownTime(ctx context.Context) (*big.Int, error) {
	ctx, cancel := b.callCtx(ctx)
	defer cancel()
	return b.faucet.CooldownTime(ctx)
}

func (b *boundFaucet) TokenDecimals(ctx context.Context) (uint8, error) {
	ctx, cancel := b.callCtx(ctx)
	defer cancel()
	return b.token.Decimals(ctx)
}

func (b *boundFaucet) TokenSymbol(ctx context.Context) (string, error) {
	ctx, cancel := b.callCtx(ctx)
	defer cancel()
	return b.token.Symbol(ctx)
}

func (b *boundFaucet) ClaimFor(ctx context.Context, user common.Address) (common.Hash, error) {
	if b.operatorKey == nil {
		return common.Hash{}, ErrMissingCredential
	}

	opts, err := bind.NewKeyedTransactorWithChainID(b.operatorKey, b.chainID)
	if err != nil {
		return common.Hash{}, fmt.Errorf("network %s: build transactor: %w", b.network.ID, err)
	}

	ctx, cancel := b.callCtx(ctx)
	defer cancel()
	opts.Context = ctx

	tx, err := b.faucet.ClaimFor(opts, user)
	if err != nil {
		return common.Hash{}, err
	}
	return tx.Hash(), nil
}

// WaitClaim polls for the receipt until mined or the ceiling passes.
func (b *boundFaucet) WaitClaim(ctx context.Context, tx common.Hash) (Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, b.confirmTimeout)
	defer cancel()

	ticker := time.NewTicker(b.pollInterval)
	defer ticker.Stop()

	for {
		receipt, err := b.eth.TransactionReceipt(ctx, tx)
		switch {
		case err == nil:
			return Receipt{
				Confirmed: true,
				Reverted:  receipt.Status == types.ReceiptStatusFailed,
			}, nil
		case errors.Is(err, ethereum.NotFound):
			// Not mined yet, keep polling.
		case ctx.Err() != nil:
			return Receipt{}, nil
		default:
			return Receipt{}, fmt.Errorf("network %s: fetch receipt: %w", b.network.ID, err)
		}

		select {
		case <-ctx.Done():
			// Ceiling reached with the tx still pending; report unconfirmed
			// rather than blocking the caller forever.
			return Receipt{}, nil
		case <-ticker.C:
		}
	}
}
