// Package contracts wraps the on-chain faucet and token contracts behind
// typed accessors. The contracts themselves are black boxes; only the ABI
// surface below is relied upon.
package contracts

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Faucet is a typed view over one deployed TokenFaucet contract.
type Faucet struct {
	address  common.Address
	contract *bind.BoundContract
}

// NewFaucet binds the faucet contract at address to the given backend.
func NewFaucet(address common.Address, backend bind.ContractBackend) *Faucet {
	return &Faucet{
		address:  address,
		contract: bind.NewBoundContract(address, faucetABI, backend, backend, backend),
	}
}

// Address returns the bound contract address.
func (f *Faucet) Address() common.Address { return f.address }

// CanClaim reports whether user's cooldown has expired.
func (f *Faucet) CanClaim(ctx context.Context, user common.Address) (bool, error) {
	out, err := f.call(ctx, "canClaim", user)
	if err != nil {
		return false, fmt.Errorf("faucet canClaim: %w", err)
	}
	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

// RemainingCooldown returns the seconds until user may claim again.
func (f *Faucet) RemainingCooldown(ctx context.Context, user common.Address) (*big.Int, error) {
	out, err := f.call(ctx, "getRemainingCooldown", user)
	if err != nil {
		return nil, fmt.Errorf("faucet getRemainingCooldown: %w", err)
	}
	return abi.ConvertType(out[0], new(big.Int)).(*big.Int), nil
}

// Balance returns the faucet's raw token balance.
func (f *Faucet) Balance(ctx context.Context) (*big.Int, error) {
	out, err := f.call(ctx, "getBalance")
	if err != nil {
		return nil, fmt.Errorf("faucet getBalance: %w", err)
	}
	return abi.ConvertType(out[0], new(big.Int)).(*big.Int), nil
}

// ClaimAmount returns the raw amount disbursed per claim.
func (f *Faucet) ClaimAmount(ctx context.Context) (*big.Int, error) {
	out, err := f.call(ctx, "claimAmount")
	if err != nil {
		return nil, fmt.Errorf("faucet claimAmount: %w", err)
	}
	return abi.ConvertType(out[0], new(big.Int)).(*big.Int), nil
}

// CooldownTime returns the configured cooldown window in seconds.
func (f *Faucet) CooldownTime(ctx context.Context) (*big.Int, error) {
	out, err := f.call(ctx, "cooldownTime")
	if err != nil {
		return nil, fmt.Errorf("faucet cooldownTime: %w", err)
	}
	return abi.ConvertType(out[0], new(big.Int)).(*big.Int), nil
}

// ClaimFor submits a claim transaction naming beneficiary, signed by the
// credential bound into opts. The beneficiary never signs anything.
func (f *Faucet) ClaimFor(opts *bind.TransactOpts, beneficiary common.Address) (*types.Transaction, error) {
	tx, err := f.contract.Transact(opts, "claimFor", beneficiary)
	if err != nil {
		return nil, fmt.Errorf("faucet claimFor: %w", err)
	}
	return tx, nil
}

func (f *Faucet) call(ctx context.Context, method string, params ...any) ([]any, error) {
	var out []any
	if err := f.contract.Call(&bind.CallOpts{Context: ctx}, &out, method, params...); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s returned empty result", method)
	}
	return out, nil
}
