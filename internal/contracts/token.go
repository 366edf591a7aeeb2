package contracts

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// Token is a read-only view over the faucet's ERC-20 token contract.
type Token struct {
	address  common.Address
	contract *bind.BoundContract
}

// NewToken binds the token contract at address to the given backend.
func NewToken(address common.Address, backend bind.ContractBackend) *Token {
	return &Token{
		address:  address,
		contract: bind.NewBoundContract(address, erc20ABI, backend, backend, backend),
	}
}

// Decimals fetches the token's decimal count. Deployments vary, so this is
// always read from chain rather than assumed.
func (t *Token) Decimals(ctx context.Context) (uint8, error) {
	out, err := t.call(ctx, "decimals")
	if err != nil {
		return 0, fmt.Errorf("token decimals: %w", err)
	}
	return *abi.ConvertType(out[0], new(uint8)).(*uint8), nil
}

// Symbol fetches the token symbol.
func (t *Token) Symbol(ctx context.Context) (string, error) {
	out, err := t.call(ctx, "symbol")
	if err != nil {
		return "", fmt.Errorf("token symbol: %w", err)
	}
	return *abi.ConvertType(out[0], new(string)).(*string), nil
}

func (t *Token) call(ctx context.Context, method string, params ...any) ([]any, error) {
	var out []any
	if err := t.contract.Call(&bind.CallOpts{Context: ctx}, &out, method, params...); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s returned empty result", method)
	}
	return out, nil
}
