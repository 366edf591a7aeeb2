// Package chain owns the RPC client cache and the operator credential, and
// hands out per-network faucet bindings. It is the only package that dials
// anything.
package chain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"net/url"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/soneium-tools/token-faucet/internal/config"
	"github.com/soneium-tools/token-faucet/internal/contracts"
	"github.com/soneium-tools/token-faucet/internal/networks"
)

// ClientRegistry caches one read client per network for the process lifetime
// and holds the single operator credential. Safe for concurrent use.
type ClientRegistry struct {
	mu      sync.Mutex
	clients map[string]*ethclient.Client

	// operatorKey is nil when no credential is configured; writes then fail
	// with ErrMissingCredential. Read-only after construction, never logged.
	operatorKey *ecdsa.PrivateKey

	callTimeout    time.Duration
	confirmTimeout time.Duration
	pollInterval   time.Duration
}

// NewClientRegistry builds the registry from process configuration. The
// operator key is parsed once here; a missing key is not an error so the
// service can run read-only.
func NewClientRegistry(cfg *config.Config) (*ClientRegistry, error) {
	r := &ClientRegistry{
		clients:        make(map[string]*ethclient.Client),
		callTimeout:    cfg.CallTimeout,
		confirmTimeout: cfg.ConfirmTimeout,
		pollInterval:   cfg.ConfirmPollInterval,
	}
	if cfg.HasOperatorKey() {
		key, err := config.ParseOperatorKey(cfg.OperatorKey)
		if err != nil {
			return nil, err
		}
		r.operatorKey = key
	}
	return r, nil
}

// HasCredential reports whether claim transactions can be signed.
func (r *ClientRegistry) HasCredential() bool { return r.operatorKey != nil }

// readClient returns the cached client for the network, dialing on first use.
func (r *ClientRegistry) readClient(ctx context.Context, n networks.Network) (*ethclient.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.clients[n.ID]; ok {
		return c, nil
	}

	if err := validateRPCURL(n.RpcUrl); err != nil {
		return nil, fmt.Errorf("network %s: %w", n.ID, err)
	}

	rpcClient, err := rpc.DialContext(ctx, n.RpcUrl)
	if err != nil {
		return nil, fmt.Errorf("network %s: dial rpc: %w", n.ID, err)
	}

	c := ethclient.NewClient(rpcClient)
	r.clients[n.ID] = c
	return c, nil
}

func validateRPCURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("rpc url is empty")
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("rpc url %q is malformed", raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" && u.Scheme != "ws" && u.Scheme != "wss" {
		return fmt.Errorf("rpc url scheme %q not supported", u.Scheme)
	}
	return nil
}

// Faucet returns the contract surface for one network, or ErrNotConfigured
// when either contract address is absent.
func (r *ClientRegistry) Faucet(ctx context.Context, n networks.Network) (Faucet, error) {
	if !n.Configured() {
		return nil, fmt.Errorf("network %s: %w", n.ID, ErrNotConfigured)
	}
	client, err := r.readClient(ctx, n)
	if err != nil {
		return nil, err
	}
	return &boundFaucet{
		network:        n,
		eth:            client,
		faucet:         contracts.NewFaucet(addr(n.FaucetAddress), client),
		token:          contracts.NewToken(addr(n.TokenAddress), client),
		operatorKey:    r.operatorKey,
		chainID:        big.NewInt(n.ChainID),
		callTimeout:    r.callTimeout,
		confirmTimeout: r.confirmTimeout,
		pollInterval:   r.pollInterval,
	}, nil
}

func addr(s string) common.Address { return common.HexToAddress(s) }

// Close releases every cached RPC connection.
func (r *ClientRegistry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, c := range r.clients {
		c.Close()
		delete(r.clients, id)
	}
}
