package networks

import (
	"fmt"
	"strings"
)

// DefaultNetwork is the id used whenever a request omits the network or
// names one the registry does not know.
const DefaultNetwork = "minato"

// Network describes one supported chain. FaucetAddress and TokenAddress may
// be empty, meaning the contracts are not deployed there yet; such a network
// is known but not usable.
type Network struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ChainID       int64  `json:"chainId"`
	RpcUrl        string `json:"rpcUrl"`
	FaucetAddress string `json:"faucetAddress,omitempty"`
	TokenAddress  string `json:"tokenAddress,omitempty"`
	ExplorerUrl   string `json:"explorerUrl"`
}

// Configured reports whether both contract addresses are present.
func (n Network) Configured() bool {
	return n.FaucetAddress != "" && n.TokenAddress != ""
}

// Registry is the immutable set of supported networks, built once at startup.
// Safe for concurrent reads.
type Registry struct {
	order    []string
	networks map[string]Network
}

// Override carries the per-network values the environment may supply.
type Override struct {
	RpcUrl        string
	FaucetAddress string
	TokenAddress  string
}

// builtin returns the compiled-in network set in declaration order.
func builtin() []Network {
	return []Network{
		{
			ID:          "minato",
			Name:        "Soneium Minato",
			ChainID:     1946,
			RpcUrl:      "https://rpc.minato.soneium.org",
			ExplorerUrl: "https://explorer-testnet.soneium.org",
		},
		{
			ID:          "kairos",
			Name:        "Kaia Kairos",
			ChainID:     1001,
			RpcUrl:      "https://public-en-kairos.node.kaia.io",
			ExplorerUrl: "https://kairos.kaiascan.io",
		},
	}
}

// NewRegistry builds the registry from the compiled-in networks, applying any
// environment overrides keyed by network id. Unknown override keys are
// rejected so a typo in deployment config fails loudly.
func NewRegistry(overrides map[string]Override) (*Registry, error) {
	r := &Registry{networks: make(map[string]Network)}
	for _, n := range builtin() {
		r.order = append(r.order, n.ID)
		r.networks[n.ID] = n
	}

	for id, ov := range overrides {
		id = strings.ToLower(strings.TrimSpace(id))
		n, ok := r.networks[id]
		if !ok {
			return nil, fmt.Errorf("networks: override for unknown network %q", id)
		}
		if ov.RpcUrl != "" {
			n.RpcUrl = ov.RpcUrl
		}
		if ov.FaucetAddress != "" {
			n.FaucetAddress = ov.FaucetAddress
		}
		if ov.TokenAddress != "" {
			n.TokenAddress = ov.TokenAddress
		}
		r.networks[id] = n
	}
	return r, nil
}

// IsValid reports whether id names a known network. Never fails.
func (r *Registry) IsValid(id string) bool {
	_, ok := r.networks[id]
	return ok
}

// Resolve returns the network for id, or an error when id is unknown.
// Callers that want best-effort routing should go through ResolveOrDefault.
func (r *Registry) Resolve(id string) (Network, error) {
	n, ok := r.networks[id]
	if !ok {
		return Network{}, fmt.Errorf("networks: unknown network %q", id)
	}
	return n, nil
}

// ResolveOrDefault returns the network for id, falling back to the default
// network when id is empty or unknown. Any request is routable.
func (r *Registry) ResolveOrDefault(id string) Network {
	if n, ok := r.networks[id]; ok {
		return n
	}
	return r.networks[DefaultNetwork]
}

// Default returns the compiled-in default network id.
func (r *Registry) Default() string { return DefaultNetwork }

// List returns every known network in declaration order.
func (r *Registry) List() []Network {
	out := make([]Network, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.networks[id])
	}
	return out
}

// ListUsable returns only the networks with both contract addresses
// configured, in declaration order.
func (r *Registry) ListUsable() []Network {
	out := make([]Network, 0, len(r.order))
	for _, id := range r.order {
		if n := r.networks[id]; n.Configured() {
			out = append(out, n)
		}
	}
	return out
}
