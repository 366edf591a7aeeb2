package chain

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soneium-tools/token-faucet/internal/config"
	"github.com/soneium-tools/token-faucet/internal/networks"
)

const testKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

func testConfig(operatorKey string) *config.Config {
	return &config.Config{
		OperatorKey:         operatorKey,
		CallTimeout:         time.Second,
		ConfirmTimeout:      time.Second,
		ConfirmPollInterval: 100 * time.Millisecond,
	}
}

func TestNewClientRegistryWithoutKey(t *testing.T) {
	r, err := NewClientRegistry(testConfig(""))
	require.NoError(t, err)
	assert.False(t, r.HasCredential())
}

func TestNewClientRegistryWithKey(t *testing.T) {
	r, err := NewClientRegistry(testConfig(testKey))
	require.NoError(t, err)
	assert.True(t, r.HasCredential())
}

func TestNewClientRegistryRejectsBadKey(t *testing.T) {
	_, err := NewClientRegistry(testConfig("not-hex"))
	assert.Error(t, err)
}

func TestFaucetUnconfiguredNetwork(t *testing.T) {
	r, err := NewClientRegistry(testConfig(""))
	require.NoError(t, err)

	// Known network, no contract addresses: must fail before any dial.
	n := networks.Network{ID: "kairos", RpcUrl: "https://public-en-kairos.node.kaia.io"}
	_, err = r.Faucet(context.Background(), n)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestFaucetRejectsBadRPCURL(t *testing.T) {
	r, err := NewClientRegistry(testConfig(""))
	require.NoError(t, err)

	tests := []struct {
		name   string
		rpcURL string
	}{
		{"empty", ""},
		{"no scheme", "rpc.example.org"},
		{"bad scheme", "ftp://rpc.example.org"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := networks.Network{
				ID:            "minato",
				RpcUrl:        tt.rpcURL,
				FaucetAddress: "0x1111111111111111111111111111111111111111",
				TokenAddress:  "0x2222222222222222222222222222222222222222",
			}
			_, err := r.Faucet(context.Background(), n)
			assert.Error(t, err)
		})
	}
}

func TestValidateRPCURL(t *testing.T) {
	assert.NoError(t, validateRPCURL("https://rpc.minato.soneium.org"))
	assert.NoError(t, validateRPCURL("http://localhost:8545"))
	assert.NoError(t, validateRPCURL("wss://rpc.example.org/ws"))
	assert.Error(t, validateRPCURL(""))
	assert.Error(t, validateRPCURL("localhost:8545"))
	assert.Error(t, validateRPCURL("file:///etc/passwd"))
}
