package chain

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"

	"github.com/soneium-tools/token-faucet/internal/networks"
)

// A faucet without a credential must refuse writes before touching the
// network at all.
func TestClaimForWithoutCredential(t *testing.T) {
	b := &boundFaucet{
		network:     networks.Network{ID: "minato"},
		chainID:     big.NewInt(1946),
		callTimeout: time.Second,
	}

	_, err := b.ClaimFor(context.Background(), common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8"))
	assert.ErrorIs(t, err, ErrMissingCredential)
}
