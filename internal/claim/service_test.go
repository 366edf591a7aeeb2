package claim

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soneium-tools/token-faucet/internal/chain"
	"github.com/soneium-tools/token-faucet/internal/networks"
)

const (
	goodAddress = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
	testTxHash  = "0x3b198bfd5d2907285af009e9ae84a0ecd63677110d89d7e030251acb87f6487e"
)

// fakeFaucet counts every contract interaction and returns scripted values.
type fakeFaucet struct {
	canClaim     bool
	canClaimErr  error
	remaining    int64
	remainingErr error
	claimErr     error
	receipt      chain.Receipt
	waitErr      error

	canClaimCalls  int
	remainingCalls int
	claimForCalls  int
	waitCalls      int
	claimedFor     common.Address
}

func (f *fakeFaucet) CanClaim(ctx context.Context, user common.Address) (bool, error) {
	f.canClaimCalls++
	return f.canClaim, f.canClaimErr
}

func (f *fakeFaucet) RemainingCooldown(ctx context.Context, user common.Address) (*big.Int, error) {
	f.remainingCalls++
	return big.NewInt(f.remaining), f.remainingErr
}

func (f *fakeFaucet) Balance(ctx context.Context) (*big.Int, error)     { return big.NewInt(0), nil }
func (f *fakeFaucet) ClaimAmount(ctx context.Context) (*big.Int, error) { return big.NewInt(0), nil }
func (f *fakeFaucet) CooldownTime(ctx context.Context) (*big.Int, error) {
	return big.NewInt(86400), nil
}
func (f *fakeFaucet) TokenDecimals(ctx context.Context) (uint8, error) { return 18, nil }
func (f *fakeFaucet) TokenSymbol(ctx context.Context) (string, error)  { return "TST", nil }

func (f *fakeFaucet) ClaimFor(ctx context.Context, user common.Address) (common.Hash, error) {
	f.claimForCalls++
	f.claimedFor = user
	if f.claimErr != nil {
		return common.Hash{}, f.claimErr
	}
	return common.HexToHash(testTxHash), nil
}

func (f *fakeFaucet) WaitClaim(ctx context.Context, tx common.Hash) (chain.Receipt, error) {
	f.waitCalls++
	return f.receipt, f.waitErr
}

type fakeProvider struct {
	faucet *fakeFaucet
	err    error
	calls  int
}

func (p *fakeProvider) Faucet(ctx context.Context, n networks.Network) (chain.Faucet, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.faucet, nil
}

func newService(t *testing.T, p Provider) *Service {
	t.Helper()
	registry, err := networks.NewRegistry(map[string]networks.Override{
		"minato": {
			FaucetAddress: "0x1111111111111111111111111111111111111111",
			TokenAddress:  "0x2222222222222222222222222222222222222222",
		},
	})
	require.NoError(t, err)
	return NewService(registry, p)
}

func TestClaimInvalidAddressMakesNoChainCall(t *testing.T) {
	tests := []string{"", "0x123", "not-an-address", "0xZZ97970C51812dc3A010C7d01b50e0d17dc79C8"}

	for _, address := range tests {
		t.Run(fmt.Sprintf("address=%q", address), func(t *testing.T) {
			provider := &fakeProvider{faucet: &fakeFaucet{}}
			svc := newService(t, provider)

			out := svc.Claim(context.Background(), Request{Network: "minato", Address: address})

			assert.Equal(t, KindInvalidInput, out.Kind)
			assert.Zero(t, provider.calls, "no chain interaction for invalid input")
		})
	}
}

func TestClaimCooldownActive(t *testing.T) {
	faucet := &fakeFaucet{canClaim: false, remaining: 3600}
	svc := newService(t, &fakeProvider{faucet: faucet})

	out := svc.Claim(context.Background(), Request{Network: "minato", Address: goodAddress})

	assert.Equal(t, KindCooldownActive, out.Kind)
	assert.Equal(t, int64(3600), out.RemainingSeconds)
	assert.Contains(t, out.Message, "60 minutes")
	assert.Zero(t, faucet.claimForCalls, "no write while on cooldown")
}

func TestClaimCooldownMinutesRoundUp(t *testing.T) {
	faucet := &fakeFaucet{canClaim: false, remaining: 61}
	svc := newService(t, &fakeProvider{faucet: faucet})

	out := svc.Claim(context.Background(), Request{Network: "minato", Address: goodAddress})

	assert.Equal(t, int64(61), out.RemainingSeconds)
	assert.Contains(t, out.Message, "2 minutes")
}

func TestClaimSuccess(t *testing.T) {
	faucet := &fakeFaucet{canClaim: true, receipt: chain.Receipt{Confirmed: true}}
	svc := newService(t, &fakeProvider{faucet: faucet})

	out := svc.Claim(context.Background(), Request{Network: "minato", Address: goodAddress})

	assert.Equal(t, KindSuccess, out.Kind)
	assert.True(t, out.Confirmed)
	assert.Equal(t, common.HexToHash(testTxHash).Hex(), out.TxHash)
	assert.Equal(t, common.HexToAddress(goodAddress), faucet.claimedFor)
	assert.Equal(t, 1, faucet.waitCalls)
}

func TestClaimOmittedNetworkUsesDefault(t *testing.T) {
	faucet := &fakeFaucet{canClaim: true, receipt: chain.Receipt{Confirmed: true}}
	svc := newService(t, &fakeProvider{faucet: faucet})

	omitted := svc.Claim(context.Background(), Request{Address: goodAddress})
	explicit := svc.Claim(context.Background(), Request{Network: networks.DefaultNetwork, Address: goodAddress})

	assert.Equal(t, explicit.Kind, omitted.Kind)
	assert.Equal(t, explicit.TxHash, omitted.TxHash)
}

func TestClaimRevertedReceiptIsChainError(t *testing.T) {
	faucet := &fakeFaucet{canClaim: true, receipt: chain.Receipt{Confirmed: true, Reverted: true}}
	svc := newService(t, &fakeProvider{faucet: faucet})

	out := svc.Claim(context.Background(), Request{Network: "minato", Address: goodAddress})

	assert.Equal(t, KindChainError, out.Kind)
	// The hash still comes back so the caller can inspect the failed tx.
	assert.Equal(t, common.HexToHash(testTxHash).Hex(), out.TxHash)
}

func TestClaimUnconfirmedStillSucceedsWithHash(t *testing.T) {
	faucet := &fakeFaucet{canClaim: true, receipt: chain.Receipt{Confirmed: false}}
	svc := newService(t, &fakeProvider{faucet: faucet})

	out := svc.Claim(context.Background(), Request{Network: "minato", Address: goodAddress})

	assert.Equal(t, KindSuccess, out.Kind)
	assert.False(t, out.Confirmed)
	assert.Equal(t, common.HexToHash(testTxHash).Hex(), out.TxHash)
}

func TestClaimNotConfigured(t *testing.T) {
	svc := newService(t, &fakeProvider{err: fmt.Errorf("network kairos: %w", chain.ErrNotConfigured)})

	out := svc.Claim(context.Background(), Request{Network: "kairos", Address: goodAddress})

	assert.Equal(t, KindNotConfigured, out.Kind)
}

func TestClaimClassifiesSubmissionRaces(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{
			name: "cooldown revert after optimistic check",
			err:  errors.New("execution reverted: CooldownNotExpired()"),
			want: KindCooldownActive,
		},
		{
			name: "faucet drained",
			err:  errors.New("execution reverted: InsufficientBalance()"),
			want: KindInsufficientFunds,
		},
		{
			name: "missing credential",
			err:  chain.ErrMissingCredential,
			want: KindChainError,
		},
		{
			name: "transport failure",
			err:  errors.New("connection refused"),
			want: KindChainError,
		},
		{
			name: "timeout",
			err:  fmt.Errorf("faucet claimFor: %w", context.DeadlineExceeded),
			want: KindChainError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			faucet := &fakeFaucet{canClaim: true, claimErr: tt.err}
			svc := newService(t, &fakeProvider{faucet: faucet})

			out := svc.Claim(context.Background(), Request{Network: "minato", Address: goodAddress})

			assert.Equal(t, tt.want, out.Kind)
			assert.Zero(t, faucet.waitCalls, "no confirmation wait after failed submission")
		})
	}
}

func TestClaimReadFailureIsChainError(t *testing.T) {
	faucet := &fakeFaucet{canClaimErr: errors.New("rpc: connection reset")}
	svc := newService(t, &fakeProvider{faucet: faucet})

	out := svc.Claim(context.Background(), Request{Network: "minato", Address: goodAddress})

	assert.Equal(t, KindChainError, out.Kind)
	assert.Zero(t, faucet.claimForCalls)
}
