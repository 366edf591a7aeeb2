package claim

// Kind classifies the terminal state of one claim attempt.
type Kind int

const (
	// KindSuccess: the claim transaction was submitted; Confirmed says
	// whether a receipt was seen before the confirmation ceiling.
	KindSuccess Kind = iota
	// KindCooldownActive: the address must wait RemainingSeconds more.
	KindCooldownActive
	// KindInsufficientFunds: the faucet itself is out of tokens.
	KindInsufficientFunds
	// KindNotConfigured: contract addresses are missing for the network.
	KindNotConfigured
	// KindChainError: transport failure, timeout, or unclassified revert.
	KindChainError
	// KindInvalidInput: the claimant address is syntactically invalid; no
	// chain call was made.
	KindInvalidInput
)

// Outcome is the result of one claim attempt. It is produced once per
// request and never persisted; the authoritative claim state lives in the
// contract.
type Outcome struct {
	Kind             Kind
	TxHash           string
	Confirmed        bool
	RemainingSeconds int64
	Message          string
}
