package chain

import "errors"

var (
	// ErrNotConfigured means the network is known but its faucet or token
	// contract address is missing from configuration.
	ErrNotConfigured = errors.New("chain: contracts not configured for network")

	// ErrMissingCredential means no operator private key was configured, so
	// no transaction can be signed. Reads still work.
	ErrMissingCredential = errors.New("chain: operator key not configured")
)
