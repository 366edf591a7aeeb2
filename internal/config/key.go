package config

import (
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
)

// ParseOperatorKey decodes a hex private key, tolerating a 0x prefix. The
// error message deliberately omits the key material.
func ParseOperatorKey(hexKey string) (*ecdsa.PrivateKey, error) {
	k := strings.TrimSpace(hexKey)
	k = strings.TrimPrefix(k, "0x")
	k = strings.TrimPrefix(k, "0X")
	if k == "" {
		return nil, fmt.Errorf("config: operator key is empty")
	}
	priv, err := crypto.HexToECDSA(k)
	if err != nil {
		return nil, fmt.Errorf("config: invalid operator key")
	}
	return priv, nil
}
