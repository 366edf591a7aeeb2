// Package units converts raw on-chain token quantities to and from their
// decimal string form. The scale factor always comes from the token
// contract's decimals(); nothing here assumes 18.
package units

import (
	"fmt"
	"math/big"
	"strings"
)

var ten = big.NewInt(10)

// Format renders a raw amount as a decimal string scaled down by decimals.
// Trailing fractional zeros are trimmed; whole numbers carry no point.
func Format(raw *big.Int, decimals uint8) string {
	if raw == nil {
		return "0"
	}
	if decimals == 0 {
		return raw.String()
	}

	neg := raw.Sign() < 0
	abs := new(big.Int).Abs(raw)

	scale := new(big.Int).Exp(ten, big.NewInt(int64(decimals)), nil)
	q, r := new(big.Int).QuoRem(abs, scale, new(big.Int))

	out := q.String()
	if r.Sign() != 0 {
		frac := fmt.Sprintf("%0*s", decimals, r.String())
		frac = strings.TrimRight(frac, "0")
		out += "." + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}

// Parse converts a decimal string back into a raw amount scaled up by
// decimals. Fractional digits beyond the token's precision are rejected
// rather than silently truncated.
func Parse(s string, decimals uint8) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("units: empty amount")
	}
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}
	if intPart == "" {
		intPart = "0"
	}
	if len(fracPart) > int(decimals) {
		return nil, fmt.Errorf("units: amount %q has more than %d fractional digits", s, decimals)
	}

	digits := intPart + fracPart + strings.Repeat("0", int(decimals)-len(fracPart))
	raw, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, fmt.Errorf("units: invalid amount %q", s)
	}
	if neg {
		raw.Neg(raw)
	}
	return raw, nil
}
