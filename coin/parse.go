package coin

import (
	"errors"
	"math/big"
	"strings"
)

// Parse errors returned by FromString.
var (
	ErrInvalidFormat   = errors.New("invalid coin amount format")
	ErrTooManyDecimals = errors.New("too many decimal places for the coin")
)

// coinDecimals is how many fractional digits one coin carries.
const coinDecimals = 18

// FromString parses a decimal string such as "1.5" or "-0.000000000000000001"
// into an Amount. The fractional part may carry at most 18 digits. The
// arithmetic is exact; there is no float intermediate.
func FromString(s string) (Amount, error) {
	negative := false
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		negative = true
		s = rest
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return Amount{}, ErrInvalidFormat
	}
	wholeStr := parts[0]
	fracStr := ""
	if len(parts) == 2 {
		fracStr = parts[1]
	}

	if wholeStr == "" && fracStr == "" {
		return Amount{}, ErrInvalidFormat
	}
	if len(fracStr) > coinDecimals {
		return Amount{}, ErrTooManyDecimals
	}

	whole, err := parseDigits(wholeStr)
	if err != nil {
		return Amount{}, err
	}
	frac, err := parseDigits(fracStr)
	if err != nil {
		return Amount{}, err
	}

	// A fractional part of length L contributes frac * 10^(18-L) nau.
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(coinDecimals-len(fracStr))), nil)
	nau := new(big.Int).Mul(whole, nauPerCoin)
	nau.Add(nau, frac.Mul(frac, scale))

	if negative {
		nau.Neg(nau)
	}
	return Amount{nau: nau}, nil
}

func parseDigits(s string) (*big.Int, error) {
	if s == "" {
		return new(big.Int), nil
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return nil, ErrInvalidFormat
		}
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, ErrInvalidFormat
	}
	return v, nil
}
