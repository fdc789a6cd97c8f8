// Package exchange converts between native-coin amounts and fiat amounts
// using a quoted exchange rate.
package exchange

import (
	"errors"
	"math"
	"math/big"

	"neptune-dashboard/coin"
	"neptune-dashboard/fiat"
)

var (
	// ErrZeroRate reports a conversion against a zero exchange rate, which
	// has no useful inverse.
	ErrZeroRate = errors.New("exchange rate is zero")

	// ErrExceedsMaxSupply reports a fiat amount that converts to more coins
	// than will ever exist.
	ErrExceedsMaxSupply = errors.New("exceeds maximum supply of 42,000,000 coins")
)

// CoinToFiat converts a coin amount to fiat at the given rate, where rate is
// the price of one whole coin in its currency.
//
// The intermediate product nau * rateMinor exceeds 64 bits, so the arithmetic
// runs through big.Int. Division truncates toward zero; sub-minor-unit
// remainders are discarded, so converting back does not reproduce the input
// exactly. A zero rate yields a zero amount rather than an error. Quotients
// beyond the int64 range clamp to the maximum.
func CoinToFiat(amount coin.Amount, rate fiat.Amount) fiat.Amount {
	if rate.AsMinorUnits() == 0 {
		return fiat.NewFromMinor(0, rate.Currency())
	}

	product := new(big.Int).Mul(amount.Nau(), big.NewInt(rate.AsMinorUnits()))
	quotient := product.Quo(product, big.NewInt(coin.NauPerCoin))

	minor := int64(math.MaxInt64)
	if quotient.IsInt64() {
		minor = quotient.Int64()
	}
	return fiat.NewFromMinor(minor, rate.Currency())
}

// FiatToCoin converts a fiat amount to coins at the given rate.
//
// Fails with ErrZeroRate on a zero rate and with ErrExceedsMaxSupply when the
// result is larger in magnitude than the total coin supply. As with
// CoinToFiat, division truncates toward zero.
func FiatToCoin(amount fiat.Amount, rate fiat.Amount) (coin.Amount, error) {
	if rate.AsMinorUnits() == 0 {
		return coin.Amount{}, ErrZeroRate
	}

	product := new(big.Int).Mul(big.NewInt(amount.AsMinorUnits()), big.NewInt(coin.NauPerCoin))
	quotient := product.Quo(product, big.NewInt(rate.AsMinorUnits()))

	if quotient.CmpAbs(coin.MaxSupplyNau()) > 0 {
		return coin.Amount{}, ErrExceedsMaxSupply
	}
	return coin.FromNau(quotient), nil
}
