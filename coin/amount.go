// Package coin represents amounts of the native coin in its smallest
// indivisible unit, the nau.
package coin

import (
	"fmt"
	"math/big"
	"strings"
)

// NauPerCoin is the number of nau in one whole coin (18 decimal places).
const NauPerCoin = 1_000_000_000_000_000_000

// MaxSupplyCoins is the total number of coins that will ever exist.
const MaxSupplyCoins = 42_000_000

var (
	nauPerCoin = big.NewInt(NauPerCoin)

	// maxSupplyNau = MaxSupplyCoins * NauPerCoin, which exceeds int64.
	maxSupplyNau = new(big.Int).Mul(big.NewInt(MaxSupplyCoins), nauPerCoin)
)

// Amount is an amount of the native coin, held as a count of nau.
//
// The full supply spans well over 64 bits of nau, so the count is a big.Int.
// Amounts are immutable: constructors and accessors copy, and no method
// mutates the receiver.
type Amount struct {
	nau *big.Int
}

// Coins returns an Amount of n whole coins.
func Coins(n int64) Amount {
	return Amount{nau: new(big.Int).Mul(big.NewInt(n), nauPerCoin)}
}

// FromNau constructs an Amount from a nau count. The input is copied.
func FromNau(nau *big.Int) Amount {
	return Amount{nau: new(big.Int).Set(nau)}
}

// Nau returns a copy of the amount's nau count. A zero-value Amount counts
// as zero nau.
func (a Amount) Nau() *big.Int {
	if a.nau == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(a.nau)
}

// Equal reports whether two amounts hold the same number of nau.
func (a Amount) Equal(b Amount) bool {
	return a.Nau().Cmp(b.Nau()) == 0
}

// String renders the amount in whole coins with any trailing fractional
// zeros trimmed, e.g. "1.5" or "42".
func (a Amount) String() string {
	nau := a.Nau()

	sign := ""
	if nau.Sign() < 0 {
		sign = "-"
		nau.Neg(nau)
	}

	whole, frac := new(big.Int).QuoRem(nau, nauPerCoin, new(big.Int))
	if frac.Sign() == 0 {
		return sign + whole.String()
	}
	fracStr := strings.TrimRight(fmt.Sprintf("%018d", frac), "0")
	return fmt.Sprintf("%s%s.%s", sign, whole.String(), fracStr)
}

// MaxSupplyNau returns the maximum supply expressed in nau.
func MaxSupplyNau() *big.Int {
	return new(big.Int).Set(maxSupplyNau)
}
