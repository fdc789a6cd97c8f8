package fiat

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Parse errors returned by NewFromString.
var (
	// ErrInvalidFormat reports a string that is not a valid decimal number,
	// e.g. "abc" or "1.2.3", or one whose value overflows 64 bits.
	ErrInvalidFormat = errors.New("invalid fiat amount format")

	// ErrTooManyDecimals reports more fractional digits than the currency
	// supports, e.g. "1.234" for USD.
	ErrTooManyDecimals = errors.New("too many decimal places for the currency")
)

// Amount is a monetary value in a specific fiat currency.
//
// The value is held as a signed 64-bit count of the currency's minor units
// (e.g. cents for USD), never as a float, so that formatting and arithmetic
// are exact. Amounts are immutable; every operation returns a new value.
type Amount struct {
	minor    int64
	currency Currency
}

// NewFromFloat converts a floating-point value, typically one ingested from a
// price API, to an Amount by rounding half away from zero at the currency's
// minor unit.
//
// This is the only place a float may become an Amount. Inputs whose scaled
// value falls outside the int64 range produce an unspecified wrapped value;
// provider prices are far below that boundary.
func NewFromFloat(value float64, currency Currency) Amount {
	minor := decimal.NewFromFloat(value).
		Shift(int32(currency.Decimals())).
		Round(0).
		IntPart()
	return Amount{minor: minor, currency: currency}
}

// NewFromMinor constructs an Amount directly from a count of minor units.
// 12345 cents is $123.45.
func NewFromMinor(minor int64, currency Currency) Amount {
	return Amount{minor: minor, currency: currency}
}

// NewFromString parses a decimal string such as "123.45" or "-0.5".
//
// The fractional part may not be longer than the currency's decimal places;
// that is reported as ErrTooManyDecimals before any further validation. An
// empty number, a second '.', non-digit characters, or 64-bit overflow are
// reported as ErrInvalidFormat. The sign applies to the combined value, so
// "-0.5" parses to -50 cents.
func NewFromString(s string, currency Currency) (Amount, error) {
	decimals := int(currency.Decimals())

	negative := false
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		negative = true
		s = rest
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return Amount{}, ErrInvalidFormat
	}
	majorStr := parts[0]
	minorStr := ""
	if len(parts) == 2 {
		minorStr = parts[1]
	}

	if majorStr == "" && minorStr == "" {
		return Amount{}, ErrInvalidFormat
	}
	if len(minorStr) > decimals {
		return Amount{}, ErrTooManyDecimals
	}

	major, err := parseUnits(majorStr)
	if err != nil {
		return Amount{}, err
	}
	minor, err := parseUnits(minorStr)
	if err != nil {
		return Amount{}, err
	}

	// A fractional part of length L contributes minor * 10^(decimals-L).
	scaled, ok := mulCheck(minor, pow10(decimals-len(minorStr)))
	if !ok {
		return Amount{}, ErrInvalidFormat
	}
	total, ok := mulCheck(major, pow10(decimals))
	if !ok {
		return Amount{}, ErrInvalidFormat
	}
	total, ok = addCheck(total, scaled)
	if !ok {
		return Amount{}, ErrInvalidFormat
	}

	if negative {
		total = -total
	}
	return NewFromMinor(total, currency), nil
}

// AsMinorUnits returns the raw count of minor units.
func (a Amount) AsMinorUnits() int64 {
	return a.minor
}

// Currency returns the currency of the amount.
func (a Amount) Currency() Currency {
	return a.currency
}

// String renders the amount as a plain decimal number, e.g. "25.34", with the
// fraction zero-padded to the currency's decimal places. Currencies without
// minor units render as a bare integer, e.g. "500" for JPY.
func (a Amount) String() string {
	decimals := int(a.currency.Decimals())
	if decimals == 0 {
		return strconv.FormatInt(a.minor, 10)
	}

	abs := a.minor
	sign := ""
	if abs < 0 {
		sign = "-"
		abs = -abs
	}
	divisor := pow10(decimals)
	return fmt.Sprintf("%s%d.%0*d", sign, abs/divisor, decimals, abs%divisor)
}

// StringWithSymbol renders the amount prefixed by its currency symbol,
// e.g. "$25.34".
func (a Amount) StringWithSymbol() string {
	return a.currency.Symbol() + a.String()
}

// StringWithCode renders the amount suffixed by its currency code,
// e.g. "25.34 USD".
func (a Amount) StringWithCode() string {
	return a.String() + " " + a.currency.Code()
}

// Add returns the sum of two amounts of the same currency.
//
// Adding amounts of different currencies is a bug in the caller, not a data
// problem, and would silently corrupt displayed balances if tolerated, so it
// panics. Callers that must degrade gracefully use CheckedAdd.
func (a Amount) Add(b Amount) Amount {
	if a.currency != b.currency {
		panic(fmt.Sprintf("cannot add amounts of different currencies: %v and %v", a.currency, b.currency))
	}
	return Amount{minor: a.minor + b.minor, currency: a.currency}
}

// CheckedAdd returns the sum of two amounts, reporting false instead of
// panicking on a currency mismatch or int64 overflow.
func (a Amount) CheckedAdd(b Amount) (Amount, bool) {
	if a.currency != b.currency {
		return Amount{}, false
	}
	sum, ok := addCheck(a.minor, b.minor)
	if !ok {
		return Amount{}, false
	}
	return Amount{minor: sum, currency: a.currency}, true
}

// parseUnits parses a run of ASCII digits. An empty string parses to zero;
// anything else non-numeric, and values over int64, are ErrInvalidFormat.
func parseUnits(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, ErrInvalidFormat
		}
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrInvalidFormat
	}
	return v, nil
}

// pow10 returns 10^n for the small exponents used by currency scaling (n <= 3).
func pow10(n int) int64 {
	v := int64(1)
	for i := 0; i < n; i++ {
		v *= 10
	}
	return v
}

func mulCheck(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	v := a * b
	if v/b != a {
		return 0, false
	}
	return v, true
}

func addCheck(a, b int64) (int64, bool) {
	if b > 0 && a > math.MaxInt64-b {
		return 0, false
	}
	if b < 0 && a < math.MinInt64-b {
		return 0, false
	}
	return a + b, true
}
