// Package prefs resolves the user's currency display preference from the
// environment.
package prefs

import (
	"os"
	"strings"

	"neptune-dashboard/fiat"
)

// ProviderKind selects which price provider the dashboard queries.
type ProviderKind string

const (
	CoinGecko   ProviderKind = "coingecko"
	CoinPaprika ProviderKind = "coinpaprika"
)

// ParseProviderKind resolves a case-insensitive provider name.
func ParseProviderKind(s string) (ProviderKind, bool) {
	switch strings.ToLower(s) {
	case string(CoinGecko):
		return CoinGecko, true
	case string(CoinPaprika):
		return CoinPaprika, true
	}
	return "", false
}

// Preference is the user's complete currency display preference.
type Preference struct {
	// CoinOnly means pure coin mode: no fiat info is fetched or displayed,
	// and the remaining fields are meaningless.
	CoinOnly bool

	// Fiat is the user's chosen fiat currency.
	Fiat fiat.Currency

	// DisplayAsFiat makes fiat the default display instead of the coin.
	DisplayAsFiat bool

	// Provider is the selected price data provider.
	Provider ProviderKind
}

// FromEnv resolves the preference from environment variables, with
// conservative in-code defaults:
//
//	NPT_ONLY        "true"/"1" forces coin-only mode (default false)
//	FIAT_CURRENCY   ISO code of the preferred fiat currency (default USD)
//	DISPLAY_AS_FIAT "true"/"1" to display fiat by default (default true)
//	PRICE_PROVIDER  "coingecko" or "coinpaprika" (default coingecko)
func FromEnv() Preference {
	if boolEnv("NPT_ONLY", false) {
		return Preference{CoinOnly: true}
	}

	preferred := fiat.USD
	if v, ok := os.LookupEnv("FIAT_CURRENCY"); ok {
		if c, ok := fiat.FromCode(strings.ToUpper(v)); ok {
			preferred = c
		}
	}

	provider := CoinGecko
	if v, ok := os.LookupEnv("PRICE_PROVIDER"); ok {
		if kind, ok := ParseProviderKind(v); ok {
			provider = kind
		}
	}

	return Preference{
		Fiat:          preferred,
		DisplayAsFiat: boolEnv("DISPLAY_AS_FIAT", true),
		Provider:      provider,
	}
}

func boolEnv(name string, fallback bool) bool {
	v, ok := os.LookupEnv(name)
	if !ok {
		return fallback
	}
	return strings.EqualFold(v, "true") || v == "1"
}
