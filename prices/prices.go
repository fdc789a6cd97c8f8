// Package prices defines the price-provider capability and a time-expiring
// cache in front of it.
package prices

import (
	"context"

	"neptune-dashboard/fiat"
)

// Provider fetches the current fiat prices of one native coin.
//
// A call performs exactly one outbound request. Quote currencies missing from
// the provider's response are simply absent from the returned map; callers
// must treat absence as "price unknown", never as zero. Network failures,
// error statuses and malformed bodies surface as a single opaque error.
type Provider interface {
	GetPrices(ctx context.Context) (fiat.PriceMap, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context) (fiat.PriceMap, error)

func (f ProviderFunc) GetPrices(ctx context.Context) (fiat.PriceMap, error) {
	return f(ctx)
}
