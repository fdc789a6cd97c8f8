package exchange

import (
	"context"
	"fmt"

	"neptune-dashboard/coin"
	"neptune-dashboard/fiat"
)

// Source provides the current price map. Implementations must be
// concurrency-safe; the price cache satisfies this.
type Source interface {
	GetPrices(ctx context.Context) (fiat.PriceMap, error)
}

// Service converts wallet amounts between the native coin and fiat using
// current prices.
type Service interface {
	// ToFiat values a coin amount in the given fiat currency.
	ToFiat(ctx context.Context, amount coin.Amount, currency fiat.Currency) (fiat.Amount, error)

	// ToCoin computes how many coins a fiat amount buys at the current rate.
	ToCoin(ctx context.Context, amount fiat.Amount) (coin.Amount, error)
}

type service struct {
	prices Source
}

// NewService constructs a Service backed by the given price source.
func NewService(prices Source) Service {
	return &service{prices: prices}
}

func (s *service) ToFiat(ctx context.Context, amount coin.Amount, currency fiat.Currency) (fiat.Amount, error) {
	rate, err := s.rate(ctx, currency)
	if err != nil {
		return fiat.Amount{}, err
	}
	return CoinToFiat(amount, rate), nil
}

func (s *service) ToCoin(ctx context.Context, amount fiat.Amount) (coin.Amount, error) {
	rate, err := s.rate(ctx, amount.Currency())
	if err != nil {
		return coin.Amount{}, err
	}
	return FiatToCoin(amount, rate)
}

func (s *service) rate(ctx context.Context, currency fiat.Currency) (fiat.Amount, error) {
	prices, err := s.prices.GetPrices(ctx)
	if err != nil {
		return fiat.Amount{}, fmt.Errorf("looking up prices: %w", err)
	}
	rate, ok := prices.Get(currency)
	if !ok {
		return fiat.Amount{}, fmt.Errorf("no price for %v", currency)
	}
	return rate, nil
}
