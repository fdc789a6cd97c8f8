package exchange

import (
	"context"
	"time"

	"github.com/go-kit/log"

	"neptune-dashboard/coin"
	"neptune-dashboard/fiat"
)

// loggingService decorates an exchange.Service with logging
type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) ToFiat(ctx context.Context, amount coin.Amount, currency fiat.Currency) (converted fiat.Amount, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "to_fiat",
			"amount", amount,
			"currency", currency,
			"converted_amount", converted,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ToFiat(ctx, amount, currency)
}

func (s *loggingService) ToCoin(ctx context.Context, amount fiat.Amount) (converted coin.Amount, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "to_coin",
			"amount", amount,
			"currency", amount.Currency(),
			"converted_amount", converted,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ToCoin(ctx, amount)
}
