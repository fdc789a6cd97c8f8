package prices

import (
	"context"
	"time"

	"github.com/go-kit/log"

	"neptune-dashboard/fiat"
)

// loggingProvider decorates a Provider with logging
type loggingProvider struct {
	next   Provider
	logger log.Logger
}

// NewLoggingProvider returns a new logging Provider
func NewLoggingProvider(logger log.Logger, p Provider) Provider {
	return &loggingProvider{
		next:   p,
		logger: logger,
	}
}

func (p *loggingProvider) GetPrices(ctx context.Context) (prices fiat.PriceMap, err error) {
	defer func(begin time.Time) {
		p.logger.Log(
			"method", "get_prices",
			"currencies", prices.Len(),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.GetPrices(ctx)
}
