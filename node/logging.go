package node

import (
	"context"
	"time"

	"github.com/go-kit/log"

	"neptune-dashboard/coin"
)

// loggingClient decorates a node.Client with logging
type loggingClient struct {
	next   Client
	logger log.Logger
}

// NewLoggingClient returns a new logging Client
func NewLoggingClient(logger log.Logger, c Client) Client {
	return &loggingClient{
		next:   c,
		logger: logger,
	}
}

func (c *loggingClient) BlockHeight(ctx context.Context) (height uint64, err error) {
	defer func(begin time.Time) {
		c.logger.Log(
			"method", "block_height",
			"height", height,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.BlockHeight(ctx)
}

func (c *loggingClient) ConfirmedAvailableBalance(ctx context.Context) (balance coin.Amount, err error) {
	defer func(begin time.Time) {
		c.logger.Log(
			"method", "confirmed_available_balance",
			"balance", balance,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.ConfirmedAvailableBalance(ctx)
}

func (c *loggingClient) UnconfirmedAvailableBalance(ctx context.Context) (balance coin.Amount, err error) {
	defer func(begin time.Time) {
		c.logger.Log(
			"method", "unconfirmed_available_balance",
			"balance", balance,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.UnconfirmedAvailableBalance(ctx)
}
