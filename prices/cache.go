package prices

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-kit/log"

	"neptune-dashboard/fiat"
)

// DefaultTTL is how long a fetched snapshot stays fresh.
const DefaultTTL = 60 * time.Second

// snapshot pairs a price map with the instant it was fetched. Snapshots are
// replaced wholesale, never mutated, so a reader holding one is unaffected by
// a concurrent refresh.
type snapshot struct {
	prices    fiat.PriceMap
	fetchedAt time.Time
}

// Cache memoizes one Provider behind a TTL.
//
// Reads take the shared lock and return a clone of the current snapshot while
// it is fresh. On expiry a caller escalates to the exclusive lock and
// re-checks freshness before fetching, so that concurrent callers racing past
// an expired snapshot trigger at most one provider call per TTL window. A
// failed refresh leaves the previous snapshot in place and propagates the
// provider's error; the next call retries.
//
// The fetch runs while the exclusive lock is held and the cache imposes no
// timeout of its own, so a hung provider blocks other refreshers for as long
// as the provider's transport allows.
type Cache struct {
	provider Provider
	ttl      time.Duration
	logger   log.Logger

	lock     sync.RWMutex
	snapshot *snapshot
}

// NewCache returns a Cache in front of provider. A non-positive ttl falls
// back to DefaultTTL.
func NewCache(provider Provider, ttl time.Duration, logger log.Logger) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Cache{
		provider: provider,
		ttl:      ttl,
		logger:   logger,
	}
}

// GetPrices returns the current price map, fetching from the provider only
// when no fresh snapshot exists.
func (c *Cache) GetPrices(ctx context.Context) (fiat.PriceMap, error) {
	c.lock.RLock()
	if prices, ok := c.fresh(); ok {
		c.lock.RUnlock()
		return prices, nil
	}
	c.lock.RUnlock()

	c.lock.Lock()
	defer c.lock.Unlock()

	// A concurrent refresher may have repopulated the snapshot while this
	// caller waited for the write lock.
	if prices, ok := c.fresh(); ok {
		return prices, nil
	}

	c.logger.Log("msg", "refreshing prices", "ttl", c.ttl)
	prices, err := c.provider.GetPrices(ctx)
	if err != nil {
		return fiat.PriceMap{}, fmt.Errorf("refreshing prices: %w", err)
	}

	c.snapshot = &snapshot{prices: prices.Clone(), fetchedAt: time.Now()}
	return prices, nil
}

// fresh returns a clone of the snapshot's map while it is within the TTL.
// Callers must hold the lock in either mode.
func (c *Cache) fresh() (fiat.PriceMap, bool) {
	if c.snapshot == nil {
		return fiat.PriceMap{}, false
	}
	if time.Since(c.snapshot.fetchedAt) >= c.ttl {
		return fiat.PriceMap{}, false
	}
	return c.snapshot.prices.Clone(), true
}
