package prices

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"

	"neptune-dashboard/fiat"
)

// countingProvider counts fetches and serves a fixed map or a fixed error.
type countingProvider struct {
	count int32
	err   error
}

func (p *countingProvider) GetPrices(_ context.Context) (fiat.PriceMap, error) {
	atomic.AddInt32(&p.count, 1)
	if p.err != nil {
		return fiat.PriceMap{}, p.err
	}
	pm := fiat.NewPriceMap()
	pm.Insert(fiat.NewFromMinor(2534, fiat.USD))
	return pm, nil
}

func (p *countingProvider) fetches() int32 {
	return atomic.LoadInt32(&p.count)
}

func TestCacheFetchesOnceWithinTTL(t *testing.T) {
	provider := &countingProvider{}
	cache := NewCache(provider, time.Minute, log.NewNopLogger())

	first, err := cache.GetPrices(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int32(1), provider.fetches())

	second, err := cache.GetPrices(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int32(1), provider.fetches(), "second call must be served from the cache")

	got, ok := second.Get(fiat.USD)
	assert.True(t, ok)
	assert.Equal(t, int64(2534), got.AsMinorUnits())

	// Callers get independent clones, not the cached map itself.
	first.Insert(fiat.NewFromMinor(1, fiat.EUR))
	third, _ := cache.GetPrices(context.Background())
	_, ok = third.Get(fiat.EUR)
	assert.False(t, ok)
}

func TestCacheConcurrentColdStartFetchesOnce(t *testing.T) {
	provider := &countingProvider{}
	cache := NewCache(provider, time.Minute, log.NewNopLogger())

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := cache.GetPrices(context.Background())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), provider.fetches(), "racing readers must not trigger redundant fetches")
}

func TestCacheRefreshesAfterTTL(t *testing.T) {
	provider := &countingProvider{}
	cache := NewCache(provider, time.Millisecond, log.NewNopLogger())

	_, err := cache.GetPrices(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int32(1), provider.fetches())

	time.Sleep(5 * time.Millisecond)

	_, err = cache.GetPrices(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int32(2), provider.fetches(), "expired snapshot must be refreshed")
}

func TestCachePropagatesProviderError(t *testing.T) {
	providerErr := errors.New("http get: connection refused")
	provider := &countingProvider{err: providerErr}
	cache := NewCache(provider, time.Minute, log.NewNopLogger())

	_, err := cache.GetPrices(context.Background())
	assert.ErrorIs(t, err, providerErr)

	// No snapshot was stored; the next call retries.
	_, err = cache.GetPrices(context.Background())
	assert.ErrorIs(t, err, providerErr)
	assert.Equal(t, int32(2), provider.fetches())
}

func TestCacheFailedRefreshLeavesSnapshotUntouched(t *testing.T) {
	provider := &countingProvider{}
	cache := NewCache(provider, time.Millisecond, log.NewNopLogger())

	_, err := cache.GetPrices(context.Background())
	assert.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	provider.err = errors.New("provider down")

	_, err = cache.GetPrices(context.Background())
	assert.Error(t, err, "failed refresh surfaces the provider error")

	// The stale snapshot is still in place: once the provider recovers, the
	// next refresh succeeds and serves fresh data again.
	provider.err = nil
	prices, err := cache.GetPrices(context.Background())
	assert.NoError(t, err)
	_, ok := prices.Get(fiat.USD)
	assert.True(t, ok)
}

func TestCacheDefaultTTL(t *testing.T) {
	cache := NewCache(&countingProvider{}, 0, nil)
	assert.Equal(t, DefaultTTL, cache.ttl)
}

func TestProviderFunc(t *testing.T) {
	called := false
	f := ProviderFunc(func(_ context.Context) (fiat.PriceMap, error) {
		called = true
		return fiat.NewPriceMap(), nil
	})
	_, err := f.GetPrices(context.Background())
	assert.NoError(t, err)
	assert.True(t, called)
}
