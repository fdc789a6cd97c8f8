package fiat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceMapInsertAndGet(t *testing.T) {
	pm := NewPriceMap()

	_, ok := pm.Get(USD)
	assert.False(t, ok)

	_, replaced := pm.Insert(NewFromMinor(123, USD))
	assert.False(t, replaced)

	got, ok := pm.Get(USD)
	assert.True(t, ok)
	assert.Equal(t, NewFromMinor(123, USD), got)

	prev, replaced := pm.Insert(NewFromMinor(456, USD))
	assert.True(t, replaced)
	assert.Equal(t, NewFromMinor(123, USD), prev)
	assert.Equal(t, 1, pm.Len())
}

func TestPriceMapRemove(t *testing.T) {
	pm := NewPriceMap()
	pm.Insert(NewFromMinor(150, JPY))

	removed, ok := pm.Remove(JPY)
	assert.True(t, ok)
	assert.Equal(t, NewFromMinor(150, JPY), removed)
	assert.Equal(t, 0, pm.Len())

	_, ok = pm.Remove(JPY)
	assert.False(t, ok)
}

func TestPriceMapEach(t *testing.T) {
	pm := NewPriceMap()
	pm.Insert(NewFromMinor(123, USD))
	pm.Insert(NewFromMinor(111, EUR))
	pm.Insert(NewFromMinor(150, JPY))

	seen := map[Currency]int64{}
	pm.Each(func(a Amount) bool {
		seen[a.Currency()] = a.AsMinorUnits()
		return true
	})
	assert.Equal(t, map[Currency]int64{USD: 123, EUR: 111, JPY: 150}, seen)

	// Iteration stops when the callback returns false, and can be restarted.
	count := 0
	pm.Each(func(Amount) bool {
		count++
		return false
	})
	assert.Equal(t, 1, count)
}

func TestPriceMapClone(t *testing.T) {
	pm := NewPriceMap()
	pm.Insert(NewFromMinor(123, USD))

	clone := pm.Clone()
	clone.Insert(NewFromMinor(999, USD))
	clone.Insert(NewFromMinor(111, EUR))

	got, _ := pm.Get(USD)
	assert.Equal(t, int64(123), got.AsMinorUnits())
	_, ok := pm.Get(EUR)
	assert.False(t, ok)
	assert.Equal(t, 2, clone.Len())
}
