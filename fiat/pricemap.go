package fiat

// PriceMap holds the price of one native coin quoted in various fiat
// currencies.
//
// Only the raw minor-unit value is stored per currency; Amounts are
// reconstructed on every read. A currency absent from the map means "price
// unknown", never zero. A PriceMap is not safe for concurrent mutation;
// the price cache hands out clones instead of sharing one map.
type PriceMap struct {
	prices map[Currency]int64
}

// NewPriceMap returns an empty PriceMap.
func NewPriceMap() PriceMap {
	return PriceMap{prices: map[Currency]int64{}}
}

// Insert stores the price for the amount's currency, replacing any previous
// entry. The previous price, if any, is returned reconstructed as an Amount.
func (pm PriceMap) Insert(price Amount) (Amount, bool) {
	prev, ok := pm.prices[price.Currency()]
	pm.prices[price.Currency()] = price.AsMinorUnits()
	if !ok {
		return Amount{}, false
	}
	return NewFromMinor(prev, price.Currency()), true
}

// Remove deletes the price for a currency, returning it if it was present.
func (pm PriceMap) Remove(currency Currency) (Amount, bool) {
	prev, ok := pm.prices[currency]
	if !ok {
		return Amount{}, false
	}
	delete(pm.prices, currency)
	return NewFromMinor(prev, currency), true
}

// Get returns the price for a currency as an Amount.
func (pm PriceMap) Get(currency Currency) (Amount, bool) {
	minor, ok := pm.prices[currency]
	if !ok {
		return Amount{}, false
	}
	return NewFromMinor(minor, currency), true
}

// Len returns the number of currencies with a known price.
func (pm PriceMap) Len() int {
	return len(pm.prices)
}

// Each calls fn for every price in the map, in unspecified order, until fn
// returns false.
func (pm PriceMap) Each(fn func(Amount) bool) {
	for currency, minor := range pm.prices {
		if !fn(NewFromMinor(minor, currency)) {
			return
		}
	}
}

// Clone returns an independent copy of the map.
func (pm PriceMap) Clone() PriceMap {
	clone := make(map[Currency]int64, len(pm.prices))
	for currency, minor := range pm.prices {
		clone[currency] = minor
	}
	return PriceMap{prices: clone}
}
