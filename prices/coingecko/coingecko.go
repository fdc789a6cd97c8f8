// Package coingecko loads native-coin prices from the public CoinGecko API.
package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-kit/log"

	"neptune-dashboard/fiat"
)

const ApiUrlBase = "https://api.coingecko.com/api/v3"

// coinID is CoinGecko's identifier for the native coin.
const coinID = "neptune-cash"

// Provider queries CoinGecko's simple price endpoint for the coin against
// every supported fiat currency in a single request.
type Provider struct {
	// url base API url
	url string

	// logger for logging
	logger log.Logger

	// client for HTTP requests
	client http.Client
}

// New constructs a valid CoinGecko Provider.
func New(logger log.Logger) *Provider {
	return &Provider{
		url:    ApiUrlBase,
		logger: logger,
		client: http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// GetPrices loads the current price of one coin in each supported currency.
// Currencies CoinGecko does not quote are left out of the map.
func (p *Provider) GetPrices(ctx context.Context) (fiat.PriceMap, error) {
	codes := make([]string, 0, len(fiat.All()))
	for _, currency := range fiat.All() {
		codes = append(codes, strings.ToLower(currency.Code()))
	}

	url := fmt.Sprintf("%v/simple/price?ids=%v&vs_currencies=%v", p.url, coinID, strings.Join(codes, ","))

	p.logger.Log("msg", "loading prices", "url", url)

	request, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return fiat.PriceMap{}, fmt.Errorf("building http request: %w", err)
	}
	httpResponse, err := p.client.Do(request)
	if err != nil {
		return fiat.PriceMap{}, fmt.Errorf("http get: %w", err)
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode != http.StatusOK {
		return fiat.PriceMap{}, fmt.Errorf("http status %v", httpResponse.Status)
	}

	bytes, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return fiat.PriceMap{}, fmt.Errorf("reading json: %w", err)
	}

	// Response shape: {"neptune-cash": {"usd": 1.23, ...}}
	var response map[string]map[string]float64
	err = json.Unmarshal(bytes, &response)
	if err != nil {
		return fiat.PriceMap{}, fmt.Errorf("decoding json: %w", err)
	}

	quotes, ok := response[coinID]
	if !ok {
		return fiat.PriceMap{}, fmt.Errorf("response missing coin %q", coinID)
	}

	prices := fiat.NewPriceMap()
	for _, currency := range fiat.All() {
		if price, ok := quotes[strings.ToLower(currency.Code())]; ok {
			prices.Insert(fiat.NewFromFloat(price, currency))
		}
	}

	return prices, nil
}
