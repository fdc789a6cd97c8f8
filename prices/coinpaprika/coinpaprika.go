// Package coinpaprika loads native-coin prices from the CoinPaprika API.
package coinpaprika

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-kit/log"
	"github.com/tidwall/gjson"

	"neptune-dashboard/fiat"
)

const ApiUrlBase = "https://api.coinpaprika.com/v1"

// tickerID is CoinPaprika's identifier for the native coin.
const tickerID = "npt-neptune-cash"

// Provider queries CoinPaprika's tickers endpoint with a quotes parameter
// covering every supported fiat currency.
type Provider struct {
	// url base API url
	url string

	// logger for logging
	logger log.Logger

	// client for HTTP requests
	client http.Client
}

// New constructs a valid CoinPaprika Provider.
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
//
// The tickers document carries far more than prices, so instead of a typed
// struct the quotes are pulled out by path, quotes.<CODE>.price. A currency
// missing from the document is left out of the map.
func (p *Provider) GetPrices(ctx context.Context) (fiat.PriceMap, error) {
	codes := make([]string, 0, len(fiat.All()))
	for _, currency := range fiat.All() {
		codes = append(codes, currency.Code())
	}

	url := fmt.Sprintf("%v/tickers/%v?quotes=%v", p.url, tickerID, strings.Join(codes, ","))

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
	if !gjson.ValidBytes(bytes) {
		return fiat.PriceMap{}, fmt.Errorf("decoding json: invalid document")
	}

	prices := fiat.NewPriceMap()
	for _, currency := range fiat.All() {
		quote := gjson.GetBytes(bytes, "quotes."+currency.Code()+".price")
		if quote.Exists() {
			prices.Insert(fiat.NewFromFloat(quote.Float(), currency))
		}
	}

	return prices, nil
}
