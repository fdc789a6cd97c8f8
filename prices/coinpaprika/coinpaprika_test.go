package coinpaprika

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"

	"neptune-dashboard/fiat"
)

func testProvider(url string) *Provider {
	p := New(log.NewNopLogger())
	p.url = url
	return p
}

func TestGetPrices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		assert.True(t, strings.HasPrefix(req.URL.String(), "/tickers/npt-neptune-cash?quotes="))
		assert.Contains(t, req.URL.RawQuery, "USD")
		// Tickers documents carry plenty of fields besides the quotes.
		response := `{
			"id": "npt-neptune-cash",
			"name": "Neptune Cash",
			"rank": 1234,
			"quotes": {
				"USD": {"price": 25.34, "volume_24h": 1000.0},
				"EUR": {"price": 23.0},
				"JPY": {"price": 3800.7}
			}
		}`
		_, _ = rw.Write([]byte(response))
	}))
	defer server.Close()

	prices, err := testProvider(server.URL).GetPrices(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 3, prices.Len())

	usd, ok := prices.Get(fiat.USD)
	assert.True(t, ok)
	assert.Equal(t, int64(2534), usd.AsMinorUnits())

	jpy, _ := prices.Get(fiat.JPY)
	assert.Equal(t, int64(3801), jpy.AsMinorUnits())

	_, ok = prices.Get(fiat.GBP)
	assert.False(t, ok, "absent quote means price unknown")
}

func TestGetPricesMissingQuotes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		_, _ = rw.Write([]byte(`{"id": "npt-neptune-cash"}`))
	}))
	defer server.Close()

	prices, err := testProvider(server.URL).GetPrices(context.Background())

	// Partial or empty data is not an error, just fewer entries.
	assert.NoError(t, err)
	assert.Equal(t, 0, prices.Len())
}

func TestGetPricesHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		rw.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := testProvider(server.URL).GetPrices(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "http status")
}

func TestGetPricesBadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		_, _ = rw.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	_, err := testProvider(server.URL).GetPrices(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "decoding json")
}
