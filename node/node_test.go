package node

import (
	"context"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"

	"neptune-dashboard/coin"
)

func testGateway(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/rpc/block_height", func(rw http.ResponseWriter, req *http.Request) {
		_, _ = rw.Write([]byte(`{"height": 123456}`))
	})
	mux.HandleFunc("/rpc/confirmed_available_balance", func(rw http.ResponseWriter, req *http.Request) {
		// 2.5 coins in nau, which no int64 JSON number could hold for
		// larger balances.
		_, _ = rw.Write([]byte(`{"balance_nau": "2500000000000000000"}`))
	})
	mux.HandleFunc("/rpc/unconfirmed_available_balance", func(rw http.ResponseWriter, req *http.Request) {
		_, _ = rw.Write([]byte(`{"balance_nau": "42000000000000000000000000"}`))
	})
	return httptest.NewServer(mux)
}

func TestBlockHeight(t *testing.T) {
	server := testGateway(t)
	defer server.Close()

	client := New(server.URL, log.NewNopLogger())
	height, err := client.BlockHeight(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, uint64(123456), height)
}

func TestBalances(t *testing.T) {
	server := testGateway(t)
	defer server.Close()

	client := New(server.URL, log.NewNopLogger())

	confirmed, err := client.ConfirmedAvailableBalance(context.Background())
	assert.NoError(t, err)
	want, _ := new(big.Int).SetString("2500000000000000000", 10)
	assert.True(t, coin.FromNau(want).Equal(confirmed))

	// The full supply round-trips without loss.
	unconfirmed, err := client.UnconfirmedAvailableBalance(context.Background())
	assert.NoError(t, err)
	assert.True(t, coin.Coins(coin.MaxSupplyCoins).Equal(unconfirmed))
}

func TestBadBalanceValue(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		_, _ = rw.Write([]byte(`{"balance_nau": "not a number"}`))
	}))
	defer server.Close()

	client := New(server.URL, log.NewNopLogger())
	_, err := client.ConfirmedAvailableBalance(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "bad balance value")
}

func TestHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		rw.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := New(server.URL, log.NewNopLogger())
	_, err := client.BlockHeight(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "http status")
}
