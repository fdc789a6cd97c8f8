// Package node is the boundary to the wallet's own node process. Only the
// queries the dashboard displays are covered: chain height and balances.
package node

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"time"

	"github.com/go-kit/log"

	"neptune-dashboard/coin"
)

// Client queries the wallet node.
type Client interface {
	// BlockHeight returns the current block height.
	BlockHeight(ctx context.Context) (uint64, error)

	// ConfirmedAvailableBalance returns the sum of confirmed, unspent,
	// available UTXOs.
	ConfirmedAvailableBalance(ctx context.Context) (coin.Amount, error)

	// UnconfirmedAvailableBalance returns the sum of unconfirmed, unspent,
	// available UTXOs.
	UnconfirmedAvailableBalance(ctx context.Context) (coin.Amount, error)
}

// client talks to the node's HTTP gateway.
type client struct {
	// url base gateway url
	url string

	// logger for logging
	logger log.Logger

	// httpClient for HTTP requests
	httpClient http.Client
}

// New constructs a Client against the node gateway at url.
func New(url string, logger log.Logger) Client {
	return &client{
		url:    url,
		logger: logger,
		httpClient: http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

func (c *client) BlockHeight(ctx context.Context) (uint64, error) {
	var response struct {
		Height uint64 `json:"height"`
	}
	if err := c.get(ctx, "/rpc/block_height", &response); err != nil {
		return 0, err
	}
	return response.Height, nil
}

func (c *client) ConfirmedAvailableBalance(ctx context.Context) (coin.Amount, error) {
	return c.balance(ctx, "/rpc/confirmed_available_balance")
}

func (c *client) UnconfirmedAvailableBalance(ctx context.Context) (coin.Amount, error) {
	return c.balance(ctx, "/rpc/unconfirmed_available_balance")
}

// balance fetches a balance endpoint. The node reports balances as a decimal
// string of nau, which exceeds 64 bits for large holdings.
func (c *client) balance(ctx context.Context, path string) (coin.Amount, error) {
	var response struct {
		BalanceNau string `json:"balance_nau"`
	}
	if err := c.get(ctx, path, &response); err != nil {
		return coin.Amount{}, err
	}
	nau, ok := new(big.Int).SetString(response.BalanceNau, 10)
	if !ok {
		return coin.Amount{}, fmt.Errorf("bad balance value: %q", response.BalanceNau)
	}
	return coin.FromNau(nau), nil
}

func (c *client) get(ctx context.Context, path string, v interface{}) error {
	url := c.url + path

	c.logger.Log("msg", "querying node", "url", url)

	request, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return fmt.Errorf("building http request: %w", err)
	}
	httpResponse, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("http get: %w", err)
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode != http.StatusOK {
		return fmt.Errorf("http status %v", httpResponse.Status)
	}

	bytes, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return fmt.Errorf("reading json: %w", err)
	}
	if err := json.Unmarshal(bytes, v); err != nil {
		return fmt.Errorf("decoding json: %w", err)
	}
	return nil
}
