package main

import (
	"os"

	"github.com/go-kit/log"

	"neptune-dashboard/exchange"
	"neptune-dashboard/http"
	"neptune-dashboard/node"
	"neptune-dashboard/prefs"
	"neptune-dashboard/prices"
	"neptune-dashboard/prices/coingecko"
	"neptune-dashboard/prices/coinpaprika"

	nhttp "net/http"
)

func main() {
	w := log.NewSyncWriter(os.Stderr)
	logger := log.NewLogfmtLogger(w)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	preference := prefs.FromEnv()
	logger.Log("msg", "starting", "coin_only", preference.CoinOnly, "fiat", preference.Fiat, "provider", preference.Provider)

	var provider prices.Provider
	switch preference.Provider {
	case prefs.CoinPaprika:
		provider = coinpaprika.New(log.With(logger, "component", "coinpaprika_rest"))
	default:
		provider = coingecko.New(log.With(logger, "component", "coingecko_rest"))
	}
	provider = prices.NewLoggingProvider(log.With(logger, "component", "price_provider"), provider)

	cache := prices.NewCache(provider, prices.DefaultTTL, log.With(logger, "component", "price_cache"))

	exchangeService := exchange.NewService(cache)
	exchangeService = exchange.NewLoggingService(log.With(logger, "component", "exchange"), exchangeService)

	nodeURL := os.Getenv("NODE_URL")
	if nodeURL == "" {
		nodeURL = "http://127.0.0.1:9800"
	}
	nodeClient := node.New(nodeURL, log.With(logger, "component", "node_rest"))
	nodeClient = node.NewLoggingClient(log.With(logger, "component", "node"), nodeClient)

	listenAddr := os.Getenv("LISTEN_ADDR")
	if listenAddr == "" {
		listenAddr = ":8080"
	}

	handler := http.NewServer(exchangeService, cache, nodeClient, preference, log.With(logger, "component", "http"))
	logger.Log("msg", "listening", "addr", listenAddr)
	if err := nhttp.ListenAndServe(listenAddr, handler); err != nil {
		logger.Log("msg", "server stopped", "err", err)
		os.Exit(1)
	}
}
