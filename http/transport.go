// Package http is the JSON API consumed by the dashboard UI.
package http

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"

	"github.com/go-kit/log"

	"neptune-dashboard/coin"
	"neptune-dashboard/exchange"
	"neptune-dashboard/fiat"
	"neptune-dashboard/node"
	"neptune-dashboard/prefs"
)

// Server dependencies for HTTP Server functions
type Server struct {
	Exchange   exchange.Service
	Prices     exchange.Source
	Node       node.Client
	Preference prefs.Preference

	logger log.Logger
	router http.ServeMux
}

func NewServer(ex exchange.Service, prices exchange.Source, nodeClient node.Client, pref prefs.Preference, logger log.Logger) *Server {
	server := &Server{
		Exchange:   ex,
		Prices:     prices,
		Node:       nodeClient,
		Preference: pref,
		logger:     logger,
	}
	server.routes()
	return server
}

func (s *Server) routes() {
	s.router.Handle("/api/prices", s.prices())
	s.router.Handle("/api/convert", s.convert())
	s.router.Handle("/api/overview", s.overview())
}

func (s *Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(rw, r)
}

// prices produces an HTTP handler returning the current price map
func (s *Server) prices() http.HandlerFunc {

	// price for marshalling one entry of the map
	type price struct {
		Currency string `json:"currency"`
		Price    string `json:"price"`
		Display  string `json:"display"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		rw.Header().Set("Content-Type", "application/json")

		priceMap, err := s.Prices.GetPrices(r.Context())
		if err != nil {
			s.logger.Log("msg", "prices unavailable", "err", err)
			rw.WriteHeader(http.StatusBadGateway)
			rw.Write([]byte(`{"error": "prices unavailable"}`))
			return
		}

		response := make([]price, 0, priceMap.Len())
		priceMap.Each(func(a fiat.Amount) bool {
			response = append(response, price{
				Currency: a.Currency().Code(),
				Price:    a.String(),
				Display:  a.StringWithSymbol(),
			})
			return true
		})
		sort.Slice(response, func(i, j int) bool {
			return response[i].Currency < response[j].Currency
		})

		enc := json.NewEncoder(rw)
		if err := enc.Encode(response); err != nil {
			rw.WriteHeader(http.StatusInternalServerError)
			rw.Write([]byte(`{"error": "failed json encoding"}`))
		}
	}
}

// convert produces an HTTP handler for coin/fiat conversions
func (s *Server) convert() http.HandlerFunc {

	// request for unmarshalling JSON requests posted by clients
	type request struct {
		Amount    string `json:"amount"`
		Currency  string `json:"currency"`
		Direction string `json:"direction"` // "coin_to_fiat" or "fiat_to_coin"
	}

	// response for marshalling JSON responses to return to clients
	type response struct {
		Original  string `json:"original"`
		Converted string `json:"converted"`
	}

	fail := func(rw http.ResponseWriter, status int, msg string) {
		rw.WriteHeader(status)
		rw.Write([]byte(`{"error": "` + msg + `"}`))
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		rw.Header().Set("Content-Type", "application/json")

		var request request
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			fail(rw, http.StatusBadRequest, "invalid json")
			return
		}

		currency, ok := fiat.FromCode(strings.ToUpper(request.Currency))
		if !ok {
			fail(rw, http.StatusBadRequest, "unknown currency")
			return
		}

		var result response
		switch request.Direction {
		case "coin_to_fiat":
			amount, err := coin.FromString(request.Amount)
			if err != nil {
				fail(rw, http.StatusBadRequest, "invalid amount")
				return
			}
			converted, err := s.Exchange.ToFiat(r.Context(), amount, currency)
			if err != nil {
				fail(rw, http.StatusBadRequest, "failed conversion")
				return
			}
			result = response{Original: amount.String(), Converted: converted.StringWithCode()}

		case "fiat_to_coin":
			amount, err := fiat.NewFromString(request.Amount, currency)
			if err != nil {
				fail(rw, http.StatusBadRequest, "invalid amount")
				return
			}
			converted, err := s.Exchange.ToCoin(r.Context(), amount)
			if err != nil {
				fail(rw, http.StatusBadRequest, "failed conversion")
				return
			}
			result = response{Original: amount.StringWithCode(), Converted: converted.String()}

		default:
			fail(rw, http.StatusBadRequest, "unknown direction")
			return
		}

		enc := json.NewEncoder(rw)
		if err := enc.Encode(&result); err != nil {
			fail(rw, http.StatusInternalServerError, "failed json encoding")
		}
	}
}

// overview produces an HTTP handler combining node state with fiat values
func (s *Server) overview() http.HandlerFunc {

	// response for marshalling JSON responses to return to clients
	type response struct {
		Height             uint64 `json:"height"`
		ConfirmedBalance   string `json:"confirmed_balance"`
		UnconfirmedBalance string `json:"unconfirmed_balance"`

		// Fiat fields are omitted in coin-only mode and when no price is
		// available; the UI renders that as "price unavailable".
		FiatCurrency         string `json:"fiat_currency,omitempty"`
		ConfirmedBalanceFiat string `json:"confirmed_balance_fiat,omitempty"`
	}

	fail := func(rw http.ResponseWriter, status int, msg string) {
		rw.WriteHeader(status)
		rw.Write([]byte(`{"error": "` + msg + `"}`))
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		rw.Header().Set("Content-Type", "application/json")

		height, err := s.Node.BlockHeight(r.Context())
		if err != nil {
			fail(rw, http.StatusBadGateway, "node unavailable")
			return
		}
		confirmed, err := s.Node.ConfirmedAvailableBalance(r.Context())
		if err != nil {
			fail(rw, http.StatusBadGateway, "node unavailable")
			return
		}
		unconfirmed, err := s.Node.UnconfirmedAvailableBalance(r.Context())
		if err != nil {
			fail(rw, http.StatusBadGateway, "node unavailable")
			return
		}

		result := response{
			Height:             height,
			ConfirmedBalance:   confirmed.String(),
			UnconfirmedBalance: unconfirmed.String(),
		}

		if !s.Preference.CoinOnly {
			result.FiatCurrency = s.Preference.Fiat.Code()
			if fiatValue, err := s.Exchange.ToFiat(r.Context(), confirmed, s.Preference.Fiat); err != nil {
				// A stale or missing price must not take down the overview.
				s.logger.Log("msg", "fiat value unavailable", "err", err)
			} else {
				result.ConfirmedBalanceFiat = fiatValue.StringWithSymbol()
			}
		}

		enc := json.NewEncoder(rw)
		if err := enc.Encode(&result); err != nil {
			fail(rw, http.StatusInternalServerError, "failed json encoding")
		}
	}
}
