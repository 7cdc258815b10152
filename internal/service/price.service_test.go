package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"assetrisk/internal/db/models/postgres/public/model"
	"assetrisk/internal/domain"
	"assetrisk/pkg/binance"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type stubAlpaca struct {
	prices map[string]domain.AssetPrice
	err    error
}

func (s stubAlpaca) GetLatestPricesWithTs(symbols []string) (map[string]domain.AssetPrice, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.prices, nil
}

type stubYahoo struct {
	price *domain.AssetPrice
	err   error
}

func (s stubYahoo) GetLatestPrice(symbol string) (*domain.AssetPrice, error) {
	return s.price, s.err
}

func newBinanceTestClient(t *testing.T, handler http.HandlerFunc) binance.Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := binance.NewClient(server.Client())
	client.BaseUrl = server.URL
	return client
}

func TestGetPrice_Stock(t *testing.T) {
	t.Run("alpaca quote wins when configured", func(t *testing.T) {
		alpaca := stubAlpaca{prices: map[string]domain.AssetPrice{
			"AAPL": liveQuote("AAPL", "231.10"),
		}}
		svc := NewPriceService(alpaca, stubYahoo{err: errors.New("unreachable")}, binance.Client{})

		price := svc.GetPrice(context.Background(), "aapl", model.AssetType_Stock)
		require.Equal(t, "231.1", price.Price.String())
		require.Equal(t, domain.PriceSourceLive, price.Source)
	})

	t.Run("falls through to yahoo when alpaca fails", func(t *testing.T) {
		quote := liveQuote("AAPL", "232.50")
		quote.Date = time.Now().UTC()
		svc := NewPriceService(
			stubAlpaca{err: errors.New("rate limited")},
			stubYahoo{price: &quote},
			binance.Client{},
		)

		price := svc.GetPrice(context.Background(), "AAPL", model.AssetType_Stock)
		require.Equal(t, "232.5", price.Price.String())
		require.Equal(t, domain.PriceSourceLive, price.Source)
	})

	t.Run("substitutes the static fallback when every provider fails", func(t *testing.T) {
		svc := NewPriceService(nil, stubYahoo{err: errors.New("unreachable")}, binance.Client{})

		price := svc.GetPrice(context.Background(), "AAPL", model.AssetType_Stock)
		require.Equal(t, "235.82", price.Price.String())
		require.Equal(t, domain.PriceSourceFallback, price.Source)
	})

	t.Run("unknown symbol gets the class default", func(t *testing.T) {
		svc := NewPriceService(nil, stubYahoo{err: errors.New("unreachable")}, binance.Client{})

		price := svc.GetPrice(context.Background(), "ZZZZ", model.AssetType_Stock)
		require.Equal(t, "150", price.Price.String())
		require.Equal(t, domain.PriceSourceFallback, price.Source)
	})
}

func TestGetPrice_Crypto(t *testing.T) {
	t.Run("binance ticker", func(t *testing.T) {
		client := newBinanceTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "BTCUSDT", r.URL.Query().Get("symbol"))
			w.Write([]byte(`{"symbol":"BTCUSDT","price":"97123.45000000"}`))
		})
		svc := NewPriceService(nil, stubYahoo{}, client)

		price := svc.GetPrice(context.Background(), "bitcoin", model.AssetType_Crypto)
		require.Equal(t, domain.PriceSourceLive, price.Source)
		require.True(t, price.Price.Equal(decimal.RequireFromString("97123.45")))
	})

	t.Run("falls back when binance errors", func(t *testing.T) {
		client := newBinanceTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		svc := NewPriceService(nil, stubYahoo{}, client)

		price := svc.GetPrice(context.Background(), "BTC", model.AssetType_Crypto)
		require.Equal(t, "95000", price.Price.String())
		require.Equal(t, domain.PriceSourceFallback, price.Source)
	})
}
