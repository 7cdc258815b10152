package repository

import (
	"fmt"
	"time"

	"assetrisk/internal/domain"

	"github.com/piquette/finance-go/quote"
	"github.com/shopspring/decimal"
)

// YahooQuoteRepository is the keyless secondary stock quote source, used
// when Alpaca is unconfigured or fails.
type YahooQuoteRepository interface {
	GetLatestPrice(symbol string) (*domain.AssetPrice, error)
}

type yahooQuoteRepositoryHandler struct{}

func NewYahooQuoteRepository() YahooQuoteRepository {
	return yahooQuoteRepositoryHandler{}
}

func (h yahooQuoteRepositoryHandler) GetLatestPrice(symbol string) (*domain.AssetPrice, error) {
	q, err := quote.Get(symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to get quote for %s: %w", symbol, err)
	}
	if q == nil {
		return nil, fmt.Errorf("no quote returned for %s", symbol)
	}

	price := decimal.NewFromFloat(q.RegularMarketPrice)
	if price.IsZero() {
		return nil, fmt.Errorf("failed to get quote for %s: got 0 price", symbol)
	}

	return &domain.AssetPrice{
		Symbol: symbol,
		Price:  price,
		Date:   time.Unix(int64(q.RegularMarketTime), 0).UTC(),
		Source: domain.PriceSourceLive,
	}, nil
}
