package service

import (
	"context"
	"time"

	"assetrisk/internal/db/models/postgres/public/model"
	"assetrisk/internal/domain"
	"assetrisk/internal/logger"
	"assetrisk/internal/pricedata"
	"assetrisk/internal/repository"
	"assetrisk/pkg/binance"
)

// PriceService is the price gateway. GetPrice never fails: when every live
// provider errors out, the static fallback price is substituted and the
// result is marked with PriceSourceFallback. Valuation always gets a number.
type PriceService interface {
	GetPrice(ctx context.Context, symbol string, assetType model.AssetType) domain.AssetPrice
}

type priceServiceHandler struct {
	// nil when no alpaca credentials are configured
	AlpacaRepository repository.AlpacaRepository
	YahooRepository  repository.YahooQuoteRepository
	BinanceClient    binance.Client
}

func NewPriceService(
	alpacaRepository repository.AlpacaRepository,
	yahooRepository repository.YahooQuoteRepository,
	binanceClient binance.Client,
) PriceService {
	return priceServiceHandler{
		AlpacaRepository: alpacaRepository,
		YahooRepository:  yahooRepository,
		BinanceClient:    binanceClient,
	}
}

func (h priceServiceHandler) GetPrice(ctx context.Context, symbol string, assetType model.AssetType) domain.AssetPrice {
	normalized := pricedata.Normalize(symbol)

	if assetType == model.AssetType_Crypto {
		return h.getCryptoPrice(ctx, normalized)
	}
	return h.getStockPrice(ctx, normalized)
}

func (h priceServiceHandler) getStockPrice(ctx context.Context, symbol string) domain.AssetPrice {
	log := logger.FromContext(ctx)

	if h.AlpacaRepository != nil {
		prices, err := h.AlpacaRepository.GetLatestPricesWithTs([]string{symbol})
		if err == nil {
			if price, ok := prices[symbol]; ok {
				return price
			}
		} else {
			log.Warnf("alpaca quote failed for %s: %s", symbol, err.Error())
		}
	}

	price, err := h.YahooRepository.GetLatestPrice(symbol)
	if err == nil {
		return *price
	}
	log.Warnf("yahoo quote failed for %s: %s", symbol, err.Error())

	return h.fallback(ctx, symbol, model.AssetType_Stock)
}

func (h priceServiceHandler) getCryptoPrice(ctx context.Context, symbol string) domain.AssetPrice {
	log := logger.FromContext(ctx)

	price, err := h.BinanceClient.GetSpotPrice(symbol)
	if err == nil {
		return domain.AssetPrice{
			Symbol: symbol,
			Price:  price,
			Date:   time.Now().UTC(),
			Source: domain.PriceSourceLive,
		}
	}
	log.Warnf("binance quote failed for %s: %s", symbol, err.Error())

	return h.fallback(ctx, symbol, model.AssetType_Crypto)
}

func (h priceServiceHandler) fallback(ctx context.Context, symbol string, assetType model.AssetType) domain.AssetPrice {
	log := logger.FromContext(ctx)
	price := pricedata.FallbackPrice(assetType, symbol)
	log.Warnf("substituting fallback price for %s: %s", symbol, price.String())

	return domain.AssetPrice{
		Symbol: symbol,
		Price:  price,
		Date:   time.Now().UTC(),
		Source: domain.PriceSourceFallback,
	}
}
