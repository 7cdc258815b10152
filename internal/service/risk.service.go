package service

import (
	"context"
	"fmt"

	"assetrisk/internal/calculator"
	"assetrisk/internal/domain"
	"assetrisk/internal/pricedata"
	"assetrisk/internal/repository"

	"github.com/shopspring/decimal"
)

// RiskService answers the advisory endpoints. Assessments are computed on
// demand and never persisted.
type RiskService interface {
	CheckSellRisk(ctx context.Context, symbol string, quantity int32) (domain.RiskAssessment, error)
	CheckBuyRisk(ctx context.Context, symbol string, quantity int32) (domain.RiskAssessment, error)
	LegacySummary(ctx context.Context, symbol string) (string, error)
}

type riskServiceHandler struct {
	UserAssetRepository repository.UserAssetRepository
	PriceService        PriceService
}

func NewRiskService(
	userAssetRepository repository.UserAssetRepository,
	priceService PriceService,
) RiskService {
	return riskServiceHandler{
		UserAssetRepository: userAssetRepository,
		PriceService:        priceService,
	}
}

func (h riskServiceHandler) CheckSellRisk(ctx context.Context, symbol string, quantity int32) (domain.RiskAssessment, error) {
	normalized := pricedata.Normalize(symbol)
	lots, err := h.UserAssetRepository.ListBySymbol(normalized)
	if err != nil {
		return domain.RiskAssessment{}, err
	}

	// sentinel outcomes never need a quote
	if len(lots) == 0 || quantity <= 0 || quantity > calculator.TotalQuantity(lots) {
		return calculator.AssessSell(lots, domain.AssetPrice{}, quantity), nil
	}

	price := h.PriceService.GetPrice(ctx, normalized, lots[0].AssetType)
	return calculator.AssessSell(lots, price, quantity), nil
}

func (h riskServiceHandler) CheckBuyRisk(ctx context.Context, symbol string, quantity int32) (domain.RiskAssessment, error) {
	normalized := pricedata.Normalize(symbol)
	lots, err := h.UserAssetRepository.ListBySymbol(normalized)
	if err != nil {
		return domain.RiskAssessment{}, err
	}

	assetType := calculator.InferAssetType(normalized)
	if len(lots) > 0 {
		assetType = lots[0].AssetType
	}

	price := h.PriceService.GetPrice(ctx, normalized, assetType)
	return calculator.AssessBuy(lots, price, quantity), nil
}

// LegacySummary keeps the older plain-text risk endpoint alive. Unlike the
// assessments above it averages buy prices without quantity weighting.
func (h riskServiceHandler) LegacySummary(ctx context.Context, symbol string) (string, error) {
	normalized := pricedata.Normalize(symbol)
	lots, err := h.UserAssetRepository.ListBySymbol(normalized)
	if err != nil {
		return "", err
	}
	if len(lots) == 0 {
		return "Low Risk to Buy (no previous records)", nil
	}

	sum := decimal.Zero
	for _, lot := range lots {
		sum = sum.Add(lot.BuyPrice)
	}
	avgBuyPrice := sum.DivRound(decimal.NewFromInt(int64(len(lots))), 8)

	price := h.PriceService.GetPrice(ctx, normalized, lots[0].AssetType)

	sellRisk := "Low Risk to Sell"
	if price.Price.LessThan(avgBuyPrice) {
		sellRisk = "High Risk to Sell"
	}
	buyRisk := "Low Risk to Buy"
	if price.Price.GreaterThan(avgBuyPrice) {
		buyRisk = "High Risk to Buy"
	}

	return fmt.Sprintf(
		"Current Price: %s, Avg Buy Price: %s\n%s | %s",
		price.Price, avgBuyPrice, sellRisk, buyRisk,
	), nil
}
