package service

import (
	"context"
	"sort"

	"assetrisk/internal/calculator"
	"assetrisk/internal/db/models/postgres/public/model"
	"assetrisk/internal/domain"
	"assetrisk/internal/pricedata"
	"assetrisk/internal/repository"
)

// RecommendationService ranks held symbols by unrealized profit percent.
type RecommendationService interface {
	TopStocks(ctx context.Context, limit int) ([]domain.AssetRecommendation, error)
	TopCrypto(ctx context.Context, limit int) ([]domain.AssetRecommendation, error)
	TopAssets(ctx context.Context, limit int) ([]domain.AssetRecommendation, error)
	MarketMovers(ctx context.Context) []pricedata.MarketMover
}

type recommendationServiceHandler struct {
	UserAssetRepository repository.UserAssetRepository
	PriceService        PriceService
}

func NewRecommendationService(
	userAssetRepository repository.UserAssetRepository,
	priceService PriceService,
) RecommendationService {
	return recommendationServiceHandler{
		UserAssetRepository: userAssetRepository,
		PriceService:        priceService,
	}
}

func (h recommendationServiceHandler) TopStocks(ctx context.Context, limit int) ([]domain.AssetRecommendation, error) {
	lots, err := h.UserAssetRepository.ListByType(model.AssetType_Stock)
	if err != nil {
		return nil, err
	}
	return h.rank(ctx, lots, limit), nil
}

func (h recommendationServiceHandler) TopCrypto(ctx context.Context, limit int) ([]domain.AssetRecommendation, error) {
	lots, err := h.UserAssetRepository.ListByType(model.AssetType_Crypto)
	if err != nil {
		return nil, err
	}
	return h.rank(ctx, lots, limit), nil
}

func (h recommendationServiceHandler) TopAssets(ctx context.Context, limit int) ([]domain.AssetRecommendation, error) {
	lots, err := h.UserAssetRepository.List()
	if err != nil {
		return nil, err
	}
	return h.rank(ctx, lots, limit), nil
}

// MarketMovers surfaces the static market-performance table, best first.
func (h recommendationServiceHandler) MarketMovers(ctx context.Context) []pricedata.MarketMover {
	return pricedata.MarketMovers()
}

// rank groups lots by normalized symbol in first-seen order, values each
// group against one live quote, then sorts best profit percent first and
// truncates. Symbols with nothing held or a zero cost basis are skipped.
func (h recommendationServiceHandler) rank(ctx context.Context, lots []model.UserAsset, limit int) []domain.AssetRecommendation {
	order := []string{}
	groups := map[string][]model.UserAsset{}
	for _, lot := range lots {
		symbol := pricedata.Normalize(lot.Symbol)
		if _, ok := groups[symbol]; !ok {
			order = append(order, symbol)
		}
		groups[symbol] = append(groups[symbol], lot)
	}

	recommendations := []domain.AssetRecommendation{}
	for _, symbol := range order {
		group := groups[symbol]
		if calculator.TotalQuantity(group) == 0 {
			continue
		}
		avgBuyPrice := calculator.WeightedAvgBuyPrice(group)
		if avgBuyPrice.IsZero() {
			continue
		}

		price := h.PriceService.GetPrice(ctx, symbol, group[0].AssetType)
		percent := calculator.PercentDiff(price.Price, avgBuyPrice)

		recommendations = append(recommendations, domain.AssetRecommendation{
			Symbol:        symbol,
			RiskLevel:     calculator.RecommendationRisk(percent),
			AvgBuyPrice:   avgBuyPrice.Round(4),
			CurrentPrice:  price.Price.Round(4),
			ProfitPercent: percent,
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].ProfitPercent.GreaterThan(recommendations[j].ProfitPercent)
	})

	if limit >= 0 && len(recommendations) > limit {
		recommendations = recommendations[:limit]
	}

	return recommendations
}
