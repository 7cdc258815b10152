package service

import (
	"context"
	"testing"

	"assetrisk/internal/db/models/postgres/public/model"
	"assetrisk/internal/domain"
	mock_repository "assetrisk/internal/repository/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// stubPriceService serves canned quotes keyed by symbol.
type stubPriceService struct {
	prices map[string]domain.AssetPrice
}

func (s stubPriceService) GetPrice(ctx context.Context, symbol string, assetType model.AssetType) domain.AssetPrice {
	if price, ok := s.prices[symbol]; ok {
		return price
	}
	return domain.AssetPrice{
		Symbol: symbol,
		Price:  decimal.Zero,
		Source: domain.PriceSourceFallback,
	}
}

// failingPriceService fails the test if any quote is requested.
type failingPriceService struct {
	t *testing.T
}

func (s failingPriceService) GetPrice(ctx context.Context, symbol string, assetType model.AssetType) domain.AssetPrice {
	s.t.Fatalf("unexpected price fetch for %s", symbol)
	return domain.AssetPrice{}
}

func stockLot(symbol, buyPrice string, qty int32) model.UserAsset {
	return model.UserAsset{
		AssetType: model.AssetType_Stock,
		Symbol:    symbol,
		BuyPrice:  decimal.RequireFromString(buyPrice),
		Qty:       qty,
	}
}

func liveQuote(symbol, price string) domain.AssetPrice {
	return domain.AssetPrice{
		Symbol: symbol,
		Price:  decimal.RequireFromString(price),
		Source: domain.PriceSourceLive,
	}
}

func TestCheckSellRisk(t *testing.T) {
	t.Run("deep loss is high risk", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_repository.NewMockUserAssetRepository(ctrl)
		repo.EXPECT().ListBySymbol("ABC").Return([]model.UserAsset{
			stockLot("ABC", "100", 10),
		}, nil)

		svc := NewRiskService(repo, stubPriceService{prices: map[string]domain.AssetPrice{
			"ABC": liveQuote("ABC", "80"),
		}})

		assessment, err := svc.CheckSellRisk(context.Background(), "abc", 5)
		require.NoError(t, err)
		require.Equal(t, domain.RiskLevelHigh, assessment.RiskLevel)
		require.Equal(t, "-20", assessment.PercentDifference.String())
		require.Equal(t, "-100", assessment.MonetaryImpact.String())
		require.Equal(t, domain.PriceSourceLive, assessment.PriceSource)
	})

	t.Run("no holdings skips the quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_repository.NewMockUserAssetRepository(ctrl)
		repo.EXPECT().ListBySymbol("NOP").Return([]model.UserAsset{}, nil)

		svc := NewRiskService(repo, failingPriceService{t: t})

		assessment, err := svc.CheckSellRisk(context.Background(), "NOP", 3)
		require.NoError(t, err)
		require.Equal(t, domain.RiskLevelNoHoldings, assessment.RiskLevel)
	})

	t.Run("oversell skips the quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_repository.NewMockUserAssetRepository(ctrl)
		repo.EXPECT().ListBySymbol("ABC").Return([]model.UserAsset{
			stockLot("ABC", "100", 10),
		}, nil)

		svc := NewRiskService(repo, failingPriceService{t: t})

		assessment, err := svc.CheckSellRisk(context.Background(), "ABC", 20)
		require.NoError(t, err)
		require.Equal(t, domain.RiskLevelInsufficientQuantity, assessment.RiskLevel)
		require.Equal(t, int32(10), assessment.AvailableQuantity)
	})
}

func TestCheckBuyRisk(t *testing.T) {
	t.Run("above average is medium risk", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_repository.NewMockUserAssetRepository(ctrl)
		repo.EXPECT().ListBySymbol("ABC").Return([]model.UserAsset{
			stockLot("ABC", "100", 1),
		}, nil)

		svc := NewRiskService(repo, stubPriceService{prices: map[string]domain.AssetPrice{
			"ABC": liveQuote("ABC", "104"),
		}})

		assessment, err := svc.CheckBuyRisk(context.Background(), "ABC", 2)
		require.NoError(t, err)
		require.Equal(t, domain.RiskLevelMedium, assessment.RiskLevel)
		require.Equal(t, "4", assessment.PercentDifference.String())
	})

	t.Run("never-held alias resolves and infers crypto", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_repository.NewMockUserAssetRepository(ctrl)
		repo.EXPECT().ListBySymbol("BTC").Return([]model.UserAsset{}, nil)

		svc := NewRiskService(repo, stubPriceService{prices: map[string]domain.AssetPrice{
			"BTC": liveQuote("BTC", "95000"),
		}})

		assessment, err := svc.CheckBuyRisk(context.Background(), "bitcoin", 1)
		require.NoError(t, err)
		require.Equal(t, domain.RiskLevelLow, assessment.RiskLevel)
		require.Contains(t, assessment.Recommendation, "No previous holdings")
	})
}

func TestLegacySummary(t *testing.T) {
	t.Run("unweighted average drives both flags", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// weighted avg would be 190; legacy averages prices only
		repo := mock_repository.NewMockUserAssetRepository(ctrl)
		repo.EXPECT().ListBySymbol("ABC").Return([]model.UserAsset{
			stockLot("ABC", "100", 1),
			stockLot("ABC", "200", 9),
		}, nil)

		svc := NewRiskService(repo, stubPriceService{prices: map[string]domain.AssetPrice{
			"ABC": liveQuote("ABC", "120"),
		}})

		summary, err := svc.LegacySummary(context.Background(), "ABC")
		require.NoError(t, err)
		require.Equal(t, "Current Price: 120, Avg Buy Price: 150\nHigh Risk to Sell | Low Risk to Buy", summary)
	})

	t.Run("no records", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_repository.NewMockUserAssetRepository(ctrl)
		repo.EXPECT().ListBySymbol("NOP").Return([]model.UserAsset{}, nil)

		svc := NewRiskService(repo, failingPriceService{t: t})

		summary, err := svc.LegacySummary(context.Background(), "NOP")
		require.NoError(t, err)
		require.Equal(t, "Low Risk to Buy (no previous records)", summary)
	})
}
