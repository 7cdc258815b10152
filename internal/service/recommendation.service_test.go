package service

import (
	"context"
	"testing"

	"assetrisk/internal/db/models/postgres/public/model"
	"assetrisk/internal/domain"
	mock_repository "assetrisk/internal/repository/mocks"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool {
	return a.Equal(b)
})

func TestTopStocks(t *testing.T) {
	t.Run("ranks by profit percent and truncates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_repository.NewMockUserAssetRepository(ctrl)
		repo.EXPECT().ListByType(model.AssetType_Stock).Return([]model.UserAsset{
			stockLot("AAA", "100", 10),
			stockLot("BBB", "100", 10),
			stockLot("CCC", "100", 10),
		}, nil)

		svc := NewRecommendationService(repo, stubPriceService{prices: map[string]domain.AssetPrice{
			"AAA": liveQuote("AAA", "112"), // +12%
			"BBB": liveQuote("BBB", "75"),  // -25%
			"CCC": liveQuote("CCC", "103"), // +3%
		}})

		recommendations, err := svc.TopStocks(context.Background(), 2)
		require.NoError(t, err)

		expected := []domain.AssetRecommendation{
			{
				Symbol:        "AAA",
				RiskLevel:     domain.RiskLevelMedium,
				AvgBuyPrice:   decimal.RequireFromString("100"),
				CurrentPrice:  decimal.RequireFromString("112"),
				ProfitPercent: decimal.RequireFromString("12"),
			},
			{
				Symbol:        "CCC",
				RiskLevel:     domain.RiskLevelLow,
				AvgBuyPrice:   decimal.RequireFromString("100"),
				CurrentPrice:  decimal.RequireFromString("103"),
				ProfitPercent: decimal.RequireFromString("3"),
			},
		}
		require.Empty(t, cmp.Diff(expected, recommendations, decimalComparer))
	})

	t.Run("merges duplicate symbols into one weighted entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_repository.NewMockUserAssetRepository(ctrl)
		repo.EXPECT().ListByType(model.AssetType_Stock).Return([]model.UserAsset{
			stockLot("AAA", "100", 10),
			stockLot("aaa", "110", 5),
		}, nil)

		svc := NewRecommendationService(repo, stubPriceService{prices: map[string]domain.AssetPrice{
			"AAA": liveQuote("AAA", "120"),
		}})

		recommendations, err := svc.TopStocks(context.Background(), 10)
		require.NoError(t, err)
		require.Len(t, recommendations, 1)
		require.Equal(t, "AAA", recommendations[0].Symbol)
		require.Equal(t, "103.3333", recommendations[0].AvgBuyPrice.String())
	})

	t.Run("skips symbols with nothing held", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_repository.NewMockUserAssetRepository(ctrl)
		repo.EXPECT().ListByType(model.AssetType_Stock).Return([]model.UserAsset{
			stockLot("AAA", "100", 0),
			stockLot("BBB", "100", 1),
		}, nil)

		svc := NewRecommendationService(repo, stubPriceService{prices: map[string]domain.AssetPrice{
			"BBB": liveQuote("BBB", "101"),
		}})

		recommendations, err := svc.TopStocks(context.Background(), 10)
		require.NoError(t, err)
		require.Len(t, recommendations, 1)
		require.Equal(t, "BBB", recommendations[0].Symbol)
	})
}

func TestMarketMovers(t *testing.T) {
	svc := NewRecommendationService(nil, nil)
	movers := svc.MarketMovers(context.Background())
	require.NotEmpty(t, movers)
	require.Equal(t, "NVDA", movers[0].Symbol)
}
