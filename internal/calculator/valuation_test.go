package calculator

import (
	"testing"

	"assetrisk/internal/db/models/postgres/public/model"
	"assetrisk/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newLot(buyPrice string, qty int32) model.UserAsset {
	return model.UserAsset{
		AssetType: model.AssetType_Stock,
		Symbol:    "ABC",
		BuyPrice:  decimal.RequireFromString(buyPrice),
		Qty:       qty,
	}
}

func livePrice(price string) domain.AssetPrice {
	return domain.AssetPrice{
		Symbol: "ABC",
		Price:  decimal.RequireFromString(price),
		Source: domain.PriceSourceLive,
	}
}

func TestWeightedAvgBuyPrice(t *testing.T) {
	t.Run("weights by quantity", func(t *testing.T) {
		lots := []model.UserAsset{
			newLot("100", 10),
			newLot("110", 5),
		}
		avg := WeightedAvgBuyPrice(lots)
		// (1000 + 550) / 15
		require.Equal(t, "103.33333333", avg.String())
	})

	t.Run("zero total quantity gives zero", func(t *testing.T) {
		lots := []model.UserAsset{
			newLot("100", 0),
		}
		require.True(t, WeightedAvgBuyPrice(lots).IsZero())
	})

	t.Run("negative quantities contribute nothing", func(t *testing.T) {
		lots := []model.UserAsset{
			newLot("100", 10),
			newLot("999", -5),
		}
		require.Equal(t, "100", WeightedAvgBuyPrice(lots).String())
	})
}

func TestPercentDiff(t *testing.T) {
	t.Run("loss", func(t *testing.T) {
		percent := PercentDiff(decimal.RequireFromString("80"), decimal.RequireFromString("100"))
		require.Equal(t, "-20", percent.String())
	})

	t.Run("gain", func(t *testing.T) {
		percent := PercentDiff(decimal.RequireFromString("104"), decimal.RequireFromString("100"))
		require.Equal(t, "4", percent.String())
	})

	t.Run("zero average short-circuits to zero", func(t *testing.T) {
		percent := PercentDiff(decimal.RequireFromString("50"), decimal.Zero)
		require.True(t, percent.IsZero())
	})

	t.Run("repeating decimal rounds half away from zero", func(t *testing.T) {
		// (100 - 300) / 300 = -66.666... -> -66.67
		percent := PercentDiff(decimal.RequireFromString("100"), decimal.RequireFromString("300"))
		require.Equal(t, "-66.67", percent.String())
	})
}

func TestAssessSell(t *testing.T) {
	t.Run("deep loss is high risk with monetary impact", func(t *testing.T) {
		lots := []model.UserAsset{newLot("100", 10)}
		assessment := AssessSell(lots, livePrice("80"), 5)

		require.Equal(t, domain.RiskActionSell, assessment.Action)
		require.Equal(t, domain.RiskLevelHigh, assessment.RiskLevel)
		require.Equal(t, "-20", assessment.PercentDifference.String())
		require.Equal(t, "-100", assessment.MonetaryImpact.String())
		require.Equal(t, int32(5), assessment.RequestedQuantity)
		require.Equal(t, int32(10), assessment.AvailableQuantity)
		require.Equal(t, domain.PriceSourceLive, assessment.PriceSource)
		require.Contains(t, assessment.Recommendation, "High risk to sell")
	})

	t.Run("moderate loss is medium risk", func(t *testing.T) {
		lots := []model.UserAsset{newLot("100", 10)}
		assessment := AssessSell(lots, livePrice("95"), 5)
		require.Equal(t, domain.RiskLevelMedium, assessment.RiskLevel)
	})

	t.Run("selling in profit is low risk", func(t *testing.T) {
		lots := []model.UserAsset{newLot("100", 10)}
		assessment := AssessSell(lots, livePrice("120"), 5)
		require.Equal(t, domain.RiskLevelLow, assessment.RiskLevel)
		require.Contains(t, assessment.Recommendation, "In profit")
	})

	t.Run("small loss is low risk", func(t *testing.T) {
		lots := []model.UserAsset{newLot("100", 10)}
		assessment := AssessSell(lots, livePrice("98"), 5)
		require.Equal(t, domain.RiskLevelLow, assessment.RiskLevel)
		require.Contains(t, assessment.Recommendation, "Small loss")
	})

	t.Run("no holdings sentinel ignores price entirely", func(t *testing.T) {
		assessment := AssessSell(nil, domain.AssetPrice{}, 3)
		require.Equal(t, domain.RiskLevelNoHoldings, assessment.RiskLevel)
		require.True(t, assessment.CurrentPrice.IsZero())
		require.True(t, assessment.MonetaryImpact.IsZero())
	})

	t.Run("non-positive quantity sentinel", func(t *testing.T) {
		lots := []model.UserAsset{newLot("100", 10)}
		assessment := AssessSell(lots, livePrice("80"), 0)
		require.Equal(t, domain.RiskLevelInvalidQuantity, assessment.RiskLevel)
		require.Equal(t, int32(10), assessment.AvailableQuantity)
	})

	t.Run("oversell sentinel", func(t *testing.T) {
		lots := []model.UserAsset{newLot("100", 10)}
		assessment := AssessSell(lots, livePrice("80"), 11)
		require.Equal(t, domain.RiskLevelInsufficientQuantity, assessment.RiskLevel)
	})

	t.Run("boundary percentages land on the higher tier", func(t *testing.T) {
		lots := []model.UserAsset{newLot("100", 10)}
		require.Equal(t, domain.RiskLevelHigh, AssessSell(lots, livePrice("90"), 5).RiskLevel)
		require.Equal(t, domain.RiskLevelMedium, AssessSell(lots, livePrice("97"), 5).RiskLevel)
	})
}

func TestAssessBuy(t *testing.T) {
	t.Run("moderately above average is medium risk", func(t *testing.T) {
		lots := []model.UserAsset{newLot("100", 1)}
		assessment := AssessBuy(lots, livePrice("104"), 2)

		require.Equal(t, domain.RiskActionBuy, assessment.Action)
		require.Equal(t, domain.RiskLevelMedium, assessment.RiskLevel)
		require.Equal(t, "4", assessment.PercentDifference.String())
		require.Equal(t, "8", assessment.MonetaryImpact.String())
	})

	t.Run("well above average is high risk", func(t *testing.T) {
		lots := []model.UserAsset{newLot("100", 1)}
		assessment := AssessBuy(lots, livePrice("115"), 1)
		require.Equal(t, domain.RiskLevelHigh, assessment.RiskLevel)
	})

	t.Run("buying below average is always low risk", func(t *testing.T) {
		// a -50% move would be HIGH on the sell side; buy never
		// escalates on negative percent
		lots := []model.UserAsset{newLot("100", 1)}
		assessment := AssessBuy(lots, livePrice("50"), 1)
		require.Equal(t, domain.RiskLevelLow, assessment.RiskLevel)
	})

	t.Run("no holdings defaults to optimistic low", func(t *testing.T) {
		assessment := AssessBuy(nil, livePrice("250"), 4)
		require.Equal(t, domain.RiskLevelLow, assessment.RiskLevel)
		require.Contains(t, assessment.Recommendation, "No previous holdings")
		require.Equal(t, domain.PriceSourceLive, assessment.PriceSource)
	})
}

func TestPlanLiquidation(t *testing.T) {
	price := decimal.RequireFromString("110")

	t.Run("draws lots in order until the request is met", func(t *testing.T) {
		lots := []model.UserAsset{
			newLot("100", 3),
			newLot("120", 5),
			newLot("90", 4),
		}
		draws, sold := PlanLiquidation(lots, 7, price)

		require.Equal(t, int32(7), sold)
		require.Len(t, draws, 2)

		require.Equal(t, int32(3), draws[0].Quantity)
		require.True(t, draws[0].Delete)
		require.Equal(t, domain.ProfitStatusProfit, draws[0].Status)

		require.Equal(t, int32(4), draws[1].Quantity)
		require.Equal(t, int32(1), draws[1].Remaining)
		require.False(t, draws[1].Delete)
		require.Equal(t, domain.ProfitStatusLoss, draws[1].Status)
	})

	t.Run("exact exhaustion deletes the lot", func(t *testing.T) {
		lots := []model.UserAsset{newLot("100", 3)}
		draws, sold := PlanLiquidation(lots, 3, price)

		require.Equal(t, int32(3), sold)
		require.Len(t, draws, 1)
		require.True(t, draws[0].Delete)
		require.Equal(t, int32(0), draws[0].Remaining)
	})

	t.Run("never sells more than held", func(t *testing.T) {
		lots := []model.UserAsset{
			newLot("100", 3),
			newLot("100", 4),
		}
		draws, sold := PlanLiquidation(lots, 20, price)

		require.Equal(t, int32(7), sold)
		require.Len(t, draws, 2)
		for _, draw := range draws {
			require.True(t, draw.Delete)
		}
	})

	t.Run("skips empty lots", func(t *testing.T) {
		lots := []model.UserAsset{
			newLot("100", 0),
			newLot("100", 5),
		}
		draws, sold := PlanLiquidation(lots, 2, price)

		require.Equal(t, int32(2), sold)
		require.Len(t, draws, 1)
		require.Equal(t, int32(3), draws[0].Remaining)
	})
}

func TestRecommendationRisk(t *testing.T) {
	tests := []struct {
		percent string
		want    domain.RiskLevel
	}{
		{"25", domain.RiskLevelHigh},
		{"-25", domain.RiskLevelHigh},
		{"20", domain.RiskLevelHigh},
		{"7", domain.RiskLevelMedium},
		{"-5", domain.RiskLevelMedium},
		{"3", domain.RiskLevelLow},
		{"0", domain.RiskLevelLow},
	}
	for _, tc := range tests {
		t.Run(tc.percent, func(t *testing.T) {
			got := RecommendationRisk(decimal.RequireFromString(tc.percent))
			require.Equal(t, tc.want, got)
		})
	}
}

func TestValueLot(t *testing.T) {
	t.Run("loss keeps the difference positive and labels LOSS", func(t *testing.T) {
		lot := newLot("100", 10)
		valuation := ValueLot(lot, decimal.RequireFromString("80"))

		require.Equal(t, domain.ProfitStatusLoss, valuation.Status)
		require.Equal(t, "200", valuation.Difference.String())
		require.Equal(t, "-20", valuation.Percent.String())
	})

	t.Run("profit", func(t *testing.T) {
		lot := newLot("100", 2)
		valuation := ValueLot(lot, decimal.RequireFromString("150"))

		require.Equal(t, domain.ProfitStatusProfit, valuation.Status)
		require.Equal(t, "100", valuation.Difference.String())
	})
}

func TestInferAssetType(t *testing.T) {
	require.Equal(t, model.AssetType_Crypto, InferAssetType("BTC"))
	require.Equal(t, model.AssetType_Crypto, InferAssetType("eth"))
	require.Equal(t, model.AssetType_Stock, InferAssetType("AAPL"))
	require.Equal(t, model.AssetType_Stock, InferAssetType("MSFT"))

	// substring matching misfires on tickers that merely contain a hint;
	// SPXL contains no hint but TETHER contains ETH
	require.Equal(t, model.AssetType_Crypto, InferAssetType("TETHER"))
}
