// Package calculator holds the valuation and risk rules. Everything here is
// a pure function of its inputs - no db access, no price fetching - so the
// sell, dashboard, profit-loss and advisory paths all share one set of rules.
package calculator

import (
	"strings"

	"assetrisk/internal/db/models/postgres/public/model"
	"assetrisk/internal/domain"

	"github.com/shopspring/decimal"
)

const (
	// intermediate divisions happen at this scale, display rounding at 2.
	// changing this drifts percent values on repeating decimals.
	divideScale  = 8
	percentScale = 2
	priceScale   = 4
)

var (
	highRiskThreshold   = decimal.NewFromInt(10)
	mediumRiskThreshold = decimal.NewFromInt(3)
	oneHundred          = decimal.NewFromInt(100)

	rankHighThreshold   = decimal.NewFromInt(20)
	rankMediumThreshold = decimal.NewFromInt(5)
)

func safeQty(q int32) int32 {
	if q < 0 {
		return 0
	}
	return q
}

// TotalQuantity sums open quantity across lots. Lots at or below zero
// contribute nothing.
func TotalQuantity(lots []model.UserAsset) int32 {
	var total int32
	for _, lot := range lots {
		total += safeQty(lot.Qty)
	}
	return total
}

// WeightedAvgBuyPrice returns the quantity-weighted mean buy price across
// lots, at scale 8, or zero when no quantity is held.
func WeightedAvgBuyPrice(lots []model.UserAsset) decimal.Decimal {
	totalQty := TotalQuantity(lots)
	if totalQty == 0 {
		return decimal.Zero
	}

	weightedSum := decimal.Zero
	for _, lot := range lots {
		weightedSum = weightedSum.Add(lot.BuyPrice.Mul(decimal.NewFromInt32(safeQty(lot.Qty))))
	}

	return weightedSum.DivRound(decimal.NewFromInt32(totalQty), divideScale)
}

// PercentDiff is ((current - avg) / avg) * 100 rounded to 2 places, and
// exactly 0.00 when avg is zero.
func PercentDiff(currentPrice, avgBuyPrice decimal.Decimal) decimal.Decimal {
	if avgBuyPrice.IsZero() {
		return decimal.Zero.Round(percentScale)
	}
	return currentPrice.Sub(avgBuyPrice).
		DivRound(avgBuyPrice, divideScale).
		Mul(oneHundred).
		Round(percentScale)
}

// MonetaryImpact is (current - avg) * quantity rounded to 2 places.
func MonetaryImpact(currentPrice, avgBuyPrice decimal.Decimal, quantity int32) decimal.Decimal {
	return currentPrice.Sub(avgBuyPrice).
		Mul(decimal.NewFromInt32(quantity)).
		Round(percentScale)
}

// AssessSell classifies a proposed sale. Sentinel levels short-circuit with
// zeroed numeric fields; current is ignored on the no-holdings path so
// callers can skip the price fetch entirely.
func AssessSell(lots []model.UserAsset, current domain.AssetPrice, quantityToSell int32) domain.RiskAssessment {
	if len(lots) == 0 {
		return domain.RiskAssessment{
			Action:            domain.RiskActionSell,
			RiskLevel:         domain.RiskLevelNoHoldings,
			RequestedQuantity: quantityToSell,
			Recommendation:    "No holdings for symbol; cannot sell.",
		}
	}

	totalQty := TotalQuantity(lots)

	if quantityToSell <= 0 {
		return domain.RiskAssessment{
			Action:            domain.RiskActionSell,
			RiskLevel:         domain.RiskLevelInvalidQuantity,
			RequestedQuantity: quantityToSell,
			AvailableQuantity: totalQty,
			Recommendation:    "Requested quantity must be > 0.",
		}
	}

	if quantityToSell > totalQty {
		return domain.RiskAssessment{
			Action:            domain.RiskActionSell,
			RiskLevel:         domain.RiskLevelInsufficientQuantity,
			RequestedQuantity: quantityToSell,
			AvailableQuantity: totalQty,
			Recommendation:    "Requested quantity exceeds available holdings.",
		}
	}

	avgBuyPrice := WeightedAvgBuyPrice(lots)
	percent := PercentDiff(current.Price, avgBuyPrice)
	impact := MonetaryImpact(current.Price, avgBuyPrice, quantityToSell)

	level := sellRiskLevel(percent)

	return domain.RiskAssessment{
		Action:            domain.RiskActionSell,
		RiskLevel:         level,
		AvgBuyPrice:       avgBuyPrice.Round(priceScale),
		CurrentPrice:      current.Price.Round(priceScale),
		PercentDifference: percent,
		MonetaryImpact:    impact,
		RequestedQuantity: quantityToSell,
		AvailableQuantity: totalQty,
		PriceSource:       current.Source,
		Recommendation:    sellRecommendation(level, percent),
	}
}

// AssessBuy classifies a proposed purchase. With no prior holdings the
// result is an optimistic LOW - buying with no history is never penalized.
func AssessBuy(lots []model.UserAsset, current domain.AssetPrice, quantityToBuy int32) domain.RiskAssessment {
	if len(lots) == 0 {
		return domain.RiskAssessment{
			Action:            domain.RiskActionBuy,
			RiskLevel:         domain.RiskLevelLow,
			CurrentPrice:      current.Price.Round(priceScale),
			RequestedQuantity: quantityToBuy,
			PriceSource:       current.Source,
			Recommendation:    "No previous holdings; treat as low risk but consider market volatility.",
		}
	}

	totalQty := TotalQuantity(lots)
	avgBuyPrice := WeightedAvgBuyPrice(lots)
	percent := PercentDiff(current.Price, avgBuyPrice)
	impact := MonetaryImpact(current.Price, avgBuyPrice, quantityToBuy)

	level := buyRiskLevel(percent)

	return domain.RiskAssessment{
		Action:            domain.RiskActionBuy,
		RiskLevel:         level,
		AvgBuyPrice:       avgBuyPrice.Round(priceScale),
		CurrentPrice:      current.Price.Round(priceScale),
		PercentDifference: percent,
		MonetaryImpact:    impact,
		RequestedQuantity: quantityToBuy,
		AvailableQuantity: totalQty,
		PriceSource:       current.Source,
		Recommendation:    buyRecommendation(level),
	}
}

// selling at or above cost is never classified risky; only losses escalate,
// by magnitude.
func sellRiskLevel(percent decimal.Decimal) domain.RiskLevel {
	if percent.Sign() >= 0 {
		return domain.RiskLevelLow
	}
	abs := percent.Abs()
	switch {
	case abs.GreaterThanOrEqual(highRiskThreshold):
		return domain.RiskLevelHigh
	case abs.GreaterThanOrEqual(mediumRiskThreshold):
		return domain.RiskLevelMedium
	default:
		return domain.RiskLevelLow
	}
}

// buy-side thresholds are not applied to the absolute value - buying below
// the historical average is never risky under this model.
func buyRiskLevel(percent decimal.Decimal) domain.RiskLevel {
	if percent.Sign() <= 0 {
		return domain.RiskLevelLow
	}
	switch {
	case percent.GreaterThanOrEqual(highRiskThreshold):
		return domain.RiskLevelHigh
	case percent.GreaterThanOrEqual(mediumRiskThreshold):
		return domain.RiskLevelMedium
	default:
		return domain.RiskLevelLow
	}
}

func sellRecommendation(level domain.RiskLevel, percent decimal.Decimal) string {
	switch level {
	case domain.RiskLevelHigh:
		return "High risk to sell: large loss. Consider holding or selling smaller amount."
	case domain.RiskLevelMedium:
		return "Medium risk to sell: moderate loss. Evaluate tax/portfolio needs."
	default:
		if percent.Sign() >= 0 {
			return "In profit: selling is acceptable if you want to realize gains."
		}
		return "Small loss: selling may be acceptable depending on strategy."
	}
}

func buyRecommendation(level domain.RiskLevel) string {
	switch level {
	case domain.RiskLevelHigh:
		return "High risk to buy: current price significantly above previous average. Consider waiting or buying partial."
	case domain.RiskLevelMedium:
		return "Medium risk to buy: price moderately above average. Consider dollar-cost averaging."
	default:
		return "Low risk to buy: price at or below average."
	}
}

// RecommendationRisk classifies a ranked holding with the coarser tiers used
// by the top-N view, mirrored for losses.
func RecommendationRisk(profitPercent decimal.Decimal) domain.RiskLevel {
	abs := profitPercent.Abs()
	switch {
	case abs.GreaterThanOrEqual(rankHighThreshold):
		return domain.RiskLevelHigh
	case abs.GreaterThanOrEqual(rankMediumThreshold):
		return domain.RiskLevelMedium
	default:
		return domain.RiskLevelLow
	}
}

// LotValuation is one lot marked to market against its own buy price.
type LotValuation struct {
	Difference decimal.Decimal // absolute monetary difference
	Percent    decimal.Decimal // signed
	Status     domain.ProfitStatus
}

func ValueLot(lot model.UserAsset, currentPrice decimal.Decimal) LotValuation {
	difference := currentPrice.Sub(lot.BuyPrice).Mul(decimal.NewFromInt32(lot.Qty))
	percent := PercentDiff(currentPrice, lot.BuyPrice)

	status := domain.ProfitStatusProfit
	if difference.Sign() < 0 {
		status = domain.ProfitStatusLoss
	}

	return LotValuation{
		Difference: difference.Abs(),
		Percent:    percent,
		Status:     status,
	}
}

// LotDraw is the planned drawdown of a single lot within a multi-lot sell.
type LotDraw struct {
	Lot       model.UserAsset
	Quantity  int32 // units drawn from this lot
	Remaining int32 // lot quantity after the draw
	Percent   decimal.Decimal
	Status    domain.ProfitStatus
	Delete    bool // lot fully exhausted, remove from store
}

// PlanLiquidation walks lots in store order (FIFO - creation order is the
// tie-break, not cost basis) drawing min(lot qty, remaining request) from
// each until the request is met. Per-lot profit/loss uses that lot's own buy
// price and only labels the draw; it is not aggregated.
func PlanLiquidation(lots []model.UserAsset, quantityToSell int32, currentPrice decimal.Decimal) ([]LotDraw, int32) {
	draws := []LotDraw{}
	var sold int32

	for _, lot := range lots {
		if sold >= quantityToSell {
			break
		}

		available := safeQty(lot.Qty)
		if available == 0 {
			continue
		}

		qty := quantityToSell - sold
		if qty > available {
			qty = available
		}

		difference := currentPrice.Sub(lot.BuyPrice).Mul(decimal.NewFromInt32(qty))
		status := domain.ProfitStatusProfit
		if difference.Sign() < 0 {
			status = domain.ProfitStatusLoss
		}

		remaining := available - qty
		draws = append(draws, LotDraw{
			Lot:       lot,
			Quantity:  qty,
			Remaining: remaining,
			Percent:   PercentDiff(currentPrice, lot.BuyPrice),
			Status:    status,
			Delete:    remaining <= 0,
		})

		sold += qty
	}

	return draws, sold
}

var cryptoHints = []string{"BTC", "ETH", "SOL", "ADA", "XRP"}

// InferAssetType guesses the asset class of a never-held symbol. Naive
// inference: a ticker merely containing one of the hint substrings will be
// treated as crypto.
func InferAssetType(symbol string) model.AssetType {
	upper := strings.ToUpper(symbol)
	for _, hint := range cryptoHints {
		if strings.Contains(upper, hint) {
			return model.AssetType_Crypto
		}
	}
	return model.AssetType_Stock
}
