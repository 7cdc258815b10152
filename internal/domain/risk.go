package domain

import (
	"github.com/shopspring/decimal"
)

type RiskAction string

const (
	RiskActionBuy  RiskAction = "BUY"
	RiskActionSell RiskAction = "SELL"
)

type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "LOW"
	RiskLevelMedium RiskLevel = "MEDIUM"
	RiskLevelHigh   RiskLevel = "HIGH"

	// sentinel levels - encoded as risk values so callers can branch
	// without error handling
	RiskLevelNoHoldings           RiskLevel = "NO_HOLDINGS"
	RiskLevelInvalidQuantity      RiskLevel = "INVALID_QUANTITY"
	RiskLevelInsufficientQuantity RiskLevel = "INSUFFICIENT_QUANTITY"
)

// RiskAssessment is recomputed on demand and never persisted.
type RiskAssessment struct {
	Action            RiskAction
	RiskLevel         RiskLevel
	AvgBuyPrice       decimal.Decimal
	CurrentPrice      decimal.Decimal
	PercentDifference decimal.Decimal
	MonetaryImpact    decimal.Decimal
	RequestedQuantity int32
	AvailableQuantity int32
	PriceSource       PriceSource
	Recommendation    string
}

type AssetRecommendation struct {
	Symbol        string
	RiskLevel     RiskLevel
	AvgBuyPrice   decimal.Decimal
	CurrentPrice  decimal.Decimal
	ProfitPercent decimal.Decimal
}

type ProfitStatus string

const (
	ProfitStatusProfit ProfitStatus = "PROFIT"
	ProfitStatusLoss   ProfitStatus = "LOSS"
)
