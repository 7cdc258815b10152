package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceSource tells callers whether a quote came from a live provider or
// from the static fallback table. Fallback substitution never fails the
// request, so this flag is the only signal that a price may be stale.
type PriceSource string

const (
	PriceSourceLive     PriceSource = "live"
	PriceSourceFallback PriceSource = "fallback"
)

type AssetPrice struct {
	Symbol string
	Price  decimal.Decimal
	Date   time.Time
	Source PriceSource
}
