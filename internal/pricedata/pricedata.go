// Package pricedata exposes the static market tables: per-symbol fallback
// prices, crypto symbol aliases, and rough market-performance estimates.
// The tables are embedded CSVs parsed once at startup and read-only after -
// they are configuration, not mutable state.
package pricedata

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"assetrisk/internal/db/models/postgres/public/model"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

//go:embed fallback_prices.csv
var fallbackPricesCSV []byte

//go:embed symbol_aliases.csv
var symbolAliasesCSV []byte

//go:embed market_performance.csv
var marketPerformanceCSV []byte

// the symbol row that holds the per-asset-class default fallback price
const defaultSymbol = "*"

type fallbackPriceRow struct {
	AssetType string          `csv:"asset_type"`
	Symbol    string          `csv:"symbol"`
	Price     decimal.Decimal `csv:"price"`
}

type symbolAliasRow struct {
	Alias  string `csv:"alias"`
	Symbol string `csv:"symbol"`
}

type marketPerformanceRow struct {
	Symbol     string          `csv:"symbol"`
	YtdPercent decimal.Decimal `csv:"ytd_percent"`
}

// TopMarketStocks is the static large-cap universe shown when the user holds
// nothing worth ranking.
var TopMarketStocks = []string{
	"MSFT", "NVDA", "AAPL", "GOOGL", "AMZN", "META", "TSLA", "AVGO",
	"LLY", "JPM", "V", "WMT", "UNH", "MA", "PG",
}

var (
	fallbackPrices    map[model.AssetType]map[string]decimal.Decimal
	symbolAliases     map[string]string
	marketPerformance map[string]decimal.Decimal
)

func init() {
	var priceRows []fallbackPriceRow
	if err := gocsv.UnmarshalBytes(fallbackPricesCSV, &priceRows); err != nil {
		panic(fmt.Errorf("failed to parse embedded fallback prices: %w", err))
	}
	fallbackPrices = map[model.AssetType]map[string]decimal.Decimal{}
	for _, row := range priceRows {
		assetType := model.AssetType(row.AssetType)
		if _, ok := fallbackPrices[assetType]; !ok {
			fallbackPrices[assetType] = map[string]decimal.Decimal{}
		}
		fallbackPrices[assetType][row.Symbol] = row.Price
	}

	var aliasRows []symbolAliasRow
	if err := gocsv.UnmarshalBytes(symbolAliasesCSV, &aliasRows); err != nil {
		panic(fmt.Errorf("failed to parse embedded symbol aliases: %w", err))
	}
	symbolAliases = map[string]string{}
	for _, row := range aliasRows {
		symbolAliases[strings.ToLower(row.Alias)] = row.Symbol
	}

	var perfRows []marketPerformanceRow
	if err := gocsv.UnmarshalBytes(marketPerformanceCSV, &perfRows); err != nil {
		panic(fmt.Errorf("failed to parse embedded market performance: %w", err))
	}
	marketPerformance = map[string]decimal.Decimal{}
	for _, row := range perfRows {
		marketPerformance[row.Symbol] = row.YtdPercent
	}
}

// Normalize maps aliases like "bitcoin" or "eth-usd" to their canonical
// ticker and uppercases everything else. Safe for stock symbols too - they
// simply never hit the alias table.
func Normalize(symbol string) string {
	if canonical, ok := symbolAliases[strings.ToLower(symbol)]; ok {
		return canonical
	}
	return strings.ToUpper(symbol)
}

// FallbackPrice returns the static price substituted when every live
// provider fails. There is always an answer: unknown symbols get the
// per-asset-class default.
func FallbackPrice(assetType model.AssetType, symbol string) decimal.Decimal {
	table, ok := fallbackPrices[assetType]
	if !ok {
		return decimal.Zero
	}
	if price, ok := table[Normalize(symbol)]; ok {
		return price
	}
	return table[defaultSymbol]
}

// PerformanceEstimate returns the static YTD performance estimate for a
// symbol, if one is tabled.
func PerformanceEstimate(symbol string) (decimal.Decimal, bool) {
	estimate, ok := marketPerformance[Normalize(symbol)]
	return estimate, ok
}

type MarketMover struct {
	Symbol     string
	YtdPercent decimal.Decimal
}

// MarketMovers lists the tabled performance estimates, best first.
func MarketMovers() []MarketMover {
	movers := make([]MarketMover, 0, len(marketPerformance))
	for symbol, estimate := range marketPerformance {
		movers = append(movers, MarketMover{Symbol: symbol, YtdPercent: estimate})
	}
	sort.Slice(movers, func(i, j int) bool {
		return movers[i].YtdPercent.GreaterThan(movers[j].YtdPercent)
	})
	return movers
}
