package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"assetrisk/internal/calculator"
	"assetrisk/internal/db/models/postgres/public/model"
	"assetrisk/internal/domain"
	"assetrisk/internal/pricedata"
	"assetrisk/internal/repository"
	"assetrisk/internal/util"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

var (
	// ErrValidation marks inputs rejected at the storage boundary.
	ErrValidation = errors.New("invalid input")
	// ErrNotFound marks lookups against holdings that do not exist.
	ErrNotFound = errors.New("not found")
)

type AddAssetInput struct {
	AssetType model.AssetType
	Symbol    string
	Name      *string
	BuyPrice  decimal.Decimal
	Qty       int32
}

// AssetView is one lot marked to market, as shown on the dashboard and
// profit-loss views.
type AssetView struct {
	UserAssetID  uuid.UUID
	AssetType    model.AssetType
	Symbol       string
	Name         *string
	BuyPrice     decimal.Decimal
	Qty          int32
	CurrentPrice decimal.Decimal
	CurrentDate  time.Time
	PriceSource  domain.PriceSource
	Difference   decimal.Decimal
	Percent      decimal.Decimal
	Status       domain.ProfitStatus
}

type PortfolioSummary struct {
	TotalInvested       decimal.Decimal
	TotalMarketValue    decimal.Decimal
	MeanReturnPercent   float64
	MedianReturnPercent float64
}

type DashboardView struct {
	Assets  []AssetView
	Summary *PortfolioSummary
}

// SellOutcome reports a full-lot sale. Summary is the plain-text line the
// sell endpoint answers with; percent renders at a fixed two decimals.
type SellOutcome struct {
	Symbol  string
	Status  domain.ProfitStatus
	Percent decimal.Decimal
	Summary string
}

// LiquidationOutcome reports a multi-lot sell by symbol.
type LiquidationOutcome struct {
	Symbol       string
	UnitsSold    int32
	CurrentPrice decimal.Decimal
	PriceSource  domain.PriceSource
}

type AssetService interface {
	AddAsset(ctx context.Context, input AddAssetInput) (*model.UserAsset, error)
	ListAssets(ctx context.Context) ([]model.UserAsset, error)
	ListAssetsByType(ctx context.Context, assetType model.AssetType) ([]model.UserAsset, error)
	ListAssetsBySymbol(ctx context.Context, assetType model.AssetType, symbol string) ([]model.UserAsset, error)
	SellAssetByID(ctx context.Context, id uuid.UUID) (*SellOutcome, error)
	SellBySymbol(ctx context.Context, symbol string, quantity int32) (*LiquidationOutcome, error)
	Dashboard(ctx context.Context) (*DashboardView, error)
	ProfitLoss(ctx context.Context) ([]AssetView, error)
}

type assetServiceHandler struct {
	Db                  *sql.DB
	UserAssetRepository repository.UserAssetRepository
	PriceService        PriceService
}

func NewAssetService(
	db *sql.DB,
	userAssetRepository repository.UserAssetRepository,
	priceService PriceService,
) AssetService {
	return assetServiceHandler{
		Db:                  db,
		UserAssetRepository: userAssetRepository,
		PriceService:        priceService,
	}
}

func (h assetServiceHandler) AddAsset(ctx context.Context, input AddAssetInput) (*model.UserAsset, error) {
	if strings.TrimSpace(input.Symbol) == "" {
		return nil, fmt.Errorf("%w: symbol is required", ErrValidation)
	}
	if input.Qty < 0 {
		return nil, fmt.Errorf("%w: quantity must be >= 0", ErrValidation)
	}
	if input.BuyPrice.Sign() < 0 {
		return nil, fmt.Errorf("%w: buy price must be >= 0", ErrValidation)
	}

	symbol := pricedata.Normalize(input.Symbol)
	price := h.PriceService.GetPrice(ctx, symbol, input.AssetType)

	asset := model.UserAsset{
		AssetType:      input.AssetType,
		Symbol:         symbol,
		Name:           input.Name,
		BuyPrice:       input.BuyPrice,
		Qty:            input.Qty,
		CurrentPrice:   util.DecimalPointer(price.Price),
		CurrentUpdated: &price.Date,
	}

	return h.UserAssetRepository.Add(nil, asset)
}

func (h assetServiceHandler) ListAssets(ctx context.Context) ([]model.UserAsset, error) {
	return h.UserAssetRepository.List()
}

func (h assetServiceHandler) ListAssetsByType(ctx context.Context, assetType model.AssetType) ([]model.UserAsset, error) {
	return h.UserAssetRepository.ListByType(assetType)
}

func (h assetServiceHandler) ListAssetsBySymbol(ctx context.Context, assetType model.AssetType, symbol string) ([]model.UserAsset, error) {
	lots, err := h.UserAssetRepository.ListBySymbol(pricedata.Normalize(symbol))
	if err != nil {
		return nil, err
	}

	out := []model.UserAsset{}
	for _, lot := range lots {
		if lot.AssetType == assetType {
			out = append(out, lot)
		}
	}

	return out, nil
}

// SellAssetByID liquidates one lot in full. The lot reaches quantity zero and
// is removed from the store.
func (h assetServiceHandler) SellAssetByID(ctx context.Context, id uuid.UUID) (*SellOutcome, error) {
	asset, err := h.UserAssetRepository.Get(id)
	if err != nil {
		return nil, err
	}

	price := h.PriceService.GetPrice(ctx, asset.Symbol, asset.AssetType)
	valuation := calculator.ValueLot(*asset, price.Price)

	if err := h.UserAssetRepository.Delete(nil, asset.UserAssetID); err != nil {
		return nil, err
	}

	return &SellOutcome{
		Symbol:  asset.Symbol,
		Status:  valuation.Status,
		Percent: valuation.Percent,
		Summary: fmt.Sprintf("Sold %s with %s of %s%%", asset.Symbol, valuation.Status, valuation.Percent.StringFixed(2)),
	}, nil
}

// SellBySymbol liquidates up to quantity units across the symbol's lots in
// store order. The read-modify-write cycle runs in one transaction with row
// locks so concurrent sells of the same symbol serialize.
func (h assetServiceHandler) SellBySymbol(ctx context.Context, symbol string, quantity int32) (*LiquidationOutcome, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be > 0", ErrValidation)
	}
	normalized := pricedata.Normalize(symbol)

	tx, err := h.Db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin txn to sell %s: %w", normalized, err)
	}
	defer tx.Rollback()

	lots, err := h.UserAssetRepository.ListBySymbolForUpdate(tx, normalized)
	if err != nil {
		return nil, err
	}
	if len(lots) == 0 {
		return nil, fmt.Errorf("%w: no holdings for %s", ErrNotFound, normalized)
	}

	price := h.PriceService.GetPrice(ctx, normalized, lots[0].AssetType)
	now := time.Now().UTC()

	draws, sold := calculator.PlanLiquidation(lots, quantity, price.Price)
	if err := h.applyDraws(tx, draws, price, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit sale of %s: %w", normalized, err)
	}

	return &LiquidationOutcome{
		Symbol:       normalized,
		UnitsSold:    sold,
		CurrentPrice: price.Price,
		PriceSource:  price.Source,
	}, nil
}

// applyDraws writes a liquidation plan back to the store: exhausted lots are
// removed, partially-drawn lots keep their remaining quantity and record the
// single transaction price and date.
func (h assetServiceHandler) applyDraws(tx *sql.Tx, draws []calculator.LotDraw, price domain.AssetPrice, now time.Time) error {
	for _, draw := range draws {
		if draw.Delete {
			if err := h.UserAssetRepository.Delete(tx, draw.Lot.UserAssetID); err != nil {
				return err
			}
			continue
		}

		lot := draw.Lot
		lot.Qty = draw.Remaining
		lot.SellingPrice = util.DecimalPointer(price.Price)
		lot.SellingDate = &now
		if _, err := h.UserAssetRepository.UpdateSale(tx, lot); err != nil {
			return err
		}
	}

	return nil
}

// Dashboard marks every lot to market, persists the refreshed prices, and
// attaches portfolio-level summary statistics.
func (h assetServiceHandler) Dashboard(ctx context.Context) (*DashboardView, error) {
	assets, err := h.UserAssetRepository.List()
	if err != nil {
		return nil, err
	}

	views := make([]AssetView, 0, len(assets))
	percents := make([]float64, 0, len(assets))
	totalInvested := decimal.Zero
	totalMarketValue := decimal.Zero

	for _, asset := range assets {
		price := h.PriceService.GetPrice(ctx, asset.Symbol, asset.AssetType)

		asset.CurrentPrice = &price.Price
		asset.CurrentUpdated = &price.Date
		if _, err := h.UserAssetRepository.UpdateCurrentPrice(nil, asset); err != nil {
			return nil, err
		}

		view := newAssetView(asset, price)
		views = append(views, view)

		qty := decimal.NewFromInt32(asset.Qty)
		totalInvested = totalInvested.Add(asset.BuyPrice.Mul(qty))
		totalMarketValue = totalMarketValue.Add(price.Price.Mul(qty))
		percents = append(percents, view.Percent.InexactFloat64())
	}

	out := &DashboardView{Assets: views}
	if len(percents) > 0 {
		mean, err := stats.Mean(percents)
		if err != nil {
			return nil, fmt.Errorf("failed to compute mean return: %w", err)
		}
		median, err := stats.Median(percents)
		if err != nil {
			return nil, fmt.Errorf("failed to compute median return: %w", err)
		}
		out.Summary = &PortfolioSummary{
			TotalInvested:       totalInvested.Round(2),
			TotalMarketValue:    totalMarketValue.Round(2),
			MeanReturnPercent:   mean,
			MedianReturnPercent: median,
		}
	}

	return out, nil
}

// ProfitLoss is the dashboard valuation without the price persistence or the
// summary block.
func (h assetServiceHandler) ProfitLoss(ctx context.Context) ([]AssetView, error) {
	assets, err := h.UserAssetRepository.List()
	if err != nil {
		return nil, err
	}

	views := make([]AssetView, 0, len(assets))
	for _, asset := range assets {
		price := h.PriceService.GetPrice(ctx, asset.Symbol, asset.AssetType)
		views = append(views, newAssetView(asset, price))
	}

	return views, nil
}

func newAssetView(asset model.UserAsset, price domain.AssetPrice) AssetView {
	valuation := calculator.ValueLot(asset, price.Price)
	return AssetView{
		UserAssetID:  asset.UserAssetID,
		AssetType:    asset.AssetType,
		Symbol:       asset.Symbol,
		Name:         asset.Name,
		BuyPrice:     asset.BuyPrice,
		Qty:          asset.Qty,
		CurrentPrice: price.Price.Round(4),
		CurrentDate:  price.Date,
		PriceSource:  price.Source,
		Difference:   valuation.Difference.Round(2),
		Percent:      valuation.Percent,
		Status:       valuation.Status,
	}
}
