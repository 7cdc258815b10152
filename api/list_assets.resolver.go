package api

import (
	"time"

	"assetrisk/internal/db/models/postgres/public/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type userAssetResponse struct {
	ID             uuid.UUID        `json:"id"`
	AssetType      string           `json:"assetType"`
	Symbol         string           `json:"symbol"`
	Name           *string          `json:"name,omitempty"`
	BuyPrice       decimal.Decimal  `json:"buyPrice"`
	Qty            int32            `json:"qty"`
	CurrentPrice   *decimal.Decimal `json:"currentPrice,omitempty"`
	CurrentUpdated *time.Time       `json:"currentUpdated,omitempty"`
	SellingPrice   *decimal.Decimal `json:"sellingPrice,omitempty"`
	SellingDate    *time.Time       `json:"sellingDate,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
}

func newUserAssetResponse(asset model.UserAsset) userAssetResponse {
	return userAssetResponse{
		ID:             asset.UserAssetID,
		AssetType:      asset.AssetType.String(),
		Symbol:         asset.Symbol,
		Name:           asset.Name,
		BuyPrice:       asset.BuyPrice,
		Qty:            asset.Qty,
		CurrentPrice:   asset.CurrentPrice,
		CurrentUpdated: asset.CurrentUpdated,
		SellingPrice:   asset.SellingPrice,
		SellingDate:    asset.SellingDate,
		CreatedAt:      asset.CreatedAt,
	}
}

func newUserAssetResponses(assets []model.UserAsset) []userAssetResponse {
	out := make([]userAssetResponse, 0, len(assets))
	for _, asset := range assets {
		out = append(out, newUserAssetResponse(asset))
	}
	return out
}

func (h ApiHandler) listAssets(c *gin.Context) {
	assets, err := h.AssetService.ListAssets(c)
	if err != nil {
		returnServiceError(err, c)
		return
	}
	c.JSON(200, newUserAssetResponses(assets))
}

func (h ApiHandler) listStocks(c *gin.Context) {
	assets, err := h.AssetService.ListAssetsByType(c, model.AssetType_Stock)
	if err != nil {
		returnServiceError(err, c)
		return
	}
	c.JSON(200, newUserAssetResponses(assets))
}

func (h ApiHandler) listCrypto(c *gin.Context) {
	assets, err := h.AssetService.ListAssetsByType(c, model.AssetType_Crypto)
	if err != nil {
		returnServiceError(err, c)
		return
	}
	c.JSON(200, newUserAssetResponses(assets))
}

func (h ApiHandler) listStockBySymbol(c *gin.Context) {
	assets, err := h.AssetService.ListAssetsBySymbol(c, model.AssetType_Stock, c.Param("symbol"))
	if err != nil {
		returnServiceError(err, c)
		return
	}
	c.JSON(200, newUserAssetResponses(assets))
}

func (h ApiHandler) listCryptoBySymbol(c *gin.Context) {
	assets, err := h.AssetService.ListAssetsBySymbol(c, model.AssetType_Crypto, c.Param("symbol"))
	if err != nil {
		returnServiceError(err, c)
		return
	}
	c.JSON(200, newUserAssetResponses(assets))
}
