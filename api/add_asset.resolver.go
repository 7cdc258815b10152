package api

import (
	"fmt"
	"strings"

	"assetrisk/internal/db/models/postgres/public/model"
	"assetrisk/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type addAssetRequest struct {
	AssetType string          `json:"assetType" binding:"required"`
	Symbol    string          `json:"symbol" binding:"required"`
	Name      *string         `json:"name"`
	BuyPrice  decimal.Decimal `json:"buyPrice"`
	Qty       int32           `json:"qty"`
}

func (h ApiHandler) addAsset(c *gin.Context) {
	var requestBody addAssetRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	assetType := model.AssetType(strings.ToUpper(requestBody.AssetType))
	if assetType != model.AssetType_Stock && assetType != model.AssetType_Crypto {
		returnErrorJsonCode(fmt.Errorf("unknown asset type %s", requestBody.AssetType), c, 400)
		return
	}

	asset, err := h.AssetService.AddAsset(c, service.AddAssetInput{
		AssetType: assetType,
		Symbol:    requestBody.Symbol,
		Name:      requestBody.Name,
		BuyPrice:  requestBody.BuyPrice,
		Qty:       requestBody.Qty,
	})
	if err != nil {
		returnServiceError(err, c)
		return
	}

	c.JSON(200, newUserAssetResponse(*asset))
}
