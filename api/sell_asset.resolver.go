package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h ApiHandler) sellAssetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid asset id: %w", err), c, 400)
		return
	}

	outcome, err := h.AssetService.SellAssetByID(c, id)
	if err != nil {
		returnServiceError(err, c)
		return
	}

	c.String(200, "%s", outcome.Summary)
}

type sellBySymbolRequest struct {
	Symbol string `json:"symbol" binding:"required"`
	Qty    int32  `json:"qty"`
}

func (h ApiHandler) sellBySymbol(c *gin.Context) {
	var requestBody sellBySymbolRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	outcome, err := h.AssetService.SellBySymbol(c, requestBody.Symbol, requestBody.Qty)
	if err != nil {
		returnServiceError(err, c)
		return
	}

	c.String(200, "Sold %d units of %s", outcome.UnitsSold, outcome.Symbol)
}
