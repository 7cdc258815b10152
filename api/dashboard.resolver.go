package api

import (
	"time"

	"assetrisk/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type valuedAssetResponse struct {
	ID           uuid.UUID       `json:"id"`
	AssetType    string          `json:"assetType"`
	Symbol       string          `json:"symbol"`
	Name         *string         `json:"name,omitempty"`
	BuyPrice     decimal.Decimal `json:"buyPrice"`
	Qty          int32           `json:"qty"`
	CurrentPrice decimal.Decimal `json:"currentPrice"`
	CurrentDate  time.Time       `json:"currentDate"`
	PriceSource  string          `json:"priceSource"`
	Difference   decimal.Decimal `json:"difference"`
	Percent      decimal.Decimal `json:"percent"`
	Status       string          `json:"status"`
}

type portfolioSummaryResponse struct {
	TotalInvested       decimal.Decimal `json:"totalInvested"`
	TotalMarketValue    decimal.Decimal `json:"totalMarketValue"`
	MeanReturnPercent   float64         `json:"meanReturnPercent"`
	MedianReturnPercent float64         `json:"medianReturnPercent"`
}

type dashboardResponse struct {
	Assets  []valuedAssetResponse     `json:"assets"`
	Summary *portfolioSummaryResponse `json:"summary,omitempty"`
}

func newValuedAssetResponse(view service.AssetView) valuedAssetResponse {
	return valuedAssetResponse{
		ID:           view.UserAssetID,
		AssetType:    view.AssetType.String(),
		Symbol:       view.Symbol,
		Name:         view.Name,
		BuyPrice:     view.BuyPrice,
		Qty:          view.Qty,
		CurrentPrice: view.CurrentPrice,
		CurrentDate:  view.CurrentDate,
		PriceSource:  string(view.PriceSource),
		Difference:   view.Difference,
		Percent:      view.Percent,
		Status:       string(view.Status),
	}
}

func (h ApiHandler) dashboard(c *gin.Context) {
	view, err := h.AssetService.Dashboard(c)
	if err != nil {
		returnServiceError(err, c)
		return
	}

	out := dashboardResponse{
		Assets: make([]valuedAssetResponse, 0, len(view.Assets)),
	}
	for _, asset := range view.Assets {
		out.Assets = append(out.Assets, newValuedAssetResponse(asset))
	}
	if view.Summary != nil {
		out.Summary = &portfolioSummaryResponse{
			TotalInvested:       view.Summary.TotalInvested,
			TotalMarketValue:    view.Summary.TotalMarketValue,
			MeanReturnPercent:   view.Summary.MeanReturnPercent,
			MedianReturnPercent: view.Summary.MedianReturnPercent,
		}
	}

	c.JSON(200, out)
}

func (h ApiHandler) profitLoss(c *gin.Context) {
	views, err := h.AssetService.ProfitLoss(c)
	if err != nil {
		returnServiceError(err, c)
		return
	}

	out := make([]valuedAssetResponse, 0, len(views))
	for _, view := range views {
		out = append(out, newValuedAssetResponse(view))
	}

	c.JSON(200, out)
}
