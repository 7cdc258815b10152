package api

import (
	"context"
	"fmt"
	"strconv"

	"assetrisk/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type assetRecommendationResponse struct {
	Symbol        string          `json:"symbol"`
	RiskLevel     string          `json:"riskLevel"`
	AvgBuyPrice   decimal.Decimal `json:"avgBuyPrice"`
	CurrentPrice  decimal.Decimal `json:"currentPrice"`
	ProfitPercent decimal.Decimal `json:"profitPercent"`
}

func newAssetRecommendationResponses(recommendations []domain.AssetRecommendation) []assetRecommendationResponse {
	out := make([]assetRecommendationResponse, 0, len(recommendations))
	for _, recommendation := range recommendations {
		out = append(out, assetRecommendationResponse{
			Symbol:        recommendation.Symbol,
			RiskLevel:     string(recommendation.RiskLevel),
			AvgBuyPrice:   recommendation.AvgBuyPrice,
			CurrentPrice:  recommendation.CurrentPrice,
			ProfitPercent: recommendation.ProfitPercent,
		})
	}
	return out
}

func (h ApiHandler) topStocks(c *gin.Context) {
	h.topRecommendations(c, h.RecommendationService.TopStocks)
}

func (h ApiHandler) topCrypto(c *gin.Context) {
	h.topRecommendations(c, h.RecommendationService.TopCrypto)
}

func (h ApiHandler) topAssets(c *gin.Context) {
	h.topRecommendations(c, h.RecommendationService.TopAssets)
}

func (h ApiHandler) topRecommendations(
	c *gin.Context,
	top func(ctx context.Context, limit int) ([]domain.AssetRecommendation, error),
) {
	n, err := strconv.Atoi(c.Param("n"))
	if err != nil || n < 0 {
		returnErrorJsonCode(fmt.Errorf("invalid limit %q", c.Param("n")), c, 400)
		return
	}

	recommendations, err := top(c, n)
	if err != nil {
		returnServiceError(err, c)
		return
	}

	c.JSON(200, newAssetRecommendationResponses(recommendations))
}

type marketMoverResponse struct {
	Symbol     string          `json:"symbol"`
	YtdPercent decimal.Decimal `json:"ytdPercent"`
}

func (h ApiHandler) marketMovers(c *gin.Context) {
	movers := h.RecommendationService.MarketMovers(c)

	out := make([]marketMoverResponse, 0, len(movers))
	for _, mover := range movers {
		out = append(out, marketMoverResponse{
			Symbol:     mover.Symbol,
			YtdPercent: mover.YtdPercent,
		})
	}

	c.JSON(200, out)
}
