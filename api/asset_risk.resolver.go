package api

import (
	"fmt"
	"strconv"
	"strings"

	"assetrisk/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type riskAssessmentResponse struct {
	Action            string          `json:"action"`
	RiskLevel         string          `json:"riskLevel"`
	AvgBuyPrice       decimal.Decimal `json:"avgBuyPrice"`
	CurrentPrice      decimal.Decimal `json:"currentPrice"`
	PercentDifference decimal.Decimal `json:"percentDifference"`
	MonetaryImpact    decimal.Decimal `json:"monetaryImpact"`
	RequestedQty      int32           `json:"requestedQty"`
	AvailableQty      int32           `json:"availableQty"`
	PriceSource       string          `json:"priceSource"`
	Recommendation    string          `json:"recommendation"`
}

func newRiskAssessmentResponse(assessment domain.RiskAssessment) riskAssessmentResponse {
	return riskAssessmentResponse{
		Action:            string(assessment.Action),
		RiskLevel:         string(assessment.RiskLevel),
		AvgBuyPrice:       assessment.AvgBuyPrice,
		CurrentPrice:      assessment.CurrentPrice,
		PercentDifference: assessment.PercentDifference,
		MonetaryImpact:    assessment.MonetaryImpact,
		RequestedQty:      assessment.RequestedQuantity,
		AvailableQty:      assessment.AvailableQuantity,
		PriceSource:       string(assessment.PriceSource),
		Recommendation:    assessment.Recommendation,
	}
}

// assetRisk dispatches the risk subtree: /{symbol} answers the legacy
// plain-text summary, /buy/{symbol}/{qty} and /sell/{symbol}/{qty} answer
// structured assessments.
func (h ApiHandler) assetRisk(c *gin.Context) {
	parts := strings.Split(strings.Trim(c.Param("path"), "/"), "/")

	switch {
	case len(parts) == 1 && parts[0] != "":
		summary, err := h.RiskService.LegacySummary(c, parts[0])
		if err != nil {
			returnServiceError(err, c)
			return
		}
		c.String(200, "%s", summary)

	case len(parts) == 3 && (parts[0] == "buy" || parts[0] == "sell"):
		qty, err := strconv.ParseInt(parts[2], 10, 32)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid quantity %q", parts[2]), c, 400)
			return
		}

		var assessment domain.RiskAssessment
		if parts[0] == "buy" {
			assessment, err = h.RiskService.CheckBuyRisk(c, parts[1], int32(qty))
		} else {
			assessment, err = h.RiskService.CheckSellRisk(c, parts[1], int32(qty))
		}
		if err != nil {
			returnServiceError(err, c)
			return
		}
		c.JSON(200, newRiskAssessmentResponse(assessment))

	default:
		returnErrorJsonCode(fmt.Errorf("unknown risk route"), c, 404)
	}
}
