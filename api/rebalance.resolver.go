package api

import (
	"portfoliosim/internal/domain"
	l2_service "portfoliosim/internal/service/l2"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type driftRowResponse struct {
	StockID         uuid.UUID        `json:"stockID"`
	Symbol          string           `json:"symbol"`
	Name            string           `json:"name"`
	Shares          decimal.Decimal  `json:"shares"`
	LatestPrice     *decimal.Decimal `json:"latestPrice"`
	CurrentValue    decimal.Decimal  `json:"currentValue"`
	ExpectedPercent decimal.Decimal  `json:"expectedPercent"`
	CurrentPercent  decimal.Decimal  `json:"currentPercent"`
	ObjectiveValue  decimal.Decimal  `json:"objectiveValue"`
	DeltaValue      decimal.Decimal  `json:"deltaValue"`
	SharesToTrade   decimal.Decimal  `json:"sharesToTrade"`
}

type rebalanceResponse struct {
	Holdings      []driftRowResponse   `json:"holdings"`
	Allocations   []allocationResponse `json:"allocations"`
	TotalInvested decimal.Decimal      `json:"totalInvested"`
	CashBalance   decimal.Decimal      `json:"cashBalance"`
	Executed      bool                 `json:"executed"`
	Operations    []string             `json:"operations"`

	TotalSold   *decimal.Decimal `json:"totalSold,omitempty"`
	TotalBought *decimal.Decimal `json:"totalBought,omitempty"`
	NewBalance  *decimal.Decimal `json:"newBalance,omitempty"`
	NumLegs     *int             `json:"numLegs,omitempty"`
}

func toRebalanceResponse(result *l2_service.RebalanceResult) rebalanceResponse {
	report := result.Report
	if report == nil {
		report = &domain.DriftReport{}
	}

	holdings := make([]driftRowResponse, 0, len(report.Holdings))
	for _, r := range report.Holdings {
		holdings = append(holdings, driftRowResponse{
			StockID:         r.StockID,
			Symbol:          r.Symbol,
			Name:            r.Name,
			Shares:          r.Shares,
			LatestPrice:     r.LatestPrice,
			CurrentValue:    r.CurrentValue.Round(domain.MoneyScale),
			ExpectedPercent: r.ExpectedPercent,
			CurrentPercent:  r.CurrentPercent.Round(domain.PercentScale),
			ObjectiveValue:  r.ObjectiveValue.Round(domain.MoneyScale),
			DeltaValue:      r.DeltaValue.Round(domain.MoneyScale),
			SharesToTrade:   r.SharesToTrade.Round(domain.SharesScale),
		})
	}

	operations := result.Operations
	if operations == nil {
		operations = []string{}
	}

	out := rebalanceResponse{
		Holdings:      holdings,
		Allocations:   toAllocationResponses(report.Allocations),
		TotalInvested: report.TotalInvested.Round(domain.MoneyScale),
		CashBalance:   report.CashBalance,
		Executed:      result.Executed,
		Operations:    operations,
	}
	if result.Executed {
		out.TotalSold = &result.TotalSold
		out.TotalBought = &result.TotalBought
		out.NewBalance = &result.NewBalance
		out.NumLegs = &result.NumLegs
	}
	return out
}

func (m ApiHandler) previewRebalance(c *gin.Context) {
	m.rebalance(c, false)
}

func (m ApiHandler) executeRebalance(c *gin.Context) {
	m.rebalance(c, true)
}

func (m ApiHandler) rebalance(c *gin.Context, execute bool) {
	portfolioID, err := parseID(c, "portfolioID")
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	result, err := m.RebalanceService.Rebalance(c.Request.Context(), portfolioID, execute)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, toRebalanceResponse(result))
}
