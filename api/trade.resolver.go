package api

import (
	"fmt"

	"portfoliosim/internal/domain"
	l1_service "portfoliosim/internal/service/l1"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type tradeRequest struct {
	StockID string          `json:"stockID"`
	Shares  decimal.Decimal `json:"shares"`
}

// parse resolves the stock id in the request body.
func (r tradeRequest) parse() (uuid.UUID, error) {
	stockID, err := uuid.Parse(r.StockID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: stockID %q is not a valid id", domain.ErrInvalidInput, r.StockID)
	}
	return stockID, nil
}

type buyResponse struct {
	Message      string          `json:"message"`
	Symbol       string          `json:"symbol"`
	Shares       decimal.Decimal `json:"shares"`
	Price        decimal.Decimal `json:"price"`
	TotalCost    decimal.Decimal `json:"totalCost"`
	NewBalance   decimal.Decimal `json:"newBalance"`
	TotalShares  decimal.Decimal `json:"totalShares"`
	AveragePrice decimal.Decimal `json:"averagePrice"`
}

func (m ApiHandler) buy(c *gin.Context) {
	portfolioID, err := parseID(c, "portfolioID")
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	var requestBody tradeRequest
	if err := bindJSON(c, &requestBody); err != nil {
		returnErrorJson(err, c)
		return
	}
	stockID, err := requestBody.parse()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	result, err := m.TradeService.Buy(c.Request.Context(), l1_service.BuyInput{
		PortfolioID: portfolioID,
		StockID:     stockID,
		Shares:      requestBody.Shares,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, buyResponse{
		Message: fmt.Sprintf(
			"Bought %s shares of %s at %s",
			result.Shares.StringFixed(domain.ShareDisplayScale),
			result.Symbol,
			domain.FormatUSD(result.Price),
		),
		Symbol:       result.Symbol,
		Shares:       result.Shares,
		Price:        result.Price,
		TotalCost:    result.TotalCost,
		NewBalance:   result.NewBalance,
		TotalShares:  result.TotalShares,
		AveragePrice: result.AveragePrice,
	})
}

type sellResponse struct {
	Message         string          `json:"message"`
	Symbol          string          `json:"symbol"`
	Shares          decimal.Decimal `json:"shares"`
	Price           decimal.Decimal `json:"price"`
	TotalIncome     decimal.Decimal `json:"totalIncome"`
	NewBalance      decimal.Decimal `json:"newBalance"`
	RemainingShares decimal.Decimal `json:"remainingShares"`
	HoldingDeleted  bool            `json:"holdingDeleted"`
}

func (m ApiHandler) sell(c *gin.Context) {
	portfolioID, err := parseID(c, "portfolioID")
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	var requestBody tradeRequest
	if err := bindJSON(c, &requestBody); err != nil {
		returnErrorJson(err, c)
		return
	}
	stockID, err := requestBody.parse()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	result, err := m.TradeService.Sell(c.Request.Context(), l1_service.SellInput{
		PortfolioID: portfolioID,
		StockID:     stockID,
		Shares:      requestBody.Shares,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, sellResponse{
		Message: fmt.Sprintf(
			"Sold %s shares of %s at %s",
			result.Shares.StringFixed(domain.ShareDisplayScale),
			result.Symbol,
			domain.FormatUSD(result.Price),
		),
		Symbol:          result.Symbol,
		Shares:          result.Shares,
		Price:           result.Price,
		TotalIncome:     result.TotalIncome,
		NewBalance:      result.NewBalance,
		RemainingShares: result.RemainingShares,
		HoldingDeleted:  result.HoldingDeleted,
	})
}
