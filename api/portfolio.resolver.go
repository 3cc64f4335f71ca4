package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type portfolioResponse struct {
	PortfolioID uuid.UUID       `json:"portfolioID"`
	OwnerID     uuid.UUID       `json:"ownerID"`
	Name        string          `json:"name"`
	CashBalance decimal.Decimal `json:"cashBalance"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type holdingResponse struct {
	StockID      uuid.UUID        `json:"stockID"`
	Symbol       string           `json:"symbol"`
	Name         string           `json:"name"`
	Shares       decimal.Decimal  `json:"shares"`
	AveragePrice decimal.Decimal  `json:"averagePrice"`
	CurrentPrice *decimal.Decimal `json:"currentPrice"`
	Value        decimal.Decimal  `json:"value"`
	Percentage   decimal.Decimal  `json:"percentage"`
}

type getPortfolioResponse struct {
	Portfolio  portfolioResponse `json:"portfolio"`
	Holdings   []holdingResponse `json:"holdings"`
	TotalValue decimal.Decimal   `json:"totalValue"`
}

func (m ApiHandler) listPortfolios(c *gin.Context) {
	portfolios, err := m.PortfolioService.List(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := make([]portfolioResponse, 0, len(portfolios))
	for _, p := range portfolios {
		out = append(out, portfolioResponse{
			PortfolioID: p.PortfolioID,
			OwnerID:     p.OwnerID,
			Name:        p.Name,
			CashBalance: p.CashBalance,
			CreatedAt:   p.CreatedAt,
		})
	}
	c.JSON(200, out)
}

func (m ApiHandler) getPortfolio(c *gin.Context) {
	portfolioID, err := parseID(c, "portfolioID")
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	snapshot, err := m.PortfolioService.GetSnapshot(c.Request.Context(), portfolioID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	holdings := make([]holdingResponse, 0, len(snapshot.Holdings))
	for _, h := range snapshot.Holdings {
		holdings = append(holdings, holdingResponse{
			StockID:      h.StockID,
			Symbol:       h.Symbol,
			Name:         h.Name,
			Shares:       h.Shares,
			AveragePrice: h.AveragePrice,
			CurrentPrice: h.CurrentPrice,
			Value:        h.Value,
			Percentage:   h.Percentage,
		})
	}
	p := snapshot.Portfolio

	c.JSON(200, getPortfolioResponse{
		Portfolio: portfolioResponse{
			PortfolioID: p.PortfolioID,
			OwnerID:     p.OwnerID,
			Name:        p.Name,
			CashBalance: p.CashBalance,
			CreatedAt:   p.CreatedAt,
		},
		Holdings:   holdings,
		TotalValue: snapshot.TotalValue,
	})
}

type getBalanceResponse struct {
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

func (m ApiHandler) getBalance(c *gin.Context) {
	portfolioID, err := parseID(c, "portfolioID")
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	balance, err := m.PortfolioService.GetBalance(c.Request.Context(), portfolioID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, getBalanceResponse{
		Name:    balance.Name,
		Balance: balance.Balance,
	})
}

type addFundsRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (m ApiHandler) addFunds(c *gin.Context) {
	portfolioID, err := parseID(c, "portfolioID")
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	var requestBody addFundsRequest
	if err := bindJSON(c, &requestBody); err != nil {
		returnErrorJson(err, c)
		return
	}

	portfolio, err := m.PortfolioService.AddFunds(c.Request.Context(), portfolioID, requestBody.Amount)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, getBalanceResponse{
		Name:    portfolio.Name,
		Balance: portfolio.CashBalance,
	})
}
