package api

import (
	"github.com/gin-gonic/gin"
)

type simulateRequest struct {
	Amount int    `json:"amount"`
	Unit   string `json:"unit"`
}

type simulateResponse struct {
	TotalDays       int   `json:"totalDays"`
	StocksSimulated int   `json:"stocksSimulated"`
	PricesGenerated int   `json:"pricesGenerated"`
	PricesInserted  int64 `json:"pricesInserted"`
}

func (m ApiHandler) simulate(c *gin.Context) {
	var requestBody simulateRequest
	if err := bindJSON(c, &requestBody); err != nil {
		returnErrorJson(err, c)
		return
	}

	result, err := m.SimulationService.SimulateForward(c.Request.Context(), requestBody.Amount, requestBody.Unit)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, simulateResponse{
		TotalDays:       result.TotalDays,
		StocksSimulated: result.StocksSimulated,
		PricesGenerated: result.PricesGenerated,
		PricesInserted:  result.PricesInserted,
	})
}
