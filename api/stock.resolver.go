package api

import (
	"portfoliosim/internal/domain"
	"portfoliosim/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type stockResponse struct {
	StockID uuid.UUID `json:"stockID"`
	Symbol  string    `json:"symbol"`
	Name    string    `json:"name"`
}

func (m ApiHandler) listStocks(c *gin.Context) {
	stocks, err := m.PriceService.ListStocks(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := make([]stockResponse, 0, len(stocks))
	for _, s := range stocks {
		out = append(out, stockResponse{
			StockID: s.StockID,
			Symbol:  s.Symbol,
			Name:    s.Name,
		})
	}
	c.JSON(200, out)
}

type getPriceHistoryResponse struct {
	Stock      stockResponse      `json:"stock"`
	Labels     []string           `json:"labels"`
	Prices     []*decimal.Decimal `json:"prices"`
	Volumes    []*int64           `json:"volumes"`
	Stats      *domain.PriceStats `json:"stats"`
	Start      string             `json:"start"`
	End        string             `json:"end"`
	DataPoints int                `json:"dataPoints"`
}

// getPriceHistory serves ?start=YYYY-MM-DD&end=YYYY-MM-DD. Dates that do
// not parse fall back to the default window.
func (m ApiHandler) getPriceHistory(c *gin.Context) {
	stockID, err := parseID(c, "stockID")
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	history, err := m.PriceService.GetPriceHistory(
		c.Request.Context(),
		stockID,
		util.ParseDate(c.Query("start")),
		util.ParseDate(c.Query("end")),
	)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := getPriceHistoryResponse{
		Stock: stockResponse{
			StockID: history.Stock.StockID,
			Symbol:  history.Stock.Symbol,
			Name:    history.Stock.Name,
		},
		Labels:     make([]string, 0, len(history.Points)),
		Prices:     make([]*decimal.Decimal, 0, len(history.Points)),
		Volumes:    make([]*int64, 0, len(history.Points)),
		Stats:      history.Stats,
		Start:      util.FormatDate(history.Start),
		End:        util.FormatDate(history.End),
		DataPoints: history.DataPoints,
	}
	for _, p := range history.Points {
		out.Labels = append(out.Labels, util.FormatDate(p.Date))
		out.Prices = append(out.Prices, p.Price)
		out.Volumes = append(out.Volumes, p.Volume)
	}

	c.JSON(200, out)
}
