package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PricePoint struct {
	StockID uuid.UUID
	Date    time.Time
	Price   *decimal.Decimal
	Volume  *int64
}

type PriceStats struct {
	CurrentPrice  float64 `json:"currentPrice"`
	MaxPrice      float64 `json:"maxPrice"`
	MinPrice      float64 `json:"minPrice"`
	AvgPrice      float64 `json:"avgPrice"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	// Volatility is the sample standard deviation of day over day returns,
	// in percent. Zero with fewer than three prices.
	Volatility float64 `json:"volatility"`
}

// SimulationUnits maps the supported time units to a number of days.
var SimulationUnits = map[string]int{
	"days":   1,
	"weeks":  7,
	"months": 30,
}

const MaxSimulationDays = 365
