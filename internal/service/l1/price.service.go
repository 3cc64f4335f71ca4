package l1_service

import (
	"context"
	"fmt"
	"time"

	"portfoliosim/internal/db/models/postgres/public/model"
	"portfoliosim/internal/domain"
	"portfoliosim/internal/repository"
	"portfoliosim/internal/util"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=price.service.go -destination=mocks/mock_price.service.go

const defaultHistoryWindowDays = 30

type PriceService interface {
	ListStocks(ctx context.Context) ([]model.Stock, error)
	// GetPriceHistory returns the daily prices of a stock between start and
	// end inclusive. A nil end defaults to the stock's latest price date and
	// a nil start to 30 days before end.
	GetPriceHistory(ctx context.Context, stockID uuid.UUID, start, end *time.Time) (*PriceHistory, error)
}

type priceServiceHandler struct {
	StockRepository      repository.StockRepository
	StockPriceRepository repository.StockPriceRepository
	Now                  func() time.Time
}

func NewPriceService(stockRepository repository.StockRepository, stockPriceRepository repository.StockPriceRepository) PriceService {
	return priceServiceHandler{
		StockRepository:      stockRepository,
		StockPriceRepository: stockPriceRepository,
		Now:                  time.Now,
	}
}

type PriceHistory struct {
	Stock      model.Stock
	Start      time.Time
	End        time.Time
	Points     []domain.PricePoint
	Stats      *domain.PriceStats
	DataPoints int
}

func (h priceServiceHandler) ListStocks(ctx context.Context) ([]model.Stock, error) {
	return h.StockRepository.List(nil)
}

func (h priceServiceHandler) GetPriceHistory(ctx context.Context, stockID uuid.UUID, start, end *time.Time) (*PriceHistory, error) {
	stock, err := h.StockRepository.Get(nil, stockID)
	if err != nil {
		return nil, err
	}

	endDate := util.DateOf(h.Now())
	if end != nil {
		endDate = util.DateOf(*end)
	} else {
		latest, err := h.StockPriceRepository.GetLatest(nil, stockID)
		if err != nil {
			return nil, err
		}
		if latest != nil {
			endDate = util.DateOf(latest.Date)
		}
	}
	startDate := endDate.AddDate(0, 0, -defaultHistoryWindowDays)
	if start != nil {
		startDate = util.DateOf(*start)
	}

	rows, err := h.StockPriceRepository.List(nil, stockID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	points := make([]domain.PricePoint, 0, len(rows))
	prices := []decimal.Decimal{}
	for _, r := range rows {
		points = append(points, domain.PricePoint{
			StockID: r.StockID,
			Date:    r.Date,
			Price:   r.Price,
			Volume:  r.Volume,
		})
		if r.Price != nil {
			prices = append(prices, *r.Price)
		}
	}

	priceStats, err := computePriceStats(prices)
	if err != nil {
		return nil, fmt.Errorf("failed to compute price stats for %s: %w", stock.Symbol, err)
	}

	return &PriceHistory{
		Stock:      *stock,
		Start:      startDate,
		End:        endDate,
		Points:     points,
		Stats:      priceStats,
		DataPoints: len(points),
	}, nil
}

// computePriceStats summarises prices in date order. It returns nil when
// there are no prices.
func computePriceStats(prices []decimal.Decimal) (*domain.PriceStats, error) {
	if len(prices) == 0 {
		return nil, nil
	}

	dataset := make(stats.Float64Data, 0, len(prices))
	for _, p := range prices {
		dataset = append(dataset, p.InexactFloat64())
	}

	maxPrice, err := stats.Max(dataset)
	if err != nil {
		return nil, err
	}
	minPrice, err := stats.Min(dataset)
	if err != nil {
		return nil, err
	}
	mean, err := stats.Mean(dataset)
	if err != nil {
		return nil, err
	}

	first, last := prices[0], prices[len(prices)-1]
	change := last.Sub(first)
	changePercent := decimal.Zero
	if !first.IsZero() {
		changePercent = change.Mul(domain.OneHundred).Div(first)
	}

	returns := stats.Float64Data{}
	for i := 1; i < len(prices); i++ {
		if prices[i-1].IsZero() {
			continue
		}
		r := prices[i].Sub(prices[i-1]).Mul(domain.OneHundred).Div(prices[i-1])
		returns = append(returns, r.InexactFloat64())
	}
	volatility := 0.0
	if len(returns) > 1 {
		volatility, err = stats.StandardDeviationSample(returns)
		if err != nil {
			return nil, err
		}
	}

	return &domain.PriceStats{
		CurrentPrice:  last.InexactFloat64(),
		MaxPrice:      maxPrice,
		MinPrice:      minPrice,
		AvgPrice:      mean,
		Change:        change.InexactFloat64(),
		ChangePercent: changePercent.InexactFloat64(),
		Volatility:    volatility,
	}, nil
}
