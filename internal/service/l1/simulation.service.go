package l1_service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"portfoliosim/internal/db/models/postgres/public/model"
	"portfoliosim/internal/domain"
	"portfoliosim/internal/logger"
	"portfoliosim/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=simulation.service.go -destination=mocks/mock_simulation.service.go

const (
	maxDailyMove = 0.03
	minVolume    = int64(100_000)
	maxVolume    = int64(10_000_000)
)

// RandomSource is the subset of *rand.Rand the simulator draws from.
type RandomSource interface {
	Float64() float64
	Int64N(n int64) int64
}

// NewRandomSource returns a PCG generator. A zero seed picks one from the
// clock.
func NewRandomSource(seed uint64) RandomSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

type SimulationService interface {
	SimulateForward(ctx context.Context, amount int, unit string) (*SimulationResult, error)
}

type simulationServiceHandler struct {
	TxRunner             repository.TxRunner
	StockRepository      repository.StockRepository
	StockPriceRepository repository.StockPriceRepository

	mu     *sync.Mutex
	random RandomSource
}

func NewSimulationService(
	txRunner repository.TxRunner,
	stockRepository repository.StockRepository,
	stockPriceRepository repository.StockPriceRepository,
	random RandomSource,
) SimulationService {
	return simulationServiceHandler{
		TxRunner:             txRunner,
		StockRepository:      stockRepository,
		StockPriceRepository: stockPriceRepository,
		mu:                   &sync.Mutex{},
		random:               random,
	}
}

type SimulationResult struct {
	TotalDays       int
	StocksSimulated int
	PricesGenerated int
	PricesInserted  int64
}

// ValidateSimulationWindow converts amount and unit into a number of days.
func ValidateSimulationWindow(amount int, unit string) (int, error) {
	if amount < 1 || amount > domain.MaxSimulationDays {
		return 0, fmt.Errorf("%w: amount must be between 1 and %d, got %d", domain.ErrInvalidAmount, domain.MaxSimulationDays, amount)
	}
	multiplier, ok := domain.SimulationUnits[unit]
	if !ok {
		return 0, fmt.Errorf("%w: %q, expected days, weeks or months", domain.ErrInvalidUnit, unit)
	}
	totalDays := amount * multiplier
	if totalDays > domain.MaxSimulationDays {
		return 0, fmt.Errorf("%w: %d %s is %d days, maximum is %d", domain.ErrTooManyDays, amount, unit, totalDays, domain.MaxSimulationDays)
	}
	return totalDays, nil
}

func (h simulationServiceHandler) SimulateForward(ctx context.Context, amount int, unit string) (*SimulationResult, error) {
	totalDays, err := ValidateSimulationWindow(amount, unit)
	if err != nil {
		return nil, err
	}

	profile := domain.ProfileFromContext(ctx)
	result := &SimulationResult{TotalDays: totalDays}
	err = h.TxRunner.RunInTx(ctx, func(tx repository.DB) error {
		profile.StartNewSpan("loadLatestPrices")
		stocks, err := h.StockRepository.List(tx)
		if err != nil {
			return err
		}
		if len(stocks) == 0 {
			return domain.ErrNoStocksAvailable
		}

		stockIDs := make([]uuid.UUID, 0, len(stocks))
		for _, s := range stocks {
			stockIDs = append(stockIDs, s.StockID)
		}
		latest, err := h.StockPriceRepository.GetLatestMany(tx, stockIDs)
		if err != nil {
			return err
		}

		profile.StartNewSpan("randomWalk")
		rows := []model.StockPrice{}
		h.mu.Lock()
		for _, s := range stocks {
			last, ok := latest[s.StockID]
			if !ok || last.Price == nil {
				continue
			}
			rows = append(rows, h.walk(s.StockID, *last.Price, last.Date, totalDays)...)
			result.StocksSimulated++
		}
		h.mu.Unlock()

		if result.StocksSimulated == 0 {
			return domain.ErrNoPriceHistory
		}

		profile.StartNewSpan("insertPrices")
		result.PricesGenerated = len(rows)
		result.PricesInserted, err = h.StockPriceRepository.AddMany(tx, rows)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Infow(
		"simulated prices",
		"days", result.TotalDays,
		"stocks", result.StocksSimulated,
		"generated", result.PricesGenerated,
		"inserted", result.PricesInserted,
	)

	return result, nil
}

// walk generates one row per day after lastDate, each price moving by a
// uniform random fraction of at most 3% from the previous one.
func (h simulationServiceHandler) walk(stockID uuid.UUID, price decimal.Decimal, lastDate time.Time, days int) []model.StockPrice {
	out := make([]model.StockPrice, 0, days)
	for day := 1; day <= days; day++ {
		move := -maxDailyMove + 2*maxDailyMove*h.random.Float64()
		price = price.Mul(decimal.NewFromFloat(1 + move)).Round(domain.PriceScale)
		volume := minVolume + h.random.Int64N(maxVolume-minVolume+1)

		p := price
		out = append(out, model.StockPrice{
			StockID: stockID,
			Date:    lastDate.AddDate(0, 0, day),
			Price:   &p,
			Volume:  &volume,
		})
	}
	return out
}
