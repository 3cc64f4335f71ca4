package l1_service

import (
	"context"
	"testing"

	"portfoliosim/internal/db/models/postgres/public/model"
	"portfoliosim/internal/domain"
	"portfoliosim/internal/repository"
	mock_repository "portfoliosim/internal/repository/mocks"
	"portfoliosim/internal/util"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type tradeFixture struct {
	handler                    tradeServiceHandler
	portfolioRepository        *mock_repository.MockPortfolioRepository
	stockRepository            *mock_repository.MockStockRepository
	holdingRepository          *mock_repository.MockHoldingRepository
	targetAllocationRepository *mock_repository.MockTargetAllocationRepository
	stockPriceRepository       *mock_repository.MockStockPriceRepository

	portfolioID uuid.UUID
	stock       model.Stock
}

func newTradeFixture(t *testing.T) tradeFixture {
	ctrl := gomock.NewController(t)
	f := tradeFixture{
		portfolioRepository:        mock_repository.NewMockPortfolioRepository(ctrl),
		stockRepository:            mock_repository.NewMockStockRepository(ctrl),
		holdingRepository:          mock_repository.NewMockHoldingRepository(ctrl),
		targetAllocationRepository: mock_repository.NewMockTargetAllocationRepository(ctrl),
		stockPriceRepository:       mock_repository.NewMockStockPriceRepository(ctrl),
		portfolioID:                uuid.New(),
		stock: model.Stock{
			StockID: uuid.New(),
			Symbol:  "AAPL",
			Name:    "Apple Inc.",
		},
	}
	f.handler = tradeServiceHandler{
		TxRunner:                   newTxRunner(ctrl),
		PortfolioRepository:        f.portfolioRepository,
		StockRepository:            f.stockRepository,
		HoldingRepository:          f.holdingRepository,
		TargetAllocationRepository: f.targetAllocationRepository,
		StockPriceRepository:       f.stockPriceRepository,
	}
	return f
}

// expectPortfolio sets up the locked read and the read inside the trade.
func (f tradeFixture) expectPortfolio(cash string) {
	portfolio := &model.Portfolio{
		PortfolioID: f.portfolioID,
		Name:        "admin1's portfolio",
		CashBalance: d(cash),
	}
	f.portfolioRepository.EXPECT().GetForUpdate(nil, f.portfolioID).Return(portfolio, nil)
	f.portfolioRepository.EXPECT().Get(nil, f.portfolioID).Return(portfolio, nil)
	f.stockRepository.EXPECT().Get(nil, f.stock.StockID).Return(&f.stock, nil)
}

func (f tradeFixture) expectPrice(price string) {
	f.stockPriceRepository.EXPECT().GetLatest(nil, f.stock.StockID).Return(&model.StockPrice{
		StockID: f.stock.StockID,
		Date:    util.NewDate(2024, 1, 2),
		Price:   util.DecimalPointer(d(price)),
	}, nil)
}

func Test_tradeServiceHandler_Buy(t *testing.T) {
	t.Run("first buy creates holding and allocation", func(t *testing.T) {
		f := newTradeFixture(t)
		f.expectPortfolio("10000")
		f.expectPrice("50")

		var upserted model.Holding
		f.holdingRepository.EXPECT().Get(nil, f.portfolioID, f.stock.StockID).Return(nil, nil)
		f.holdingRepository.EXPECT().
			Upsert(nil, gomock.Any()).
			DoAndReturn(func(tx repository.DB, h model.Holding) (*model.Holding, error) {
				upserted = h
				return &h, nil
			})
		f.targetAllocationRepository.EXPECT().
			GetOrCreate(nil, f.portfolioID, f.stock.StockID).
			Return(&model.TargetAllocation{}, nil)
		f.portfolioRepository.EXPECT().UpdateCashBalance(nil, f.portfolioID, eqDecimal("9500"))

		result, err := f.handler.Buy(context.Background(), BuyInput{
			PortfolioID: f.portfolioID,
			StockID:     f.stock.StockID,
			Shares:      d("10"),
		})
		require.NoError(t, err)

		require.Equal(t, "AAPL", result.Symbol)
		require.True(t, result.TotalCost.Equal(d("500")))
		require.True(t, result.NewBalance.Equal(d("9500")))
		require.True(t, result.TotalShares.Equal(d("10")))
		require.True(t, result.AveragePrice.Equal(d("50")))

		require.Equal(t, f.portfolioID, upserted.PortfolioID)
		require.True(t, upserted.Shares.Equal(d("10")))
		require.True(t, upserted.AveragePrice.Equal(d("50")))
	})

	t.Run("buying more averages the cost basis", func(t *testing.T) {
		f := newTradeFixture(t)
		f.expectPortfolio("1000")
		f.expectPrice("60")

		var upserted model.Holding
		f.holdingRepository.EXPECT().Get(nil, f.portfolioID, f.stock.StockID).Return(&model.Holding{
			HoldingID:    uuid.New(),
			PortfolioID:  f.portfolioID,
			StockID:      f.stock.StockID,
			Shares:       d("10"),
			AveragePrice: d("50"),
		}, nil)
		f.holdingRepository.EXPECT().
			Upsert(nil, gomock.Any()).
			DoAndReturn(func(tx repository.DB, h model.Holding) (*model.Holding, error) {
				upserted = h
				return &h, nil
			})
		f.targetAllocationRepository.EXPECT().GetOrCreate(nil, f.portfolioID, f.stock.StockID).Return(&model.TargetAllocation{}, nil)
		f.portfolioRepository.EXPECT().UpdateCashBalance(nil, f.portfolioID, eqDecimal("700"))

		result, err := f.handler.Buy(context.Background(), BuyInput{
			PortfolioID: f.portfolioID,
			StockID:     f.stock.StockID,
			Shares:      d("5"),
		})
		require.NoError(t, err)
		require.True(t, result.TotalShares.Equal(d("15")))
		require.True(t, result.AveragePrice.Equal(d("53.33333333")), result.AveragePrice.String())
		require.True(t, upserted.Shares.Equal(d("15")))
		require.True(t, upserted.AveragePrice.Equal(d("53.33333333")))
	})

	t.Run("fractional cost rounds up to the cent", func(t *testing.T) {
		f := newTradeFixture(t)
		f.expectPortfolio("10")
		f.expectPrice("3.333")

		f.holdingRepository.EXPECT().Get(nil, f.portfolioID, f.stock.StockID).Return(nil, nil)
		f.holdingRepository.EXPECT().Upsert(nil, gomock.Any()).Return(&model.Holding{}, nil)
		f.targetAllocationRepository.EXPECT().GetOrCreate(nil, f.portfolioID, f.stock.StockID).Return(&model.TargetAllocation{}, nil)
		f.portfolioRepository.EXPECT().UpdateCashBalance(nil, f.portfolioID, eqDecimal("6.66"))

		result, err := f.handler.Buy(context.Background(), BuyInput{
			PortfolioID: f.portfolioID,
			StockID:     f.stock.StockID,
			Shares:      d("1"),
		})
		require.NoError(t, err)
		require.True(t, result.TotalCost.Equal(d("3.34")))
	})

	t.Run("insufficient funds writes nothing", func(t *testing.T) {
		f := newTradeFixture(t)
		f.expectPortfolio("100")
		f.expectPrice("50")

		_, err := f.handler.Buy(context.Background(), BuyInput{
			PortfolioID: f.portfolioID,
			StockID:     f.stock.StockID,
			Shares:      d("10"),
		})
		require.ErrorIs(t, err, domain.ErrInsufficientFunds)
		require.ErrorContains(t, err, "$500.00")
		require.ErrorContains(t, err, "$100.00")
	})

	t.Run("missing or null price", func(t *testing.T) {
		f := newTradeFixture(t)
		f.expectPortfolio("100")
		f.stockPriceRepository.EXPECT().GetLatest(nil, f.stock.StockID).Return(&model.StockPrice{
			StockID: f.stock.StockID,
			Date:    util.NewDate(2024, 1, 2),
		}, nil)

		_, err := f.handler.Buy(context.Background(), BuyInput{
			PortfolioID: f.portfolioID,
			StockID:     f.stock.StockID,
			Shares:      d("1"),
		})
		require.ErrorIs(t, err, domain.ErrNoPriceAvailable)
		require.ErrorContains(t, err, "AAPL")

		f = newTradeFixture(t)
		f.expectPortfolio("100")
		f.stockPriceRepository.EXPECT().GetLatest(nil, f.stock.StockID).Return(nil, nil)

		_, err = f.handler.Buy(context.Background(), BuyInput{
			PortfolioID: f.portfolioID,
			StockID:     f.stock.StockID,
			Shares:      d("1"),
		})
		require.ErrorIs(t, err, domain.ErrNoPriceAvailable)
	})

	t.Run("non positive shares rejected before any read", func(t *testing.T) {
		f := newTradeFixture(t)
		for _, shares := range []string{"0", "-1", "0.000000001"} {
			_, err := f.handler.Buy(context.Background(), BuyInput{
				PortfolioID: f.portfolioID,
				StockID:     f.stock.StockID,
				Shares:      d(shares),
			})
			require.ErrorIs(t, err, domain.ErrInvalidInput, shares)
		}
	})

	t.Run("unknown portfolio", func(t *testing.T) {
		f := newTradeFixture(t)
		f.portfolioRepository.EXPECT().GetForUpdate(nil, f.portfolioID).Return(nil, domain.ErrNotFound)

		_, err := f.handler.Buy(context.Background(), BuyInput{
			PortfolioID: f.portfolioID,
			StockID:     f.stock.StockID,
			Shares:      d("1"),
		})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func Test_tradeServiceHandler_Sell(t *testing.T) {
	t.Run("selling everything deletes the holding", func(t *testing.T) {
		f := newTradeFixture(t)
		f.expectPortfolio("9500")
		f.expectPrice("60")

		holdingID := uuid.New()
		f.holdingRepository.EXPECT().Get(nil, f.portfolioID, f.stock.StockID).Return(&model.Holding{
			HoldingID:    holdingID,
			Shares:       d("10"),
			AveragePrice: d("50"),
		}, nil)
		f.holdingRepository.EXPECT().Delete(nil, holdingID)
		f.portfolioRepository.EXPECT().UpdateCashBalance(nil, f.portfolioID, eqDecimal("10100"))

		result, err := f.handler.Sell(context.Background(), SellInput{
			PortfolioID: f.portfolioID,
			StockID:     f.stock.StockID,
			Shares:      d("10"),
		})
		require.NoError(t, err)
		require.True(t, result.TotalIncome.Equal(d("600")))
		require.True(t, result.NewBalance.Equal(d("10100")))
		require.True(t, result.RemainingShares.IsZero())
		require.True(t, result.HoldingDeleted)
	})

	t.Run("partial sale keeps the average price", func(t *testing.T) {
		f := newTradeFixture(t)
		f.expectPortfolio("0")
		f.expectPrice("60")

		holdingID := uuid.New()
		f.holdingRepository.EXPECT().Get(nil, f.portfolioID, f.stock.StockID).Return(&model.Holding{
			HoldingID:    holdingID,
			Shares:       d("10"),
			AveragePrice: d("50"),
		}, nil)
		f.holdingRepository.EXPECT().UpdateShares(nil, holdingID, eqDecimal("6"))
		f.portfolioRepository.EXPECT().UpdateCashBalance(nil, f.portfolioID, eqDecimal("240"))

		result, err := f.handler.Sell(context.Background(), SellInput{
			PortfolioID: f.portfolioID,
			StockID:     f.stock.StockID,
			Shares:      d("4"),
		})
		require.NoError(t, err)
		require.False(t, result.HoldingDeleted)
		require.True(t, result.RemainingShares.Equal(d("6")))
	})

	t.Run("dust remainder is removed", func(t *testing.T) {
		f := newTradeFixture(t)
		f.expectPortfolio("0")
		f.expectPrice("1")

		holdingID := uuid.New()
		f.holdingRepository.EXPECT().Get(nil, f.portfolioID, f.stock.StockID).Return(&model.Holding{
			HoldingID: holdingID,
			Shares:    d("1.00005"),
		}, nil)
		f.holdingRepository.EXPECT().Delete(nil, holdingID)
		f.portfolioRepository.EXPECT().UpdateCashBalance(nil, f.portfolioID, eqDecimal("1"))

		result, err := f.handler.Sell(context.Background(), SellInput{
			PortfolioID: f.portfolioID,
			StockID:     f.stock.StockID,
			Shares:      d("1"),
		})
		require.NoError(t, err)
		require.True(t, result.HoldingDeleted)
	})

	t.Run("cannot sell more than held", func(t *testing.T) {
		f := newTradeFixture(t)
		f.expectPortfolio("0")
		f.holdingRepository.EXPECT().Get(nil, f.portfolioID, f.stock.StockID).Return(&model.Holding{
			HoldingID: uuid.New(),
			Shares:    d("10"),
		}, nil)

		_, err := f.handler.Sell(context.Background(), SellInput{
			PortfolioID: f.portfolioID,
			StockID:     f.stock.StockID,
			Shares:      d("11"),
		})
		require.ErrorIs(t, err, domain.ErrInsufficientShares)
		require.ErrorContains(t, err, "only 10 available")
	})

	t.Run("no holding", func(t *testing.T) {
		f := newTradeFixture(t)
		f.expectPortfolio("0")
		f.holdingRepository.EXPECT().Get(nil, f.portfolioID, f.stock.StockID).Return(nil, nil)

		_, err := f.handler.Sell(context.Background(), SellInput{
			PortfolioID: f.portfolioID,
			StockID:     f.stock.StockID,
			Shares:      d("1"),
		})
		require.ErrorIs(t, err, domain.ErrNoHolding)
	})

	t.Run("zero shares", func(t *testing.T) {
		f := newTradeFixture(t)
		_, err := f.handler.Sell(context.Background(), SellInput{
			PortfolioID: f.portfolioID,
			StockID:     f.stock.StockID,
			Shares:      d("0"),
		})
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
