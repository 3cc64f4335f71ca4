package l1_service

import (
	"context"
	"math"
	"testing"
	"time"

	"portfoliosim/internal/db/models/postgres/public/model"
	mock_repository "portfoliosim/internal/repository/mocks"
	"portfoliosim/internal/util"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_computePriceStats(t *testing.T) {
	t.Run("no prices", func(t *testing.T) {
		out, err := computePriceStats(nil)
		require.NoError(t, err)
		require.Nil(t, out)
	})

	t.Run("summarises in order", func(t *testing.T) {
		out, err := computePriceStats([]decimal.Decimal{d("100"), d("110"), d("99")})
		require.NoError(t, err)

		require.Equal(t, 99.0, out.CurrentPrice)
		require.Equal(t, 110.0, out.MaxPrice)
		require.Equal(t, 99.0, out.MinPrice)
		require.InDelta(t, 103.0, out.AvgPrice, 1e-9)
		require.Equal(t, -1.0, out.Change)
		require.InDelta(t, -1.0, out.ChangePercent, 1e-9)

		// returns are +10% and -10%
		require.InDelta(t, math.Sqrt(200), out.Volatility, 1e-9)
	})

	t.Run("single price has no volatility", func(t *testing.T) {
		out, err := computePriceStats([]decimal.Decimal{d("42")})
		require.NoError(t, err)
		require.Equal(t, 0.0, out.Volatility)
		require.Equal(t, 0.0, out.Change)
	})
}

func Test_priceServiceHandler_GetPriceHistory(t *testing.T) {
	setup := func(t *testing.T) (priceServiceHandler, *mock_repository.MockStockPriceRepository, model.Stock) {
		ctrl := gomock.NewController(t)
		stockRepository := mock_repository.NewMockStockRepository(ctrl)
		stockPriceRepository := mock_repository.NewMockStockPriceRepository(ctrl)
		handler := priceServiceHandler{
			StockRepository:      stockRepository,
			StockPriceRepository: stockPriceRepository,
			Now: func() time.Time {
				return time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC)
			},
		}
		stock := model.Stock{StockID: uuid.New(), Symbol: "AAPL"}
		stockRepository.EXPECT().Get(nil, stock.StockID).Return(&stock, nil)
		return handler, stockPriceRepository, stock
	}

	t.Run("defaults to the 30 days before the latest price", func(t *testing.T) {
		handler, stockPriceRepository, stock := setup(t)
		start, end := util.NewDate(2024, 3, 1), util.NewDate(2024, 3, 31)

		stockPriceRepository.EXPECT().GetLatest(nil, stock.StockID).Return(&model.StockPrice{
			StockID: stock.StockID,
			Date:    end,
			Price:   util.DecimalPointer(d("12")),
		}, nil)
		stockPriceRepository.EXPECT().List(nil, stock.StockID, start, end).Return([]model.StockPrice{
			{StockID: stock.StockID, Date: util.NewDate(2024, 3, 29), Price: util.DecimalPointer(d("10")), Volume: util.Int64Pointer(100)},
			{StockID: stock.StockID, Date: util.NewDate(2024, 3, 30)},
			{StockID: stock.StockID, Date: end, Price: util.DecimalPointer(d("12")), Volume: util.Int64Pointer(200)},
		}, nil)

		history, err := handler.GetPriceHistory(context.Background(), stock.StockID, nil, nil)
		require.NoError(t, err)
		require.Equal(t, start, history.Start)
		require.Equal(t, end, history.End)
		require.Equal(t, 3, history.DataPoints)
		require.Nil(t, history.Points[1].Price)
		require.Equal(t, 12.0, history.Stats.CurrentPrice)
		require.InDelta(t, 20.0, history.Stats.ChangePercent, 1e-9)
	})

	t.Run("no prices falls back to today", func(t *testing.T) {
		handler, stockPriceRepository, stock := setup(t)
		end := util.NewDate(2024, 6, 1)

		stockPriceRepository.EXPECT().GetLatest(nil, stock.StockID).Return(nil, nil)
		stockPriceRepository.EXPECT().List(nil, stock.StockID, util.NewDate(2024, 5, 2), end).Return([]model.StockPrice{}, nil)

		history, err := handler.GetPriceHistory(context.Background(), stock.StockID, nil, nil)
		require.NoError(t, err)
		require.Equal(t, 0, history.DataPoints)
		require.Nil(t, history.Stats)
	})

	t.Run("explicit range", func(t *testing.T) {
		handler, stockPriceRepository, stock := setup(t)
		start, end := util.NewDate(2023, 1, 1), util.NewDate(2023, 12, 31)

		stockPriceRepository.EXPECT().List(nil, stock.StockID, start, end).Return([]model.StockPrice{}, nil)

		history, err := handler.GetPriceHistory(context.Background(), stock.StockID, &start, &end)
		require.NoError(t, err)
		require.Equal(t, start, history.Start)
		require.Equal(t, end, history.End)
	})
}
