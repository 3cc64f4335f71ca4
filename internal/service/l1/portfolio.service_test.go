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

func Test_portfolioServiceHandler_GetSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	portfolioRepository := mock_repository.NewMockPortfolioRepository(ctrl)
	holdingRepository := mock_repository.NewMockHoldingRepository(ctrl)
	stockPriceRepository := mock_repository.NewMockStockPriceRepository(ctrl)
	handler := portfolioServiceHandler{
		PortfolioRepository:  portfolioRepository,
		HoldingRepository:    holdingRepository,
		StockPriceRepository: stockPriceRepository,
	}

	portfolioID := uuid.New()
	aapl := model.Stock{StockID: uuid.New(), Symbol: "AAPL", Name: "Apple Inc."}
	goog := model.Stock{StockID: uuid.New(), Symbol: "GOOG", Name: "Alphabet Inc."}
	meta := model.Stock{StockID: uuid.New(), Symbol: "META", Name: "Meta Platforms"}

	portfolioRepository.EXPECT().Get(nil, portfolioID).Return(&model.Portfolio{
		PortfolioID: portfolioID,
		CashBalance: d("250"),
	}, nil)
	holdingRepository.EXPECT().ListPositions(nil, portfolioID).Return([]repository.HoldingWithStock{
		{Holding: model.Holding{HoldingID: uuid.New(), StockID: aapl.StockID, Shares: d("10"), AveragePrice: d("90")}, Stock: aapl},
		{Holding: model.Holding{HoldingID: uuid.New(), StockID: goog.StockID, Shares: d("1"), AveragePrice: d("100")}, Stock: goog},
		{Holding: model.Holding{HoldingID: uuid.New(), StockID: meta.StockID, Shares: d("3"), AveragePrice: d("10")}, Stock: meta},
	}, nil)
	stockPriceRepository.EXPECT().
		GetLatestMany(nil, []uuid.UUID{aapl.StockID, goog.StockID, meta.StockID}).
		Return(map[uuid.UUID]model.StockPrice{
			aapl.StockID: {StockID: aapl.StockID, Price: util.DecimalPointer(d("100"))},
			goog.StockID: {StockID: goog.StockID, Price: util.DecimalPointer(d("3000"))},
			meta.StockID: {StockID: meta.StockID},
		}, nil)

	snapshot, err := handler.GetSnapshot(context.Background(), portfolioID)
	require.NoError(t, err)

	require.True(t, snapshot.TotalValue.Equal(d("4000")))
	require.Len(t, snapshot.Holdings, 3)

	require.Equal(t, "AAPL", snapshot.Holdings[0].Symbol)
	require.True(t, snapshot.Holdings[0].Value.Equal(d("1000")))
	require.True(t, snapshot.Holdings[0].Percentage.Equal(d("25")))
	require.True(t, snapshot.Holdings[1].Percentage.Equal(d("75")))

	require.Nil(t, snapshot.Holdings[2].CurrentPrice)
	require.True(t, snapshot.Holdings[2].Value.IsZero())
	require.True(t, snapshot.Holdings[2].Percentage.IsZero())
}

func Test_portfolioServiceHandler_AddFunds(t *testing.T) {
	t.Run("credits rounded amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		portfolioRepository := mock_repository.NewMockPortfolioRepository(ctrl)
		handler := portfolioServiceHandler{
			TxRunner:            newTxRunner(ctrl),
			PortfolioRepository: portfolioRepository,
		}

		portfolioID := uuid.New()
		portfolioRepository.EXPECT().GetForUpdate(nil, portfolioID).Return(&model.Portfolio{
			PortfolioID: portfolioID,
			CashBalance: d("100"),
		}, nil)
		portfolioRepository.EXPECT().UpdateCashBalance(nil, portfolioID, eqDecimal("350.51"))

		out, err := handler.AddFunds(context.Background(), portfolioID, d("250.505"))
		require.NoError(t, err)
		require.True(t, out.CashBalance.Equal(d("350.51")))
	})

	t.Run("rejects amounts that round to zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler := portfolioServiceHandler{
			TxRunner:            newTxRunner(ctrl),
			PortfolioRepository: mock_repository.NewMockPortfolioRepository(ctrl),
		}

		for _, amount := range []string{"0", "-5", "0.004"} {
			_, err := handler.AddFunds(context.Background(), uuid.New(), d(amount))
			require.ErrorIs(t, err, domain.ErrInvalidAmount, amount)
		}
	})
}

func Test_portfolioServiceHandler_GetBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	portfolioRepository := mock_repository.NewMockPortfolioRepository(ctrl)
	handler := portfolioServiceHandler{PortfolioRepository: portfolioRepository}

	portfolioID := uuid.New()
	portfolioRepository.EXPECT().Get(nil, portfolioID).Return(&model.Portfolio{
		PortfolioID: portfolioID,
		Name:        "admin1's portfolio",
		CashBalance: d("12.34"),
	}, nil)

	balance, err := handler.GetBalance(context.Background(), portfolioID)
	require.NoError(t, err)
	require.Equal(t, "admin1's portfolio", balance.Name)
	require.True(t, balance.Balance.Equal(d("12.34")))
}
