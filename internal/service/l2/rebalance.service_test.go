package l2_service

import (
	"context"
	"testing"

	"portfoliosim/internal/db/models/postgres/public/model"
	"portfoliosim/internal/domain"
	"portfoliosim/internal/repository"
	mock_repository "portfoliosim/internal/repository/mocks"
	l1_service "portfoliosim/internal/service/l1"
	mock_l1_service "portfoliosim/internal/service/l1/mocks"
	"portfoliosim/internal/util"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type rebalanceFixture struct {
	handler             rebalanceServiceHandler
	portfolioRepository *mock_repository.MockPortfolioRepository
	portfolioService    *mock_l1_service.MockPortfolioService
	allocationService   *mock_l1_service.MockAllocationService
	tradeService        *mock_l1_service.MockTradeService

	portfolioID uuid.UUID
	aapl        uuid.UUID
	goog        uuid.UUID
}

func newRebalanceFixture(t *testing.T) rebalanceFixture {
	ctrl := gomock.NewController(t)
	txRunner := mock_repository.NewMockTxRunner(ctrl)
	txRunner.EXPECT().
		RunInTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(tx repository.DB) error) error {
			return fn(nil)
		}).
		AnyTimes()

	f := rebalanceFixture{
		portfolioRepository: mock_repository.NewMockPortfolioRepository(ctrl),
		portfolioService:    mock_l1_service.NewMockPortfolioService(ctrl),
		allocationService:   mock_l1_service.NewMockAllocationService(ctrl),
		tradeService:        mock_l1_service.NewMockTradeService(ctrl),
		portfolioID:         uuid.New(),
		aapl:                uuid.New(),
		goog:                uuid.New(),
	}
	f.handler = rebalanceServiceHandler{
		TxRunner:            txRunner,
		PortfolioRepository: f.portfolioRepository,
		PortfolioService:    f.portfolioService,
		AllocationService:   f.allocationService,
		TradeService:        f.tradeService,
	}
	return f
}

// expectState sets up a portfolio holding 10 AAPL and 30 GOOG at the given
// prices, targeting 50/50.
func (f rebalanceFixture) expectState(cash string, aaplPrice, googPrice *decimal.Decimal, locked bool) {
	portfolio := &model.Portfolio{PortfolioID: f.portfolioID, CashBalance: d(cash)}
	if locked {
		f.portfolioRepository.EXPECT().GetForUpdate(nil, f.portfolioID).Return(portfolio, nil)
	} else {
		f.portfolioRepository.EXPECT().Get(nil, f.portfolioID).Return(portfolio, nil)
	}
	f.portfolioService.EXPECT().GetPositions(nil, f.portfolioID).Return([]domain.Position{
		{StockID: f.aapl, Symbol: "AAPL", Shares: d("10"), LatestPrice: aaplPrice},
		{StockID: f.goog, Symbol: "GOOG", Shares: d("30"), LatestPrice: googPrice},
	}, nil)
	f.allocationService.EXPECT().ListAllocationsTx(nil, f.portfolioID).Return([]domain.Allocation{
		{StockID: f.aapl, Symbol: "AAPL", TargetPercent: d("50")},
		{StockID: f.goog, Symbol: "GOOG", TargetPercent: d("50")},
	}, nil)
}

func Test_rebalanceServiceHandler_Preview(t *testing.T) {
	f := newRebalanceFixture(t)
	f.expectState("0", util.DecimalPointer(d("100")), util.DecimalPointer(d("100")), false)

	result, err := f.handler.Preview(context.Background(), f.portfolioID)
	require.NoError(t, err)
	require.False(t, result.Executed)
	require.Empty(t, result.Operations)
	require.True(t, result.Report.TotalInvested.Equal(d("4000")))
	require.True(t, result.Report.Holdings[0].SharesToTrade.Equal(d("10")))
	require.True(t, result.Report.Holdings[1].SharesToTrade.Equal(d("-10")))
	require.Len(t, result.Report.Allocations, 2)
}

func Test_rebalanceServiceHandler_Execute(t *testing.T) {
	t.Run("sells run before buys", func(t *testing.T) {
		f := newRebalanceFixture(t)
		f.expectState("0", util.DecimalPointer(d("100")), util.DecimalPointer(d("100")), true)

		gomock.InOrder(
			f.tradeService.EXPECT().
				SellTx(gomock.Any(), nil, gomock.Any()).
				DoAndReturn(func(ctx context.Context, tx repository.DB, input l1_service.SellInput) (*l1_service.SellResult, error) {
					require.Equal(t, f.goog, input.StockID)
					require.True(t, input.Shares.Equal(d("10")))
					return &l1_service.SellResult{
						Symbol:      "GOOG",
						Shares:      input.Shares,
						Price:       d("100"),
						TotalIncome: d("1000"),
						NewBalance:  d("1000"),
					}, nil
				}),
			f.tradeService.EXPECT().
				BuyTx(gomock.Any(), nil, gomock.Any()).
				DoAndReturn(func(ctx context.Context, tx repository.DB, input l1_service.BuyInput) (*l1_service.BuyResult, error) {
					require.Equal(t, f.aapl, input.StockID)
					require.True(t, input.Shares.Equal(d("10")))
					return &l1_service.BuyResult{
						Symbol:     "AAPL",
						Shares:     input.Shares,
						Price:      d("100"),
						TotalCost:  d("1000"),
						NewBalance: d("0"),
					}, nil
				}),
		)

		result, err := f.handler.Execute(context.Background(), f.portfolioID)
		require.NoError(t, err)
		require.True(t, result.Executed)
		require.Equal(t, 2, result.NumLegs)
		require.True(t, result.TotalSold.Equal(d("1000")))
		require.True(t, result.TotalBought.Equal(d("1000")))
		require.True(t, result.NewBalance.IsZero())
		require.Equal(t, []string{
			"Sold 10.0000 shares of GOOG at $100.00 = $1,000.00",
			"Bought 10.0000 shares of AAPL at $100.00 = $1,000.00",
		}, result.Operations)
	})

	t.Run("insufficient funds runs no legs", func(t *testing.T) {
		f := newRebalanceFixture(t)
		// cent rounding leaves the GOOG proceeds just short of the AAPL cost
		f.portfolioRepository.EXPECT().GetForUpdate(nil, f.portfolioID).Return(&model.Portfolio{
			PortfolioID: f.portfolioID,
			CashBalance: d("0"),
		}, nil)
		f.portfolioService.EXPECT().GetPositions(nil, f.portfolioID).Return([]domain.Position{
			{StockID: f.aapl, Symbol: "AAPL", Shares: d("0.00000001"), LatestPrice: util.DecimalPointer(d("100"))},
			{StockID: f.goog, Symbol: "GOOG", Shares: d("2000"), LatestPrice: util.DecimalPointer(d("0.01"))},
		}, nil)
		f.allocationService.EXPECT().ListAllocationsTx(nil, f.portfolioID).Return([]domain.Allocation{
			{StockID: f.aapl, TargetPercent: d("50")},
			{StockID: f.goog, TargetPercent: d("50")},
		}, nil)

		_, err := f.handler.Execute(context.Background(), f.portfolioID)
		require.ErrorIs(t, err, domain.ErrInsufficientFunds)
	})

	t.Run("missing price aborts", func(t *testing.T) {
		f := newRebalanceFixture(t)
		f.expectState("0", util.DecimalPointer(d("100")), nil, true)

		_, err := f.handler.Execute(context.Background(), f.portfolioID)
		require.ErrorIs(t, err, domain.ErrNoPriceAvailable)
		require.ErrorContains(t, err, "GOOG")
	})

	t.Run("failed leg names the symbol and keeps the cause", func(t *testing.T) {
		f := newRebalanceFixture(t)
		f.expectState("0", util.DecimalPointer(d("100")), util.DecimalPointer(d("100")), true)
		f.tradeService.EXPECT().
			SellTx(gomock.Any(), nil, gomock.Any()).
			Return(nil, domain.ErrInsufficientShares)

		_, err := f.handler.Execute(context.Background(), f.portfolioID)
		require.ErrorIs(t, err, domain.ErrInsufficientShares)
		require.ErrorContains(t, err, "failed to sell GOOG")
	})

	t.Run("balanced portfolio has nothing to do", func(t *testing.T) {
		f := newRebalanceFixture(t)
		f.expectState("5", util.DecimalPointer(d("300")), util.DecimalPointer(d("100")), true)

		result, err := f.handler.Execute(context.Background(), f.portfolioID)
		require.NoError(t, err)
		require.Equal(t, 0, result.NumLegs)
		require.True(t, result.NewBalance.Equal(d("5")))
	})
}
