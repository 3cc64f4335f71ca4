package integration_tests

import (
	"context"
	"sync"
	"testing"

	"portfoliosim/internal/db/models/postgres/public/model"
	"portfoliosim/internal/domain"
	l1_service "portfoliosim/internal/service/l1"
	"portfoliosim/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func Test_buyThenSellEverything(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	portfolio := e.seedPortfolio(t, "10000")
	stock := e.seedStock(t, "50")

	bought, err := e.tradeService.Buy(ctx, l1_service.BuyInput{
		PortfolioID: portfolio.PortfolioID,
		StockID:     stock.StockID,
		Shares:      d("10"),
	})
	require.NoError(t, err)
	require.True(t, bought.NewBalance.Equal(d("9500")))
	require.True(t, bought.AveragePrice.Equal(d("50")))

	_, err = e.stockPriceRepository.AddMany(nil, []model.StockPrice{{
		StockID: stock.StockID,
		Date:    util.NewDate(2024, 1, 3),
		Price:   util.DecimalPointer(d("60")),
	}})
	require.NoError(t, err)

	sold, err := e.tradeService.Sell(ctx, l1_service.SellInput{
		PortfolioID: portfolio.PortfolioID,
		StockID:     stock.StockID,
		Shares:      d("10"),
	})
	require.NoError(t, err)
	require.True(t, sold.TotalIncome.Equal(d("600")))
	require.True(t, sold.HoldingDeleted)

	holding, err := e.holdingRepository.Get(nil, portfolio.PortfolioID, stock.StockID)
	require.NoError(t, err)
	require.Nil(t, holding)

	balance, err := e.portfolioService.GetBalance(ctx, portfolio.PortfolioID)
	require.NoError(t, err)
	require.True(t, balance.Balance.Equal(d("10100")), balance.Balance.String())
}

func Test_concurrentBuysNeverOverdraw(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	portfolio := e.seedPortfolio(t, "1000")
	stock := e.seedStock(t, "100")

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := e.tradeService.Buy(ctx, l1_service.BuyInput{
				PortfolioID: portfolio.PortfolioID,
				StockID:     stock.StockID,
				Shares:      d("1"),
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	succeeded, rejected := 0, 0
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		require.ErrorIs(t, err, domain.ErrInsufficientFunds)
		rejected++
	}
	require.Equal(t, 10, succeeded)
	require.Equal(t, 10, rejected)

	holding, err := e.holdingRepository.Get(nil, portfolio.PortfolioID, stock.StockID)
	require.NoError(t, err)
	require.True(t, holding.Shares.Equal(d("10")), holding.Shares.String())

	balance, err := e.portfolioService.GetBalance(ctx, portfolio.PortfolioID)
	require.NoError(t, err)
	require.True(t, balance.Balance.IsZero(), balance.Balance.String())
}

func Test_rebalanceExecutes(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	portfolio := e.seedPortfolio(t, "4000")
	a := e.seedStock(t, "100")
	b := e.seedStock(t, "100")

	for stock, shares := range map[uuid.UUID]string{a.StockID: "10", b.StockID: "30"} {
		_, err := e.tradeService.Buy(ctx, l1_service.BuyInput{
			PortfolioID: portfolio.PortfolioID,
			StockID:     stock,
			Shares:      d(shares),
		})
		require.NoError(t, err)
	}

	ids := e.allocationIDs(t, portfolio.PortfolioID)
	_, err := e.allocationService.UpdateAllocations(ctx, portfolio.PortfolioID, map[uuid.UUID]string{
		ids[a.StockID]: "50",
		ids[b.StockID]: "50",
	})
	require.NoError(t, err)

	preview, err := e.rebalanceService.Preview(ctx, portfolio.PortfolioID)
	require.NoError(t, err)
	require.False(t, preview.Executed)

	result, err := e.rebalanceService.Execute(ctx, portfolio.PortfolioID)
	require.NoError(t, err)
	require.Equal(t, 2, result.NumLegs)
	require.True(t, result.NewBalance.IsZero(), result.NewBalance.String())

	snapshot, err := e.portfolioService.GetSnapshot(ctx, portfolio.PortfolioID)
	require.NoError(t, err)
	require.Len(t, snapshot.Holdings, 2)
	for _, h := range snapshot.Holdings {
		require.True(t, h.Shares.Equal(d("20")), h.Symbol+" "+h.Shares.String())
		require.True(t, h.Percentage.Equal(d("50")))
	}
}

func Test_updateAllocationsIsAllOrNothing(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	portfolio := e.seedPortfolio(t, "100")
	a := e.seedStock(t, "10")
	b := e.seedStock(t, "10")

	// buying creates the allocation rows at 0%
	for _, stock := range []model.Stock{a, b} {
		_, err := e.tradeService.Buy(ctx, l1_service.BuyInput{
			PortfolioID: portfolio.PortfolioID,
			StockID:     stock.StockID,
			Shares:      d("1"),
		})
		require.NoError(t, err)
	}
	ids := e.allocationIDs(t, portfolio.PortfolioID)

	_, err := e.allocationService.UpdateAllocations(ctx, portfolio.PortfolioID, map[uuid.UUID]string{
		ids[a.StockID]: "70",
		ids[b.StockID]: "30",
	})
	require.NoError(t, err)

	_, err = e.allocationService.UpdateAllocations(ctx, portfolio.PortfolioID, map[uuid.UUID]string{
		ids[a.StockID]: "60",
		ids[b.StockID]: "30",
	})
	require.ErrorIs(t, err, domain.ErrAllocationSumMismatch)

	allocations, err := e.allocationService.ListAllocations(ctx, portfolio.PortfolioID)
	require.NoError(t, err)
	got := map[uuid.UUID]string{}
	for _, al := range allocations {
		got[al.StockID] = al.TargetPercent.String()
	}
	require.Equal(t, "", cmp.Diff(map[uuid.UUID]string{a.StockID: "70", b.StockID: "30"}, got))
}

func Test_stockPriceRepository(t *testing.T) {
	e := newTestEnv(t)
	stock := e.seedStock(t, "10")

	inserted, err := e.stockPriceRepository.AddMany(nil, []model.StockPrice{
		{StockID: stock.StockID, Date: util.NewDate(2024, 1, 2), Price: util.DecimalPointer(d("99"))},
		{StockID: stock.StockID, Date: util.NewDate(2024, 1, 3), Price: util.DecimalPointer(d("11"))},
		{StockID: stock.StockID, Date: util.NewDate(2024, 1, 4)},
	})
	require.NoError(t, err)
	require.Equal(t, int64(2), inserted)

	rows, err := e.stockPriceRepository.List(nil, stock.StockID, util.NewDate(2024, 1, 1), util.NewDate(2024, 1, 3))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "", cmp.Diff(d("10"), *rows[0].Price, decimalComparer))

	latest, err := e.stockPriceRepository.GetLatest(nil, stock.StockID)
	require.NoError(t, err)
	require.Equal(t, util.NewDate(2024, 1, 4), latest.Date.UTC())
	require.Nil(t, latest.Price)
}
