package integration_tests

import (
	"context"
	"database/sql"
	"os"
	"strings"
	"testing"
	"time"

	"portfoliosim/internal/db/models/postgres/public/model"
	"portfoliosim/internal/db/models/postgres/public/table"
	"portfoliosim/internal/repository"
	l1_service "portfoliosim/internal/service/l1"
	l2_service "portfoliosim/internal/service/l2"
	"portfoliosim/internal/util"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var decimalComparer = cmp.Comparer(func(d1, d2 decimal.Decimal) bool {
	return d1.Equal(d2)
})

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type testEnv struct {
	db                         *sql.DB
	portfolioRepository        repository.PortfolioRepository
	holdingRepository          repository.HoldingRepository
	stockPriceRepository       repository.StockPriceRepository
	targetAllocationRepository repository.TargetAllocationRepository
	portfolioService           l1_service.PortfolioService
	allocationService          l1_service.AllocationService
	tradeService               l1_service.TradeService
	rebalanceService           l2_service.RebalanceService
}

// newTestEnv connects to the test database, creating the schema when it is
// missing. Tests skip when postgres is not reachable.
func newTestEnv(t *testing.T) testEnv {
	db, err := util.NewTestDb()
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		t.Skipf("test database unavailable: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	var exists sql.NullString
	err = db.QueryRow("SELECT to_regclass('public.portfolio')::text").Scan(&exists)
	require.NoError(t, err)
	if !exists.Valid {
		migration, err := os.ReadFile("../migrations/000001_init.up.sql")
		require.NoError(t, err)
		_, err = db.Exec(string(migration))
		require.NoError(t, err)
	}

	txRunner := repository.NewTxRunner(db)
	portfolioRepository := repository.NewPortfolioRepository(db)
	stockRepository := repository.NewStockRepository(db)
	holdingRepository := repository.NewHoldingRepository(db)
	targetAllocationRepository := repository.NewTargetAllocationRepository(db)
	stockPriceRepository := repository.NewStockPriceRepository(db)

	portfolioService := l1_service.NewPortfolioService(txRunner, portfolioRepository, holdingRepository, stockPriceRepository)
	allocationService := l1_service.NewAllocationService(txRunner, portfolioRepository, targetAllocationRepository)
	tradeService := l1_service.NewTradeService(
		txRunner,
		portfolioRepository,
		stockRepository,
		holdingRepository,
		targetAllocationRepository,
		stockPriceRepository,
	)

	return testEnv{
		db:                         db,
		portfolioRepository:        portfolioRepository,
		holdingRepository:          holdingRepository,
		stockPriceRepository:       stockPriceRepository,
		targetAllocationRepository: targetAllocationRepository,
		portfolioService:           portfolioService,
		allocationService:          allocationService,
		tradeService:               tradeService,
		rebalanceService: l2_service.NewRebalanceService(
			txRunner,
			portfolioRepository,
			portfolioService,
			allocationService,
			tradeService,
		),
	}
}

func uniqueSuffix() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
}

// seedPortfolio creates a user with one portfolio holding cash. Rows are
// removed when the test ends.
func (e testEnv) seedPortfolio(t *testing.T, cash string) model.Portfolio {
	user := model.UserAccount{}
	err := table.UserAccount.
		INSERT(table.UserAccount.MutableColumns).
		MODEL(model.UserAccount{
			Username:  "it_" + uniqueSuffix(),
			Email:     "it@example.com",
			CreatedAt: time.Now().UTC(),
		}).
		RETURNING(table.UserAccount.AllColumns).
		Query(e.db, &user)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, err := table.UserAccount.
			DELETE().
			WHERE(table.UserAccount.UserAccountID.EQ(postgres.UUID(user.UserAccountID))).
			Exec(e.db)
		require.NoError(t, err)
	})

	portfolio, err := e.portfolioRepository.Add(nil, model.Portfolio{
		OwnerID:     user.UserAccountID,
		Name:        l1_service.PortfolioName(user.Username),
		CashBalance: d(cash),
	})
	require.NoError(t, err)
	return *portfolio
}

// seedStock creates a stock whose latest price is price. Rows are removed
// when the test ends.
func (e testEnv) seedStock(t *testing.T, price string) model.Stock {
	stock := model.Stock{}
	err := table.Stock.
		INSERT(table.Stock.MutableColumns).
		MODEL(model.Stock{
			Symbol: "T" + uniqueSuffix(),
			Name:   "Integration Test Co",
		}).
		RETURNING(table.Stock.AllColumns).
		Query(e.db, &stock)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, err := table.Stock.
			DELETE().
			WHERE(table.Stock.StockID.EQ(postgres.UUID(stock.StockID))).
			Exec(e.db)
		require.NoError(t, err)
	})

	_, err = e.stockPriceRepository.AddMany(nil, []model.StockPrice{{
		StockID: stock.StockID,
		Date:    util.NewDate(2024, 1, 2),
		Price:   util.DecimalPointer(d(price)),
		Volume:  util.Int64Pointer(1000),
	}})
	require.NoError(t, err)
	return stock
}

// allocationIDs maps stock id to target allocation id for a portfolio.
func (e testEnv) allocationIDs(t *testing.T, portfolioID uuid.UUID) map[uuid.UUID]uuid.UUID {
	allocations, err := e.allocationService.ListAllocations(context.Background(), portfolioID)
	require.NoError(t, err)
	out := map[uuid.UUID]uuid.UUID{}
	for _, a := range allocations {
		out[a.StockID] = a.TargetAllocationID
	}
	return out
}
