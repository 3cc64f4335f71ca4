package cmd

import (
	"context"
	"database/sql"
	"fmt"

	"portfoliosim/api"
	"portfoliosim/internal/logger"
	"portfoliosim/internal/repository"
	l1_service "portfoliosim/internal/service/l1"
	l2_service "portfoliosim/internal/service/l2"
	"portfoliosim/internal/util"

	_ "github.com/lib/pq"
)

// Dependencies is everything the entrypoints share: the api handler plus the
// maintenance services only the CLI and the scheduler reach.
type Dependencies struct {
	Secrets           *util.Secrets
	Db                *sql.DB
	ApiHandler        *api.ApiHandler
	SeedService       l1_service.SeedService
	SimulationService l1_service.SimulationService
}

func CloseDependencies(deps *Dependencies) {
	if err := deps.Db.Close(); err != nil {
		logger.FromContext(context.Background()).Errorw("failed to close db", "error", err)
	}
}

func InitializeDependencies() (*Dependencies, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	txRunner := repository.NewTxRunner(dbConn)
	userAccountRepository := repository.NewUserAccountRepository(dbConn)
	portfolioRepository := repository.NewPortfolioRepository(dbConn)
	stockRepository := repository.NewStockRepository(dbConn)
	holdingRepository := repository.NewHoldingRepository(dbConn)
	targetAllocationRepository := repository.NewTargetAllocationRepository(dbConn)
	stockPriceRepository := repository.NewStockPriceRepository(dbConn)

	portfolioService := l1_service.NewPortfolioService(
		txRunner,
		portfolioRepository,
		holdingRepository,
		stockPriceRepository,
	)
	allocationService := l1_service.NewAllocationService(
		txRunner,
		portfolioRepository,
		targetAllocationRepository,
	)
	tradeService := l1_service.NewTradeService(
		txRunner,
		portfolioRepository,
		stockRepository,
		holdingRepository,
		targetAllocationRepository,
		stockPriceRepository,
	)
	priceService := l1_service.NewPriceService(stockRepository, stockPriceRepository)
	simulationService := l1_service.NewSimulationService(
		txRunner,
		stockRepository,
		stockPriceRepository,
		l1_service.NewRandomSource(secrets.Simulation.RandomSeed),
	)
	seedService := l1_service.NewSeedService(
		txRunner,
		userAccountRepository,
		portfolioRepository,
		stockRepository,
		stockPriceRepository,
	)
	rebalanceService := l2_service.NewRebalanceService(
		txRunner,
		portfolioRepository,
		portfolioService,
		allocationService,
		tradeService,
	)

	apiHandler := &api.ApiHandler{
		Db:                dbConn,
		PortfolioService:  portfolioService,
		AllocationService: allocationService,
		TradeService:      tradeService,
		PriceService:      priceService,
		SimulationService: simulationService,
		RebalanceService:  rebalanceService,
	}

	return &Dependencies{
		Secrets:           secrets,
		Db:                dbConn,
		ApiHandler:        apiHandler,
		SeedService:       seedService,
		SimulationService: simulationService,
	}, nil
}
