package l1_service

import (
	"context"
	"fmt"

	"portfoliosim/internal/db/models/postgres/public/model"
	"portfoliosim/internal/domain"
	"portfoliosim/internal/logger"
	"portfoliosim/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=trade.service.go -destination=mocks/mock_trade.service.go

type TradeService interface {
	Buy(ctx context.Context, input BuyInput) (*BuyResult, error)
	Sell(ctx context.Context, input SellInput) (*SellResult, error)
	// BuyTx and SellTx run inside a transaction owned by the caller, which
	// must already hold the portfolio row lock.
	BuyTx(ctx context.Context, tx repository.DB, input BuyInput) (*BuyResult, error)
	SellTx(ctx context.Context, tx repository.DB, input SellInput) (*SellResult, error)
}

type tradeServiceHandler struct {
	TxRunner                   repository.TxRunner
	PortfolioRepository        repository.PortfolioRepository
	StockRepository            repository.StockRepository
	HoldingRepository          repository.HoldingRepository
	TargetAllocationRepository repository.TargetAllocationRepository
	StockPriceRepository       repository.StockPriceRepository
}

func NewTradeService(
	txRunner repository.TxRunner,
	portfolioRepository repository.PortfolioRepository,
	stockRepository repository.StockRepository,
	holdingRepository repository.HoldingRepository,
	targetAllocationRepository repository.TargetAllocationRepository,
	stockPriceRepository repository.StockPriceRepository,
) TradeService {
	return tradeServiceHandler{
		TxRunner:                   txRunner,
		PortfolioRepository:        portfolioRepository,
		StockRepository:            stockRepository,
		HoldingRepository:          holdingRepository,
		TargetAllocationRepository: targetAllocationRepository,
		StockPriceRepository:       stockPriceRepository,
	}
}

type BuyInput struct {
	PortfolioID uuid.UUID
	StockID     uuid.UUID
	Shares      decimal.Decimal
}

type BuyResult struct {
	Symbol       string
	Shares       decimal.Decimal
	Price        decimal.Decimal
	TotalCost    decimal.Decimal
	NewBalance   decimal.Decimal
	TotalShares  decimal.Decimal
	AveragePrice decimal.Decimal
}

type SellInput struct {
	PortfolioID uuid.UUID
	StockID     uuid.UUID
	Shares      decimal.Decimal
}

type SellResult struct {
	Symbol          string
	Shares          decimal.Decimal
	Price           decimal.Decimal
	TotalIncome     decimal.Decimal
	NewBalance      decimal.Decimal
	RemainingShares decimal.Decimal
	HoldingDeleted  bool
}

func (h tradeServiceHandler) Buy(ctx context.Context, input BuyInput) (*BuyResult, error) {
	if _, err := domain.ValidateShares(input.Shares); err != nil {
		return nil, err
	}

	var result *BuyResult
	err := h.TxRunner.RunInTx(ctx, func(tx repository.DB) error {
		var err error
		if _, err = h.PortfolioRepository.GetForUpdate(tx, input.PortfolioID); err != nil {
			return err
		}
		result, err = h.BuyTx(ctx, tx, input)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (h tradeServiceHandler) Sell(ctx context.Context, input SellInput) (*SellResult, error) {
	if _, err := domain.ValidateShares(input.Shares); err != nil {
		return nil, err
	}

	var result *SellResult
	err := h.TxRunner.RunInTx(ctx, func(tx repository.DB) error {
		var err error
		if _, err = h.PortfolioRepository.GetForUpdate(tx, input.PortfolioID); err != nil {
			return err
		}
		result, err = h.SellTx(ctx, tx, input)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (h tradeServiceHandler) BuyTx(ctx context.Context, tx repository.DB, input BuyInput) (*BuyResult, error) {
	shares, err := domain.ValidateShares(input.Shares)
	if err != nil {
		return nil, err
	}

	portfolio, err := h.PortfolioRepository.Get(tx, input.PortfolioID)
	if err != nil {
		return nil, err
	}
	stock, err := h.StockRepository.Get(tx, input.StockID)
	if err != nil {
		return nil, err
	}
	price, err := h.latestPrice(tx, *stock)
	if err != nil {
		return nil, err
	}

	totalCost := domain.PurchaseCost(shares, price)
	if totalCost.GreaterThan(portfolio.CashBalance) {
		return nil, fmt.Errorf(
			"%w to buy %s shares of %s: need %s, have %s",
			domain.ErrInsufficientFunds,
			shares.String(),
			stock.Symbol,
			domain.FormatUSD(totalCost),
			domain.FormatUSD(portfolio.CashBalance),
		)
	}

	existing, err := h.HoldingRepository.Get(tx, portfolio.PortfolioID, stock.StockID)
	if err != nil {
		return nil, err
	}
	oldShares, oldAverage := decimal.Zero, decimal.Zero
	if existing != nil {
		oldShares, oldAverage = existing.Shares, existing.AveragePrice
	}
	totalShares := oldShares.Add(shares)
	averagePrice := domain.WeightedAveragePrice(oldShares, oldAverage, shares, price)

	_, err = h.HoldingRepository.Upsert(tx, model.Holding{
		PortfolioID:  portfolio.PortfolioID,
		StockID:      stock.StockID,
		Shares:       totalShares,
		AveragePrice: averagePrice,
	})
	if err != nil {
		return nil, err
	}

	_, err = h.TargetAllocationRepository.GetOrCreate(tx, portfolio.PortfolioID, stock.StockID)
	if err != nil {
		return nil, err
	}

	newBalance := portfolio.CashBalance.Sub(totalCost)
	err = h.PortfolioRepository.UpdateCashBalance(tx, portfolio.PortfolioID, newBalance)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Infow(
		"bought shares",
		"portfolioID", portfolio.PortfolioID,
		"symbol", stock.Symbol,
		"shares", shares.String(),
		"price", price.String(),
		"totalCost", totalCost.String(),
	)

	return &BuyResult{
		Symbol:       stock.Symbol,
		Shares:       shares,
		Price:        price,
		TotalCost:    totalCost,
		NewBalance:   newBalance,
		TotalShares:  totalShares,
		AveragePrice: averagePrice,
	}, nil
}

func (h tradeServiceHandler) SellTx(ctx context.Context, tx repository.DB, input SellInput) (*SellResult, error) {
	shares, err := domain.ValidateShares(input.Shares)
	if err != nil {
		return nil, err
	}

	portfolio, err := h.PortfolioRepository.Get(tx, input.PortfolioID)
	if err != nil {
		return nil, err
	}
	stock, err := h.StockRepository.Get(tx, input.StockID)
	if err != nil {
		return nil, err
	}

	holding, err := h.HoldingRepository.Get(tx, portfolio.PortfolioID, stock.StockID)
	if err != nil {
		return nil, err
	}
	if holding == nil {
		return nil, fmt.Errorf("%w: portfolio does not hold %s", domain.ErrNoHolding, stock.Symbol)
	}
	if shares.GreaterThan(holding.Shares) {
		return nil, fmt.Errorf(
			"%w to sell %s shares of %s: only %s available",
			domain.ErrInsufficientShares,
			shares.String(),
			stock.Symbol,
			holding.Shares.String(),
		)
	}

	price, err := h.latestPrice(tx, *stock)
	if err != nil {
		return nil, err
	}
	totalIncome := domain.SaleIncome(shares, price)

	remaining, deleted := domain.RemainingAfterSale(holding.Shares, shares)
	if deleted {
		err = h.HoldingRepository.Delete(tx, holding.HoldingID)
	} else {
		err = h.HoldingRepository.UpdateShares(tx, holding.HoldingID, remaining)
	}
	if err != nil {
		return nil, err
	}

	newBalance := portfolio.CashBalance.Add(totalIncome)
	err = h.PortfolioRepository.UpdateCashBalance(tx, portfolio.PortfolioID, newBalance)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Infow(
		"sold shares",
		"portfolioID", portfolio.PortfolioID,
		"symbol", stock.Symbol,
		"shares", shares.String(),
		"price", price.String(),
		"totalIncome", totalIncome.String(),
		"holdingDeleted", deleted,
	)

	return &SellResult{
		Symbol:          stock.Symbol,
		Shares:          shares,
		Price:           price,
		TotalIncome:     totalIncome,
		NewBalance:      newBalance,
		RemainingShares: remaining,
		HoldingDeleted:  deleted,
	}, nil
}

func (h tradeServiceHandler) latestPrice(tx repository.DB, stock model.Stock) (decimal.Decimal, error) {
	latest, err := h.StockPriceRepository.GetLatest(tx, stock.StockID)
	if err != nil {
		return decimal.Zero, err
	}
	if latest == nil || latest.Price == nil || latest.Price.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w for %s", domain.ErrNoPriceAvailable, stock.Symbol)
	}
	return *latest.Price, nil
}
