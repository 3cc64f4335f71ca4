package l2_service

import (
	"context"
	"fmt"

	"portfoliosim/internal/domain"
	"portfoliosim/internal/logger"
	"portfoliosim/internal/repository"
	l1_service "portfoliosim/internal/service/l1"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=rebalance.service.go -destination=mocks/mock_rebalance.service.go

type RebalanceService interface {
	// ComputeDrift is read only.
	ComputeDrift(ctx context.Context, portfolioID uuid.UUID) (*domain.DriftReport, error)
	Preview(ctx context.Context, portfolioID uuid.UUID) (*RebalanceResult, error)
	// Execute sells everything above target, then buys everything below,
	// all in one transaction. Nothing is traded unless cash plus sale
	// proceeds covers every purchase.
	Execute(ctx context.Context, portfolioID uuid.UUID) (*RebalanceResult, error)
	Rebalance(ctx context.Context, portfolioID uuid.UUID, execute bool) (*RebalanceResult, error)
}

type rebalanceServiceHandler struct {
	TxRunner            repository.TxRunner
	PortfolioRepository repository.PortfolioRepository
	PortfolioService    l1_service.PortfolioService
	AllocationService   l1_service.AllocationService
	TradeService        l1_service.TradeService
}

func NewRebalanceService(
	txRunner repository.TxRunner,
	portfolioRepository repository.PortfolioRepository,
	portfolioService l1_service.PortfolioService,
	allocationService l1_service.AllocationService,
	tradeService l1_service.TradeService,
) RebalanceService {
	return rebalanceServiceHandler{
		TxRunner:            txRunner,
		PortfolioRepository: portfolioRepository,
		PortfolioService:    portfolioService,
		AllocationService:   allocationService,
		TradeService:        tradeService,
	}
}

type RebalanceResult struct {
	Report     *domain.DriftReport
	Executed   bool
	Operations []string
	// The remaining fields are only set when Executed is true.
	TotalSold   decimal.Decimal
	TotalBought decimal.Decimal
	NewBalance  decimal.Decimal
	NumLegs     int
}

func (h rebalanceServiceHandler) ComputeDrift(ctx context.Context, portfolioID uuid.UUID) (*domain.DriftReport, error) {
	portfolio, err := h.PortfolioRepository.Get(nil, portfolioID)
	if err != nil {
		return nil, err
	}
	return h.computeDrift(nil, portfolioID, portfolio.CashBalance)
}

func (h rebalanceServiceHandler) computeDrift(tx repository.DB, portfolioID uuid.UUID, cash decimal.Decimal) (*domain.DriftReport, error) {
	positions, err := h.PortfolioService.GetPositions(tx, portfolioID)
	if err != nil {
		return nil, err
	}
	allocations, err := h.AllocationService.ListAllocationsTx(tx, portfolioID)
	if err != nil {
		return nil, err
	}
	report := domain.ComputeDrift(cash, positions, allocations)
	return &report, nil
}

func (h rebalanceServiceHandler) Preview(ctx context.Context, portfolioID uuid.UUID) (*RebalanceResult, error) {
	return h.Rebalance(ctx, portfolioID, false)
}

func (h rebalanceServiceHandler) Execute(ctx context.Context, portfolioID uuid.UUID) (*RebalanceResult, error) {
	return h.Rebalance(ctx, portfolioID, true)
}

func (h rebalanceServiceHandler) Rebalance(ctx context.Context, portfolioID uuid.UUID, execute bool) (*RebalanceResult, error) {
	if !execute {
		report, err := h.ComputeDrift(ctx, portfolioID)
		if err != nil {
			return nil, err
		}
		return &RebalanceResult{
			Report:     report,
			Operations: []string{},
		}, nil
	}

	log := logger.FromContext(ctx)
	profile := domain.ProfileFromContext(ctx)
	var result *RebalanceResult
	err := h.TxRunner.RunInTx(ctx, func(tx repository.DB) error {
		portfolio, err := h.PortfolioRepository.GetForUpdate(tx, portfolioID)
		if err != nil {
			return err
		}
		profile.StartNewSpan("computeDrift")
		report, err := h.computeDrift(tx, portfolioID, portfolio.CashBalance)
		if err != nil {
			return err
		}
		plan, err := domain.PlanRebalance(*report)
		if err != nil {
			return err
		}

		result = &RebalanceResult{
			Report:      report,
			Executed:    true,
			Operations:  []string{},
			TotalSold:   decimal.Zero,
			TotalBought: decimal.Zero,
			NewBalance:  portfolio.CashBalance,
		}

		profile.StartNewSpan("sells")
		for _, leg := range plan.Sells {
			sold, err := h.TradeService.SellTx(ctx, tx, l1_service.SellInput{
				PortfolioID: portfolioID,
				StockID:     leg.StockID,
				Shares:      leg.Shares,
			})
			if err != nil {
				return fmt.Errorf("failed to sell %s: %w", leg.Symbol, err)
			}
			result.TotalSold = result.TotalSold.Add(sold.TotalIncome)
			result.NewBalance = sold.NewBalance
			result.NumLegs++
			result.Operations = append(result.Operations, fmt.Sprintf(
				"Sold %s shares of %s at %s = %s",
				sold.Shares.StringFixed(domain.ShareDisplayScale),
				sold.Symbol,
				domain.FormatUSD(sold.Price),
				domain.FormatUSD(sold.TotalIncome),
			))
		}

		profile.StartNewSpan("buys")
		for _, leg := range plan.Buys {
			bought, err := h.TradeService.BuyTx(ctx, tx, l1_service.BuyInput{
				PortfolioID: portfolioID,
				StockID:     leg.StockID,
				Shares:      leg.Shares,
			})
			if err != nil {
				return fmt.Errorf("failed to buy %s: %w", leg.Symbol, err)
			}
			result.TotalBought = result.TotalBought.Add(bought.TotalCost)
			result.NewBalance = bought.NewBalance
			result.NumLegs++
			result.Operations = append(result.Operations, fmt.Sprintf(
				"Bought %s shares of %s at %s = %s",
				bought.Shares.StringFixed(domain.ShareDisplayScale),
				bought.Symbol,
				domain.FormatUSD(bought.Price),
				domain.FormatUSD(bought.TotalCost),
			))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Infow(
		"rebalanced portfolio",
		"portfolioID", portfolioID,
		"legs", result.NumLegs,
		"totalSold", result.TotalSold.String(),
		"totalBought", result.TotalBought.String(),
		"newBalance", result.NewBalance.String(),
	)

	return result, nil
}
