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

//go:generate mockgen -source=portfolio.service.go -destination=mocks/mock_portfolio.service.go

type PortfolioService interface {
	List(ctx context.Context) ([]model.Portfolio, error)
	GetSnapshot(ctx context.Context, portfolioID uuid.UUID) (*PortfolioSnapshot, error)
	GetBalance(ctx context.Context, portfolioID uuid.UUID) (*PortfolioBalance, error)
	AddFunds(ctx context.Context, portfolioID uuid.UUID, amount decimal.Decimal) (*model.Portfolio, error)
	// GetPositions returns every holding of the portfolio joined to its
	// stock and valued at the latest recorded price, ordered by symbol.
	GetPositions(tx repository.DB, portfolioID uuid.UUID) ([]domain.Position, error)
}

type portfolioServiceHandler struct {
	TxRunner             repository.TxRunner
	PortfolioRepository  repository.PortfolioRepository
	HoldingRepository    repository.HoldingRepository
	StockPriceRepository repository.StockPriceRepository
}

func NewPortfolioService(
	txRunner repository.TxRunner,
	portfolioRepository repository.PortfolioRepository,
	holdingRepository repository.HoldingRepository,
	stockPriceRepository repository.StockPriceRepository,
) PortfolioService {
	return portfolioServiceHandler{
		TxRunner:             txRunner,
		PortfolioRepository:  portfolioRepository,
		HoldingRepository:    holdingRepository,
		StockPriceRepository: stockPriceRepository,
	}
}

type SnapshotHolding struct {
	StockID      uuid.UUID
	Symbol       string
	Name         string
	Shares       decimal.Decimal
	AveragePrice decimal.Decimal
	CurrentPrice *decimal.Decimal
	Value        decimal.Decimal
	Percentage   decimal.Decimal
}

type PortfolioSnapshot struct {
	Portfolio model.Portfolio
	Holdings  []SnapshotHolding
	// TotalValue is the value of the holdings, excluding cash.
	TotalValue decimal.Decimal
}

type PortfolioBalance struct {
	Name    string
	Balance decimal.Decimal
}

func (h portfolioServiceHandler) List(ctx context.Context) ([]model.Portfolio, error) {
	return h.PortfolioRepository.List(nil)
}

func (h portfolioServiceHandler) GetSnapshot(ctx context.Context, portfolioID uuid.UUID) (*PortfolioSnapshot, error) {
	portfolio, err := h.PortfolioRepository.Get(nil, portfolioID)
	if err != nil {
		return nil, err
	}
	positions, err := h.GetPositions(nil, portfolioID)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, p := range positions {
		total = total.Add(p.CurrentValue())
	}

	holdings := make([]SnapshotHolding, 0, len(positions))
	for _, p := range positions {
		value := p.CurrentValue()
		percentage := decimal.Zero
		if total.GreaterThan(decimal.Zero) {
			percentage = value.Mul(domain.OneHundred).DivRound(total, domain.PercentScale)
		}
		holdings = append(holdings, SnapshotHolding{
			StockID:      p.StockID,
			Symbol:       p.Symbol,
			Name:         p.Name,
			Shares:       p.Shares,
			AveragePrice: p.AveragePrice,
			CurrentPrice: p.LatestPrice,
			Value:        value.Round(domain.MoneyScale),
			Percentage:   percentage,
		})
	}

	return &PortfolioSnapshot{
		Portfolio:  *portfolio,
		Holdings:   holdings,
		TotalValue: total.Round(domain.MoneyScale),
	}, nil
}

func (h portfolioServiceHandler) GetBalance(ctx context.Context, portfolioID uuid.UUID) (*PortfolioBalance, error) {
	portfolio, err := h.PortfolioRepository.Get(nil, portfolioID)
	if err != nil {
		return nil, err
	}
	return &PortfolioBalance{
		Name:    portfolio.Name,
		Balance: portfolio.CashBalance,
	}, nil
}

func (h portfolioServiceHandler) AddFunds(ctx context.Context, portfolioID uuid.UUID, amount decimal.Decimal) (*model.Portfolio, error) {
	amount, err := domain.ValidateAmount(amount)
	if err != nil {
		return nil, err
	}

	var out *model.Portfolio
	err = h.TxRunner.RunInTx(ctx, func(tx repository.DB) error {
		portfolio, err := h.PortfolioRepository.GetForUpdate(tx, portfolioID)
		if err != nil {
			return err
		}
		portfolio.CashBalance = portfolio.CashBalance.Add(amount)
		err = h.PortfolioRepository.UpdateCashBalance(tx, portfolioID, portfolio.CashBalance)
		if err != nil {
			return err
		}
		out = portfolio
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Infow(
		"added funds",
		"portfolioID", portfolioID,
		"amount", amount.String(),
		"newBalance", out.CashBalance.String(),
	)

	return out, nil
}

func (h portfolioServiceHandler) GetPositions(tx repository.DB, portfolioID uuid.UUID) ([]domain.Position, error) {
	holdings, err := h.HoldingRepository.ListPositions(tx, portfolioID)
	if err != nil {
		return nil, err
	}

	stockIDs := make([]uuid.UUID, 0, len(holdings))
	for _, hs := range holdings {
		stockIDs = append(stockIDs, hs.StockID)
	}
	latest, err := h.StockPriceRepository.GetLatestMany(tx, stockIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest prices: %w", err)
	}

	out := make([]domain.Position, 0, len(holdings))
	for _, hs := range holdings {
		var price *decimal.Decimal
		if row, ok := latest[hs.StockID]; ok {
			price = row.Price
		}
		out = append(out, domain.Position{
			HoldingID:    hs.HoldingID,
			StockID:      hs.StockID,
			Symbol:       hs.Stock.Symbol,
			Name:         hs.Stock.Name,
			Shares:       hs.Shares,
			AveragePrice: hs.AveragePrice,
			LatestPrice:  price,
		})
	}

	return out, nil
}
