package l1_service

import (
	"context"
	"fmt"

	"portfoliosim/internal/domain"
	"portfoliosim/internal/logger"
	"portfoliosim/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=allocation.service.go -destination=mocks/mock_allocation.service.go

type AllocationService interface {
	ListAllocations(ctx context.Context, portfolioID uuid.UUID) ([]domain.Allocation, error)
	ListAllocationsTx(tx repository.DB, portfolioID uuid.UUID) ([]domain.Allocation, error)
	// UpdateAllocations replaces every target percent of the portfolio.
	// Allocations missing from percents are set to 0. Nothing is written
	// unless all values parse and they sum to exactly 100.
	UpdateAllocations(ctx context.Context, portfolioID uuid.UUID, percents map[uuid.UUID]string) ([]domain.Allocation, error)
}

type allocationServiceHandler struct {
	TxRunner                   repository.TxRunner
	PortfolioRepository        repository.PortfolioRepository
	TargetAllocationRepository repository.TargetAllocationRepository
}

func NewAllocationService(
	txRunner repository.TxRunner,
	portfolioRepository repository.PortfolioRepository,
	targetAllocationRepository repository.TargetAllocationRepository,
) AllocationService {
	return allocationServiceHandler{
		TxRunner:                   txRunner,
		PortfolioRepository:        portfolioRepository,
		TargetAllocationRepository: targetAllocationRepository,
	}
}

func (h allocationServiceHandler) ListAllocations(ctx context.Context, portfolioID uuid.UUID) ([]domain.Allocation, error) {
	if _, err := h.PortfolioRepository.Get(nil, portfolioID); err != nil {
		return nil, err
	}
	return h.ListAllocationsTx(nil, portfolioID)
}

func (h allocationServiceHandler) ListAllocationsTx(tx repository.DB, portfolioID uuid.UUID) ([]domain.Allocation, error) {
	rows, err := h.TargetAllocationRepository.ListByPortfolio(tx, portfolioID)
	if err != nil {
		return nil, err
	}
	return allocationsFromRows(rows), nil
}

func (h allocationServiceHandler) UpdateAllocations(ctx context.Context, portfolioID uuid.UUID, percents map[uuid.UUID]string) ([]domain.Allocation, error) {
	var out []domain.Allocation
	err := h.TxRunner.RunInTx(ctx, func(tx repository.DB) error {
		if _, err := h.PortfolioRepository.GetForUpdate(tx, portfolioID); err != nil {
			return err
		}
		allocations, err := h.ListAllocationsTx(tx, portfolioID)
		if err != nil {
			return err
		}

		sum := decimal.Zero
		for i, a := range allocations {
			raw, ok := percents[a.TargetAllocationID]
			if !ok {
				raw = "0"
			}
			percent, err := domain.ParsePercent(raw)
			if err != nil {
				return fmt.Errorf("%w for %s: %q", err, a.Symbol, raw)
			}
			allocations[i].TargetPercent = percent
			sum = sum.Add(percent)
		}

		if !sum.Equal(domain.OneHundred) {
			return fmt.Errorf("%w, got %s", domain.ErrAllocationSumMismatch, sum.String())
		}

		for _, a := range allocations {
			err := h.TargetAllocationRepository.UpdatePercent(tx, a.TargetAllocationID, a.TargetPercent)
			if err != nil {
				return err
			}
		}
		out = allocations
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Infow("updated target allocations", "portfolioID", portfolioID, "count", len(out))

	return out, nil
}

func allocationsFromRows(rows []repository.TargetAllocationWithStock) []domain.Allocation {
	out := make([]domain.Allocation, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.Allocation{
			TargetAllocationID: r.TargetAllocationID,
			StockID:            r.StockID,
			Symbol:             r.Stock.Symbol,
			Name:               r.Stock.Name,
			TargetPercent:      r.TargetPercent,
		})
	}
	return out
}
