package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"portfoliosim/internal/db/models/postgres/public/model"
	"portfoliosim/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=target_allocation.repository.go -destination=mocks/mock_target_allocation.repository.go

type TargetAllocationRepository interface {
	ListByPortfolio(tx DB, portfolioID uuid.UUID) ([]TargetAllocationWithStock, error)
	// GetOrCreate inserts a 0% allocation unless one already exists for the
	// portfolio and stock.
	GetOrCreate(tx DB, portfolioID, stockID uuid.UUID) (*model.TargetAllocation, error)
	UpdatePercent(tx DB, targetAllocationID uuid.UUID, percent decimal.Decimal) error
}

type TargetAllocationWithStock struct {
	model.TargetAllocation
	Stock model.Stock
}

type targetAllocationRepositoryHandler struct {
	Db *sql.DB
}

func NewTargetAllocationRepository(db *sql.DB) TargetAllocationRepository {
	return targetAllocationRepositoryHandler{Db: db}
}

func (h targetAllocationRepositoryHandler) ListByPortfolio(tx DB, portfolioID uuid.UUID) ([]TargetAllocationWithStock, error) {
	query := postgres.SELECT(
		table.TargetAllocation.AllColumns,
		table.Stock.AllColumns,
	).FROM(
		table.TargetAllocation.INNER_JOIN(
			table.Stock,
			table.Stock.StockID.EQ(table.TargetAllocation.StockID),
		),
	).WHERE(
		table.TargetAllocation.PortfolioID.EQ(postgres.UUID(portfolioID)),
	).ORDER_BY(
		table.Stock.Symbol.ASC(),
	)

	out := []TargetAllocationWithStock{}
	err := query.Query(pick(h.Db, tx), &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list allocations for portfolio %s: %w", portfolioID, err)
	}

	return out, nil
}

func (h targetAllocationRepositoryHandler) GetOrCreate(tx DB, portfolioID, stockID uuid.UUID) (*model.TargetAllocation, error) {
	db := pick(h.Db, tx)
	query := table.TargetAllocation.
		INSERT(table.TargetAllocation.MutableColumns).
		MODEL(model.TargetAllocation{
			PortfolioID:   portfolioID,
			StockID:       stockID,
			TargetPercent: decimal.Zero,
		}).
		ON_CONFLICT(
			table.TargetAllocation.PortfolioID,
			table.TargetAllocation.StockID,
		).
		DO_NOTHING().
		RETURNING(table.TargetAllocation.AllColumns)

	out := model.TargetAllocation{}
	err := query.Query(db, &out)
	if err == nil {
		return &out, nil
	} else if !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("failed to create target allocation: %w", err)
	}

	getQuery := table.TargetAllocation.
		SELECT(table.TargetAllocation.AllColumns).
		WHERE(
			postgres.AND(
				table.TargetAllocation.PortfolioID.EQ(postgres.UUID(portfolioID)),
				table.TargetAllocation.StockID.EQ(postgres.UUID(stockID)),
			),
		)
	err = getQuery.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get target allocation: %w", err)
	}

	return &out, nil
}

func (h targetAllocationRepositoryHandler) UpdatePercent(tx DB, targetAllocationID uuid.UUID, percent decimal.Decimal) error {
	query := table.TargetAllocation.
		UPDATE(table.TargetAllocation.TargetPercent).
		WHERE(table.TargetAllocation.TargetAllocationID.EQ(postgres.UUID(targetAllocationID))).
		MODEL(model.TargetAllocation{
			TargetPercent: percent,
		})

	_, err := query.Exec(pick(h.Db, tx))
	if err != nil {
		return fmt.Errorf("failed to update target allocation %s: %w", targetAllocationID, err)
	}

	return nil
}
