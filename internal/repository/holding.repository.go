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

//go:generate mockgen -source=holding.repository.go -destination=mocks/mock_holding.repository.go

type HoldingRepository interface {
	// Get returns nil when the portfolio holds no shares of the stock.
	Get(tx DB, portfolioID, stockID uuid.UUID) (*model.Holding, error)
	ListPositions(tx DB, portfolioID uuid.UUID) ([]HoldingWithStock, error)
	Upsert(tx DB, h model.Holding) (*model.Holding, error)
	UpdateShares(tx DB, holdingID uuid.UUID, shares decimal.Decimal) error
	Delete(tx DB, holdingID uuid.UUID) error
}

type HoldingWithStock struct {
	model.Holding
	Stock model.Stock
}

type holdingRepositoryHandler struct {
	Db *sql.DB
}

func NewHoldingRepository(db *sql.DB) HoldingRepository {
	return holdingRepositoryHandler{Db: db}
}

func (h holdingRepositoryHandler) Get(tx DB, portfolioID, stockID uuid.UUID) (*model.Holding, error) {
	query := table.Holding.
		SELECT(table.Holding.AllColumns).
		WHERE(
			postgres.AND(
				table.Holding.PortfolioID.EQ(postgres.UUID(portfolioID)),
				table.Holding.StockID.EQ(postgres.UUID(stockID)),
			),
		)

	out := model.Holding{}
	err := query.Query(pick(h.Db, tx), &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get holding: %w", err)
	}

	return &out, nil
}

func (h holdingRepositoryHandler) ListPositions(tx DB, portfolioID uuid.UUID) ([]HoldingWithStock, error) {
	query := postgres.SELECT(
		table.Holding.AllColumns,
		table.Stock.AllColumns,
	).FROM(
		table.Holding.INNER_JOIN(
			table.Stock,
			table.Stock.StockID.EQ(table.Holding.StockID),
		),
	).WHERE(
		table.Holding.PortfolioID.EQ(postgres.UUID(portfolioID)),
	).ORDER_BY(
		table.Stock.Symbol.ASC(),
	)

	out := []HoldingWithStock{}
	err := query.Query(pick(h.Db, tx), &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list holdings for portfolio %s: %w", portfolioID, err)
	}

	return out, nil
}

func (h holdingRepositoryHandler) Upsert(tx DB, m model.Holding) (*model.Holding, error) {
	if m.Shares.IsNegative() {
		return nil, fmt.Errorf("failed to upsert holding: shares must be >= 0, got %s", m.Shares.String())
	}
	query := table.Holding.
		INSERT(table.Holding.MutableColumns).
		MODEL(m).
		ON_CONFLICT(
			table.Holding.PortfolioID,
			table.Holding.StockID,
		).
		DO_UPDATE(
			postgres.SET(
				table.Holding.Shares.SET(table.Holding.EXCLUDED.Shares),
				table.Holding.AveragePrice.SET(table.Holding.EXCLUDED.AveragePrice),
			),
		).
		RETURNING(table.Holding.AllColumns)

	out := model.Holding{}
	err := query.Query(pick(h.Db, tx), &out)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert holding: %w", err)
	}

	return &out, nil
}

func (h holdingRepositoryHandler) UpdateShares(tx DB, holdingID uuid.UUID, shares decimal.Decimal) error {
	if shares.IsNegative() {
		return fmt.Errorf("failed to update holding: shares must be >= 0, got %s", shares.String())
	}
	query := table.Holding.
		UPDATE(table.Holding.Shares).
		WHERE(table.Holding.HoldingID.EQ(postgres.UUID(holdingID))).
		MODEL(model.Holding{
			Shares: shares,
		})

	_, err := query.Exec(pick(h.Db, tx))
	if err != nil {
		return fmt.Errorf("failed to update holding %s: %w", holdingID, err)
	}

	return nil
}

func (h holdingRepositoryHandler) Delete(tx DB, holdingID uuid.UUID) error {
	query := table.Holding.
		DELETE().
		WHERE(table.Holding.HoldingID.EQ(postgres.UUID(holdingID)))

	_, err := query.Exec(pick(h.Db, tx))
	if err != nil {
		return fmt.Errorf("failed to delete holding %s: %w", holdingID, err)
	}

	return nil
}
