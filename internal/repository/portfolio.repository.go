package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"portfoliosim/internal/db/models/postgres/public/model"
	"portfoliosim/internal/db/models/postgres/public/table"
	"portfoliosim/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=portfolio.repository.go -destination=mocks/mock_portfolio.repository.go

type PortfolioRepository interface {
	Add(tx DB, p model.Portfolio) (*model.Portfolio, error)
	Get(tx DB, portfolioID uuid.UUID) (*model.Portfolio, error)
	// GetForUpdate locks the portfolio row until the surrounding
	// transaction ends, serializing trades on the same portfolio.
	GetForUpdate(tx DB, portfolioID uuid.UUID) (*model.Portfolio, error)
	GetByOwnerAndName(tx DB, ownerID uuid.UUID, name string) (*model.Portfolio, error)
	List(tx DB) ([]model.Portfolio, error)
	UpdateCashBalance(tx DB, portfolioID uuid.UUID, cashBalance decimal.Decimal) error
}

type portfolioRepositoryHandler struct {
	Db *sql.DB
}

func NewPortfolioRepository(db *sql.DB) PortfolioRepository {
	return portfolioRepositoryHandler{Db: db}
}

func (h portfolioRepositoryHandler) Add(tx DB, p model.Portfolio) (*model.Portfolio, error) {
	p.CreatedAt = time.Now().UTC()
	query := table.Portfolio.
		INSERT(table.Portfolio.MutableColumns).
		MODEL(p).
		RETURNING(table.Portfolio.AllColumns)

	out := model.Portfolio{}
	err := query.Query(pick(h.Db, tx), &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert portfolio: %w", err)
	}

	return &out, nil
}

func (h portfolioRepositoryHandler) get(tx DB, portfolioID uuid.UUID, lock bool) (*model.Portfolio, error) {
	query := table.Portfolio.
		SELECT(table.Portfolio.AllColumns).
		WHERE(table.Portfolio.PortfolioID.EQ(postgres.UUID(portfolioID)))
	if lock {
		query = query.FOR(postgres.UPDATE())
	}

	out := model.Portfolio{}
	err := query.Query(pick(h.Db, tx), &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("%w: portfolio %s", domain.ErrNotFound, portfolioID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get portfolio %s: %w", portfolioID, err)
	}

	return &out, nil
}

func (h portfolioRepositoryHandler) Get(tx DB, portfolioID uuid.UUID) (*model.Portfolio, error) {
	return h.get(tx, portfolioID, false)
}

func (h portfolioRepositoryHandler) GetForUpdate(tx DB, portfolioID uuid.UUID) (*model.Portfolio, error) {
	return h.get(tx, portfolioID, true)
}

// GetByOwnerAndName returns nil when the owner has no portfolio by that name.
func (h portfolioRepositoryHandler) GetByOwnerAndName(tx DB, ownerID uuid.UUID, name string) (*model.Portfolio, error) {
	query := table.Portfolio.
		SELECT(table.Portfolio.AllColumns).
		WHERE(
			postgres.AND(
				table.Portfolio.OwnerID.EQ(postgres.UUID(ownerID)),
				table.Portfolio.Name.EQ(postgres.String(name)),
			),
		).
		LIMIT(1)

	out := model.Portfolio{}
	err := query.Query(pick(h.Db, tx), &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get portfolio %q: %w", name, err)
	}

	return &out, nil
}

func (h portfolioRepositoryHandler) List(tx DB) ([]model.Portfolio, error) {
	query := table.Portfolio.
		SELECT(table.Portfolio.AllColumns).
		ORDER_BY(table.Portfolio.CreatedAt.ASC(), table.Portfolio.Name.ASC())

	out := []model.Portfolio{}
	err := query.Query(pick(h.Db, tx), &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolios: %w", err)
	}

	return out, nil
}

func (h portfolioRepositoryHandler) UpdateCashBalance(tx DB, portfolioID uuid.UUID, cashBalance decimal.Decimal) error {
	if cashBalance.IsNegative() {
		return fmt.Errorf("failed to update cash balance: balance must be >= 0, got %s", cashBalance.String())
	}
	query := table.Portfolio.
		UPDATE(table.Portfolio.CashBalance).
		WHERE(table.Portfolio.PortfolioID.EQ(postgres.UUID(portfolioID))).
		MODEL(model.Portfolio{
			CashBalance: cashBalance.Round(domain.MoneyScale),
		})

	_, err := query.Exec(pick(h.Db, tx))
	if err != nil {
		return fmt.Errorf("failed to update cash balance for portfolio %s: %w", portfolioID, err)
	}

	return nil
}
