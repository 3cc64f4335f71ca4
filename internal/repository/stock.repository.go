package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"portfoliosim/internal/db/models/postgres/public/model"
	"portfoliosim/internal/db/models/postgres/public/table"
	"portfoliosim/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

//go:generate mockgen -source=stock.repository.go -destination=mocks/mock_stock.repository.go

type StockRepository interface {
	Get(tx DB, stockID uuid.UUID) (*model.Stock, error)
	GetBySymbol(tx DB, symbol string) (*model.Stock, error)
	List(tx DB) ([]model.Stock, error)
	// GetOrCreate returns the existing row for the symbol, or inserts one.
	// created reports whether this call inserted it.
	GetOrCreate(tx DB, s model.Stock) (out *model.Stock, created bool, err error)
}

type stockRepositoryHandler struct {
	Db *sql.DB
}

func NewStockRepository(db *sql.DB) StockRepository {
	return stockRepositoryHandler{Db: db}
}

func (h stockRepositoryHandler) Get(tx DB, stockID uuid.UUID) (*model.Stock, error) {
	query := table.Stock.
		SELECT(table.Stock.AllColumns).
		WHERE(table.Stock.StockID.EQ(postgres.UUID(stockID)))

	out := model.Stock{}
	err := query.Query(pick(h.Db, tx), &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("%w: stock %s", domain.ErrNotFound, stockID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get stock %s: %w", stockID, err)
	}

	return &out, nil
}

func (h stockRepositoryHandler) GetBySymbol(tx DB, symbol string) (*model.Stock, error) {
	query := table.Stock.
		SELECT(table.Stock.AllColumns).
		WHERE(table.Stock.Symbol.EQ(postgres.String(symbol)))

	out := model.Stock{}
	err := query.Query(pick(h.Db, tx), &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("%w: stock %s", domain.ErrNotFound, symbol)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get stock %s: %w", symbol, err)
	}

	return &out, nil
}

func (h stockRepositoryHandler) List(tx DB) ([]model.Stock, error) {
	query := table.Stock.
		SELECT(table.Stock.AllColumns).
		ORDER_BY(table.Stock.Symbol.ASC())

	out := []model.Stock{}
	err := query.Query(pick(h.Db, tx), &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list stocks: %w", err)
	}

	return out, nil
}

func (h stockRepositoryHandler) GetOrCreate(tx DB, s model.Stock) (*model.Stock, bool, error) {
	db := pick(h.Db, tx)
	query := table.Stock.
		INSERT(table.Stock.MutableColumns).
		MODEL(s).
		ON_CONFLICT(table.Stock.Symbol).
		DO_NOTHING().
		RETURNING(table.Stock.AllColumns)

	out := model.Stock{}
	err := query.Query(db, &out)
	if err == nil {
		return &out, true, nil
	} else if !errors.Is(err, qrm.ErrNoRows) {
		return nil, false, fmt.Errorf("failed to create stock %s: %w", s.Symbol, err)
	}

	existing, err := h.GetBySymbol(db, s.Symbol)
	if err != nil {
		return nil, false, err
	}

	return existing, false, nil
}
