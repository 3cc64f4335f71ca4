package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"portfoliosim/internal/db/models/postgres/public/model"
	"portfoliosim/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

//go:generate mockgen -source=stock_price.repository.go -destination=mocks/mock_stock_price.repository.go

const insertBatchSize = 5000

type StockPriceRepository interface {
	// GetLatest returns the row with the greatest date for the stock, or nil.
	// The row's price may itself be null.
	GetLatest(tx DB, stockID uuid.UUID) (*model.StockPrice, error)
	GetLatestMany(tx DB, stockIDs []uuid.UUID) (map[uuid.UUID]model.StockPrice, error)
	List(tx DB, stockID uuid.UUID, start, end time.Time) ([]model.StockPrice, error)
	// AddMany inserts rows in batches, skipping any (stock, date) that already
	// exists, and returns how many rows were actually inserted.
	AddMany(tx DB, prices []model.StockPrice) (int64, error)
}

type stockPriceRepositoryHandler struct {
	Db *sql.DB
}

func NewStockPriceRepository(db *sql.DB) StockPriceRepository {
	return stockPriceRepositoryHandler{Db: db}
}

func (h stockPriceRepositoryHandler) GetLatest(tx DB, stockID uuid.UUID) (*model.StockPrice, error) {
	query := table.StockPrice.
		SELECT(table.StockPrice.AllColumns).
		WHERE(table.StockPrice.StockID.EQ(postgres.UUID(stockID))).
		ORDER_BY(table.StockPrice.Date.DESC()).
		LIMIT(1)

	out := model.StockPrice{}
	err := query.Query(pick(h.Db, tx), &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest price for stock %s: %w", stockID, err)
	}

	return &out, nil
}

func (h stockPriceRepositoryHandler) GetLatestMany(tx DB, stockIDs []uuid.UUID) (map[uuid.UUID]model.StockPrice, error) {
	out := map[uuid.UUID]model.StockPrice{}
	for _, stockID := range stockIDs {
		latest, err := h.GetLatest(tx, stockID)
		if err != nil {
			return nil, err
		}
		if latest != nil {
			out[stockID] = *latest
		}
	}
	return out, nil
}

func (h stockPriceRepositoryHandler) List(tx DB, stockID uuid.UUID, start, end time.Time) ([]model.StockPrice, error) {
	query := table.StockPrice.
		SELECT(table.StockPrice.AllColumns).
		WHERE(
			postgres.AND(
				table.StockPrice.StockID.EQ(postgres.UUID(stockID)),
				table.StockPrice.Date.GT_EQ(postgres.DateT(start)),
				table.StockPrice.Date.LT_EQ(postgres.DateT(end)),
			),
		).
		ORDER_BY(table.StockPrice.Date.ASC())

	out := []model.StockPrice{}
	err := query.Query(pick(h.Db, tx), &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list prices for stock %s: %w", stockID, err)
	}

	return out, nil
}

func (h stockPriceRepositoryHandler) AddMany(tx DB, prices []model.StockPrice) (int64, error) {
	db := pick(h.Db, tx)
	inserted := int64(0)
	for start := 0; start < len(prices); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(prices) {
			end = len(prices)
		}
		query := table.StockPrice.
			INSERT(table.StockPrice.MutableColumns).
			MODELS(prices[start:end]).
			ON_CONFLICT(
				table.StockPrice.StockID,
				table.StockPrice.Date,
			).
			DO_NOTHING()

		result, err := query.Exec(db)
		if err != nil {
			return inserted, fmt.Errorf("failed to insert stock prices: %w", err)
		}
		n, err := result.RowsAffected()
		if err != nil {
			return inserted, fmt.Errorf("failed to count inserted stock prices: %w", err)
		}
		inserted += n
	}

	return inserted, nil
}
