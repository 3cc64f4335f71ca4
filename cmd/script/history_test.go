package main

import (
	"testing"

	"portfoliosim/internal/db/models/postgres/public/model"
	"portfoliosim/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func Test_findStock(t *testing.T) {
	stocks := []model.Stock{
		{StockID: uuid.New(), Symbol: "AAPL"},
		{StockID: uuid.New(), Symbol: "GOOG"},
	}

	s, err := findStock(stocks, "goog")
	require.NoError(t, err)
	require.Equal(t, stocks[1].StockID, s.StockID)

	s, err = findStock(stocks, stocks[0].StockID.String())
	require.NoError(t, err)
	require.Equal(t, "AAPL", s.Symbol)

	_, err = findStock(stocks, "MSFT")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
