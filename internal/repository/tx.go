package repository

import (
	"context"
	"database/sql"
	"fmt"
)

//go:generate mockgen -source=tx.go -destination=mocks/mock_tx.go

// TxRunner runs fn inside a single database transaction. The transaction
// commits when fn returns nil and rolls back otherwise.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(tx DB) error) error
}

type txRunnerHandler struct {
	Db *sql.DB
}

func NewTxRunner(db *sql.DB) TxRunner {
	return txRunnerHandler{Db: db}
}

func (h txRunnerHandler) RunInTx(ctx context.Context, fn func(tx DB) error) error {
	tx, err := h.Db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
