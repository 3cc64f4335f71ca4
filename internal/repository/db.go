package repository

import (
	"database/sql"

	"github.com/go-jet/jet/v2/qrm"
)

// DB is implemented by both *sql.DB and *sql.Tx, so repository methods can
// run inside or outside a transaction.
type DB interface {
	qrm.Queryable
	qrm.Executable
}

func pick(db *sql.DB, tx DB) DB {
	if tx != nil {
		return tx
	}
	return db
}
