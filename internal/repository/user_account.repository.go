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
)

//go:generate mockgen -source=user_account.repository.go -destination=mocks/mock_user_account.repository.go

type UserAccountRepository interface {
	GetOrCreate(tx DB, u model.UserAccount) (out *model.UserAccount, created bool, err error)
	List(tx DB) ([]model.UserAccount, error)
}

type userAccountRepositoryHandler struct {
	Db *sql.DB
}

func NewUserAccountRepository(db *sql.DB) UserAccountRepository {
	return userAccountRepositoryHandler{Db: db}
}

func (h userAccountRepositoryHandler) GetOrCreate(tx DB, u model.UserAccount) (*model.UserAccount, bool, error) {
	db := pick(h.Db, tx)
	u.CreatedAt = time.Now().UTC()
	query := table.UserAccount.
		INSERT(table.UserAccount.MutableColumns).
		MODEL(u).
		ON_CONFLICT(table.UserAccount.Username).
		DO_NOTHING().
		RETURNING(table.UserAccount.AllColumns)

	out := model.UserAccount{}
	err := query.Query(db, &out)
	if err == nil {
		return &out, true, nil
	} else if !errors.Is(err, qrm.ErrNoRows) {
		return nil, false, fmt.Errorf("failed to create user %s: %w", u.Username, err)
	}

	getQuery := table.UserAccount.
		SELECT(table.UserAccount.AllColumns).
		WHERE(table.UserAccount.Username.EQ(postgres.String(u.Username)))
	err = getQuery.Query(db, &out)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get user %s: %w", u.Username, err)
	}

	return &out, false, nil
}

func (h userAccountRepositoryHandler) List(tx DB) ([]model.UserAccount, error) {
	query := table.UserAccount.
		SELECT(table.UserAccount.AllColumns).
		ORDER_BY(table.UserAccount.Username.ASC())

	out := []model.UserAccount{}
	err := query.Query(pick(h.Db, tx), &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return out, nil
}
