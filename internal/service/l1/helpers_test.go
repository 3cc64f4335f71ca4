package l1_service

import (
	"context"
	"fmt"

	"portfoliosim/internal/repository"
	mock_repository "portfoliosim/internal/repository/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// newTxRunner runs every closure immediately with a nil transaction.
func newTxRunner(ctrl *gomock.Controller) *mock_repository.MockTxRunner {
	txRunner := mock_repository.NewMockTxRunner(ctrl)
	txRunner.EXPECT().
		RunInTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(tx repository.DB) error) error {
			return fn(nil)
		}).
		AnyTimes()
	return txRunner
}

type decimalMatcher struct {
	want decimal.Decimal
}

func eqDecimal(s string) gomock.Matcher {
	return decimalMatcher{want: d(s)}
}

func (m decimalMatcher) Matches(x any) bool {
	got, ok := x.(decimal.Decimal)
	return ok && got.Equal(m.want)
}

func (m decimalMatcher) String() string {
	return fmt.Sprintf("is equal to %s", m.want.String())
}
