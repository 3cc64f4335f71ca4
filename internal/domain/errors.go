package domain

import "errors"

// Business failures raised by the trading, allocation, rebalancing and
// simulation services. Callers match them with errors.Is; the message that
// wraps them carries the symbol and amounts involved.
var (
	ErrNotFound              = errors.New("not found")
	ErrInvalidInput          = errors.New("invalid input")
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrInvalidPercent        = errors.New("invalid percent")
	ErrNegativePercent       = errors.New("negative percent")
	ErrAllocationSumMismatch = errors.New("allocations must sum to 100")
	ErrNoPriceAvailable      = errors.New("no price available")
	ErrInsufficientFunds     = errors.New("insufficient funds")
	ErrInsufficientShares    = errors.New("insufficient shares")
	ErrNoHolding             = errors.New("no holding")
	ErrInvalidUnit           = errors.New("invalid unit")
	ErrTooManyDays           = errors.New("too many days")
	ErrNoStocksAvailable     = errors.New("no stocks available")
	ErrNoPriceHistory        = errors.New("no price history")
)

var businessErrors = []error{
	ErrInvalidInput,
	ErrInvalidAmount,
	ErrInvalidPercent,
	ErrNegativePercent,
	ErrAllocationSumMismatch,
	ErrNoPriceAvailable,
	ErrInsufficientFunds,
	ErrInsufficientShares,
	ErrNoHolding,
	ErrInvalidUnit,
	ErrTooManyDays,
	ErrNoStocksAvailable,
	ErrNoPriceHistory,
}

// IsBusinessError reports whether err is a validation or business rule
// failure rather than an infrastructure fault.
func IsBusinessError(err error) bool {
	for _, e := range businessErrors {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
