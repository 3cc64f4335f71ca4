package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	MoneyScale   int32 = 2
	SharesScale  int32 = 8
	PriceScale   int32 = 8
	PercentScale int32 = 4

	// ShareDisplayScale is the precision share counts are printed with.
	ShareDisplayScale int32 = 4
)

var (
	// SharesNearZero is the remainder at or below which a holding is removed
	// instead of being kept around with dust.
	SharesNearZero = decimal.RequireFromString("0.0001")

	OneHundred = decimal.NewFromInt(100)
)

// ParseShares converts a user supplied share count into a positive fixed
// point quantity with at most 8 decimals.
func ParseShares(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: share quantity %q is not a number", ErrInvalidInput, s)
	}
	return ValidateShares(d)
}

func ValidateShares(d decimal.Decimal) (decimal.Decimal, error) {
	shares := d.Round(SharesScale)
	if shares.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: share quantity must be greater than 0, got %s", ErrInvalidInput, d.String())
	}
	return shares, nil
}

// ParseAmount converts a deposit amount into cents. Amounts that round to
// zero or below are rejected.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, s)
	}
	return ValidateAmount(d)
}

func ValidateAmount(d decimal.Decimal) (decimal.Decimal, error) {
	amount := d.Round(MoneyScale)
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: amount must be greater than 0, got %s", ErrInvalidAmount, d.String())
	}
	return amount, nil
}

// ParsePercent parses a target percentage. Percentages are stored with four
// decimals, so anything finer is rejected rather than silently rounded.
func ParsePercent(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, ErrInvalidPercent
	}
	if !d.Equal(d.Round(PercentScale)) {
		return decimal.Zero, ErrInvalidPercent
	}
	if d.IsNegative() {
		return decimal.Zero, ErrNegativePercent
	}
	return d, nil
}

// TradeValue is the exact value of shares at price, before any cash rounding.
func TradeValue(shares, price decimal.Decimal) decimal.Decimal {
	return shares.Mul(price)
}

// PurchaseCost is what a buy takes out of the cash balance. Rounding up to
// the cent keeps the balance from going negative on fractional costs.
func PurchaseCost(shares, price decimal.Decimal) decimal.Decimal {
	return TradeValue(shares, price).RoundCeil(MoneyScale)
}

// SaleIncome is what a sell adds to the cash balance.
func SaleIncome(shares, price decimal.Decimal) decimal.Decimal {
	return TradeValue(shares, price).RoundFloor(MoneyScale)
}
